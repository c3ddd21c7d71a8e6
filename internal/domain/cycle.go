package domain

import "time"

// CycleStats holds counters for one pass of the watch cycle engine.
type CycleStats struct {
	Total      int
	Checked    int
	Skipped    int
	NewContent int
	Announced  int
	Errors     int
	Duration   time.Duration
}

// SchedulerStatus is the operational read contract exposed by a scheduler.
type SchedulerStatus struct {
	Running         bool
	LastStartedAt   time.Time
	LastCompletedAt time.Time
}

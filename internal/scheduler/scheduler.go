package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"linkwatch/internal/domain"
)

// Job is a unit of periodic work.
type Job interface {
	Name() string
	Run(ctx context.Context) error
}

// Scheduler runs one job on a fixed tick. At most one run is in flight at a
// time; a tick that fires while the previous run is still going is dropped.
type Scheduler struct {
	job      Job
	interval time.Duration
	timeout  time.Duration
	logger   *slog.Logger

	mu              sync.Mutex
	running         bool
	lastStartedAt   time.Time
	lastCompletedAt time.Time
}

func New(job Job, interval, timeout time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		job:      job,
		interval: interval,
		timeout:  timeout,
		logger:   logger.With("job", job.Name()),
	}
}

// Start runs the job once immediately, then on every tick until the context
// is cancelled. An in-flight run is allowed to finish on its own timeout.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runOnce()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runOnce()
		}
	}
}

// runOnce executes the job unless a run is already in flight. The run context
// is detached from the scheduler context so shutdown does not cut a run
// short; only the run timeout bounds it.
func (s *Scheduler) runOnce() {
	if !s.begin() {
		s.logger.Warn("previous run still in progress, skipping tick")
		return
	}
	defer s.finish()

	runCtx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.job.Run(runCtx); err != nil {
		s.logger.Error("run failed", "error", err)
	}
}

func (s *Scheduler) begin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return false
	}
	s.running = true
	s.lastStartedAt = time.Now()
	return true
}

func (s *Scheduler) finish() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = false
	s.lastCompletedAt = time.Now()
}

// Status reports whether a run is in flight and when the last one started
// and completed.
func (s *Scheduler) Status() domain.SchedulerStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.SchedulerStatus{
		Running:         s.running,
		LastStartedAt:   s.lastStartedAt,
		LastCompletedAt: s.lastCompletedAt,
	}
}

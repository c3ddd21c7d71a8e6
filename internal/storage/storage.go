// Package storage holds the sentinel errors shared by the persistence layer
// and its consumers. Concrete stores live in subpackages.
package storage

import "errors"

var (
	// ErrDuplicateEvent signals that a (link_id, content_id) pair is already
	// recorded. Callers treat it as already-handled, not as a failure.
	ErrDuplicateEvent = errors.New("event already recorded")

	// ErrLinkNotFound is returned when a link id does not exist.
	ErrLinkNotFound = errors.New("link not found")

	// ErrGuildNotFound is returned when a guild id does not exist.
	ErrGuildNotFound = errors.New("guild not found")

	// ErrPaymentNotFound is returned when a payment id does not exist or is
	// not in the expected status.
	ErrPaymentNotFound = errors.New("payment not found")
)

package domain

import "errors"

var (
	// ErrInvalidWindow is returned when a fixed date-range policy ends
	// before it starts. No partial availability answer makes sense then.
	ErrInvalidWindow = errors.New("domain: booking window end before start")

	// ErrInvalidSettings is returned when service settings violate the
	// basic invariants (non-positive duration or interval, negative
	// buffer or notice).
	ErrInvalidSettings = errors.New("domain: invalid service settings")
)

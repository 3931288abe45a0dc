package models

import (
	"errors"
	"fmt"
)

// Validation and lifecycle errors surfaced by the assessment engine.
// Handlers translate these into HTTP status codes; the repository maps
// store-level conditions onto ErrNotFound / TransportError.
var (
	// ErrInvalidScore is returned when a score outside {0,1,2,3} is submitted,
	// or when a finalized score map violates the pain-forces-zero rule.
	ErrInvalidScore = errors.New("score must be between 0 and 3")

	// ErrInvalidTransition is returned when session navigation is blocked:
	// advancing past an unscored exercise, past the last exercise, or
	// retreating below the first.
	ErrInvalidTransition = errors.New("score required before advancing")

	// ErrIncompleteAssessment is returned when a session is finalized while
	// at least one of the seven exercises is still unscored.
	ErrIncompleteAssessment = errors.New("assessment is incomplete")

	// ErrNotFound is returned when a client, exercise, session or test
	// result does not exist.
	ErrNotFound = errors.New("not found")
)

// TransportError wraps a failure of the persistence layer. It is a distinct
// condition from ErrNotFound: callers may retry, and no partial write is
// assumed to have happened.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("store %s failed: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

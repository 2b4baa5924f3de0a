package dosimetry

import (
	"errors"
	"fmt"
)

var (
	ErrAlreadyEvaluated    = errors.New("phase already evaluated")
	ErrPrerequisiteMissing = errors.New("prerequisite phase not evaluated")
	ErrInvertedRange       = errors.New("minimum sentence exceeds maximum")
)

// PhaseErrorKind distinguishes the two guard failures.
type PhaseErrorKind int

const (
	AlreadyEvaluated PhaseErrorKind = iota + 1
	PrerequisiteMissing
)

// PhaseError is returned when a phase is evaluated twice or out of order.
// The case is left untouched.
type PhaseError struct {
	Kind    PhaseErrorKind
	Phase   Phase // the phase that was requested
	Missing Phase // set for PrerequisiteMissing
}

func (e *PhaseError) Error() string {
	if e.Kind == PrerequisiteMissing {
		return fmt.Sprintf("phase %d: phase %d not evaluated yet", e.Phase, e.Missing)
	}
	return fmt.Sprintf("phase %d: already evaluated", e.Phase)
}

func (e *PhaseError) Is(target error) bool {
	switch target {
	case ErrAlreadyEvaluated:
		return e.Kind == AlreadyEvaluated
	case ErrPrerequisiteMissing:
		return e.Kind == PrerequisiteMissing
	}
	return false
}

// ValidationError reports invalid construction input.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

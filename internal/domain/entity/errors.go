package entity

import (
	"errors"
	"fmt"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrPassNotFound       = errors.New("boarding pass not found")
	ErrPersistence        = errors.New("persistence failure")
	ErrArtifactGeneration = errors.New("artifact generation failed")
	ErrNotification       = errors.New("notification failed")
)

// ValidationError describes a rejected request
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// StepError is returned when one step of the issuance pipeline fails.
// It matches both its Kind and the underlying cause with errors.Is.
type StepError struct {
	Kind   error
	Step   string
	PassID string
	Err    error
}

func (e *StepError) Error() string {
	if e.PassID == "" {
		return fmt.Sprintf("%s: %v", e.Step, e.Err)
	}
	return fmt.Sprintf("%s (pass %s): %v", e.Step, e.PassID, e.Err)
}

func (e *StepError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

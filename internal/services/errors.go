package services

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by the core services. Handlers and the central
// error handler match on these with errors.Is; the message carries the
// user-facing detail.
var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrInvalidState = errors.New("invalid state")
	ErrForbidden    = errors.New("forbidden")
)

// coreError pairs an error kind with a clean user-facing message
type coreError struct {
	kind    error
	message string
}

func (e *coreError) Error() string { return e.message }

func (e *coreError) Unwrap() error { return e.kind }

// ValidationError builds an ErrValidation with a user-facing message
func ValidationError(format string, args ...interface{}) error {
	return &coreError{kind: ErrValidation, message: fmt.Sprintf(format, args...)}
}

// NotFoundError builds an ErrNotFound naming the missing entity
func NotFoundError(entity string) error {
	return &coreError{kind: ErrNotFound, message: entity + " not found"}
}

// InvalidStateError builds an ErrInvalidState with a user-facing message
func InvalidStateError(format string, args ...interface{}) error {
	return &coreError{kind: ErrInvalidState, message: fmt.Sprintf(format, args...)}
}

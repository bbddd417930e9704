// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for hioload-ring.

package api

import "fmt"

// Common errors used across the library. Buffer failures wrap one of
// these sentinels, so callers can match with errors.Is.
var (
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrOutOfRange      = fmt.Errorf("out of range")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeInvalidArgument
	ErrCodeOutOfRange
	ErrCodeInternal
)

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Unwrap exposes the wrapped sentinel or underlying failure to errors.Is.
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// WithCause records the wrapped error returned by Unwrap.
func (e *Error) WithCause(err error) *Error {
	e.Cause = err
	return e
}

// OutOfRange builds the error returned by value-returning reads on an
// empty or under-populated buffer. The message names the failing
// operation; requested and available are attached as context.
func OutOfRange(message string, requested, available int) *Error {
	return NewError(ErrCodeOutOfRange, message).
		WithCause(ErrOutOfRange).
		WithContext("requested", requested).
		WithContext("available", available)
}

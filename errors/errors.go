// Package errors provides error handling for clausal.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Hints for user-facing messages
//   - Sentinel marks for the error taxonomy (data vs. state errors)
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Check the taxonomy class
//	if errors.Is(err, errors.ErrData) {
//	    // corpus/input problem, not a programming error
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
	Mark         = crdb.Mark
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is         = crdb.Is
	IsAny      = crdb.IsAny
	As         = crdb.As
	Unwrap     = crdb.Unwrap
	UnwrapOnce = crdb.UnwrapOnce
	UnwrapAll  = crdb.UnwrapAll
)

// Assertions
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Sentinel errors for the clausal error taxonomy.
// Use these with errors.Is() for type-safe error checking, and with
// errors.Mark() to tag a rich error with its class while keeping its message.
var (
	// ErrData indicates the reference corpus or another external input is
	// missing, unreadable, or too small to be trusted.
	ErrData = New("data error")

	// ErrNotFitted indicates a query operation was invoked on a predictor
	// that has not been fitted yet.
	ErrNotFitted = New("predictor not fitted")

	// ErrNotConverged indicates an iterative solver ran out of iterations
	// before reaching its tolerance.
	ErrNotConverged = New("solver did not converge")
)

// IsDataError checks if an error is or wraps ErrData.
func IsDataError(err error) bool {
	return err != nil && Is(err, ErrData)
}

// IsNotFittedError checks if an error is or wraps ErrNotFitted.
func IsNotFittedError(err error) bool {
	return err != nil && Is(err, ErrNotFitted)
}

// NewDataError creates a data error with a formatted message.
func NewDataError(format string, args ...interface{}) error {
	return Mark(Newf(format, args...), ErrData)
}

// WrapData wraps an error as a data error with context.
func WrapData(err error, context string) error {
	return Mark(Wrap(err, context), ErrData)
}

// Package errors provides error handling for codecraft.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Hints and details on reported failures
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
//	// Check errors
//	if errors.Is(err, errors.ErrFrameClosed) {
//	    // handle double close
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

// Sentinel errors for codecraft usage errors. Usage errors are fatal at the
// offending call and never retried internally; callers match them with Is().
var (
	// ErrFrameMismatch indicates an attempt to close a frame that is not the
	// current top of the scope stack.
	ErrFrameMismatch = New("frame is not the innermost open block")

	// ErrFrameClosed indicates a second Close on an already-closed handle.
	ErrFrameClosed = New("frame already closed")

	// ErrOutsideClass indicates a class-only operation (method definition,
	// attribute declaration) issued while the innermost block is not a class.
	ErrOutsideClass = New("operation requires an enclosing class block")

	// ErrFormatterFailed indicates the external formatter collaborator
	// rejected or failed to process generated source.
	ErrFormatterFailed = New("formatter failed")
)

// IsUsageError reports whether err is one of the builder usage errors.
func IsUsageError(err error) bool {
	return IsAny(err, ErrFrameMismatch, ErrFrameClosed, ErrOutsideClass)
}

// Package errors provides error handling for loom.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - PII-safe error formatting
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := backend.Write(id, data); err != nil {
//	    return errors.Wrap(err, "backend write")
//	}
//
//	// Check errors
//	if errors.Is(err, errors.ErrBackendUnavailable) {
//	    // handle backend outage
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
	Is        = crdb.Is
	IsAny     = crdb.IsAny
	As        = crdb.As
	Unwrap    = crdb.Unwrap
	UnwrapAll = crdb.UnwrapAll
)

// GetStack is an alias for GetReportableStackTrace for convenience.
var GetStack = crdb.GetReportableStackTrace

// Common sentinel errors for use across loom.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrInvalidConfiguration indicates a data node was constructed with
	// invalid configuration values (empty or malformed config ID, missing
	// backend). Fatal to construction; not recoverable by the core.
	ErrInvalidConfiguration = New("invalid configuration")

	// ErrBackendUnavailable indicates the selected storage backend cannot
	// perform a read or write. Propagated unchanged to the caller; the
	// core performs no retry.
	ErrBackendUnavailable = New("storage backend unavailable")
)

// IsConfigurationError checks if an error is or wraps ErrInvalidConfiguration.
func IsConfigurationError(err error) bool {
	return err != nil && Is(err, ErrInvalidConfiguration)
}

// IsBackendUnavailable checks if an error is or wraps ErrBackendUnavailable.
func IsBackendUnavailable(err error) bool {
	return err != nil && Is(err, ErrBackendUnavailable)
}

// NewConfigurationError creates a configuration error with a formatted message.
func NewConfigurationError(format string, args ...interface{}) error {
	return Wrap(ErrInvalidConfiguration, Newf(format, args...).Error())
}

// WrapBackendUnavailable wraps an error as a backend-unavailable error with context.
func WrapBackendUnavailable(err error, context string) error {
	return Wrap(Wrap(ErrBackendUnavailable, err.Error()), context)
}

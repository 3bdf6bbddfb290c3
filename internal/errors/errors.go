// Package errors is the single import for error plumbing inside punchclock.
// Matching goes through the standard library so AppError.Is is honoured;
// construction and wrapping go through pkg/errors so every error that leaves
// a repository or usecase carries a stack trace for the request logger.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// New returns a sentinel error. Sentinels carry no stack; wrap them at the
// point they are returned.
func New(text string) error {
	return stderrors.New(text)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Wrap annotates err with a stack trace and message. A nil err stays nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// Wrapf is Wrap with a format specifier.
func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// WithStack records the caller's stack on err without changing its message.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

// Errorf builds a new error with a stack trace.
func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}

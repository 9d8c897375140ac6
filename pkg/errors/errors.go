// Package errors augments the standard errors
// provided by fmt (https://golang.org/src/fmt/errors.go)
// with a Wrap() method to wrap errors without resorting
// to fmt.Errorf("%w", err).
package errors

import (
	stderr "errors"
)

var _ error = New("")

// New Error
func New(msg string) *Error {
	return &Error{msg: msg}
}

// Error augments the standard error interface with a Wrap method.
//
// Wrap returns a new value rather than mutating its receiver, so
// package-level sentinel errors may be wrapped concurrently.
type Error struct {
	msg   string
	extra string
	err   error
}

// Error message
func (e *Error) Error() string {
	if e.extra != "" {
		return e.msg + ": " + e.extra
	}
	return e.msg
}

// Unwrap nested error
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.err
}

// Wrap a nested error, keeping the receiver's message
func (e *Error) Wrap(err error) *Error {
	return &Error{msg: e.msg, extra: e.extra, err: err}
}

// WrapMessage wraps a nested error and appends extra context to the message.
// The result still matches the receiver with errors.Is.
func (e *Error) WrapMessage(err error, extra string) *Error {
	return &Error{msg: e.msg, extra: extra, err: err}
}

// Is reports equivalence with the target error.
//
// Two Error values are considered equivalent when they share the same message,
// so wrapped copies of a sentinel still match the sentinel with errors.Is.
func (e *Error) Is(target error) bool {
	if e == target || e.err == target {
		return true
	}
	t, ok := target.(*Error)
	return ok && t.msg == e.msg
}

// As finds the first error in err's chain that matches target, and if so, sets target to that error value and returns true.
// (a shortcut to standard lib errors.As)
func As(err error, target interface{}) bool {
	return stderr.As(err, target)
}

// Is reports whether any error in err's chain matches target
// (a shortcut to standard lib errors.As)
func Is(err, target error) bool {
	return stderr.Is(err, target)
}

package pkg

// Sentinel errors for the morekong packages.
// These errors can be tested using errors.Is for reliable error checking.

import (
	"fmt"
	"slices"
	"strings"
)

// Error represents a chain of errors.
type Error []error

// ErrInvalidLevel is returned when a log level name is not one of the
// registered choices.
//
// This error should be wrapped with the rejected value and the list of valid
// choices.
var ErrInvalidLevel = MakeErrorf("invalid log level")

// ErrWorkersExpr is returned when the worker count formula cannot be
// compiled or does not evaluate to an integer.
//
// This error should be wrapped with the underlying compile or runtime error.
var ErrWorkersExpr = MakeErrorf("invalid workers expression")

// ErrConfigParse is returned when a configuration file cannot be decoded.
//
// This error should be wrapped with the underlying decode error.
var ErrConfigParse = MakeErrorf("configuration parse error")

// MakeError constructs an Error from the given errors.
// The errors are stored in the order they are provided:
// the first argument is the innermost error in the chain.
// Nil is returned if no errors are provided.
func MakeError(errs ...error) Error {
	var e Error

	for _, err := range errs {
		if err != nil {
			e = append(e, UnwrapErrors(err)...)
		}
	}

	return e
}

// MakeErrorf constructs an Error from a formatted error message.
func MakeErrorf(format string, args ...any) Error {
	return MakeError(fmt.Errorf(format, args...))
}

// Error returns a concatenated string representation of all errors
// in the error chain, separated by ": ", from innermost to outermost.
func (e Error) Error() string {
	var sb strings.Builder

	for i, err := range slices.All(e) {
		if i > 0 {
			sb.WriteString(": ")
		}

		sb.WriteString(err.Error())
	}

	return sb.String()
}

// Wrap returns a new chain with one or more errors appended to the receiver.
// The receiver is never modified.
func (e Error) Wrap(err ...error) Error {
	return append(slices.Clip(e), err...)
}

// Wrapf returns a new chain with a formatted error appended to the receiver.
// The receiver is never modified.
func (e Error) Wrapf(format string, args ...any) Error {
	return append(slices.Clip(e), fmt.Errorf(format, args...))
}

// Unwrap returns the slice of errors contained in the receiver.
func (e Error) Unwrap() []error {
	return e
}

// Is reports whether every error of target, which must be an [Error], is
// contained in the receiver. This lets a wrapped chain match the sentinel it
// was derived from.
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	if !ok || len(t) == 0 {
		return false
	}

	for _, want := range t {
		if !slices.ContainsFunc(e, func(have error) bool { return have == want }) {
			return false
		}
	}

	return true
}

// UnwrapErrors recursively unwraps an error chain and returns a slice
// containing all errors in the chain, starting from the innermost error.
func UnwrapErrors(err error) Error {
	if err == nil {
		return nil
	}

	chain := Error{}

	if e, ok := err.(Error); ok {
		// Chains are flattened rather than nested.
		for _, wrapped := range e {
			chain = append(chain, UnwrapErrors(wrapped)...)
		}

		return chain
	}

	if e, ok := err.(interface{ Unwrap() []error }); ok {
		for _, wrapped := range e.Unwrap() {
			chain = append(chain, UnwrapErrors(wrapped)...)
		}
	} else if e, ok := err.(interface{ Unwrap() error }); ok {
		chain = append(chain, UnwrapErrors(e.Unwrap())...)
	}

	return append(chain, err)
}

// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides context-wrapped error handling in Go,
// extending the standard library errors package.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Error represents an error with a base error and a stack trace.
// The stack trace is only captured when [Debug] is set.
type Error struct {
	Base  error
	Stack []string
}

// Wrap wraps the given error into an error object with
// a stack trace. It returns nil if the given error is nil.
// If it is not nil, the result is guaranteed to be of type [*Error].
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	e := &Error{Base: err}
	if Debug {
		for _, f := range CallStack() {
			e.Stack = append(e.Stack, f.Function)
		}
	}
	return e
}

// New returns a new error with the given text, wrapped with
// a stack trace via [Wrap]. The result is guaranteed to be of
// type [*Error]. It is the equivalent of [stderrors.New].
func New(text string) error {
	return Wrap(stderrors.New(text))
}

// Errorf returns a new error with the given format and arguments,
// wrapped with a stack trace via [Wrap]. The result is guaranteed
// to be of type [*Error]. It is the equivalent of [fmt.Errorf].
func Errorf(format string, a ...any) error {
	return Wrap(fmt.Errorf(format, a...))
}

// Error returns the error as a string, wrapping the string of
// the base error with the stack trace.
func (e *Error) Error() string {
	res := e.Base.Error()
	if len(e.Stack) > 0 {
		res += " (" + strings.Join(e.Stack, ": ") + ")"
	}
	return res
}

// String returns the error as a string, wrapping the string of
// the base error with the stack trace.
func (e *Error) String() string {
	return e.Error()
}

// Unwrap returns the underlying base error of the Error.
func (e *Error) Unwrap() error {
	return e.Base
}

// Is reports whether any error in err's tree matches target.
// It is the same as [stderrors.Is].
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
// It is the same as [stderrors.As].
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Join returns an error that wraps the given errors.
// It is the same as [stderrors.Join].
func Join(errs ...error) error {
	return stderrors.Join(errs...)
}

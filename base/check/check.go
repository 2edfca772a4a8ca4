// Copyright (c) 2020, The PBRT Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package check provides fail-fast invariant checking for the
// numeric primitives of the renderer. A failed check logs the
// violation and panics with a [*Violation]; building with the
// nocheck tag removes all checks.
package check

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Sentinel causes of a [Violation]. Use [errors.Is] on a recovered
// violation to find out which invariant was broken.
var (
	// ErrNaN means a component of a value was NaN.
	ErrNaN = errors.New("component is NaN")

	// ErrIndexRange means a component index was out of range.
	ErrIndexRange = errors.New("component index out of range")

	// ErrDivideByZero means a scalar divisor was zero.
	ErrDivideByZero = errors.New("division by zero")
)

// Violation is the panic value of a failed invariant check.
// It wraps one of the sentinel causes together with the
// call stack at the point of detection.
type Violation struct {
	Base  error
	Stack []string
}

// Error returns the violation as a string, wrapping the string of
// the base error with the stack trace.
func (v *Violation) Error() string {
	res := "invariant violation: " + v.Base.Error()
	if len(v.Stack) > 0 {
		res += " (" + strings.Join(v.Stack, ": ") + ")"
	}
	return res
}

// String returns the violation as a string.
func (v *Violation) String() string {
	return v.Error()
}

// Unwrap returns the underlying base error of the Violation.
func (v *Violation) Unwrap() error {
	return v.Base
}

// Fail logs a [Violation] with the given cause and panics with it.
// The optional format and arguments add detail to the cause.
// Fail does nothing when checks are disabled.
func Fail(cause error, format string, a ...any) {
	if !Enabled {
		return
	}
	base := cause
	if format != "" {
		base = fmt.Errorf("%w: %s", cause, fmt.Sprintf(format, a...))
	}
	v := &Violation{Base: base, Stack: callerStack()}
	slog.Error(v.Base.Error(), "stack", v.Stack)
	panic(v)
}

// Assert calls [Fail] with the given cause if cond is false.
// The intended usage is:
//
//	check.Assert(f != 0, check.ErrDivideByZero, "DivScalar")
func Assert(cond bool, cause error, format string, a ...any) {
	if Enabled && !cond {
		Fail(cause, format, a...)
	}
}

// Recover runs fn and returns the [Violation] it panicked with,
// or nil if it returned normally. Panics that are not violations
// are re-raised.
func Recover(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if v, ok := r.(*Violation); ok {
			err = v
			return
		}
		panic(r)
	}()
	fn()
	return nil
}

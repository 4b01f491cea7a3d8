// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides functions for asserting the equality of
// numbers with tolerance (i.e., approximate equality).
package tolassert

import (
	"github.com/stretchr/testify/assert"
)

// Equal asserts that the given two numbers are within 0.001 of each other.
func Equal[T float32 | float64](t assert.TestingT, expected T, actual T, msgAndArgs ...any) bool {
	return EqualTol(t, expected, actual, 0.001, msgAndArgs...)
}

// EqualTol asserts that the given two numbers are within the given
// tolerance of each other.
func EqualTol[T float32 | float64](t assert.TestingT, expected T, actual T, tol T, msgAndArgs ...any) bool {
	return assert.InDelta(t, expected, actual, float64(tol), msgAndArgs...)
}

// EqualTolSlice asserts that the elements of the given two slices of numbers
// are within the given tolerance of each other. The slices must have the
// same length.
func EqualTolSlice[S ~[]E, E float32 | float64](t assert.TestingT, expected S, actual S, tol E, msgAndArgs ...any) bool {
	if !assert.Equal(t, len(expected), len(actual), msgAndArgs...) {
		return false
	}
	res := true
	for i := range expected {
		if !EqualTol(t, expected[i], actual[i], tol, msgAndArgs...) {
			res = false
		}
	}
	return res
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides functions for asserting the equality
// of numbers with tolerance (in other words, it checks whether
// numbers are about equal).
package tolassert

import (
	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/constraints"
)

// DefaultTol is the tolerance used by [Equal].
const DefaultTol = 1.0e-6

// Equal asserts that the given two numbers are about equal,
// within [DefaultTol].
func Equal[T constraints.Float](t assert.TestingT, expected T, actual T, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	return EqualTol(t, expected, actual, DefaultTol, msgAndArgs...)
}

// EqualTol asserts that the given two numbers are about equal,
// within the given absolute tolerance.
func EqualTol[T constraints.Float](t assert.TestingT, expected T, actual T, tolerance T, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	return assert.InDelta(t, float64(expected), float64(actual), float64(tolerance), msgAndArgs...)
}

// EqualArray asserts that the given two arrays are about equal,
// element by element, within the given absolute tolerance.
func EqualArray[T constraints.Float](t assert.TestingT, expected, actual [4]T, tolerance T, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	ok := true
	for i := range expected {
		if !assert.InDelta(t, float64(expected[i]), float64(actual[i]), float64(tolerance), msgAndArgs...) {
			ok = false
		}
	}
	return ok
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides functions for asserting the equality of numbers
// and vectors with tolerance.
package tolassert

import (
	"fmt"

	"cogentcore.org/meshstack/math32"
	"github.com/stretchr/testify/assert"
)

// EqualTol asserts that the given two float32 numbers are equal
// within the given tolerance.
func EqualTol(t assert.TestingT, expected, actual, tol float32, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	return assert.InDelta(t, expected, actual, float64(tol), msgAndArgs...)
}

// EqualTolVector3 asserts that the given two vectors are equal
// component-wise within the given tolerance.
func EqualTolVector3(t assert.TestingT, expected, actual math32.Vector3, tol float32, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	if expected.IsEqualTol(actual, tol) {
		return true
	}
	return assert.Fail(t, fmt.Sprintf("Not equal within %v:\nexpected: %v\nactual  : %v", tol, expected, actual), msgAndArgs...)
}

// EqualTolMatrix4 asserts that the given two matrices are equal
// element-wise within the given tolerance.
func EqualTolMatrix4(t assert.TestingT, expected, actual math32.Matrix4, tol float32, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	ok := true
	for i := range expected {
		ok = assert.InDelta(t, expected[i], actual[i], float64(tol), msgAndArgs...) && ok
	}
	return ok
}

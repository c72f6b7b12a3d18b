// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mstack provides a model-view matrix stack for rendering
// a scene graph as a sequence of nested calls: each level pushes
// a copy of the current transform, multiplies local transforms
// onto it, draws, and pops back to the parent transform.
package mstack

import (
	"fmt"

	"cogentcore.org/meshstack/base/errors"
	"cogentcore.org/meshstack/math32"
)

// ErrStackUnderflow is returned by [Stack.Pop] when only the
// base transform remains on the stack.
var ErrStackUnderflow = errors.New("mstack: stack underflow")

// ErrUnbalanced is returned when a scope of nested calls does not
// pop exactly the matrices it pushed.
var ErrUnbalanced = errors.New("mstack: unbalanced push and pop")

// Stack is a stack of 4x4 transform matrices. The top of the stack
// is the current composed transform. A Stack always holds at least
// one matrix, the base transform, which cannot be popped.
// The zero value is not ready for use; call [New].
type Stack struct {
	mats []math32.Matrix4
}

// New returns a new [Stack] holding a single identity matrix.
func New() *Stack {
	st := &Stack{}
	st.Reset()
	return st
}

// Reset resets the stack to a single identity matrix,
// reusing the allocated storage. It is called at the start of each frame.
func (st *Stack) Reset() {
	st.mats = append(st.mats[:0], math32.Identity4())
}

// Depth returns the number of matrices on the stack (at least 1).
func (st *Stack) Depth() int {
	return len(st.mats)
}

// Current returns a copy of the current (top) matrix.
func (st *Stack) Current() math32.Matrix4 {
	return st.mats[len(st.mats)-1]
}

// Load replaces the current matrix with m.
// It is typically used once per frame to seed the stack with
// the camera view matrix.
func (st *Stack) Load(m math32.Matrix4) {
	st.mats[len(st.mats)-1] = m
}

// Push pushes a copy of the current matrix, so that subsequent
// changes can be undone by [Stack.Pop].
func (st *Stack) Push() {
	st.mats = append(st.mats, st.Current())
}

// Pop discards the current matrix, restoring the matrix that was
// current at the matching [Stack.Push]. It returns an error wrapping
// [ErrStackUnderflow] if there is no matching Push, leaving the
// stack unchanged.
func (st *Stack) Pop() error {
	n := len(st.mats)
	if n <= 1 {
		return fmt.Errorf("Pop on stack of depth %d: %w", n, ErrStackUnderflow)
	}
	st.mats = st.mats[:n-1]
	return nil
}

// MustPop calls [Stack.Pop] and panics on underflow.
// Unbalanced push and pop calls are a programming error.
func (st *Stack) MustPop() {
	errors.Must(st.Pop())
}

// Scope pushes the current matrix, calls fn, and restores the stack
// to its depth before the call, so that any transforms applied within
// fn are discarded afterward. The stack is restored even if fn panics.
// If fn leaves the stack unbalanced, an error wrapping [ErrUnbalanced]
// is returned, unless fn itself returned an error.
func (st *Stack) Scope(fn func() error) (err error) {
	depth := st.Depth()
	st.Push()
	defer func() {
		n := st.Depth()
		if n > depth {
			st.mats = st.mats[:depth]
		}
		if n != depth+1 && err == nil {
			err = fmt.Errorf("Scope: depth %d after call, want %d: %w", n, depth+1, ErrUnbalanced)
		}
	}()
	return fn()
}

// MulLocal multiplies the current matrix by m on the right,
// so that m applies to the geometry before any transform
// already accumulated: current = current * m.
func (st *Stack) MulLocal(m math32.Matrix4) {
	i := len(st.mats) - 1
	st.mats[i] = st.mats[i].Mul(m)
}

// Translate applies a local translation by x, y, z.
func (st *Stack) Translate(x, y, z float32) {
	st.MulLocal(math32.Translation3D(x, y, z))
}

// Scale applies a local (possibly non-uniform) scale by x, y, z.
func (st *Stack) Scale(x, y, z float32) {
	st.MulLocal(math32.Scale3D(x, y, z))
}

// RotateX applies a local rotation about the X axis by the given angle in degrees.
func (st *Stack) RotateX(deg float32) {
	st.MulLocal(math32.RotationX(math32.DegToRad(deg)))
}

// RotateY applies a local rotation about the Y axis by the given angle in degrees.
func (st *Stack) RotateY(deg float32) {
	st.MulLocal(math32.RotationY(math32.DegToRad(deg)))
}

// RotateZ applies a local rotation about the Z axis by the given angle in degrees.
func (st *Stack) RotateZ(deg float32) {
	st.MulLocal(math32.RotationZ(math32.DegToRad(deg)))
}

// TransformPoint returns p transformed by the current matrix.
func (st *Stack) TransformPoint(p math32.Vector3) math32.Vector3 {
	return st.Current().MulVector3AsPoint(p)
}

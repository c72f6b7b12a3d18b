// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mstack

import (
	"errors"
	"math/rand"
	"testing"

	"cogentcore.org/meshstack/base/tolassert"
	"cogentcore.org/meshstack/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = float32(1.0e-5)

func TestNew(t *testing.T) {
	st := New()
	assert.Equal(t, 1, st.Depth())
	assert.Equal(t, math32.Identity4(), st.Current())
}

func TestPopUnderflow(t *testing.T) {
	st := New()
	err := st.Pop()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrStackUnderflow))
	assert.Equal(t, 1, st.Depth())
	assert.Equal(t, math32.Identity4(), st.Current())

	assert.Panics(t, func() { st.MustPop() })
}

func TestPushPopRestores(t *testing.T) {
	st := New()
	st.Load(math32.LookAt(math32.Vec3(1, 0.5, 1), math32.Vec3(-5, -2.5, -5), math32.Vec3(0, 1, 0)))
	before := st.Current()

	st.Push()
	st.Translate(1, 2, 3)
	st.RotateY(30)
	st.Scale(2, 0.5, 1)
	assert.NotEqual(t, before, st.Current())
	require.NoError(t, st.Pop())

	// the saved matrix is a copy, so it is restored exactly
	assert.Equal(t, before, st.Current())
}

func TestBalancedRandom(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	st := New()
	st.Translate(0.5, 0, 0)
	before := st.Current()

	open := 0
	for i_ := 0; i_ < 500; i_++ {
		switch rnd.Intn(6) {
		case 0, 1:
			st.Push()
			open++
		case 2:
			if open > 0 {
				require.NoError(t, st.Pop())
				open--
			}
		case 3:
			st.RotateX(rnd.Float32() * 360)
		case 4:
			st.Translate(rnd.Float32(), rnd.Float32(), rnd.Float32())
		case 5:
			st.Scale(rnd.Float32()+0.5, 1, rnd.Float32()+0.5)
		}
	}
	for ; open > 0; open-- {
		require.NoError(t, st.Pop())
	}
	assert.Equal(t, 1, st.Depth())
	assert.Equal(t, before, st.Current())
}

func TestSiblingsDoNotInterfere(t *testing.T) {
	st := New()
	var a, b math32.Vector3
	st.Push()
	st.Translate(5, 0, 0)
	a = st.TransformPoint(math32.Vec3(0, 0, 0))
	require.NoError(t, st.Pop())
	st.Push()
	st.Translate(0, 5, 0)
	b = st.TransformPoint(math32.Vec3(0, 0, 0))
	require.NoError(t, st.Pop())
	assert.Equal(t, math32.Vec3(5, 0, 0), a)
	assert.Equal(t, math32.Vec3(0, 5, 0), b)
}

func TestMultiplyComposition(t *testing.T) {
	st := New()
	st.Push()
	st.MulLocal(math32.Translation3D(1, 0, 0))
	st.MulLocal(math32.Scale3D(2, 2, 2))
	v := st.Current().MulVector3AsPoint(math32.Vec3(1, 1, 1))
	require.NoError(t, st.Pop())

	// scale acts on the point first, then the translation
	assert.Equal(t, math32.Vec3(3, 2, 2), v)
}

func TestConvenienceMatchesMulLocal(t *testing.T) {
	tests := []struct {
		name string
		fn   func(st *Stack)
		m    math32.Matrix4
	}{
		{"translate", func(st *Stack) { st.Translate(1, -2, 3) }, math32.Translation3D(1, -2, 3)},
		{"scale", func(st *Stack) { st.Scale(2, 3, 4) }, math32.Scale3D(2, 3, 4)},
		{"rotateX", func(st *Stack) { st.RotateX(90) }, math32.RotationX(math32.Pi / 2)},
		{"rotateY", func(st *Stack) { st.RotateY(-45) }, math32.RotationY(-math32.Pi / 4)},
		{"rotateZ", func(st *Stack) { st.RotateZ(180) }, math32.RotationZ(math32.Pi)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := math32.Translation3D(0.5, 0.5, 0.5).Mul(math32.RotationZ(0.3))
			sa := New()
			sa.Load(base)
			tt.fn(sa)
			sb := New()
			sb.Load(base)
			sb.MulLocal(tt.m)
			tolassert.EqualTolMatrix4(t, sb.Current(), sa.Current(), tol)
		})
	}
}

func TestRotateDegrees(t *testing.T) {
	st := New()
	st.RotateZ(90)
	tolassert.EqualTolVector3(t, math32.Vec3(0, 1, 0), st.TransformPoint(math32.Vec3(1, 0, 0)), tol)
}

func TestReset(t *testing.T) {
	st := New()
	st.Push()
	st.Push()
	st.Translate(1, 1, 1)
	st.Reset()
	assert.Equal(t, 1, st.Depth())
	assert.Equal(t, math32.Identity4(), st.Current())
}

func TestScope(t *testing.T) {
	st := New()
	st.Translate(1, 0, 0)
	before := st.Current()

	var inner math32.Vector3
	err := st.Scope(func() error {
		st.Translate(0, 1, 0)
		return st.Scope(func() error {
			st.Scale(2, 2, 2)
			inner = st.TransformPoint(math32.Vec3(1, 1, 1))
			return nil
		})
	})
	require.NoError(t, err)
	assert.Equal(t, math32.Vec3(3, 3, 2), inner)
	assert.Equal(t, before, st.Current())
	assert.Equal(t, 1, st.Depth())

	errFn := errors.New("draw failed")
	err = st.Scope(func() error {
		st.RotateX(10)
		return errFn
	})
	assert.ErrorIs(t, err, errFn)
	assert.Equal(t, before, st.Current())

	err = st.Scope(func() error {
		st.Push()
		st.Push()
		return nil
	})
	assert.ErrorIs(t, err, ErrUnbalanced)
	assert.Equal(t, 1, st.Depth())
	assert.Equal(t, before, st.Current())

	assert.Panics(t, func() {
		_ = st.Scope(func() error {
			st.Translate(9, 9, 9)
			panic("boom")
		})
	})
	assert.Equal(t, 1, st.Depth())
	assert.Equal(t, before, st.Current())
}

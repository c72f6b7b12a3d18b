// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"testing"

	"cogentcore.org/meshstack/base/tolassert"
	"cogentcore.org/meshstack/math32"
	"cogentcore.org/meshstack/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCameraPresets(t *testing.T) {
	var cm Camera
	cm.Defaults()
	assert.Equal(t, float32(1), cm.ZoomScale())
	tolassert.EqualTolMatrix4(t, math32.LookAt(math32.Vec3(1, 0.5, 1), math32.Vec3(-5, -2.5, -5), math32.Vec3(0, 1, 0)), cm.View(), tol)

	tests := []struct {
		preset Preset
		dist   float32
	}{
		{Front, 1},
		{Top, 1},
		{RightSide, 1},
		{Axonometric, math32.Sqrt(1 + 0.81 + 1)},
	}
	for _, tt := range tests {
		t.Run(tt.preset.String(), func(t *testing.T) {
			cm.SetPreset(tt.preset)
			// the target is straight ahead of the eye
			tolassert.EqualTolVector3(t, math32.Vec3(0, 0, -tt.dist), cm.View().MulVector3AsPoint(cm.Target), tol)
		})
	}

	cm.SetPreset(Top)
	// -Z in the world is up on the screen
	up := cm.View().MulVector3AsVector(math32.Vec3(0, 0, -1))
	tolassert.EqualTolVector3(t, math32.Vec3(0, 1, 0), up, tol)
}

func TestCameraFollowPreset(t *testing.T) {
	var cm, def Camera
	cm.Defaults()
	def.Defaults()
	assert.True(t, cm.Ortho)
	assert.Equal(t, float32(30), cm.FOV)
	cm.SetPreset(Follow)
	tolassert.EqualTolMatrix4(t, def.View(), cm.View(), tol)
	assert.Equal(t, float32(-20), cm.Near)
	assert.Equal(t, float32(40), cm.Far)
	tolassert.EqualTolMatrix4(t, math32.Ortho(-1.5, 1.5, -1, 1, -20, 40), cm.Projection(1.5), tol)

	cm.SetPreset(Top)
	assert.Equal(t, float32(-5), cm.Near)
	assert.Equal(t, float32(5), cm.Far)
}

func TestCameraRotation(t *testing.T) {
	var cm Camera
	cm.Defaults()
	cm.SetPreset(Front)
	cm.Gamma = 90
	// the scene is turned about Y before viewing
	p := math32.Vec3(0, 0.5, 1)
	want := math32.LookAt(cm.Eye, cm.Target, cm.Up).MulVector3AsPoint(math32.Vec3(1, 0.5, 0))
	tolassert.EqualTolVector3(t, want, cm.View().MulVector3AsPoint(p), tol)

	cm.SetPreset(Front)
	assert.Equal(t, float32(0), cm.Gamma)
}

func TestCameraProjection(t *testing.T) {
	var cm Camera
	cm.Defaults()
	tolassert.EqualTolMatrix4(t, math32.Ortho(-2, 2, -1, 1, -5, 5), cm.Projection(2), tol)

	cm.Ortho = false
	cm.Near, cm.Far = 0.1, 100
	tolassert.EqualTolMatrix4(t, math32.Perspective(30, 2, 0.1, 100), cm.Projection(2), tol)

	cm.Zoom = 50
	assert.Equal(t, float32(0.5), cm.ZoomScale())
}

func TestPresetText(t *testing.T) {
	var p Preset
	require.NoError(t, p.UnmarshalText([]byte("right-side")))
	assert.Equal(t, RightSide, p)
	b, err := Axonometric.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "axonometric", string(b))
	assert.ErrorIs(t, p.UnmarshalText([]byte("isometric")), shape.ErrInvalidParameter)
	require.NoError(t, p.UnmarshalText([]byte("follow")))
	assert.Equal(t, Follow, p)
	assert.Equal(t, "Preset(9)", Preset(9).String())
}

func TestFollowView(t *testing.T) {
	view := math32.LookAt(math32.Vec3(1, 1, 1), math32.Vec3(0, 0.1, 0), math32.Vec3(0, 1, 0))
	model := view.Mul(math32.Translation3D(1, 2, 3))
	fv, err := FollowView(view, model)
	require.NoError(t, err)
	tolassert.EqualTolVector3(t, math32.Vector3{}, fv.MulVector3AsPoint(math32.Vec3(1, 2, 3)), 1.0e-4)
	tolassert.EqualTolVector3(t, math32.Vec3(0, 0, -2), fv.MulVector3AsPoint(math32.Vec3(1, 2, 5)), 1.0e-4)

	_, err = FollowView(math32.Scale3D(0, 1, 1), model)
	assert.ErrorIs(t, err, shape.ErrInvalidParameter)
}

// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"

	"cogentcore.org/meshstack/base/errors"
	"cogentcore.org/meshstack/base/reflectx"
	"cogentcore.org/meshstack/math32"
	"cogentcore.org/meshstack/shape"
)

// Preset is a named camera placement.
type Preset int32

const (
	// Default looks from (1, 0.5, 1) toward (-5, -2.5, -5).
	Default Preset = iota

	// Axonometric looks from (1, 1, 1) toward (0, 0.1, 0).
	Axonometric

	// Front looks along -X at height 0.5.
	Front

	// Top looks down the Y axis, with -Z up on the screen.
	Top

	// RightSide looks along -Z at height 0.5.
	RightSide

	// Follow rides on the helicopter, looking ahead along its path.
	// It starts from the Default placement, and the view of each
	// following frame comes from [FollowView].
	Follow
)

var presetNames = [...]string{"default", "axonometric", "front", "top", "right-side", "follow"}

func (p Preset) String() string {
	if p < 0 || int(p) >= len(presetNames) {
		return fmt.Sprintf("Preset(%d)", int32(p))
	}
	return presetNames[p]
}

// MarshalText implements [encoding.TextMarshaler].
func (p Preset) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (p *Preset) UnmarshalText(text []byte) error {
	for i, nm := range presetNames {
		if nm == string(text) {
			*p = Preset(i)
			return nil
		}
	}
	return fmt.Errorf("unknown camera preset %q: %w", text, shape.ErrInvalidParameter)
}

// Camera defines the view and projection of the scene.
type Camera struct {
	// Eye is the position of the camera.
	Eye math32.Vector3

	// Target is the point the camera looks at.
	Target math32.Vector3

	// Up is the up direction of the camera.
	Up math32.Vector3

	// Gamma is a rotation of the scene about the Y axis, in degrees.
	Gamma float32

	// Theta is a rotation of the scene about the X axis, in degrees.
	Theta float32

	// Zoom is the scene scale in percent.
	Zoom float32 `default:"100"`

	// Ortho selects an orthographic instead of a perspective projection.
	Ortho bool `default:"true"`

	// FOV is the vertical field of view in degrees, for perspective projection.
	FOV float32 `default:"30"`

	// Near is the near clipping plane.
	Near float32

	// Far is the far clipping plane.
	Far float32
}

// Defaults sets the default camera: the [Default] preset with an
// orthographic projection.
func (cm *Camera) Defaults() {
	errors.Log(reflectx.SetFromDefaultTags(cm))
	cm.SetPreset(Default)
}

// SetPreset places the camera at the given preset,
// resetting the Gamma and Theta rotations. The [Follow] preset
// uses a deeper clipping range, from -20 to 40.
func (cm *Camera) SetPreset(p Preset) {
	cm.Gamma, cm.Theta = 0, 0
	cm.Up = math32.Vec3(0, 1, 0)
	cm.Near, cm.Far = -5, 5
	switch p {
	case Axonometric:
		cm.Eye, cm.Target = math32.Vec3(1, 1, 1), math32.Vec3(0, 0.1, 0)
	case Front:
		cm.Eye, cm.Target = math32.Vec3(1, 0.5, 0), math32.Vec3(0, 0.5, 0)
	case Top:
		cm.Eye, cm.Target = math32.Vec3(0, 1.5, 0), math32.Vec3(0, 0.5, 0)
		cm.Up = math32.Vec3(0, 0, -1)
	case RightSide:
		cm.Eye, cm.Target = math32.Vec3(0, 0.5, 1), math32.Vec3(0, 0.5, 0)
	case Follow:
		cm.Eye, cm.Target = math32.Vec3(1, 0.5, 1), math32.Vec3(-5, -2.5, -5)
		cm.Near, cm.Far = -20, 40
	default:
		cm.Eye, cm.Target = math32.Vec3(1, 0.5, 1), math32.Vec3(-5, -2.5, -5)
	}
}

// View returns the view matrix: the look-at transform followed by
// the Gamma and Theta scene rotations.
func (cm *Camera) View() math32.Matrix4 {
	vm := math32.LookAt(cm.Eye, cm.Target, cm.Up)
	if cm.Gamma == 0 && cm.Theta == 0 {
		return vm
	}
	rot := math32.RotationY(math32.DegToRad(cm.Gamma)).Mul(math32.RotationX(math32.DegToRad(cm.Theta)))
	return vm.Mul(rot)
}

// Projection returns the projection matrix for the given aspect ratio
// (width / height).
func (cm *Camera) Projection(aspect float32) math32.Matrix4 {
	if cm.Ortho {
		return math32.Ortho(-aspect, aspect, -1, 1, cm.Near, cm.Far)
	}
	return math32.Perspective(cm.FOV, aspect, max(cm.Near, 0.01), cm.Far)
}

// ZoomScale returns the uniform scale factor for the Zoom percentage.
func (cm *Camera) ZoomScale() float32 {
	return cm.Zoom / 100
}

// FollowView returns a view matrix for a camera riding on an object:
// model is the model-view matrix the object was drawn with under the
// given view. The camera sits at the object origin and looks along its
// local +Z axis. It fails if view is not invertible.
func FollowView(view, model math32.Matrix4) (math32.Matrix4, error) {
	inv, ok := view.Inverse()
	if !ok {
		return math32.Identity4(), fmt.Errorf("FollowView: view matrix is singular: %w", shape.ErrInvalidParameter)
	}
	world := inv.Mul(model)
	eye := world.MulVector3AsPoint(math32.Vector3{})
	at := world.MulVector3AsPoint(math32.Vec3(0, 0, 2))
	return math32.LookAt(eye, at, math32.Vec3(0, 1, 0)), nil
}

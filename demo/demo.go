// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package demo draws a helicopter flying in circles over a small
// town, dropping cargo boxes, as nested transform stack calls.
// The scene state for each frame comes in as a [Params] value.
package demo

import (
	"slices"

	"cogentcore.org/meshstack/base/errors"
	"cogentcore.org/meshstack/base/reflectx"
	"cogentcore.org/meshstack/math32"
	"cogentcore.org/meshstack/mstack"
	"cogentcore.org/meshstack/scene"
)

// Names of the meshes drawn by the scene.
const (
	Sphere   = "sphere"
	Cube     = "cube"
	Cylinder = "cylinder"
	Pyramid  = "pyramid"
)

// Params has the state of the scene for one frame.
type Params struct {
	// WorldScale is the overall scale of the scene.
	WorldScale float32 `default:"0.024"`

	// CabinLength is the length of the helicopter cabin.
	CabinLength float32 `default:"0.9"`

	// Radius is the radius of the circle the helicopter flies on.
	Radius float32 `default:"4"`

	// Height is the flying height of the helicopter.
	Height float32

	// Scale is the scale of the helicopter.
	Scale float32 `default:"1"`

	// HeliAngle is the position of the helicopter along its circle, in degrees.
	HeliAngle float32

	// BladeAngle is the rotation of the rotor blades, in degrees.
	BladeAngle float32

	// Lean is the sideways lean of the helicopter when moving, in degrees.
	Lean float32

	// BladeSpeed is the rotor speed in revolutions per second.
	BladeSpeed float32 `default:"2"`

	// FlightSpeed is the flight speed in revolutions of the circle per second.
	FlightSpeed float32 `default:"0.05"`

	// FallSpeed is the speed at which dropped boxes fall.
	FallSpeed float32 `default:"1"`

	// BoxLifetime is the number of seconds a dropped box stays
	// in the scene before it is removed.
	BoxLifetime float32 `default:"5"`

	// Boxes are the dropped cargo boxes.
	Boxes []Box
}

// Box is a dropped cargo box.
type Box struct {
	// Angle is the position of the box along the flight circle, in degrees.
	Angle float32

	// Height of the box above the ground.
	Height float32

	// Spin is the rotation of the box about its vertical axis, in degrees.
	Spin float32

	// Scale of the box.
	Scale float32

	// Age is the number of seconds since the box was dropped.
	Age float32
}

// Defaults sets the fields from their `default` struct tags.
func (p *Params) Defaults() {
	errors.Log(reflectx.SetFromDefaultTags(p))
}

// Advance moves the scene forward by dt seconds: the blades spin,
// the helicopter moves along its circle, and falling boxes drop
// until they reach the ground. Boxes older than BoxLifetime are removed.
func (p *Params) Advance(dt float32) {
	p.BladeAngle = wrapDegrees(p.BladeAngle + 360*p.BladeSpeed*dt)
	p.HeliAngle = wrapDegrees(p.HeliAngle + 360*p.FlightSpeed*dt)
	p.Boxes = slices.DeleteFunc(p.Boxes, func(b Box) bool {
		return b.Age+dt > p.BoxLifetime
	})
	for i := range p.Boxes {
		b := &p.Boxes[i]
		b.Age += dt
		if b.Height <= 0 {
			continue
		}
		b.Height = max(b.Height-p.FallSpeed*dt, 0)
		b.Spin = wrapDegrees(b.Spin + 180*dt)
	}
}

// DropBox drops a new box from the current helicopter position.
func (p *Params) DropBox() {
	p.Boxes = append(p.Boxes, Box{Angle: p.HeliAngle, Height: p.Height, Scale: 1})
}

// wrapDegrees returns deg in the range [0, 360).
// Infinite and NaN angles become 0.
func wrapDegrees(deg float32) float32 {
	if math32.IsNaN(deg) || math32.IsInf(deg, 0) {
		return 0
	}
	deg = math32.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		return 0
	}
	return deg
}

// World draws the whole scene and returns the model-view matrix
// of the helicopter, from which a following camera can be placed.
func World(ctx *scene.Context, p *Params) (heli math32.Matrix4, err error) {
	err = ctx.Group(func() error {
		ctx.Stack.Scale(p.WorldScale, p.WorldScale, p.WorldScale)
		ctx.Stack.Scale(2.5, 2.5, 2.5)
		heli, err = Helicopter(ctx, p)
		if err != nil {
			return err
		}
		return run(
			func() error {
				return ctx.Group(func() error {
					ctx.Stack.Translate(0, -0.4, 0)
					return DropBoxes(ctx, p)
				})
			},
			func() error { return Buildings(ctx) },
			func() error { return Ground(ctx) },
		)
	})
	return
}

// run calls each of the given functions in turn,
// stopping at the first error.
func run(fns ...func() error) error {
	for _, fn := range fns {
		if err := fn(); err != nil {
			return err
		}
	}
	return nil
}

// part draws the given mesh within a group, after applying
// the local transforms of xf.
func part(ctx *scene.Context, mesh string, xf func(st *mstack.Stack)) error {
	return ctx.Group(func() error {
		xf(ctx.Stack)
		return ctx.Draw(mesh)
	})
}

// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package demo

import (
	"cogentcore.org/meshstack/math32"
	"cogentcore.org/meshstack/mstack"
	"cogentcore.org/meshstack/scene"
)

// Helicopter draws the helicopter at its place on the flight circle,
// returning its model-view matrix.
func Helicopter(ctx *scene.Context, p *Params) (heli math32.Matrix4, err error) {
	err = ctx.Group(func() error {
		st := ctx.Stack
		st.Translate(p.Radius, p.Height, 0)
		st.RotateY(-90)
		st.Translate(0, 0, p.Radius)
		st.RotateY(p.HeliAngle)
		st.Translate(p.Radius, 0, 0)
		st.RotateY(-90)
		if p.Lean != 0 {
			st.RotateX(p.Lean)
			st.RotateZ(p.Lean)
		}
		st.Scale(p.Scale, p.Scale, p.Scale)
		heli = st.Current()
		return HelicopterParts(ctx, p)
	})
	return
}

// HelicopterParts draws the parts of the helicopter in its own frame,
// with the cabin centered above the origin and the tail along +X.
func HelicopterParts(ctx *scene.Context, p *Params) error {
	cl := p.CabinLength
	ctx.SetColor(1, 0, 1)
	return run(
		func() error { // cabin
			return part(ctx, Sphere, func(st *mstack.Stack) {
				st.Translate(0, 0.4, 0)
				st.Scale(cl, cl/2+0.05, cl/2+0.05)
			})
		},
		func() error { // tail
			return part(ctx, Sphere, func(st *mstack.Stack) {
				st.Translate(0.75, 0.5, 0)
				st.Scale(cl, cl/6, cl/6)
			})
		},
		func() error { // tail fin
			return part(ctx, Sphere, func(st *mstack.Stack) {
				st.Translate(1.2, 0.6, 0)
				st.RotateZ(60)
				st.Scale(cl/3, cl/6, cl/6)
			})
		},
		func() error { // tail mast
			return ctx.Group(func() error {
				ctx.SetColor(1, 1, 1)
				return part(ctx, Cylinder, func(st *mstack.Stack) {
					st.Translate(1.2, 0.62, 0.1)
					st.RotateX(90)
					st.Scale(0.025, 0.08, 0.025)
				})
			})
		},
		func() error { return Rotor(ctx, p) },
		func() error { return TailRotor(ctx, p) },
		func() error { return LandingSkids(ctx, p) },
		func() error { return Connections(ctx, p) },
	)
}

// Rotor draws the four main blades and the mast, spun by p.BladeAngle.
func Rotor(ctx *scene.Context, p *Params) error {
	return ctx.Group(func() error {
		ctx.Stack.RotateY(p.BladeAngle)
		ctx.SetColor(0, 0, 0)
		for k := 0; k < 4; k++ {
			err := part(ctx, Sphere, func(st *mstack.Stack) {
				st.RotateY(float32(90 * k))
				st.Translate(0.5, 0.7, 0)
				st.Scale(1, 0.015, 0.075)
			})
			if err != nil {
				return err
			}
		}
		ctx.SetColor(1, 1, 1)
		return part(ctx, Cylinder, func(st *mstack.Stack) {
			st.Translate(0, 0.68, 0)
			st.Scale(0.025, 0.08, 0.025)
		})
	})
}

// TailRotor draws the two tail blades, spun by p.BladeAngle.
func TailRotor(ctx *scene.Context, p *Params) error {
	return ctx.Group(func() error {
		ctx.Stack.Translate(1.2, 0.62, 0.13)
		ctx.Stack.RotateZ(p.BladeAngle)
		ctx.SetColor(0, 0, 0)
		for _, rot := range []float32{0, 180} {
			err := part(ctx, Sphere, func(st *mstack.Stack) {
				st.RotateY(rot)
				st.Translate(0.1, 0, 0)
				st.Scale(0.4, 0.015, 0.02)
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// LandingSkids draws the two landing skids.
func LandingSkids(ctx *scene.Context, p *Params) error {
	cl := p.CabinLength
	return ctx.Group(func() error {
		ctx.SetColor(0.7, 0.3, 0.5)
		for _, z := range []float32{0.2, -0.2} {
			err := part(ctx, Cylinder, func(st *mstack.Stack) {
				st.Translate(0, 0, z)
				st.Scale(cl+0.1, cl/30, cl/30)
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// Connections draws the four struts between the cabin and the skids.
func Connections(ctx *scene.Context, p *Params) error {
	cl := p.CabinLength
	return ctx.Group(func() error {
		ctx.SetColor(1, 1, 1)
		struts := []struct{ pos, rot math32.Vector3 }{
			{math32.Vec3(0.2, 0.1, 0.15), math32.Vec3(-30, 0, -45)},
			{math32.Vec3(0.2, 0.1, -0.15), math32.Vec3(30, 0, -45)},
			{math32.Vec3(-0.2, 0.1, 0.15), math32.Vec3(-30, 0, 45)},
			{math32.Vec3(-0.2, 0.1, -0.15), math32.Vec3(30, 0, 45)},
		}
		for _, s := range struts {
			err := part(ctx, Cube, func(st *mstack.Stack) {
				st.Translate(s.pos.X, s.pos.Y, s.pos.Z)
				st.RotateX(s.rot.X)
				st.RotateZ(s.rot.Z)
				st.Scale(cl/3, cl/60, cl/60)
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}

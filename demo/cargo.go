// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package demo

import (
	"cogentcore.org/meshstack/mstack"
	"cogentcore.org/meshstack/scene"
)

// DropBoxes draws the dropped boxes, each at its angle on a circle
// inside the flight circle.
func DropBoxes(ctx *scene.Context, p *Params) error {
	radius := p.Radius - p.Radius/3.4
	for _, b := range p.Boxes {
		err := ctx.Group(func() error {
			st := ctx.Stack
			st.RotateY(b.Angle - 45)
			st.Translate(radius, b.Height, radius)
			st.RotateY(b.Spin)
			st.Scale(b.Scale, b.Scale, b.Scale)
			return CargoBox(ctx)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// CargoBox draws a small wooden box centered at height 0.5:
// a body with a frame of slats on each face and a cross on top.
func CargoBox(ctx *scene.Context) error {
	return ctx.Group(func() error {
		ctx.Stack.Translate(0, 0.5, 0)
		ctx.Stack.Scale(0.2, 0.2, 0.2)
		ctx.SetColor(0.6, 0.3, 0)
		if err := ctx.Draw(Cube); err != nil {
			return err
		}
		ctx.SetColor(0.3, 0.15, 0)
		faces := []func(st *mstack.Stack){
			func(st *mstack.Stack) {},
			func(st *mstack.Stack) { st.RotateY(90) },
			func(st *mstack.Stack) { st.RotateY(-90) },
			func(st *mstack.Stack) { st.RotateX(90) },
			func(st *mstack.Stack) { st.RotateX(180) },
		}
		for _, face := range faces {
			err := ctx.Group(func() error {
				face(ctx.Stack)
				return boxFrame(ctx)
			})
			if err != nil {
				return err
			}
		}
		return ctx.Group(func() error { // top
			ctx.Stack.RotateX(-90)
			if err := boxCross(ctx); err != nil {
				return err
			}
			return boxFrame(ctx)
		})
	})
}

// boxSlat draws one slat along the top edge of the +Z face.
func boxSlat(ctx *scene.Context) error {
	return part(ctx, Cube, func(st *mstack.Stack) {
		st.Translate(0, 0.425, 0.52)
		st.Scale(1, 0.1, 0.1)
	})
}

// boxFrame draws the four slats around the +Z face.
func boxFrame(ctx *scene.Context) error {
	frame := []func(st *mstack.Stack){
		func(st *mstack.Stack) {},
		func(st *mstack.Stack) { st.Translate(0, -0.85, 0) },
		func(st *mstack.Stack) { st.RotateZ(90) },
		func(st *mstack.Stack) { st.RotateZ(-90) },
	}
	for _, xf := range frame {
		err := ctx.Group(func() error {
			xf(ctx.Stack)
			return boxSlat(ctx)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// boxCross draws two diagonal slats across the +Z face.
func boxCross(ctx *scene.Context) error {
	return ctx.Group(func() error {
		ctx.Stack.RotateZ(45)
		err := ctx.Group(func() error {
			ctx.Stack.Translate(0, -0.2125, 0)
			ctx.Stack.Scale(1.06, 0.5, 1)
			return boxSlat(ctx)
		})
		if err != nil {
			return err
		}
		return ctx.Group(func() error {
			ctx.Stack.Translate(0.2125, 0, 0)
			ctx.Stack.RotateZ(90)
			ctx.Stack.Scale(1.06, 0.5, 1)
			return boxSlat(ctx)
		})
	})
}

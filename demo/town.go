// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package demo

import (
	"cogentcore.org/meshstack/mstack"
	"cogentcore.org/meshstack/scene"
)

// Ground draws the paved ground and the grass strip.
func Ground(ctx *scene.Context) error {
	return ctx.Group(func() error {
		ctx.SetColor(0.3, 0.3, 0.3)
		err := part(ctx, Cube, func(st *mstack.Stack) {
			st.Translate(-7.5, -0.025, 0)
			st.Scale(35, 0.05, 50)
		})
		if err != nil {
			return err
		}
		ctx.SetColor(0, 0.6, 0.29)
		return part(ctx, Cube, func(st *mstack.Stack) {
			st.Translate(17.5, -0.025, 0)
			st.Scale(15, 0.05, 50)
		})
	})
}

// Building draws a tower block standing on the ground.
func Building(ctx *scene.Context) error {
	return ctx.Group(func() error {
		ctx.SetColor(0.1, 0.1, 0.1)
		return part(ctx, Cube, func(st *mstack.Stack) {
			st.Translate(22.6, 3.5, -22.6)
			st.Scale(4.5, 7, 4.5)
		})
	})
}

// Buildings draws two tower blocks and a red pyramid roof.
func Buildings(ctx *scene.Context) error {
	return run(
		func() error { return Building(ctx) },
		func() error {
			return ctx.Group(func() error {
				ctx.Stack.Translate(2.5, 0, 69.5)
				ctx.Stack.Scale(0.9, 1.2, 2.2)
				return Building(ctx)
			})
		},
		func() error {
			return ctx.Group(func() error {
				ctx.SetColor(1, 0.3, 0.3)
				return part(ctx, Pyramid, func(st *mstack.Stack) {
					st.Translate(22.85, 9.9, 19.75)
					st.RotateY(180)
					st.Scale(4.1, 3, 10)
				})
			})
		},
	)
}

// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene renders a scene graph expressed as nested calls
// against a transform stack. A [Context] owns the [mstack.Stack] and
// hands the current model-view matrix to a [Drawer] for each mesh drawn.
// Scenes can also be described as an explicit tree of [Node] values,
// which render through the same push and pop discipline.
package scene

import (
	"fmt"
	"log/slog"

	"cogentcore.org/meshstack/base/errors"
	"cogentcore.org/meshstack/math32"
	"cogentcore.org/meshstack/mstack"
	"cogentcore.org/meshstack/shape"
)

// ErrUnbalanced is returned by [Context.Frame] when the scene leaves
// the transform stack at a different depth than it found it.
// It is the same error as [mstack.ErrUnbalanced].
var ErrUnbalanced = mstack.ErrUnbalanced

// Drawer is the consumer of draw calls: a GPU backend uploads the
// model-view matrix and color as uniforms and issues the indexed draw
// of the mesh, using [shape.Mesh.Indices] for the given primitive.
type Drawer interface {
	Draw(ms *shape.Mesh, mode shape.Primitive, modelView math32.Matrix4, color math32.Vector3) error
}

// Context holds the state used while rendering one frame.
type Context struct {
	// Stack is the model-view transform stack.
	Stack *mstack.Stack

	// Meshes has the meshes drawn by name.
	Meshes *shape.Library

	// Drawer receives the draw calls.
	Drawer Drawer

	// Mode is the primitive drawn for each mesh.
	Mode shape.Primitive

	// Color is the current draw color, set with [Context.SetColor].
	Color math32.Vector3

	// Draws is the number of draw calls made in the current frame.
	Draws int
}

// NewContext returns a new [Context] drawing meshes from the given
// library to the given drawer, in [shape.Triangles] mode.
func NewContext(meshes *shape.Library, drawer Drawer) *Context {
	return &Context{
		Stack:  mstack.New(),
		Meshes: meshes,
		Drawer: drawer,
		Color:  math32.Vec3(1, 1, 1),
	}
}

// Frame renders one frame: it resets the stack, loads the given view
// matrix as the base transform, and calls fn to draw the scene.
// An error wrapping [ErrUnbalanced] is added if fn does not leave
// the stack at its base depth.
func (ctx *Context) Frame(view math32.Matrix4, fn func() error) error {
	ctx.Stack.Reset()
	ctx.Stack.Load(view)
	ctx.Draws = 0
	err := fn()
	if d := ctx.Stack.Depth(); d != 1 {
		err = errors.Join(err, fmt.Errorf("Frame: stack depth %d at end of frame: %w", d, ErrUnbalanced))
	}
	slog.Debug("scene: frame", "draws", ctx.Draws, "mode", ctx.Mode)
	return err
}

// SetColor sets the color used for subsequent draws.
func (ctx *Context) SetColor(r, g, b float32) {
	ctx.Color.Set(r, g, b)
}

// Group calls fn within a [mstack.Stack.Scope], so that transforms
// applied by fn are undone afterward. The draw color is also restored.
func (ctx *Context) Group(fn func() error) error {
	clr := ctx.Color
	defer func() { ctx.Color = clr }()
	return ctx.Stack.Scope(fn)
}

// Draw draws the mesh of the given name with the current transform
// and color. An error wrapping [shape.ErrMeshNotFound] is returned
// if there is no such mesh.
func (ctx *Context) Draw(name string) error {
	ms, err := ctx.Meshes.MeshByNameTry(name)
	if err != nil {
		return err
	}
	return ctx.DrawMesh(ms)
}

// DrawMesh draws the given mesh with the current transform and color.
func (ctx *Context) DrawMesh(ms *shape.Mesh) error {
	ctx.Draws++
	return ctx.Drawer.Draw(ms, ctx.Mode, ctx.Stack.Current(), ctx.Color)
}

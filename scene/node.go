// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"log/slog"

	"cogentcore.org/meshstack/math32"
	"github.com/jinzhu/copier"
)

// Node is an element of an explicit scene tree. Its local transform
// applies to its own mesh and to all of its children.
type Node struct {
	// Name is the name of the node.
	Name string

	// Mesh is the name of the mesh drawn at this node; empty for a pure group.
	Mesh string

	// Color is the draw color for this node and its children;
	// nil inherits the color of the parent.
	Color *math32.Vector3

	// Pos is the translation of the node.
	Pos math32.Vector3

	// Rot is the rotation of the node as Euler angles in degrees,
	// applied about Z, then X, then Y.
	Rot math32.Vector3

	// Scale is the scale of the node.
	Scale math32.Vector3

	// Children are the child nodes, drawn after this node's mesh.
	Children []*Node
}

// NewNode returns a new [Node] with the given name and mesh,
// and a unit scale.
func NewNode(name, mesh string) *Node {
	return &Node{Name: name, Mesh: mesh, Scale: math32.Vec3(1, 1, 1)}
}

// SetPos sets the [Node.Pos] position of the node.
func (nd *Node) SetPos(x, y, z float32) *Node {
	nd.Pos.Set(x, y, z)
	return nd
}

// SetRot sets the [Node.Rot] Euler rotation of the node, in degrees.
func (nd *Node) SetRot(x, y, z float32) *Node {
	nd.Rot.Set(x, y, z)
	return nd
}

// SetScale sets the [Node.Scale] scale of the node.
func (nd *Node) SetScale(x, y, z float32) *Node {
	nd.Scale.Set(x, y, z)
	return nd
}

// SetColor sets the [Node.Color] of the node.
func (nd *Node) SetColor(r, g, b float32) *Node {
	clr := math32.Vec3(r, g, b)
	nd.Color = &clr
	return nd
}

// AddChild adds the given children to the node and returns the node.
func (nd *Node) AddChild(kids ...*Node) *Node {
	nd.Children = append(nd.Children, kids...)
	return nd
}

// Matrix returns the local transform of the node:
// translate * rotY * rotX * rotZ * scale.
func (nd *Node) Matrix() math32.Matrix4 {
	m := math32.Translation3D(nd.Pos.X, nd.Pos.Y, nd.Pos.Z)
	if nd.Rot.Y != 0 {
		m = m.Mul(math32.RotationY(math32.DegToRad(nd.Rot.Y)))
	}
	if nd.Rot.X != 0 {
		m = m.Mul(math32.RotationX(math32.DegToRad(nd.Rot.X)))
	}
	if nd.Rot.Z != 0 {
		m = m.Mul(math32.RotationZ(math32.DegToRad(nd.Rot.Z)))
	}
	return m.Mul(math32.Scale3D(nd.Scale.X, nd.Scale.Y, nd.Scale.Z))
}

// Render draws the node and its children within a [Context.Group].
func (nd *Node) Render(ctx *Context) error {
	return ctx.Group(func() error {
		ctx.Stack.MulLocal(nd.Matrix())
		if nd.Color != nil {
			ctx.Color = *nd.Color
		}
		if nd.Mesh != "" {
			if err := ctx.Draw(nd.Mesh); err != nil {
				return err
			}
		}
		for _, kid := range nd.Children {
			if err := kid.Render(ctx); err != nil {
				return err
			}
		}
		return nil
	})
}

// Walk calls fn on the node and all of its descendants, depth first.
// Children of a node are skipped if fn returns false.
func (nd *Node) Walk(fn func(n *Node) bool) {
	if !fn(nd) {
		return
	}
	for _, kid := range nd.Children {
		kid.Walk(fn)
	}
}

// NumNodes returns the number of nodes in the tree rooted at this node.
func (nd *Node) NumNodes() int {
	n := 0
	nd.Walk(func(*Node) bool {
		n++
		return true
	})
	return n
}

// Clone returns a deep copy of the tree rooted at this node.
// The copy shares no memory with the original.
func (nd *Node) Clone() *Node {
	cp := &Node{}
	err := copier.CopyWithOption(cp, nd, copier.Option{CaseSensitive: true, DeepCopy: true})
	if err != nil {
		slog.Error("scene.Node.Clone", "node", nd.Name, "err", err)
	}
	return cp
}

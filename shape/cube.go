// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"cogentcore.org/meshstack/math32"
)

// Cube is an axis-aligned cube centered at the origin. Each face has
// its own four vertices so that normals are flat per face.
type Cube struct {
	// Name is the mesh name.
	Name string

	// Size is the length of each side.
	Size float32
}

// NewCube returns a Cube with the given side length.
func NewCube(size float32) *Cube {
	cb := &Cube{}
	cb.Defaults()
	cb.Size = size
	return cb
}

func (cb *Cube) Defaults() {
	cb.Name = "cube"
	cb.Size = 1
}

// cubeFaces lists the outward normal of each face and two in-face axes
// u, v with u x v = normal, so that the corners -u-v, u-v, u+v, -u+v
// are counter-clockwise seen from outside.
var cubeFaces = [6][3]math32.Vector3{
	{math32.Vec3(1, 0, 0), math32.Vec3(0, 1, 0), math32.Vec3(0, 0, 1)},  // px
	{math32.Vec3(-1, 0, 0), math32.Vec3(0, 0, 1), math32.Vec3(0, 1, 0)}, // nx
	{math32.Vec3(0, 1, 0), math32.Vec3(0, 0, 1), math32.Vec3(1, 0, 0)},  // py
	{math32.Vec3(0, -1, 0), math32.Vec3(1, 0, 0), math32.Vec3(0, 0, 1)}, // ny
	{math32.Vec3(0, 0, 1), math32.Vec3(1, 0, 0), math32.Vec3(0, 1, 0)},  // pz
	{math32.Vec3(0, 0, -1), math32.Vec3(0, 1, 0), math32.Vec3(1, 0, 0)}, // nz
}

// Build generates the cube: 24 vertices, 12 triangles and 12 edges.
// Each of the 12 cube edges is listed once: the Y faces contribute
// their outlines and the X faces their edges parallel to Y.
func (cb *Cube) Build() (*Mesh, error) {
	if !(cb.Size > 0) {
		return nil, invalidf("cube %q: Size %v <= 0", cb.Name, cb.Size)
	}
	h := cb.Size / 2
	ms := &Mesh{
		Name:   cb.Name,
		Vertex: make([]math32.Vector3, 0, 24),
		Normal: make([]math32.Vector3, 0, 24),
		Index:  make([]uint32, 0, 36),
		Edge:   make([]uint32, 0, 24),
	}
	for fi, f := range cubeFaces {
		n, u, v := f[0], f[1], f[2]
		c := n.MulScalar(h)
		u = u.MulScalar(h)
		v = v.MulScalar(h)
		o := uint32(len(ms.Vertex))
		ms.Vertex = append(ms.Vertex,
			c.Sub(u).Sub(v),
			c.Add(u).Sub(v),
			c.Add(u).Add(v),
			c.Sub(u).Add(v))
		ms.Normal = append(ms.Normal, n, n, n, n)
		ms.Index = append(ms.Index, o, o+1, o+2, o, o+2, o+3)
		switch fi {
		case 0: // u is Y: edges 0-1 and 3-2
			ms.Edge = append(ms.Edge, o, o+1, o+3, o+2)
		case 1: // v is Y: edges 1-2 and 0-3
			ms.Edge = append(ms.Edge, o+1, o+2, o, o+3)
		case 2, 3:
			ms.Edge = append(ms.Edge, o, o+1, o+1, o+2, o+2, o+3, o+3, o)
		}
	}
	ms.updateBBox()
	return ms, nil
}

// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"cogentcore.org/meshstack/math32"
)

// Pyramid is a square-based pyramid along the Y axis, centered at the
// origin, with the apex up. Faces have flat normals.
type Pyramid struct {
	// Name is the mesh name.
	Name string

	// Size is the side length of the square base.
	Size float32

	// Height from base to apex.
	Height float32
}

// NewPyramid returns a Pyramid with the given base side length and height.
func NewPyramid(size, height float32) *Pyramid {
	py := &Pyramid{}
	py.Defaults()
	py.Size = size
	py.Height = height
	return py
}

func (py *Pyramid) Defaults() {
	py.Name = "pyramid"
	py.Size = 1
	py.Height = 1
}

// Build generates the pyramid: 16 vertices (three per side face and
// four for the base), 6 triangles, and 8 edges (the base outline and
// the four lateral edges).
func (py *Pyramid) Build() (*Mesh, error) {
	switch {
	case !(py.Size > 0):
		return nil, invalidf("pyramid %q: Size %v <= 0", py.Name, py.Size)
	case !(py.Height > 0):
		return nil, invalidf("pyramid %q: Height %v <= 0", py.Name, py.Height)
	}
	hs, hy := py.Size/2, py.Height/2
	base := [4]math32.Vector3{
		math32.Vec3(-hs, -hy, -hs),
		math32.Vec3(hs, -hy, -hs),
		math32.Vec3(hs, -hy, hs),
		math32.Vec3(-hs, -hy, hs),
	}
	apex := math32.Vec3(0, hy, 0)
	ms := &Mesh{
		Name:   py.Name,
		Vertex: make([]math32.Vector3, 0, 16),
		Normal: make([]math32.Vector3, 0, 16),
		Index:  make([]uint32, 0, 18),
		Edge:   make([]uint32, 0, 16),
	}
	for k := 0; k < 4; k++ {
		b0, b1 := base[k], base[(k+1)%4]
		n := FaceNormal(b0, apex, b1).Normal()
		o := uint32(len(ms.Vertex))
		ms.Vertex = append(ms.Vertex, b0, apex, b1)
		ms.Normal = append(ms.Normal, n, n, n)
		ms.Index = append(ms.Index, o, o+1, o+2)
		ms.Edge = append(ms.Edge, o, o+1)
	}
	o := uint32(len(ms.Vertex))
	down := math32.Vec3(0, -1, 0)
	ms.Vertex = append(ms.Vertex, base[:]...)
	ms.Normal = append(ms.Normal, down, down, down, down)
	ms.Index = append(ms.Index, o, o+1, o+2, o, o+2, o+3)
	ms.Edge = append(ms.Edge, o, o+1, o+1, o+2, o+2, o+3, o, o+3)
	ms.updateBBox()
	return ms, nil
}

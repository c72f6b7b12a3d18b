// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"cogentcore.org/meshstack/math32"
)

// Primitive selects which index list of a [Mesh] is submitted for drawing.
type Primitive int32

const (
	// Triangles draws the triangle index list (solid rendering).
	Triangles Primitive = iota

	// Lines draws the wireframe edge list.
	Lines
)

func (p Primitive) String() string {
	switch p {
	case Triangles:
		return "triangles"
	case Lines:
		return "lines"
	}
	return "unknown"
}

// MarshalText implements [encoding.TextMarshaler].
func (p Primitive) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler],
// accepting "triangles" (or "solid") and "lines" (or "wireframe").
func (p *Primitive) UnmarshalText(text []byte) error {
	switch string(text) {
	case "triangles", "solid":
		*p = Triangles
	case "lines", "wireframe":
		*p = Lines
	default:
		return invalidf("unknown primitive %q", text)
	}
	return nil
}

// Mesh is an indexed triangle mesh with per-vertex normals and a
// wireframe edge list. A Mesh is built once and must not be modified
// afterward: many draw calls read the same Mesh.
type Mesh struct {
	// Name is the name of the mesh in a [Library].
	Name string

	// Vertex has the vertex positions.
	Vertex []math32.Vector3

	// Normal has the unit normal of each vertex, index aligned with Vertex.
	Normal []math32.Vector3

	// Index has three vertex indexes per triangle.
	Index []uint32

	// Edge has two vertex indexes per wireframe edge. Each undirected
	// edge is listed once.
	Edge []uint32

	// BBox is the bounding box of the vertices.
	BBox math32.Box3
}

// NumVertex returns the number of vertices.
func (ms *Mesh) NumVertex() int {
	return len(ms.Vertex)
}

// NumTriangles returns the number of triangles.
func (ms *Mesh) NumTriangles() int {
	return len(ms.Index) / 3
}

// Triangle returns the vertex indexes of triangle i.
func (ms *Mesh) Triangle(i int) [3]uint32 {
	return [3]uint32{ms.Index[3*i], ms.Index[3*i+1], ms.Index[3*i+2]}
}

// NumEdges returns the number of wireframe edges.
func (ms *Mesh) NumEdges() int {
	return len(ms.Edge) / 2
}

// EdgeAt returns the vertex indexes of edge i.
func (ms *Mesh) EdgeAt(i int) [2]uint32 {
	return [2]uint32{ms.Edge[2*i], ms.Edge[2*i+1]}
}

// Indices returns the index list drawn for the given primitive.
func (ms *Mesh) Indices(p Primitive) []uint32 {
	if p == Lines {
		return ms.Edge
	}
	return ms.Index
}

// Arrays returns the vertex positions and normals as flat xyz float arrays,
// the layout uploaded to vertex buffers.
func (ms *Mesh) Arrays() (vertex, normal []float32) {
	n := len(ms.Vertex)
	vertex = make([]float32, 3*n)
	normal = make([]float32, 3*n)
	for i, n_ := 0, n; i < n_; i++ {
		ms.Vertex[i].ToSlice(vertex, 3*i)
		ms.Normal[i].ToSlice(normal, 3*i)
	}
	return
}

// Validate checks the structural invariants of the mesh:
// aligned normals, complete triangles and edges, and indexes in range.
func (ms *Mesh) Validate() error {
	if len(ms.Normal) != len(ms.Vertex) {
		return malformedf("mesh %q: %d normals for %d vertices", ms.Name, len(ms.Normal), len(ms.Vertex))
	}
	if err := checkIndex(ms.Index, 3, len(ms.Vertex)); err != nil {
		return malformedf("mesh %q: triangles: %v", ms.Name, err)
	}
	if err := checkIndex(ms.Edge, 2, len(ms.Vertex)); err != nil {
		return malformedf("mesh %q: edges: %v", ms.Name, err)
	}
	return nil
}

// updateBBox sets the bounding box from the vertices.
func (ms *Mesh) updateBBox() {
	ms.BBox = math32.B3FromPoints(ms.Vertex)
}

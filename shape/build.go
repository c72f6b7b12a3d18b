// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"fmt"
	"log/slog"

	"cogentcore.org/meshstack/math32"
)

// NewMesh returns a [Mesh] built from the given vertex positions and
// triangle index list (three indexes per triangle). Normals are derived
// with [ComputeNormals] and wireframe edges with [Edges].
// The given slices are retained by the mesh and must not be modified.
// An error wrapping [ErrMalformedMesh] is returned if any index is out
// of range or the index list has an incomplete triangle.
func NewMesh(name string, vertex []math32.Vector3, index []uint32) (*Mesh, error) {
	if err := checkIndex(index, 3, len(vertex)); err != nil {
		return nil, malformedf("mesh %q: %v", name, err)
	}
	norms, isolated := accumulateNormals(vertex, index)
	if isolated > 0 {
		slog.Debug("shape: vertices not used by any triangle have a zero normal", "mesh", name, "count", isolated)
	}
	ms := &Mesh{
		Name:   name,
		Vertex: vertex,
		Normal: norms,
		Index:  index,
		Edge:   Edges(index),
	}
	ms.updateBBox()
	slog.Debug("shape: built mesh", "mesh", name, "vertices", ms.NumVertex(), "triangles", ms.NumTriangles(), "edges", ms.NumEdges())
	return ms, nil
}

// ComputeNormals returns per-vertex normals for the given triangle mesh.
// Each triangle (i1, i2, i3) contributes its face normal
// (p2 - p1) x (p3 - p1) to each of its three vertices, so larger faces
// weigh more, and the sums are then normalized. A vertex that is not
// used by any triangle gets the zero vector.
func ComputeNormals(vertex []math32.Vector3, index []uint32) ([]math32.Vector3, error) {
	if err := checkIndex(index, 3, len(vertex)); err != nil {
		return nil, malformedf("ComputeNormals: %v", err)
	}
	norms, _ := accumulateNormals(vertex, index)
	return norms, nil
}

// accumulateNormals does the work of [ComputeNormals] on validated input,
// also returning the number of vertices left with a zero normal.
func accumulateNormals(vertex []math32.Vector3, index []uint32) ([]math32.Vector3, int) {
	norms := make([]math32.Vector3, len(vertex))
	for t := 0; t+2 < len(index); t += 3 {
		i1, i2, i3 := index[t], index[t+1], index[t+2]
		fn := FaceNormal(vertex[i1], vertex[i2], vertex[i3])
		norms[i1].SetAdd(fn)
		norms[i2].SetAdd(fn)
		norms[i3].SetAdd(fn)
	}
	isolated := 0
	for i := range norms {
		if norms[i].IsNil() {
			isolated++
			continue
		}
		norms[i].SetNormal()
	}
	return norms, isolated
}

// FaceNormal returns the unnormalized normal of the triangle p1, p2, p3,
// (p2 - p1) x (p3 - p1), whose length is twice the triangle area.
// It points toward the side from which the vertices appear counter-clockwise.
func FaceNormal(p1, p2, p3 math32.Vector3) math32.Vector3 {
	return p2.Sub(p1).Cross(p3.Sub(p1))
}

// Edges returns the unique undirected edges of the given triangle
// index list, two indexes per edge in ascending order, in the order
// they are first encountered. An edge shared by several triangles
// is listed once regardless of the direction in which each triangle
// traverses it.
func Edges(index []uint32) []uint32 {
	seen := make(map[[2]uint32]struct{}, len(index))
	edges := make([]uint32, 0, len(index))
	add := func(a, b uint32) {
		if a > b {
			a, b = b, a
		}
		key := [2]uint32{a, b}
		if _, has := seen[key]; has {
			return
		}
		seen[key] = struct{}{}
		edges = append(edges, a, b)
	}
	for t := 0; t+2 < len(index); t += 3 {
		add(index[t], index[t+1])
		add(index[t+1], index[t+2])
		add(index[t+2], index[t])
	}
	return edges
}

// Recenter translates the given vertices in place so that the bounding
// box is centered on the X and Z axes and rests on the Y = 0 plane,
// returning the applied offset.
func Recenter(vertex []math32.Vector3) math32.Vector3 {
	if len(vertex) == 0 {
		return math32.Vector3{}
	}
	bb := math32.B3FromPoints(vertex)
	off := math32.Vec3(-(bb.Min.X+bb.Max.X)/2, -bb.Min.Y, -(bb.Min.Z+bb.Max.Z)/2)
	for i := range vertex {
		vertex[i].SetAdd(off)
	}
	return off
}

// checkIndex checks that index holds whole groups of stride indexes,
// all less than n.
func checkIndex(index []uint32, stride, n int) error {
	if len(index)%stride != 0 {
		return fmt.Errorf("%d indexes is not a multiple of %d", len(index), stride)
	}
	for i, ix := range index {
		if int(ix) >= n {
			return fmt.Errorf("index %d at position %d is out of range of %d vertices", ix, i, n)
		}
	}
	return nil
}

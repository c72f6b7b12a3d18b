// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"cogentcore.org/meshstack/math32"
)

// BunnyName is the default [Library] name of the bunny mesh.
const BunnyName = "bunny"

// NewBunny returns the bunny mesh from raw scan data: a flat list of
// xyz point coordinates and a flat list of triangle indexes. The points
// are copied and recentered with [Recenter] so that the model stands
// on the Y = 0 plane, centered on the Y axis; normals and edges are
// derived as in [NewMesh].
func NewBunny(points []float32, faces []uint32) (*Mesh, error) {
	if len(points)%3 != 0 {
		return nil, malformedf("bunny: %d point coordinates is not a multiple of 3", len(points))
	}
	vertex := make([]math32.Vector3, len(points)/3)
	for i := range vertex {
		vertex[i].FromSlice(points, 3*i)
	}
	Recenter(vertex)
	index := make([]uint32, len(faces))
	copy(index, faces)
	return NewMesh(BunnyName, vertex, index)
}

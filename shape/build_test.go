// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"math/rand"
	"testing"

	"cogentcore.org/meshstack/base/errors"
	"cogentcore.org/meshstack/base/tolassert"
	"cogentcore.org/meshstack/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = float32(1.0e-5)

// checkMesh asserts the invariants that every built mesh must satisfy:
// valid indexes, unit normals, unique undirected edges, and triangles
// wound counter-clockwise as seen from the side their vertex normals face.
func checkMesh(t *testing.T, ms *Mesh) {
	t.Helper()
	require.NoError(t, ms.Validate())
	for i, n := range ms.Normal {
		tolassert.EqualTol(t, 1, n.Length(), tol, "normal %d of %s", i, ms.Name)
	}
	seen := map[[2]uint32]int{}
	for i, n_ := 0, ms.NumEdges(); i < n_; i++ {
		e := ms.EdgeAt(i)
		a, b := min(e[0], e[1]), max(e[0], e[1])
		assert.NotEqual(t, a, b, "degenerate edge %d of %s", i, ms.Name)
		seen[[2]uint32{a, b}]++
	}
	for e, n := range seen {
		assert.Equal(t, 1, n, "edge %v of %s", e, ms.Name)
	}
	for i, n_ := 0, ms.NumTriangles(); i < n_; i++ {
		tri := ms.Triangle(i)
		fn := FaceNormal(ms.Vertex[tri[0]], ms.Vertex[tri[1]], ms.Vertex[tri[2]])
		vn := ms.Normal[tri[0]].Add(ms.Normal[tri[1]]).Add(ms.Normal[tri[2]])
		assert.Greater(t, fn.Dot(vn), float32(0), "winding of triangle %d of %s", i, ms.Name)
	}
	for _, v := range ms.Vertex {
		assert.True(t, ms.BBox.ContainsPoint(v))
	}
}

// edgeSet returns the undirected edges of a flat edge list as a set.
func edgeSet(edges []uint32) map[[2]uint32]bool {
	set := map[[2]uint32]bool{}
	for i := 0; i+1 < len(edges); i += 2 {
		a, b := edges[i], edges[i+1]
		set[[2]uint32{min(a, b), max(a, b)}] = true
	}
	return set
}

func TestSingleTriangle(t *testing.T) {
	vtx := []math32.Vector3{math32.Vec3(0, 0, 0), math32.Vec3(1, 0, 0), math32.Vec3(0, 1, 0)}
	ms, err := NewMesh("tri", vtx, []uint32{0, 1, 2})
	require.NoError(t, err)
	for _, n := range ms.Normal {
		assert.Equal(t, math32.Vec3(0, 0, 1), n)
	}
	assert.Equal(t, 3, ms.NumEdges())
	assert.Equal(t, []uint32{0, 1, 1, 2, 0, 2}, ms.Edge)
	assert.Equal(t, 1, ms.NumTriangles())
	assert.Equal(t, [3]uint32{0, 1, 2}, ms.Triangle(0))
	assert.Equal(t, math32.B3(0, 0, 0, 1, 1, 0), ms.BBox)
	checkMesh(t, ms)
}

func TestEdgeDedup(t *testing.T) {
	tests := []struct {
		name  string
		index []uint32
	}{
		{"forward", []uint32{0, 1, 2, 0, 2, 3}},
		{"reversed", []uint32{2, 1, 0, 3, 2, 0}},
		{"mixed", []uint32{0, 1, 2, 3, 2, 0}},
		{"other diagonal", []uint32{0, 1, 3, 1, 2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			edges := Edges(tt.index)
			assert.Len(t, edges, 10)
			counts := map[[2]uint32]int{}
			for i := 0; i < len(edges); i += 2 {
				assert.Less(t, edges[i], edges[i+1])
				counts[[2]uint32{edges[i], edges[i+1]}]++
			}
			assert.Len(t, counts, 5)
			for e, n := range counts {
				assert.Equal(t, 1, n, "edge %v", e)
			}
		})
	}
	assert.Empty(t, Edges(nil))
}

func tetrahedron() []math32.Vector3 {
	return []math32.Vector3{
		math32.Vec3(0, 0, 0),
		math32.Vec3(1, 0, 0),
		math32.Vec3(0, 1, 0),
		math32.Vec3(0, 0, 1),
	}
}

var tetraFaces = []uint32{0, 2, 1, 0, 1, 3, 0, 3, 2, 1, 2, 3}

func TestComputeNormalsAreaWeighted(t *testing.T) {
	norms, err := ComputeNormals(tetrahedron(), tetraFaces)
	require.NoError(t, err)
	s := 1 / math32.Sqrt(3)
	tolassert.EqualTolVector3(t, math32.Vec3(-s, -s, -s), norms[0], tol)
	// the slanted face is sqrt(3) times larger than each axis face:
	// -z - y + (1,1,1) = (1,0,0)
	tolassert.EqualTolVector3(t, math32.Vec3(1, 0, 0), norms[1], tol)
	tolassert.EqualTolVector3(t, math32.Vec3(0, 1, 0), norms[2], tol)
	tolassert.EqualTolVector3(t, math32.Vec3(0, 0, 1), norms[3], tol)
}

func TestComputeNormalsIsolatedVertex(t *testing.T) {
	vtx := append(tetrahedron(), math32.Vec3(5, 5, 5))
	ms, err := NewMesh("tetra", vtx, tetraFaces)
	require.NoError(t, err)
	assert.Equal(t, math32.Vector3{}, ms.Normal[4])
	assert.Len(t, ms.Normal, 5)
}

func TestMalformedMesh(t *testing.T) {
	_, err := NewMesh("bad", tetrahedron(), []uint32{0, 1, 4})
	assert.ErrorIs(t, err, ErrMalformedMesh)
	_, err = NewMesh("bad", tetrahedron(), []uint32{0, 1, 2, 3})
	assert.ErrorIs(t, err, ErrMalformedMesh)
	_, err = ComputeNormals(tetrahedron(), []uint32{9, 1, 2})
	assert.ErrorIs(t, err, ErrMalformedMesh)
	_, err = NewBunny([]float32{0, 0, 0, 1}, nil)
	assert.ErrorIs(t, err, ErrMalformedMesh)
	_, err = NewBunny([]float32{0, 0, 0, 1, 0, 0, 0, 1, 0}, []uint32{0, 1, 3})
	assert.True(t, errors.Is(err, ErrMalformedMesh))

	ms := &Mesh{Name: "short", Vertex: tetrahedron(), Normal: tetrahedron()[:2]}
	assert.ErrorIs(t, ms.Validate(), ErrMalformedMesh)
	ms = &Mesh{Name: "edge", Vertex: tetrahedron(), Normal: tetrahedron(), Edge: []uint32{0, 7}}
	assert.ErrorIs(t, ms.Validate(), ErrMalformedMesh)
}

func TestRecenter(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	vtx := make([]math32.Vector3, 200)
	for i := range vtx {
		vtx[i] = math32.Vec3(rnd.Float32()*4+7, rnd.Float32()*2-5, rnd.Float32()*3-10)
	}
	Recenter(vtx)
	bb := math32.B3FromPoints(vtx)
	assert.Equal(t, float32(0), bb.Min.Y)
	tolassert.EqualTol(t, 0, (bb.Min.X+bb.Max.X)/2, tol)
	tolassert.EqualTol(t, 0, (bb.Min.Z+bb.Max.Z)/2, tol)

	assert.Equal(t, math32.Vector3{}, Recenter(nil))
}

func TestNewBunny(t *testing.T) {
	var points []float32
	for _, v := range tetrahedron() {
		v.SetAdd(math32.Vec3(10, 5, -3))
		points = append(points, v.X, v.Y, v.Z)
	}
	orig := append([]float32(nil), points...)
	ms, err := NewBunny(points, tetraFaces)
	require.NoError(t, err)
	assert.Equal(t, orig, points, "input points must not be modified")
	assert.Equal(t, BunnyName, ms.Name)
	assert.Equal(t, 4, ms.NumVertex())
	assert.Equal(t, 4, ms.NumTriangles())
	assert.Equal(t, 6, ms.NumEdges())
	assert.Equal(t, float32(0), ms.BBox.Min.Y)
	tolassert.EqualTolVector3(t, math32.Vec3(-0.5, 0, -0.5), ms.Vertex[0], tol)
	tolassert.EqualTolVector3(t, math32.Vec3(1, 0, 0), ms.Normal[1], tol)
	checkMesh(t, ms)
}

func TestArrays(t *testing.T) {
	ms, err := NewMesh("tri", []math32.Vector3{math32.Vec3(0, 0, 0), math32.Vec3(1, 0, 0), math32.Vec3(0, 1, 0)}, []uint32{0, 1, 2})
	require.NoError(t, err)
	vtx, norm := ms.Arrays()
	assert.Equal(t, []float32{0, 0, 0, 1, 0, 0, 0, 1, 0}, vtx)
	assert.Equal(t, []float32{0, 0, 1, 0, 0, 1, 0, 0, 1}, norm)
	assert.Equal(t, ms.Edge, ms.Indices(Lines))
	assert.Equal(t, ms.Index, ms.Indices(Triangles))
}

func TestPrimitiveText(t *testing.T) {
	var p Primitive
	require.NoError(t, p.UnmarshalText([]byte("wireframe")))
	assert.Equal(t, Lines, p)
	require.NoError(t, p.UnmarshalText([]byte("triangles")))
	assert.Equal(t, Triangles, p)
	assert.ErrorIs(t, p.UnmarshalText([]byte("points")), ErrInvalidParameter)
	b, err := Lines.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "lines", string(b))
}

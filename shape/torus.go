// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"cogentcore.org/meshstack/math32"
)

// Torus is a torus mesh lying in the XZ plane around the Y axis,
// defined by the radius of the solid tube and the larger radius of the ring.
type Torus struct {
	// Name is the mesh name.
	Name string

	// larger radius of the torus ring
	Radius float32

	// radius of the solid tube
	TubeRadius float32

	// number of segments around the radius of the torus (32 is reasonable default for full circle)
	RadialSegs int

	// number of segments for the tube itself (32 is reasonable default for full height)
	TubeSegs int
}

// NewTorus returns a Torus mesh with the specified outer ring radius,
// solid tube radius, and number of segments (resolution).
func NewTorus(radius, tubeRadius float32, segs int) *Torus {
	tr := &Torus{}
	tr.Defaults()
	tr.Radius = radius
	tr.TubeRadius = tubeRadius
	tr.RadialSegs = segs
	tr.TubeSegs = segs
	return tr
}

func (tr *Torus) Defaults() {
	tr.Name = "torus"
	tr.Radius = 1
	tr.TubeRadius = .1
	tr.RadialSegs = 32
	tr.TubeSegs = 32
}

// TorusSize returns the number of vertices, triangles and edges
// of a torus with the given numbers of radial and tube segments.
func TorusSize(radialSegs, tubeSegs int) (numVertex, numTriangle, numEdge int) {
	n := radialSegs * tubeSegs
	return n, 2 * n, 2 * n
}

// Build generates the torus as a grid wrapping in both directions.
// Normals point from the center of the tube to each vertex. Wireframe
// edges follow the two grid directions.
func (tr *Torus) Build() (*Mesh, error) {
	nr, nt := tr.RadialSegs, tr.TubeSegs
	switch {
	case nr < 3 || nt < 3:
		return nil, invalidf("torus %q: segments %d x %d, need at least 3 x 3", tr.Name, nr, nt)
	case !(tr.Radius > 0) || !(tr.TubeRadius > 0):
		return nil, invalidf("torus %q: radii %v, %v must be > 0", tr.Name, tr.Radius, tr.TubeRadius)
	}
	nv, ntri, ne := TorusSize(nr, nt)
	ms := &Mesh{
		Name:   tr.Name,
		Vertex: make([]math32.Vector3, 0, nv),
		Normal: make([]math32.Vector3, 0, nv),
		Index:  make([]uint32, 0, 3*ntri),
		Edge:   make([]uint32, 0, 2*ne),
	}
	for i, n_ := 0, nr; i < n_; i++ {
		u := float32(i) / float32(nr) * 2 * math32.Pi
		center := math32.Vec3(tr.Radius*math32.Cos(u), 0, tr.Radius*math32.Sin(u))
		for j, n_ := 0, nt; j < n_; j++ {
			v := float32(j) / float32(nt) * 2 * math32.Pi
			rr := tr.Radius + tr.TubeRadius*math32.Cos(v)
			pt := math32.Vec3(rr*math32.Cos(u), tr.TubeRadius*math32.Sin(v), rr*math32.Sin(u))
			ms.Vertex = append(ms.Vertex, pt)
			ms.Normal = append(ms.Normal, pt.Sub(center).Normal())
		}
	}
	idx := func(i, j int) uint32 {
		return uint32((i%nr)*nt + j%nt)
	}
	for i, n_ := 0, nr; i < n_; i++ {
		for j, n_ := 0, nt; j < n_; j++ {
			a, b := idx(i, j), idx(i+1, j)
			c, d := idx(i+1, j+1), idx(i, j+1)
			ms.Index = append(ms.Index, a, c, b, a, d, c)
			ms.Edge = append(ms.Edge, a, b, a, d)
		}
	}
	ms.updateBBox()
	return ms, nil
}

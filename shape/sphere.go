// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"cogentcore.org/meshstack/math32"
)

// Sphere is a sphere mesh centered at the origin, built from a north
// pole vertex, NLat rings of NLon vertices each, and a south pole vertex.
type Sphere struct {
	// Name is the mesh name.
	Name string

	// NLat is the number of latitude rings between the poles.
	NLat int

	// NLon is the number of vertices around each ring.
	NLon int

	// Radius of the sphere.
	Radius float32
}

// NewSphere returns a Sphere with the given radius and number of
// latitude rings and longitude segments.
func NewSphere(radius float32, nlat, nlon int) *Sphere {
	sp := &Sphere{}
	sp.Defaults()
	sp.Radius = radius
	sp.NLat = nlat
	sp.NLon = nlon
	return sp
}

func (sp *Sphere) Defaults() {
	sp.Name = "sphere"
	sp.NLat = 20
	sp.NLon = 30
	sp.Radius = 0.5
}

// SphereSize returns the number of vertices, triangles and edges
// of a sphere with the given number of rings and segments.
func SphereSize(nlat, nlon int) (numVertex, numTriangle, numEdge int) {
	numVertex = nlat*nlon + 2
	numTriangle = 2 * nlat * nlon
	numEdge = nlon * (2*nlat + 1)
	return
}

// Build generates the sphere. Ring i (from the north) lies at latitude
// pi/2 - (i+1)*pi/(NLat+1), and ring vertex j at longitude j*2*pi/NLon,
// at position (r cos(lat) cos(lon), r sin(lat), r cos(lat) sin(lon)).
// Normals are the normalized positions. Wireframe edges follow the
// latitude and longitude lines, without the diagonals of the triangulated
// bands.
func (sp *Sphere) Build() (*Mesh, error) {
	nlat, nlon, r := sp.NLat, sp.NLon, sp.Radius
	switch {
	case nlat < 1:
		return nil, invalidf("sphere %q: NLat %d < 1", sp.Name, nlat)
	case nlon < 3:
		return nil, invalidf("sphere %q: NLon %d < 3", sp.Name, nlon)
	case !(r > 0):
		return nil, invalidf("sphere %q: Radius %v <= 0", sp.Name, r)
	}
	nv, nt, ne := SphereSize(nlat, nlon)
	ms := &Mesh{
		Name:   sp.Name,
		Vertex: make([]math32.Vector3, 0, nv),
		Normal: make([]math32.Vector3, 0, nv),
		Index:  make([]uint32, 0, 3*nt),
		Edge:   make([]uint32, 0, 2*ne),
	}

	dphi := math32.Pi / float32(nlat+1)
	dtheta := 2 * math32.Pi / float32(nlon)

	ms.Vertex = append(ms.Vertex, math32.Vec3(0, r, 0))
	ms.Normal = append(ms.Normal, math32.Vec3(0, 1, 0))
	for i, n_ := 0, nlat; i < n_; i++ {
		phi := math32.Pi/2 - float32(i+1)*dphi
		for j, n_ := 0, nlon; j < n_; j++ {
			theta := float32(j) * dtheta
			pt := math32.Vec3(r*math32.Cos(phi)*math32.Cos(theta), r*math32.Sin(phi), r*math32.Cos(phi)*math32.Sin(theta))
			ms.Vertex = append(ms.Vertex, pt)
			ms.Normal = append(ms.Normal, pt.Normal())
		}
	}
	south := uint32(nv - 1)
	ms.Vertex = append(ms.Vertex, math32.Vec3(0, -r, 0))
	ms.Normal = append(ms.Normal, math32.Vec3(0, -1, 0))

	// ring returns the index of vertex j (wrapping) of ring i.
	ring := func(i, j int) uint32 {
		return uint32(1 + i*nlon + (j+nlon)%nlon)
	}

	// north cap
	for j, n_ := 0, nlon; j < n_; j++ {
		ms.Index = append(ms.Index, 0, ring(0, j+1), ring(0, j))
	}
	// bands
	for i := 0; i < nlat-1; i++ {
		for j, n_ := 0, nlon; j < n_; j++ {
			p, p1 := ring(i, j), ring(i, j+1)
			q, q1 := ring(i+1, j), ring(i+1, j+1)
			ms.Index = append(ms.Index, p, q1, q, p, p1, q1)
		}
	}
	// south cap
	for j, n_ := 0, nlon; j < n_; j++ {
		ms.Index = append(ms.Index, south, ring(nlat-1, j), ring(nlat-1, j+1))
	}

	for j, n_ := 0, nlon; j < n_; j++ {
		ms.Edge = append(ms.Edge, 0, ring(0, j))
	}
	for i, n_ := 0, nlat; i < n_; i++ {
		for j, n_ := 0, nlon; j < n_; j++ {
			p := ring(i, j)
			ms.Edge = append(ms.Edge, p, ring(i, j+1))
			if i < nlat-1 {
				ms.Edge = append(ms.Edge, p, ring(i+1, j))
			} else {
				ms.Edge = append(ms.Edge, p, south)
			}
		}
	}
	ms.updateBBox()
	return ms, nil
}

// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"cogentcore.org/meshstack/math32"
)

// Cylinder is a closed cylinder along the Y axis, centered at the origin.
type Cylinder struct {
	// Name is the mesh name.
	Name string

	// NSeg is the number of segments around the circumference.
	NSeg int

	// Radius of the cylinder.
	Radius float32

	// Height along the Y axis.
	Height float32
}

// NewCylinder returns a Cylinder with the given radius, height and
// number of segments.
func NewCylinder(radius, height float32, nseg int) *Cylinder {
	cy := &Cylinder{}
	cy.Defaults()
	cy.Radius = radius
	cy.Height = height
	cy.NSeg = nseg
	return cy
}

func (cy *Cylinder) Defaults() {
	cy.Name = "cylinder"
	cy.NSeg = 30
	cy.Radius = 0.5
	cy.Height = 1
}

// CylinderSize returns the number of vertices, triangles and edges
// of a cylinder with nseg segments.
func CylinderSize(nseg int) (numVertex, numTriangle, numEdge int) {
	return 4*nseg + 2, 4 * nseg, 3 * nseg
}

// Build generates the cylinder. The side uses its own two rings of
// vertices with radial normals; each cap has a center vertex and its own
// ring with axial normals. Wireframe edges are the two rims and one
// vertical line per segment.
func (cy *Cylinder) Build() (*Mesh, error) {
	n := cy.NSeg
	switch {
	case n < 3:
		return nil, invalidf("cylinder %q: NSeg %d < 3", cy.Name, n)
	case !(cy.Radius > 0):
		return nil, invalidf("cylinder %q: Radius %v <= 0", cy.Name, cy.Radius)
	case !(cy.Height > 0):
		return nil, invalidf("cylinder %q: Height %v <= 0", cy.Name, cy.Height)
	}
	nv, nt, ne := CylinderSize(n)
	ms := &Mesh{
		Name:   cy.Name,
		Vertex: make([]math32.Vector3, nv),
		Normal: make([]math32.Vector3, nv),
		Index:  make([]uint32, 0, 3*nt),
		Edge:   make([]uint32, 0, 2*ne),
	}
	hy := cy.Height / 2
	up := math32.Vec3(0, 1, 0)
	down := math32.Vec3(0, -1, 0)

	sideBot, sideTop := 0, n
	capBotC, capTopC := 2*n, 3*n+1
	capBot, capTop := capBotC+1, capTopC+1

	ms.Vertex[capBotC] = math32.Vec3(0, -hy, 0)
	ms.Normal[capBotC] = down
	ms.Vertex[capTopC] = math32.Vec3(0, hy, 0)
	ms.Normal[capTopC] = up
	dtheta := 2 * math32.Pi / float32(n)
	for k, n_ := 0, n; k < n_; k++ {
		theta := float32(k) * dtheta
		dir := math32.Vec3(math32.Cos(theta), 0, math32.Sin(theta))
		bot := dir.MulScalar(cy.Radius).Add(math32.Vec3(0, -hy, 0))
		top := dir.MulScalar(cy.Radius).Add(math32.Vec3(0, hy, 0))
		ms.Vertex[sideBot+k], ms.Normal[sideBot+k] = bot, dir
		ms.Vertex[sideTop+k], ms.Normal[sideTop+k] = top, dir
		ms.Vertex[capBot+k], ms.Normal[capBot+k] = bot, down
		ms.Vertex[capTop+k], ms.Normal[capTop+k] = top, up
	}
	for k, n_ := 0, n; k < n_; k++ {
		k1 := (k + 1) % n
		b0, b1 := uint32(sideBot+k), uint32(sideBot+k1)
		t0, t1 := uint32(sideTop+k), uint32(sideTop+k1)
		ms.Index = append(ms.Index, b0, t0, t1, b0, t1, b1)
		ms.Index = append(ms.Index, uint32(capTopC), uint32(capTop+k1), uint32(capTop+k))
		ms.Index = append(ms.Index, uint32(capBotC), uint32(capBot+k), uint32(capBot+k1))
		ms.Edge = append(ms.Edge, b0, b1, t0, t1, b0, t0)
	}
	ms.updateBBox()
	return ms, nil
}

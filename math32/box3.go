// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Box3 represents a 3D bounding box defined by two points:
// the point with minimum coordinates and the point with maximum coordinates.
type Box3 struct {
	Min Vector3
	Max Vector3
}

// B3 returns a new [Box3] from the given minimum and maximum x, y, and z coordinates.
func B3(x0, y0, z0, x1, y1, z1 float32) Box3 {
	return Box3{Vec3(x0, y0, z0), Vec3(x1, y1, z1)}
}

// B3Empty returns a new [Box3] with empty minimum and maximum values.
func B3Empty() Box3 {
	bx := Box3{}
	bx.SetEmpty()
	return bx
}

// B3FromPoints returns the bounding box of the given points.
func B3FromPoints(points []Vector3) Box3 {
	bx := B3Empty()
	bx.ExpandByPoints(points)
	return bx
}

// SetEmpty set this bounding box to empty (min / max +/- Infinity)
func (b *Box3) SetEmpty() {
	b.Min.SetScalar(Infinity)
	b.Max.SetScalar(-Infinity)
}

// IsEmpty returns true if this bounding box is empty (max < min on any coord).
func (b Box3) IsEmpty() bool {
	return (b.Max.X < b.Min.X) || (b.Max.Y < b.Min.Y) || (b.Max.Z < b.Min.Z)
}

// ExpandByPoints may expand this bounding box from the specified array of points.
func (b *Box3) ExpandByPoints(points []Vector3) {
	for i := range points {
		b.ExpandByPoint(points[i])
	}
}

// ExpandByPoint may expand this bounding box to include the specified point.
func (b *Box3) ExpandByPoint(point Vector3) {
	b.Min.SetMin(point)
	b.Max.SetMax(point)
}

// ExpandByBox may expand this bounding box to include the specified box
func (b *Box3) ExpandByBox(box Box3) {
	b.ExpandByPoint(box.Min)
	b.ExpandByPoint(box.Max)
}

// Center returns the center of the bounding box.
func (b Box3) Center() Vector3 {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

// Size calculates the size of this bounding box: the vector from
// its minimum point to its maximum point.
func (b Box3) Size() Vector3 {
	return b.Max.Sub(b.Min)
}

// ContainsPoint returns if this bounding box contains the specified point.
func (b Box3) ContainsPoint(point Vector3) bool {
	if point.X < b.Min.X || point.X > b.Max.X ||
		point.Y < b.Min.Y || point.Y > b.Max.Y ||
		point.Z < b.Min.Z || point.Z > b.Max.Z {
		return false
	}
	return true
}

// Translate returns translated position of this box by offset.
func (b Box3) Translate(offset Vector3) Box3 {
	return Box3{b.Min.Add(offset), b.Max.Add(offset)}
}

// MulMatrix4 multiplies the specified matrix to the vertices of this bounding box
// and computes the resulting bounding box of the transformed box.
func (b Box3) MulMatrix4(m Matrix4) Box3 {
	corners := [8]Vector3{
		Vec3(b.Min.X, b.Min.Y, b.Min.Z),
		Vec3(b.Min.X, b.Min.Y, b.Max.Z),
		Vec3(b.Min.X, b.Max.Y, b.Min.Z),
		Vec3(b.Min.X, b.Max.Y, b.Max.Z),
		Vec3(b.Max.X, b.Min.Y, b.Min.Z),
		Vec3(b.Max.X, b.Min.Y, b.Max.Z),
		Vec3(b.Max.X, b.Max.Y, b.Min.Z),
		Vec3(b.Max.X, b.Max.Y, b.Max.Z),
	}
	nb := B3Empty()
	for _, c := range corners {
		nb.ExpandByPoint(c.MulMatrix4AsPoint(m))
	}
	return nb
}

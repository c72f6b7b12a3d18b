// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Matrix4 is 4x4 matrix organized internally as column matrix,
// the same layout as mgl32.Mat4 and as uploaded to shader uniforms.
type Matrix4 [16]float32

// Identity4 returns a new identity [Matrix4] matrix.
func Identity4() Matrix4 {
	return Matrix4(mgl32.Ident4())
}

// Translation3D returns a matrix translating by x, y, z.
func Translation3D(x, y, z float32) Matrix4 {
	return Matrix4(mgl32.Translate3D(x, y, z))
}

// Scale3D returns a matrix scaling by x, y, z along each axis.
func Scale3D(x, y, z float32) Matrix4 {
	return Matrix4(mgl32.Scale3D(x, y, z))
}

// RotationX returns a matrix rotating about the X axis by the given angle in radians.
func RotationX(angle float32) Matrix4 {
	return Matrix4(mgl32.HomogRotate3DX(angle))
}

// RotationY returns a matrix rotating about the Y axis by the given angle in radians.
func RotationY(angle float32) Matrix4 {
	return Matrix4(mgl32.HomogRotate3DY(angle))
}

// RotationZ returns a matrix rotating about the Z axis by the given angle in radians.
func RotationZ(angle float32) Matrix4 {
	return Matrix4(mgl32.HomogRotate3DZ(angle))
}

// LookAt returns a view matrix for a camera at eye facing target,
// with the given up direction.
func LookAt(eye, target, up Vector3) Matrix4 {
	return Matrix4(mgl32.LookAtV(eye.mgl(), target.mgl(), up.mgl()))
}

// Ortho returns an orthographic projection matrix.
func Ortho(left, right, bottom, top, near, far float32) Matrix4 {
	return Matrix4(mgl32.Ortho(left, right, bottom, top, near, far))
}

// Perspective returns a perspective projection matrix
// with the vertical field of view fovy in degrees.
func Perspective(fovy, aspect, near, far float32) Matrix4 {
	return Matrix4(mgl32.Perspective(DegToRad(fovy), aspect, near, far))
}

// Mul returns this matrix times other: m * other.
// Applied to a point, other acts first.
func (m Matrix4) Mul(other Matrix4) Matrix4 {
	return Matrix4(mgl32.Mat4(m).Mul4(mgl32.Mat4(other)))
}

// MulVector3AsPoint returns the point v transformed by this matrix (w = 1).
func (m Matrix4) MulVector3AsPoint(v Vector3) Vector3 {
	return v.MulMatrix4AsPoint(m)
}

// MulVector3AsVector returns the direction v transformed by this matrix (w = 0).
func (m Matrix4) MulVector3AsVector(v Vector3) Vector3 {
	return v.MulMatrix4AsVector(m)
}

// Inverse returns the inverse of this matrix.
// A singular matrix returns the zero matrix and false.
func (m Matrix4) Inverse() (Matrix4, bool) {
	mm := mgl32.Mat4(m)
	if mm.Det() == 0 {
		return Matrix4{}, false
	}
	return Matrix4(mm.Inv()), true
}

// Translation returns the translation component of the matrix.
func (m Matrix4) Translation() Vector3 {
	return Vec3(m[12], m[13], m[14])
}

// IsEqualTol returns whether all elements of m and other are within tol.
func (m Matrix4) IsEqualTol(other Matrix4, tol float32) bool {
	return mgl32.Mat4(m).ApproxEqualThreshold(mgl32.Mat4(other), tol)
}

func (m Matrix4) String() string {
	return fmt.Sprintf("[%v %v %v %v\n %v %v %v %v\n %v %v %v %v\n %v %v %v %v]",
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15])
}

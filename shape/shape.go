// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shape builds renderer-ready triangle meshes: vertex positions,
// per-vertex normals, a triangle index list and a wireframe edge list.
// Meshes come either from parametric generators (sphere, cube, cylinder,
// pyramid, torus) or from raw vertex and triangle lists, for which
// normals and edges are derived (see [NewMesh]).
package shape

import (
	"fmt"

	"cogentcore.org/meshstack/base/errors"
)

var (
	// ErrInvalidParameter is returned by generators given degenerate
	// parameters, such as fewer than 3 segments around a circle.
	ErrInvalidParameter = errors.New("shape: invalid parameter")

	// ErrMalformedMesh is returned for raw mesh data with an index out of
	// range of the vertex list, or with incomplete triangles or points.
	ErrMalformedMesh = errors.New("shape: malformed mesh")
)

// Shape is implemented by all of the parametric generators.
type Shape interface {
	// Build validates the parameters and returns the generated mesh.
	Build() (*Mesh, error)
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidParameter)
}

func malformedf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrMalformedMesh)
}

// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"fmt"

	"cogentcore.org/meshstack/base/errors"
	"cogentcore.org/meshstack/base/ordmap"
)

// ErrMeshNotFound is returned when looking up a mesh name
// that is not in a [Library].
var ErrMeshNotFound = errors.New("shape: mesh not found")

// Library holds built meshes by name, in the order they were added.
// It is filled once before rendering starts and only read afterward.
type Library struct {
	meshes ordmap.Map[string, *Mesh]
}

// NewLibrary returns a new empty [Library].
func NewLibrary() *Library {
	return &Library{}
}

// SetMesh adds the given mesh under its name,
// replacing any existing mesh of the same name.
func (lb *Library) SetMesh(ms *Mesh) {
	lb.meshes.Add(ms.Name, ms)
}

// Build builds each of the given shapes and adds the results.
// It stops at the first error.
func (lb *Library) Build(shapes ...Shape) error {
	for _, sh := range shapes {
		ms, err := sh.Build()
		if err != nil {
			return err
		}
		lb.SetMesh(ms)
	}
	return nil
}

// MeshByName looks for mesh by name, returning nil if not found.
func (lb *Library) MeshByName(name string) *Mesh {
	return lb.meshes.ValueByKey(name)
}

// MeshByNameTry looks for mesh by name, returning an error
// wrapping [ErrMeshNotFound] if not found.
func (lb *Library) MeshByNameTry(name string) (*Mesh, error) {
	ms, ok := lb.meshes.ValueByKeyTry(name)
	if ok {
		return ms, nil
	}
	return nil, fmt.Errorf("mesh named %q: %w", name, ErrMeshNotFound)
}

// MeshList returns the names of the meshes in the order added.
func (lb *Library) MeshList() []string {
	return lb.meshes.Keys()
}

// Len returns the number of meshes.
func (lb *Library) Len() int {
	return lb.meshes.Len()
}

// ResetMeshes removes all meshes.
func (lb *Library) ResetMeshes() {
	lb.meshes.Reset()
}

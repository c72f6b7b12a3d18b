// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"

	"cogentcore.org/meshstack/base/errors"
	"cogentcore.org/meshstack/base/ordmap"
)

// ErrPrefabNotFound is returned when instancing a prefab name
// that is not in [Prefabs].
var ErrPrefabNotFound = errors.New("scene: prefab not found")

// Prefabs holds named node trees that are instanced by cloning,
// so that each instance can be placed and modified independently.
type Prefabs struct {
	nodes ordmap.Map[string, *Node]
}

// Add adds the given node tree under its name,
// replacing any existing prefab of the same name.
func (pf *Prefabs) Add(nd *Node) {
	pf.nodes.Add(nd.Name, nd)
}

// Instance returns a new copy of the named prefab.
func (pf *Prefabs) Instance(name string) (*Node, error) {
	nd, ok := pf.nodes.ValueByKeyTry(name)
	if !ok {
		return nil, fmt.Errorf("prefab named %q: %w", name, ErrPrefabNotFound)
	}
	return nd.Clone(), nil
}

// Names returns the prefab names in the order added.
func (pf *Prefabs) Names() []string {
	return pf.nodes.Keys()
}

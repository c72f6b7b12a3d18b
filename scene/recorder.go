// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"cogentcore.org/meshstack/math32"
	"cogentcore.org/meshstack/shape"
)

// DrawCall is one recorded call to [Drawer.Draw].
type DrawCall struct {
	Mesh      string
	Mode      shape.Primitive
	ModelView math32.Matrix4
	Color     math32.Vector3
}

// Recorder is a [Drawer] that records the draw calls it receives,
// along with totals of the primitives drawn and the bounding box of
// all drawn meshes in view coordinates. It is used for headless
// rendering and testing.
type Recorder struct {
	// Calls has the recorded draw calls, in order.
	Calls []DrawCall

	// Primitives is the total number of triangles or lines drawn.
	Primitives int

	// BBox is the union of the bounding boxes of the drawn meshes,
	// transformed by their model-view matrices.
	BBox math32.Box3
}

// NewRecorder returns a new empty [Recorder].
func NewRecorder() *Recorder {
	rc := &Recorder{}
	rc.Reset()
	return rc
}

// Reset discards all recorded calls.
func (rc *Recorder) Reset() {
	rc.Calls = rc.Calls[:0]
	rc.Primitives = 0
	rc.BBox.SetEmpty()
}

func (rc *Recorder) Draw(ms *shape.Mesh, mode shape.Primitive, modelView math32.Matrix4, color math32.Vector3) error {
	rc.Calls = append(rc.Calls, DrawCall{Mesh: ms.Name, Mode: mode, ModelView: modelView, Color: color})
	if mode == shape.Lines {
		rc.Primitives += ms.NumEdges()
	} else {
		rc.Primitives += ms.NumTriangles()
	}
	rc.BBox.ExpandByBox(ms.BBox.MulMatrix4(modelView))
	return nil
}

// Counts returns the number of draw calls made for each mesh name.
func (rc *Recorder) Counts() map[string]int {
	cnt := map[string]int{}
	for _, c := range rc.Calls {
		cnt[c.Mesh]++
	}
	return cnt
}

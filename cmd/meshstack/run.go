// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"log/slog"

	"cogentcore.org/meshstack/config"
	"cogentcore.org/meshstack/demo"
	"cogentcore.org/meshstack/math32"
	"cogentcore.org/meshstack/scene"
	"cogentcore.org/meshstack/shape"
)

// Stats are the totals over all rendered frames.
type Stats struct {
	Frames     int
	Draws      int
	Primitives int
	BBox       math32.Box3

	// View is the view matrix of the last frame.
	View math32.Matrix4

	// Heli is the helicopter model-view matrix of the last frame.
	Heli math32.Matrix4
}

// BuildLibrary builds the meshes for the given config,
// including the bunny if a mesh data file is given.
func BuildLibrary(cfg *config.Config) (*shape.Library, error) {
	lib := shape.NewLibrary()
	if err := lib.Build(cfg.Shapes()...); err != nil {
		return nil, err
	}
	if cfg.Bunny != "" {
		ms, err := config.OpenBunny(cfg.Bunny)
		if err != nil {
			return nil, err
		}
		lib.SetMesh(ms)
	}
	for _, nm := range lib.MeshList() {
		ms := lib.MeshByName(nm)
		slog.Info("mesh", "name", nm, "vertices", ms.NumVertex(), "triangles", ms.NumTriangles(), "edges", ms.NumEdges())
	}
	return lib, nil
}

// Run renders the configured number of frames, reading the latest
// config snapshot at the start of each frame, until done or ctx is
// canceled.
func Run(ctx context.Context, live *config.Live) error {
	st, err := Render(ctx, live)
	if err != nil {
		return err
	}
	slog.Info("rendered", "frames", st.Frames, "draws", st.Draws, "primitives", st.Primitives, "min", st.BBox.Min, "max", st.BBox.Max)
	return nil
}

// Render renders the frames and returns the totals.
// With the [scene.Follow] camera, the view of each frame after the
// first rides on the helicopter as it was drawn in the frame before.
func Render(ctx context.Context, live *config.Live) (*Stats, error) {
	cfg := live.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	lib, err := BuildLibrary(cfg)
	if err != nil {
		return nil, err
	}
	rc := scene.NewRecorder()
	sc := scene.NewContext(lib, rc)
	p := cfg.Params()
	st := &Stats{BBox: math32.B3Empty()}
	var view math32.Matrix4
	following := false

	for i, n_ := 0, cfg.Frames; i < n_; i++ {
		if ctx.Err() != nil {
			break
		}
		cur := live.Load()
		if err := cur.Validate(); err != nil {
			return st, err
		}
		sc.Mode = cur.Mode
		p.BladeSpeed = cur.BladeSpeed
		p.FlightSpeed = cur.FlightSpeed
		cam := cur.SceneCamera()
		if cur.Camera != scene.Follow || !following {
			view = cam.View()
		}
		st.View = view
		if cur.DropEvery > 0 && i%cur.DropEvery == 0 {
			p.DropBox()
		}
		rc.Reset()
		err := sc.Frame(st.View, func() error {
			heli, err := demo.World(sc, &p)
			if err != nil {
				return err
			}
			st.Heli = heli
			if lib.MeshByName(shape.BunnyName) == nil {
				return nil
			}
			return sc.Group(func() error {
				sc.Stack.Scale(p.WorldScale, p.WorldScale, p.WorldScale)
				sc.SetColor(0.8, 0.8, 0.8)
				return sc.Draw(shape.BunnyName)
			})
		})
		if err != nil {
			return st, err
		}
		slog.Debug("frame", "index", i, "draws", sc.Draws, "camera", cur.Camera, "projection", cam.Projection(cur.Aspect))
		st.Frames++
		st.Draws += sc.Draws
		st.Primitives += rc.Primitives
		st.BBox.ExpandByBox(rc.BBox)
		p.Advance(1 / cur.FPS)

		following = cur.Camera == scene.Follow
		if following {
			view, err = scene.FollowView(view, st.Heli)
			if err != nil {
				return st, err
			}
		}
	}
	return st, nil
}

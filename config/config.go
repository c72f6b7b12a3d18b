// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration struct for the meshstack
// command, and functions to open and save it as TOML or YAML, watch it
// for changes, and bind it to command line flags.
package config

import (
	"fmt"

	"cogentcore.org/meshstack/base/errors"
	"cogentcore.org/meshstack/base/reflectx"
	"cogentcore.org/meshstack/demo"
	"cogentcore.org/meshstack/math32"
	"cogentcore.org/meshstack/scene"
	"cogentcore.org/meshstack/shape"
)

// Config is the main config struct that contains all of the
// configuration options for rendering the scene.
// A loaded Config is a snapshot that is not modified afterward.
type Config struct {

	// the number of frames to render
	Frames int `toml:"frames" yaml:"frames" default:"60" desc:"the number of frames to render"`

	// the frame rate at which the scene is animated
	FPS float32 `toml:"fps" yaml:"fps" default:"30" desc:"the frame rate at which the scene is animated"`

	// whether to draw solid triangles or wireframe lines
	Mode shape.Primitive `toml:"mode" yaml:"mode" default:"triangles" desc:"whether to draw solid triangles or wireframe lines"`

	// the camera placement
	Camera scene.Preset `toml:"camera" yaml:"camera" default:"default" desc:"the camera placement"`

	// the rotation of the scene about the Y axis, in degrees
	Gamma float32 `toml:"gamma" yaml:"gamma" default:"0" desc:"the rotation of the scene about the Y axis, in degrees"`

	// the rotation of the scene about the X axis, in degrees
	Theta float32 `toml:"theta" yaml:"theta" default:"0" desc:"the rotation of the scene about the X axis, in degrees"`

	// the scene zoom in percent
	Zoom float32 `toml:"zoom" yaml:"zoom" default:"100" desc:"the scene zoom in percent"`

	// the aspect ratio (width / height) of the viewport
	Aspect float32 `toml:"aspect" yaml:"aspect" default:"1.5" desc:"the aspect ratio (width / height) of the viewport"`

	// the number of latitude rings of the sphere mesh
	SphereLat int `toml:"sphere_lat" yaml:"sphere_lat" default:"20" desc:"the number of latitude rings of the sphere mesh"`

	// the number of longitude segments of the sphere mesh
	SphereLon int `toml:"sphere_lon" yaml:"sphere_lon" default:"30" desc:"the number of longitude segments of the sphere mesh"`

	// the number of segments around the cylinder mesh
	CylinderSegs int `toml:"cylinder_segs" yaml:"cylinder_segs" default:"30" desc:"the number of segments around the cylinder mesh"`

	// the number of segments around each circle of the torus mesh
	TorusSegs int `toml:"torus_segs" yaml:"torus_segs" default:"32" desc:"the number of segments around each circle of the torus mesh"`

	// the flying height of the helicopter
	Height float32 `toml:"height" yaml:"height" default:"2" desc:"the flying height of the helicopter"`

	// the rotor speed in revolutions per second
	BladeSpeed float32 `toml:"blade_speed" yaml:"blade_speed" default:"2" desc:"the rotor speed in revolutions per second"`

	// the flight speed in revolutions of the flight circle per second
	FlightSpeed float32 `toml:"flight_speed" yaml:"flight_speed" default:"0.05" desc:"the flight speed in revolutions of the flight circle per second"`

	// drop a cargo box every this many frames; 0 drops none
	DropEvery int `toml:"drop_every" yaml:"drop_every" default:"0" desc:"drop a cargo box every this many frames; 0 drops none"`

	// the path of a mesh data file with the bunny points and faces
	Bunny string `toml:"bunny" yaml:"bunny" desc:"the path of a mesh data file with the bunny points and faces"`
}

// Defaults sets the default values of all fields,
// from their `default` struct tags.
func (c *Config) Defaults() {
	*c = Config{}
	errors.Log(reflectx.SetFromDefaultTags(c))
}

// New returns a new [Config] with default values.
func New() *Config {
	c := &Config{}
	c.Defaults()
	return c
}

// Shapes returns the parametric shapes of the scene meshes,
// at the configured resolutions.
func (c *Config) Shapes() []shape.Shape {
	return []shape.Shape{
		shape.NewSphere(0.5, c.SphereLat, c.SphereLon),
		shape.NewCube(1),
		shape.NewCylinder(0.5, 1, c.CylinderSegs),
		shape.NewPyramid(1, 1),
		shape.NewTorus(1, 0.1, c.TorusSegs),
	}
}

// SceneCamera returns the configured camera.
func (c *Config) SceneCamera() scene.Camera {
	var cm scene.Camera
	cm.Defaults()
	cm.SetPreset(c.Camera)
	cm.Gamma = c.Gamma
	cm.Theta = c.Theta
	cm.Zoom = c.Zoom
	return cm
}

// Params returns the initial scene parameters, with the world scale
// set for the configured zoom.
func (c *Config) Params() demo.Params {
	var p demo.Params
	p.Defaults()
	p.WorldScale *= c.Zoom / 100
	p.Height = c.Height
	p.BladeSpeed = c.BladeSpeed
	p.FlightSpeed = c.FlightSpeed
	return p
}

// MaxSpeed is the largest magnitude accepted for the blade
// and flight speeds, in revolutions per second.
const MaxSpeed = 1000

// Validate returns an error wrapping [shape.ErrInvalidParameter]
// for each field with a value the scene cannot be animated with:
// negative counts, non-positive rates and ratios, and infinite,
// NaN or out of range angles and speeds.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, field string, v any) {
		if !ok {
			errs = append(errs, fmt.Errorf("config: invalid %s %v: %w", FlagName(field), v, shape.ErrInvalidParameter))
		}
	}
	check(c.Frames >= 0, "Frames", c.Frames)
	check(c.DropEvery >= 0, "DropEvery", c.DropEvery)
	check(positive(c.FPS), "FPS", c.FPS)
	check(positive(c.Zoom), "Zoom", c.Zoom)
	check(positive(c.Aspect), "Aspect", c.Aspect)
	check(finite(c.Gamma), "Gamma", c.Gamma)
	check(finite(c.Theta), "Theta", c.Theta)
	check(finite(c.Height), "Height", c.Height)
	check(finite(c.BladeSpeed) && math32.Abs(c.BladeSpeed) <= MaxSpeed, "BladeSpeed", c.BladeSpeed)
	check(finite(c.FlightSpeed) && math32.Abs(c.FlightSpeed) <= MaxSpeed, "FlightSpeed", c.FlightSpeed)
	return errors.Join(errs...)
}

func finite(x float32) bool {
	return !math32.IsNaN(x) && !math32.IsInf(x, 0)
}

func positive(x float32) bool {
	return finite(x) && x > 0
}

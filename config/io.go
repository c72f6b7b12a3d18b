// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/meshstack/base/errors"
	"cogentcore.org/meshstack/shape"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrFormat is returned for a file name whose extension
// is not a supported format.
var ErrFormat = errors.New("config: unsupported file format")

// Decoder is an interface for standard decoder types
type Decoder interface {
	// Decode decodes from io.Reader specified at creation
	Decode(v any) error
}

// DecoderFunc is a function that creates a new Decoder for given reader
type DecoderFunc func(r io.Reader) Decoder

// NewDecoderFunc returns a DecoderFunc for a specific Decoder type
func NewDecoderFunc[T Decoder](f func(r io.Reader) T) DecoderFunc {
	return func(r io.Reader) Decoder { return f(r) }
}

// MarshalFunc encodes an object into bytes.
type MarshalFunc func(v any) ([]byte, error)

// formats returns the decoder and marshaler for the extension of
// the given file name: .toml, or .yaml and .yml.
func formats(filename string) (DecoderFunc, MarshalFunc, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return NewDecoderFunc(toml.NewDecoder), toml.Marshal, nil
	case ".yaml", ".yml":
		return NewDecoderFunc(yaml.NewDecoder), yaml.Marshal, nil
	}
	return nil, nil, fmt.Errorf("%q: %w", filename, ErrFormat)
}

// Read reads object encoding from the given reader,
// using the given [DecoderFunc]. An empty input leaves v unchanged.
func Read(v any, reader io.Reader, f DecoderFunc) error {
	d := f(reader)
	err := d.Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// OpenFile reads object from the given file, in the format given by
// its extension. A leading ~ in the file name is expanded to the home
// directory.
func OpenFile(v any, filename string) error {
	fn, err := homedir.Expand(filename)
	if err != nil {
		return err
	}
	df, _, err := formats(fn)
	if err != nil {
		return err
	}
	fp, err := os.Open(fn)
	if err != nil {
		return err
	}
	defer fp.Close()
	return Read(v, bufio.NewReader(fp), df)
}

// SaveFile writes object to the given file, in the format given by
// its extension.
func SaveFile(v any, filename string) error {
	fn, err := homedir.Expand(filename)
	if err != nil {
		return err
	}
	_, mf, err := formats(fn)
	if err != nil {
		return err
	}
	b, err := mf(v)
	if err != nil {
		return err
	}
	return os.WriteFile(fn, b, 0666)
}

// Open returns the config read from the given TOML or YAML file.
// Fields missing from the file keep their default values.
// The result is checked with [Config.Validate].
func Open(filename string) (*Config, error) {
	c := New()
	if err := OpenFile(c, filename); err != nil {
		return nil, fmt.Errorf("config.Open: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config.Open %s: %w", filename, err)
	}
	return c, nil
}

// Save writes the config to the given TOML or YAML file.
func (c *Config) Save(filename string) error {
	return SaveFile(c, filename)
}

// MeshData is raw triangle mesh data: a flat list of xyz point
// coordinates and a flat list of triangle indexes.
type MeshData struct {
	Points []float32 `toml:"points" yaml:"points"`
	Faces  []uint32  `toml:"faces" yaml:"faces"`
}

// OpenBunny returns the bunny mesh built from the [MeshData]
// in the given TOML or YAML file.
func OpenBunny(filename string) (*shape.Mesh, error) {
	var md MeshData
	if err := OpenFile(&md, filename); err != nil {
		return nil, fmt.Errorf("config.OpenBunny: %w", err)
	}
	return shape.NewBunny(md.Points, md.Faces)
}

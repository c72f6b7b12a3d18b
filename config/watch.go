// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync/atomic"

	"cogentcore.org/meshstack/base/errors"
	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"
)

// Live holds the latest config snapshot. It is updated by a [Watcher]
// and read by the frame loop at the start of each frame.
type Live struct {
	cfg atomic.Pointer[Config]
}

// NewLive returns a new [Live] holding the given config.
func NewLive(c *Config) *Live {
	lv := &Live{}
	lv.Store(c)
	return lv
}

// Load returns the current config snapshot.
func (lv *Live) Load() *Config {
	return lv.cfg.Load()
}

// Store replaces the current config snapshot.
func (lv *Live) Store(c *Config) {
	lv.cfg.Store(c)
}

// Watcher reloads a config file when it changes.
type Watcher struct {
	// Filename is the full path of the watched file.
	Filename string

	watcher *fsnotify.Watcher
}

// NewWatcher returns a new [Watcher] for the given config file.
// The directory of the file is watched, so that files replaced by
// editors with a rename are picked up.
func NewWatcher(filename string) (*Watcher, error) {
	fn, err := homedir.Expand(filename)
	if err != nil {
		return nil, err
	}
	fn, err = filepath.Abs(fn)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(fn)); err != nil {
		fw.Close()
		return nil, err
	}
	return &Watcher{Filename: fn, watcher: fw}, nil
}

// Run calls fn with each newly loaded config after the file is
// written or replaced, until ctx is done. Files that fail to load
// are logged and skipped. Run closes the watcher when it returns.
func (w *Watcher) Run(ctx context.Context, fn func(c *Config)) error {
	defer w.watcher.Close()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.Filename {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			c, err := Open(w.Filename)
			if errors.Log(err) != nil {
				continue
			}
			slog.Debug("config: reloaded", "file", w.Filename)
			fn(c)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			errors.Log(err)
		}
	}
}

// Watch watches the given config file until ctx is done,
// calling fn with each newly loaded config. See [Watcher.Run].
func Watch(ctx context.Context, filename string, fn func(c *Config)) error {
	w, err := NewWatcher(filename)
	if err != nil {
		return err
	}
	return w.Run(ctx, fn)
}

// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command meshstack builds the scene meshes and renders frames of the
// helicopter scene through a recording drawer, reporting statistics
// on the draw calls made.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"cogentcore.org/meshstack/base/errors"
	"cogentcore.org/meshstack/base/logx"
	"cogentcore.org/meshstack/config"
)

var (
	configFile = flag.String("config", "", "the TOML or YAML config file to read")
	watch      = flag.Bool("watch", false, "reload the config file when it changes while rendering")
	vv         = flag.Bool("vv", false, "show debug log messages")
	verbose    = flag.Bool("v", false, "show info log messages")
	quiet      = flag.Bool("q", false, "only show error log messages")
)

func main() {
	cfg := config.New()
	config.BindFlags(flag.CommandLine, cfg)
	flag.Usage = Usage
	flag.Parse()

	logx.UserLevel = logx.LevelFromFlags(*vv, *verbose, *quiet)
	logx.SetDefaultLogger()

	if *configFile != "" {
		fc, err := config.Open(*configFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		errors.Log(config.ApplySetFlags(flag.CommandLine, fc))
		cfg = fc
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	live := config.NewLive(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if *watch && *configFile != "" {
		go func() {
			errors.Log(config.Watch(ctx, *configFile, func(c *config.Config) {
				errors.Log(config.ApplySetFlags(flag.CommandLine, c))
				if errors.Log(c.Validate()) != nil {
					return
				}
				live.Store(c)
				slog.Info("config reloaded", "file", *configFile)
			}))
		}()
	}

	if err := Run(ctx, live); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

// Usage is a replacement usage function for the flags package.
func Usage() {
	_, _ = fmt.Fprintf(os.Stderr, "Meshstack renders frames of a transform stack scene without a display.\n")
	_, _ = fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
	_, _ = fmt.Fprintf(os.Stderr, "\tmeshstack [flags]\n")
	_, _ = fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
}

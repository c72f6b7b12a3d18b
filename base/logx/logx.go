// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides level selection for [slog] and a default
// handler with terminal-colored level names.
package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

const (
	Debug = slog.LevelDebug
	Info  = slog.LevelInfo
	Warn  = slog.LevelWarn
	Error = slog.LevelError
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. It should typically
// be set through [LevelFromFlags] or a config field.
var UserLevel = defaultUserLevel

var defaultUserLevel = slog.LevelInfo

// LevelFromFlags returns the [slog.Level] object corresponding to the given
// user flag options. The flags correspond to the following values:
//   - vv: [slog.LevelDebug]
//   - v: [slog.LevelInfo]
//   - q: [slog.LevelError]
//   - (default: [slog.LevelWarn])
//
// The flags are evaluated in that order, so, for example, if both
// vv and q are specified, it will still return [slog.LevelDebug].
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// NewHandler returns a text [slog.Handler] writing to w at [UserLevel],
// with the level names colored when w is a color-capable terminal.
func NewHandler(w io.Writer) slog.Handler {
	out := termenv.NewOutput(w)
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: UserLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 || a.Key != slog.LevelKey {
				return a
			}
			lv, ok := a.Value.Any().(slog.Level)
			if !ok {
				return a
			}
			a.Value = slog.StringValue(ApplyColor(out, lv, lv.String()))
			return a
		},
	})
}

// SetDefaultLogger sets the default logger to one using [NewHandler]
// on [os.Stderr]. It should be called again whenever [UserLevel] changes.
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

// ApplyColor returns str colored for the given level on the given output.
// Outputs without color support return str unchanged.
func ApplyColor(out *termenv.Output, level slog.Level, str string) string {
	var c string
	switch {
	case level >= slog.LevelError:
		c = "#e5484d"
	case level >= slog.LevelWarn:
		c = "#f5a524"
	case level >= slog.LevelInfo:
		c = "#3e8ed0"
	default:
		c = "#8b8d98"
	}
	return out.String(str).Foreground(out.Color(c)).String()
}

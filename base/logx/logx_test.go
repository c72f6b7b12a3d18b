// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, false))
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, true))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, true))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
}

func TestHandler(t *testing.T) {
	prev := UserLevel
	defer func() { UserLevel = prev }()

	UserLevel = Info
	var buf bytes.Buffer
	lg := slog.New(NewHandler(&buf))
	lg.Debug("hidden")
	lg.Info("mesh built", "name", "sphere", "vertices", 602)
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, `msg="mesh built"`)
	assert.Contains(t, out, "vertices=602")
}

func TestApplyColorPlain(t *testing.T) {
	var buf bytes.Buffer
	out := termenv.NewOutput(&buf, termenv.WithProfile(termenv.Ascii))
	assert.Equal(t, "WARN", ApplyColor(out, Warn, "WARN"))
}

func TestDefaultLogger(t *testing.T) {
	prev := UserLevel
	defer func() { UserLevel = prev }()

	UserLevel = Debug
	SetDefaultLogger()

	slog.Debug("this is debug")
	slog.Info("this is info")
	slog.Warn("this is warn")
}

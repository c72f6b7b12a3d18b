// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type level int

func (l *level) UnmarshalText(text []byte) error {
	*l = level(len(text))
	return nil
}

type inner struct {
	Size float32 `default:"2.5"`
}

type options struct {
	Name    string  `default:"bunny"`
	Count   int     `default:"20"`
	Ratio   float32 `default:"0.05"`
	On      bool    `default:"true"`
	Level   level   `default:"abc"`
	Kept    int
	Inner   inner
	private int `default:"3"`
}

func TestSetFromDefaultTags(t *testing.T) {
	o := &options{Kept: 7}
	require.NoError(t, SetFromDefaultTags(o))
	assert.Equal(t, "bunny", o.Name)
	assert.Equal(t, 20, o.Count)
	assert.Equal(t, float32(0.05), o.Ratio)
	assert.True(t, o.On)
	assert.Equal(t, level(3), o.Level)
	assert.Equal(t, 7, o.Kept)
	assert.Equal(t, float32(2.5), o.Inner.Size)
	assert.Equal(t, 0, o.private)

	assert.NoError(t, SetFromDefaultTags(nil))
	assert.NoError(t, SetFromDefaultTags(options{}))
}

func TestSetFromDefaultTagsError(t *testing.T) {
	type bad struct {
		Count int `default:"many"`
	}
	err := SetFromDefaultTags(&bad{})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "Count"))
}

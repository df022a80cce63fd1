// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yamlx

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testStruct struct {
	Name   string  `yaml:"name"`
	Gamma  float64 `yaml:"gamma"`
	Values []int   `yaml:"values"`
}

func TestYAML(t *testing.T) {
	in := &testStruct{Name: "sRGB", Gamma: 2.2, Values: []int{1, 2, 3}}
	b, err := WriteBytes(in)
	require.NoError(t, err)
	assert.Contains(t, string(b), "name: sRGB")

	out := &testStruct{}
	require.NoError(t, ReadBytes(out, b))
	assert.Equal(t, in, out)

	fn := filepath.Join(t.TempDir(), "test.yaml")
	require.NoError(t, Save(in, fn))
	out = &testStruct{}
	require.NoError(t, Open(out, fn))
	assert.Equal(t, in, out)

	assert.Error(t, Open(out, filepath.Join(t.TempDir(), "missing.yaml")))
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testStruct struct {
	Name   string
	Gamma  float64
	Values []int
}

func TestTOML(t *testing.T) {
	in := &testStruct{Name: "sRGB", Gamma: 2.2, Values: []int{1, 2, 3}}
	b, err := WriteBytes(in)
	require.NoError(t, err)
	assert.Contains(t, string(b), "Name = 'sRGB'")

	out := &testStruct{}
	require.NoError(t, ReadBytes(out, b))
	assert.Equal(t, in, out)

	fn := filepath.Join(t.TempDir(), "test.toml")
	require.NoError(t, Save(in, fn))
	out = &testStruct{}
	require.NoError(t, Open(out, fn))
	assert.Equal(t, in, out)
}

func TestOpenFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.toml")
	b := filepath.Join(dir, "b.toml")
	require.NoError(t, Save(&testStruct{Name: "a", Gamma: 1}, a))
	require.NoError(t, Save(&testStruct{Name: "b"}, b))

	out := &testStruct{}
	require.NoError(t, OpenFiles(out, a, filepath.Join(dir, "missing.toml"), b))
	assert.Equal(t, "b", out.Name)
	assert.Equal(t, 0.0, out.Gamma)

	assert.Error(t, ReadBytes(out, []byte("Name = ")))
}

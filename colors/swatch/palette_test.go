// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swatch

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/colorspace/colors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFromFilename(t *testing.T) {
	f, err := FormatFromFilename("a/b.TOML")
	require.NoError(t, err)
	assert.Equal(t, TOML, f)
	f, err = FormatFromFilename("p.yml")
	require.NoError(t, err)
	assert.Equal(t, YAML, f)
	_, err = FormatFromFilename("p.json")
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	p := Default()
	assert.Len(t, p.Colors, Rows*4)
	c, ok := p.Lookup("RED")
	require.True(t, ok)
	assert.Equal(t, "FF0000", c.Hex())
	_, ok = p.Lookup("nope")
	assert.False(t, ok)
}

func TestConvert(t *testing.T) {
	p := Default().Convert(colors.ModelRGBA)
	for _, e := range p.Colors {
		assert.Equal(t, colors.ModelRGBA, e.Color.Model())
	}
}

func TestPaletteReadWrite(t *testing.T) {
	in := Default()
	for _, f := range FormatsValues() {
		var b bytes.Buffer
		require.NoError(t, in.Write(&b, f))
		assert.True(t, strings.Contains(b.String(), "SphericalHWBA("), f.String())
		out, err := Read(&b, f)
		require.NoError(t, err, f.String())
		assert.Equal(t, in, out, f.String())
	}
}

func TestPaletteReadForms(t *testing.T) {
	src := `
name: web
colors:
  - name: a
    color: '#ff0000'
  - name: b
    color: teal
  - name: c
    color: CubicHSV(0.5, 1, 1)
`
	p, err := Read(strings.NewReader(src), YAML)
	require.NoError(t, err)
	require.Len(t, p.Colors, 3)
	assert.Equal(t, "FF0000", p.Colors[0].Color.Hex())
	assert.Equal(t, "008080", p.Colors[1].Color.Hex())
	assert.Equal(t, colors.ModelCubicHSVA, p.Colors[2].Color.Model())
	assert.Equal(t, 1.0, p.Colors[2].Color.Alpha())

	_, err = Read(strings.NewReader("colors = [{name = 'x', color = 'bogus('}]"), TOML)
	assert.Error(t, err)
}

func TestPaletteSaveOpen(t *testing.T) {
	dir := t.TempDir()
	in := &Palette{Name: "small", Colors: []Entry{
		{Name: "half", Color: colors.RGBA(0.5, 0.25, 1, 0.75)},
		{Name: "ink", Color: colors.CMYK(0.1, 0.2, 0.3, 0.4)},
	}}
	for _, fn := range []string{"p.toml", "p.yaml"} {
		fn = filepath.Join(dir, fn)
		require.NoError(t, in.Save(fn))
		out, err := Open(fn)
		require.NoError(t, err)
		assert.Equal(t, in, out)
	}
	assert.Error(t, in.Save(filepath.Join(dir, "p.txt")))
	_, err := Open(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
}

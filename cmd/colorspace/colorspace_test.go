// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"image"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/colorspace/base/iox/imagex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeCommand(args ...string) (string, error) {
	root := newRootCmd()
	root.SetArgs(args)
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(&bytes.Buffer{})
	err := root.Execute()
	return buf.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestConvert(t *testing.T) {
	out, err := executeCommand("convert", "CubicHSV(0, 1, 1)")
	require.NoError(t, err)
	assert.Equal(t, "RGBA(1, 0, 0, 1)\n", out)

	out, err = executeCommand("convert", "--model", "cubichsva", "--hex", "#ff0000", "RGBA(0, 0, 0)")
	require.NoError(t, err)
	assert.Equal(t, []string{"CubicHSVA(0, 1, 1, 1) #FF0000", "CubicHSVA(0, 0, 0, 1) #000000"}, lines(out))

	args := []string{"convert", "--hex", "SphericalHWBA(0.25, 0.125, 0.25, 1)", "SphericalHCLA(0.75, 0.5, 0.5, 1)"}
	plain, err := executeCommand(args...)
	require.NoError(t, err)
	cached, err := executeCommand(append(args, "--cached", "--vv")...)
	require.NoError(t, err)
	pl, cl := lines(plain), lines(cached)
	require.Len(t, cl, 2)
	for i := range pl {
		assert.Equal(t, pl[i], cl[i])
	}

	out, err = executeCommand("convert", "--gamma", "0.5", "RGBA(0.5, 1, 0, 1)")
	require.NoError(t, err)
	assert.Equal(t, "RGBA(0.25, 1, 0, 1)\n", out)
}

func TestConvertErrors(t *testing.T) {
	_, err := executeCommand("convert")
	assert.Error(t, err)
	_, err = executeCommand("convert", "--model", "LAB", "red")
	assert.ErrorContains(t, err, "invalid --model")
	_, err = executeCommand("convert", "RGBA(1, 2)")
	assert.Error(t, err)
}

func TestGradient(t *testing.T) {
	out, err := executeCommand("gradient", "-n", "3", "RGBA(0, 0, 0)", "RGBA(1, 1, 1)")
	require.NoError(t, err)
	ls := lines(out)
	require.Len(t, ls, 3)
	assert.Contains(t, ls[0], "#000000")
	assert.Contains(t, ls[1], "#808080")
	assert.Contains(t, ls[1], "RGBA(0.5, 0.5, 0.5, 1)")
	assert.Contains(t, ls[2], "#FFFFFF")

	out, err = executeCommand("gradient", "--rows", "2", "-n", "3", "black", "white", "red", "blue")
	require.NoError(t, err)
	ls = lines(out)
	require.Len(t, ls, 2)
	assert.Contains(t, ls[0], "#000000")
	assert.Contains(t, ls[1], "#FF0000")
	assert.Contains(t, ls[1], "#0000FF")

	out, err = executeCommand("gradient", "-m", "CubicHSVA", "-n", "2", "red", "blue")
	require.NoError(t, err)
	assert.Contains(t, out, "CubicHSVA(0, 1, 1, 1)")

	_, err = executeCommand("gradient", "red", "blue", "green")
	assert.Error(t, err)
}

func TestSwatches(t *testing.T) {
	out, err := executeCommand("swatches")
	require.NoError(t, err)
	ls := lines(out)
	require.Len(t, ls, 25)
	assert.Contains(t, ls[0], "transparent")
	assert.Contains(t, ls[1], "#FF0000")
	assert.Contains(t, ls[1], "maroon")

	out, err = executeCommand("swatches", "red", "Black")
	require.NoError(t, err)
	ls = lines(out)
	require.Len(t, ls, 2)
	assert.Contains(t, ls[0], "SphericalHWBA(0, 0, 0, 1)")
	assert.Contains(t, ls[1], "#000000")

	out, err = executeCommand("swatches", "--linear", "salmon")
	require.NoError(t, err)
	assert.Contains(t, out, "#EEA0A0")

	_, err = executeCommand("swatches", "plaid")
	assert.Error(t, err)
}

func TestPalette(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"p.toml", "p.yaml"} {
		fn := filepath.Join(dir, name)
		_, err := executeCommand("palette", "save", "-m", "CubicHSL", fn)
		require.NoError(t, err)

		out, err := executeCommand("palette", "show", fn)
		require.NoError(t, err)
		ls := lines(out)
		require.Len(t, ls, 101)
		assert.Equal(t, "quaternary", ls[0])
		assert.Contains(t, ls[5], "red")
		assert.Contains(t, ls[5], "CubicHSLA(")
	}

	_, err := executeCommand("palette", "save", filepath.Join(dir, "p.json"))
	assert.Error(t, err)
	_, err = executeCommand("palette", "show", filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestImage(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "table.png")
	_, err := executeCommand("swatches", "--image", fn, "--cell", "4")
	require.NoError(t, err)
	im, f, err := imagex.Open(fn)
	require.NoError(t, err)
	assert.Equal(t, imagex.PNG, f)
	assert.Equal(t, image.Rect(0, 0, 16, 100), im.Bounds())

	fn = filepath.Join(dir, "gradient.bmp")
	_, err = executeCommand("gradient", "-n", "4", "--cell", "2", "--image", fn, "red", "blue")
	require.NoError(t, err)
	im, f, err = imagex.Open(fn)
	require.NoError(t, err)
	assert.Equal(t, imagex.BMP, f)
	assert.Equal(t, image.Rect(0, 0, 8, 2), im.Bounds())
	r, _, b, _ := im.At(0, 0).RGBA()
	assert.Equal(t, [2]uint32{0xffff, 0}, [2]uint32{r, b})

	_, err = executeCommand("gradient", "--image", filepath.Join(dir, "g.svg"), "red", "blue")
	assert.Error(t, err)
	_, err = executeCommand("swatches", "--cell", "0", "--image", fn)
	assert.Error(t, err)
}

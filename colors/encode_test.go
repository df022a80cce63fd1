// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"math"
	"testing"

	"cogentcore.org/colorspace/base/tolassert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegers(t *testing.T) {
	c := RGBA(0.5, 1.2, -0.1, math.NaN())
	assert.Equal(t, [4]uint8{128, 255, 0, 0}, ToIntegers[uint8](c))
	assert.Equal(t, [4]uint16{50, 120, 0, 0}, ToIntegers[uint16](c, 100))
	assert.Equal(t, [4]uint32{1, 1, 0, 0}, ToIntegers[uint32](c, 1))

	red := RGB[float32](1, 0, 0)
	assert.Equal(t, [4]uint8{255, 0, 0, 255}, red.U8Array())
	assert.Equal(t, [4]uint16{65535, 0, 0, 65535}, red.U16Array())
}

func TestPacking(t *testing.T) {
	red := RGB[float32](1, 0, 0)
	assert.Equal(t, uint32(0xFFFF0000), red.Alpha8888())
	assert.Equal(t, uint32(0xFFFF0000), red.ARGB())
	assert.Equal(t, "FF0000", red.Hex())
	assert.Equal(t, "FFFF0000", red.AlphaHex())
	assert.Equal(t, "80FF0000", red.WithAlpha(0.5).AlphaHex())
	assert.Equal(t, "FF0000", red.WithAlpha(0.5).Hex())

	// Alpha8888 packs the components of the model, ARGB those of RGBA
	k := CMYK[float32](0, 1, 1, 0)
	assert.Equal(t, uint32(0x0000FFFF), k.Alpha8888())
	assert.Equal(t, uint32(0x00FF0000), k.ARGB())
	assert.Equal(t, "FF0000", k.Hex())
	assert.Equal(t, "00FF0000", k.AlphaHex())

	assert.Equal(t, "FF0000", CubicHSV[float32](0, 1, 1).Hex())
	assert.Equal(t, "7F7F7F", RGB(0.499, 0.499, 0.499).Hex())
	assert.Equal(t, "808080", RGB(0.5, 0.5, 0.5).Hex())
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex[float64]("#FF8000")
	require.NoError(t, err)
	assert.Equal(t, ModelRGBA, c.Model())
	tolassert.EqualArray(t, [4]float64{1, 128.0 / 255, 0, 1}, c.Array(), 1e-12)

	c, err = ParseHex[float64]("f80")
	require.NoError(t, err)
	tolassert.EqualArray(t, [4]float64{1, 8.0 / 15, 0, 1}, c.Array(), 1e-12)

	c, err = ParseHex[float64]("#80FF0000")
	require.NoError(t, err)
	tolassert.EqualArray(t, [4]float64{1, 0, 0, 128.0 / 255}, c.Array(), 1e-12)
	assert.Equal(t, "80FF0000", c.AlphaHex())

	for _, bad := range []string{"#GG0000", "#12", "#ZZ112233", ""} {
		_, err = ParseHex[float32](bad)
		assert.Error(t, err, bad)
	}

	for _, c := range rgbGrid[float32](5) {
		p, err := ParseHex[float32](c.AlphaHex())
		require.NoError(t, err)
		assert.Equal(t, c.AlphaHex(), p.AlphaHex())
	}
}

func TestFromName(t *testing.T) {
	c, err := FromName[float32]("CornflowerBlue")
	require.NoError(t, err)
	assert.Equal(t, "6495ED", c.Hex())
	assert.Equal(t, float32(1), c.Alpha())

	_, err = FromName[float32]("notacolor")
	assert.Error(t, err)
}

func TestParseColor(t *testing.T) {
	cs := []Color64{
		RGB(1.0, 0, 0),
		SphericalHWB(0.5, 0.25, 0.125).WithAlpha(0.5),
		CMYK(0.1, 0.2, 0.3, 0.4),
		YUV(0.5, -0.1, 0.1),
	}
	for _, c := range cs {
		p, err := ParseColor[float64](c.String())
		require.NoError(t, err, c.String())
		assert.Equal(t, c, p)

		b, err := c.MarshalText()
		require.NoError(t, err)
		var u Color64
		require.NoError(t, u.UnmarshalText(b))
		assert.Equal(t, c, u)
	}

	c, err := ParseColor[float32](" cubichsva( 0.5, 1, 1 ) ")
	require.NoError(t, err)
	assert.Equal(t, CubicHSV[float32](0.5, 1, 1), c)

	c, err = ParseColor[float32]("red")
	require.NoError(t, err)
	assert.Equal(t, RGB[float32](1, 0, 0), c)

	c, err = ParseColor[float32]("#00FF00")
	require.NoError(t, err)
	assert.Equal(t, "00FF00", c.Hex())

	c, err = ParseColor[float32]("0000FF")
	require.NoError(t, err)
	assert.Equal(t, "0000FF", c.Hex())

	for _, bad := range []string{"RGBA(1, 2)", "Foo(1, 2, 3)", "RGBA(1, x, 0)", "RGBA(1, 2, 3", "RGBA(1, 2, 3, 4, 5)", "notacolor"} {
		_, err := ParseColor[float32](bad)
		assert.Error(t, err, bad)
	}
	var u Color32
	assert.Error(t, u.UnmarshalText([]byte("Foo(1, 2, 3)")))
}

func TestParseModel(t *testing.T) {
	tests := map[string]Models{
		"RGB": ModelRGBA, "rgba": ModelRGBA, "CMY": ModelCMYA, "RGBW": ModelRGBW, "cmyk": ModelCMYK,
		"SphericalHCL": ModelSphericalHCLA, "SphericalHWB": ModelSphericalHWBA,
		"CubicHSL": ModelCubicHSLA, "cubichsv": ModelCubicHSVA, "CubicHWBA": ModelCubicHWBA, "YUV": ModelYUVA,
	}
	for s, want := range tests {
		m, err := ParseModel(s)
		require.NoError(t, err, s)
		assert.Equal(t, want, m, s)
	}
	for _, bad := range []string{"", "A", "LAB", "RGBWA", "CMYKA", "CubicHSVAA"} {
		_, err := ParseModel(bad)
		assert.Error(t, err, bad)
	}

	c, err := ParseColor[float64]("CubicHSV(0.5, 1, 1)")
	require.NoError(t, err)
	assert.Equal(t, CubicHSV(0.5, 1, 1), c)
	c, err = ParseColor[float64]("YUV(0.5, 0, 0, 0.25)")
	require.NoError(t, err)
	assert.Equal(t, YUV(0.5, 0.0, 0).WithAlpha(0.25), c)
}

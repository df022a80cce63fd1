// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"cogentcore.org/colorspace/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestStdColor(t *testing.T) {
	var c color.Color = RGB[float32](1, 0, 0)
	r, g, b, a := c.RGBA()
	assert.Equal(t, [4]uint32{0xffff, 0, 0, 0xffff}, [4]uint32{r, g, b, a})

	r, g, b, a = RGBA[float32](1, 0, 0, 0.5).RGBA()
	er, eg, eb, ea := color.NRGBA64{R: 0xffff, A: 0x8000}.RGBA()
	assert.Equal(t, [4]uint32{er, eg, eb, ea}, [4]uint32{r, g, b, a})

	// out of range channels are clamped
	r, _, _, _ = RGB(1.5, 0, 0).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	r, g, b, a = RGBA[float32](-0.5, 0.5, 2, 1.5).RGBA()
	assert.Equal(t, [4]uint32{0, 0x8000, 0xffff, 0xffff}, [4]uint32{r, g, b, a})

	// keyed models are opaque
	_, _, _, a = CMYK[float32](0, 1, 1, 0).RGBA()
	assert.Equal(t, uint32(0xffff), a)

	// any model reports its RGB equivalent
	r, g, b, a = CubicHSV(2.0/3, 1, 1).RGBA()
	assert.Equal(t, [4]uint32{0, 0, 0xffff, 0xffff}, [4]uint32{r, g, b, a})
}

func TestFromStd(t *testing.T) {
	c := FromStd[float32](color.RGBA{R: 255, G: 128, B: 0, A: 255})
	assert.Equal(t, ModelRGBA, c.Model())
	tolassert.EqualArray(t, [4]float32{1, 128.0 / 255, 0, 1}, c.Array(), 1e-6)

	// premultiplied input is returned with straight alpha
	c = FromStd[float32](color.RGBA{R: 128, A: 128})
	tolassert.EqualArray(t, [4]float32{1, 0, 0, 128.0 / 255}, c.Array(), 1e-6)

	c = FromStd[float32](color.Gray{Y: 255})
	assert.Equal(t, [4]float32{1, 1, 1, 1}, c.Array())

	hsv := CubicHSV[float32](0.5, 1, 1)
	assert.Equal(t, hsv.ToRGB(), FromStd[float32](hsv))
	k := CMYK[float32](0, 1, 1, 0)
	assert.Equal(t, [4]float32{1, 0, 0, 1}, FromStd[float32](k).Array())
}

func TestStdModel(t *testing.T) {
	m := StdModel(ModelCubicHSVA)
	c := m.Convert(color.RGBA{B: 255, A: 255}).(Color64)
	assert.Equal(t, ModelCubicHSVA, c.Model())
	tolassert.EqualArray(t, [4]float64{2.0 / 3, 1, 1, 1}, c.Array(), 1e-12)

	// colors can be drawn into standard images
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	draw.Draw(img, img.Bounds(), image.NewUniform(SphericalHWB(0.0, 0, 0)), image.Point{}, draw.Src)
	assert.Equal(t, color.RGBA{R: 255, A: 255}, img.RGBAAt(1, 1))
}

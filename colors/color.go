// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"strings"

	"cogentcore.org/colorspace/base/mathx"
)

// Color is an immutable color held as four components in one of
// the [Models]. The meaning of the components depends on the model;
// the fourth component is alpha except for the keyed models
// ([ModelRGBW] and [ModelCMYK]), where it is the ink key.
//
// Colors are plain values: every operation returns a new Color.
// The zero value is transparent black in [ModelRGBA].
type Color[F mathx.Float] struct {
	c     [4]F
	model Models
}

// Color32 is a [Color] held in single precision.
type Color32 = Color[float32]

// Color64 is a [Color] held in double precision.
type Color64 = Color[float64]

// FromArray returns a new color with the given components in the given model.
func FromArray[F mathx.Float](c [4]F, model Models) Color[F] {
	return Color[F]{c: c, model: model}
}

// FromTuple returns a new color with the given components in the given model.
func FromTuple[F mathx.Float](c0, c1, c2, c3 F, model Models) Color[F] {
	return Color[F]{c: [4]F{c0, c1, c2, c3}, model: model}
}

// RGB returns a new opaque [ModelRGBA] color.
func RGB[F mathx.Float](r, g, b F) Color[F] {
	return FromTuple(r, g, b, 1, ModelRGBA)
}

// RGBA returns a new [ModelRGBA] color.
func RGBA[F mathx.Float](r, g, b, a F) Color[F] {
	return FromTuple(r, g, b, a, ModelRGBA)
}

// CMY returns a new opaque [ModelCMYA] color.
func CMY[F mathx.Float](c, m, y F) Color[F] {
	return FromTuple(c, m, y, 1, ModelCMYA)
}

// CMYK returns a new [ModelCMYK] color.
func CMYK[F mathx.Float](c, m, y, k F) Color[F] {
	return FromTuple(c, m, y, k, ModelCMYK)
}

// RGBW returns a new [ModelRGBW] color.
func RGBW[F mathx.Float](r, g, b, w F) Color[F] {
	return FromTuple(r, g, b, w, ModelRGBW)
}

// SphericalHCL returns a new opaque [ModelSphericalHCLA] color.
func SphericalHCL[F mathx.Float](hue, chroma, luminance F) Color[F] {
	return FromTuple(hue, chroma, luminance, 1, ModelSphericalHCLA)
}

// SphericalHWB returns a new opaque [ModelSphericalHWBA] color.
func SphericalHWB[F mathx.Float](hue, white, black F) Color[F] {
	return FromTuple(hue, white, black, 1, ModelSphericalHWBA)
}

// CubicHSL returns a new opaque [ModelCubicHSLA] color.
func CubicHSL[F mathx.Float](hue, saturation, lightness F) Color[F] {
	return FromTuple(hue, saturation, lightness, 1, ModelCubicHSLA)
}

// CubicHSV returns a new opaque [ModelCubicHSVA] color.
func CubicHSV[F mathx.Float](hue, saturation, value F) Color[F] {
	return FromTuple(hue, saturation, value, 1, ModelCubicHSVA)
}

// CubicHWB returns a new opaque [ModelCubicHWBA] color.
func CubicHWB[F mathx.Float](hue, white, black F) Color[F] {
	return FromTuple(hue, white, black, 1, ModelCubicHWBA)
}

// YUV returns a new opaque [ModelYUVA] color.
func YUV[F mathx.Float](y, u, v F) Color[F] {
	return FromTuple(y, u, v, 1, ModelYUVA)
}

// Array returns the components of the color.
func (c Color[F]) Array() [4]F {
	return c.c
}

// Tuple returns the components of the color.
func (c Color[F]) Tuple() (F, F, F, F) {
	return c.c[0], c.c[1], c.c[2], c.c[3]
}

// Model returns the model the color is held in.
func (c Color[F]) Model() Models {
	return c.model
}

// Alpha returns the alpha of the color. Keyed models have no
// alpha and always return 1.
func (c Color[F]) Alpha() F {
	if c.model.IsKeyed() {
		return 1
	}
	return c.c[3]
}

// WithAlpha returns the color with the given alpha. It returns the
// color unchanged for the keyed models, whose fourth component is
// an ink key.
func (c Color[F]) WithAlpha(alpha F) Color[F] {
	if c.model.IsKeyed() {
		return c
	}
	c.c[3] = alpha
	return c
}

// String returns the color in the text form read by [ParseColor],
// for example "SphericalHWBA(0.5, 0.25, 0, 1)".
func (c Color[F]) String() string {
	var b strings.Builder
	b.WriteString(c.model.String())
	b.WriteByte('(')
	for i, v := range c.c {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(mathx.FormatFloat(v))
	}
	b.WriteByte(')')
	return b.String()
}

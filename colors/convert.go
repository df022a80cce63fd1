// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import "cogentcore.org/colorspace/base/mathx"

// transform maps the four components of a color between a model and RGBA.
type transform[F mathx.Float] func(v [4]F) [4]F

// transforms holds exactly one transform to and one from RGBA
// for every model.
type transforms[F mathx.Float] struct {
	toRGB   [ModelsN]transform[F]
	fromRGB [ModelsN]transform[F]
}

func newTransforms[F mathx.Float]() *transforms[F] {
	return &transforms[F]{
		toRGB: [ModelsN]transform[F]{
			ModelRGBA:          identity[F],
			ModelCMYA:          invert[F],
			ModelRGBW:          rgbwToRGB[F],
			ModelCMYK:          cmykToRGB[F],
			ModelSphericalHCLA: sphericalHCLToRGB[F],
			ModelSphericalHWBA: sphericalHWBToRGB[F],
			ModelCubicHSLA:     cubicHSLToRGB[F],
			ModelCubicHSVA:     cubicHSVToRGB[F],
			ModelCubicHWBA:     cubicHWBToRGB[F],
			ModelYUVA:          yuvToRGB[F],
		},
		fromRGB: [ModelsN]transform[F]{
			ModelRGBA:          identity[F],
			ModelCMYA:          invert[F],
			ModelRGBW:          rgbToRGBW[F],
			ModelCMYK:          rgbToCMYK[F],
			ModelSphericalHCLA: rgbToSphericalHCL[F],
			ModelSphericalHWBA: rgbToSphericalHWB[F],
			ModelCubicHSLA:     rgbToCubicHSL[F],
			ModelCubicHSVA:     rgbToCubicHSV[F],
			ModelCubicHWBA:     rgbToCubicHWB[F],
			ModelYUVA:          rgbToYUV[F],
		},
	}
}

var (
	transforms32 = newTransforms[float32]()
	transforms64 = newTransforms[float64]()
)

// transformsFor returns the transform tables for F.
func transformsFor[F mathx.Float]() *transforms[F] {
	if t, ok := any(transforms32).(*transforms[F]); ok {
		return t
	}
	if t, ok := any(transforms64).(*transforms[F]); ok {
		return t
	}
	// named float types
	return newTransforms[F]()
}

func identity[F mathx.Float](v [4]F) [4]F { return v }

// valid returns whether m is one of the defined models.
func (m Models) valid() bool {
	return m >= 0 && m < ModelsN
}

// ToRGB returns the color converted to [ModelRGBA], the pivot model.
// Colors already in RGBA are returned unchanged. The keyed models have
// no alpha and convert with an alpha of 0. The components of a color
// with an undefined model are kept as they are.
func (c Color[F]) ToRGB() Color[F] {
	if c.model == ModelRGBA {
		return c
	}
	if !c.model.valid() {
		return FromArray(c.c, ModelRGBA)
	}
	return FromArray(transformsFor[F]().toRGB[c.model](c.c), ModelRGBA)
}

// Convert returns the color converted to the given model, through RGBA.
// It returns the color unchanged if it is already in that model.
func (c Color[F]) Convert(model Models) Color[F] {
	if c.model == model {
		return c
	}
	rgb := c.ToRGB()
	if !model.valid() {
		return FromArray(rgb.c, model)
	}
	return FromArray(transformsFor[F]().fromRGB[model](rgb.c), model)
}

// ToCMY returns the color converted to [ModelCMYA].
func (c Color[F]) ToCMY() Color[F] { return c.Convert(ModelCMYA) }

// ToRGBW returns the color converted to [ModelRGBW].
func (c Color[F]) ToRGBW() Color[F] { return c.Convert(ModelRGBW) }

// ToCMYK returns the color converted to [ModelCMYK].
func (c Color[F]) ToCMYK() Color[F] { return c.Convert(ModelCMYK) }

// ToSphericalHCL returns the color converted to [ModelSphericalHCLA].
func (c Color[F]) ToSphericalHCL() Color[F] { return c.Convert(ModelSphericalHCLA) }

// ToSphericalHWB returns the color converted to [ModelSphericalHWBA].
func (c Color[F]) ToSphericalHWB() Color[F] { return c.Convert(ModelSphericalHWBA) }

// ToCubicHSL returns the color converted to [ModelCubicHSLA].
func (c Color[F]) ToCubicHSL() Color[F] { return c.Convert(ModelCubicHSLA) }

// ToCubicHSV returns the color converted to [ModelCubicHSVA].
func (c Color[F]) ToCubicHSV() Color[F] { return c.Convert(ModelCubicHSVA) }

// ToCubicHWB returns the color converted to [ModelCubicHWBA].
func (c Color[F]) ToCubicHWB() Color[F] { return c.Convert(ModelCubicHWBA) }

// ToYUV returns the color converted to [ModelYUVA].
func (c Color[F]) ToYUV() Color[F] { return c.Convert(ModelYUVA) }

// ConvertColors returns the given colors converted to the given model.
func ConvertColors[F mathx.Float](cs []Color[F], model Models) []Color[F] {
	res := make([]Color[F], len(cs))
	for i, c := range cs {
		res[i] = c.Convert(model)
	}
	return res
}

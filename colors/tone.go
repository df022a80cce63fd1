// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"cogentcore.org/colorspace/base/mathx"
	"cogentcore.org/colorspace/colors/tone"
)

// DefaultGamma is the gamma used by [Color.ToLinearRGB].
const DefaultGamma = 2.2

// Defined is a color with a tone curve for each of its four channels.
// The curves are applied to the channels of the color in RGBA by
// [Defined.Collapse], whatever model the color is held in.
type Defined[F mathx.Float] struct {
	Color  Color[F]
	Curves [4]tone.Curve[F]
}

// NewDefined returns a new [Defined] color with the given curves.
// Nil curves are linear.
func NewDefined[F mathx.Float](c Color[F], curves [4]tone.Curve[F]) Defined[F] {
	return Defined[F]{Color: c, Curves: curves}
}

// sameCurves returns the given curve for all four channels.
func sameCurves[F mathx.Float](c tone.Curve[F]) [4]tone.Curve[F] {
	return [4]tone.Curve[F]{c, c, c, c}
}

// Linear returns c with linear curves, which leave it unchanged.
func Linear[F mathx.Float](c Color[F]) Defined[F] {
	return NewDefined(c, sameCurves[F](tone.Linear[F]{}))
}

// Gamma returns c with the given gamma applied to red, green and blue.
// Alpha is left linear.
func Gamma[F mathx.Float](c Color[F], gamma F) Defined[F] {
	g := tone.Gamma(gamma)
	return NewDefined(c, [4]tone.Curve[F]{g, g, g, tone.Linear[F]{}})
}

// GammaAlpha returns c with the given gamma applied to all four channels.
func GammaAlpha[F mathx.Float](c Color[F], gamma F) Defined[F] {
	return NewDefined(c, sameCurves[F](tone.Gamma(gamma)))
}

// ComponentGamma returns c with a separate gamma for red, green and blue.
// Alpha is left linear.
func ComponentGamma[F mathx.Float](c Color[F], r, g, b F) Defined[F] {
	return NewDefined(c, [4]tone.Curve[F]{tone.Gamma(r), tone.Gamma(g), tone.Gamma(b), tone.Linear[F]{}})
}

// QuadraticTone returns c with a [tone.Quadratic] curve with the
// control point (x, y) on all four channels.
func QuadraticTone[F mathx.Float](c Color[F], x, y F) Defined[F] {
	return NewDefined(c, sameCurves[F](tone.Quadratic[F]{X: x, Y: y}))
}

// CubicTone returns c with a [tone.Cubic] curve on all four channels.
func CubicTone[F mathx.Float](c Color[F], x1, y1, x2, y2 F) Defined[F] {
	return NewDefined(c, sameCurves[F](tone.Cubic[F]{X1: x1, Y1: y1, X2: x2, Y2: y2}))
}

// Collapse applies the curves to the color converted to RGBA, and
// returns the result converted back to the model of the color.
func (d Defined[F]) Collapse() Color[F] {
	rgb := d.Color.ToRGB().c
	for i := range rgb {
		rgb[i] = tone.Map(d.Curves[i], rgb[i])
	}
	return FromArray(rgb, ModelRGBA).Convert(d.Color.model)
}

// GammaTransform returns c with the given gamma applied to red,
// green and blue, in the model of c.
func GammaTransform[F mathx.Float](c Color[F], gamma F) Color[F] {
	return Gamma(c, gamma).Collapse()
}

// ComponentGammaTransform returns c with a separate gamma applied to
// red, green and blue, in the model of c.
func ComponentGammaTransform[F mathx.Float](c Color[F], r, g, b F) Color[F] {
	return ComponentGamma(c, r, g, b).Collapse()
}

// ToLinearRGB returns the color in RGBA with [DefaultGamma] applied
// to all four channels, so each channel x becomes x^(1/2.2).
// This is the form the swatch hex codes are published in.
func (c Color[F]) ToLinearRGB() Color[F] {
	return GammaAlpha(c.ToRGB(), DefaultGamma).Collapse()
}

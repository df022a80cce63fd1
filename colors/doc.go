// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides a single color value type, [Color], that can
// hold a color in any of the [Models], and converts between models by
// pivoting through RGBA.
//
// The precision is chosen at the call site:
//
//	red := colors.RGB[float32](1, 0, 0)
//	hwb := red.ToSphericalHWB()
//	fmt.Println(hwb.ToRGB().Hex()) // FF0000
//
// Two families of hue models are supported. The spherical models
// ([ModelSphericalHCLA] and [ModelSphericalHWBA]) map hue, chroma and
// luminance onto a sphere fitted to the RGB cube, so that rings of
// constant chroma land evenly on the gamut boundary. The cubic models
// ([ModelCubicHSLA], [ModelCubicHSVA] and [ModelCubicHWBA]) are the
// standard hexagonal formulas.
//
// [LinearGradient] and [BilinearGradient] interpolate colors in the
// model of their first argument, advancing hue forward around the
// circle. [Defined] attaches per channel tone curves from package
// tone, which are applied in RGB.
//
// All functions are pure; the only mutable state is an optional,
// caller owned [SphericalCache].
package colors

//go:generate core generate

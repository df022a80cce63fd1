// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import "cogentcore.org/colorspace/base/mathx"

// IsAchromatic returns whether the color has no defined hue in a hue
// model: zero chroma or saturation, or for the white, black models a
// color on the grey axis. It returns false for the other models.
func (c Color[F]) IsAchromatic() bool {
	switch c.model {
	case ModelSphericalHCLA, ModelCubicHSLA, ModelCubicHSVA:
		return c.c[1] == 0
	case ModelSphericalHWBA:
		return c.c[1] >= 1 || c.c[2] >= 1
	case ModelCubicHWBA:
		return c.c[1]+c.c[2] >= 1
	}
	return false
}

// interpolationEnds returns the components to interpolate between for
// start and end, with end converted into the model of start. In hue
// models an achromatic start takes the hue of end, and the hue of end
// is moved up by one turn when it is below the start hue, so that
// hue always advances forward around the circle.
func interpolationEnds[F mathx.Float](start, end Color[F]) (s, e [4]F, hue bool) {
	s, e = start.c, end.Convert(start.model).c
	if !start.model.IsHue() {
		return s, e, false
	}
	if start.IsAchromatic() {
		s[0] = e[0]
	}
	if e[0] < s[0] {
		e[0]++
	}
	return s, e, true
}

// lerpEnds interpolates the components returned by [interpolationEnds],
// wrapping hue back into [0, 1).
func lerpEnds[F mathx.Float](s, e [4]F, hue bool, t F) [4]F {
	v := mathx.ArrayLerp(s, e, t)
	if hue && v[0] >= 1 {
		v[0]--
	}
	return v
}

// Lerp returns the color at t in [0, 1] between a and b, in the
// model of a. Hue models interpolate hue forward; see [LinearGradient].
func Lerp[F mathx.Float](a, b Color[F], t F) Color[F] {
	s, e, hue := interpolationEnds(a, b)
	return FromArray(lerpEnds(s, e, hue, t), a.model)
}

// LinearGradient returns steps colors evenly spaced from start to end,
// in the model of start. The first color is start and the last is end
// converted to the model of start.
//
// In the hue models, a start with no hue takes the hue of end, and hue
// always advances forward: when the end hue is below the start hue it
// goes around through 1 instead of taking the shorter way back.
// It returns nil for steps <= 0.
func LinearGradient[F mathx.Float](start, end Color[F], steps int) []Color[F] {
	if steps <= 0 {
		return nil
	}
	if steps == 1 {
		return []Color[F]{start}
	}
	s, e, hue := interpolationEnds(start, end)
	res := make([]Color[F], steps)
	res[0] = start
	last := steps - 1
	for i := 1; i < last; i++ {
		res[i] = FromArray(lerpEnds(s, e, hue, F(i)/F(last)), start.model)
	}
	res[last] = end.Convert(start.model)
	return res
}

// BilinearGradient returns a rows × cols grid of colors interpolated
// between four corners, in the model of topLeft. The left and right
// edges are linear gradients from the top corners to the bottom
// corners, and each row is a linear gradient between its edge colors.
func BilinearGradient[F mathx.Float](topLeft, topRight, bottomLeft, bottomRight Color[F], rows, cols int) [][]Color[F] {
	if rows <= 0 || cols <= 0 {
		return nil
	}
	left := LinearGradient(topLeft, bottomLeft, rows)
	right := LinearGradient(topRight, bottomRight, rows)
	grid := make([][]Color[F], rows)
	for i := range grid {
		grid[i] = LinearGradient(left[i], right[i], cols)
	}
	return grid
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import "cogentcore.org/colorspace/base/mathx"

// hexagon returns the red, green and blue channels for the given hue
// in [0, 1), the minimum channel and the chroma (max - min), walking
// the six sextants of the RGB cube.
func hexagon[F mathx.Float](hue, mn, chroma F) (r, g, b F) {
	h := hue * 6
	mx := mn + chroma
	switch {
	case h < 1:
		return mx, mn + h*chroma, mn
	case h < 2:
		return mn - (h-2)*chroma, mx, mn
	case h < 3:
		return mn, mx, mn + (h-2)*chroma
	case h < 4:
		return mn, mn - (h-4)*chroma, mx
	case h < 5:
		return mn + (h-4)*chroma, mn, mx
	default:
		return mx, mn, mn - (h-6)*chroma
	}
}

// cubeHue returns the hue in [0, 1) of the given channels,
// given their maximum and the nonzero chroma.
func cubeHue[F mathx.Float](r, g, b, mx, chroma F) F {
	var h F
	switch mx {
	case r:
		h = (g - b) / chroma
	case g:
		h = (b-r)/chroma + 2
	default:
		h = (r-g)/chroma + 4
	}
	return mathx.Wrap01(h / 6)
}

func cubicHSVToRGB[F mathx.Float](v [4]F) [4]F {
	chroma := v[2] * v[1]
	r, g, b := hexagon(v[0], v[2]-chroma, chroma)
	return [4]F{r, g, b, v[3]}
}

func rgbToCubicHSV[F mathx.Float](v [4]F) [4]F {
	r, g, b := v[0], v[1], v[2]
	mx := mathx.MaxValue(r, g, b)
	mn := mathx.MinValue(r, g, b)
	if mx == mn {
		return [4]F{0, 0, mx, v[3]}
	}
	chroma := mx - mn
	return [4]F{cubeHue(r, g, b, mx, chroma), chroma / mx, mx, v[3]}
}

func cubicHSLToRGB[F mathx.Float](v [4]F) [4]F {
	light := v[2]
	chroma := (1 - mathx.Abs(2*light-1)) * v[1]
	r, g, b := hexagon(v[0], light-chroma/2, chroma)
	return [4]F{r, g, b, v[3]}
}

func rgbToCubicHSL[F mathx.Float](v [4]F) [4]F {
	r, g, b := v[0], v[1], v[2]
	mx := mathx.MaxValue(r, g, b)
	mn := mathx.MinValue(r, g, b)
	light := (mx + mn) / 2
	if mx == mn {
		return [4]F{0, 0, light, v[3]}
	}
	chroma := mx - mn
	var sat F
	if light < 0.5 {
		sat = chroma / (mx + mn)
	} else {
		sat = chroma / (2 - mx - mn)
	}
	return [4]F{cubeHue(r, g, b, mx, chroma), sat, light, v[3]}
}

// cubicHWBToRGB goes through HSV, where value is 1 - black and
// saturation is 1 - white / value.
func cubicHWBToRGB[F mathx.Float](v [4]F) [4]F {
	val := 1 - v[2]
	var sat F
	if val != 0 {
		sat = 1 - v[1]/val
	}
	return cubicHSVToRGB([4]F{v[0], sat, val, v[3]})
}

func rgbToCubicHWB[F mathx.Float](v [4]F) [4]F {
	hsv := rgbToCubicHSV(v)
	return [4]F{hsv[0], (1 - hsv[1]) * hsv[2], 1 - hsv[2], v[3]}
}

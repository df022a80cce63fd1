// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import "cogentcore.org/colorspace/base/mathx"

// The polar angle of the sphere is fitted to chroma as
// phi = phiOffset - phiScale * sin(phiPhase - phiRate * chroma),
// so that rings of constant chroma land evenly on the boundary
// of the RGB cube.
const (
	phiOffset = 1.95968918625
	phiScale  = 1.1
	phiPhase  = 1.15074
	phiRate   = 0.7893882996
)

// sphericalHCLToRGB maps hue, chroma and luminance onto the RGB cube.
// Hue is split into three arcs of 120°, one per subtractive primary,
// and the arc selects the channel order of the result.
func sphericalHCLToRGB[F mathx.Float](v [4]F) [4]F {
	hue, chroma, lum, alpha := v[0], v[1], v[2], v[3]
	if chroma == 0 {
		g := lum / mathx.Sqrt3[F]()
		return [4]F{g, g, g, alpha}
	}
	pi := mathx.Pi[F]()
	h3 := hue * 3
	angle := (pi/2)*mathx.Mod(h3, 1)*chroma + (pi/4)*(1-chroma)
	phi := phiOffset - phiScale*mathx.Sin(phiPhase-phiRate*chroma)
	sp := mathx.Sin(phi)
	a := lum * mathx.Cos(angle) * sp
	b := lum * mathx.Sin(angle) * sp
	c := lum * mathx.Cos(phi)
	switch arc := mathx.Floor(h3); {
	case arc < 1:
		return [4]F{a, b, c, alpha}
	case arc < 2:
		return [4]F{c, a, b, alpha}
	default:
		return [4]F{b, c, a, alpha}
	}
}

// rgbToSphericalHCL is the approximate inverse of [sphericalHCLToRGB].
// The largest of the yellow, cyan and magenta inks picks the arc.
func rgbToSphericalHCL[F mathx.Float](v [4]F) [4]F {
	r, g, b, alpha := v[0], v[1], v[2], v[3]
	if mathx.MaxValue(r, g, b) == 0 {
		return [4]F{0, 0, 0, alpha}
	}
	arc := mathx.IndexOf([]F{1 - b, 1 - r, 1 - g}, mathx.MaxValue(1-b, 1-r, 1-g))
	var x, y, z F
	switch arc {
	case 0:
		x, y, z = r, g, b
	case 1:
		x, y, z = g, b, r
	default:
		x, y, z = b, r, g
	}
	lum := mathx.Sqrt(x*x + y*y + z*z)
	// rounding can push the cosine just past 1
	phi := mathx.Acos(min(max(z/lum, -1), 1))
	angle := mathx.Atan2(y, x)
	chroma := (mathx.Asin((phi-phiOffset)/-phiScale) - phiPhase) / -phiRate
	if chroma == 0 {
		return [4]F{0, 0, lum, alpha}
	}
	pi := mathx.Pi[F]()
	hue := ((angle-(pi/4)*(1-chroma))/(pi/2)/chroma + F(arc)) / 3
	return [4]F{mathx.Wrap01(hue), chroma, lum, alpha}
}

// hwbToHCL converts between the white, black and the chroma,
// luminance parameterizations of the sphere. It is its own inverse.
func hwbToHCL[F mathx.Float](v [4]F) [4]F {
	return [4]F{v[0], 1 - v[1], 1 - v[2], v[3]}
}

func sphericalHWBToRGB[F mathx.Float](v [4]F) [4]F {
	return sphericalHCLToRGB(hwbToHCL(v))
}

func rgbToSphericalHWB[F mathx.Float](v [4]F) [4]F {
	return hwbToHCL(rgbToSphericalHCL(v))
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import "cogentcore.org/colorspace/base/mathx"

// invert converts between RGBA and CMYA in both directions.
func invert[F mathx.Float](v [4]F) [4]F {
	return [4]F{1 - v[0], 1 - v[1], 1 - v[2], v[3]}
}

func rgbwToRGB[F mathx.Float](v [4]F) [4]F {
	w := v[3]
	return [4]F{v[0] + w, v[1] + w, v[2] + w, 0}
}

func rgbToRGBW[F mathx.Float](v [4]F) [4]F {
	w := mathx.MinValue(v[0], v[1], v[2])
	return [4]F{v[0] - w, v[1] - w, v[2] - w, w}
}

func cmykToRGB[F mathx.Float](v [4]F) [4]F {
	k := 1 - v[3]
	return [4]F{(1 - v[0]) * k, (1 - v[1]) * k, (1 - v[2]) * k, 0}
}

func rgbToCMYK[F mathx.Float](v [4]F) [4]F {
	k := mathx.MinValue(1-v[0], 1-v[1], 1-v[2])
	if k == 1 {
		return [4]F{0, 0, 0, 1}
	}
	d := 1 - k
	return [4]F{(1 - v[0] - k) / d, (1 - v[1] - k) / d, (1 - v[2] - k) / d, k}
}

// Luma weights and chroma scales of the YUV model.
const (
	yuvWr = 0.299
	yuvWg = 0.587
	yuvWb = 0.114
	yuvU  = 0.492
	yuvV  = 0.877
)

func rgbToYUV[F mathx.Float](v [4]F) [4]F {
	y := yuvWr*v[0] + yuvWg*v[1] + yuvWb*v[2]
	return [4]F{y, yuvU * (v[2] - y), yuvV * (v[0] - y), v[3]}
}

// yuvToRGB is the exact inverse of [rgbToYUV].
func yuvToRGB[F mathx.Float](v [4]F) [4]F {
	y := v[0]
	r := y + v[2]/yuvV
	b := y + v[1]/yuvU
	g := (y - yuvWr*r - yuvWb*b) / yuvWg
	return [4]F{r, g, b, v[3]}
}

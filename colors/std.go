// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"

	"cogentcore.org/colorspace/base/mathx"
)

// RGBA implements the [color.Color] interface. It returns the
// alpha premultiplied 16 bit channels of the color converted to RGBA,
// clamped to [0, 1]. The keyed models have no alpha and are opaque.
func (c Color[F]) RGBA() (r, g, b, a uint32) {
	rgb := c.ToRGB().c
	alpha := mathx.Clamp(c.Alpha(), 0, 1)
	ch := func(v F) uint32 {
		return uint32(mathx.ToUnsigned[uint16](mathx.Round(mathx.Clamp(v, 0, 1) * alpha * 0xffff)))
	}
	return ch(rgb[0]), ch(rgb[1]), ch(rgb[2]), uint32(mathx.ToUnsigned[uint16](mathx.Round(alpha * 0xffff)))
}

// FromStd returns the given standard library color as an RGBA color
// with straight (non premultiplied) alpha. A [Color] of the same
// precision is converted directly, keeping the alpha reported by
// [Color.Alpha].
func FromStd[F mathx.Float](c color.Color) Color[F] {
	if cc, ok := c.(Color[F]); ok {
		return cc.ToRGB().WithAlpha(cc.Alpha())
	}
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return RGBA(F(n.R)/0xffff, F(n.G)/0xffff, F(n.B)/0xffff, F(n.A)/0xffff)
}

// StdModel returns a [color.Model] that converts any color into a
// [Color64] in the given model.
func StdModel(model Models) color.Model {
	return color.ModelFunc(func(c color.Color) color.Color {
		return FromStd[float64](c).Convert(model)
	})
}

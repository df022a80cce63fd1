// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"strconv"
	"strings"

	"cogentcore.org/colorspace/base/mathx"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/exp/constraints"
	"golang.org/x/image/colornames"
)

// ToIntegers returns the components of the color, in its own model,
// scaled and rounded to the nearest integer of type T. The scale
// defaults to the maximum value of T. Results saturate at the bounds
// of T, and NaN components become 0.
func ToIntegers[T constraints.Unsigned, F mathx.Float](c Color[F], scale ...F) [4]T {
	sc := F(^T(0))
	if len(scale) > 0 {
		sc = scale[0]
	}
	var res [4]T
	for i, v := range c.c {
		res[i] = mathx.ToUnsigned[T](mathx.Round(v * sc))
	}
	return res
}

// U8Array returns the components of the color as 8 bit integers.
func (c Color[F]) U8Array() [4]uint8 {
	return ToIntegers[uint8](c)
}

// U16Array returns the components of the color as 16 bit integers.
func (c Color[F]) U16Array() [4]uint16 {
	return ToIntegers[uint16](c)
}

// Alpha8888 packs the components of the color, in its own model, into
// a 32 bit word with the fourth component in the top byte:
// c3<<24 | c0<<16 | c1<<8 | c2.
func (c Color[F]) Alpha8888() uint32 {
	u := c.U8Array()
	return uint32(u[3])<<24 | uint32(u[0])<<16 | uint32(u[1])<<8 | uint32(u[2])
}

// ARGB returns the color converted to RGBA and packed as
// alpha<<24 | red<<16 | green<<8 | blue.
func (c Color[F]) ARGB() uint32 {
	return c.ToRGB().Alpha8888()
}

// Hex returns the red, green and blue of the color as six
// uppercase hex digits, for example "FF0000".
func (c Color[F]) Hex() string {
	return fmt.Sprintf("%06X", c.ARGB()&0xFFFFFF)
}

// AlphaHex returns the alpha, red, green and blue of the color as
// eight uppercase hex digits, for example "FFFF0000".
func (c Color[F]) AlphaHex() string {
	return fmt.Sprintf("%08X", c.ARGB())
}

// ParseHex parses a hex color of the form "#rgb", "#rrggbb" or
// "#aarrggbb" into an RGBA color. The leading # is optional.
func ParseHex[F mathx.Float](s string) (Color[F], error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	alpha := F(1)
	if len(hex) == 8 {
		a, err := strconv.ParseUint(hex[:2], 16, 8)
		if err != nil {
			return Color[F]{}, fmt.Errorf("colors.ParseHex: invalid alpha in %q: %w", s, err)
		}
		alpha = F(a) / 255
		hex = hex[2:]
	}
	cf, err := colorful.Hex("#" + hex)
	if err != nil {
		return Color[F]{}, fmt.Errorf("colors.ParseHex: invalid hex color %q: %w", s, err)
	}
	return RGBA(F(cf.R), F(cf.G), F(cf.B), alpha), nil
}

// FromName returns the opaque RGBA color with the given CSS color
// name, for example "rebeccapurple". Names are not case sensitive.
func FromName[F mathx.Float](name string) (Color[F], error) {
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Color[F]{}, fmt.Errorf("colors.FromName: unknown color name %q", name)
	}
	return FromStd[F](c), nil
}

// ParseColor parses a color in the form written by [Color.String],
// "Model(c0, c1, c2, c3)". The model name is read with [ParseModel], and
// the fourth component defaults to 1 when only three are given.
// Any other string is parsed as a hex color or a CSS color name.
func ParseColor[F mathx.Float](s string) (Color[F], error) {
	s = strings.TrimSpace(s)
	open := strings.IndexByte(s, '(')
	if open < 0 {
		if strings.HasPrefix(s, "#") {
			return ParseHex[F](s)
		}
		if c, err := FromName[F](s); err == nil {
			return c, nil
		}
		return ParseHex[F](s)
	}
	if !strings.HasSuffix(s, ")") {
		return Color[F]{}, fmt.Errorf("colors.ParseColor: missing closing parenthesis in %q", s)
	}
	model, err := ParseModel(strings.TrimSpace(s[:open]))
	if err != nil {
		return Color[F]{}, fmt.Errorf("colors.ParseColor: %w", err)
	}
	fields := strings.Split(s[open+1:len(s)-1], ",")
	if len(fields) != 3 && len(fields) != 4 {
		return Color[F]{}, fmt.Errorf("colors.ParseColor: expected 3 or 4 components in %q, got %d", s, len(fields))
	}
	c := [4]F{3: 1}
	bits := 64
	if _, ok := any(c[0]).(float32); ok {
		bits = 32
	}
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), bits)
		if err != nil {
			return Color[F]{}, fmt.Errorf("colors.ParseColor: component %d of %q: %w", i, s, err)
		}
		c[i] = F(v)
	}
	return FromArray(c, model), nil
}

// MarshalText implements [encoding.TextMarshaler] using [Color.String].
func (c Color[F]) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] using [ParseColor].
func (c *Color[F]) UnmarshalText(text []byte) error {
	nc, err := ParseColor[F](string(text))
	if err != nil {
		return err
	}
	*c = nc
	return nil
}

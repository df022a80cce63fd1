// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mathx provides math functions that are generic over
// the floating point precision. Single precision values are
// computed with [math32] and double precision values with [math],
// so float32 callers never round trip through float64 trig.
package mathx

import (
	"math"
	"strconv"

	"cogentcore.org/colorspace/math32"
	"golang.org/x/exp/constraints"
)

// Float is the set of floating point types that colors can be held in.
type Float interface {
	constraints.Float
}

// Pi returns π in the given precision.
func Pi[F Float]() F { return F(math.Pi) }

// Sqrt3 returns √3 in the given precision.
func Sqrt3[F Float]() F { return F(math32.Sqrt3) }

// Abs returns the absolute value of x.
func Abs[F Float](x F) F {
	if v, ok := any(x).(float32); ok {
		return F(math32.Abs(v))
	}
	return F(math.Abs(float64(x)))
}

// Acos returns the arccosine, in radians, of x.
func Acos[F Float](x F) F {
	if v, ok := any(x).(float32); ok {
		return F(math32.Acos(v))
	}
	return F(math.Acos(float64(x)))
}

// Asin returns the arcsine, in radians, of x.
func Asin[F Float](x F) F {
	if v, ok := any(x).(float32); ok {
		return F(math32.Asin(v))
	}
	return F(math.Asin(float64(x)))
}

// Atan2 returns the arc tangent of y/x.
func Atan2[F Float](y, x F) F {
	if v, ok := any(y).(float32); ok {
		return F(math32.Atan2(v, float32(x)))
	}
	return F(math.Atan2(float64(y), float64(x)))
}

// Cos returns the cosine of the radian argument x.
func Cos[F Float](x F) F {
	if v, ok := any(x).(float32); ok {
		return F(math32.Cos(v))
	}
	return F(math.Cos(float64(x)))
}

// Sin returns the sine of the radian argument x.
func Sin[F Float](x F) F {
	if v, ok := any(x).(float32); ok {
		return F(math32.Sin(v))
	}
	return F(math.Sin(float64(x)))
}

// Sqrt returns the square root of x.
func Sqrt[F Float](x F) F {
	if v, ok := any(x).(float32); ok {
		return F(math32.Sqrt(v))
	}
	return F(math.Sqrt(float64(x)))
}

// Floor returns the greatest integer value less than or equal to x.
func Floor[F Float](x F) F {
	if v, ok := any(x).(float32); ok {
		return F(math32.Floor(v))
	}
	return F(math.Floor(float64(x)))
}

// Mod returns the floating-point remainder of x/y, with the sign of x.
func Mod[F Float](x, y F) F {
	if v, ok := any(x).(float32); ok {
		return F(math32.Mod(v, float32(y)))
	}
	return F(math.Mod(float64(x), float64(y)))
}

// Pow returns x**y.
func Pow[F Float](x, y F) F {
	if v, ok := any(x).(float32); ok {
		return F(math32.Pow(v, float32(y)))
	}
	return F(math.Pow(float64(x), float64(y)))
}

// Round returns the nearest integer, rounding half away from zero.
func Round[F Float](x F) F {
	if v, ok := any(x).(float32); ok {
		return F(math32.Round(v))
	}
	return F(math.Round(float64(x)))
}

// IsNaN reports whether x is a “not-a-number” value.
func IsNaN[F Float](x F) bool {
	return x != x
}

// Wrap01 wraps x into the half open interval [0, 1).
// NaN and infinite values are returned unchanged.
func Wrap01[F Float](x F) F {
	if x >= 0 && x < 1 {
		return x
	}
	if IsNaN(x) || math.IsInf(float64(x), 0) {
		return x
	}
	w := x - Floor(x)
	if w >= 1 {
		return 0
	}
	return w
}

// Clamp returns x limited to the closed interval [lo, hi].
// NaN is returned unchanged.
func Clamp[F Float](x, lo, hi F) F {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// ToUnsigned converts x to the unsigned integer type T, truncating
// toward zero and saturating at the bounds of T. NaN converts to 0.
func ToUnsigned[T constraints.Unsigned, F Float](x F) T {
	mx := ^T(0)
	switch {
	case IsNaN(x), x <= 0:
		return 0
	case float64(x) >= float64(mx):
		return mx
	}
	return T(x)
}

// FormatFloat formats x with the fewest digits that parse back to the
// same value at the precision of F.
func FormatFloat[F Float](x F) string {
	if _, ok := any(x).(float32); ok {
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	}
	return strconv.FormatFloat(float64(x), 'g', -1, 64)
}

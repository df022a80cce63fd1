// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tone provides tone curves, which reshape a single color
// channel in [0, 1], such as gamma.
package tone

import "cogentcore.org/colorspace/base/mathx"

// Curve is a tone curve mapping a channel value to a new value.
// The curves in this package are [Linear], [Power], [Quadratic],
// [Cubic] and [Composed].
type Curve[F mathx.Float] interface {
	// Map returns the value of the curve at x.
	Map(x F) F
}

// Map returns the value of the curve at x. A nil curve is linear.
func Map[F mathx.Float](c Curve[F], x F) F {
	if c == nil {
		return x
	}
	return c.Map(x)
}

// Linear is the identity curve.
type Linear[F mathx.Float] struct{}

func (Linear[F]) Map(x F) F { return x }

// Power raises the value to Exp. A gamma of g is Power{1 / g}.
type Power[F mathx.Float] struct {
	Exp F
}

func (p Power[F]) Map(x F) F { return mathx.Pow(x, p.Exp) }

// Quadratic is a quadratic Bezier ease from (0, 0) to (1, 1) with
// the control point (X, Y).
type Quadratic[F mathx.Float] struct {
	X, Y F
}

func (q Quadratic[F]) Map(x F) F {
	if q.X == 0.5 {
		return x * (x - 2*q.Y*(x-1))
	}
	m := (q.X - mathx.Sqrt(q.X*q.X-2*q.X*x+x)) / (2*q.X - 1)
	return 2*(1-m)*m*q.Y + m*m
}

// Cubic is a cubic Bezier ease with the control points (X1, Y1) and
// (X2, Y2). It is reserved and currently maps as the identity.
type Cubic[F mathx.Float] struct {
	X1, Y1, X2, Y2 F
}

func (Cubic[F]) Map(x F) F { return x }

// Segment is one sub curve of a [Composed] curve.
type Segment[F mathx.Float] struct {
	// Curve maps the segment, in its own [0, 1] domain and range.
	Curve Curve[F]

	// Domain is the weight of the segment in the input domain.
	// Segments with a weight <= 0 are skipped.
	Domain F

	// Range is the weight of the segment in the output range.
	Range F
}

// Composed joins sub curves end to end. The input domain [0, 1] is
// split between the segments in proportion to their Domain weights,
// and the output range in proportion to their Range weights; each
// segment maps its part of the domain onto its part of the range.
// With no segments it is the identity.
type Composed[F mathx.Float] struct {
	Segments []Segment[F]
}

func (c Composed[F]) Map(x F) F {
	var dsum, rsum F
	last := -1
	for i, s := range c.Segments {
		if s.Domain <= 0 {
			continue
		}
		dsum += s.Domain
		rsum += s.Range
		last = i
	}
	if last < 0 {
		return x
	}
	var d0, r0 F
	for i, s := range c.Segments {
		if s.Domain <= 0 {
			continue
		}
		d1 := d0 + s.Domain/dsum
		r1 := r0
		if rsum != 0 {
			r1 += s.Range / rsum
		}
		if x < d1 || i == last {
			t := (x - d0) / (d1 - d0)
			return r0 + Map(s.Curve, t)*(r1-r0)
		}
		d0, r0 = d1, r1
	}
	return x
}

// Gamma returns the curve that applies the given gamma, Power{1 / gamma}.
func Gamma[F mathx.Float](gamma F) Power[F] {
	return Power[F]{Exp: 1 / gamma}
}

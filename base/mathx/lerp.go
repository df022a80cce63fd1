// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

var inf = math.Inf(1)

// Lerp returns the linear interpolation between a and b
// in proportion to t.
func Lerp[F Float](a, b, t F) F {
	return a + (b-a)*t
}

// ArrayLerp returns the component-wise [Lerp] of a and b.
func ArrayLerp[F Float](a, b [4]F, t F) [4]F {
	var r [4]F
	for i := range a {
		r[i] = Lerp(a[i], b[i], t)
	}
	return r
}

// MinValue returns the smallest of the given values,
// or +Inf if there are none. NaN values are skipped.
func MinValue[F Float](vs ...F) F {
	m := F(inf)
	for _, v := range vs {
		if v < m {
			m = v
		}
	}
	return m
}

// MaxValue returns the largest of the given values,
// or -Inf if there are none. NaN values are skipped.
func MaxValue[F Float](vs ...F) F {
	m := F(-inf)
	for _, v := range vs {
		if v > m {
			m = v
		}
	}
	return m
}

// IndexOf returns the index of the first element of vs equal to v,
// or -1 if there is none.
func IndexOf[F Float](vs []F, v F) int {
	for i, x := range vs {
		if x == v {
			return i
		}
	}
	return -1
}

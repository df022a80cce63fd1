// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"log/slog"

	"cogentcore.org/colorspace/base/lru"
	"cogentcore.org/colorspace/base/mathx"
)

// DefaultCacheResolution is the default number of quantization steps
// per unit of hue, chroma and luminance used by [SphericalCache].
const DefaultCacheResolution = 4096

// sphericalKey is a quantized hue, chroma and luminance.
type sphericalKey struct {
	hue, chroma, luminance int64
}

// SphericalCache memoizes the forward spherical transform
// (HCL and HWB to RGB), which is dominated by trigonometry.
// Inputs are quantized, and cached values are computed from the
// quantized inputs so that a result never depends on which nearby
// input was seen first.
//
// A SphericalCache is created and owned by the caller and passed to
// [Color.ToRGBCached]. It is bounded by its capacity, evicting the
// least recently used entries, and safe for concurrent use.
type SphericalCache[F mathx.Float] struct {
	cache      *lru.Cache[sphericalKey, [3]F]
	resolution F
}

// NewSphericalCache returns a new cache holding at most capacity
// entries, quantizing inputs to 1/resolution. A resolution <= 0
// uses [DefaultCacheResolution].
func NewSphericalCache[F mathx.Float](capacity, resolution int) *SphericalCache[F] {
	if resolution <= 0 {
		resolution = DefaultCacheResolution
	}
	return &SphericalCache[F]{
		cache:      lru.New[sphericalKey, [3]F](capacity),
		resolution: F(resolution),
	}
}

// quantize returns the key step for v, and false if v cannot be
// represented as a key.
func (sc *SphericalCache[F]) quantize(v F) (int64, bool) {
	q := mathx.Round(v * sc.resolution)
	if mathx.IsNaN(q) || q > 1<<53 || q < -(1<<53) {
		return 0, false
	}
	return int64(q), true
}

// HCLToRGB returns the RGBA components of the given spherical hue,
// chroma and luminance, using the cache. A nil cache computes
// the result directly.
func (sc *SphericalCache[F]) HCLToRGB(hue, chroma, luminance, alpha F) [4]F {
	if sc == nil {
		return sphericalHCLToRGB([4]F{hue, chroma, luminance, alpha})
	}
	h, okh := sc.quantize(hue)
	c, okc := sc.quantize(chroma)
	l, okl := sc.quantize(luminance)
	if !okh || !okc || !okl {
		return sphericalHCLToRGB([4]F{hue, chroma, luminance, alpha})
	}
	key := sphericalKey{h, c, l}
	rgb := sc.cache.GetOrCreate(key, func() [3]F {
		v := sphericalHCLToRGB([4]F{F(h) / sc.resolution, F(c) / sc.resolution, F(l) / sc.resolution, 1})
		return [3]F{v[0], v[1], v[2]}
	})
	return [4]F{rgb[0], rgb[1], rgb[2], alpha}
}

// Len returns the number of cached entries.
func (sc *SphericalCache[F]) Len() int {
	return sc.cache.Len()
}

// Stats returns the statistics of the underlying cache.
func (sc *SphericalCache[F]) Stats() lru.Stats {
	return sc.cache.Stats()
}

// Clear removes all cached entries.
func (sc *SphericalCache[F]) Clear() {
	sc.cache.Clear()
}

// LogStats logs the cache statistics at debug level.
func (sc *SphericalCache[F]) LogStats() {
	st := sc.Stats()
	slog.Debug("spherical cache", "len", st.Len, "capacity", st.Capacity, "hits", st.Hits, "misses", st.Misses, "evictions", st.Evictions, "hitRate", st.HitRate)
}

// SphericalHCLToRGBCached returns the spherical HCL color c converted
// to RGBA through the given cache.
func SphericalHCLToRGBCached[F mathx.Float](sc *SphericalCache[F], c Color[F]) Color[F] {
	return c.ToRGBCached(sc)
}

// ToRGBCached is like [Color.ToRGB], but converts the spherical models
// through the given cache. Other models and a nil cache convert
// without caching.
func (c Color[F]) ToRGBCached(sc *SphericalCache[F]) Color[F] {
	if sc == nil {
		return c.ToRGB()
	}
	switch c.model {
	case ModelSphericalHCLA:
		return FromArray(sc.HCLToRGB(c.c[0], c.c[1], c.c[2], c.c[3]), ModelRGBA)
	case ModelSphericalHWBA:
		return FromArray(sc.HCLToRGB(c.c[0], 1-c.c[1], 1-c.c[2], c.c[3]), ModelRGBA)
	}
	return c.ToRGB()
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import "strings"

// Models are the color models that a [Color] can be held in.
type Models int32 //enums:enum -trim-prefix Model

const (
	// ModelRGBA is red, green, blue and alpha. It is the pivot
	// that every conversion passes through.
	ModelRGBA Models = iota

	// ModelCMYA is cyan, magenta, yellow and alpha.
	ModelCMYA

	// ModelRGBW is red, green, blue and a white key.
	// It has no alpha channel.
	ModelRGBW

	// ModelCMYK is cyan, magenta, yellow and a black key.
	// It has no alpha channel.
	ModelCMYK

	// ModelSphericalHCLA is hue, chroma, luminance and alpha
	// on the spherical gamut model.
	ModelSphericalHCLA

	// ModelSphericalHWBA is hue, white, black and alpha
	// on the spherical gamut model.
	ModelSphericalHWBA

	// ModelCubicHSLA is hue, saturation, lightness and alpha
	// on the RGB cube.
	ModelCubicHSLA

	// ModelCubicHSVA is hue, saturation, value and alpha
	// on the RGB cube.
	ModelCubicHSVA

	// ModelCubicHWBA is hue, white, black and alpha
	// on the RGB cube.
	ModelCubicHWBA

	// ModelYUVA is luma, two chroma differences and alpha.
	ModelYUVA
)

// IsKeyed returns whether the fourth component of the model is
// an ink key instead of alpha.
func (m Models) IsKeyed() bool {
	return m == ModelRGBW || m == ModelCMYK
}

// IsHue returns whether the first component of the model is a
// cyclic hue in [0, 1).
func (m Models) IsHue() bool {
	switch m {
	case ModelSphericalHCLA, ModelSphericalHWBA, ModelCubicHSLA, ModelCubicHSVA, ModelCubicHWBA:
		return true
	}
	return false
}

// IsWhiteBlack returns whether the model is one of the hue, white,
// black models.
func (m Models) IsWhiteBlack() bool {
	return m == ModelSphericalHWBA || m == ModelCubicHWBA
}

// ParseModel returns the model with the given name, which is not case
// sensitive. The names of the factories without the trailing A, such
// as "CubicHSV" or "CMY", are accepted for the alpha models.
func ParseModel(s string) (Models, error) {
	var m Models
	err := m.SetString(s)
	if err == nil {
		return m, nil
	}
	if !strings.HasSuffix(strings.ToLower(s), "a") && m.SetString(s+"A") == nil {
		return m, nil
	}
	return m, err
}

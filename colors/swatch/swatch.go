// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package swatch provides a table of named colors on the spherical
// hue, white, black model: 24 hues spaced 15° apart, each with a full,
// tint, tone and shade variant, plus a row of achromatic colors.
package swatch

//go:generate core generate

import (
	"strings"

	"cogentcore.org/colorspace/base/mathx"
	"cogentcore.org/colorspace/colors"
)

// Variants are the four variants of each hue in the [Table].
type Variants int32 //enums:enum

const (
	// Full is the hue with no white or black.
	Full Variants = iota

	// Tint is the hue mixed with half white.
	Tint

	// Tone is the hue mixed with a quarter each of white and black.
	Tone

	// Shade is the hue mixed with half black.
	Shade
)

// Hues is the number of hues in the [Table].
const Hues = 24

// Rows is the number of rows in the [Table]: the achromatic row
// followed by one row per hue.
const Rows = Hues + 1

// HueStep is the hue distance between rows of the [Table], 15°.
const HueStep = 1.0 / Hues

// Names are the names of the colors in the [Table], with the same
// layout. Row 0 is achromatic: transparent, white, grey and black.
var Names = [Rows][4]string{
	{"transparent", "white", "grey", "black"},
	{"red", "salmon", "burgundy", "maroon"},
	{"vermillion", "peach", "umber", "auburn"},
	{"orange", "tan", "beige", "brown"},
	{"amber", "straw", "saffron", "caramel"},
	{"yellow", "lemon", "mustard", "drab"},
	{"becquerel", "virell", "pickle", "olive"},
	{"chartreuse", "viridine", "peridot", "fern"},
	{"lime", "palmetto", "petrichor", "moss"},
	{"green", "willow", "clover", "forest"},
	{"emerald", "honeydew", "sage", "erin"},
	{"mint", "celadon", "jade", "conifer"},
	{"turquoise", "seafoam", "verdigris", "teal"},
	{"cyan", "aqua", "agave", "deluge"},
	{"capri", "celeste", "aegean", "marine"},
	{"azure", "cornflower", "slate", "midnight"},
	{"cerulean", "bonnet", "hadal", "sapphire"},
	{"blue", "periwinkle", "dusk", "navy"},
	{"indigo", "hyacinth", "concord", "sodalite"},
	{"violet", "lavender", "veronica", "prune"},
	{"purple", "lilac", "ube", "amethyst"},
	{"magenta", "phlox", "mauve", "aubergine"},
	{"fuschia", "bubblegum", "thistle", "plum"},
	{"rose", "pink", "raspberry", "amaranth"},
	{"ruby", "strawberry", "cerise", "crimson"},
}

// index maps a name to its row and column in the [Table].
var index = func() map[string][2]int {
	m := make(map[string][2]int, Rows*4)
	for r, row := range Names {
		for c, name := range row {
			m[name] = [2]int{r, c}
		}
	}
	return m
}()

// Quaternary returns the four variants of the given hue, in the
// order of [Variants]: full (h, 0, 0), tint (h, 0.5, 0),
// tone (h, 0.25, 0.25) and shade (h, 0, 0.5), as spherical HWB colors.
func Quaternary[F mathx.Float](hue F) [4]colors.Color[F] {
	return [4]colors.Color[F]{
		colors.SphericalHWB(hue, 0, 0),
		colors.SphericalHWB(hue, 0.5, 0),
		colors.SphericalHWB(hue, 0.25, 0.25),
		colors.SphericalHWB(hue, 0, 0.5),
	}
}

// Achromatic returns the achromatic row of the [Table]: transparent,
// white, grey and black. Transparent is white with an alpha of 0.
func Achromatic[F mathx.Float]() [4]colors.Color[F] {
	white := colors.SphericalHWB[F](0, 1, 0)
	return [4]colors.Color[F]{
		white.WithAlpha(0),
		white,
		colors.SphericalHWB[F](0, 0.5, 0.5),
		colors.SphericalHWB[F](0, 0, 1),
	}
}

// RowHue returns the hue of the given row of the [Table], for rows 1
// through [Hues]. Each row is [HueStep] after the previous one,
// starting from red in row 1.
func RowHue[F mathx.Float](row int) F {
	return F(row-1) * 15 / 360
}

// Table returns the table of named colors. Row 0 is [Achromatic] and
// rows 1 through [Hues] are the [Quaternary] variants of each hue.
func Table[F mathx.Float]() [Rows][4]colors.Color[F] {
	var t [Rows][4]colors.Color[F]
	t[0] = Achromatic[F]()
	for r := 1; r < Rows; r++ {
		t[r] = Quaternary(RowHue[F](r))
	}
	return t
}

// At returns the color at the given row and variant of the [Table],
// and false if the row is not in [0, Rows) or v is not a valid [Variants].
func At[F mathx.Float](row int, v Variants) (colors.Color[F], bool) {
	if row < 0 || row >= Rows || v < 0 || v >= VariantsN {
		return colors.Color[F]{}, false
	}
	if row == 0 {
		return Achromatic[F]()[v], true
	}
	return Quaternary(RowHue[F](row))[v], true
}

// ByName returns the color with the given name in the [Table].
// Names are not case sensitive.
func ByName[F mathx.Float](name string) (colors.Color[F], bool) {
	rc, ok := index[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return colors.Color[F]{}, false
	}
	return At[F](rc[0], Variants(rc[1]))
}

// Swatch is a named color.
type Swatch[F mathx.Float] struct {
	Name  string
	Color colors.Color[F]
}

// All returns every color of the [Table] with its name, row by row.
func All[F mathx.Float]() []Swatch[F] {
	t := Table[F]()
	res := make([]Swatch[F], 0, Rows*4)
	for r, row := range t {
		for c, clr := range row {
			res = append(res, Swatch[F]{Name: Names[r][c], Color: clr})
		}
	}
	return res
}

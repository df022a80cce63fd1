// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swatch

import (
	"image"
	"image/draw"

	"cogentcore.org/colorspace/base/mathx"
	"cogentcore.org/colorspace/colors"
)

// GridImage returns an image with each color of the grid drawn as a
// square of cell × cell pixels. Short rows leave the rest of their
// line transparent.
func GridImage[F mathx.Float](grid [][]colors.Color[F], cell int) *image.RGBA {
	cols := 0
	for _, row := range grid {
		cols = max(cols, len(row))
	}
	im := image.NewRGBA(image.Rect(0, 0, cols*cell, len(grid)*cell))
	for y, row := range grid {
		for x, c := range row {
			r := image.Rect(x*cell, y*cell, (x+1)*cell, (y+1)*cell)
			draw.Draw(im, r, image.NewUniform(c), image.Point{}, draw.Src)
		}
	}
	return im
}

// TableImage returns an image of the [Table], one row per table row.
func TableImage(cell int) *image.RGBA {
	t := Table[float64]()
	grid := make([][]colors.Color64, len(t))
	for i := range t {
		grid[i] = t[i][:]
	}
	return GridImage(grid, cell)
}

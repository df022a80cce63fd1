// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"cogentcore.org/colorspace/colors"
	"cogentcore.org/colorspace/colors/swatch"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

func newSwatchesCmd() *cobra.Command {
	var linear bool
	var imageFile string
	var cell int

	cmd := &cobra.Command{
		Use:   "swatches [name...]",
		Short: "Print the table of named colors",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := termenv.NewOutput(cmd.OutOrStdout())
			if len(args) > 0 {
				for _, name := range args {
					c, ok := swatch.ByName[float64](name)
					if !ok {
						return fmt.Errorf("unknown swatch %q", name)
					}
					if linear {
						c = c.ToLinearRGB()
					}
					fmt.Fprintf(out, "%s %s %s\n", block(out, c), name, c)
				}
				return nil
			}
			t := swatch.Table[float64]()
			grid := make([][]colors.Color64, len(t))
			for r, row := range t {
				for v, c := range row {
					if linear {
						c = c.ToLinearRGB()
					}
					grid[r] = append(grid[r], c)
					if v > 0 {
						fmt.Fprint(out, " ")
					}
					fmt.Fprintf(out, "%s %-10s", block(out, c), swatch.Names[r][v])
				}
				fmt.Fprintln(out)
			}
			return saveImage(imageFile, grid, cell)
		},
	}

	cmd.Flags().BoolVar(&linear, "linear", false, "show the colors with the standard 2.2 gamma applied")
	cmd.Flags().StringVar(&imageFile, "image", "", "also save the table as an image file (.png, .jpg, .gif, .tif, .bmp)")
	cmd.Flags().IntVar(&cell, "cell", 32, "size in pixels of each color in the image")

	return cmd
}

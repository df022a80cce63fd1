// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"

	"cogentcore.org/colorspace/base/iox/imagex"
	"cogentcore.org/colorspace/colors"
	"cogentcore.org/colorspace/colors/swatch"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

type gradientOptions struct {
	Steps int
	Model string
	Rows  int
	Image string
	Cell  int
}

func newGradientCmd() *cobra.Command {
	opts := gradientOptions{}

	cmd := &cobra.Command{
		Use:   "gradient start end [bottom-start bottom-end]",
		Short: "Print a gradient between colors",
		Long: `Gradient interpolates between start and end in the model of start.
With four colors and --rows, it prints a bilinear gradient whose top row
runs from start to end and whose bottom row runs between the last two.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 && len(args) != 4 {
				return fmt.Errorf("gradient needs 2 or 4 colors, got %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGradient(cmd, opts, args)
		},
	}

	cmd.Flags().IntVarP(&opts.Steps, "steps", "n", 10, "number of colors in each row")
	cmd.Flags().StringVarP(&opts.Model, "model", "m", "", "model to interpolate in, instead of the model of start")
	cmd.Flags().IntVar(&opts.Rows, "rows", 5, "number of rows of a bilinear gradient")
	cmd.Flags().StringVar(&opts.Image, "image", "", "also save the gradient as an image file (.png, .jpg, .gif, .tif, .bmp)")
	cmd.Flags().IntVar(&opts.Cell, "cell", 32, "size in pixels of each color in the image")

	return cmd
}

func runGradient(cmd *cobra.Command, opts gradientOptions, args []string) error {
	cs, err := parseColors(args)
	if err != nil {
		return err
	}
	if opts.Model != "" {
		model, err := parseModel(opts.Model)
		if err != nil {
			return err
		}
		cs = colors.ConvertColors(cs, model)
	}
	out := termenv.NewOutput(cmd.OutOrStdout())
	if len(cs) == 2 {
		g := colors.LinearGradient(cs[0], cs[1], opts.Steps)
		for _, c := range g {
			fmt.Fprintf(out, "%s %s\n", block(out, c), c)
		}
		return saveImage(opts.Image, [][]colors.Color64{g}, opts.Cell)
	}
	grid := colors.BilinearGradient(cs[0], cs[1], cs[2], cs[3], opts.Rows, opts.Steps)
	for _, row := range grid {
		for i, c := range row {
			if i > 0 {
				fmt.Fprint(out, " ")
			}
			fmt.Fprint(out, block(out, c))
		}
		fmt.Fprintln(out)
	}
	return saveImage(opts.Image, grid, opts.Cell)
}

// saveImage saves the grid of colors to the given image file,
// if filename is not empty.
func saveImage(filename string, grid [][]colors.Color64, cell int) error {
	if filename == "" {
		return nil
	}
	if cell <= 0 {
		return fmt.Errorf("invalid --cell %d", cell)
	}
	if err := imagex.Save(swatch.GridImage(grid, cell), filename); err != nil {
		return err
	}
	slog.Info("saved image", "file", filename)
	return nil
}

// block returns the hex code of c with its background set to c,
// when the output supports color.
func block(out *termenv.Output, c colors.Color64) string {
	hex := "#" + c.Hex()
	return out.String(hex).Background(out.Color(hex)).String()
}

// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"

	"cogentcore.org/colorspace/base/lru"
	"cogentcore.org/colorspace/colors"
	"github.com/spf13/cobra"
)

type convertOptions struct {
	Model  string
	Hex    bool
	Linear bool
	Gamma  float64
	Cached bool
}

func newConvertCmd() *cobra.Command {
	opts := convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert color...",
		Short: "Convert colors to another model",
		Long: `Convert parses each color as Model(c0, c1, c2[, c3]), a hex color
or a CSS color name, and prints it in the model given by --model.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.Model, "model", "m", "RGBA", "model to convert to")
	cmd.Flags().BoolVar(&opts.Hex, "hex", false, "also print the RGB hex code")
	cmd.Flags().BoolVar(&opts.Linear, "linear", false, "apply the standard 2.2 gamma to all channels before converting")
	cmd.Flags().Float64Var(&opts.Gamma, "gamma", 0, "apply this gamma to the RGB channels before converting")
	cmd.Flags().BoolVar(&opts.Cached, "cached", false, "use a spherical color cache for conversion to RGB")

	return cmd
}

func runConvert(cmd *cobra.Command, opts convertOptions, args []string) error {
	model, err := parseModel(opts.Model)
	if err != nil {
		return err
	}
	cs, err := parseColors(args)
	if err != nil {
		return err
	}
	var sc *colors.SphericalCache[float64]
	if opts.Cached {
		sc = colors.NewSphericalCache[float64](lru.DefaultCapacity, colors.DefaultCacheResolution)
		defer sc.LogStats()
	}
	out := cmd.OutOrStdout()
	for _, c := range cs {
		slog.Debug("converting color", "color", c, "model", model)
		if opts.Cached {
			c = c.ToRGBCached(sc)
		}
		switch {
		case opts.Linear:
			c = c.ToLinearRGB()
		case opts.Gamma > 0:
			c = colors.GammaTransform(c, opts.Gamma)
		}
		res := c.Convert(model)
		if opts.Hex {
			fmt.Fprintf(out, "%s #%s\n", res, res.Hex())
		} else {
			fmt.Fprintln(out, res)
		}
	}
	return nil
}

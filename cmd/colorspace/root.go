// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"

	"cogentcore.org/colorspace/base/logx"
	"cogentcore.org/colorspace/colors"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	veryVerbose bool
	verbose     bool
	quiet       bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "colorspace",
		Short:         "Convert colors between color models",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.UserLevel = logx.LevelFromFlags(flags.veryVerbose, flags.verbose, flags.quiet)
			slog.SetDefault(slog.New(logx.NewHandler(cmd.ErrOrStderr(), logx.UserLevel)))
		},
	}

	cmd.PersistentFlags().BoolVar(&flags.veryVerbose, "vv", false, "show debug messages")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "show info messages")
	cmd.PersistentFlags().BoolVarP(&flags.quiet, "quiet", "q", false, "only show errors")

	cmd.AddCommand(newConvertCmd())
	cmd.AddCommand(newGradientCmd())
	cmd.AddCommand(newSwatchesCmd())
	cmd.AddCommand(newPaletteCmd())

	return cmd
}

// parseModel parses a model flag value; the empty string is RGBA.
func parseModel(s string) (colors.Models, error) {
	if s == "" {
		return colors.ModelRGBA, nil
	}
	m, err := colors.ParseModel(s)
	if err != nil {
		return m, fmt.Errorf("invalid --model: %w", err)
	}
	return m, nil
}

// parseColors parses each argument with [colors.ParseColor].
func parseColors(args []string) ([]colors.Color64, error) {
	res := make([]colors.Color64, len(args))
	for i, a := range args {
		c, err := colors.ParseColor[float64](a)
		if err != nil {
			return nil, err
		}
		res[i] = c
	}
	return res, nil
}

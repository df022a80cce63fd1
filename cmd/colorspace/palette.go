// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"

	"cogentcore.org/colorspace/colors/swatch"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

func newPaletteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Read and write palette files",
		Long:  "Palette files are TOML (.toml) or YAML (.yaml, .yml) lists of named colors.",
	}
	cmd.AddCommand(newPaletteSaveCmd())
	cmd.AddCommand(newPaletteShowCmd())
	return cmd
}

func newPaletteSaveCmd() *cobra.Command {
	var model string

	cmd := &cobra.Command{
		Use:   "save file",
		Short: "Save the named color table as a palette file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := swatch.Default()
			if model != "" {
				m, err := parseModel(model)
				if err != nil {
					return err
				}
				p = p.Convert(m)
			}
			if err := p.Save(args[0]); err != nil {
				return err
			}
			slog.Info("saved palette", "file", args[0], "colors", len(p.Colors))
			return nil
		},
	}

	cmd.Flags().StringVarP(&model, "model", "m", "", "model to write the colors in")

	return cmd
}

func newPaletteShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show file",
		Short: "Print the colors of a palette file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := swatch.Open(args[0])
			if err != nil {
				return err
			}
			out := termenv.NewOutput(cmd.OutOrStdout())
			if p.Name != "" {
				fmt.Fprintln(out, p.Name)
			}
			for _, e := range p.Colors {
				fmt.Fprintf(out, "%s %s %s\n", block(out, e.Color), e.Name, e.Color)
			}
			return nil
		},
	}
}

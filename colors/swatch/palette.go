// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swatch

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"cogentcore.org/colorspace/base/iox/tomlx"
	"cogentcore.org/colorspace/base/iox/yamlx"
	"cogentcore.org/colorspace/colors"
)

// Entry is a named color in a [Palette]. Colors are written in the
// text form of [colors.Color.String], for example
// "SphericalHWBA(0, 0.5, 0, 1)", and can also be read as hex colors
// or CSS color names.
type Entry struct {
	Name  string         `toml:"name" yaml:"name"`
	Color colors.Color64 `toml:"color" yaml:"color"`
}

// Palette is a named, ordered list of colors that can be saved to
// and opened from TOML and YAML files.
type Palette struct {
	Name   string  `toml:"name" yaml:"name"`
	Colors []Entry `toml:"colors" yaml:"colors"`
}

// Formats are the file formats a [Palette] can be saved in.
type Formats int32 //enums:enum

const (
	// TOML is the TOML format, with the .toml extension.
	TOML Formats = iota

	// YAML is the YAML format, with the .yaml or .yml extension.
	YAML
)

// FormatFromFilename returns the [Formats] for the extension of the
// given filename.
func FormatFromFilename(filename string) (Formats, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return TOML, fmt.Errorf("swatch: unsupported palette file extension %q", filepath.Ext(filename))
}

// Default returns the palette of all colors in the [Table].
func Default() *Palette {
	all := All[float64]()
	p := &Palette{Name: "quaternary", Colors: make([]Entry, len(all))}
	for i, s := range all {
		p.Colors[i] = Entry{Name: s.Name, Color: s.Color}
	}
	return p
}

// Lookup returns the color with the given name in the palette.
// Names are not case sensitive.
func (p *Palette) Lookup(name string) (colors.Color64, bool) {
	for _, e := range p.Colors {
		if strings.EqualFold(e.Name, name) {
			return e.Color, true
		}
	}
	return colors.Color64{}, false
}

// Convert returns a copy of the palette with all colors converted
// to the given model.
func (p *Palette) Convert(model colors.Models) *Palette {
	np := &Palette{Name: p.Name, Colors: make([]Entry, len(p.Colors))}
	for i, e := range p.Colors {
		np.Colors[i] = Entry{Name: e.Name, Color: e.Color.Convert(model)}
	}
	return np
}

// Open reads the palette from the given file, in the format given by
// its extension.
func Open(filename string) (*Palette, error) {
	f, err := FormatFromFilename(filename)
	if err != nil {
		return nil, err
	}
	p := &Palette{}
	switch f {
	case YAML:
		err = yamlx.Open(p, filename)
	default:
		err = tomlx.Open(p, filename)
	}
	if err != nil {
		return nil, fmt.Errorf("swatch.Open %s: %w", filename, err)
	}
	return p, nil
}

// Save writes the palette to the given file, in the format given by
// its extension.
func (p *Palette) Save(filename string) error {
	f, err := FormatFromFilename(filename)
	if err != nil {
		return err
	}
	switch f {
	case YAML:
		err = yamlx.Save(p, filename)
	default:
		err = tomlx.Save(p, filename)
	}
	if err != nil {
		return fmt.Errorf("swatch.Save %s: %w", filename, err)
	}
	return nil
}

// Read reads the palette from the given reader in the given format.
func Read(r io.Reader, f Formats) (*Palette, error) {
	p := &Palette{}
	var err error
	switch f {
	case YAML:
		err = yamlx.Read(p, r)
	default:
		err = tomlx.Read(p, r)
	}
	if err != nil {
		return nil, fmt.Errorf("swatch.Read: %w", err)
	}
	return p, nil
}

// Write writes the palette to the given writer in the given format.
func (p *Palette) Write(w io.Writer, f Formats) error {
	switch f {
	case YAML:
		return yamlx.Write(p, w)
	default:
		return tomlx.Write(p, w)
	}
}

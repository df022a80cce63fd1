// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// SetDefaultLogger sets the default [slog.Logger] to one that writes
// to [os.Stderr] at [UserLevel], with level names colored according
// to the capabilities of the terminal.
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr, UserLevel)))
}

// NewHandler returns a text [slog.Handler] writing to w that shows
// messages at or above level. Level names are colored with termenv
// using the color profile detected for w; when w is not a terminal
// the profile is [termenv.Ascii] and no escape codes are written.
func NewHandler(w io.Writer, level slog.Leveler) slog.Handler {
	out := termenv.NewOutput(w)
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 || a.Key != slog.LevelKey {
				return a
			}
			lv, ok := a.Value.Any().(slog.Level)
			if !ok {
				return a
			}
			a.Value = slog.StringValue(LevelString(out, lv))
			return a
		},
	})
}

// LevelString returns the name of the given level styled for out.
func LevelString(out *termenv.Output, level slog.Level) string {
	s := out.String(level.String())
	switch {
	case level >= slog.LevelError:
		s = s.Foreground(out.Color("1")).Bold()
	case level >= slog.LevelWarn:
		s = s.Foreground(out.Color("3"))
	case level >= slog.LevelInfo:
		s = s.Foreground(out.Color("4"))
	default:
		s = s.Foreground(out.Color("8"))
	}
	return s.String()
}

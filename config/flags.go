// Copyright (c) 2026, The GLShapes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/glshapes/glshapes/base/errors"
	"github.com/glshapes/glshapes/base/logx"
	"github.com/spf13/pflag"
)

// Flags are the command line options shared by the glshapes programs.
type Flags struct {

	// File is the TOML config file to read, if any.
	File string

	// Watch is whether to reload File when it changes.
	Watch bool

	// VeryVerbose, Verbose and Quiet select the log level
	// through [logx.LevelFromFlags].
	VeryVerbose bool
	Verbose     bool
	Quiet       bool

	fs  *pflag.FlagSet
	ovr Config
}

// FlagOption configures [ParseFlags].
type FlagOption func(fo *flagOptions)

type flagOptions struct {
	circle bool
	output io.Writer
}

// CircleFlags registers the circle geometry and live reload flags
// (segments, radius, interval and watch), which only apply to
// programs that draw a circle.
func CircleFlags() FlagOption {
	return func(fo *flagOptions) { fo.circle = true }
}

// FlagOutput sets where parse errors and usage are printed,
// instead of standard error.
func FlagOutput(w io.Writer) FlagOption {
	return func(fo *flagOptions) { fo.output = w }
}

// ParseFlags parses the given command line arguments (excluding the
// program name) for the program with the given name. Window and geometry
// settings given on the command line override the config file;
// their flag defaults are taken from base. Parse errors are printed
// along with the usage before they are returned.
func ParseFlags(name string, args []string, base *Config, opts ...FlagOption) (*Flags, error) {
	var fo flagOptions
	for _, opt := range opts {
		opt(&fo)
	}
	fl := &Flags{}
	out := fo.output
	if out == nil {
		out = os.Stderr
	}
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() {
		fmt.Fprintf(out, "Usage of %s:\n", name)
		fs.PrintDefaults()
	}
	fs.StringVarP(&fl.File, "config", "c", "", "TOML config `file` to read")
	fs.BoolVar(&fl.VeryVerbose, "vv", false, "log debug messages")
	fs.BoolVarP(&fl.Verbose, "verbose", "v", false, "log informational messages")
	fs.BoolVarP(&fl.Quiet, "quiet", "q", false, "only log errors")

	fs.StringVar(&fl.ovr.Title, "title", base.Title, "window title")
	fs.IntVar(&fl.ovr.Width, "width", base.Width, "initial window width")
	fs.IntVar(&fl.ovr.Height, "height", base.Height, "initial window height")
	if fo.circle {
		fs.BoolVar(&fl.Watch, "watch", false, "reload the config file when it changes")
		fs.IntVar(&fl.ovr.Segments, "segments", base.Segments, "number of circle segments")
		fs.Float32Var(&fl.ovr.Radius, "radius", base.Radius, "circle radius in normalized device coordinates")
		fs.DurationVar((*time.Duration)(&fl.ovr.UpdateInterval), "interval", base.UpdateInterval.Std(), "framebuffer size polling interval")
	}

	if err := fs.Parse(args); err != nil {
		// pflag only prints the usage for help
		if !errors.Is(err, pflag.ErrHelp) {
			fmt.Fprintln(out, err)
			fs.Usage()
		}
		return nil, err
	}
	fl.fs = fs
	return fl, nil
}

// Level returns the log level selected by the verbosity flags.
func (fl *Flags) Level() slog.Level {
	return logx.LevelFromFlags(fl.VeryVerbose, fl.Verbose, fl.Quiet)
}

// Apply sets the fields of cfg that were explicitly given on the command line.
// Flags that were not registered are never changed.
func (fl *Flags) Apply(cfg *Config) {
	if fl.fs == nil {
		return
	}
	if fl.fs.Changed("title") {
		cfg.Title = fl.ovr.Title
	}
	if fl.fs.Changed("width") {
		cfg.Width = fl.ovr.Width
	}
	if fl.fs.Changed("height") {
		cfg.Height = fl.ovr.Height
	}
	if fl.fs.Changed("segments") {
		cfg.Segments = fl.ovr.Segments
	}
	if fl.fs.Changed("radius") {
		cfg.Radius = fl.ovr.Radius
	}
	if fl.fs.Changed("interval") {
		cfg.UpdateInterval = fl.ovr.UpdateInterval
	}
}

// Load returns a copy of base with the config file (if any) and the
// command line overrides applied, validated.
func (fl *Flags) Load(base *Config) (*Config, error) {
	cfg := *base
	if fl.File != "" {
		if err := Open(&cfg, fl.File); err != nil {
			return nil, err
		}
	}
	fl.Apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Copyright (c) 2026, The GLShapes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration struct shared by the
// glshapes programs, along with its loading from TOML files and
// command line flags.
package config

import (
	"fmt"
	"time"

	"github.com/glshapes/glshapes/base/errors"
)

// Config is the main config struct that contains all of the
// configuration options for a glshapes window.
type Config struct {

	// Title is the window title.
	Title string `toml:"title" def:"glshapes"`

	// Width is the initial window width in screen coordinates.
	Width int `toml:"width" def:"800"`

	// Height is the initial window height in screen coordinates.
	Height int `toml:"height" def:"600"`

	// Segments is the number of points on the circle outline.
	Segments int `toml:"segments" def:"36"`

	// Radius is the circle radius in normalized device coordinates.
	Radius float32 `toml:"radius" def:"0.5"`

	// UpdateInterval is how often the framebuffer size is checked
	// and geometry regenerated if needed.
	UpdateInterval Duration `toml:"update_interval" def:"15ms"`

	// ClearColor is the background color, as RGBA in [0, 1].
	ClearColor Color `toml:"clear_color" def:"0.2 0.3 0.3 1"`

	// LineColor is the color of drawn outlines, as RGBA in [0, 1].
	LineColor Color `toml:"line_color" def:"0 1 0 1"`

	// GLMajor is the requested OpenGL context major version.
	GLMajor int `toml:"gl_major" def:"3"`

	// GLMinor is the requested OpenGL context minor version.
	GLMinor int `toml:"gl_minor" def:"3"`
}

// New returns a new [Config] with all fields set to their defaults.
func New() *Config {
	cfg := &Config{}
	errors.Must(SetFromDefaults(cfg))
	return cfg
}

// Validate returns an error describing every field with a value
// that cannot be used to open a window and draw.
func (cfg *Config) Validate() error {
	var errs []error
	if cfg.Width <= 0 || cfg.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", cfg.Width, cfg.Height))
	}
	if cfg.Segments <= 0 {
		errs = append(errs, fmt.Errorf("segments must be positive, got %d", cfg.Segments))
	}
	if cfg.Radius <= 0 {
		errs = append(errs, fmt.Errorf("radius must be positive, got %g", cfg.Radius))
	}
	if cfg.UpdateInterval <= 0 {
		errs = append(errs, fmt.Errorf("update interval must be positive, got %v", cfg.UpdateInterval))
	}
	if cfg.GLMajor < 3 || (cfg.GLMajor == 3 && cfg.GLMinor < 3) {
		errs = append(errs, fmt.Errorf("OpenGL %d.%d is not supported, need at least 3.3 core", cfg.GLMajor, cfg.GLMinor))
	}
	for _, c := range []Color{cfg.ClearColor, cfg.LineColor} {
		if !c.Valid() {
			errs = append(errs, fmt.Errorf("color components must be in [0, 1], got %v", c))
		}
	}
	return errors.Join(errs...)
}

// Color is an RGBA color with float components in [0, 1].
type Color [4]float32

// RGBA returns the four color components.
func (c Color) RGBA() (r, g, b, a float32) {
	return c[0], c[1], c[2], c[3]
}

// Valid returns whether all components are in [0, 1].
func (c Color) Valid() bool {
	for _, v := range c {
		if v < 0 || v > 1 {
			return false
		}
	}
	return true
}

// Duration is a [time.Duration] that is stored in config files
// in its string form, such as "15ms".
type Duration time.Duration

// Std returns the duration as a [time.Duration].
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func (d Duration) String() string {
	return time.Duration(d).String()
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

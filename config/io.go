// Copyright (c) 2026, The GLShapes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Open reads the given TOML file into cfg. Fields that are not
// present in the file keep their current values, so cfg should
// typically already hold the defaults.
func Open(cfg *Config, file string) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := Read(cfg, f); err != nil {
		return fmt.Errorf("config file %q: %w", file, err)
	}
	return nil
}

// Read reads TOML config data from r into cfg. Unknown keys are an error,
// which catches misspelled settings.
func Read(cfg *Config, r io.Reader) error {
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	return dec.Decode(cfg)
}

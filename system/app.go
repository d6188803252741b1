// Copyright (c) 2026, The GLShapes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package system wraps the GLFW window and OpenGL context management
// used by the glshapes programs.
package system

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// note: everything in this package must be called on the main initial
// thread, which callers lock with runtime.LockOSThread in an init function.

// Init initializes GLFW. It must be called before creating any window.
func Init() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %w", err)
	}
	slog.Debug("GLFW initialized", "version", glfw.GetVersionString())
	return nil
}

// Terminate destroys any remaining windows and shuts down GLFW.
// It should be the last call made into this package.
func Terminate() {
	glfw.Terminate()
}

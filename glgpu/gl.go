// Copyright (c) 2026, The GLShapes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glgpu implements the OpenGL 3.3 core drawing used by the
// glshapes programs: shader compilation and linking, and a [Renderer]
// owning the vertex array, buffer and program for an outline.
package glgpu

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// Init loads the GL function pointers for the current context.
// It must be called after the context is made current and before
// any other function in this package.
func Init() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize OpenGL loader: %w", err)
	}
	slog.Info("OpenGL initialized", "version", gl.GoStr(gl.GetString(gl.VERSION)), "renderer", gl.GoStr(gl.GetString(gl.RENDERER)))
	return nil
}

// Screen draws directly to the default framebuffer of the current context.
type Screen struct{}

// SetViewport sets the GL viewport to cover the given framebuffer size.
func (Screen) SetViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Clear clears the color buffer to the given color.
func (Screen) Clear(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

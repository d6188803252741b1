// Copyright (c) 2026, The GLShapes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package system

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// WindowOptions are the options for [NewWindow].
type WindowOptions struct {

	// Title is the window title.
	Title string

	// Width and Height are the initial window size in screen coordinates.
	Width  int
	Height int

	// GLMajor and GLMinor are the requested OpenGL core profile version.
	GLMajor int
	GLMinor int
}

// Window is a GLFW window with a current OpenGL core profile context.
type Window struct {
	glw *glfw.Window
}

// NewWindow creates a new window with an OpenGL core profile context of
// the requested version and makes its context current. Pressing Escape
// in the window requests it to close.
func NewWindow(opts WindowOptions) (*Window, error) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ContextVersionMajor, opts.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, opts.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	glw, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create GLFW window: %w", err)
	}
	glw.MakeContextCurrent()
	glw.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if isCloseKey(key, action) {
			w.SetShouldClose(true)
		}
	})
	slog.Info("created window", "title", opts.Title, "width", opts.Width, "height", opts.Height)
	return &Window{glw: glw}, nil
}

// isCloseKey returns whether the key event should close the window.
func isCloseKey(key glfw.Key, action glfw.Action) bool {
	return key == glfw.KeyEscape && action == glfw.Press
}

// FramebufferSize returns the size of the drawable surface in pixels,
// which can differ from the window size under display scaling.
func (w *Window) FramebufferSize() (width, height int) {
	return w.glw.GetFramebufferSize()
}

// ShouldClose returns whether the user or the program has asked
// for the window to close.
func (w *Window) ShouldClose() bool {
	return w.glw.ShouldClose()
}

// EndFrame presents the rendered frame and processes pending events.
func (w *Window) EndFrame() {
	w.glw.SwapBuffers()
	glfw.PollEvents()
}

// Destroy destroys the window and its context.
func (w *Window) Destroy() {
	if w.glw == nil {
		return
	}
	w.glw.Destroy()
	w.glw = nil
}

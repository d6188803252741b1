// Copyright (c) 2026, The GLShapes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package app contains the frame loops of the glshapes programs,
// independent of the concrete window and GL implementations.
package app

// Surface is a window that can be drawn into, such as a [system.Window].
type Surface interface {

	// FramebufferSize returns the drawable size in pixels.
	FramebufferSize() (width, height int)

	// ShouldClose returns whether the frame loop should stop.
	ShouldClose() bool

	// EndFrame presents the frame and processes window events.
	EndFrame()
}

// Canvas clears the framebuffer, such as a [glgpu.Renderer].
type Canvas interface {
	SetViewport(width, height int)
	Clear(r, g, b, a float32)
}

// Outline is a [Canvas] that also draws one line loop from
// an uploaded vertex buffer, such as a [glgpu.Renderer].
type Outline interface {
	Canvas

	// Upload replaces the vertex buffer, 3 floats per vertex.
	Upload(vertices []float32)

	// SetColor sets the line color.
	SetColor(r, g, b, a float32)

	// Draw draws the uploaded vertices.
	Draw()
}

// Frames is the number of frames rendered by a loop, for logging.
type Frames int

// RunClear runs a frame loop that clears the surface to the given color
// every frame until it should close, and returns the number of frames.
func RunClear(sf Surface, cv Canvas, r, g, b, a float32) Frames {
	var n Frames
	for !sf.ShouldClose() {
		cv.Clear(r, g, b, a)
		sf.EndFrame()
		n++
	}
	return n
}

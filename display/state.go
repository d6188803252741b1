// Copyright (c) 2026, The GLShapes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package display tracks the framebuffer size of a window and
// whether geometry derived from it needs to be regenerated.
package display

import "fmt"

// State is the last-seen framebuffer state of a window.
type State struct {

	// Width is the framebuffer width in pixels.
	Width int

	// Height is the framebuffer height in pixels.
	Height int

	// AspectRatio is Width / Height as of the last usable size.
	AspectRatio float32

	// Dirty is set when geometry depending on AspectRatio
	// must be regenerated before the next draw.
	Dirty bool
}

// NewState returns a new [State] with an aspect ratio of 1,
// marked dirty so that the first refresh always runs.
func NewState() *State {
	return &State{AspectRatio: 1, Dirty: true}
}

// Detect compares the given framebuffer size with the stored one.
// On any change it stores the new size, updates the aspect ratio,
// marks the state dirty and returns true. It returns false if the size
// is unchanged. A zero height (for example a minimized window) is stored
// but keeps the previous aspect ratio and does not mark the state dirty.
func (st *State) Detect(width, height int) bool {
	if width == st.Width && height == st.Height {
		return false
	}
	st.Width = width
	st.Height = height
	if height <= 0 || width <= 0 {
		return true
	}
	st.AspectRatio = float32(width) / float32(height)
	st.Dirty = true
	return true
}

// Invalidate marks the state dirty without a size change,
// for when other inputs to the geometry have changed.
func (st *State) Invalidate() {
	st.Dirty = true
}

// Refresh calls fn with the current aspect ratio and clears the dirty
// flag, if the state is dirty. It returns whether fn was called.
func (st *State) Refresh(fn func(aspect float32)) bool {
	if !st.Dirty {
		return false
	}
	fn(st.AspectRatio)
	st.Dirty = false
	return true
}

func (st *State) String() string {
	return fmt.Sprintf("%dx%d aspect: %g dirty: %v", st.Width, st.Height, st.AspectRatio, st.Dirty)
}

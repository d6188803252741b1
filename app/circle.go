// Copyright (c) 2026, The GLShapes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"log/slog"

	"github.com/glshapes/glshapes/base/timer"
	"github.com/glshapes/glshapes/config"
	"github.com/glshapes/glshapes/display"
	"github.com/glshapes/glshapes/shape"
	"github.com/jonboulle/clockwork"
)

// Circle draws an aspect-corrected circle outline. The framebuffer size
// is checked at most once per [config.Config.UpdateInterval], and the
// circle vertices are regenerated and uploaded only when it changed.
type Circle struct {

	// Config is the current configuration.
	Config *config.Config

	// State is the last seen framebuffer state.
	State *display.State

	// Throttle gates the size check and geometry refresh.
	Throttle *timer.Throttle

	outline Outline
	configs <-chan *config.Config
	uploads int
}

// NewCircle returns a new [Circle] drawing into the given outline,
// using the given clock for its update throttle.
func NewCircle(cfg *config.Config, outline Outline, clock clockwork.Clock) *Circle {
	c := &Circle{
		Config:   cfg,
		State:    display.NewState(),
		Throttle: timer.NewThrottle(cfg.UpdateInterval.Std(), clock),
		outline:  outline,
	}
	outline.SetColor(cfg.LineColor.RGBA())
	return c
}

// SetConfigs sets a channel of new configurations to apply
// at the next update, such as one fed by [config.Watch].
func (c *Circle) SetConfigs(configs <-chan *config.Config) {
	c.configs = configs
}

// Uploads returns the number of times geometry has been uploaded.
func (c *Circle) Uploads() int {
	return c.uploads
}

// Apply switches to the given configuration. Geometry is regenerated
// at the next refresh if the circle shape changed.
func (c *Circle) Apply(cfg *config.Config) {
	if cfg.Segments != c.Config.Segments || cfg.Radius != c.Config.Radius {
		c.State.Invalidate()
	}
	c.Throttle.Interval = cfg.UpdateInterval.Std()
	c.outline.SetColor(cfg.LineColor.RGBA())
	c.Config = cfg
	slog.Info("applied config", "segments", cfg.Segments, "radius", cfg.Radius, "interval", cfg.UpdateInterval)
}

// Detect checks the framebuffer size of the surface, updating the
// viewport if it changed. It returns whether it changed.
func (c *Circle) Detect(sf Surface) bool {
	w, h := sf.FramebufferSize()
	if !c.State.Detect(w, h) {
		return false
	}
	c.outline.SetViewport(w, h)
	slog.Debug("framebuffer resized", "state", c.State)
	return true
}

// Refresh regenerates and uploads the circle vertices if the
// state is dirty. It returns whether it did.
func (c *Circle) Refresh() bool {
	return c.State.Refresh(func(aspect float32) {
		c.outline.Upload(shape.Flatten(shape.Circle(c.Config.Segments, c.Config.Radius, aspect)))
		c.uploads++
	})
}

// Update applies any pending configuration, and then, if the throttle
// interval has passed, checks for a resize and refreshes the geometry.
// It returns whether the throttle interval had passed.
func (c *Circle) Update(sf Surface) bool {
	c.drainConfigs()
	if !c.Throttle.Ready() {
		return false
	}
	c.Detect(sf)
	c.Refresh()
	return true
}

func (c *Circle) drainConfigs() {
	if c.configs == nil {
		return
	}
	for {
		select {
		case cfg, ok := <-c.configs:
			if !ok {
				c.configs = nil
				return
			}
			c.Apply(cfg)
		default:
			return
		}
	}
}

// Render clears the framebuffer and draws the circle.
func (c *Circle) Render() {
	c.outline.Clear(c.Config.ClearColor.RGBA())
	c.outline.Draw()
}

// Run runs the frame loop until the surface should close, and returns
// the number of frames rendered. The framebuffer size is checked once
// before the first frame so that the viewport is always set.
func (c *Circle) Run(sf Surface) Frames {
	c.Detect(sf)
	var n Frames
	for !sf.ShouldClose() {
		c.Update(sf)
		c.Render()
		sf.EndFrame()
		n++
	}
	return n
}

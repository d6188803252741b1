// Copyright (c) 2026, The GLShapes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"testing"
	"time"

	"github.com/glshapes/glshapes/config"
	"github.com/glshapes/glshapes/shape"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSurface struct {
	width, height int
	frames        int
	closeAfter    int
	onFrame       func(frame int)
}

func (fs *fakeSurface) FramebufferSize() (int, int) { return fs.width, fs.height }

func (fs *fakeSurface) ShouldClose() bool { return fs.frames >= fs.closeAfter }

func (fs *fakeSurface) EndFrame() {
	fs.frames++
	if fs.onFrame != nil {
		fs.onFrame(fs.frames)
	}
}

type fakeOutline struct {
	viewports [][2]int
	uploads   [][]float32
	color     [4]float32
	clears    [][4]float32
	draws     int
}

func (fo *fakeOutline) SetViewport(w, h int) { fo.viewports = append(fo.viewports, [2]int{w, h}) }

func (fo *fakeOutline) Clear(r, g, b, a float32) {
	fo.clears = append(fo.clears, [4]float32{r, g, b, a})
}

func (fo *fakeOutline) Upload(v []float32) { fo.uploads = append(fo.uploads, v) }

func (fo *fakeOutline) SetColor(r, g, b, a float32) { fo.color = [4]float32{r, g, b, a} }

func (fo *fakeOutline) Draw() { fo.draws++ }

func newTestCircle() (*Circle, *fakeOutline, *clockwork.FakeClock) {
	clk := clockwork.NewFakeClockAt(time.Unix(0, 0))
	fo := &fakeOutline{}
	return NewCircle(config.New(), fo, clk), fo, clk
}

func TestCircleUpdate(t *testing.T) {
	c, fo, clk := newTestCircle()
	assert.Equal(t, [4]float32{0, 1, 0, 1}, fo.color)
	sf := &fakeSurface{width: 800, height: 400}

	assert.True(t, c.Update(sf))
	require.Len(t, fo.uploads, 1)
	assert.Equal(t, [][2]int{{800, 400}}, fo.viewports)
	want := shape.Flatten(shape.Circle(shape.DefaultSegments, shape.DefaultRadius, 2))
	assert.Equal(t, want, fo.uploads[0])

	// same size: no upload even after the interval
	clk.Advance(15 * time.Millisecond)
	assert.True(t, c.Update(sf))
	assert.Len(t, fo.uploads, 1)

	// resized, but the interval has not passed yet
	sf.width, sf.height = 400, 800
	clk.Advance(5 * time.Millisecond)
	assert.False(t, c.Update(sf))
	assert.Len(t, fo.uploads, 1)

	clk.Advance(10 * time.Millisecond)
	assert.True(t, c.Update(sf))
	require.Len(t, fo.uploads, 2)
	assert.Equal(t, shape.Flatten(shape.Circle(shape.DefaultSegments, shape.DefaultRadius, 0.5)), fo.uploads[1])
	assert.Equal(t, [][2]int{{800, 400}, {400, 800}}, fo.viewports)
	assert.Equal(t, 2, c.Uploads())
}

func TestCircleRender(t *testing.T) {
	c, fo, _ := newTestCircle()
	c.Render()
	assert.Equal(t, [][4]float32{{0.2, 0.3, 0.3, 1}}, fo.clears)
	assert.Equal(t, 1, fo.draws)
}

func TestCircleRun(t *testing.T) {
	c, fo, clk := newTestCircle()
	sf := &fakeSurface{width: 640, height: 480, closeAfter: 5}
	sf.onFrame = func(frame int) {
		clk.Advance(5 * time.Millisecond)
		if frame == 2 {
			sf.width = 1280
		}
	}
	assert.Equal(t, Frames(5), c.Run(sf))
	assert.Equal(t, 5, fo.draws)
	assert.Len(t, fo.clears, 5)
	// initial detect, then the resize seen at the 15ms tick
	assert.Equal(t, [][2]int{{640, 480}, {1280, 480}}, fo.viewports)
	assert.Len(t, fo.uploads, 2)
}

func TestCircleApply(t *testing.T) {
	c, fo, clk := newTestCircle()
	sf := &fakeSurface{width: 100, height: 100}
	c.Update(sf)
	require.Len(t, fo.uploads, 1)

	configs := make(chan *config.Config, 2)
	c.SetConfigs(configs)

	colorOnly := config.New()
	colorOnly.LineColor = config.Color{1, 0, 0, 1}
	colorOnly.UpdateInterval = config.Duration(50 * time.Millisecond)
	configs <- colorOnly
	clk.Advance(15 * time.Millisecond)
	assert.False(t, c.Update(sf), "new interval applies before the throttle check")
	assert.Equal(t, [4]float32{1, 0, 0, 1}, fo.color)
	assert.Len(t, fo.uploads, 1)

	more := config.New()
	more.Segments = 8
	more.UpdateInterval = colorOnly.UpdateInterval
	configs <- more
	clk.Advance(35 * time.Millisecond)
	assert.True(t, c.Update(sf))
	require.Len(t, fo.uploads, 2)
	assert.Len(t, fo.uploads[1], 3*8)
	assert.Same(t, more, c.Config)

	close(configs)
	clk.Advance(time.Second)
	assert.True(t, c.Update(sf))
	assert.Len(t, fo.uploads, 2)
}

func TestRunClear(t *testing.T) {
	fo := &fakeOutline{}
	sf := &fakeSurface{closeAfter: 3}
	assert.Equal(t, Frames(3), RunClear(sf, fo, 0, 0, 1, 1))
	assert.Equal(t, [][4]float32{{0, 0, 1, 1}, {0, 0, 1, 1}, {0, 0, 1, 1}}, fo.clears)
	assert.Empty(t, fo.viewports)
}

// Copyright (c) 2026, The GLShapes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	_ "embed"
	"log/slog"

	"github.com/go-gl/gl/v3.3-core/gl"
)

//go:embed shaders/circle.vert
var lineVertSrc string

//go:embed shaders/circle.frag
var lineFragSrc string

// floatSize is the size in bytes of a float32 vertex component.
const floatSize = 4

// Renderer owns the GL objects needed to draw a single outline:
// a vertex array, its vertex buffer, and a shader program that draws
// vec3 positions in a uniform color. It must be created, used and
// released on the thread that owns the GL context.
type Renderer struct {
	Screen

	program *Program
	vao     uint32
	vbo     uint32

	// number of vertices in the buffer
	count int32

	color [4]float32
	mode  uint32
}

// NewRenderer compiles the line shaders and creates the vertex array and
// buffer, with attribute 0 bound to tightly packed vec3 positions.
// The context must be current and the GL loader initialized with [Init].
func NewRenderer() (*Renderer, error) {
	pr := NewProgram("line")
	if _, err := pr.AddShader(VertexShader, "line.vert", lineVertSrc); err != nil {
		return nil, err
	}
	if _, err := pr.AddShader(FragmentShader, "line.frag", lineFragSrc); err != nil {
		return nil, err
	}
	if err := pr.Compile("color"); err != nil {
		pr.Delete()
		return nil, err
	}

	rd := &Renderer{program: pr, mode: gl.LINE_LOOP, color: [4]float32{0, 1, 0, 1}}
	gl.GenVertexArrays(1, &rd.vao)
	gl.GenBuffers(1, &rd.vbo)

	gl.BindVertexArray(rd.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, rd.vbo)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*floatSize, 0)
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)

	slog.Debug("created renderer", "program", pr.Handle(), "vao", rd.vao, "vbo", rd.vbo)
	return rd, nil
}

// Upload replaces the contents of the vertex buffer with the given
// vertices, 3 floats (x, y, z) per vertex.
func (rd *Renderer) Upload(vertices []float32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, rd.vbo)
	if len(vertices) == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, gl.STATIC_DRAW)
	} else {
		gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*floatSize, gl.Ptr(vertices), gl.STATIC_DRAW)
	}
	rd.count = int32(len(vertices) / 3)
	slog.Debug("uploaded vertices", "count", rd.count)
}

// SetColor sets the outline color.
func (rd *Renderer) SetColor(r, g, b, a float32) {
	rd.color = [4]float32{r, g, b, a}
}

// Draw draws the buffered vertices as a closed line loop.
func (rd *Renderer) Draw() {
	if rd.count == 0 {
		return
	}
	rd.program.Activate()
	if loc, ok := rd.program.UniformLocation("color"); ok {
		gl.Uniform4f(loc, rd.color[0], rd.color[1], rd.color[2], rd.color[3])
	}
	gl.BindVertexArray(rd.vao)
	gl.DrawArrays(rd.mode, 0, rd.count)
	gl.BindVertexArray(0)
}

// Release deletes all the GL objects. It is safe to call more than once.
func (rd *Renderer) Release() {
	if rd.vao != 0 {
		gl.DeleteVertexArrays(1, &rd.vao)
		rd.vao = 0
	}
	if rd.vbo != 0 {
		gl.DeleteBuffers(1, &rd.vbo)
		rd.vbo = 0
	}
	if rd.program != nil {
		rd.program.Delete()
	}
	rd.count = 0
}

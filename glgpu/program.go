// Copyright (c) 2026, The GLShapes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// Program manages a set of shaders linked into one GL program,
// and the locations of its uniforms.
type Program struct {
	init     bool
	handle   uint32
	name     string
	shaders  map[ShaderTypes]*Shader
	uniforms map[string]int32
}

// NewProgram returns a new [Program] with the given name.
func NewProgram(name string) *Program {
	return &Program{name: name}
}

// Name returns name of program
func (pr *Program) Name() string {
	return pr.name
}

// Handle returns the GPU handle for this program
func (pr *Program) Handle() uint32 {
	return pr.handle
}

// AddShader adds shader of given type, unique name and source code.
// Only one shader of each type can be added.
func (pr *Program) AddShader(typ ShaderTypes, name string, src string) (*Shader, error) {
	if pr.shaders == nil {
		pr.shaders = make(map[ShaderTypes]*Shader)
	}
	if _, has := pr.shaders[typ]; has {
		return nil, fmt.Errorf("glgpu.AddShader: %s shader already added to program %q", typ, pr.name)
	}
	sh := &Shader{name: name, typ: typ, src: src}
	pr.shaders[typ] = sh
	return sh, nil
}

// ShaderByType returns shader by its type, or nil if there is none.
func (pr *Program) ShaderByType(typ ShaderTypes) *Shader {
	return pr.shaders[typ]
}

// Compile compiles all the shaders and links them into the program.
// The shader objects are deleted once linked, whether or not linking
// succeeded. Uniform locations for the given names are looked up after
// linking. The context must be current.
func (pr *Program) Compile(uniforms ...string) error {
	if pr.shaders[VertexShader] == nil || pr.shaders[FragmentShader] == nil {
		return fmt.Errorf("glgpu.Compile: program %q needs both a vertex and a fragment shader", pr.name)
	}
	defer pr.deleteShaders()
	for _, typ := range []ShaderTypes{VertexShader, FragmentShader} {
		if err := pr.shaders[typ].Compile(); err != nil {
			return err
		}
	}

	handle := gl.CreateProgram()
	for _, typ := range []ShaderTypes{VertexShader, FragmentShader} {
		gl.AttachShader(handle, pr.shaders[typ].Handle())
	}
	gl.LinkProgram(handle)

	var status int32
	gl.GetProgramiv(handle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(handle, gl.INFO_LOG_LENGTH, &logLength)

		msg := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(handle, logLength, nil, gl.Str(msg))
		gl.DeleteProgram(handle)
		return fmt.Errorf("failed to link program %q: %v", pr.name, GoString(msg))
	}
	pr.handle = handle
	pr.init = true

	pr.uniforms = make(map[string]int32, len(uniforms))
	for _, u := range uniforms {
		loc := gl.GetUniformLocation(handle, gl.Str(CString(u)))
		if loc < 0 {
			return fmt.Errorf("glgpu.Compile: uniform %q not found in program %q", u, pr.name)
		}
		pr.uniforms[u] = loc
	}
	return nil
}

func (pr *Program) deleteShaders() {
	for _, sh := range pr.shaders {
		sh.Delete()
	}
}

// UniformLocation returns the location of the given uniform,
// which must have been named in [Program.Compile].
func (pr *Program) UniformLocation(name string) (int32, bool) {
	loc, ok := pr.uniforms[name]
	return loc, ok
}

// Activate makes this the current program
func (pr *Program) Activate() {
	gl.UseProgram(pr.handle)
}

// Delete deletes the program
func (pr *Program) Delete() {
	if !pr.init {
		return
	}
	gl.DeleteProgram(pr.handle)
	pr.handle = 0
	pr.init = false
}

// Copyright (c) 2026, The GLShapes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// ShaderTypes are the kinds of shader stages in a [Program].
type ShaderTypes int32

const (
	VertexShader ShaderTypes = iota
	FragmentShader
)

func (st ShaderTypes) String() string {
	switch st {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	}
	return fmt.Sprintf("ShaderTypes(%d)", int32(st))
}

// gpuType returns the GL enum of the shader type.
func (st ShaderTypes) gpuType() uint32 {
	if st == FragmentShader {
		return gl.FRAGMENT_SHADER
	}
	return gl.VERTEX_SHADER
}

// Shader manages a single shader stage.
type Shader struct {
	init   bool
	handle uint32
	name   string
	typ    ShaderTypes
	src    string
}

// Name returns the unique name of this shader
func (sh *Shader) Name() string {
	return sh.name
}

// Type returns the type of the shader
func (sh *Shader) Type() ShaderTypes {
	return sh.typ
}

// Source returns the source code for the shader,
// excluding the null terminator.
func (sh *Shader) Source() string {
	return GoString(sh.src)
}

// Handle returns the GPU handle for this shader
func (sh *Shader) Handle() uint32 {
	return sh.handle
}

// Compile compiles the shader source. The source must be GLSL 330 core.
// On failure the returned error includes the compiler info log.
// The context must be current.
func (sh *Shader) Compile() error {
	handle := gl.CreateShader(sh.typ.gpuType())

	csources, free := gl.Strs(CString(sh.src))
	gl.ShaderSource(handle, 1, csources, nil)
	free()
	gl.CompileShader(handle)

	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLength)

		msg := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(handle, logLength, nil, gl.Str(msg))
		gl.DeleteShader(handle)
		return fmt.Errorf("failed to compile %s shader %q: %v", sh.typ, sh.name, GoString(msg))
	}

	sh.handle = handle
	sh.init = true
	return nil
}

// Delete deletes the shader
func (sh *Shader) Delete() {
	if !sh.init {
		return
	}
	gl.DeleteShader(sh.handle)
	sh.handle = 0
	sh.init = false
}

// CString returns s with a null terminator, as needed for passing
// strings to GL. It is a no-op if s is already null terminated.
func CString(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}

// GoString returns s up to its first null byte, for display purposes.
func GoString(s string) string {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return s[:i]
	}
	return s
}

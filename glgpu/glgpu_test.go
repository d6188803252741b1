// Copyright (c) 2026, The GLShapes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCString(t *testing.T) {
	assert.Equal(t, "void main() {}\x00", CString("void main() {}"))
	assert.Equal(t, "x\x00", CString("x\x00"))
	assert.Equal(t, "x", GoString("x\x00\x00"))
	assert.Equal(t, "abc", GoString("abc"))
}

func TestShaderTypes(t *testing.T) {
	assert.Equal(t, "vertex", VertexShader.String())
	assert.Equal(t, "fragment", FragmentShader.String())
	assert.Equal(t, "ShaderTypes(7)", ShaderTypes(7).String())
}

func TestAddShader(t *testing.T) {
	pr := NewProgram("line")
	sh, err := pr.AddShader(VertexShader, "line.vert", lineVertSrc)
	require.NoError(t, err)
	assert.Equal(t, "line.vert", sh.Name())
	assert.Equal(t, VertexShader, sh.Type())
	assert.Equal(t, lineVertSrc, sh.Source())
	assert.Same(t, sh, pr.ShaderByType(VertexShader))
	assert.Nil(t, pr.ShaderByType(FragmentShader))

	_, err = pr.AddShader(VertexShader, "other.vert", lineVertSrc)
	assert.Error(t, err)

	_, err = pr.AddShader(FragmentShader, "line.frag", lineFragSrc)
	assert.NoError(t, err)
	assert.Equal(t, "line", pr.Name())
}

func TestCompileNeedsBothStages(t *testing.T) {
	pr := NewProgram("partial")
	_, err := pr.AddShader(FragmentShader, "line.frag", lineFragSrc)
	require.NoError(t, err)
	assert.ErrorContains(t, pr.Compile(), "needs both")
}

func TestEmbeddedShaders(t *testing.T) {
	assert.Contains(t, lineVertSrc, "#version 330 core")
	assert.Contains(t, lineVertSrc, "layout (location = 0) in vec3 aPos;")
	assert.Contains(t, lineFragSrc, "uniform vec4 color;")
}

func TestDeleteUninitialized(t *testing.T) {
	pr := NewProgram("unused")
	assert.NotPanics(t, pr.Delete)
	sh := &Shader{}
	assert.NotPanics(t, sh.Delete)
}

// Copyright (c) 2026, The GLShapes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"testing"

	"github.com/glshapes/glshapes/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitRadius(t *testing.T) {
	for _, n := range []int{1, 3, 4, 36, 100} {
		pts := Unit(n, 0.75)
		require.Len(t, pts, n)
		for _, p := range pts {
			assert.InDelta(t, 0.75, p.Length(), 1e-6)
			assert.Equal(t, float32(0), p.Z)
		}
	}
}

func TestCircleSquare(t *testing.T) {
	pts := Circle(4, 1, 1)
	want := []math32.Vector3{{X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: -1, Y: 0, Z: 0}, {X: 0, Y: -1, Z: 0}}
	require.Len(t, pts, len(want))
	for i, w := range want {
		assert.InDelta(t, w.X, pts[i].X, 1e-6)
		assert.InDelta(t, w.Y, pts[i].Y, 1e-6)
		assert.InDelta(t, w.Z, pts[i].Z, 1e-6)
	}
	assert.Equal(t, Unit(DefaultSegments, DefaultRadius), Circle(DefaultSegments, DefaultRadius, 1))
}

func TestCircleWide(t *testing.T) {
	unit := Unit(DefaultSegments, DefaultRadius)
	pts := Circle(DefaultSegments, DefaultRadius, 2)
	require.Len(t, pts, len(unit))
	for i := range pts {
		assert.Equal(t, unit[i].X/2, pts[i].X)
		assert.Equal(t, unit[i].Y, pts[i].Y)
	}
}

func TestCircleTall(t *testing.T) {
	unit := Unit(DefaultSegments, DefaultRadius)
	pts := Circle(DefaultSegments, DefaultRadius, 0.5)
	require.Len(t, pts, len(unit))
	for i := range pts {
		assert.Equal(t, unit[i].X, pts[i].X)
		assert.Equal(t, unit[i].Y*0.5, pts[i].Y)
	}
}

func TestCircleEmpty(t *testing.T) {
	assert.Empty(t, Circle(0, 1, 1))
	assert.Empty(t, Circle(-3, 1, 1))
	assert.Nil(t, Flatten(nil))
}

func TestFlatten(t *testing.T) {
	vb := Flatten([]math32.Vector3{{X: 1, Y: 2, Z: 3}, {X: 4, Y: 5, Z: 6}})
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6}, vb)
	assert.Len(t, Flatten(Circle(DefaultSegments, DefaultRadius, 1.5)), 3*DefaultSegments)
}

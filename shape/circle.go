// Copyright (c) 2026, The GLShapes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shape generates vertex geometry for simple 2D primitives
// in normalized device coordinates.
package shape

import "github.com/glshapes/glshapes/math32"

const (
	// DefaultSegments is the number of circle points used by default,
	// giving 10 degrees of separation between points.
	DefaultSegments = 36

	// DefaultRadius is the default circle radius in normalized device coordinates.
	DefaultRadius = 0.5
)

// Unit returns segments points evenly spaced on a circle of the given
// radius around the origin, starting on the positive X axis and going
// counter-clockwise. It returns nil if segments <= 0.
func Unit(segments int, radius float32) []math32.Vector3 {
	if segments <= 0 {
		return nil
	}
	pts := make([]math32.Vector3, segments)
	for i := range pts {
		angle := 2 * math32.Pi * float32(i) / float32(segments)
		sin, cos := math32.Sincos(angle)
		pts[i] = math32.Vec3(radius*cos, radius*sin, 0)
	}
	return pts
}

// AspectCorrect returns v scaled so that geometry drawn in a viewport
// with the given width / height aspect ratio keeps its proportions:
// a wide viewport (aspect > 1) shrinks X, otherwise Y is scaled by aspect.
func AspectCorrect(v math32.Vector3, aspect float32) math32.Vector3 {
	if aspect > 1 {
		v.X /= aspect
	} else {
		v.Y *= aspect
	}
	return v
}

// Circle returns the points of a circle outline with the given number of
// segments and radius, corrected for the given viewport aspect ratio
// so that it appears round on screen. See [Unit] and [AspectCorrect].
func Circle(segments int, radius, aspect float32) []math32.Vector3 {
	pts := Unit(segments, radius)
	for i, p := range pts {
		pts[i] = AspectCorrect(p, aspect)
	}
	return pts
}

// Flatten returns the points packed as consecutive x, y, z float32 values,
// which is the layout of a tightly packed vertex buffer with a single
// vec3 position attribute.
func Flatten(pts []math32.Vector3) []float32 {
	if len(pts) == 0 {
		return nil
	}
	vb := make([]float32, 0, 3*len(pts))
	for _, p := range pts {
		vb = append(vb, p.X, p.Y, p.Z)
	}
	return vb
}

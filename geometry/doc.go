// Package geometry turns shapes into flat triangle meshes.
/*

A ShapeGeometry collects the triangulated interiors of one or more shapes
(see package path) in the z=0 plane. Vertices of all shapes share a single
vertex list; faces index into it.

	shape := path.NewShape(tessella.P(0, 0), tessella.P(4, 0), tessella.P(4, 3))
	mesh, err := geometry.NewShapeGeometry([]*path.Shape{shape}, geometry.Options{})

Outlines are tessellated, brought into counter-clockwise order and
triangulated together with their holes (see polygon.Triangulate).

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package geometry

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'tessella.geometry'
func tracer() tracing.Trace {
	return tracing.Select("tessella.geometry")
}

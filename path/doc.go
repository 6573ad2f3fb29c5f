// Package path builds 2D paths from drawing commands and tessellates them
// into polylines.
/*

A Path is constructed with a builder API modelled after the drawing
commands of canvas-like environments:

	p := path.Nullpath().MoveTo(0, 0).LineTo(10, 0).
		QuadraticCurveTo(15, 5, 10, 10).LineTo(0, 10).ClosePath()
	if err := p.Err(); err != nil {
		...
	}
	pts, err := p.Points(12, false)

Every drawing command is recorded as an Action. Commands other than MoveTo
additionally create a child curve, which makes the path a composite curve
(see package curve), parametrized by arc length. Tessellation replays the
recorded actions.

The first failing builder call is remembered and all subsequent builder calls
are ignored. Err reports this error, and every tessellation method returns it.

Shapes are closed paths which may contain holes. They are the input for
package geometry.

Paths and shapes are not safe for concurrent use.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package path

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'tessella.path'
func tracer() tracing.Trace {
	return tracing.Select("tessella.path")
}

// ErrNoCurrentPoint is flagged if a path is extended relative to its current
// point, but no drawing command has been recorded yet.
var ErrNoCurrentPoint = errors.New("path has no current point")

// DefaultDivisions is the number of samples per curve segment used by
// Points, if called with divisions ≤ 0.
const DefaultDivisions = 12

// DefaultSpacedDivisions is the number of samples used by SpacedPoints,
// if called with divisions ≤ 0.
const DefaultSpacedDivisions = 40

// ClosingEpsilon is the per-axis distance below which the last point of a
// tessellation is considered to coincide with the first one.
const ClosingEpsilon = 1e-10

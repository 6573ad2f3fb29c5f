// Package curve implements parametric 2D curves, arc-length parametrization
// and composite curves.
/*

Every curve is defined by a single primitive, Point(t) for t ∈ [0,1]. All other
operations derive from it: uniform sampling (Points), arc-length sampling
(SpacedPoints), tangents and the inverse mapping from a fraction of arc length
back to the curve parameter (UtoT).

Arc lengths are approximated by sampling a curve at a fixed number of
divisions and summing up chord lengths. The resulting table is cached per
curve in an ArcTable. Leaf curves (lines, Béziers, splines, ellipses) get
their table by being wrapped into a Measured; composite curves (CurvePath)
carry their own.

	line := curve.NewLineCurve(tessella.P(0, 0), tessella.P(3, 4))
	pts, err := curve.SpacedPoints(line, 10)

Curves and their caches are not safe for concurrent use. Methods populating a
cache have pointer receivers; callers sharing a curve between goroutines must
synchronize access.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package curve

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'tessella.curve'
func tracer() tracing.Trace {
	return tracing.Select("tessella.curve")
}

var (
	// ErrDegenerateGeometry indicates a curve (or part of it) of zero length
	// where a positive length is required, e.g. for arc-length mapping.
	ErrDegenerateGeometry = errors.New("degenerate geometry")
	// ErrLookupFailure indicates that a composite curve could not find a
	// child curve for a target distance.
	ErrLookupFailure = errors.New("no curve found for distance")
)

// DefaultDivisions is the number of segments used by Points and SpacedPoints
// if called with divisions ≤ 0.
const DefaultDivisions = 5

// DefaultArcLengthDivisions is the number of chords an arc-length table is
// built from, unless overridden per curve.
const DefaultArcLengthDivisions = 200

// TangentDelta is the step width for approximating tangents by central
// differences.
const TangentDelta = 1e-4

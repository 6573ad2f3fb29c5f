// Package polygon provides winding-order tests, bounds, point containment and
// constrained triangulation for simple polygons with holes.
/*
Polygons are plain sequences of points (contours). The last point is
implicitly connected to the first one; contours should not repeat their
first point at the end.

Triangulation is delegated to poly2tri (a constrained Delaunay sweep), bounds
and containment tests to polyclip.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tessella"
)

// L traces to the polygon tracer.
func L() tracing.Trace {
	return tracing.Select("tessella.polygon")
}

// Area returns the signed area of a contour (shoelace formula). The area is
// positive for counter-clockwise contours in a coordinate system with the
// y-axis pointing up.
func Area(contour []tessella.Pair) float64 {
	n := len(contour)
	var a float64
	for p, q := n-1, 0; q < n; p, q = q, q+1 {
		a += contour[p].X()*contour[q].Y() - contour[q].X()*contour[p].Y()
	}
	return a * 0.5
}

// IsClockwise is true for contours with negative signed area.
func IsClockwise(contour []tessella.Pair) bool {
	return Area(contour) < 0
}

// Reversed returns a reversed copy of a contour.
func Reversed(contour []tessella.Pair) []tessella.Pair {
	r := make([]tessella.Pair, len(contour))
	for i, p := range contour {
		r[len(contour)-1-i] = p
	}
	return r
}

func contourString(contour []tessella.Pair) string {
	if len(contour) > 6 {
		return fmt.Sprintf("%v … (%d points)", contour[:6], len(contour))
	}
	return fmt.Sprintf("%v", contour)
}

package polygon

import (
	"errors"
	"fmt"

	poly2tri "github.com/ByteArena/poly2tri-go"
	"github.com/npillmayer/tessella"
)

// ErrTriangulation indicates that the triangulator was not able to handle
// a set of contours, e.g. because of duplicate points or intersecting edges.
var ErrTriangulation = errors.New("triangulation failed")

// Triangulate computes a constrained triangulation of an outer contour with
// holes. The result are index triples into the concatenation
//
//	[ outer..., holes[0]..., holes[1]..., ... ]
//
// An outer contour of less than 3 points yields no triangles; holes of less
// than 3 points are ignored (their indices are still reserved). Contours
// must not repeat their first point at the end.
//
// Degenerate input (duplicate points, self-intersections) is not checked
// beforehand. The triangulator will fail on it, which is reported as
// ErrTriangulation.
func Triangulate(outer []tessella.Pair, holes [][]tessella.Pair) (triangles [][3]int, err error) {
	if len(outer) < 3 {
		L().Debugf("contour of %d points, no triangles", len(outer))
		return nil, nil
	}
	index := make(map[*poly2tri.Point]int)
	offset := 0
	toPoly := func(contour []tessella.Pair) []*poly2tri.Point {
		line := make([]*poly2tri.Point, len(contour))
		for i, p := range contour {
			line[i] = poly2tri.NewPoint(p.X(), p.Y())
			index[line[i]] = offset + i
		}
		offset += len(contour)
		return line
	}
	defer func() {
		if r := recover(); r != nil {
			L().Errorf("triangulator failed on %s: %v", contourString(outer), r)
			triangles, err = nil, fmt.Errorf("%w: %v", ErrTriangulation, r)
		}
	}()
	swctx := poly2tri.NewSweepContext(toPoly(outer), false)
	for _, hole := range holes {
		line := toPoly(hole)
		if len(line) >= 3 {
			swctx.AddHole(line)
		}
	}
	swctx.Triangulate()
	for _, tr := range swctx.GetTriangles() {
		var tri [3]int
		for k := 0; k < 3; k++ {
			i, ok := index[tr.Points[k]]
			if !ok {
				return nil, fmt.Errorf("%w: triangle references unknown point (%g,%g)",
					ErrTriangulation, tr.Points[k].X, tr.Points[k].Y)
			}
			tri[k] = i
		}
		triangles = append(triangles, tri)
	}
	L().Debugf("triangulated %d points into %d triangles", offset, len(triangles))
	return triangles, nil
}

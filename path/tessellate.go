package path

import (
	"fmt"
	"math"

	"github.com/npillmayer/tessella"
	"github.com/npillmayer/tessella/curve"
)

// Points tessellates the path into a polyline by replaying its drawing
// commands. For divisions ≤ 0, DefaultDivisions is used.
//
//   - MoveTo and LineTo contribute their end point.
//   - Bézier segments contribute divisions points, excluding their start.
//   - A spline contributes divisions × (number of knots) points, spaced by arc length.
//   - An elliptical arc contributes 2 × divisions points, walking the angle
//     from start to end. Arcs not drawn clockwise are walked from end to start.
//
// Curve segments start at the last point emitted, or at the end of the previous
// command if nothing has been emitted yet.
//
// If the last point coincides with the first one (within ClosingEpsilon), it
// is dropped. If closed is true, the first point is then appended again.
//
// If p.UseSpacedPoints is set, Points returns SpacedPoints(divisions, closed).
func (p *Path) Points(divisions int, closed bool) ([]tessella.Pair, error) {
	if p.err != nil {
		return nil, p.err
	}
	if p.UseSpacedPoints {
		return p.SpacedPoints(divisions, closed)
	}
	if divisions <= 0 {
		divisions = DefaultDivisions
	}
	pts := make([]tessella.Pair, 0, len(p.actions)*divisions)
	for i, action := range p.actions {
		switch a := action.(type) {
		case MoveTo:
			pts = append(pts, a.P)
		case LineTo:
			pts = append(pts, a.P)
		case QuadraticTo:
			start := p.segmentStart(pts, i)
			for j := 1; j <= divisions; j++ {
				t := float64(j) / float64(divisions)
				pts = append(pts, tessella.P(
					curve.B2(t, start.X(), a.C.X(), a.P.X()),
					curve.B2(t, start.Y(), a.C.Y(), a.P.Y()),
				))
			}
		case CubicTo:
			start := p.segmentStart(pts, i)
			for j := 1; j <= divisions; j++ {
				t := float64(j) / float64(divisions)
				pts = append(pts, tessella.P(
					curve.B3(t, start.X(), a.C1.X(), a.C2.X(), a.P.X()),
					curve.B3(t, start.Y(), a.C1.Y(), a.C2.Y(), a.P.Y()),
				))
			}
		case SplineThru:
			knots := make([]tessella.Pair, 0, len(a.Points)+1)
			knots = append(knots, p.previousEnd(i))
			knots = append(knots, a.Points...)
			spline := curve.NewSplineCurve(knots)
			n := divisions * len(a.Points)
			for j := 1; j <= n; j++ {
				pt, err := spline.PointAt(float64(j) / float64(n))
				if err != nil {
					return nil, fmt.Errorf("spline #%d: %w", i, err)
				}
				pts = append(pts, pt)
			}
		case Ellipse:
			var err error
			if pts, err = appendEllipse(pts, a, 2*divisions); err != nil {
				return nil, fmt.Errorf("ellipse #%d: %w", i, err)
			}
		default:
			panic(fmt.Sprintf("unknown path action %T", action))
		}
	}
	return closeContour(pts, closed), nil
}

// segmentStart returns the start point of the curve segment recorded by
// action i: the last point emitted so far, or the end of the previous action.
func (p *Path) segmentStart(pts []tessella.Pair, i int) tessella.Pair {
	if len(pts) > 0 {
		return pts[len(pts)-1]
	}
	return p.previousEnd(i)
}

func (p *Path) previousEnd(i int) tessella.Pair {
	if i == 0 {
		return tessella.Origin
	}
	return p.actions[i-1].End()
}

func appendEllipse(pts []tessella.Pair, a Ellipse, n int) ([]tessella.Pair, error) {
	arc := a.arc()
	for j := 1; j <= n; j++ {
		pt, err := arc.Point(float64(j) / float64(n))
		if err != nil {
			return nil, err
		}
		pts = append(pts, pt)
	}
	return pts, nil
}

// closeContour drops a trailing duplicate of the first point and, if closed
// is set, appends the first point again.
func closeContour(pts []tessella.Pair, closed bool) []tessella.Pair {
	if len(pts) == 0 {
		return pts
	}
	first, last := pts[0], pts[len(pts)-1]
	if len(pts) > 1 && math.Abs(last.X()-first.X()) < ClosingEpsilon &&
		math.Abs(last.Y()-first.Y()) < ClosingEpsilon {
		pts = pts[:len(pts)-1]
	}
	if closed {
		pts = append(pts, pts[0])
	}
	return pts
}

// SpacedPoints samples the path's curve segments at divisions positions
// equidistant in t, i.e. Point(i/divisions) for i = 0…divisions-1. For
// divisions ≤ 0, DefaultSpacedDivisions is used. If closed is true, the first
// point is appended again. A path without curve segments yields no points.
func (p *Path) SpacedPoints(divisions int, closed bool) ([]tessella.Pair, error) {
	if p.err != nil {
		return nil, p.err
	}
	if divisions <= 0 {
		divisions = DefaultSpacedDivisions
	}
	if p.curves.N() == 0 {
		return []tessella.Pair{}, nil
	}
	pts := make([]tessella.Pair, 0, divisions+1)
	for i := 0; i < divisions; i++ {
		pt, err := p.Point(float64(i) / float64(divisions))
		if err != nil {
			return nil, err
		}
		pts = append(pts, pt)
	}
	if closed {
		pts = append(pts, pts[0])
	}
	return pts, nil
}

// TransformedPoints tessellates the path with Points(divisions, false) and
// bends the result along each of bends in turn.
func (p *Path) TransformedPoints(divisions int, bends []*curve.CurvePath) ([]tessella.Pair, error) {
	pts, err := p.Points(divisions, false)
	if err != nil {
		return nil, err
	}
	return wrap(pts, bends)
}

// TransformedSpacedPoints is like TransformedPoints, but samples with
// SpacedPoints(divisions, false).
func (p *Path) TransformedSpacedPoints(divisions int, bends []*curve.CurvePath) ([]tessella.Pair, error) {
	pts, err := p.SpacedPoints(divisions, false)
	if err != nil {
		return nil, err
	}
	return wrap(pts, bends)
}

func wrap(pts []tessella.Pair, bends []*curve.CurvePath) ([]tessella.Pair, error) {
	var err error
	for i, bend := range bends {
		if pts, err = curve.WrapPoints(pts, bend); err != nil {
			return nil, fmt.Errorf("bend #%d: %w", i, err)
		}
	}
	return pts, nil
}

package path

import (
	"fmt"

	"github.com/npillmayer/tessella"
	"github.com/npillmayer/tessella/curve"
	"github.com/npillmayer/tessella/polygon"
)

// Path is a sequence of drawing commands, together with the curves they
// create. A path is a composite curve: Point(t) and the arc-length methods
// operate on the connected curve segments, ignoring MoveTo gaps.
//
// Use Nullpath or FromPoints to create a path.
type Path struct {
	curves  *curve.CurvePath
	actions []Action
	err     error
	// UseSpacedPoints makes Points sample the path at arc-length-equidistant
	// positions instead of per segment.
	UseSpacedPoints bool
}

var _ curve.Measurable = (*Path)(nil)

// Nullpath creates an empty path, to be extended by subsequent builder
// calls. The following example builds a closed triangle with one curved side:
//
//	p := Nullpath().MoveTo(0, 0).LineTo(4, 0).QuadraticCurveTo(3, 3, 0, 4).ClosePath()
//
// Builder calls on a path with an error are no-ops, see Err.
func Nullpath() *Path {
	return &Path{curves: curve.NewCurvePath()}
}

// FromPoints creates a polyline path: a MoveTo to the first point and a LineTo
// to each of the following points.
func FromPoints(pts ...tessella.Pair) *Path {
	p := Nullpath()
	if len(pts) == 0 {
		return p
	}
	p.MoveTo(pts[0].X(), pts[0].Y())
	for _, pt := range pts[1:] {
		p.LineTo(pt.X(), pt.Y())
	}
	return p
}

// Err returns the first error a builder call ran into, if any.
func (p *Path) Err() error {
	return p.err
}

// Actions returns a copy of the recorded drawing commands.
func (p *Path) Actions() []Action {
	actions := make([]Action, len(p.actions))
	copy(actions, p.actions)
	return actions
}

// Curves returns the segments created by the drawing commands.
// The slice must not be modified.
func (p *Path) Curves() []curve.Measurable {
	return p.curves.Curves()
}

// CurrentPoint returns the end point of the last drawing command.
// ok is false for an empty path.
func (p *Path) CurrentPoint() (pt tessella.Pair, ok bool) {
	if len(p.actions) == 0 {
		return tessella.Origin, false
	}
	return p.actions[len(p.actions)-1].End(), true
}

// current is used by builder calls which extend the path relative to the
// current point. It flags ErrNoCurrentPoint on an empty path.
func (p *Path) current(op string) (tessella.Pair, bool) {
	if p.err != nil {
		return tessella.Origin, false
	}
	pt, ok := p.CurrentPoint()
	if !ok {
		p.err = fmt.Errorf("%w: cannot %s", ErrNoCurrentPoint, op)
		tracer().Errorf("%v", p.err)
	}
	return pt, ok
}

func (p *Path) record(a Action, c curve.Measurable) *Path {
	p.actions = append(p.actions, a)
	if c != nil {
		p.curves.Add(c)
	}
	return p
}

// MoveTo sets the current point without drawing. Part of builder functionality.
func (p *Path) MoveTo(x, y float64) *Path {
	if p.err != nil {
		return p
	}
	return p.record(MoveTo{P: tessella.P(x, y)}, nil)
}

// LineTo draws a straight line from the current point to (x,y).
// Part of builder functionality.
func (p *Path) LineTo(x, y float64) *Path {
	start, ok := p.current("draw line")
	if !ok {
		return p
	}
	end := tessella.P(x, y)
	return p.record(LineTo{P: end}, curve.NewLineCurve(start, end))
}

// QuadraticCurveTo draws a quadratic Bézier segment from the current point to
// (x,y) with control point (cx,cy). Part of builder functionality.
func (p *Path) QuadraticCurveTo(cx, cy, x, y float64) *Path {
	start, ok := p.current("draw quadratic curve")
	if !ok {
		return p
	}
	c, end := tessella.P(cx, cy), tessella.P(x, y)
	return p.record(QuadraticTo{C: c, P: end}, curve.NewQuadraticBezierCurve(start, c, end))
}

// BezierCurveTo draws a cubic Bézier segment from the current point to (x,y)
// with control points (c1x,c1y) and (c2x,c2y). Part of builder functionality.
func (p *Path) BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64) *Path {
	start, ok := p.current("draw cubic curve")
	if !ok {
		return p
	}
	c1, c2, end := tessella.P(c1x, c1y), tessella.P(c2x, c2y), tessella.P(x, y)
	return p.record(CubicTo{C1: c1, C2: c2, P: end}, curve.NewCubicBezierCurve(start, c1, c2, end))
}

// SplineThru draws a Catmull-Rom spline from the current point through pts.
// Calling it without points is a no-op. Part of builder functionality.
func (p *Path) SplineThru(pts ...tessella.Pair) *Path {
	start, ok := p.current("draw spline")
	if !ok {
		return p
	}
	if len(pts) == 0 {
		tracer().Debugf("spline without knots ignored")
		return p
	}
	knots := make([]tessella.Pair, 0, len(pts)+1)
	knots = append(knots, start)
	knots = append(knots, pts...)
	raw := make([]tessella.Pair, len(pts))
	copy(raw, pts)
	return p.record(SplineThru{Points: raw}, curve.NewSplineCurve(knots))
}

// Arc draws a circular arc. The center is given relative to the current
// point. Part of builder functionality.
func (p *Path) Arc(dx, dy, radius, start, end float64, clockwise bool) *Path {
	return p.Ellipse(dx, dy, radius, radius, start, end, clockwise, 0)
}

// Absarc draws a circular arc around (x,y). Part of builder functionality.
func (p *Path) Absarc(x, y, radius, start, end float64, clockwise bool) *Path {
	return p.Absellipse(x, y, radius, radius, start, end, clockwise, 0)
}

// Ellipse draws an elliptical arc. The center is given relative to the current
// point. Part of builder functionality.
func (p *Path) Ellipse(dx, dy, rx, ry, start, end float64, clockwise bool, rotation float64) *Path {
	cur, ok := p.current("draw ellipse")
	if !ok {
		return p
	}
	return p.Absellipse(cur.X()+dx, cur.Y()+dy, rx, ry, start, end, clockwise, rotation)
}

// Absellipse draws an elliptical arc around (x,y) between angle start and
// angle end, rotated by rotation. Angles are in radians. Arcs not drawn
// clockwise are traced from end back to start, and the current point is
// left where the arc ends.
// Absellipse does not connect the arc to the current point.
// Part of builder functionality.
func (p *Path) Absellipse(x, y, rx, ry, start, end float64, clockwise bool, rotation float64) *Path {
	if p.err != nil {
		return p
	}
	a := Ellipse{
		Center:     tessella.P(x, y),
		RX:         rx,
		RY:         ry,
		StartAngle: start,
		EndAngle:   end,
		Clockwise:  clockwise,
		Rotation:   rotation,
	}
	arc := a.arc()
	last, err := arc.Point(1)
	if err != nil {
		p.err = err
		return p
	}
	a.P = last
	return p.record(a, curve.Measure(arc))
}

// ClosePath draws a straight line from the current point back to the start
// of the current subpath, if they differ. Points are compared exactly.
// Part of builder functionality.
func (p *Path) ClosePath() *Path {
	if p.err != nil {
		return p
	}
	start, ok, err := p.subpathStart()
	if err != nil {
		p.err = err
		return p
	} else if !ok {
		return p
	}
	end, _ := p.CurrentPoint()
	if start == end {
		return p
	}
	return p.record(LineTo{P: start}, curve.NewLineCurve(end, start))
}

// subpathStart returns the point the current subpath starts at: the target
// of the last MoveTo, or the start of the first segment if the path has no
// MoveTo. ok is false if the current subpath has no segments.
func (p *Path) subpathStart() (pt tessella.Pair, ok bool, err error) {
	for i := len(p.actions) - 1; i >= 0; i-- {
		if m, isMove := p.actions[i].(MoveTo); isMove {
			return m.P, i < len(p.actions)-1, nil
		}
	}
	curves := p.curves.Curves()
	if len(curves) == 0 {
		return tessella.Origin, false, nil
	}
	if pt, err = curves[0].Point(0); err != nil {
		return tessella.Origin, false, err
	}
	return pt, true, nil
}

// apply replays a recorded action.
func (p *Path) apply(action Action) *Path {
	switch a := action.(type) {
	case MoveTo:
		return p.MoveTo(a.P.X(), a.P.Y())
	case LineTo:
		return p.LineTo(a.P.X(), a.P.Y())
	case QuadraticTo:
		return p.QuadraticCurveTo(a.C.X(), a.C.Y(), a.P.X(), a.P.Y())
	case CubicTo:
		return p.BezierCurveTo(a.C1.X(), a.C1.Y(), a.C2.X(), a.C2.Y(), a.P.X(), a.P.Y())
	case SplineThru:
		return p.SplineThru(a.Points...)
	case Ellipse:
		return p.Absellipse(a.Center.X(), a.Center.Y(), a.RX, a.RY, a.StartAngle, a.EndAngle,
			a.Clockwise, a.Rotation)
	}
	panic(fmt.Sprintf("unknown path action %T", action))
}

// --- Composite curve --------------------------------------------------------

// N returns the number of curve segments (not actions) of the path.
func (p *Path) N() int {
	return p.curves.N()
}

// Point returns the point at parameter t of the connected curve segments,
// t being interpreted as a fraction of the total length.
func (p *Path) Point(t float64) (tessella.Pair, error) {
	return p.curves.Point(t)
}

// CurveLengths returns the cumulative lengths of the path's segments.
func (p *Path) CurveLengths() ([]float64, error) {
	return p.curves.CurveLengths()
}

// Lengths returns the cumulative arc lengths of the path, sampled at
// divisions+1 equidistant values of t.
func (p *Path) Lengths(divisions int) ([]float64, error) {
	return p.curves.Lengths(divisions)
}

// Length returns the total length of the path's segments.
func (p *Path) Length() (float64, error) {
	return p.curves.Length()
}

// UpdateArcLengths re-calculates the cached lengths of the path.
func (p *Path) UpdateArcLengths() error {
	return p.curves.UpdateArcLengths()
}

// UtoT maps a fraction u of the arc length to the parameter t.
func (p *Path) UtoT(u float64) (float64, error) {
	return p.curves.UtoT(u)
}

// DistanceToT maps an arc length d to the parameter t.
func (p *Path) DistanceToT(d float64) (float64, error) {
	return p.curves.DistanceToT(d)
}

// PointAt returns the point at fraction u of the arc length.
func (p *Path) PointAt(u float64) (tessella.Pair, error) {
	return p.curves.PointAt(u)
}

// BoundingBox returns the bounds of the path's segments, each sampled
// with divisions.
func (p *Path) BoundingBox(divisions int) (polygon.Rect, error) {
	if p.err != nil {
		return polygon.Rect{}, p.err
	}
	pts, err := p.Points(divisions, false)
	if err != nil {
		return polygon.Rect{}, err
	}
	return polygon.Bounds(pts), nil
}

package path

import (
	"fmt"

	"github.com/npillmayer/tessella"
	"github.com/npillmayer/tessella/curve"
)

// Kind discriminates the variants of Action.
type Kind int8

// Kinds of drawing commands.
const (
	KindMoveTo Kind = iota
	KindLineTo
	KindQuadraticTo
	KindCubicTo
	KindSplineThru
	KindEllipse
)

func (k Kind) String() string {
	switch k {
	case KindMoveTo:
		return "moveTo"
	case KindLineTo:
		return "lineTo"
	case KindQuadraticTo:
		return "quadraticCurveTo"
	case KindCubicTo:
		return "bezierCurveTo"
	case KindSplineThru:
		return "splineThru"
	case KindEllipse:
		return "ellipse"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Action is a recorded drawing command. The set of variants is closed:
// MoveTo, LineTo, QuadraticTo, CubicTo, SplineThru and Ellipse.
type Action interface {
	// End is the point the command leaves the pen at.
	End() tessella.Pair
	Kind() Kind
	isAction()
}

// MoveTo lifts the pen and sets it down at P.
type MoveTo struct {
	P tessella.Pair
}

// LineTo draws a straight line to P.
type LineTo struct {
	P tessella.Pair
}

// QuadraticTo draws a quadratic Bézier segment with control point C to P.
type QuadraticTo struct {
	C, P tessella.Pair
}

// CubicTo draws a cubic Bézier segment with control points C1 and C2 to P.
type CubicTo struct {
	C1, C2, P tessella.Pair
}

// SplineThru draws a Catmull-Rom spline through Points, starting at the
// current point. Points holds the knots as given, i.e. without the current
// point.
type SplineThru struct {
	Points []tessella.Pair
}

// Ellipse draws an elliptical arc. Arcs drawn clockwise run from StartAngle
// to EndAngle, all others from EndAngle back to StartAngle. P is the point
// where the arc ends.
type Ellipse struct {
	Center     tessella.Pair
	RX, RY     float64
	StartAngle float64 // radians
	EndAngle   float64
	Clockwise  bool
	Rotation   float64
	P          tessella.Pair
}

// arc returns the curve traced by the ellipse action. The sweep is taken
// as is, without normalization to the arc's direction flag.
func (a Ellipse) arc() curve.EllipseCurve {
	from, to := a.StartAngle, a.EndAngle
	if !a.Clockwise {
		from, to = to, from
	}
	return curve.EllipseCurve{
		Center:    a.Center,
		RX:        a.RX,
		RY:        a.RY,
		Start:     from,
		End:       to,
		Clockwise: to < from,
		Rotation:  a.Rotation,
	}
}

func (a MoveTo) End() tessella.Pair      { return a.P }
func (a LineTo) End() tessella.Pair      { return a.P }
func (a QuadraticTo) End() tessella.Pair { return a.P }
func (a CubicTo) End() tessella.Pair     { return a.P }
func (a Ellipse) End() tessella.Pair     { return a.P }

// End returns the last knot of the spline.
func (a SplineThru) End() tessella.Pair {
	if len(a.Points) == 0 {
		return tessella.Origin
	}
	return a.Points[len(a.Points)-1]
}

func (MoveTo) Kind() Kind      { return KindMoveTo }
func (LineTo) Kind() Kind      { return KindLineTo }
func (QuadraticTo) Kind() Kind { return KindQuadraticTo }
func (CubicTo) Kind() Kind     { return KindCubicTo }
func (SplineThru) Kind() Kind  { return KindSplineThru }
func (Ellipse) Kind() Kind     { return KindEllipse }

func (MoveTo) isAction()      {}
func (LineTo) isAction()      {}
func (QuadraticTo) isAction() {}
func (CubicTo) isAction()     {}
func (SplineThru) isAction()  {}
func (Ellipse) isAction()     {}

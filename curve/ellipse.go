package curve

import (
	"math"

	"github.com/npillmayer/tessella"
)

const twoPi = 2 * math.Pi

// EllipseCurve is an elliptical arc around Center with radii RX and RY,
// from angle Start to angle End (radians, measured from the positive x-axis).
// The arc runs counter-clockwise unless Clockwise is set. A non-zero Rotation
// rotates the ellipse counter-clockwise around its center.
type EllipseCurve struct {
	Center     tessella.Pair
	RX, RY     float64
	Start, End float64
	Clockwise  bool
	Rotation   float64
}

// NewEllipseCurve creates a measurable elliptical arc.
func NewEllipseCurve(center tessella.Pair, rx, ry, start, end float64, clockwise bool,
	rotation float64) *Measured {
	return Measure(EllipseCurve{
		Center:    center,
		RX:        rx,
		RY:        ry,
		Start:     start,
		End:       end,
		Clockwise: clockwise,
		Rotation:  rotation,
	})
}

// NewArcCurve creates a measurable circular arc.
func NewArcCurve(center tessella.Pair, radius, start, end float64, clockwise bool) *Measured {
	return NewEllipseCurve(center, radius, radius, start, end, clockwise, 0)
}

// sweep returns the signed angle the arc covers.
func (e EllipseCurve) sweep() float64 {
	delta := e.End - e.Start
	samePoints := math.Abs(delta) < epsilon64
	for delta < 0 {
		delta += twoPi
	}
	for delta > twoPi {
		delta -= twoPi
	}
	if delta < epsilon64 {
		if samePoints {
			delta = 0
		} else {
			delta = twoPi
		}
	}
	if e.Clockwise && !samePoints {
		if delta == twoPi {
			delta = -twoPi
		} else {
			delta -= twoPi
		}
	}
	return delta
}

// Point returns the point at angle Start + t·sweep, the sweep being
// normalized to at most one full turn in the arc's direction.
func (e EllipseCurve) Point(t float64) (tessella.Pair, error) {
	angle := e.Start + t*e.sweep()
	sin, cos := math.Sincos(angle)
	pt := tessella.P(e.Center.X()+e.RX*cos, e.Center.Y()+e.RY*sin)
	if e.Rotation != 0 {
		pt = pt.Rotatedaround(e.Center, e.Rotation)
	}
	return pt, nil
}

// machine epsilon for float64
const epsilon64 = 2.220446049250313e-16

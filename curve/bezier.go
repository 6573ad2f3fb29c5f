package curve

import (
	"github.com/npillmayer/tessella"
)

// LineCurve is a straight line from V1 to V2.
type LineCurve struct {
	V1, V2 tessella.Pair
}

// NewLineCurve creates a measurable straight line.
func NewLineCurve(v1, v2 tessella.Pair) *Measured {
	return Measure(LineCurve{V1: v1, V2: v2})
}

// Point interpolates linearly between the end points.
func (l LineCurve) Point(t float64) (tessella.Pair, error) {
	if t == 1 {
		return l.V2, nil
	}
	return tessella.Lerp(l.V1, l.V2, t), nil
}

// Tangent is constant for lines.
func (l LineCurve) Tangent(t float64) (tessella.Pair, error) {
	return unitTangent(l.V2-l.V1, t)
}

// QuadraticBezierCurve is a quadratic Bézier from V0 to V2 with control point V1.
type QuadraticBezierCurve struct {
	V0, V1, V2 tessella.Pair
}

// NewQuadraticBezierCurve creates a measurable quadratic Bézier curve.
func NewQuadraticBezierCurve(v0, v1, v2 tessella.Pair) *Measured {
	return Measure(QuadraticBezierCurve{V0: v0, V1: v1, V2: v2})
}

// Point evaluates the Bernstein form of the curve at t.
func (q QuadraticBezierCurve) Point(t float64) (tessella.Pair, error) {
	return tessella.P(
		B2(t, q.V0.X(), q.V1.X(), q.V2.X()),
		B2(t, q.V0.Y(), q.V1.Y(), q.V2.Y()),
	), nil
}

// Tangent returns the normalized derivative at t.
func (q QuadraticBezierCurve) Tangent(t float64) (tessella.Pair, error) {
	return unitTangent(tessella.P(
		TangentQuadraticBezier(t, q.V0.X(), q.V1.X(), q.V2.X()),
		TangentQuadraticBezier(t, q.V0.Y(), q.V1.Y(), q.V2.Y()),
	), t)
}

// CubicBezierCurve is a cubic Bézier from V0 to V3 with control points V1 and V2.
type CubicBezierCurve struct {
	V0, V1, V2, V3 tessella.Pair
}

// NewCubicBezierCurve creates a measurable cubic Bézier curve.
func NewCubicBezierCurve(v0, v1, v2, v3 tessella.Pair) *Measured {
	return Measure(CubicBezierCurve{V0: v0, V1: v1, V2: v2, V3: v3})
}

// Point evaluates the Bernstein form of the curve at t.
func (c CubicBezierCurve) Point(t float64) (tessella.Pair, error) {
	return tessella.P(
		B3(t, c.V0.X(), c.V1.X(), c.V2.X(), c.V3.X()),
		B3(t, c.V0.Y(), c.V1.Y(), c.V2.Y(), c.V3.Y()),
	), nil
}

// Tangent returns the normalized derivative at t.
func (c CubicBezierCurve) Tangent(t float64) (tessella.Pair, error) {
	return unitTangent(tessella.P(
		TangentCubicBezier(t, c.V0.X(), c.V1.X(), c.V2.X(), c.V3.X()),
		TangentCubicBezier(t, c.V0.Y(), c.V1.Y(), c.V2.Y(), c.V3.Y()),
	), t)
}

package curve

import (
	"fmt"

	"github.com/npillmayer/tessella"
)

// Curve is a parametric curve in 2D, evaluated for t ∈ [0,1].
type Curve interface {
	// Point returns the point at parameter t.
	Point(t float64) (tessella.Pair, error)
}

// Measurable is a curve which knows its arc length and is able to map
// arc length back to its parameter.
//
// Leaf curves become measurable by wrapping them into a Measured. Composite
// curves implement the interface themselves, as their total length is the sum
// of their parts rather than a sampled approximation of their own.
type Measurable interface {
	Curve
	// Lengths returns the cumulative arc lengths at divisions+1 equidistant
	// parameter values. The returned slice is shared and must not be modified.
	Lengths(divisions int) ([]float64, error)
	// Length returns the total arc length.
	Length() (float64, error)
	// UpdateArcLengths forces a re-calculation of cached lengths.
	UpdateArcLengths() error
	// UtoT maps a fraction u ∈ [0,1] of the arc length to a curve parameter.
	UtoT(u float64) (float64, error)
	// DistanceToT maps an absolute arc length to a curve parameter.
	DistanceToT(d float64) (float64, error)
	// PointAt returns the point at fraction u of the arc length.
	PointAt(u float64) (tessella.Pair, error)
}

// Tangenter is implemented by curves which are able to compute their
// tangent directly. Tangent will then use it instead of approximating.
type Tangenter interface {
	Tangent(t float64) (tessella.Pair, error)
}

// Points samples a curve at divisions+1 parameter values, equidistant in t.
// The first point is Point(0), the last one Point(1).
func Points(c Curve, divisions int) ([]tessella.Pair, error) {
	if divisions <= 0 {
		divisions = DefaultDivisions
	}
	pts := make([]tessella.Pair, 0, divisions+1)
	for d := 0; d <= divisions; d++ {
		pt, err := c.Point(float64(d) / float64(divisions))
		if err != nil {
			return nil, err
		}
		pts = append(pts, pt)
	}
	return pts, nil
}

// SpacedPoints samples a curve at divisions+1 points, equidistant in arc length.
func SpacedPoints(c Measurable, divisions int) ([]tessella.Pair, error) {
	if divisions <= 0 {
		divisions = DefaultDivisions
	}
	pts := make([]tessella.Pair, 0, divisions+1)
	for d := 0; d <= divisions; d++ {
		pt, err := c.PointAt(float64(d) / float64(divisions))
		if err != nil {
			return nil, err
		}
		pts = append(pts, pt)
	}
	return pts, nil
}

// Tangent returns the unit tangent vector at parameter t.
//
// Curves implementing Tangenter compute it themselves. For all others the
// tangent is approximated by a central difference with step TangentDelta,
// one-sided at the ends of the parameter range.
func Tangent(c Curve, t float64) (tessella.Pair, error) {
	if tc, ok := c.(Tangenter); ok {
		return tc.Tangent(t)
	}
	return approxTangent(c, t)
}

func approxTangent(c Curve, t float64) (tessella.Pair, error) {
	t1, t2 := t-TangentDelta, t+TangentDelta
	if t1 < 0 {
		t1 = 0
	}
	if t2 > 1 {
		t2 = 1
	}
	pt1, err := c.Point(t1)
	if err != nil {
		return tessella.Origin, err
	}
	pt2, err := c.Point(t2)
	if err != nil {
		return tessella.Origin, err
	}
	return unitTangent(pt2-pt1, t)
}

// TangentAt returns the unit tangent vector at fraction u of the arc length.
func TangentAt(c Measurable, u float64) (tessella.Pair, error) {
	t, err := c.UtoT(u)
	if err != nil {
		return tessella.Origin, err
	}
	return Tangent(c, t)
}

func unitTangent(v tessella.Pair, t float64) (tessella.Pair, error) {
	if v.Abs() == 0 {
		return tessella.Origin, fmt.Errorf("%w: no tangent direction at t=%g", ErrDegenerateGeometry, t)
	}
	return v.Unit(), nil
}

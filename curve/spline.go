package curve

import (
	"fmt"
	"math"

	"github.com/npillmayer/tessella"
)

// SplineCurve is a uniform Catmull-Rom spline through a sequence of points.
// The first and last point are repeated as outer neighbours.
type SplineCurve struct {
	Points []tessella.Pair
}

// NewSplineCurve creates a measurable spline through pts. The slice is copied.
func NewSplineCurve(pts []tessella.Pair) *Measured {
	return Measure(SplineCurve{Points: append([]tessella.Pair(nil), pts...)})
}

// Point returns the point at t on the piecewise Catmull-Rom curve.
func (s SplineCurve) Point(t float64) (tessella.Pair, error) {
	n := len(s.Points)
	if n == 0 {
		return tessella.Origin, fmt.Errorf("%w: spline without points", ErrDegenerateGeometry)
	}
	point := float64(n-1) * t
	i := int(math.Floor(point))
	weight := point - float64(i)
	if i < 0 {
		i, weight = 0, point
	} else if i > n-1 {
		i, weight = n-1, point-float64(n-1)
	}
	p0 := s.Points[max(i-1, 0)]
	p1 := s.Points[i]
	p2 := s.Points[min(i+1, n-1)]
	p3 := s.Points[min(i+2, n-1)]
	var px, py CubicPoly
	px.InitCatmullRom(p0.X(), p1.X(), p2.X(), p3.X(), 0.5)
	py.InitCatmullRom(p0.Y(), p1.Y(), p2.Y(), p3.Y(), 0.5)
	return tessella.P(px.Calc(weight), py.Calc(weight)), nil
}

// CatmullRomType selects the knot parametrization of a CatmullRomCurve.
type CatmullRomType int

const (
	// Centripetal uses the square root of the chord lengths as knot distances.
	// It avoids cusps and self-intersections within a segment.
	Centripetal CatmullRomType = iota
	// Chordal uses the chord lengths as knot distances.
	Chordal
	// Uniform uses equidistant knots and a tension parameter.
	Uniform
)

func (crt CatmullRomType) String() string {
	switch crt {
	case Centripetal:
		return "centripetal"
	case Chordal:
		return "chordal"
	case Uniform:
		return "catmullrom"
	}
	return fmt.Sprintf("CatmullRomType(%d)", int(crt))
}

// CatmullRomCurve is a Catmull-Rom spline through a sequence of points,
// optionally closed, with selectable parametrization. Open curves
// extrapolate virtual end knots by mirroring.
type CatmullRomCurve struct {
	Points  []tessella.Pair
	Closed  bool
	Type    CatmullRomType
	Tension float64 // used for Type == Uniform only; 0 means 0.5
}

// NewCatmullRomCurve creates a measurable centripetal Catmull-Rom curve.
func NewCatmullRomCurve(pts []tessella.Pair, closed bool) *Measured {
	return Measure(CatmullRomCurve{
		Points: append([]tessella.Pair(nil), pts...),
		Closed: closed,
	})
}

// Point returns the point at t on the Catmull-Rom spline.
func (cr CatmullRomCurve) Point(t float64) (tessella.Pair, error) {
	l := len(cr.Points)
	if l < 2 {
		return tessella.Origin, fmt.Errorf("%w: Catmull-Rom curve needs 2 points, has %d",
			ErrDegenerateGeometry, l)
	}
	segments := l - 1
	if cr.Closed {
		segments = l
	}
	point := float64(segments) * t
	i := int(math.Floor(point))
	weight := point - float64(i)
	if cr.Closed {
		i = ((i % l) + l) % l
	} else if i >= l-1 {
		i, weight = l-2, point-float64(l-2)
	} else if i < 0 {
		i, weight = 0, point
	}
	var p0, p3 tessella.Pair
	if cr.Closed || i > 0 {
		p0 = cr.Points[(i-1+l)%l]
	} else {
		p0 = cr.Points[0] + (cr.Points[0] - cr.Points[1])
	}
	p1 := cr.Points[i%l]
	p2 := cr.Points[(i+1)%l]
	if cr.Closed || i+2 < l {
		p3 = cr.Points[(i+2)%l]
	} else {
		p3 = cr.Points[l-1] + (cr.Points[l-1] - cr.Points[l-2])
	}
	var px, py CubicPoly
	if cr.Type == Uniform {
		tension := cr.Tension
		if tension == 0 {
			tension = 0.5
		}
		px.InitCatmullRom(p0.X(), p1.X(), p2.X(), p3.X(), tension)
		py.InitCatmullRom(p0.Y(), p1.Y(), p2.Y(), p3.Y(), tension)
	} else {
		pow := 0.25
		if cr.Type == Chordal {
			pow = 0.5
		}
		dt0 := math.Pow(sqdist(p0, p1), pow)
		dt1 := math.Pow(sqdist(p1, p2), pow)
		dt2 := math.Pow(sqdist(p2, p3), pow)
		// repeated points
		if dt1 < 1e-4 {
			dt1 = 1.0
		}
		if dt0 < 1e-4 {
			dt0 = dt1
		}
		if dt2 < 1e-4 {
			dt2 = dt1
		}
		px.InitNonuniformCatmullRom(p0.X(), p1.X(), p2.X(), p3.X(), dt0, dt1, dt2)
		py.InitNonuniformCatmullRom(p0.Y(), p1.Y(), p2.Y(), p3.Y(), dt0, dt1, dt2)
	}
	return tessella.P(px.Calc(weight), py.Calc(weight)), nil
}

func sqdist(a, b tessella.Pair) float64 {
	d := b - a
	return d.X()*d.X() + d.Y()*d.Y()
}

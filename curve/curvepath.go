package curve

import (
	"fmt"

	"github.com/npillmayer/tessella"
	"github.com/npillmayer/tessella/polygon"
)

// CurvePath is a composite curve: an ordered sequence of child curves,
// parametrized by arc length across all of its children.
//
// A CurvePath owns its children. Adding children invalidates the cached
// cumulative lengths; changing a child after adding it requires a call to
// UpdateArcLengths.
type CurvePath struct {
	curves     []Measurable
	cumulative []float64 // cumulative child lengths
	dirty      bool      // cumulative needs rebuild
	arcs       ArcTable  // sampled arc lengths of the composite itself
}

var _ Measurable = (*CurvePath)(nil)

// NewCurvePath creates a composite curve from a sequence of curves.
func NewCurvePath(curves ...Measurable) *CurvePath {
	cp := &CurvePath{}
	for _, c := range curves {
		cp.Add(c)
	}
	return cp
}

// Add appends a child curve. Part of builder functionality.
func (cp *CurvePath) Add(c Measurable) *CurvePath {
	cp.curves = append(cp.curves, c)
	cp.dirty = true
	cp.arcs.Invalidate()
	return cp
}

// Curves returns the child curves. The slice must not be modified.
func (cp *CurvePath) Curves() []Measurable {
	return cp.curves
}

// N returns the number of child curves.
func (cp *CurvePath) N() int {
	return len(cp.curves)
}

// SetArcLengthDivisions overrides the number of chords the arc-length table
// of the composite is built from.
func (cp *CurvePath) SetArcLengthDivisions(n int) {
	cp.arcs.Divisions = n
	cp.arcs.Invalidate()
}

// StartAndEnd returns the start point of the first child and the end point
// of the last child. ok is false for an empty path.
func (cp *CurvePath) StartAndEnd() (start, end tessella.Pair, ok bool, err error) {
	if len(cp.curves) == 0 {
		return tessella.Origin, tessella.Origin, false, nil
	}
	if start, err = cp.curves[0].Point(0); err != nil {
		return
	}
	end, err = cp.curves[len(cp.curves)-1].Point(1)
	return start, end, err == nil, err
}

// ClosePath connects the end of the last child to the start of the first
// child by a straight line, if they differ. Points are compared exactly.
func (cp *CurvePath) ClosePath() error {
	start, end, ok, err := cp.StartAndEnd()
	if err != nil || !ok {
		return err
	}
	if start != end {
		cp.Add(NewLineCurve(end, start))
	}
	return nil
}

// CurveLengths returns the cumulative lengths of the child curves.
// The slice is shared and must not be modified.
func (cp *CurvePath) CurveLengths() ([]float64, error) {
	if !cp.dirty && len(cp.cumulative) == len(cp.curves) {
		return cp.cumulative, nil
	}
	lengths := make([]float64, len(cp.curves))
	var sum float64
	for i, c := range cp.curves {
		l, err := c.Length()
		if err != nil {
			return nil, err
		}
		sum += l
		lengths[i] = sum
	}
	cp.cumulative = lengths
	cp.dirty = false
	return cp.cumulative, nil
}

// Length returns the total length as the sum of the child lengths.
// It does not sample the composite curve.
func (cp *CurvePath) Length() (float64, error) {
	lengths, err := cp.CurveLengths()
	if err != nil || len(lengths) == 0 {
		return 0, err
	}
	return lengths[len(lengths)-1], nil
}

// Point returns the point at parameter t, where t is interpreted as a
// fraction of the total length. The child containing the target distance
// is evaluated at the corresponding fraction of its own length.
func (cp *CurvePath) Point(t float64) (tessella.Pair, error) {
	lengths, err := cp.CurveLengths()
	if err != nil {
		return tessella.Origin, err
	}
	total := 0.0
	if len(lengths) > 0 {
		total = lengths[len(lengths)-1]
	}
	d := t * total
	for i, cum := range lengths {
		if cum < d {
			continue
		}
		c := cp.curves[i]
		l, err := c.Length()
		if err != nil {
			return tessella.Origin, err
		}
		var u float64
		if l > 0 {
			u = 1 - (cum-d)/l
		}
		return c.PointAt(u)
	}
	tracer().Errorf("composite curve of length %g has no child at distance %g", total, d)
	return tessella.Origin, fmt.Errorf("%w: t=%g, d=%g, %d curves", ErrLookupFailure, t, d, len(lengths))
}

// Lengths samples the composite curve and returns the cumulative arc lengths
// at divisions+1 equidistant values of t.
func (cp *CurvePath) Lengths(divisions int) ([]float64, error) {
	return cp.arcs.Lengths(cp, divisions)
}

// UpdateArcLengths re-calculates the child length table and the sampled
// arc lengths of the composite. Children's own tables are left alone.
func (cp *CurvePath) UpdateArcLengths() error {
	cp.dirty = true
	if _, err := cp.CurveLengths(); err != nil {
		return err
	}
	return cp.arcs.Update(cp)
}

// UtoT maps a fraction u of the sampled arc length to the parameter t.
func (cp *CurvePath) UtoT(u float64) (float64, error) {
	return cp.arcs.UtoT(cp, u)
}

// DistanceToT maps an arc length d to the parameter t.
func (cp *CurvePath) DistanceToT(d float64) (float64, error) {
	return cp.arcs.DistanceToT(cp, d)
}

// PointAt returns the point at fraction u of the sampled arc length.
func (cp *CurvePath) PointAt(u float64) (tessella.Pair, error) {
	t, err := cp.UtoT(u)
	if err != nil {
		return tessella.Origin, err
	}
	return cp.Point(t)
}

// BoundingBox returns the axis-aligned bounds of the curve, sampled at
// divisions+1 points.
func (cp *CurvePath) BoundingBox(divisions int) (polygon.Rect, error) {
	pts, err := Points(cp, divisions)
	if err != nil {
		return polygon.Rect{}, err
	}
	return polygon.Bounds(pts), nil
}

// WrapPoints bends a sequence of points along a curve. A point's
// x-coordinate is taken as a distance along bend, its y-coordinate as an
// offset along the bend's normal at that position. The input is unchanged.
func WrapPoints(pts []tessella.Pair, bend Measurable) ([]tessella.Pair, error) {
	wrapped := make([]tessella.Pair, len(pts))
	for i, p := range pts {
		t, err := bend.DistanceToT(p.X())
		if err != nil {
			return nil, err
		}
		onBend, err := bend.Point(t)
		if err != nil {
			return nil, err
		}
		tangent, err := Tangent(bend, t)
		if err != nil {
			return nil, err
		}
		wrapped[i] = onBend + tangent.Normal().Scaled(p.Y())
	}
	return wrapped, nil
}

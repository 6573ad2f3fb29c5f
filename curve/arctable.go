package curve

import (
	"fmt"

	"github.com/npillmayer/tessella"
)

// ArcTable caches the cumulative arc lengths of a curve, sampled at
// equidistant parameter values.
//
// The cache is valid iff it holds divisions+1 entries and has not been
// invalidated. ArcTable does not know its curve; the curve is handed in on
// every call, which lets leaf and composite curves share the implementation.
type ArcTable struct {
	Divisions   int // number of chords; 0 means DefaultArcLengthDivisions
	cache       []float64
	needsUpdate bool
}

func (at *ArcTable) divisions(n int) int {
	if n > 0 {
		return n
	}
	if at.Divisions > 0 {
		return at.Divisions
	}
	return DefaultArcLengthDivisions
}

// Invalidate marks the cache as stale. It will be rebuilt on next access.
func (at *ArcTable) Invalidate() {
	at.needsUpdate = true
}

// Lengths returns the cumulative arc lengths of c at n+1 parameter values
// 0, 1/n, …, 1. For n ≤ 0 the table's default division count is used.
// The result is cached; the returned slice must not be modified.
func (at *ArcTable) Lengths(c Curve, n int) ([]float64, error) {
	n = at.divisions(n)
	if len(at.cache) == n+1 && !at.needsUpdate {
		return at.cache, nil
	}
	tracer().Debugf("rebuilding arc length table with %d divisions", n)
	lengths := make([]float64, n+1)
	last, err := c.Point(0)
	if err != nil {
		return nil, err
	}
	var sum float64
	for p := 1; p <= n; p++ {
		current, err := c.Point(float64(p) / float64(n))
		if err != nil {
			return nil, err
		}
		sum += tessella.Dist(last, current)
		lengths[p] = sum
		last = current
	}
	at.cache = lengths
	at.needsUpdate = false
	return at.cache, nil
}

// Update forces a re-calculation of the table.
func (at *ArcTable) Update(c Curve) error {
	at.needsUpdate = true
	_, err := at.Lengths(c, 0)
	return err
}

// Length returns the total arc length of c, as approximated by the table.
func (at *ArcTable) Length(c Curve) (float64, error) {
	lengths, err := at.Lengths(c, 0)
	if err != nil {
		return 0, err
	}
	return lengths[len(lengths)-1], nil
}

// UtoT maps a fraction u of the total arc length of c to a parameter t.
// u=0 maps to 0, u=1 maps to 1.
func (at *ArcTable) UtoT(c Curve, u float64) (float64, error) {
	lengths, err := at.Lengths(c, 0)
	if err != nil {
		return 0, err
	}
	total := lengths[len(lengths)-1]
	if u <= 0 {
		return 0, nil
	} else if total <= 0 {
		return 0, fmt.Errorf("%w: curve has zero length", ErrDegenerateGeometry)
	} else if u >= 1 {
		return 1, nil
	}
	return mapDistance(lengths, u*total)
}

// DistanceToT maps an arc length distance d, measured from the start of c,
// to a parameter t.
func (at *ArcTable) DistanceToT(c Curve, d float64) (float64, error) {
	lengths, err := at.Lengths(c, 0)
	if err != nil {
		return 0, err
	}
	return mapDistance(lengths, d)
}

// mapDistance does a binary search for the largest index with
// lengths[index] ≤ target and interpolates linearly within the bracket.
func mapDistance(lengths []float64, target float64) (float64, error) {
	n := len(lengths)
	total := lengths[n-1]
	if target <= 0 {
		return 0, nil
	} else if total <= 0 {
		return 0, fmt.Errorf("%w: curve has zero length", ErrDegenerateGeometry)
	}
	low, high := 0, n-1
	for low <= high {
		i := low + (high-low)/2
		if cmp := lengths[i] - target; cmp < 0 {
			low = i + 1
		} else if cmp > 0 {
			high = i - 1
		} else {
			return float64(i) / float64(n-1), nil
		}
	}
	i := high
	if i < 0 {
		return 0, nil
	} else if i >= n-1 {
		return 1, nil
	}
	before, after := lengths[i], lengths[i+1]
	segment := after - before
	if segment <= 0 {
		return 0, fmt.Errorf("%w: zero-length bracket at index %d", ErrDegenerateGeometry, i)
	}
	fraction := (target - before) / segment
	return (float64(i) + fraction) / float64(n-1), nil
}

// --- Measured --------------------------------------------------------------

// Measured makes a leaf curve measurable by attaching an ArcTable to it.
type Measured struct {
	Curve
	arcs ArcTable
}

var _ Measurable = (*Measured)(nil)

// Measure wraps a curve into a Measured.
func Measure(c Curve) *Measured {
	return &Measured{Curve: c}
}

// Unwrap returns the wrapped curve.
func (m *Measured) Unwrap() Curve {
	return m.Curve
}

// SetArcLengthDivisions overrides the number of chords the arc-length table
// is built from.
func (m *Measured) SetArcLengthDivisions(n int) {
	m.arcs.Divisions = n
	m.arcs.Invalidate()
}

// Lengths returns the cumulative arc lengths of the wrapped curve at
// divisions+1 equidistant parameter values.
func (m *Measured) Lengths(divisions int) ([]float64, error) {
	return m.arcs.Lengths(m.Curve, divisions)
}

// Length returns the arc length of the wrapped curve.
func (m *Measured) Length() (float64, error) {
	return m.arcs.Length(m.Curve)
}

// UpdateArcLengths discards the cached arc-length table and rebuilds it.
func (m *Measured) UpdateArcLengths() error {
	return m.arcs.Update(m.Curve)
}

// UtoT maps a fraction u of the arc length to the curve parameter t.
func (m *Measured) UtoT(u float64) (float64, error) {
	return m.arcs.UtoT(m.Curve, u)
}

// DistanceToT maps an arc length d to the curve parameter t.
func (m *Measured) DistanceToT(d float64) (float64, error) {
	return m.arcs.DistanceToT(m.Curve, d)
}

// PointAt returns the point at fraction u of the arc length.
func (m *Measured) PointAt(u float64) (tessella.Pair, error) {
	t, err := m.UtoT(u)
	if err != nil {
		return tessella.Origin, err
	}
	return m.Curve.Point(t)
}

// Tangent delegates to the wrapped curve, if it is able to compute tangents
// itself, and approximates otherwise.
func (m *Measured) Tangent(t float64) (tessella.Pair, error) {
	return Tangent(m.Curve, t)
}

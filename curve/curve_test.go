package curve

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tessella"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertPair(t *testing.T, want, got tessella.Pair, delta float64) {
	t.Helper()
	assert.InDelta(t, want.X(), got.X(), delta, "x of %v, want %v", got, want)
	assert.InDelta(t, want.Y(), got.Y(), delta, "y of %v, want %v", got, want)
}

func TestCubicPolyHermiteEndpoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, c := range []struct{ x0, x1, t0, t1 float64 }{
		{0, 1, 0, 0},
		{2, -3, 1.5, -0.5},
		{-4, 4, 8, 2},
		{10, 10, 0, 0},
	} {
		var cp CubicPoly
		cp.Init(c.x0, c.x1, c.t0, c.t1)
		assert.Equal(t, c.x0, cp.Calc(0))
		assert.Equal(t, c.x1, cp.Calc(1))
	}
}

func TestCubicPolyCatmullRom(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	var uniform, nonuniform CubicPoly
	uniform.InitCatmullRom(0, 1, 3, 2, 0.5)
	nonuniform.InitNonuniformCatmullRom(0, 1, 3, 2, 1, 1, 1)
	for _, tt := range []float64{0, 0.25, 0.5, 0.75, 1} {
		assert.InDelta(t, uniform.Calc(tt), nonuniform.Calc(tt), 1e-12, "t=%g", tt)
		assert.InDelta(t, uniform.Calc(tt), CatmullRom(tt, 0, 1, 3, 2), 1e-12, "t=%g", tt)
	}
	assert.Equal(t, 1.0, uniform.Calc(0))
	// extrapolation is allowed
	assert.False(t, math.IsNaN(uniform.Calc(2)))
}

func TestBezierBases(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.Equal(t, 1.0, B2(0, 1, 5, 9))
	assert.Equal(t, 9.0, B2(1, 1, 5, 9))
	assert.Equal(t, 5.0, B2(0.5, 1, 5, 9))
	assert.Equal(t, 2.0, B3(0, 2, 0, 0, 7))
	assert.Equal(t, 7.0, B3(1, 2, 0, 0, 7))
	assert.InDelta(t, 8.0, TangentQuadraticBezier(0.5, 1, 5, 9), 1e-12)
	assert.InDelta(t, 3.0, TangentCubicBezier(0.5, 0, 1, 2, 3), 1e-12)
}

func TestPointsCount(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	q := NewQuadraticBezierCurve(tessella.P(0, 0), tessella.P(1, 2), tessella.P(2, 0))
	for _, n := range []int{1, 4, 17} {
		pts, err := Points(q, n)
		require.NoError(t, err)
		require.Len(t, pts, n+1)
		p0, _ := q.Point(0)
		p1, _ := q.Point(1)
		assert.Equal(t, p0, pts[0])
		assert.Equal(t, p1, pts[n])
	}
	pts, err := Points(q, 0)
	require.NoError(t, err)
	assert.Len(t, pts, DefaultDivisions+1)
}

func TestLengthsCaching(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	line := NewLineCurve(tessella.P(0, 0), tessella.P(3, 4))
	l1, err := line.Lengths(0)
	require.NoError(t, err)
	require.Len(t, l1, DefaultArcLengthDivisions+1)
	assert.Equal(t, 0.0, l1[0])
	assert.InDelta(t, 5.0, l1[len(l1)-1], 1e-9)
	l2, _ := line.Lengths(0)
	assert.Same(t, &l1[0], &l2[0], "second call must hit the cache")
	require.NoError(t, line.UpdateArcLengths())
	l3, _ := line.Lengths(0)
	assert.NotSame(t, &l1[0], &l3[0], "UpdateArcLengths must recompute")
	l4, _ := line.Lengths(10)
	assert.Len(t, l4, 11)
	line.SetArcLengthDivisions(20)
	l5, _ := line.Lengths(0)
	assert.Len(t, l5, 21)
}

func TestUtoTMapping(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	curves := []*Measured{
		NewLineCurve(tessella.P(0, 0), tessella.P(3, 4)),
		NewQuadraticBezierCurve(tessella.P(0, 0), tessella.P(5, 8), tessella.P(9, 0)),
		NewCubicBezierCurve(tessella.P(0, 0), tessella.P(0, 3), tessella.P(4, 3), tessella.P(4, 0)),
		NewArcCurve(tessella.P(1, 1), 2, 0, math.Pi, false),
		NewSplineCurve([]tessella.Pair{tessella.P(0, 0), tessella.P(1, 2), tessella.P(3, 1)}),
	}
	for i, c := range curves {
		t0, err := c.UtoT(0)
		require.NoError(t, err)
		t1, err := c.UtoT(1)
		require.NoError(t, err)
		assert.Equal(t, 0.0, t0, "curve #%d", i)
		assert.Equal(t, 1.0, t1, "curve #%d", i)
		mid, err := c.UtoT(0.5)
		require.NoError(t, err)
		assert.True(t, mid > 0 && mid < 1, "curve #%d: t(0.5) = %g", i, mid)
	}
	line := curves[0]
	half, _ := line.UtoT(0.5)
	assert.InDelta(t, 0.5, half, 1e-9)
	byDist, _ := line.DistanceToT(2.5)
	assert.InDelta(t, 0.5, byDist, 1e-9)
	beyond, _ := line.DistanceToT(7)
	assert.Equal(t, 1.0, beyond)
}

func TestDegenerateCurve(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	dot := NewLineCurve(tessella.P(1, 1), tessella.P(1, 1))
	l, err := dot.Length()
	require.NoError(t, err)
	assert.Equal(t, 0.0, l)
	t0, err := dot.UtoT(0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, t0)
	_, err = dot.UtoT(0.5)
	assert.True(t, errors.Is(err, ErrDegenerateGeometry), "got %v", err)
	_, err = dot.PointAt(1)
	assert.True(t, errors.Is(err, ErrDegenerateGeometry), "got %v", err)
	_, err = Tangent(dot, 0.5)
	assert.True(t, errors.Is(err, ErrDegenerateGeometry), "got %v", err)
	_, err = NewSplineCurve(nil).Point(0.5)
	assert.True(t, errors.Is(err, ErrDegenerateGeometry), "got %v", err)
}

func TestSpacedPoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	q := NewQuadraticBezierCurve(tessella.P(0, 0), tessella.P(10, 20), tessella.P(20, 0))
	pts, err := SpacedPoints(q, 8)
	require.NoError(t, err)
	require.Len(t, pts, 9)
	total, _ := q.Length()
	for i := 1; i < len(pts); i++ {
		assert.InDelta(t, total/8, tessella.Dist(pts[i-1], pts[i]), total/8*0.05, "chord %d", i)
	}
}

func TestTangents(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	line := NewLineCurve(tessella.P(0, 0), tessella.P(0, 5))
	tg, err := Tangent(line, 0.3)
	require.NoError(t, err)
	assert.Equal(t, tessella.P(0, 1), tg)
	circle := NewArcCurve(tessella.P(0, 0), 1, 0, 2*math.Pi, false)
	tg, err = Tangent(circle, 0)
	require.NoError(t, err)
	assertPair(t, tessella.P(0, 1), tg, 1e-3)
	tg, err = TangentAt(circle, 0.25)
	require.NoError(t, err)
	assertPair(t, tessella.P(-1, 0), tg, 1e-3)
	cubic := NewCubicBezierCurve(tessella.P(0, 0), tessella.P(1, 0), tessella.P(2, 1), tessella.P(2, 2))
	tg, err = Tangent(cubic, 0)
	require.NoError(t, err)
	assert.Equal(t, tessella.P(1, 0), tg)
	tg, err = Tangent(cubic, 1)
	require.NoError(t, err)
	assert.Equal(t, tessella.P(0, 1), tg)
}

func TestEllipseCurve(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ccw := EllipseCurve{RX: 1, RY: 1, Start: 0, End: 2 * math.Pi}
	p, _ := ccw.Point(0.25)
	assertPair(t, tessella.P(0, 1), p, 1e-12)
	cw := ccw
	cw.Clockwise = true
	p, _ = cw.Point(0.25)
	assertPair(t, tessella.P(0, -1), p, 1e-12)
	half := EllipseCurve{Center: tessella.P(2, 0), RX: 2, RY: 1, Start: 0, End: math.Pi}
	p, _ = half.Point(0.5)
	assertPair(t, tessella.P(2, 1), p, 1e-12)
	p, _ = half.Point(1)
	assertPair(t, tessella.P(0, 0), p, 1e-12)
	rotated := EllipseCurve{Center: tessella.P(1, 1), RX: 2, RY: 1, Start: 0, End: math.Pi,
		Rotation: math.Pi / 2}
	p, _ = rotated.Point(0)
	assertPair(t, tessella.P(1, 3), p, 1e-9)
	same := EllipseCurve{RX: 1, RY: 1, Start: 1, End: 1}
	p0, _ := same.Point(0)
	p1, _ := same.Point(1)
	assert.Equal(t, p0, p1)
}

func TestSplinesPassThroughKnots(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	knots := []tessella.Pair{tessella.P(0, 0), tessella.P(1, 2), tessella.P(3, 3), tessella.P(4, 0)}
	spline := SplineCurve{Points: knots}
	for i, k := range knots {
		p, err := spline.Point(float64(i) / 3)
		require.NoError(t, err)
		assertPair(t, k, p, 1e-9)
	}
	for _, typ := range []CatmullRomType{Centripetal, Chordal, Uniform} {
		open := CatmullRomCurve{Points: knots, Type: typ}
		for i, k := range knots {
			p, err := open.Point(float64(i) / 3)
			require.NoError(t, err)
			assertPair(t, k, p, 1e-9)
		}
		closed := CatmullRomCurve{Points: knots, Type: typ, Closed: true}
		for i, k := range knots {
			p, err := closed.Point(float64(i) / 4)
			require.NoError(t, err)
			assertPair(t, k, p, 1e-9)
		}
		p, _ := closed.Point(1)
		assertPair(t, knots[0], p, 1e-9)
	}
	closed := NewCatmullRomCurve(knots, true)
	cr, ok := closed.Unwrap().(CatmullRomCurve)
	require.True(t, ok)
	assert.Equal(t, Centripetal, cr.Type)
	assert.True(t, cr.Closed)
	p, err := closed.PointAt(0)
	require.NoError(t, err)
	assertPair(t, knots[0], p, 1e-9)
	assert.Equal(t, "centripetal", Centripetal.String())
	_, err = CatmullRomCurve{Points: knots[:1]}.Point(0)
	assert.True(t, errors.Is(err, ErrDegenerateGeometry))
}

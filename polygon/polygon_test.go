package polygon

import (
	"sort"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tessella"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func box(x0, y0, x1, y1 float64) []tessella.Pair {
	return []tessella.Pair{tessella.P(x0, y0), tessella.P(x1, y0), tessella.P(x1, y1), tessella.P(x0, y1)}
}

func TestWindingOrder(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ccw := []tessella.Pair{tessella.P(0, 0), tessella.P(2, 0), tessella.P(2, 2), tessella.P(0, 2)}
	assert.InDelta(t, 4.0, Area(ccw), 1e-12)
	assert.False(t, IsClockwise(ccw))
	cw := Reversed(ccw)
	assert.InDelta(t, -4.0, Area(cw), 1e-12)
	assert.True(t, IsClockwise(cw))
	assert.Equal(t, tessella.P(0, 2), cw[0])
	assert.Equal(t, tessella.P(0, 0), ccw[0], "Reversed must not modify its argument")
	assert.Equal(t, 0.0, Area(nil))
}

func TestBoundsAndContains(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tri := []tessella.Pair{tessella.P(-1, 0), tessella.P(3, 0), tessella.P(1, 4)}
	bb := Bounds(tri)
	assert.Equal(t, tessella.P(-1, 0), bb.Min)
	assert.Equal(t, tessella.P(3, 4), bb.Max)
	assert.Equal(t, 4.0, bb.Width())
	assert.Equal(t, 4.0, bb.Height())
	assert.Equal(t, Rect{}, Bounds(nil))
	assert.True(t, Contains(tri, tessella.P(1, 1)))
	assert.False(t, Contains(tri, tessella.P(3, 3)))
	assert.False(t, Contains(tri[:2], tessella.P(1, 0)))
	inner := []tessella.Pair{tessella.P(0.5, 0.5), tessella.P(1.5, 0.5), tessella.P(1, 1.5)}
	assert.True(t, ContainsContour(tri, inner))
	assert.False(t, ContainsContour(inner, tri))
	assert.False(t, ContainsContour(tri, nil))
	straddling := []tessella.Pair{tessella.P(1, 1), tessella.P(5, 1), tessella.P(1, 2)}
	assert.True(t, Contains(tri, straddling[0]))
	assert.False(t, ContainsContour(tri, straddling), "all points must be inside")
}

func TestTriangulateSquare(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	square := box(0, 0, 1, 1)
	tris, err := Triangulate(square, nil)
	require.NoError(t, err)
	require.Len(t, tris, 2)
	assertValidIndices(t, tris, 4)
	assert.InDelta(t, 1.0, coveredArea(square, tris), 1e-9)
}

func TestTriangulateWithHole(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	outer := box(0, 0, 10, 10)
	hole := box(4, 4, 6, 6)
	tris, err := Triangulate(outer, [][]tessella.Pair{hole})
	require.NoError(t, err)
	// V + 2H - 2 triangles for a polygon with V vertices and H holes
	require.Len(t, tris, 8)
	assertValidIndices(t, tris, 8)
	all := append(append([]tessella.Pair{}, outer...), hole...)
	assert.InDelta(t, 96.0, coveredArea(all, tris), 1e-9)
}

func TestTriangulateTooFewPoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tris, err := Triangulate([]tessella.Pair{tessella.P(0, 0), tessella.P(1, 1)}, nil)
	assert.NoError(t, err)
	assert.Empty(t, tris)
}

func TestTriangulateTriangle(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	tris, err := Triangulate([]tessella.Pair{tessella.P(0, 0), tessella.P(1, 0), tessella.P(0, 1)}, nil)
	require.NoError(t, err)
	require.Len(t, tris, 1)
	idx := []int{tris[0][0], tris[0][1], tris[0][2]}
	sort.Ints(idx)
	assert.Equal(t, []int{0, 1, 2}, idx)
}

func assertValidIndices(t *testing.T, tris [][3]int, n int) {
	t.Helper()
	for _, tri := range tris {
		for _, i := range tri {
			assert.True(t, i >= 0 && i < n, "index %d out of range [0,%d)", i, n)
		}
	}
}

func coveredArea(pts []tessella.Pair, tris [][3]int) float64 {
	var sum float64
	for _, tri := range tris {
		a := Area([]tessella.Pair{pts[tri[0]], pts[tri[1]], pts[tri[2]]})
		if a < 0 {
			a = -a
		}
		sum += a
	}
	return sum
}

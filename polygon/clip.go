package polygon

import (
	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/tessella"
)

// Rect is an axis-aligned rectangle.
type Rect struct {
	Min, Max tessella.Pair
}

// Width of the rectangle.
func (r Rect) Width() float64 {
	return r.Max.X() - r.Min.X()
}

// Height of the rectangle.
func (r Rect) Height() float64 {
	return r.Max.Y() - r.Min.Y()
}

func toContour(pts []tessella.Pair) polyclip.Contour {
	c := make(polyclip.Contour, len(pts))
	for i, p := range pts {
		c[i] = polyclip.Point{X: p.X(), Y: p.Y()}
	}
	return c
}

// Bounds returns the bounding box of a sequence of points. The bounds of an
// empty sequence is the zero Rect.
func Bounds(pts []tessella.Pair) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	bb := toContour(pts).BoundingBox()
	return Rect{
		Min: tessella.P(bb.Min.X, bb.Min.Y),
		Max: tessella.P(bb.Max.X, bb.Max.Y),
	}
}

// Contains reports whether point p lies inside a contour. Points exactly on
// the boundary may be reported either way.
func Contains(contour []tessella.Pair, p tessella.Pair) bool {
	if len(contour) < 3 {
		return false
	}
	return toContour(contour).Contains(polyclip.Point{X: p.X(), Y: p.Y()})
}

// ContainsContour reports whether every point of inner lies inside outer.
func ContainsContour(outer, inner []tessella.Pair) bool {
	if len(inner) == 0 {
		return false
	}
	for _, p := range inner {
		if !Contains(outer, p) {
			return false
		}
	}
	return true
}

package path

import (
	"fmt"

	"github.com/npillmayer/tessella"
	"github.com/npillmayer/tessella/curve"
)

// Shape is a closed outline with an optional list of holes. The outline is
// the embedded path.
//
// Bends is an optional list of curves the tessellated points are bent along
// (see curve.WrapPoints). Without bends, points are left as they are.
type Shape struct {
	*Path
	Holes []*Path
	Bends []*curve.CurvePath
}

// NewShape creates a shape with a polyline outline through pts. Without
// points, the outline is an empty path to be extended by builder calls.
func NewShape(pts ...tessella.Pair) *Shape {
	return &Shape{Path: FromPoints(pts...)}
}

// ShapeFromPath creates a shape with outline p.
func ShapeFromPath(p *Path) *Shape {
	return &Shape{Path: p}
}

// AddHole appends a hole to the shape.
func (s *Shape) AddHole(hole *Path) *Shape {
	s.Holes = append(s.Holes, hole)
	return s
}

// Contours holds the tessellated outline of a shape together with the
// tessellated holes.
type Contours struct {
	Shape []tessella.Pair
	Holes [][]tessella.Pair
}

// PointsHoles tessellates each hole with TransformedPoints, applying the
// shape's bends.
func (s *Shape) PointsHoles(divisions int) ([][]tessella.Pair, error) {
	holes := make([][]tessella.Pair, len(s.Holes))
	for i, h := range s.Holes {
		pts, err := h.TransformedPoints(divisions, s.Bends)
		if err != nil {
			return nil, fmt.Errorf("hole #%d: %w", i, err)
		}
		holes[i] = pts
	}
	return holes, nil
}

// SpacedPointsHoles tessellates each hole with TransformedSpacedPoints,
// applying the shape's bends.
func (s *Shape) SpacedPointsHoles(divisions int) ([][]tessella.Pair, error) {
	holes := make([][]tessella.Pair, len(s.Holes))
	for i, h := range s.Holes {
		pts, err := h.TransformedSpacedPoints(divisions, s.Bends)
		if err != nil {
			return nil, fmt.Errorf("hole #%d: %w", i, err)
		}
		holes[i] = pts
	}
	return holes, nil
}

// ExtractAllPoints tessellates outline and holes with per-segment sampling,
// applying the shape's bends to both.
func (s *Shape) ExtractAllPoints(divisions int) (Contours, error) {
	outline, err := s.TransformedPoints(divisions, s.Bends)
	if err != nil {
		return Contours{}, err
	}
	holes, err := s.PointsHoles(divisions)
	if err != nil {
		return Contours{}, err
	}
	return Contours{Shape: outline, Holes: holes}, nil
}

// ExtractAllSpacedPoints tessellates outline and holes with arc-length
// sampling, applying the shape's bends to both.
func (s *Shape) ExtractAllSpacedPoints(divisions int) (Contours, error) {
	outline, err := s.TransformedSpacedPoints(divisions, s.Bends)
	if err != nil {
		return Contours{}, err
	}
	holes, err := s.SpacedPointsHoles(divisions)
	if err != nil {
		return Contours{}, err
	}
	return Contours{Shape: outline, Holes: holes}, nil
}

// ExtractPoints tessellates the shape, choosing ExtractAllSpacedPoints if
// UseSpacedPoints is set for the outline and ExtractAllPoints otherwise.
func (s *Shape) ExtractPoints(divisions int) (Contours, error) {
	if s.UseSpacedPoints {
		return s.ExtractAllSpacedPoints(divisions)
	}
	return s.ExtractAllPoints(divisions)
}

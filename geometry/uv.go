package geometry

import (
	"github.com/npillmayer/tessella"
)

// UVGenerator assigns texture coordinates to the vertices of a face.
type UVGenerator interface {
	// TopUV returns the UV coordinates for vertices a, b and c of g, in
	// this order.
	TopUV(g *ShapeGeometry, a, b, c int) [3]tessella.Pair
}

// WorldUVGenerator uses the x/y world coordinates of a vertex as its UV
// coordinates.
type WorldUVGenerator struct{}

// TopUV returns the x/y coordinates of vertices a, b and c.
func (WorldUVGenerator) TopUV(g *ShapeGeometry, a, b, c int) [3]tessella.Pair {
	var uv [3]tessella.Pair
	for i, v := range [3]int{a, b, c} {
		uv[i] = tessella.P(g.Vertices[v][0], g.Vertices[v][1])
	}
	return uv
}

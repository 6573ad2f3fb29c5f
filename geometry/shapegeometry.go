package geometry

import (
	"fmt"

	"github.com/npillmayer/tessella"
	"github.com/npillmayer/tessella/path"
	"github.com/npillmayer/tessella/polygon"
	"github.com/ungerik/go3d/float64/vec3"
)

// DefaultCurveSegments is the number of samples per curve segment used for
// tessellating shapes, if Options.CurveSegments is not set.
const DefaultCurveSegments = 12

// Options control the construction of a ShapeGeometry.
// The zero value is ready to use.
type Options struct {
	CurveSegments int         // tessellation divisions, default 12
	MaterialIndex int         // material index stored with every face
	UVGenerator   UVGenerator // default WorldUVGenerator
}

func (o Options) withDefaults() Options {
	if o.CurveSegments <= 0 {
		o.CurveSegments = DefaultCurveSegments
	}
	if o.UVGenerator == nil {
		o.UVGenerator = WorldUVGenerator{}
	}
	return o
}

// Face is a triangle of a mesh. A, B and C are indices into the mesh's
// vertices.
type Face struct {
	A, B, C       int
	MaterialIndex int
	Normal        vec3.T
}

// ShapeGeometry is a triangle mesh in the z=0 plane. FaceVertexUVs holds
// one entry per face.
//
// A ShapeGeometry is not safe for concurrent use.
type ShapeGeometry struct {
	Vertices      []vec3.T
	Faces         []Face
	FaceVertexUVs [][3]tessella.Pair
}

// NewShapeGeometry triangulates a list of shapes into a single mesh and
// computes face normals. An empty list of shapes results in an empty mesh.
func NewShapeGeometry(shapes []*path.Shape, opts Options) (*ShapeGeometry, error) {
	g := &ShapeGeometry{}
	for i, shape := range shapes {
		if err := g.AddShape(shape, opts); err != nil {
			return nil, fmt.Errorf("shape #%d: %w", i, err)
		}
	}
	g.ComputeFaceNormals()
	tracer().Infof("shape geometry with %d vertices and %d faces", g.VertexCount(), g.FaceCount())
	return g, nil
}

// AddShape tessellates and triangulates a shape and appends the result to
// the mesh. Face normals are not updated; call ComputeFaceNormals after the
// last shape has been added.
func (g *ShapeGeometry) AddShape(shape *path.Shape, opts Options) error {
	opts = opts.withDefaults()
	offset := len(g.Vertices)
	contours, err := shape.ExtractPoints(opts.CurveSegments)
	if err != nil {
		return err
	}
	outline, holes := contours.Shape, contours.Holes
	if polygon.IsClockwise(outline) {
		outline = polygon.Reversed(outline)
	}
	for i, hole := range holes {
		if polygon.IsClockwise(hole) {
			holes[i] = polygon.Reversed(hole)
		}
	}
	triangles, err := polygon.Triangulate(outline, holes)
	if err != nil {
		return err
	}
	for _, pt := range outline {
		g.Vertices = append(g.Vertices, vec3.T{pt.X(), pt.Y(), 0})
	}
	for _, hole := range holes {
		for _, pt := range hole {
			g.Vertices = append(g.Vertices, vec3.T{pt.X(), pt.Y(), 0})
		}
	}
	for _, tri := range triangles {
		a, b, c := tri[0]+offset, tri[1]+offset, tri[2]+offset
		g.Faces = append(g.Faces, Face{A: a, B: b, C: c, MaterialIndex: opts.MaterialIndex})
		g.FaceVertexUVs = append(g.FaceVertexUVs, opts.UVGenerator.TopUV(g, a, b, c))
	}
	tracer().Debugf("shape added %d vertices, %d faces", len(g.Vertices)-offset, len(triangles))
	return nil
}

// ComputeFaceNormals sets the normal of every face, oriented by the
// face's winding: counter-clockwise faces point towards +z.
// Degenerate faces get a zero normal.
func (g *ShapeGeometry) ComputeFaceNormals() {
	for i := range g.Faces {
		f := &g.Faces[i]
		vA, vB, vC := &g.Vertices[f.A], &g.Vertices[f.B], &g.Vertices[f.C]
		cb := vec3.Sub(vC, vB)
		ab := vec3.Sub(vA, vB)
		n := vec3.Cross(&cb, &ab)
		f.Normal = *n.Normalize()
	}
}

// VertexCount returns the number of vertices.
func (g *ShapeGeometry) VertexCount() int {
	return len(g.Vertices)
}

// FaceCount returns the number of faces.
func (g *ShapeGeometry) FaceCount() int {
	return len(g.Faces)
}

// IsEmpty is true for a mesh without faces.
func (g *ShapeGeometry) IsEmpty() bool {
	return len(g.Faces) == 0
}

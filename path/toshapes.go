package path

import (
	"github.com/npillmayer/tessella"
	"github.com/npillmayer/tessella/polygon"
)

// Subpaths splits the path at every MoveTo into independent paths.
func (p *Path) Subpaths() ([]*Path, error) {
	if p.err != nil {
		return nil, p.err
	}
	var subpaths []*Path
	current := Nullpath()
	for _, action := range p.actions {
		if _, ok := action.(MoveTo); ok && len(current.actions) > 0 {
			subpaths = append(subpaths, current)
			current = Nullpath()
		}
		if err := current.apply(action).Err(); err != nil {
			return nil, err
		}
	}
	if len(current.actions) > 0 {
		subpaths = append(subpaths, current)
	}
	return subpaths, nil
}

// ToShapes splits the path into subpaths and groups them into shapes with
// holes. Outlines of solid shapes are expected to wind clockwise, holes
// counter-clockwise; isCCW reverses this expectation.
//
// Every hole is attached to the first solid outline which contains all of
// the hole's points. If no outline contains it, it is attached to the
// nearest preceding solid (or the first one). If no subpath is solid, every
// subpath becomes a shape of its own.
func (p *Path) ToShapes(isCCW bool) ([]*Shape, error) {
	subpaths, err := p.Subpaths()
	if err != nil {
		return nil, err
	}
	if len(subpaths) <= 1 {
		shapes := make([]*Shape, len(subpaths))
		for i, sp := range subpaths {
			shapes[i] = ShapeFromPath(sp)
		}
		return shapes, nil
	}
	outlines := make([][]tessella.Pair, len(subpaths))
	solid := make([]bool, len(subpaths))
	var shapes []*Shape
	owner := make([]int, len(subpaths)) // index into shapes for solid subpaths
	for i, sp := range subpaths {
		if outlines[i], err = sp.Points(0, false); err != nil {
			return nil, err
		}
		solid[i] = polygon.IsClockwise(outlines[i]) != isCCW
		if solid[i] {
			owner[i] = len(shapes)
			shapes = append(shapes, ShapeFromPath(sp))
		}
	}
	if len(shapes) == 0 {
		tracer().Debugf("no solid subpaths, treating %d subpaths as shapes", len(subpaths))
		for _, sp := range subpaths {
			shapes = append(shapes, ShapeFromPath(sp))
		}
		return shapes, nil
	}
	for i, sp := range subpaths {
		if solid[i] || len(outlines[i]) == 0 {
			continue
		}
		target, fallback := -1, 0
		for j := range subpaths {
			if !solid[j] {
				continue
			}
			if j < i {
				fallback = owner[j]
			}
			if polygon.ContainsContour(outlines[j], outlines[i]) {
				target = owner[j]
				break
			}
		}
		if target < 0 {
			tracer().Debugf("hole #%d is not contained in any outline", i)
			target = fallback
		}
		shapes[target].AddHole(sp)
	}
	tracer().Debugf("path split into %d shapes", len(shapes))
	return shapes, nil
}

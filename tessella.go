/*
Package tessella turns parametric curves and drawing paths into polylines and
triangle meshes.

The root package holds the shared 2D arithmetic: points (type Pair) and
affine transformations. Curves live in package curve,
drawing-command paths and shapes with holes in package path, winding tests
and triangulation in package polygon, and mesh construction in package geometry.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package tessella

import (
	"fmt"
	"math"
	"math/cmplx"
)

// === Pair Data Type ========================================================

// Pair is a 2D point or vector. Using complex128 as the underlying type gives
// us vector addition, subtraction and scaling by real numbers for free.
type Pair complex128

// Origin represents the frequently used constant (0,0).
var Origin = P(0, 0)

// P is a quick notation for contructing a pair from floats.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

// Pretty Stringer for simple pairs.
func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// C returns a Pair as a complex number.
func (p Pair) C() complex128 {
	return complex128(p)
}

// X is the x-part of a pair.
func (p Pair) X() float64 {
	return real(p)
}

// Y is the y-part of a pair.
func (p Pair) Y() float64 {
	return imag(p)
}

// Abs is the Euclidean length of p, interpreted as a vector.
func (p Pair) Abs() float64 {
	return cmplx.Abs(p.C())
}

// Dist returns the Euclidean distance between two points.
func Dist(a, b Pair) float64 {
	return (b - a).Abs()
}

// Unit returns p normalized to length 1. The zero vector stays zero.
func (p Pair) Unit() Pair {
	l := p.Abs()
	if l == 0 {
		return Origin
	}
	return p.Scaled(1 / l)
}

// Normal returns p rotated by 90° counter-clockwise.
func (p Pair) Normal() Pair {
	return P(-p.Y(), p.X())
}

// Lerp interpolates linearly between a (t=0) and b (t=1). t is not clamped.
func Lerp(a, b Pair, t float64) Pair {
	return a + (b-a).Scaled(t)
}

// Scaled returns a new pair scaled by factor a.
func (p Pair) Scaled(a float64) Pair {
	return P(p.X()*a, p.Y()*a)
}

// Rotatedaround returns a new pair rotated around v by theta (counterclockwise).
func (p Pair) Rotatedaround(v Pair, theta float64) Pair {
	return RotationAround(v, theta).Transform(p)
}

// === Affine Transformations ================================================

// AT is an affine transform, a matrix type used for transforming vectors.
type AT []float64 // a 3x3 matrix, flattened by rows

// Internal constructor. Clients implicitely use this as a starting point for
// transform combinations.
func newAT() AT {
	return make([]float64, 9)
}

func (m AT) set(row, col int, value float64) {
	m[row*3+col] = value
}

func (m AT) row(row int) []float64 {
	return m[row*3 : (row+1)*3]
}

func (m AT) col(col int) []float64 {
	return []float64{m[col], m[3+col], m[6+col]}
}

// Identity transform. Will transform a point onto itself.
func Identity() AT {
	m := newAT()
	m.set(0, 0, 1.0)
	m.set(1, 1, 1.0)
	m.set(2, 2, 1.0)
	return m
}

// Translation transform. Translate a point by (dx,dy).
func Translation(p Pair) AT {
	m := Identity()
	m.set(0, 2, p.X())
	m.set(1, 2, p.Y())
	return m
}

// Rotation transform. Rotate a point counter-clockwise around the origin.
// Argument is in radians.
func Rotation(theta float64) AT {
	m := newAT()
	sin, cos := math.Sincos(theta)
	m.set(0, 0, cos)
	m.set(0, 1, -sin)
	m.set(1, 0, sin)
	m.set(1, 1, cos)
	m.set(2, 2, 1.0)
	return m
}

// RotationAround rotates counter-clockwise by theta around center c.
func RotationAround(c Pair, theta float64) AT {
	return Translation(-c).Combine(Rotation(theta)).Combine(Translation(c))
}

// Debug Stringer for an affine transform.
func (m AT) String() string {
	return fmt.Sprintf("[%g,%g,%g|%g,%g,%g|%g,%g,%g]",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
}

func dotProd(vec1, vec2 []float64) float64 {
	return vec1[0]*vec2[0] + vec1[1]*vec2[1] + vec1[2]*vec2[2]
}

// Combine 2 affine transformation to a new one: m is applied first, then n.
// Returns a new transformation without changing the argument(s).
func (m AT) Combine(n AT) AT {
	o := newAT()
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			o.set(row, col, dotProd(n.row(row), m.col(col)))
		}
	}
	return o
}

// Transform a 2D-point. The argument is unchanged and a new pair is returned.
func (m AT) Transform(p Pair) Pair {
	v := []float64{p.X(), p.Y(), 1.0}
	return P(dotProd(m.row(0), v), dotProd(m.row(1), v))
}

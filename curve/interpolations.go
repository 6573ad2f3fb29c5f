package curve

// Scalar interpolation bases. They operate on one coordinate at a time and
// are shared by the curve types and the path tessellator.

// B2 evaluates a quadratic Bézier with control values p0, p1, p2 at t.
func B2(t, p0, p1, p2 float64) float64 {
	k := 1 - t
	return k*k*p0 + 2*k*t*p1 + t*t*p2
}

// B3 evaluates a cubic Bézier with control values p0…p3 at t.
func B3(t, p0, p1, p2, p3 float64) float64 {
	k := 1 - t
	return k*k*k*p0 + 3*k*k*t*p1 + 3*k*t*t*p2 + t*t*t*p3
}

// CatmullRom evaluates a uniform Catmull-Rom segment from p1 to p2 at t,
// with p0 and p3 as the neighbouring knots.
func CatmullRom(t, p0, p1, p2, p3 float64) float64 {
	var cp CubicPoly
	return cp.InitCatmullRom(p0, p1, p2, p3, 0.5).Calc(t)
}

// TangentQuadraticBezier is the derivative of B2 with respect to t.
func TangentQuadraticBezier(t, p0, p1, p2 float64) float64 {
	return 2*(1-t)*(p1-p0) + 2*t*(p2-p1)
}

// TangentCubicBezier is the derivative of B3 with respect to t.
func TangentCubicBezier(t, p0, p1, p2, p3 float64) float64 {
	k := 1 - t
	return 3*k*k*(p1-p0) + 6*k*t*(p2-p1) + 3*t*t*(p3-p2)
}

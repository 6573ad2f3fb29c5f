package curve

// CubicPoly is a cubic polynomial
//
//	c0 + c1⋅t + c2⋅t² + c3⋅t³
//
// used to evaluate one coordinate of a spline segment between two knots.
// Splines re-initialize it for every axis of every segment.
type CubicPoly struct {
	C0, C1, C2, C3 float64
}

// Init sets up the Hermite cubic with values x0, x1 and derivatives t0, t1
// at t=0 and t=1.
func (cp *CubicPoly) Init(x0, x1, t0, t1 float64) *CubicPoly {
	cp.C0 = x0
	cp.C1 = t0
	cp.C2 = -3*x0 + 3*x1 - 2*t0 - t1
	cp.C3 = 2*x0 - 2*x1 + t0 + t1
	return cp
}

// InitCatmullRom sets up a uniform Catmull-Rom segment between x1 and x2.
// A tension of 0.5 gives the classic Catmull-Rom spline.
func (cp *CubicPoly) InitCatmullRom(x0, x1, x2, x3, tension float64) *CubicPoly {
	return cp.Init(x1, x2, tension*(x2-x0), tension*(x3-x1))
}

// InitNonuniformCatmullRom sets up a Catmull-Rom segment between x1 and x2
// for non-uniform knot spacing dt0, dt1, dt2 (as used by centripetal and
// chordal splines). Tangents are computed for the interval [0,dt1] and then
// rescaled to [0,1].
func (cp *CubicPoly) InitNonuniformCatmullRom(x0, x1, x2, x3, dt0, dt1, dt2 float64) *CubicPoly {
	t1 := (x1-x0)/dt0 - (x2-x0)/(dt0+dt1) + (x2-x1)/dt1
	t2 := (x2-x1)/dt1 - (x3-x1)/(dt1+dt2) + (x3-x2)/dt2
	t1 *= dt1
	t2 *= dt1
	return cp.Init(x1, x2, t1, t2)
}

// Calc evaluates the polynomial at t. t is not restricted to [0,1];
// values outside extrapolate the segment.
func (cp *CubicPoly) Calc(t float64) float64 {
	return cp.C0 + t*(cp.C1+t*(cp.C2+t*cp.C3))
}

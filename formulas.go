package quadrature

import "fmt"

// Standard 1-dimensional formulas on [0,1]. These seed the tensor-product
// and iterated constructions; any external producer supplying points in
// [0,1] with weights summing to one works just as well.

// NewMidpoint returns the one-point midpoint rule, exact for linear
// polynomials.
func NewMidpoint() *Quadrature {
	return New([]Point{Pt1(0.5)}, []float64{1})
}

// NewTrapezoid returns the two-point trapezoidal rule, exact for linear
// polynomials. It samples both endpoints.
func NewTrapezoid() *Quadrature {
	return New(
		[]Point{Pt1(0), Pt1(1)},
		[]float64{1.0 / 2, 1.0 / 2},
	)
}

// NewSimpson returns the three-point Simpson rule, exact for cubic
// polynomials. It samples both endpoints.
func NewSimpson() *Quadrature {
	return New(
		[]Point{Pt1(0), Pt1(0.5), Pt1(1)},
		[]float64{1.0 / 6, 4.0 / 6, 1.0 / 6},
	)
}

// NewMilne returns the five-point Milne rule, exact for polynomials of
// degree five. It samples both endpoints.
func NewMilne() *Quadrature {
	return New(
		[]Point{Pt1(0), Pt1(0.25), Pt1(0.5), Pt1(0.75), Pt1(1)},
		[]float64{7.0 / 90, 32.0 / 90, 12.0 / 90, 32.0 / 90, 7.0 / 90},
	)
}

// NewWeddle returns the seven-point Weddle rule, exact for polynomials of
// degree seven. It samples both endpoints.
func NewWeddle() *Quadrature {
	return New(
		[]Point{Pt1(0), Pt1(1.0 / 6), Pt1(2.0 / 6), Pt1(0.5), Pt1(4.0 / 6), Pt1(5.0 / 6), Pt1(1)},
		[]float64{41.0 / 840, 216.0 / 840, 27.0 / 840, 272.0 / 840, 27.0 / 840, 216.0 / 840, 41.0 / 840},
	)
}

// Tables of Legendre-Gauss quadrature coefficients on [-1,1], adapted from:
// <https://pomax.github.io/bezierinfo/legendre-gauss.html>

var gaussLegendreCoeffs = [...][][2]float64{
	1: {
		{2.0000000000000000, 0.0000000000000000},
	},
	2: {
		{1.0000000000000000, -0.5773502691896257},
		{1.0000000000000000, 0.5773502691896257},
	},
	3: {
		{0.5555555555555556, -0.7745966692414834},
		{0.8888888888888888, 0.0000000000000000},
		{0.5555555555555556, 0.7745966692414834},
	},
	4: {
		{0.3478548451374538, -0.8611363115940526},
		{0.6521451548625461, -0.3399810435848563},
		{0.6521451548625461, 0.3399810435848563},
		{0.3478548451374538, 0.8611363115940526},
	},
	5: {
		{0.2369268850561891, -0.9061798459386640},
		{0.4786286704993665, -0.5384693101056831},
		{0.5688888888888889, 0.0000000000000000},
		{0.4786286704993665, 0.5384693101056831},
		{0.2369268850561891, 0.9061798459386640},
	},
}

// NewGaussLegendre returns the n-point Gauss-Legendre rule rescaled to
// [0,1], exact for polynomials of degree 2n-1. Its points lie strictly
// inside the interval. It panics unless n is in 1 to 5.
func NewGaussLegendre(n int) *Quadrature {
	if n < 1 || n >= len(gaussLegendreCoeffs) {
		panic(fmt.Sprintf("no Gauss-Legendre coefficients for %d points", n))
	}
	points := make([]Point, n)
	weights := make([]float64, n)
	for i, coeff := range gaussLegendreCoeffs[n] {
		points[i] = Pt1((1 + coeff[1]) / 2)
		weights[i] = coeff[0] / 2
	}
	return New(points, weights)
}

// SPDX-License-Identifier: MIT
// Package: lvquad/quadrature
//
// rules.go — fixed quadrature tables and single-panel estimates.
//
// Every rule maps the reference interval [-1,1] onto [a,b] through
//
//	m = (a+b)/2,  d = (b−a)/2,  x = node·d + m
//
// and scales the weighted sum by d. A reversed interval (a > b) gives
// d < 0 and therefore the signed integral.

package quadrature

// 3-point Gauss–Legendre table on [-1,1]. Nodes are ±√(3/5) and 0; the rule
// is exact for polynomials of degree ≤ 5.
const (
	// NodeOuter is √0.6, the abscissa of the two outer nodes (±NodeOuter).
	NodeOuter = 0.774596669241483377035853079956479922166584341058318165317514753

	// NodeCenter is the abscissa of the middle node.
	NodeCenter = 0.0

	// WeightOuter is the weight of both outer nodes.
	WeightOuter = 5.0 / 9.0

	// WeightCenter is the weight of the middle node.
	WeightCenter = 8.0 / 9.0
)

// GaussLegendre3 returns the single-panel 3-point Gauss–Legendre estimate of
// ∫ₐᵇ f(x) dx. No subdivision, no validation.
// Complexity: 3 evaluations of f.
func GaussLegendre3(f Integrand, a, b float64) float64 {
	m, d := midHalf(a, b)

	return gaussSum(d, f(m+NodeOuter*d), f(m+NodeCenter*d), f(m-NodeOuter*d))
}

// Simpson returns the single-panel Simpson estimate (b−a)/6·(f(a)+4f(m)+f(b)).
// Complexity: 3 evaluations of f.
func Simpson(f Integrand, a, b float64) float64 {
	m, d := midHalf(a, b)

	return simpsonSum(d, f(a), f(m), f(b))
}

// Trapezoid returns the single-panel trapezoid estimate (b−a)/2·(f(a)+f(b)).
// Complexity: 2 evaluations of f.
func Trapezoid(f Integrand, a, b float64) float64 {
	_, d := midHalf(a, b)

	return trapezoidSum(d, f(a), f(b))
}

// midHalf returns the midpoint and signed half-width of [a,b].
// Halving each bound first keeps finite bounds near ±MaxFloat64 from
// overflowing; it matches (a+b)/2 except for subnormal bounds.
func midHalf(a, b float64) (m, d float64) {
	return 0.5*a + 0.5*b, 0.5*b - 0.5*a
}

// gaussSum combines samples at m+x₁d, m, m−x₁d.
// Each sample is scaled by d before summing so large finite samples on a
// short panel cannot overflow the sum.
func gaussSum(d, fRight, fMid, fLeft float64) float64 {
	dOuter, dCenter := d*WeightOuter, d*WeightCenter

	return dOuter*fRight + dCenter*fMid + dOuter*fLeft
}

// simpsonSum combines samples at a, m, b.
func simpsonSum(d, fa, fm, fb float64) float64 {
	d3 := d / 3

	return d3*fa + 4*d3*fm + d3*fb
}

// trapezoidSum combines samples at a, b.
func trapezoidSum(d, fa, fb float64) float64 {
	return d*fa + d*fb
}

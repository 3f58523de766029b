// SPDX-License-Identifier: MIT
package quadrature_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/integrate/quad"

	"github.com/katalvlaran/lvquad/quadrature"
)

// monomial returns x ↦ xⁿ and its antiderivative evaluated on [a,b].
func monomial(n int) (quadrature.Integrand, func(a, b float64) float64) {
	f := func(x float64) float64 { return math.Pow(x, float64(n)) }
	exact := func(a, b float64) float64 {
		return (math.Pow(b, float64(n+1)) - math.Pow(a, float64(n+1))) / float64(n+1)
	}

	return f, exact
}

// TestNodeTable_Constants checks the closed forms of the 3-point table.
func TestNodeTable_Constants(t *testing.T) {
	assert.InDelta(t, 0.6, quadrature.NodeOuter*quadrature.NodeOuter, 1e-15, "outer node must be √0.6")
	assert.Equal(t, 0.0, quadrature.NodeCenter, "center node must be 0")
	assert.InDelta(t, 2.0, 2*quadrature.WeightOuter+quadrature.WeightCenter, 1e-15, "weights must sum to |[-1,1]|")
}

// TestNodeTable_MatchesGonumLegendre compares the table with gonum's
// independently computed 3-point Legendre rule on [-1,1].
func TestNodeTable_MatchesGonumLegendre(t *testing.T) {
	x := make([]float64, 3)
	w := make([]float64, 3)
	quad.Legendre{}.FixedLocations(x, w, -1, 1)

	var outer int
	for i := range x {
		if math.Abs(x[i]) < 1e-12 {
			assert.InDelta(t, quadrature.WeightCenter, w[i], 1e-12, "center weight")
			continue
		}
		outer++
		assert.InDelta(t, quadrature.NodeOuter, math.Abs(x[i]), 1e-12, "outer node")
		assert.InDelta(t, quadrature.WeightOuter, w[i], 1e-12, "outer weight")
	}
	assert.Equal(t, 2, outer, "rule must have two symmetric outer nodes")
}

// TestGaussLegendre3_ExactUpToQuintic verifies exactness for degree ≤ 5
// on an asymmetric interval.
func TestGaussLegendre3_ExactUpToQuintic(t *testing.T) {
	const a, b = -1.0, 2.0
	for n := 0; n <= 5; n++ {
		f, exact := monomial(n)
		assert.InDelta(t, exact(a, b), quadrature.GaussLegendre3(f, a, b), 1e-12, "degree %d", n)
	}
}

// TestGaussLegendre3_NotExactForDegreeSix shows the rule's degree limit:
// ∫₋₁¹ x⁶ = 2/7 but the rule yields 10/9·0.6³ = 0.24.
func TestGaussLegendre3_NotExactForDegreeSix(t *testing.T) {
	f, exact := monomial(6)
	got := quadrature.GaussLegendre3(f, -1, 1)
	assert.InDelta(t, 0.24, got, 1e-12)
	assert.Greater(t, math.Abs(got-exact(-1, 1)), 1e-3, "degree 6 must not be exact")
}

// TestSimpson_ExactUpToCubic verifies Simpson's rule on degrees 0..3 and
// its failure on degree 4.
func TestSimpson_ExactUpToCubic(t *testing.T) {
	const a, b = 0.0, 2.0
	for n := 0; n <= 3; n++ {
		f, exact := monomial(n)
		assert.InDelta(t, exact(a, b), quadrature.Simpson(f, a, b), 1e-12, "degree %d", n)
	}

	f, exact := monomial(4)
	assert.Greater(t, math.Abs(quadrature.Simpson(f, a, b)-exact(a, b)), 1e-3, "degree 4 must not be exact")
}

// TestTrapezoid_ExactForLinear verifies the trapezoid rule on 2x+1 over [0,3].
func TestTrapezoid_ExactForLinear(t *testing.T) {
	f := func(x float64) float64 { return 2*x + 1 }
	assert.Equal(t, 12.0, quadrature.Trapezoid(f, 0, 3))

	sq, exact := monomial(2)
	assert.Equal(t, 13.5, quadrature.Trapezoid(sq, 0, 3), "trapezoid overestimates convex integrands")
	assert.InDelta(t, 9.0, exact(0, 3), 1e-12)
}

// TestRules_ReversedIntervalFlipsSign checks that every single-panel rule
// returns the signed integral for a > b.
func TestRules_ReversedIntervalFlipsSign(t *testing.T) {
	rules := map[string]func(quadrature.Integrand, float64, float64) float64{
		"gauss":     quadrature.GaussLegendre3,
		"simpson":   quadrature.Simpson,
		"trapezoid": quadrature.Trapezoid,
	}
	for name, rule := range rules {
		fwd := rule(math.Exp, 0, 1)
		rev := rule(math.Exp, 1, 0)
		require.False(t, math.IsNaN(fwd), name)
		assert.InDelta(t, -fwd, rev, 1e-14, name)
	}
}

// TestRules_LargeSamplesDoNotOverflow: samples near MaxFloat64 on a short
// panel give a finite estimate, since each sample is scaled before summing.
func TestRules_LargeSamplesDoNotOverflow(t *testing.T) {
	huge := func(float64) float64 { return 1e308 }
	rules := map[string]func(quadrature.Integrand, float64, float64) float64{
		"gauss":     quadrature.GaussLegendre3,
		"simpson":   quadrature.Simpson,
		"trapezoid": quadrature.Trapezoid,
	}
	for name, rule := range rules {
		got := rule(huge, 0, 0.1)
		require.False(t, math.IsInf(got, 0), name)
		assert.InEpsilon(t, 1e307, got, 1e-12, name)
	}
}

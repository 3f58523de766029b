// SPDX-License-Identifier: MIT

// Package quadrature computes definite integrals of scalar functions over a
// finite interval with an adaptive 3-point Gauss–Legendre rule.
//
// 🚀 What is adaptive quadrature?
//
//	A panel [a,b] is estimated twice: once with the 3-point Gauss–Legendre
//	rule (exact for polynomials of degree ≤ 5) and once with a lower-order
//	reference rule (Simpson by default). If the two estimates agree within
//	eps the Gauss value is accepted; otherwise the panel is split at its
//	midpoint and both halves are integrated with eps/2.
//
// ✨ Key features:
//   - explicit work list instead of call recursion (no stack exhaustion)
//   - depth, width and evaluation budgets reported as errors
//   - NaN/±Inf samples rejected by default (WithNoFiniteCheck to opt out)
//   - Simpson or trapezoid reference rule (WithReferenceRule)
//   - IntegrateDetailed exposes panel and evaluation counters
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvquad/quadrature"
//
//	v, err := quadrature.Integrate(math.Sin, 0, math.Pi, 1e-10)
//	if err != nil {
//	  // errors.Is(err, quadrature.ErrNoConvergence), ErrNonFinite, ...
//	}
//
// Accuracy:
//
//	The check is a heuristic, not a certified bound. For integrands that are
//	smooth on [a,b] the result is within eps of the true value; features
//	narrower than the sampling resolution can pass the check unnoticed.
//
// Performance:
//
//   - 5 integrand evaluations per panel (f(m) is shared by both rules)
//   - Memory: O(depth) pending panels
package quadrature

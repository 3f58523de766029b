// Package lvquad is a small, dependency-light numerical integration
// library: definite integrals of scalar functions over finite intervals,
// computed adaptively and reported with explicit errors instead of silent
// failure.
//
// 🚀 What is lvquad?
//
//	A pure-Go numeric primitive that brings together:
//		• 3-point Gauss–Legendre panels (exact up to degree 5)
//		• Simpson or trapezoid reference estimates for error control
//		• Adaptive bisection with tolerance halving on an explicit work list
//		• Depth, width and evaluation guards surfaced as sentinel errors
//
// ✨ Why choose lvquad?
//
//   - Beginner-friendly – one call: Integrate(f, a, b, eps)
//   - No stack exhaustion – subdivision never recurses on the Go stack
//   - Deterministic – no global state, no goroutines, no caching
//   - Pure Go – no cgo
//
// Under the hood:
//
//	quadrature/ — Integrate, IntegrateDetailed, single-panel rules, options
//	examples/   — runnable scenarios
//
// Quick example:
//
//	v, err := quadrature.Integrate(math.Sin, 0, math.Pi, 1e-10) // v ≈ 2
//
//	go get github.com/katalvlaran/lvquad/quadrature
package lvquad

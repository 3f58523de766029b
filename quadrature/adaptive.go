// SPDX-License-Identifier: MIT

package quadrature

import (
	"fmt"
	"math"
)

// Method names used as error context.
const (
	methodIntegrate         = "Integrate"
	methodIntegrateDetailed = "IntegrateDetailed"
)

// Integrate — adaptive Gauss–Legendre quadrature
//
// Description:
//
//	Approximates ∫ₐᵇ f(x) dx so that, for integrands smooth on [a,b], the
//	result is within eps of the true value, or within float64 rounding of
//	it when eps is finer than that. The estimate on each panel is
//	the 3-point Gauss–Legendre rule; its error is judged by comparing it
//	with a lower-order reference rule on the same panel.
//
// Algorithm Outline:
//  1. Push the panel (a, b, eps, depth=0) on the work list.
//  2. Pop a panel; m = (a+b)/2, d = (b−a)/2.
//  3. gauss = d·(5/9·f(m+√0.6·d) + 8/9·f(m) + 5/9·f(m−√0.6·d)).
//  4. ref   = d·(f(a) + 4·f(m) + f(b))/3 (Simpson; trapezoid if configured).
//  5. |gauss − ref| ≤ max(eps, k·2⁻⁵²·mass) → accept gauss and add it to
//     the total. mass = |d|·Σ|samples| bounds the rounding error of both
//     estimates, so an eps below float64 resolution does not force endless
//     subdivision (k = DefaultRoundoffFactor, see WithRoundoffFactor).
//  6. Otherwise push (m, b, tol/2) and (a, m, tol/2), tol being the bound
//     of step 5, and continue with the left half. Halving keeps the sum of
//     accepted tolerances ≤ max(eps, root floor); inheriting the floor lets
//     panels near a zero of f converge even though their own mass is tiny.
//  7. Stop when the work list is empty.
//
// Guards (each aborts with an error wrapping ErrNoConvergence, no partial result):
//   - a failing panel at depth MaxDepth           → ErrMaxDepth
//   - a failing panel that cannot be split        → ErrIntervalUnderflow
//   - the evaluation budget would be exceeded     → ErrMaxEvaluations
//
// Edge cases:
//   - a == b returns exactly 0 without evaluating f.
//   - a > b returns the signed integral −∫_b^a f(x) dx.
//
// Complexity:
//
//	Time   = 5 evaluations per visited panel
//	Memory = O(depth) pending panels
//
// Errors:
//   - ErrNilIntegrand, ErrInvalidBounds, ErrInvalidTolerance: bad inputs.
//   - ErrNonFinite: f returned NaN/±Inf, or a panel estimate overflowed
//     (unless WithNoFiniteCheck).
//   - ErrMaxDepth, ErrIntervalUnderflow, ErrMaxEvaluations: no convergence.
func Integrate(f Integrand, a, b, eps float64, opts ...Option) (float64, error) {
	res, err := integrate(methodIntegrate, f, a, b, eps, gatherOptions(opts...))
	if err != nil {
		return 0, err
	}

	return res.Value, nil
}

// IntegrateDetailed runs the same computation as Integrate and also reports
// how much work it took. See Result.
func IntegrateDetailed(f Integrand, a, b, eps float64, opts ...Option) (Result, error) {
	return integrate(methodIntegrateDetailed, f, a, b, eps, gatherOptions(opts...))
}

// panel is one pending subinterval on the work list.
type panel struct {
	a, b  float64
	eps   float64
	depth int
}

// sampler evaluates the integrand, counts calls and enforces the finite-value policy.
type sampler struct {
	f           Integrand
	checkFinite bool
	evals       int
	maxEvals    int
}

// at returns f(x), or ErrNonFinite when checking is on and f(x) is NaN/±Inf.
func (s *sampler) at(x float64) (float64, error) {
	y := s.f(x)
	s.evals++
	if s.checkFinite && !isFinite(y) {
		return 0, fmt.Errorf("f(%g)=%g: %w", x, y, ErrNonFinite)
	}

	return y, nil
}

// estimate returns the Gauss–Legendre and reference estimates of p, and
// the mass |d|·Σ|samples| that scales their rounding error.
// f(m) is sampled once and shared by both rules.
func (s *sampler) estimate(p panel, rule ReferenceRule) (gauss, ref, mass float64, err error) {
	if s.evals+evalsPerPanel > s.maxEvals {
		return 0, 0, 0, fmt.Errorf("%d of %d evaluations used: %w", s.evals, s.maxEvals, ErrMaxEvaluations)
	}

	var (
		m, d                   = midHalf(p.a, p.b)
		fa, fb, fm, fl, fr     float64
		xRight, xCenter, xLeft = m + NodeOuter*d, m + NodeCenter*d, m - NodeOuter*d
	)
	if fa, err = s.at(p.a); err != nil {
		return 0, 0, 0, err
	}
	if fb, err = s.at(p.b); err != nil {
		return 0, 0, 0, err
	}
	if fm, err = s.at(xCenter); err != nil {
		return 0, 0, 0, err
	}
	if fr, err = s.at(xRight); err != nil {
		return 0, 0, 0, err
	}
	if fl, err = s.at(xLeft); err != nil {
		return 0, 0, 0, err
	}

	gauss = gaussSum(d, fr, fm, fl)
	switch rule {
	case TrapezoidRule:
		ref = trapezoidSum(d, fa, fb)
	default:
		ref = simpsonSum(d, fa, fm, fb)
	}
	if s.checkFinite && (!isFinite(gauss) || !isFinite(ref)) {
		return 0, 0, 0, fmt.Errorf("panel [%g, %g] estimates gauss=%g ref=%g: %w",
			p.a, p.b, gauss, ref, ErrNonFinite)
	}
	ad := math.Abs(d)
	mass = ad*math.Abs(fa) + ad*math.Abs(fb) + ad*math.Abs(fm) + ad*math.Abs(fr) + ad*math.Abs(fl)

	return gauss, ref, mass, nil
}

// roundoffFloor returns k·2⁻⁵²·mass, or 0 when that is not finite so an
// overflowed panel can never be accepted by its own rounding floor.
func roundoffFloor(k, mass float64) float64 {
	floor := k * machineEpsilon * mass
	if !isFinite(floor) {
		return 0
	}

	return floor
}

// integrate is the shared kernel behind Integrate and IntegrateDetailed.
func integrate(method string, f Integrand, a, b, eps float64, o Options) (Result, error) {
	// Stage 1: validate the call contract
	if err := validateInputs(method, f, a, b, eps); err != nil {
		return Result{}, err
	}

	// Stage 2: zero-width interval integrates to exactly 0
	if a == b {
		return Result{}, nil
	}

	// Stage 3: drain the work list, left halves first
	var (
		s     = sampler{f: f, checkFinite: o.checkFinite, maxEvals: o.maxEvaluations}
		stack = make([]panel, 0, min(o.maxDepth, DefaultMaxDepth)+2) // holds at most depth+1 panels
		res   Result
		p     panel
		m     float64
		diff  float64
		tol   float64
		mass  float64
		gauss float64
		ref   float64
		err   error
	)
	stack = append(stack, panel{a: a, b: b, eps: eps})
	for len(stack) > 0 {
		p = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		gauss, ref, mass, err = s.estimate(p, o.reference)
		if err != nil {
			return Result{}, fmt.Errorf("%s: %w", method, err)
		}

		// Non-finite estimates were rejected above unless finite checking is
		// off; then a NaN diff compares false and is accepted silently.
		diff = math.Abs(gauss - ref)
		tol = math.Max(p.eps, roundoffFloor(o.roundoff, mass))
		if !(diff > tol) {
			res.Value += gauss
			res.AbsErr += diff
			res.Intervals++
			if p.depth > res.Depth {
				res.Depth = p.depth
			}
			continue
		}

		// Stage 4: split, unless a guard forbids it
		if p.depth >= o.maxDepth {
			return Result{}, fmt.Errorf("%s: panel [%g, %g] at depth %d: %w",
				method, p.a, p.b, p.depth, ErrMaxDepth)
		}
		m, _ = midHalf(p.a, p.b)
		if !strictlyInside(m, p.a, p.b) || math.Abs(p.b-p.a) < o.minWidth {
			return Result{}, fmt.Errorf("%s: panel [%g, %g] at depth %d: %w",
				method, p.a, p.b, p.depth, ErrIntervalUnderflow)
		}
		stack = append(stack,
			panel{a: m, b: p.b, eps: 0.5 * tol, depth: p.depth + 1},
			panel{a: p.a, b: m, eps: 0.5 * tol, depth: p.depth + 1},
		)
	}
	res.Evaluations = s.evals

	return res, nil
}

// strictlyInside reports whether m lies strictly between a and b (either order).
func strictlyInside(m, a, b float64) bool {
	if a > b {
		a, b = b, a
	}

	return a < m && m < b
}

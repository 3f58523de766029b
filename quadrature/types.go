// SPDX-License-Identifier: MIT

package quadrature

// Integrand is a real function of one real variable. It must be pure:
// the algorithm evaluates it an unspecified number of times at arbitrary
// points of [a,b], including both endpoints.
type Integrand func(x float64) float64

// ReferenceRule selects the lower-order estimate that the Gauss–Legendre
// value is compared against on every panel.
//
//   - SimpsonRule   — d·(f(a) + 4·f(m) + f(b)) / 3. Exact up to degree 3,
//     so cubic integrands are accepted without subdivision.
//   - TrapezoidRule — d·(f(a) + f(b)). Exact up to degree 1; much more
//     pessimistic, hence more subdivision for the same eps.
type ReferenceRule int

const (
	// SimpsonRule compares against Simpson's rule (default).
	SimpsonRule ReferenceRule = iota

	// TrapezoidRule compares against the trapezoid rule.
	TrapezoidRule
)

// String returns a stable name for the rule.
func (r ReferenceRule) String() string {
	switch r {
	case SimpsonRule:
		return "simpson"
	case TrapezoidRule:
		return "trapezoid"
	default:
		return "unknown"
	}
}

// valid reports whether r names a supported rule.
func (r ReferenceRule) valid() bool {
	return r == SimpsonRule || r == TrapezoidRule
}

// Result holds the outcome of IntegrateDetailed.
type Result struct {
	// Value is the approximate integral ∫ₐᵇ f(x) dx.
	Value float64

	// AbsErr is the sum of |gauss − reference| over accepted panels.
	// It bounds the heuristic error estimate, not the true error, and may
	// exceed eps when eps is below float64 rounding at the integral's scale.
	AbsErr float64

	// Intervals is the number of accepted panels.
	Intervals int

	// Evaluations is the number of integrand calls.
	Evaluations int

	// Depth is the deepest subdivision level of an accepted panel
	// (0 means the whole interval was accepted at once).
	Depth int
}

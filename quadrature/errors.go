// SPDX-License-Identifier: MIT
// Package: lvquad/quadrature
//
// errors.go — sentinel errors for the quadrature package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Call sites attach context with fmt.Errorf("Integrate: ...: %w", ErrX).
//   • Integrate never panics on user input; panics are confined to the
//     WithX option constructors (programmer error).

package quadrature

import (
	"errors"
	"fmt"
)

var (
	// ErrNilIntegrand is returned when f == nil.
	ErrNilIntegrand = errors.New("quadrature: integrand is nil")

	// ErrInvalidBounds is returned when a or b is NaN or ±Inf.
	ErrInvalidBounds = errors.New("quadrature: interval bounds must be finite")

	// ErrInvalidTolerance is returned when eps is not a positive finite number.
	ErrInvalidTolerance = errors.New("quadrature: tolerance must be positive and finite")

	// ErrNonFinite is returned when the integrand yields NaN or ±Inf at a
	// sampled point while finite-value checking is enabled.
	ErrNonFinite = errors.New("quadrature: non-finite integrand value")

	// ErrNoConvergence groups every failure where the error estimate did not
	// fall within tolerance before a guard tripped.
	ErrNoConvergence = errors.New("quadrature: failed to converge")
)

// Guard-specific sentinels. Each one satisfies errors.Is(err, ErrNoConvergence).
var (
	// ErrMaxDepth is returned when a panel still fails the check at the
	// configured maximum subdivision depth.
	ErrMaxDepth = fmt.Errorf("%w: maximum subdivision depth exceeded", ErrNoConvergence)

	// ErrIntervalUnderflow is returned when a failing panel can no longer be
	// split: its float64 midpoint is not strictly inside it, or it is
	// narrower than the configured minimum width.
	ErrIntervalUnderflow = fmt.Errorf("%w: interval too narrow to subdivide", ErrNoConvergence)

	// ErrMaxEvaluations is returned when the integrand evaluation budget is spent.
	ErrMaxEvaluations = fmt.Errorf("%w: evaluation budget exhausted", ErrNoConvergence)
)

// SPDX-License-Identifier: MIT

package quadrature

import (
	"fmt"
	"math"
)

// validateInputs checks the call contract of Integrate in a fixed order:
// integrand → bounds → tolerance. Errors are wrapped with the method name.
// Complexity: O(1).
func validateInputs(method string, f Integrand, a, b, eps float64) error {
	if f == nil {
		return fmt.Errorf("%s: %w", method, ErrNilIntegrand)
	}
	if !isFinite(a) || !isFinite(b) {
		return fmt.Errorf("%s: [%g, %g]: %w", method, a, b, ErrInvalidBounds)
	}
	if !isFinite(eps) || eps <= 0 {
		return fmt.Errorf("%s: eps=%g: %w", method, eps, ErrInvalidTolerance)
	}

	return nil
}

// isFinite reports whether x is neither NaN nor ±Inf.
func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

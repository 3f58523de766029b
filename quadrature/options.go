// SPDX-License-Identifier: MIT

// Package quadrature: functional configuration for Integrate.
// This file defines:
//   - Option / Options (functional options with unexported state),
//   - documented defaults (constants),
//   - WithX constructors that panic on nonsensical values,
//   - gatherOptions, which resolves defaults and user options.
//
// Notes:
//   - Every guard converts a pathological input into a returned error
//     instead of unbounded work. The defaults are loose enough that smooth
//     integrands never come near them.
//   - Options are applied in order; last writer wins.
package quadrature

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxDepth caps the subdivision depth. A panel at depth k has
	// width |b−a|/2^k and tolerance eps/2^k.
	DefaultMaxDepth = 64

	// DefaultMinWidth is the smallest panel width that may still be split.
	// 0 means “split until float64 can no longer represent the midpoint”.
	DefaultMinWidth = 0.0

	// DefaultMaxEvaluations caps the number of integrand calls per Integrate.
	DefaultMaxEvaluations = 1 << 22

	// DefaultCheckFinite rejects NaN/±Inf samples with ErrNonFinite.
	DefaultCheckFinite = true

	// DefaultReferenceRule is the estimate compared against Gauss–Legendre.
	DefaultReferenceRule = SimpsonRule

	// DefaultRoundoffFactor scales the rounding floor of the acceptance
	// test: a panel is accepted once |gauss − ref| ≤ max(eps, k·2⁻⁵²·mass),
	// where mass is |d| times the sum of the sample magnitudes.
	// 0 turns the floor off and makes eps purely absolute.
	DefaultRoundoffFactor = 50.0
)

// machineEpsilon is the spacing of float64 values just above 1.
const machineEpsilon = 0x1p-52

// evalsPerPanel is the number of integrand calls needed to judge one panel:
// f(a), f(b), f(m) and the two outer Gauss nodes.
const evalsPerPanel = 5

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicMaxDepthInvalid       = "quadrature: WithMaxDepth: depth must be ≥ 0"
	panicMinWidthInvalid       = "quadrature: WithMinWidth: width must be finite, non-negative"
	panicMaxEvaluationsInvalid = "quadrature: WithMaxEvaluations: budget must be ≥ 5"
	panicReferenceRuleInvalid  = "quadrature: WithReferenceRule: unknown rule"
	panicRoundoffFactorInvalid = "quadrature: WithRoundoffFactor: factor must be finite, non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; entry points accept ...Option.
type Options struct {
	maxDepth       int           // DefaultMaxDepth
	minWidth       float64       // DefaultMinWidth
	maxEvaluations int           // DefaultMaxEvaluations
	checkFinite    bool          // DefaultCheckFinite
	reference      ReferenceRule // DefaultReferenceRule
	roundoff       float64       // DefaultRoundoffFactor
}

// WithMaxDepth sets the deepest subdivision level allowed before Integrate
// gives up with ErrMaxDepth. Depth 0 allows only the initial panel.
// Panics if depth < 0.
// Complexity: O(1).
func WithMaxDepth(depth int) Option {
	if depth < 0 {
		panic(panicMaxDepthInvalid)
	}

	return func(o *Options) { o.maxDepth = depth }
}

// WithMinWidth sets the narrowest panel that may still be split. A failing
// panel narrower than w aborts with ErrIntervalUnderflow.
// Panics if w is negative or non-finite.
// Complexity: O(1).
func WithMinWidth(w float64) Option {
	if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
		panic(panicMinWidthInvalid)
	}

	return func(o *Options) { o.minWidth = w }
}

// WithMaxEvaluations caps the total number of integrand calls. Integrate
// fails with ErrMaxEvaluations rather than exceed it.
// Panics if n < 5 (a single panel needs 5 calls).
// Complexity: O(1).
func WithMaxEvaluations(n int) Option {
	if n < evalsPerPanel {
		panic(panicMaxEvaluationsInvalid)
	}

	return func(o *Options) { o.maxEvaluations = n }
}

// WithFiniteCheck enables NaN/±Inf detection on every sample (default).
func WithFiniteCheck() Option {
	return func(o *Options) { o.checkFinite = true }
}

// WithNoFiniteCheck disables NaN/±Inf detection. Non-finite samples then
// propagate arithmetically: a NaN estimate is accepted silently, an infinite
// one forces subdivision until a convergence guard trips.
func WithNoFiniteCheck() Option {
	return func(o *Options) { o.checkFinite = false }
}

// WithReferenceRule selects the lower-order reference estimate.
// Panics on an unknown rule.
func WithReferenceRule(r ReferenceRule) Option {
	if !r.valid() {
		panic(panicReferenceRuleInvalid)
	}

	return func(o *Options) { o.reference = r }
}

// WithRoundoffFactor sets k in the rounding floor max(eps, k·2⁻⁵²·mass)
// used to accept a panel. Without a floor, an eps below the rounding error
// at the integrand's scale can never be met and every such call ends in a
// convergence guard. k = 0 disables the floor.
// Panics if k is negative or non-finite.
func WithRoundoffFactor(k float64) Option {
	if math.IsNaN(k) || math.IsInf(k, 0) || k < 0 {
		panic(panicRoundoffFactorInvalid)
	}

	return func(o *Options) { o.roundoff = k }
}

// gatherOptions resolves defaults first, then applies user options in order.
func gatherOptions(user ...Option) Options {
	o := Options{
		maxDepth:       DefaultMaxDepth,
		minWidth:       DefaultMinWidth,
		maxEvaluations: DefaultMaxEvaluations,
		checkFinite:    DefaultCheckFinite,
		reference:      DefaultReferenceRule,
		roundoff:       DefaultRoundoffFactor,
	}
	for _, set := range user {
		if set != nil {
			set(&o) // last-writer-wins
		}
	}

	return o
}

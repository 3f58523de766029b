// SPDX-License-Identifier: MIT

package quadrature

// Test bridge: exposes the resolved Options and panic messages to
// quadrature_test without widening the production API.

// OptionsSnapshot is a read-only view of the resolved Options.
type OptionsSnapshot struct {
	MaxDepth       int
	MinWidth       float64
	MaxEvaluations int
	CheckFinite    bool
	Reference      ReferenceRule
	Roundoff       float64
}

// GatherOptionsSnapshot_TestOnly resolves opts the way Integrate does.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{
		MaxDepth:       o.maxDepth,
		MinWidth:       o.minWidth,
		MaxEvaluations: o.maxEvaluations,
		CheckFinite:    o.checkFinite,
		Reference:      o.reference,
		Roundoff:       o.roundoff,
	}
}

// Panic message exports to avoid magic strings in tests.
const (
	PanicMaxDepthInvalid_TestOnly       = panicMaxDepthInvalid
	PanicMinWidthInvalid_TestOnly       = panicMinWidthInvalid
	PanicMaxEvaluationsInvalid_TestOnly = panicMaxEvaluationsInvalid
	PanicReferenceRuleInvalid_TestOnly  = panicReferenceRuleInvalid
	PanicRoundoffFactorInvalid_TestOnly = panicRoundoffFactorInvalid
)

// EvalsPerPanel_TestOnly is the number of integrand calls per judged panel.
const EvalsPerPanel_TestOnly = evalsPerPanel

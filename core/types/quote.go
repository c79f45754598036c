// Package types - Quote and breakdown types
package types

// CanceledTotal is the sentinel returned by the simplified
// confirm-or-cancel workflow for invalid or unconfirmed requests.
// A legitimate zero total (discounts flooring the amount) is distinct
// from this sentinel.
const CanceledTotal int64 = -1

// LineItem is a single labeled adjustment in the quote breakdown.
// Surcharges carry a positive amount, discounts a negative one.
type LineItem struct {
	// Label describes the adjustment
	Label string `json:"label"`

	// Amount is the signed delta in whole currency units
	Amount int64 `json:"amount"`
}

// QuotedFeature is a resolved feature as it appears in a quote
type QuotedFeature struct {
	// Name is the feature display name
	Name string `json:"name"`

	// Cost is the feature cost
	Cost int64 `json:"cost"`

	// Type is the standard/premium classification
	Type FeatureType `json:"type"`
}

// Quote is the sole output contract of the pricing engine: either a
// priced, itemized quote (Valid true) or a rejection with a reason.
type Quote struct {
	// Valid indicates whether the request passed validation
	Valid bool `json:"valid"`

	// Error is the rejection reason when Valid is false
	Error string `json:"error,omitempty"`

	// PlanName is the resolved plan display name
	PlanName string `json:"plan_name,omitempty"`

	// PlanCost is the plan base cost
	PlanCost int64 `json:"plan_cost,omitempty"`

	// Features are the resolved, deduplicated features
	Features []QuotedFeature `json:"features,omitempty"`

	// FeaturesCost is the summed feature cost
	FeaturesCost int64 `json:"features_cost,omitempty"`

	// Subtotal is plan cost plus features cost, before modifiers
	Subtotal int64 `json:"subtotal,omitempty"`

	// GroupSize is the number of members joining together
	GroupSize int `json:"group_size,omitempty"`

	// Breakdown is the ordered list of applied modifier line items
	Breakdown []LineItem `json:"breakdown,omitempty"`

	// Total is the final amount, never negative
	Total int64 `json:"total"`
}

// Invalid builds a rejection quote
func Invalid(reason string) *Quote {
	return &Quote{Valid: false, Error: reason, Total: CanceledTotal}
}

// Package pricing - Price modifiers
// Each modifier inspects the running total and the context, and may
// adjust the total and emit a labeled line item. The set is closed:
// surcharge, group discount, special offer.
package pricing

import (
	"fmt"

	"gym-cost/core/types"
)

// Modifier is one stage of the price modifier chain
type Modifier interface {
	// Name identifies the modifier
	Name() string

	// Applies reports whether this modifier affects the request
	Applies(ctx *Context, running int64) bool

	// Apply returns the new running total and the emitted line item
	Apply(ctx *Context, running int64) (int64, types.LineItem)
}

// PremiumSurcharge adds 15% of the running subtotal when at least
// one selected feature is premium-classified.
type PremiumSurcharge struct{}

// Name identifies the modifier
func (PremiumSurcharge) Name() string { return "premium_surcharge" }

// Applies reports whether any selected feature is premium
func (PremiumSurcharge) Applies(ctx *Context, _ int64) bool {
	return ctx.HasPremiumFeature()
}

// Apply adds the surcharge to the running total
func (PremiumSurcharge) Apply(ctx *Context, running int64) (int64, types.LineItem) {
	surcharge := roundedShare(running, premiumSurchargeRate)
	return running + surcharge, types.LineItem{
		Label:  "Premium features surcharge (15%)",
		Amount: surcharge,
	}
}

// GroupDiscount subtracts 10% when two or more members join
// together. The discount is computed on the post-surcharge amount,
// not the original subtotal.
type GroupDiscount struct{}

// Name identifies the modifier
func (GroupDiscount) Name() string { return "group_discount" }

// Applies reports whether the group qualifies
func (GroupDiscount) Applies(ctx *Context, _ int64) bool {
	return ctx.GroupSize() >= 2
}

// Apply subtracts the discount from the running total
func (GroupDiscount) Apply(ctx *Context, running int64) (int64, types.LineItem) {
	discount := roundedShare(running, groupDiscountRate)
	return running - discount, types.LineItem{
		Label:  fmt.Sprintf("Group discount (10%% for %d)", ctx.GroupSize()),
		Amount: -discount,
	}
}

// SpecialOffer applies a tiered flat discount once the running
// total clears fixed thresholds. Both comparisons are strict, and
// only the highest qualifying tier applies.
type SpecialOffer struct{}

// Offer tier thresholds and amounts
const (
	offerUpperThreshold int64 = 400
	offerUpperDiscount  int64 = 50
	offerLowerThreshold int64 = 200
	offerLowerDiscount  int64 = 20
)

// Name identifies the modifier
func (SpecialOffer) Name() string { return "special_offer" }

// Applies reports whether the total clears the lowest tier
func (SpecialOffer) Applies(_ *Context, running int64) bool {
	return running > offerLowerThreshold
}

// Apply subtracts the highest qualifying tier discount
func (SpecialOffer) Apply(_ *Context, running int64) (int64, types.LineItem) {
	if running > offerUpperThreshold {
		return running - offerUpperDiscount, types.LineItem{
			Label:  fmt.Sprintf("Special offer (>$%d)", offerUpperThreshold),
			Amount: -offerUpperDiscount,
		}
	}
	return running - offerLowerDiscount, types.LineItem{
		Label:  fmt.Sprintf("Special offer (>$%d)", offerLowerThreshold),
		Amount: -offerLowerDiscount,
	}
}

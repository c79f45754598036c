// Package pricing - Calculation context
// The context is an immutable snapshot of the validated inputs.
// Modifiers read it, never write it.
package pricing

import (
	"gym-cost/core/catalog"
	"gym-cost/core/types"
)

// Context carries the resolved inputs through the modifier chain
type Context struct {
	plan      *types.MembershipPlan
	features  []*types.AdditionalFeature
	groupSize int
}

// NewContext builds a context from a validated selection
func NewContext(resolved *catalog.Resolved) *Context {
	return &Context{
		plan:      resolved.Plan,
		features:  resolved.Features,
		groupSize: resolved.GroupSize,
	}
}

// mustResolved enforces the contract that the chain only runs on
// validated input. Anything else is a programming error, not a
// user-facing condition.
func (c *Context) mustResolved() {
	if c == nil || c.plan == nil {
		panic("pricing: modifier chain invoked with unresolved context")
	}
}

// Plan returns the resolved plan
func (c *Context) Plan() *types.MembershipPlan {
	return c.plan
}

// Features returns the resolved, deduplicated features
func (c *Context) Features() []*types.AdditionalFeature {
	return c.features
}

// GroupSize returns the group size
func (c *Context) GroupSize() int {
	return c.groupSize
}

// FeaturesCost sums the selected feature costs
func (c *Context) FeaturesCost() int64 {
	var total int64
	for _, f := range c.features {
		total += f.Cost
	}
	return total
}

// Subtotal is the plan base cost plus all feature costs, the seed
// value for the modifier chain
func (c *Context) Subtotal() int64 {
	return c.plan.Cost + c.FeaturesCost()
}

// HasPremiumFeature reports whether any selected feature is
// premium-classified
func (c *Context) HasPremiumFeature() bool {
	for _, f := range c.features {
		if f.IsPremium() {
			return true
		}
	}
	return false
}

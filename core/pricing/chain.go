// Package pricing - Modifier chain
package pricing

import "gym-cost/core/types"

// Chain is a fixed, ordered sequence of modifiers. Each stage
// receives the output of the previous one; the order is a
// correctness invariant, reordering changes the monetary result.
type Chain struct {
	modifiers []Modifier
}

// NewChain builds a chain from an ordered modifier list
func NewChain(modifiers ...Modifier) *Chain {
	return &Chain{modifiers: modifiers}
}

// DefaultChain returns the standard membership pricing chain:
// premium surcharge, then group discount, then special offer.
func DefaultChain() *Chain {
	return NewChain(PremiumSurcharge{}, GroupDiscount{}, SpecialOffer{})
}

// Apply seeds the running total with the context subtotal, runs
// every applicable modifier in order, and clamps the result at
// zero. Returns the final total and the emitted line items.
func (c *Chain) Apply(ctx *Context) (int64, []types.LineItem) {
	ctx.mustResolved()

	running := ctx.Subtotal()
	var items []types.LineItem
	for _, m := range c.modifiers {
		if !m.Applies(ctx, running) {
			continue
		}
		next, item := m.Apply(ctx, running)
		running = next
		items = append(items, item)
	}

	if running < 0 {
		running = 0
	}
	return running, items
}

// Package pricing - Pricing engine
// The engine orchestrates validation, context construction and the
// modifier chain. It never performs I/O; rendering belongs to the
// output package and error display to the callers.
package pricing

import (
	"go.uber.org/zap"

	"gym-cost/core/catalog"
	"gym-cost/core/types"
	"gym-cost/internal/logging"
)

// Engine prices membership requests against a catalog
type Engine struct {
	catalog *catalog.Catalog
	chain   *Chain
}

// NewEngine creates an engine with the default modifier chain
func NewEngine(cat *catalog.Catalog) *Engine {
	return &Engine{
		catalog: cat,
		chain:   DefaultChain(),
	}
}

// NewEngineWithChain creates an engine with a custom chain
func NewEngineWithChain(cat *catalog.Catalog, chain *Chain) *Engine {
	return &Engine{catalog: cat, chain: chain}
}

// Catalog returns the engine's catalog
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// CalculateTotalCost validates the selection and runs the modifier
// chain, producing an itemized quote or a rejection. Pure with
// respect to the engine: identical inputs give identical quotes.
func (e *Engine) CalculateTotalCost(planKey string, featureKeys []string, groupSize int) *types.Quote {
	resolved, err := e.catalog.ResolveRequest(planKey, featureKeys, groupSize)
	if err != nil {
		logging.Debug("request rejected",
			zap.String("plan", planKey),
			zap.Error(err))
		return types.Invalid(err.Error())
	}

	ctx := NewContext(resolved)
	total, breakdown := e.chain.Apply(ctx)

	quote := &types.Quote{
		Valid:        true,
		PlanName:     ctx.Plan().Name,
		PlanCost:     ctx.Plan().Cost,
		FeaturesCost: ctx.FeaturesCost(),
		Subtotal:     ctx.Subtotal(),
		GroupSize:    groupSize,
		Breakdown:    breakdown,
		Total:        total,
	}
	for _, f := range ctx.Features() {
		quote.Features = append(quote.Features, types.QuotedFeature{
			Name: f.Name,
			Cost: f.Cost,
			Type: f.Type,
		})
	}

	logging.Debug("quote calculated",
		zap.String("plan", quote.PlanName),
		zap.Int64("subtotal", quote.Subtotal),
		zap.Int64("total", quote.Total))
	return quote
}

// ProcessMembership is the simplified confirm-or-cancel entry
// point. It returns the computed total for a valid, confirmed
// request and the -1 sentinel otherwise. The sentinel is never a
// legitimate price; a zero total is.
func (e *Engine) ProcessMembership(planKey string, featureKeys []string, groupSize int, confirmed bool) int64 {
	quote := e.CalculateTotalCost(planKey, featureKeys, groupSize)
	if !quote.Valid {
		return types.CanceledTotal
	}
	if !confirmed {
		logging.Debug("membership not confirmed", zap.String("plan", quote.PlanName))
		return types.CanceledTotal
	}
	return quote.Total
}

// Package catalog - Request validation
// Resolves raw user selections against the catalog. Pure and
// deterministic: same inputs and catalog always give the same result.
package catalog

import (
	"gym-cost/core/types"
	"gym-cost/internal/errors"
)

// Resolved is a validated selection ready for pricing
type Resolved struct {
	// Plan is the resolved membership plan
	Plan *types.MembershipPlan

	// Features are the resolved features, deduplicated, in request order
	Features []*types.AdditionalFeature

	// GroupSize is the number of members joining together
	GroupSize int
}

// ResolveRequest validates a raw plan key, raw feature keys and a
// group size against the catalog. Any single invalid or unavailable
// feature rejects the whole request; there is no partial acceptance.
func (c *Catalog) ResolveRequest(planKey string, featureKeys []string, groupSize int) (*Resolved, error) {
	if groupSize < 1 {
		return nil, errors.Inputf("invalid group size: %d (must be at least 1)", groupSize)
	}

	plan, err := c.Plan(planKey)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(featureKeys))
	features := make([]*types.AdditionalFeature, 0, len(featureKeys))
	for _, raw := range featureKeys {
		key := Normalize(raw)
		if key == "" {
			continue
		}
		if seen[key] {
			// a feature requested twice counts once
			continue
		}
		feature, err := c.Feature(key)
		if err != nil {
			return nil, err
		}
		seen[key] = true
		features = append(features, feature)
	}

	return &Resolved{
		Plan:      plan,
		Features:  features,
		GroupSize: groupSize,
	}, nil
}

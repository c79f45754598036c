// Package catalog - Authoritative membership catalog
// Defines the plans and additional features that can be quoted.
// This is the source of truth for validation and pricing.
package catalog

import (
	"strings"

	"gym-cost/core/types"
	"gym-cost/internal/errors"
)

// Catalog is the registry of plans and features.
// Keys are normalized at insert time; lookups are case-insensitive
// by construction. Immutable once handed to the pricing engine.
type Catalog struct {
	plans    map[string]*types.MembershipPlan
	features map[string]*types.AdditionalFeature

	// insertion order, for stable rendering
	planKeys    []string
	featureKeys []string
}

// New creates an empty catalog
func New() *Catalog {
	return &Catalog{
		plans:    make(map[string]*types.MembershipPlan),
		features: make(map[string]*types.AdditionalFeature),
	}
}

// Normalize produces the canonical form of a lookup key
func Normalize(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// RegisterPlan adds a plan to the catalog. The last registration
// for a key wins, which is what lets a catalog file override the
// built-in defaults.
func (c *Catalog) RegisterPlan(plan types.MembershipPlan) {
	key := Normalize(plan.Key)
	plan.Key = key
	if _, exists := c.plans[key]; !exists {
		c.planKeys = append(c.planKeys, key)
	}
	c.plans[key] = &plan
}

// RegisterFeature adds a feature to the catalog
func (c *Catalog) RegisterFeature(feature types.AdditionalFeature) {
	key := Normalize(feature.Key)
	feature.Key = key
	if _, exists := c.features[key]; !exists {
		c.featureKeys = append(c.featureKeys, key)
	}
	c.features[key] = &feature
}

// Plan resolves a plan key. Unknown keys and unavailable plans are
// distinct failures so callers can surface the right message.
func (c *Catalog) Plan(key string) (*types.MembershipPlan, error) {
	plan, ok := c.plans[Normalize(key)]
	if !ok {
		return nil, errors.NotFound("membership plan", strings.TrimSpace(key)).
			WithContext("options", strings.Join(c.planKeys, ", "))
	}
	if !plan.Available {
		return nil, errors.Unavailable("membership plan", plan.Name)
	}
	return plan, nil
}

// Feature resolves a feature key
func (c *Catalog) Feature(key string) (*types.AdditionalFeature, error) {
	feature, ok := c.features[Normalize(key)]
	if !ok {
		return nil, errors.NotFound("feature", strings.TrimSpace(key))
	}
	if !feature.Available {
		return nil, errors.Unavailable("feature", feature.Name)
	}
	return feature, nil
}

// Plans returns all plans in registration order
func (c *Catalog) Plans() []*types.MembershipPlan {
	result := make([]*types.MembershipPlan, 0, len(c.planKeys))
	for _, key := range c.planKeys {
		result = append(result, c.plans[key])
	}
	return result
}

// Features returns all features in registration order
func (c *Catalog) Features() []*types.AdditionalFeature {
	result := make([]*types.AdditionalFeature, 0, len(c.featureKeys))
	for _, key := range c.featureKeys {
		result = append(result, c.features[key])
	}
	return result
}

// FeaturesByType returns features of one classification, in
// registration order
func (c *Catalog) FeaturesByType(t types.FeatureType) []*types.AdditionalFeature {
	var result []*types.AdditionalFeature
	for _, key := range c.featureKeys {
		if f := c.features[key]; f.Type == t {
			result = append(result, f)
		}
	}
	return result
}

// Stats returns catalog statistics
func (c *Catalog) Stats() Stats {
	stats := Stats{Plans: len(c.plans)}
	for _, f := range c.features {
		stats.Features++
		if f.IsPremium() {
			stats.PremiumFeatures++
		}
	}
	return stats
}

// Stats holds catalog statistics
type Stats struct {
	Plans           int
	Features        int
	PremiumFeatures int
}

// Package types - Membership catalog types
package types

import "fmt"

// FeatureType classifies an additional feature
type FeatureType string

const (
	// FeatureStandard is a regular add-on
	FeatureStandard FeatureType = "standard"

	// FeaturePremium triggers the premium surcharge when selected
	FeaturePremium FeatureType = "premium"
)

// String returns the string representation
func (t FeatureType) String() string {
	return string(t)
}

// MembershipPlan represents a membership plan.
// Plans are created at catalog construction and never mutated.
type MembershipPlan struct {
	// Key is the normalized lookup key
	Key string `json:"key"`

	// Name is the display name
	Name string `json:"name"`

	// Cost is the monthly base cost in whole currency units
	Cost int64 `json:"cost"`

	// Benefits lists what the plan includes, in display order
	Benefits []string `json:"benefits,omitempty"`

	// Available indicates whether the plan can currently be selected
	Available bool `json:"available"`
}

// String returns a short display form
func (p *MembershipPlan) String() string {
	return fmt.Sprintf("%s - $%d/month", p.Name, p.Cost)
}

// AdditionalFeature represents an optional add-on feature.
// Same lifecycle as MembershipPlan.
type AdditionalFeature struct {
	// Key is the normalized lookup key
	Key string `json:"key"`

	// Name is the display name
	Name string `json:"name"`

	// Cost is the feature cost in whole currency units
	Cost int64 `json:"cost"`

	// Type is the standard/premium classification
	Type FeatureType `json:"type"`

	// Available indicates whether the feature can currently be selected
	Available bool `json:"available"`
}

// String returns a short display form
func (f *AdditionalFeature) String() string {
	return fmt.Sprintf("%s - $%d", f.Name, f.Cost)
}

// IsPremium reports whether selecting this feature triggers the surcharge
func (f *AdditionalFeature) IsPremium() bool {
	return f.Type == FeaturePremium
}

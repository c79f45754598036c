// Package catalog - Built-in gym catalog
package catalog

import "gym-cost/core/types"

// Default returns the built-in catalog of plans and features
func Default() *Catalog {
	c := New()

	c.RegisterPlan(types.MembershipPlan{
		Key:  "basic",
		Name: "Basic",
		Cost: 50,
		Benefits: []string{
			"Access to gym facilities",
			"Locker room access",
			"Basic equipment usage",
		},
		Available: true,
	})
	c.RegisterPlan(types.MembershipPlan{
		Key:  "premium",
		Name: "Premium",
		Cost: 100,
		Benefits: []string{
			"All Basic benefits",
			"Access to premium equipment",
			"Priority booking",
			"Nutrition consultation",
		},
		Available: true,
	})
	c.RegisterPlan(types.MembershipPlan{
		Key:  "family",
		Name: "Family",
		Cost: 150,
		Benefits: []string{
			"All Premium benefits",
			"Up to 4 family members",
			"Family fitness classes",
			"Childcare services",
		},
		Available: true,
	})

	c.RegisterFeature(types.AdditionalFeature{
		Key: "personal_training", Name: "Personal Training Sessions",
		Cost: 60, Type: types.FeatureStandard, Available: true,
	})
	c.RegisterFeature(types.AdditionalFeature{
		Key: "group_classes", Name: "Group Classes",
		Cost: 30, Type: types.FeatureStandard, Available: true,
	})
	c.RegisterFeature(types.AdditionalFeature{
		Key: "exclusive_facilities", Name: "Exclusive Facilities Access",
		Cost: 80, Type: types.FeaturePremium, Available: true,
	})
	c.RegisterFeature(types.AdditionalFeature{
		Key: "specialized_training", Name: "Specialized Training Programs",
		Cost: 100, Type: types.FeaturePremium, Available: true,
	})
	c.RegisterFeature(types.AdditionalFeature{
		Key: "nutrition_plan", Name: "Custom Nutrition Plan",
		Cost: 40, Type: types.FeatureStandard, Available: true,
	})
	c.RegisterFeature(types.AdditionalFeature{
		Key: "spa_access", Name: "Spa and Wellness Access",
		Cost: 70, Type: types.FeaturePremium, Available: true,
	})

	return c
}

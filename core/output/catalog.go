// Package output - Catalog rendering
package output

import (
	"io"

	"gym-cost/core/catalog"
	"gym-cost/core/types"
	"gym-cost/core/ui"
)

// RenderPlans writes the membership plan list
func RenderPlans(w io.Writer, cat *catalog.Catalog, showBenefits, noColor bool) {
	term := ui.NewWriter(w, noColor)
	term.Header("AVAILABLE MEMBERSHIP PLANS")
	for _, plan := range cat.Plans() {
		status := "✓ Available"
		if !plan.Available {
			status = "✗ Unavailable"
		}
		term.Println("")
		term.Println("%s [%s]", term.Emphasize(plan.String()), status)
		if showBenefits && len(plan.Benefits) > 0 {
			term.Println("Benefits:")
			for _, benefit := range plan.Benefits {
				term.Println("  • %s", benefit)
			}
		}
	}
}

// RenderFeatures writes the feature list grouped by classification
func RenderFeatures(w io.Writer, cat *catalog.Catalog, noColor bool) {
	term := ui.NewWriter(w, noColor)
	term.Header("ADDITIONAL FEATURES")

	renderGroup(term, "Standard Features:", cat.FeaturesByType(types.FeatureStandard))
	renderGroup(term, "Premium Features (15% surcharge):", cat.FeaturesByType(types.FeaturePremium))
}

func renderGroup(term *ui.Writer, title string, features []*types.AdditionalFeature) {
	if len(features) == 0 {
		return
	}
	term.Println("")
	term.Println("%s", title)
	for _, feature := range features {
		status := "✓"
		if !feature.Available {
			status = "✗"
		}
		term.Println("  [%s] %s - $%d [%s]", feature.Key, feature.Name, feature.Cost, status)
	}
}

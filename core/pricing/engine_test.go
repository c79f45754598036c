// Package pricing - Engine tests
package pricing

import (
	"reflect"
	"testing"

	"gym-cost/core/catalog"
	"gym-cost/core/types"
)

func defaultEngine() *Engine {
	return NewEngine(catalog.Default())
}

func TestQuoteWithoutPremiumFeature(t *testing.T) {
	// premium(100) + personal_training(60) + group_classes(30) = 190
	// no premium feature, group of 2: -round(19)=19 -> 171
	// 171 is not >200, no special offer
	engine := defaultEngine()

	quote := engine.CalculateTotalCost("premium", []string{"personal_training", "group_classes"}, 2)
	if !quote.Valid {
		t.Fatalf("Expected valid quote, got error: %s", quote.Error)
	}
	if quote.Subtotal != 190 {
		t.Errorf("Expected subtotal 190, got %d", quote.Subtotal)
	}
	if quote.Total != 151 {
		t.Errorf("Expected total 151, got %d", quote.Total)
	}
	if len(quote.Breakdown) != 1 {
		t.Fatalf("Expected only the group discount line item, got %d", len(quote.Breakdown))
	}
	if quote.Breakdown[0].Amount != -19 {
		t.Errorf("Expected -19 group discount, got %d", quote.Breakdown[0].Amount)
	}
}

func TestQuoteWithPremiumSurcharge(t *testing.T) {
	// basic(50) + exclusive_facilities(80, premium) = 130
	// surcharge round(19.5)=20 -> 150; solo, not >200
	engine := defaultEngine()

	quote := engine.CalculateTotalCost("basic", []string{"exclusive_facilities"}, 1)
	if !quote.Valid {
		t.Fatalf("Expected valid quote, got error: %s", quote.Error)
	}
	if quote.Total != 150 {
		t.Errorf("Expected total 150, got %d", quote.Total)
	}
	if len(quote.Breakdown) != 1 || quote.Breakdown[0].Amount != 20 {
		t.Errorf("Expected a single +20 surcharge line item, got %+v", quote.Breakdown)
	}
}

func TestQuoteUpperOfferTier(t *testing.T) {
	// family(150) + specialized_training(100) + exclusive_facilities(80)
	//   + spa_access(70) = 400
	// surcharge round(60)=60 -> 460; solo; 460 > 400 -> -50 -> 410
	engine := defaultEngine()

	quote := engine.CalculateTotalCost("family",
		[]string{"specialized_training", "exclusive_facilities", "spa_access"}, 1)
	if !quote.Valid {
		t.Fatalf("Expected valid quote, got error: %s", quote.Error)
	}
	if quote.Total != 410 {
		t.Errorf("Expected total 410, got %d", quote.Total)
	}
}

func TestQuoteIsDeterministic(t *testing.T) {
	engine := defaultEngine()

	first := engine.CalculateTotalCost("family", []string{"spa_access", "group_classes"}, 4)
	second := engine.CalculateTotalCost("family", []string{"spa_access", "group_classes"}, 4)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Identical inputs must yield identical quotes:\n%+v\n%+v", first, second)
	}
}

func TestQuoteIsCaseInsensitive(t *testing.T) {
	engine := defaultEngine()

	upper := engine.CalculateTotalCost("PREMIUM", []string{"Personal_Training"}, 1)
	lower := engine.CalculateTotalCost("premium", []string{"personal_training"}, 1)
	if upper.Total != lower.Total {
		t.Errorf("Case must not matter: %d vs %d", upper.Total, lower.Total)
	}
}

func TestQuoteCollapsesDuplicateFeatures(t *testing.T) {
	engine := defaultEngine()

	doubled := engine.CalculateTotalCost("basic", []string{"group_classes", "group_classes"}, 1)
	single := engine.CalculateTotalCost("basic", []string{"group_classes"}, 1)
	if doubled.Total != single.Total {
		t.Errorf("Duplicate feature must count once: %d vs %d", doubled.Total, single.Total)
	}
}

func TestQuoteRejectsInvalidInput(t *testing.T) {
	engine := defaultEngine()

	cases := []struct {
		name     string
		plan     string
		features []string
		group    int
	}{
		{"unknown plan", "platinum", nil, 1},
		{"unknown feature", "basic", []string{"helipad"}, 1},
		{"zero group size", "basic", nil, 0},
	}
	for _, tc := range cases {
		quote := engine.CalculateTotalCost(tc.plan, tc.features, tc.group)
		if quote.Valid {
			t.Errorf("%s: expected rejection", tc.name)
		}
		if quote.Error == "" {
			t.Errorf("%s: expected a descriptive error", tc.name)
		}
	}
}

func TestQuoteTotalsAreNeverNegative(t *testing.T) {
	engine := defaultEngine()

	plans := []string{"basic", "premium", "family"}
	features := [][]string{nil, {"group_classes"}, {"exclusive_facilities"},
		{"specialized_training", "spa_access", "personal_training"}}
	for _, plan := range plans {
		for _, fs := range features {
			for _, group := range []int{1, 2, 5} {
				quote := engine.CalculateTotalCost(plan, fs, group)
				if !quote.Valid {
					t.Fatalf("Unexpected rejection for %s/%v/%d: %s", plan, fs, group, quote.Error)
				}
				if quote.Total < 0 {
					t.Errorf("Negative total for %s/%v/%d: %d", plan, fs, group, quote.Total)
				}
			}
		}
	}
}

func TestProcessMembershipConfirmed(t *testing.T) {
	engine := defaultEngine()

	total := engine.ProcessMembership("premium", []string{"personal_training", "group_classes"}, 2, true)
	if total != 151 {
		t.Errorf("Expected 151, got %d", total)
	}
}

func TestProcessMembershipUnconfirmedReturnsSentinel(t *testing.T) {
	engine := defaultEngine()

	total := engine.ProcessMembership("premium", []string{"personal_training"}, 2, false)
	if total != types.CanceledTotal {
		t.Errorf("Unconfirmed membership must return -1, got %d", total)
	}
}

func TestProcessMembershipInvalidInputReturnsSentinel(t *testing.T) {
	engine := defaultEngine()

	for _, total := range []int64{
		engine.ProcessMembership("platinum", nil, 1, true),
		engine.ProcessMembership("basic", []string{"helipad"}, 1, true),
		engine.ProcessMembership("basic", nil, 0, true),
	} {
		if total != types.CanceledTotal {
			t.Errorf("Invalid input must return -1, got %d", total)
		}
	}
}

func TestUnavailablePlanIsRejected(t *testing.T) {
	cat := catalog.Default()
	cat.RegisterPlan(types.MembershipPlan{Key: "basic", Name: "Basic", Cost: 50, Available: false})
	engine := NewEngine(cat)

	quote := engine.CalculateTotalCost("basic", nil, 1)
	if quote.Valid {
		t.Fatal("Expected rejection for unavailable plan")
	}
	if engine.ProcessMembership("basic", nil, 1, true) != types.CanceledTotal {
		t.Error("Unavailable plan must return -1 from ProcessMembership")
	}
}

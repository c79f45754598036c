// Package catalog - Request validation tests
package catalog

import (
	"strings"
	"testing"

	"gym-cost/internal/errors"
)

func TestResolveRequestHappyPath(t *testing.T) {
	cat := Default()

	resolved, err := cat.ResolveRequest("premium", []string{"personal_training", "group_classes"}, 2)
	if err != nil {
		t.Fatalf("Expected valid request, got: %v", err)
	}
	if resolved.Plan.Name != "Premium" {
		t.Errorf("Expected Premium plan, got %s", resolved.Plan.Name)
	}
	if len(resolved.Features) != 2 {
		t.Errorf("Expected 2 features, got %d", len(resolved.Features))
	}
	if resolved.GroupSize != 2 {
		t.Errorf("Expected group size 2, got %d", resolved.GroupSize)
	}
}

func TestResolveRequestEmptyFeatureListIsValid(t *testing.T) {
	cat := Default()

	resolved, err := cat.ResolveRequest("basic", nil, 1)
	if err != nil {
		t.Fatalf("Expected valid request, got: %v", err)
	}
	if len(resolved.Features) != 0 {
		t.Errorf("Expected no features, got %d", len(resolved.Features))
	}
}

func TestResolveRequestDeduplicatesFeatures(t *testing.T) {
	cat := Default()

	resolved, err := cat.ResolveRequest("basic", []string{"group_classes", "GROUP_CLASSES", " group_classes "}, 1)
	if err != nil {
		t.Fatalf("Expected valid request, got: %v", err)
	}
	if len(resolved.Features) != 1 {
		t.Fatalf("Expected duplicates collapsed to 1 feature, got %d", len(resolved.Features))
	}
}

func TestResolveRequestRejectsWholeRequestOnBadFeature(t *testing.T) {
	cat := Default()

	_, err := cat.ResolveRequest("basic", []string{"group_classes", "helipad"}, 1)
	if err == nil {
		t.Fatal("Expected rejection for unknown feature")
	}
	if !errors.IsType(err, errors.TypeNotFound) {
		t.Errorf("Expected NOT_FOUND, got: %v", err)
	}
	// the offending key must be named
	if got := err.Error(); !strings.Contains(got, "helipad") {
		t.Errorf("Error must name the offending key, got: %s", got)
	}
}

func TestResolveRequestRejectsInvalidGroupSize(t *testing.T) {
	cat := Default()

	for _, size := range []int{0, -1, -10} {
		_, err := cat.ResolveRequest("basic", nil, size)
		if err == nil {
			t.Fatalf("Expected rejection for group size %d", size)
		}
		if !errors.IsType(err, errors.TypeInput) {
			t.Errorf("Expected INPUT_ERROR for group size %d, got: %v", size, err)
		}
	}
}

func TestResolveRequestIsIdempotent(t *testing.T) {
	cat := Default()

	first, err := cat.ResolveRequest("family", []string{"spa_access"}, 3)
	if err != nil {
		t.Fatalf("First resolve failed: %v", err)
	}
	second, err := cat.ResolveRequest("family", []string{"spa_access"}, 3)
	if err != nil {
		t.Fatalf("Second resolve failed: %v", err)
	}
	if first.Plan != second.Plan || len(first.Features) != len(second.Features) {
		t.Error("Repeated resolution must give identical results")
	}
}

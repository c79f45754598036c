// Package catalog - Catalog definition file tests
package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"gym-cost/internal/errors"
)

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.hcl")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write catalog file: %v", err)
	}
	return path
}

func TestLoadFileAddsEntries(t *testing.T) {
	path := writeCatalogFile(t, `
plan "student" {
  name     = "Student"
  cost     = 35
  benefits = ["Access to gym facilities"]
}

feature "sauna" {
  name = "Sauna Access"
  cost = 25
  type = "premium"
}
`)

	cat := Default()
	if err := cat.LoadFile(path); err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	plan, err := cat.Plan("student")
	if err != nil {
		t.Fatalf("Expected student plan, got: %v", err)
	}
	if plan.Cost != 35 {
		t.Errorf("Expected cost 35, got %d", plan.Cost)
	}

	feature, err := cat.Feature("sauna")
	if err != nil {
		t.Fatalf("Expected sauna feature, got: %v", err)
	}
	if !feature.IsPremium() {
		t.Error("Expected sauna to be premium-classified")
	}
}

func TestLoadFileOverridesBuiltins(t *testing.T) {
	path := writeCatalogFile(t, `
plan "basic" {
  name      = "Basic"
  cost      = 45
  available = false
}
`)

	cat := Default()
	if err := cat.LoadFile(path); err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	_, err := cat.Plan("basic")
	if !errors.IsType(err, errors.TypeUnavailable) {
		t.Errorf("Expected overridden basic plan to be unavailable, got: %v", err)
	}
}

func TestLoadFileDefaultsFeatureTypeToStandard(t *testing.T) {
	path := writeCatalogFile(t, `
feature "towel_service" {
  name = "Towel Service"
  cost = 10
}
`)

	cat := New()
	if err := cat.LoadFile(path); err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	feature, err := cat.Feature("towel_service")
	if err != nil {
		t.Fatalf("Expected towel_service feature, got: %v", err)
	}
	if feature.IsPremium() {
		t.Error("Expected default classification to be standard")
	}
}

func TestLoadFileRejectsNonPositiveCost(t *testing.T) {
	path := writeCatalogFile(t, `
plan "free" {
  name = "Free"
  cost = 0
}
`)

	cat := New()
	err := cat.LoadFile(path)
	if err == nil {
		t.Fatal("Expected error for non-positive cost")
	}
	if !errors.IsType(err, errors.TypeInput) {
		t.Errorf("Expected INPUT_ERROR, got: %v", err)
	}
}

func TestLoadFileRejectsUnknownFeatureType(t *testing.T) {
	path := writeCatalogFile(t, `
feature "mystery" {
  name = "Mystery"
  cost = 15
  type = "deluxe"
}
`)

	cat := New()
	if err := cat.LoadFile(path); err == nil {
		t.Fatal("Expected error for unknown feature type")
	}
}

func TestLoadFileReportsParseErrors(t *testing.T) {
	path := writeCatalogFile(t, `plan "broken" {`)

	cat := New()
	err := cat.LoadFile(path)
	if err == nil {
		t.Fatal("Expected parse error")
	}
	if !errors.IsType(err, errors.TypeParsing) {
		t.Errorf("Expected PARSING_ERROR, got: %v", err)
	}
}

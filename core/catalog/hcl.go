// Package catalog - HCL catalog definition files
// A catalog file layers extra plans and features over the built-in
// catalog; calculation logic never changes when entries are added.
package catalog

import (
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"gym-cost/core/types"
	"gym-cost/internal/errors"
)

// catalogFile is the HCL schema for a catalog definition file:
//
//	plan "student" {
//	  name      = "Student"
//	  cost      = 35
//	  benefits  = ["Access to gym facilities"]
//	}
//
//	feature "sauna" {
//	  name = "Sauna Access"
//	  cost = 25
//	  type = "premium"
//	}
type catalogFile struct {
	Plans    []planBlock    `hcl:"plan,block"`
	Features []featureBlock `hcl:"feature,block"`
}

type planBlock struct {
	Key       string   `hcl:"key,label"`
	Name      string   `hcl:"name"`
	Cost      int64    `hcl:"cost"`
	Benefits  []string `hcl:"benefits,optional"`
	Available *bool    `hcl:"available,optional"`
}

type featureBlock struct {
	Key       string `hcl:"key,label"`
	Name      string `hcl:"name"`
	Cost      int64  `hcl:"cost"`
	Type      string `hcl:"type,optional"`
	Available *bool  `hcl:"available,optional"`
}

// LoadFile merges a catalog definition file into the catalog.
// Entries with an existing key override the built-in ones.
func (c *Catalog) LoadFile(path string) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return errors.Parsing("failed to parse catalog file", diags)
	}

	var cf catalogFile
	if diags := gohcl.DecodeBody(file.Body, nil, &cf); diags.HasErrors() {
		return errors.Parsing("failed to decode catalog file", diags)
	}

	for _, p := range cf.Plans {
		if p.Cost <= 0 {
			return errors.Inputf("plan %q: cost must be positive", p.Key)
		}
		c.RegisterPlan(types.MembershipPlan{
			Key:       p.Key,
			Name:      p.Name,
			Cost:      p.Cost,
			Benefits:  p.Benefits,
			Available: p.Available == nil || *p.Available,
		})
	}

	for _, f := range cf.Features {
		if f.Cost <= 0 {
			return errors.Inputf("feature %q: cost must be positive", f.Key)
		}
		featureType := types.FeatureType(f.Type)
		switch featureType {
		case "":
			featureType = types.FeatureStandard
		case types.FeatureStandard, types.FeaturePremium:
		default:
			return errors.Inputf("feature %q: unknown type %q", f.Key, f.Type)
		}
		c.RegisterFeature(types.AdditionalFeature{
			Key:       f.Key,
			Name:      f.Name,
			Cost:      f.Cost,
			Type:      featureType,
			Available: f.Available == nil || *f.Available,
		})
	}

	return nil
}

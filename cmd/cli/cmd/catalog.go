// Package cmd - catalog listing commands
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"gym-cost/core/output"
	"gym-cost/internal/config"
)

// plansCmd lists the membership plans
var plansCmd = &cobra.Command{
	Use:   "plans",
	Short: "List membership plans",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := buildEngine()
		if err != nil {
			return err
		}
		cfg := config.Get()
		output.RenderPlans(os.Stdout, engine.Catalog(), cfg.Output.ShowBenefits, cfg.Output.NoColor)
		return nil
	},
}

// featuresCmd lists the additional features
var featuresCmd = &cobra.Command{
	Use:   "features",
	Short: "List additional features",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := buildEngine()
		if err != nil {
			return err
		}
		output.RenderFeatures(os.Stdout, engine.Catalog(), config.Get().Output.NoColor)
		return nil
	},
}

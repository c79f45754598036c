// Package cmd - quote command
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"gym-cost/core/output"
	"gym-cost/internal/config"
)

var (
	quotePlan     string
	quoteFeatures []string
	quoteGroup    int
	quoteFormat   string
)

// quoteCmd represents the quote command
var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Compute an itemized membership quote",
	Long: `Compute the final membership price for a plan, optional features
and a group size, with the full itemized breakdown.

Examples:
  gym-cost quote --plan basic
  gym-cost quote --plan premium --features personal_training,group_classes --group 2
  gym-cost quote --plan family --features spa_access --format json`,
	RunE: runQuote,
}

func init() {
	quoteCmd.Flags().StringVarP(&quotePlan, "plan", "p", "", "membership plan key (basic, premium, family)")
	quoteCmd.Flags().StringSliceVarP(&quoteFeatures, "features", "f", nil, "comma-separated feature keys")
	quoteCmd.Flags().IntVarP(&quoteGroup, "group", "g", 1, "group size")
	quoteCmd.Flags().StringVar(&quoteFormat, "format", "", "output format (cli, json)")
	_ = quoteCmd.MarkFlagRequired("plan")
}

func runQuote(cmd *cobra.Command, args []string) error {
	engine, err := buildEngine()
	if err != nil {
		return err
	}

	quote := engine.CalculateTotalCost(quotePlan, quoteFeatures, quoteGroup)

	cfg := config.Get()
	format := quoteFormat
	if format == "" {
		format = cfg.Output.DefaultFormat
	}

	formatter := output.New(format, cfg.Output.NoColor)
	if err := formatter.Render(os.Stdout, quote); err != nil {
		return err
	}

	if !quote.Valid {
		os.Exit(1)
	}
	return nil
}

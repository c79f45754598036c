// Package cmd - interactive enrollment
package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"gym-cost/core/output"
	"gym-cost/core/types"
	"gym-cost/core/ui"
	"gym-cost/internal/config"
)

// enrollCmd represents the interactive enrollment flow
var enrollCmd = &cobra.Command{
	Use:   "enroll",
	Short: "Interactively select and confirm a membership",
	Long: `Walk through plan and feature selection, review the itemized
summary, and confirm or cancel the membership.`,
	RunE: runEnroll,
}

func runEnroll(cmd *cobra.Command, args []string) error {
	engine, err := buildEngine()
	if err != nil {
		return err
	}

	cfg := config.Get()
	term := ui.NewWriter(os.Stdout, cfg.Output.NoColor)
	reader := bufio.NewReader(os.Stdin)

	term.Header("GYM MEMBERSHIP ENROLLMENT")

	output.RenderPlans(os.Stdout, engine.Catalog(), cfg.Output.ShowBenefits, cfg.Output.NoColor)
	planKey, err := prompt(reader, "\nSelect membership (basic/premium/family): ")
	if err != nil {
		return err
	}

	output.RenderFeatures(os.Stdout, engine.Catalog(), cfg.Output.NoColor)
	featuresInput, err := prompt(reader, "\nEnter feature keys (comma-separated) or Enter for none: ")
	if err != nil {
		return err
	}
	var featureKeys []string
	if featuresInput != "" {
		featureKeys = strings.Split(featuresInput, ",")
	}

	groupSize, err := promptInt(term, reader, "\nGroup size (min 1): ", 1)
	if err != nil {
		return err
	}
	if groupSize >= 2 {
		term.Muted("10%% group discount for %d members!", groupSize)
	}

	quote := engine.CalculateTotalCost(planKey, featureKeys, groupSize)
	formatter := output.New(string(output.FormatCLI), cfg.Output.NoColor)
	if err := formatter.Render(os.Stdout, quote); err != nil {
		return err
	}
	if !quote.Valid {
		term.Error("Processing canceled due to errors.")
		os.Exit(1)
	}

	answer, err := prompt(reader, "\nConfirm? (yes/no): ")
	if err != nil {
		return err
	}
	confirmed := strings.EqualFold(answer, "yes")

	total := engine.ProcessMembership(planKey, featureKeys, groupSize, confirmed)
	if total == types.CanceledTotal {
		term.Error("Canceled.")
		return nil
	}

	term.Success("Membership confirmed! Total: $%d", total)
	return nil
}

func prompt(reader *bufio.Reader, message string) (string, error) {
	fmt.Print(message)
	line, err := reader.ReadString('\n')
	text := strings.TrimSpace(line)
	if err != nil && text == "" {
		return "", err
	}
	return text, nil
}

func promptInt(term *ui.Writer, reader *bufio.Reader, message string, min int) (int, error) {
	for {
		text, err := prompt(reader, message)
		if err != nil {
			return 0, err
		}
		value, err := strconv.Atoi(text)
		if err != nil {
			term.Warning("Enter a valid integer.")
			continue
		}
		if value < min {
			term.Warning("Enter value >= %d", min)
			continue
		}
		return value, nil
	}
}

// Package output provides output formatting interfaces.
// This package produces human and machine-readable outputs.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"gym-cost/core/types"
	"gym-cost/core/ui"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable summary
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given quote
	Render(w io.Writer, quote *types.Quote) error
}

// New returns the formatter for a format name, defaulting to CLI
func New(format string, noColor bool) Formatter {
	switch Format(format) {
	case FormatJSON:
		return &JSONFormatter{}
	default:
		return &CLIFormatter{NoColor: noColor}
	}
}

// JSONFormatter renders quotes as indented JSON
type JSONFormatter struct{}

// Format returns the format type
func (f *JSONFormatter) Format() Format { return FormatJSON }

// Render writes the quote as JSON
func (f *JSONFormatter) Render(w io.Writer, quote *types.Quote) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(quote)
}

// CLIFormatter renders quotes as a terminal summary
type CLIFormatter struct {
	// NoColor disables ANSI colors
	NoColor bool
}

// Format returns the format type
func (f *CLIFormatter) Format() Format { return FormatCLI }

// Render writes the membership summary
func (f *CLIFormatter) Render(w io.Writer, quote *types.Quote) error {
	term := ui.NewWriter(w, f.NoColor)

	if !quote.Valid {
		term.Error("%s", quote.Error)
		return nil
	}

	term.Header("MEMBERSHIP SUMMARY")
	term.Println("Membership: %s", term.Emphasize(quote.PlanName))
	term.Println("Base Cost: $%d", quote.PlanCost)

	if len(quote.Features) > 0 {
		term.Println("")
		term.Println("Features:")
		for _, feature := range quote.Features {
			term.Println("  • %s - $%d", feature.Name, feature.Cost)
		}
		term.Println("Features Cost: $%d", quote.FeaturesCost)
	}

	term.Println("")
	term.Println("Subtotal: $%d", quote.Subtotal)
	for _, item := range quote.Breakdown {
		if item.Amount >= 0 {
			term.Println("%s: +$%d", item.Label, item.Amount)
		} else {
			term.Println("%s: -$%d", item.Label, -item.Amount)
		}
	}

	term.Println("")
	term.Println("%s", term.Emphasize(fmt.Sprintf("TOTAL: $%d", quote.Total)))
	return nil
}

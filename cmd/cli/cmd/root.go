// Package cmd provides the CLI commands for gym-cost.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gym-cost/core/catalog"
	"gym-cost/core/pricing"
	"gym-cost/internal/config"
	"gym-cost/internal/logging"
)

var (
	cfgFile     string
	catalogFile string
	verbose     bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "gym-cost",
	Short: "Price gym memberships",
	Long: `gym-cost computes the final price of a gym membership from a
selected plan, optional add-on features, and a group size, applying
the fixed surcharge and discount chain.

Examples:
  gym-cost plans
  gym-cost quote --plan premium --features personal_training,group_classes --group 2
  gym-cost enroll`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.gym-cost.json)")
	rootCmd.PersistentFlags().StringVar(&catalogFile, "catalog", "", "catalog definition file (HCL) layered over the built-in catalog")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(enrollCmd)
	rootCmd.AddCommand(plansCmd)
	rootCmd.AddCommand(featuresCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	// Initialize logging
	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// buildEngine constructs the pricing engine for a command run,
// honoring the --catalog flag and the configured catalog file.
func buildEngine() (*pricing.Engine, error) {
	cat := catalog.Default()

	file := catalogFile
	if file == "" {
		file = config.Get().Catalog.File
	}
	if file != "" {
		if err := cat.LoadFile(file); err != nil {
			return nil, err
		}
	}

	return pricing.NewEngine(cat), nil
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("gym-cost version 0.1.0")
	},
}

// configCmd shows the effective configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()
		fmt.Printf("currency: %s\n", cfg.Currency)
		fmt.Printf("default format: %s\n", cfg.Output.DefaultFormat)
		if cfg.Catalog.File != "" {
			fmt.Printf("catalog file: %s\n", cfg.Catalog.File)
		}
		return nil
	},
}

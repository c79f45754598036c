// Package main - Entry point for the gym-cost CLI
package main

import (
	"os"

	"gym-cost/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is the build version, overridable at link time:
//
//	go build -ldflags "-X main.Version=v1.2.3" ./cmd/rnafold
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "rnafold",
	Short: "rnafold - minimum-free-energy RNA secondary-structure prediction",
	Long: `rnafold predicts the minimum-free-energy (MFE) secondary structure of RNA
sequences with a two-matrix dynamic program over a simplified energy model,
and prints the optimal pairing in dot-bracket notation.

The energy model is a deliberately simplified placeholder (constant and
per-base penalties plus a flat stacking bonus); its constants can be
overridden per run with --params.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Package main provides the entry point for the asbscan CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for asbscan.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "asbscan",
		Short: "Exploratory analysis of antisocial-behaviour incident data",
		Long: `asbscan analyzes antisocial-behaviour (ASB) incident extracts.

Given a raw incident CSV, it cleans the data (type coercion, median and
sentinel imputation, sparse-row and duplicate removal), writes the cleaned
table to a new CSV, renders frequency and hourly charts to an HTML
dashboard, and tests whether incidents are uniformly distributed across
boroughs.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewAnalyzeCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

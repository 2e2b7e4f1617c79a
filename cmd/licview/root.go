// Package main provides the entry point for the licview CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for licview.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "licview",
		Short: "License server usage viewer",
		Long: `licview polls a license-management server for details of the licenses
served and turns the raw status output into per-feature usage reports,
split into red (fully used), orange (near limit), and green (healthy)
severity buckets suitable for display on a user's desktop.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewReportCmd())
	cmd.AddCommand(NewParseCmd())
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

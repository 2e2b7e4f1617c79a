package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

//go:embed templates/licview.yaml
var rulesTemplate embed.FS

// rulesFileName is the default rules file name.
const rulesFileName = ".licview"

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new licview rules file",
		Long: `Init creates a new .licview rules file in the current directory.

The generated file includes:
- The historical default ignore list and strip patterns
- Commented examples for protect and alias rules

Examples:
  # Create .licview in current directory
  licview init

  # Create the rules file at a specific path
  licview init -o myrules.yaml

  # Force overwrite existing file
  licview init -f`,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", rulesFileName,
		"Output file path for the rules file")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing rules file")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	// Check if file already exists
	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("rules file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	// Read template from embedded filesystem
	content, err := rulesTemplate.ReadFile("templates/licview.yaml")
	if err != nil {
		return fmt.Errorf("failed to read rules template: %w", err)
	}

	// Create parent directories if needed
	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	// Write rules file
	if err := os.WriteFile(outputPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write rules file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created rules file: %s\n", outputPath)
	fmt.Fprintln(cmd.OutOrStdout(), "\nEdit this file to configure:")
	fmt.Fprintln(cmd.OutOrStdout(), "  - Feature names to ignore or protect")
	fmt.Fprintln(cmd.OutOrStdout(), "  - Strip patterns to simplify display names")
	fmt.Fprintln(cmd.OutOrStdout(), "  - Ordered alias substitutions")

	return nil
}

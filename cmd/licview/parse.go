package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/icrphysics/RS-License-Viewer/internal/log"
	"github.com/icrphysics/RS-License-Viewer/internal/parser"
	"github.com/icrphysics/RS-License-Viewer/internal/report"
)

// NewParseCmd creates the parse command.
func NewParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a captured raw report without querying the server",
		Long: `Parse reads a previously captured license status dump and prints the
structured per-feature records as-is: no name rules are applied and no
severity classification is performed. Useful for inspecting what the
parser extracts from a given dump.

Examples:
  # Show the parsed records of a captured dump
  licview parse captured.txt

  # Same, as JSON
  licview parse --json captured.txt`,
		Args: cobra.ExactArgs(1),
		RunE: runParseCmd,
	}

	cmd.Flags().BoolP("json", "j", false, "Output records as JSON")
	cmd.Flags().Bool("keep-duplicate-users", false,
		"Keep repeat checkouts by the same user in the user list")

	return cmd
}

// runParseCmd executes the parse command.
func runParseCmd(cmd *cobra.Command, args []string) error {
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}
	keepDuplicates, err := cmd.Flags().GetBool("keep-duplicate-users")
	if err != nil {
		return err
	}

	logger := log.NewLogger(os.Stderr, getVerboseFlag(cmd))
	slog.SetDefault(logger)

	data, err := os.ReadFile(args[0]) //nolint:gosec // User-provided input path is intentional
	if err != nil {
		return fmt.Errorf("failed to read report file: %w", err)
	}

	records := parser.Parse(string(data), !keepDuplicates)
	logger.Debug("parsed report", "records", len(records))

	if asJSON {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(records)
	}

	_, err = report.RenderBucket(cmd.OutOrStdout(), records, report.DefaultLayout())
	return err
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/icrphysics/RS-License-Viewer/internal/classify"
	"github.com/icrphysics/RS-License-Viewer/internal/config"
	"github.com/icrphysics/RS-License-Viewer/internal/log"
	"github.com/icrphysics/RS-License-Viewer/internal/model"
	"github.com/icrphysics/RS-License-Viewer/internal/normalize"
	"github.com/icrphysics/RS-License-Viewer/internal/parser"
	"github.com/icrphysics/RS-License-Viewer/internal/query"
	"github.com/icrphysics/RS-License-Viewer/internal/report"
)

// NewReportCmd creates the report command.
func NewReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Query the license server and write severity-bucketed usage reports",
		Long: `Report queries the license server via the vendor status utility, parses
the per-feature usage, applies the ignore/protect and name rules from the
rules file, and splits the features into three severity buckets:

  red    - every seat checked out
  orange - remaining seats at or below the threshold
  green  - healthy remaining capacity

Examples:
  # Query the default server and print the report
  licview report

  # Query a specific server and write lic.red / lic.orange / lic.green
  licview report --host 10.0.0.5 --port 6200 --output lic.txt

  # Analyze a previously captured status dump offline
  licview report --input captured.txt

  # JSON output for tooling
  licview report --json

Rules file (.licview) example:
  ignore:
    - rayPhysicsBase
  protect:
    - rayPhysicsBaseSpecial
  strip:
    - "^7_0_0-Clinical-"
  aliases:
    - match: rayStationDoctorBase
      replace: rayDoctor`,
		Args: cobra.NoArgs,
		RunE: runReportCmd,
	}

	// Server flags
	cmd.Flags().StringP("host", "H", config.DefaultServerHost,
		"License server host to query")
	cmd.Flags().StringP("port", "p", config.DefaultServerPort,
		"License server status port")
	cmd.Flags().StringP("util", "u", config.DefaultUtility,
		"Path to the vendor license query utility")
	cmd.Flags().StringP("input", "i", "",
		"Read a captured raw report from file instead of querying the server")

	// Classification flags
	cmd.Flags().IntP("threshold", "t", config.DefaultOrangeThreshold,
		"Remaining seats at or below which a feature is flagged orange")
	cmd.Flags().Bool("trigger-single", false,
		"Flag features whose total capacity is at or below the threshold")
	cmd.Flags().Bool("keep-duplicate-users", false,
		"Keep repeat checkouts by the same user in the user list")

	// Rules file
	cmd.Flags().StringP("config", "c", "",
		"Rules file path (default: .licview in current or home directory)")

	// Output flags
	cmd.Flags().StringP("output", "o", "",
		"Basename for per-bucket output files (<base>.red/.orange/.green); stdout if empty")
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().String("save-raw", "",
		"Save a copy of the raw report text to the given file")

	return cmd
}

// runReportCmd executes the report command.
func runReportCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := log.NewLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling so a hung query utility can be
	// interrupted cleanly.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runReport(ctx, cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.ServerHost, err = cmd.Flags().GetString("host")
	if err != nil {
		return nil, err
	}
	cfg.ServerPort, err = cmd.Flags().GetString("port")
	if err != nil {
		return nil, err
	}
	cfg.UtilityPath, err = cmd.Flags().GetString("util")
	if err != nil {
		return nil, err
	}
	cfg.InputFile, err = cmd.Flags().GetString("input")
	if err != nil {
		return nil, err
	}
	cfg.OrangeThreshold, err = cmd.Flags().GetInt("threshold")
	if err != nil {
		return nil, err
	}
	cfg.TriggerSingleCapacity, err = cmd.Flags().GetBool("trigger-single")
	if err != nil {
		return nil, err
	}

	keepDuplicates, err := cmd.Flags().GetBool("keep-duplicate-users")
	if err != nil {
		return nil, err
	}
	cfg.DeduplicateUsers = !keepDuplicates

	cfg.OutputBase, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}
	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}
	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}
	cfg.RawOutputFile, err = cmd.Flags().GetString("save-raw")
	if err != nil {
		return nil, err
	}
	cfg.RulesFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	cfg.Verbose = getVerboseFlag(cmd)

	// Load rules from the rules file.
	// If the user explicitly specified a rules file path, error if not found.
	// If no path specified, silently use empty rules if no file found.
	explicitRulesPath := cfg.RulesFilePath != ""
	rulesPath := config.FindRulesFile(cfg.RulesFilePath)

	if rulesPath != "" {
		cfg.Rules, err = config.LoadRulesFile(rulesPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load rules file %s: %w", rulesPath, err)
		}
	} else if explicitRulesPath {
		return nil, fmt.Errorf("rules file not found: %s", cfg.RulesFilePath)
	} else {
		cfg.Rules = &config.Rules{}
	}

	return cfg, nil
}

// runReport executes the full query-parse-classify-render run.
func runReport(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	// Obtain the raw report text
	var fetcher query.Fetcher
	var server string
	if cfg.InputFile != "" {
		fetcher = query.NewFileFetcher(cfg.InputFile)
		logger.Info("reading captured report", "path", cfg.InputFile)
	} else {
		server = net.JoinHostPort(cfg.ServerHost, cfg.ServerPort)
		fetcher = query.NewCommandFetcher(cfg.UtilityPath, cfg.ServerHost, cfg.ServerPort,
			query.WithLogger(logger))
		logger.Info("querying license server", "server", server)
	}

	raw, err := fetcher.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("failed to obtain license report: %w", err)
	}

	if cfg.RawOutputFile != "" {
		if err := query.SaveRaw(cfg.RawOutputFile, raw); err != nil {
			logger.Error("failed to save raw report", "path", cfg.RawOutputFile, "error", err)
		}
	}

	rep, err := buildUsageReport(raw, server, cfg, logger)
	if err != nil {
		return err
	}

	return outputReport(cfg, rep)
}

// buildUsageReport runs the parse-filter-normalize-partition pipeline over
// the raw report text.
func buildUsageReport(raw, server string, cfg *config.Config, logger *slog.Logger) (*model.UsageReport, error) {
	rep := model.NewUsageReport(server)

	// Parse
	records := parser.Parse(raw, cfg.DeduplicateUsers)
	logger.Debug("parsed report", "chunks", len(records))

	// Filter by name rules
	records = classify.FilterByName(records, cfg.Rules.Ignore, cfg.Rules.Protect)

	// Normalize display names
	strips, err := normalize.CompileStripPatterns(cfg.Rules.Strip)
	if err != nil {
		return nil, fmt.Errorf("rules file: %w", err)
	}
	aliases, err := normalize.CompileAliases(cfg.Rules.AliasPairs())
	if err != nil {
		return nil, fmt.Errorf("rules file: %w", err)
	}
	normalize.ApplyStripPatterns(records, strips)
	normalize.ApplyAliases(records, aliases)
	rep.Records = records

	// Collect record-level counter problems as report diagnostics so they
	// surface in the output, not only in the logs.
	for _, rec := range records {
		if !rec.HasUsage() {
			rep.Diagnostics = append(rep.Diagnostics,
				fmt.Sprintf("feature %q reported no usage counters", rec.Feature))
			continue
		}
		if _, err := rec.UsedCount(); err != nil {
			rep.Diagnostics = append(rep.Diagnostics, err.Error())
			continue
		}
		if _, err := rec.MaxCount(); err != nil {
			rep.Diagnostics = append(rep.Diagnostics, err.Error())
		}
	}

	// Partition into severity buckets
	classifier := classify.New(classify.Thresholds{
		OrangeLimit:           cfg.OrangeThreshold,
		TriggerSingleCapacity: cfg.TriggerSingleCapacity,
	}, classify.WithLogger(logger))

	buckets := classifier.Partition(records)
	rep.Red = buckets.Red
	rep.Orange = buckets.Orange
	rep.Green = buckets.Green

	logger.Info("classified features",
		"red", len(rep.Red),
		"orange", len(rep.Orange),
		"green", len(rep.Green),
	)

	return rep, nil
}

// outputReport renders the usage report in the requested format.
func outputReport(cfg *config.Config, rep *model.UsageReport) error {
	layout := report.Layout{
		FeatureWidth: cfg.FeatureColumnWidth,
		UsedWidth:    cfg.UsedColumnWidth,
	}

	// Per-bucket files are the desktop-display output
	if cfg.OutputBase != "" {
		return report.WriteBucketFiles(cfg.OutputBase, rep, layout)
	}

	// JSON output
	if cfg.JSONReport {
		_, err := report.NewJSONWriter(os.Stdout, report.WithPrettyPrint()).Write(rep)
		return err
	}

	// Markdown output
	if cfg.MarkdownReport {
		_, err := report.NewMarkdownWriter(os.Stdout).Write(rep)
		return err
	}

	// Human-readable report (default)
	_, err := report.NewTextWriter(os.Stdout, report.WithLayout(layout)).Write(rep)
	return err
}

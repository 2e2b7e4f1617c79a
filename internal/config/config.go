package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values.
// These match the settings the tool historically shipped with; everything
// can be overridden via CLI flags or the rules file.
const (
	// DefaultServerHost is the license server queried when no host is given.
	DefaultServerHost = "192.168.146.5"

	// DefaultServerPort is the license manager's status port.
	DefaultServerPort = "6200"

	// DefaultUtility is the vendor license query utility expected on PATH.
	DefaultUtility = "lmxendutil"

	// DefaultOrangeThreshold is the number of remaining seats at or below
	// which a feature is flagged orange. One free seat left is the point
	// where the next checkout turns the feature red.
	DefaultOrangeThreshold = 1

	// DefaultFeatureColumnWidth is the width of the left-justified feature
	// name column in the fixed-width text output.
	DefaultFeatureColumnWidth = 30

	// DefaultUsedColumnWidth is the width of the left-justified used-count
	// column in the fixed-width text output.
	DefaultUsedColumnWidth = 5

	// AppName is the application name used for XDG directory paths.
	AppName = "licview"
)

// Config holds all configuration options for licview.
// This struct is designed to be populated from CLI flags and passed through
// the application via dependency injection rather than global state.
type Config struct {
	// ServerHost is the license server address to query.
	ServerHost string

	// ServerPort is the license server status port.
	ServerPort string

	// UtilityPath is the path to the vendor license query utility.
	UtilityPath string

	// InputFile, when set, is a captured raw report read instead of
	// running the query utility. Useful for offline analysis and tests.
	InputFile string

	// OutputBase is the basename for the per-bucket output files.
	// Buckets are written to <base>.red, <base>.orange, and <base>.green.
	// When empty, the report is written to stdout instead.
	OutputBase string

	// RawOutputFile, when set, receives a copy of the raw report text.
	RawOutputFile string

	// OrangeThreshold is the remaining-seat count at or below which a
	// feature is flagged orange.
	OrangeThreshold int

	// TriggerSingleCapacity flags features whose total capacity is at or
	// below the threshold as orange too. Off by default so that single-seat
	// licenses are not perpetually reported as near-limit.
	TriggerSingleCapacity bool

	// DeduplicateUsers collapses repeat checkouts by the same user into a
	// single entry in the user list.
	DeduplicateUsers bool

	// FeatureColumnWidth is the feature column width in text output.
	FeatureColumnWidth int

	// UsedColumnWidth is the used column width in text output.
	UsedColumnWidth int

	// JSONReport enables JSON output instead of fixed-width text.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown output instead of fixed-width text.
	// Mutually exclusive with JSONReport.
	MarkdownReport bool

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// RulesFilePath is the path to the rules file. If empty, the tool
	// searches for .licview in the current directory, the XDG config
	// directory, and the user's home directory.
	RulesFilePath string

	// Rules holds the name rules loaded from the rules file.
	Rules *Rules
}

// NewConfig creates a new Config with default values.
//
// Design decision: We use a constructor function instead of relying on
// zero values because many defaults are non-zero (server address, threshold,
// column widths). This also serves as documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		ServerHost:         DefaultServerHost,
		ServerPort:         DefaultServerPort,
		UtilityPath:        DefaultUtility,
		OrangeThreshold:    DefaultOrangeThreshold,
		DeduplicateUsers:   true,
		FeatureColumnWidth: DefaultFeatureColumnWidth,
		UsedColumnWidth:    DefaultUsedColumnWidth,
		Rules:              &Rules{},
	}
}

// XDGConfigDir returns the XDG config directory for licview.
// On Linux: ~/.config/licview
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific error describing what is invalid.
//
// We chose to return the first error found rather than collecting all errors
// because fixing one error often makes others irrelevant.
func (c *Config) Validate() error {
	// Without a captured input file we need a server to query
	if c.InputFile == "" {
		if c.ServerHost == "" {
			return ErrNoServerHost
		}
		if c.ServerPort == "" {
			return ErrNoServerPort
		}
		if c.UtilityPath == "" {
			return ErrNoUtility
		}
	}

	// A negative threshold can never match; zero is valid (red-only runs)
	if c.OrangeThreshold < 0 {
		return ErrInvalidThreshold
	}

	if c.FeatureColumnWidth <= 0 || c.UsedColumnWidth <= 0 {
		return ErrInvalidColumnWidth
	}

	// JSONReport and MarkdownReport are mutually exclusive
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	return nil
}

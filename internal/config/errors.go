package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrNoServerHost is returned when neither a server host nor a captured
	// input file is specified. Without either there is no report source.
	ErrNoServerHost = errors.New("no license server host: set --host or use --input with a captured report")

	// ErrNoServerPort is returned when the server port is empty.
	ErrNoServerPort = errors.New("no license server port: set --port")

	// ErrNoUtility is returned when the license query utility path is empty.
	ErrNoUtility = errors.New("no license query utility: set --util")

	// ErrInvalidThreshold is returned when the orange threshold is negative.
	// Zero is valid and disables the orange bucket for multi-seat features.
	ErrInvalidThreshold = errors.New("invalid orange threshold: must be non-negative")

	// ErrInvalidColumnWidth is returned when a text output column width is
	// not positive.
	ErrInvalidColumnWidth = errors.New("invalid column width: must be positive")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")
)

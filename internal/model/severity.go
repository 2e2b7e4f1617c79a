package model

// Severity represents the remaining-capacity bucket of a licensed feature.
//
// Design decision: We use iota-based constants rather than string constants
// for efficiency in comparisons and sorting. The String() method provides
// human-readable output when needed.
type Severity int

const (
	// SeverityGreen indicates healthy remaining capacity.
	SeverityGreen Severity = iota

	// SeverityOrange indicates the feature is near its capacity limit:
	// the number of free seats is at or below the configured threshold.
	SeverityOrange

	// SeverityRed indicates the feature is fully consumed. No further
	// checkouts are possible until a seat is released.
	SeverityRed
)

// String returns a human-readable representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityGreen:
		return "GREEN"
	case SeverityOrange:
		return "ORANGE"
	case SeverityRed:
		return "RED"
	default:
		return "UNKNOWN"
	}
}

// Extension returns the output-file suffix used when buckets are written to
// separate files (e.g. "lic.red" for the red bucket).
func (s Severity) Extension() string {
	switch s {
	case SeverityGreen:
		return "green"
	case SeverityOrange:
		return "orange"
	case SeverityRed:
		return "red"
	default:
		return "unknown"
	}
}

// Severities lists all severity levels in rendering order, most urgent first.
var Severities = []Severity{SeverityRed, SeverityOrange, SeverityGreen}

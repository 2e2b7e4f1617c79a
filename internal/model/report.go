package model

import "time"

// UsageReport is the assembled result of one license query run.
// It carries the record pool after filtering and name normalization,
// plus the three severity buckets produced by classification.
//
// Design decision: We use a single struct rather than returning the buckets
// loose because the report writers and the JSON output need the run metadata
// (server, timestamp, diagnostics) alongside the buckets.
type UsageReport struct {
	// Server is the license server the report was queried from,
	// in "host:port" form. Empty when parsing a captured file.
	Server string `json:"server,omitempty"`

	// DateQueried is the timestamp when the raw report was obtained.
	DateQueried time.Time `json:"date_queried"`

	// Records is the filtered, normalized record pool before partitioning.
	Records []LicenseRecord `json:"records"`

	// Red holds fully consumed features.
	Red []LicenseRecord `json:"red"`

	// Orange holds features near their capacity limit.
	Orange []LicenseRecord `json:"orange"`

	// Green holds features with healthy remaining capacity.
	Green []LicenseRecord `json:"green"`

	// Diagnostics collects record-level problems encountered during
	// classification (absent or non-numeric counters). These are
	// informational; the affected records remain in the green bucket.
	Diagnostics []string `json:"diagnostics,omitempty"`
}

// NewUsageReport creates a UsageReport for the given server with the
// query timestamp set to now.
func NewUsageReport(server string) *UsageReport {
	return &UsageReport{
		Server:      server,
		DateQueried: time.Now(),
	}
}

// Bucket returns the record list for the given severity.
func (r *UsageReport) Bucket(s Severity) []LicenseRecord {
	switch s {
	case SeverityRed:
		return r.Red
	case SeverityOrange:
		return r.Orange
	case SeverityGreen:
		return r.Green
	default:
		return nil
	}
}

// TotalFeatures returns the number of records across all buckets.
func (r *UsageReport) TotalFeatures() int {
	return len(r.Red) + len(r.Orange) + len(r.Green)
}

// HasFindings reports whether any feature is red or orange.
func (r *UsageReport) HasFindings() bool {
	return len(r.Red) > 0 || len(r.Orange) > 0
}

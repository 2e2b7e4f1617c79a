package model

import (
	"fmt"
	"strconv"
)

// LicenseRecord holds the usage details of a single licensed feature as
// reported by the license server.
//
// Design decision: Used and Max are kept as the raw string tokens from the
// report rather than parsed integers. The report format does not guarantee
// numeric values, and a chunk may omit the usage summary line entirely. An
// empty string means the field was absent from the source chunk; consumers
// must check HasUsage before doing numeric comparisons.
type LicenseRecord struct {
	// Feature is the feature name with the trailing hash segment removed.
	// Empty if the source chunk had no Feature line.
	Feature string `json:"feature,omitempty"`

	// Used is the number of seats currently checked out, as reported.
	// Empty if the chunk had no usage summary line.
	Used string `json:"used,omitempty"`

	// Max is the total number of seats served for this feature, as reported.
	// Empty if the chunk had no usage summary line.
	Max string `json:"max,omitempty"`

	// Users lists the usernames observed holding a seat of this feature.
	Users []string `json:"users,omitempty"`
}

// HasUsage reports whether both usage counters were present in the source.
// Records without usage counters are parse gaps, not errors; they must be
// excluded from numeric classification rather than treated as zero.
func (r LicenseRecord) HasUsage() bool {
	return r.Used != "" && r.Max != ""
}

// UsedCount returns the used-seat counter as an integer.
// It returns an error for absent or non-numeric values.
func (r LicenseRecord) UsedCount() (int, error) {
	n, err := strconv.Atoi(r.Used)
	if err != nil {
		return 0, fmt.Errorf("feature %q: invalid used count %q: %w", r.Feature, r.Used, err)
	}
	return n, nil
}

// MaxCount returns the maximum-seat counter as an integer.
// It returns an error for absent or non-numeric values.
func (r LicenseRecord) MaxCount() (int, error) {
	n, err := strconv.Atoi(r.Max)
	if err != nil {
		return 0, fmt.Errorf("feature %q: invalid max count %q: %w", r.Feature, r.Max, err)
	}
	return n, nil
}

// Remaining returns the number of free seats (Max - Used).
func (r LicenseRecord) Remaining() (int, error) {
	used, err := r.UsedCount()
	if err != nil {
		return 0, err
	}
	max, err := r.MaxCount()
	if err != nil {
		return 0, err
	}
	return max - used, nil
}

package classify

import (
	"log/slog"
	"strings"

	"github.com/icrphysics/RS-License-Viewer/internal/model"
)

// Thresholds holds the numeric rules for severity classification.
type Thresholds struct {
	// OrangeLimit is the number of remaining seats at or below which a
	// feature is flagged orange.
	OrangeLimit int

	// TriggerSingleCapacity controls whether features whose total capacity
	// is at or below OrangeLimit can be flagged orange. When false (the
	// default), naturally low-capacity features (e.g. max = 1) are not
	// flagged as perpetually near-limit.
	TriggerSingleCapacity bool
}

// Classifier partitions records into severity buckets.
//
// Design decision: Thresholds are passed in as an immutable value at
// construction rather than read from package-level state, so concurrent or
// repeated runs with different settings cannot interfere.
type Classifier struct {
	thresholds Thresholds
	logger     *slog.Logger
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithLogger sets a custom logger for record-level diagnostics.
// If not set, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Classifier) {
		c.logger = logger
	}
}

// New creates a Classifier with the given thresholds.
func New(thresholds Thresholds, opts ...Option) *Classifier {
	c := &Classifier{thresholds: thresholds}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c
}

// Buckets holds the result of a full partition. Every record of the input
// pool appears in exactly one bucket.
type Buckets struct {
	Red    []model.LicenseRecord
	Orange []model.LicenseRecord
	Green  []model.LicenseRecord
}

// FilterByName drops records whose feature name contains any ignore
// substring, unless the name also contains any protect substring.
//
// Protect always wins: the protect list is scanned after the ignore list and
// unconditionally clears the drop decision, independent of which substrings
// matched in either list.
func FilterByName(records []model.LicenseRecord, ignore, protect []string) []model.LicenseRecord {
	kept := make([]model.LicenseRecord, 0, len(records))

	for _, rec := range records {
		drop := false
		for _, code := range ignore {
			if strings.Contains(rec.Feature, code) {
				drop = true
				break
			}
		}
		for _, code := range protect {
			if strings.Contains(rec.Feature, code) {
				drop = false
				break
			}
		}
		if !drop {
			kept = append(kept, rec)
		}
	}
	return kept
}

// IsFullyUsed reports whether every seat of the feature is checked out.
//
// Records with absent or non-numeric counters are never fully used; the
// conversion fault is logged at the record level and classification of the
// rest of the pool continues.
func (c *Classifier) IsFullyUsed(rec model.LicenseRecord) bool {
	if !rec.HasUsage() {
		c.logger.Debug("skipping record without usage counters", "feature", rec.Feature)
		return false
	}

	used, err := rec.UsedCount()
	if err != nil {
		c.logger.Warn("unparseable used count", "feature", rec.Feature, "error", err)
		return false
	}
	max, err := rec.MaxCount()
	if err != nil {
		c.logger.Warn("unparseable max count", "feature", rec.Feature, "error", err)
		return false
	}

	return used == max
}

// IsNearLimit reports whether the feature's free seats are at or below the
// orange threshold. Features whose total capacity is itself at or below the
// threshold are excluded unless TriggerSingleCapacity is set.
//
// The counter guards mirror IsFullyUsed: absent or non-numeric counters make
// the record not-near-limit, with a record-level diagnostic.
func (c *Classifier) IsNearLimit(rec model.LicenseRecord) bool {
	if !rec.HasUsage() {
		c.logger.Debug("skipping record without usage counters", "feature", rec.Feature)
		return false
	}

	used, err := rec.UsedCount()
	if err != nil {
		c.logger.Warn("unparseable used count", "feature", rec.Feature, "error", err)
		return false
	}
	max, err := rec.MaxCount()
	if err != nil {
		c.logger.Warn("unparseable max count", "feature", rec.Feature, "error", err)
		return false
	}

	if max-used > c.thresholds.OrangeLimit {
		return false
	}
	if max <= c.thresholds.OrangeLimit && !c.thresholds.TriggerSingleCapacity {
		return false
	}
	return true
}

// ExtractMatching splits pool into the records satisfying pred and the rest.
// It is a pure operation: the input pool is left untouched and each record
// is evaluated independently, so duplicate feature names cannot cause the
// positional drift that in-place removal by index suffers from.
func ExtractMatching(pool []model.LicenseRecord, pred func(model.LicenseRecord) bool) (matches, remaining []model.LicenseRecord) {
	matches = make([]model.LicenseRecord, 0, len(pool))
	remaining = make([]model.LicenseRecord, 0, len(pool))

	for _, rec := range pool {
		if pred(rec) {
			matches = append(matches, rec)
		} else {
			remaining = append(remaining, rec)
		}
	}
	return matches, remaining
}

// Partition splits the pool into red, orange, and green buckets.
//
// Order matters: fully used records are extracted first, so a record that is
// both fully used and near-limit is classified red only, never double
// counted. Whatever survives both extractions is green.
func (c *Classifier) Partition(pool []model.LicenseRecord) Buckets {
	red, rest := ExtractMatching(pool, c.IsFullyUsed)
	orange, green := ExtractMatching(rest, c.IsNearLimit)

	return Buckets{
		Red:    red,
		Orange: orange,
		Green:  green,
	}
}

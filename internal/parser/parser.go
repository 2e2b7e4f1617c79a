package parser

import (
	"strings"

	"github.com/icrphysics/RS-License-Viewer/internal/model"
)

// Delimiter is the chunk separator emitted by the license query utility:
// a line of exactly 40 dash characters.
const Delimiter = "----------------------------------------"

// Markers that identify the interesting lines of a chunk.
//
// usedByMarker must be tested before usedMarker: every "used by" line also
// contains the plain "license(s) used" text, so testing in the other order
// would misparse user lines as usage summaries.
const (
	featureMarker = "Feature:"
	usedByMarker  = "license(s) used by"
	usedMarker    = "license(s) used"
)

// SplitReport splits a raw report into per-feature chunk strings.
// The text before the first delimiter is a preamble (server banner, column
// headers) and is discarded. Input without any delimiter yields no chunks.
func SplitReport(raw string) []string {
	chunks := strings.Split(raw, Delimiter)
	if len(chunks) <= 1 {
		return nil
	}
	return chunks[1:]
}

// ParseEntry parses a single chunk into a LicenseRecord.
//
// Lines are matched in priority order: the Feature line, then "used by"
// lines, then the usage summary line. Any other line is ignored. Fields
// whose line never appears remain absent.
//
// When dedupeUsers is true, repeat checkouts by the same user collapse to a
// single entry; first-seen order is kept.
func ParseEntry(chunk string, dedupeUsers bool) model.LicenseRecord {
	var rec model.LicenseRecord

	for _, line := range strings.Split(strings.Trim(chunk, " -\n\r"), "\n") {
		switch {
		case strings.Contains(line, featureMarker):
			// Feature: 5_0_2-Clinical-rayArc-3bfdc8531000807a Version: 2.0 Vendor: X
			fields := strings.Fields(line)
			if len(fields) < 2 {
				continue
			}
			rec.Feature = dropHashSegment(fields[1])

		case strings.Contains(line, usedByMarker):
			// 1 license(s) used by blogsj@rayClinicApp01 [192.168.146.20]
			_, after, _ := strings.Cut(line, usedByMarker)
			user, _, _ := strings.Cut(after, "@")
			rec.Users = append(rec.Users, strings.TrimSpace(user))

		case strings.Contains(line, usedMarker):
			// 1 of 4 license(s) used:
			fields := strings.Fields(line)
			if len(fields) < 3 {
				continue
			}
			rec.Used = fields[0]
			rec.Max = fields[2]
		}
	}

	if dedupeUsers {
		rec.Users = dedupe(rec.Users)
	}
	return rec
}

// Parse splits a raw report and parses every chunk.
// It returns an empty list for empty or delimiter-free input.
func Parse(raw string, dedupeUsers bool) []model.LicenseRecord {
	chunks := SplitReport(raw)
	records := make([]model.LicenseRecord, 0, len(chunks))
	for _, chunk := range chunks {
		records = append(records, ParseEntry(chunk, dedupeUsers))
	}
	return records
}

// dropHashSegment removes the final dash-delimited segment of a raw feature
// token: "5_0_2-Clinical-rayArc-3bfdc..." becomes "5_0_2-Clinical-rayArc".
// A token without any dash consists only of the hash segment and reduces to
// the empty string.
func dropHashSegment(token string) string {
	idx := strings.LastIndex(token, "-")
	if idx < 0 {
		return ""
	}
	return token[:idx]
}

// dedupe removes duplicate entries keeping first-seen order.
func dedupe(users []string) []string {
	if len(users) < 2 {
		return users
	}
	seen := make(map[string]bool, len(users))
	out := users[:0]
	for _, u := range users {
		if seen[u] {
			continue
		}
		seen[u] = true
		out = append(out, u)
	}
	return out
}

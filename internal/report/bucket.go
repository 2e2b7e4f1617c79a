package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/icrphysics/RS-License-Viewer/internal/model"
)

// Layout holds the column widths of the fixed-width bucket format.
type Layout struct {
	// FeatureWidth is the width of the left-justified feature name column.
	FeatureWidth int

	// UsedWidth is the width of the left-justified used count column.
	UsedWidth int
}

// DefaultLayout returns the layout the tool historically used: a 30-column
// feature name and a 5-column used count.
func DefaultLayout() Layout {
	return Layout{FeatureWidth: 30, UsedWidth: 5}
}

// RenderBucket writes one severity bucket in the fixed-width text format:
// a header line with left-justified "Feature" and "Used" columns and a
// right-hand "Max" column, then per record the same column layout, an
// optional "Used By:" line when the user list is non-empty, and a blank
// line separator.
//
// This is the single place the desktop-display file format is defined;
// every bucket sink goes through it.
func RenderBucket(w io.Writer, records []model.LicenseRecord, layout Layout) (int, error) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "\n%-*s%-*s\t%s\n",
		layout.FeatureWidth, "Feature",
		layout.UsedWidth, "Used",
		"Max")

	for _, rec := range records {
		fmt.Fprintf(&sb, "%-*s%-*s\t %s\n",
			layout.FeatureWidth, rec.Feature,
			layout.UsedWidth, rec.Used,
			rec.Max)
		if len(rec.Users) > 0 {
			fmt.Fprintf(&sb, "    Used By: %s\n", strings.Join(rec.Users, ", "))
		}
		sb.WriteString("\n")
	}

	return w.Write([]byte(sb.String()))
}

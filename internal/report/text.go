package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/icrphysics/RS-License-Viewer/internal/model"
)

// sectionColors maps each severity to its terminal color.
// The color package disables itself automatically when the destination is
// not a terminal, so piped output stays plain text.
var sectionColors = map[model.Severity]*color.Color{
	model.SeverityRed:    color.New(color.FgRed, color.Bold),
	model.SeverityOrange: color.New(color.FgYellow, color.Bold),
	model.SeverityGreen:  color.New(color.FgGreen),
}

// TextWriter outputs human-readable text reports: a run summary followed by
// one fixed-width section per severity bucket, most urgent first.
type TextWriter struct {
	baseWriter

	// layout holds the fixed-width column widths.
	layout Layout

	// showEmpty controls whether buckets with no records are shown.
	showEmpty bool
}

// TextWriterOption configures a TextWriter.
type TextWriterOption func(*TextWriter)

// WithLayout overrides the default column layout.
func WithLayout(layout Layout) TextWriterOption {
	return func(w *TextWriter) {
		w.layout = layout
	}
}

// WithShowEmpty configures the writer to show empty buckets.
func WithShowEmpty(show bool) TextWriterOption {
	return func(w *TextWriter) {
		w.showEmpty = show
	}
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer, opts ...TextWriterOption) *TextWriter {
	w := &TextWriter{
		baseWriter: newBaseWriter(output),
		layout:     DefaultLayout(),
		showEmpty:  true,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the full report in human-readable format.
func (w *TextWriter) Write(report *model.UsageReport) (int, error) {
	var total int

	n, err := w.writeHeader(report)
	total += n
	if err != nil {
		return total, err
	}

	for _, severity := range model.Severities {
		records := report.Bucket(severity)
		if len(records) == 0 && !w.showEmpty {
			continue
		}

		n, err := w.writeSection(severity, records)
		total += n
		if err != nil {
			return total, err
		}
	}

	return total, nil
}

// writeHeader writes the run summary.
func (w *TextWriter) writeHeader(report *model.UsageReport) (int, error) {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                      LICENSE USAGE REPORT\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	if report.Server != "" {
		fmt.Fprintf(&sb, "License Server: %s\n", report.Server)
	}
	fmt.Fprintf(&sb, "Date Queried:   %s\n", report.DateQueried.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(&sb, "Features:       %d (red %d / orange %d / green %d)\n",
		report.TotalFeatures(), len(report.Red), len(report.Orange), len(report.Green))

	for _, diag := range report.Diagnostics {
		fmt.Fprintf(&sb, "Warning:        %s\n", diag)
	}

	return w.output.Write([]byte(sb.String()))
}

// writeSection writes the header and fixed-width body of one bucket.
func (w *TextWriter) writeSection(severity model.Severity, records []model.LicenseRecord) (int, error) {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "%s (%d)\n", sectionColors[severity].Sprint(severity.String()), len(records))
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")

	total, err := w.output.Write([]byte(sb.String()))
	if err != nil {
		return total, err
	}

	n, err := RenderBucket(w.output, records, w.layout)
	return total + n, err
}

package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"

	"github.com/icrphysics/RS-License-Viewer/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides type-safe tables, lists, and GitHub-flavored
// alerts.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the full report in Markdown format.
func (w *MarkdownWriter) Write(report *model.UsageReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeSummary(md, report)

	for _, severity := range model.Severities {
		w.writeBucket(md, severity, report.Bucket(severity))
	}

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with run information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.UsageReport) {
	md.H1("License Usage Report")
	md.PlainText("")

	rows := [][]string{
		{"Date Queried", report.DateQueried.Format("2006-01-02 15:04:05 MST")},
		{"Features", strconv.Itoa(report.TotalFeatures())},
	}
	if report.Server != "" {
		rows = append([][]string{{"License Server", "`" + report.Server + "`"}}, rows...)
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeSummary writes the severity summary table.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, report *model.UsageReport) {
	md.H2("Severity Summary")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Severity", "Features"},
		Rows: [][]string{
			{"🔴 Red", strconv.Itoa(len(report.Red))},
			{"🟠 Orange", strconv.Itoa(len(report.Orange))},
			{"🟢 Green", strconv.Itoa(len(report.Green))},
		},
	})
	md.PlainText("")

	switch {
	case len(report.Red) > 0:
		md.Warningf("%d feature(s) fully consumed; further checkouts will be refused.", len(report.Red))
		md.PlainText("")
	case len(report.Orange) > 0:
		md.Importantf("%d feature(s) near their capacity limit.", len(report.Orange))
		md.PlainText("")
	}
}

// writeBucket writes one severity section as a table.
func (w *MarkdownWriter) writeBucket(md *markdown.Markdown, severity model.Severity, records []model.LicenseRecord) {
	md.H2(severity.String())
	md.PlainText("")

	if len(records) == 0 {
		md.PlainText("No features.")
		md.PlainText("")
		return
	}

	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{
			rec.Feature,
			rec.Used,
			rec.Max,
			strings.Join(rec.Users, ", "),
		})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Feature", "Used", "Max", "Used By"},
		Rows:   rows,
	})
	md.PlainText("")
}

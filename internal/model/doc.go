// Package model defines the core data structures used throughout licview.
//
// This package contains the following main types:
//   - LicenseRecord: Per-feature usage parsed from the license server report
//   - Severity: Red/orange/green capacity classification
//   - UsageReport: The assembled result of one query run
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. Multiple packages (parser, classify, report) need to use these
// types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON for report output.
package model

// Package parser converts the free-text license utilization report produced
// by the license server query utility into structured LicenseRecord values.
//
// The raw report is a sequence of per-feature chunks separated by a fixed
// 40-dash delimiter line. Each chunk optionally contains a "Feature:" line,
// a "<n> of <m> license(s) used" summary line, and zero or more
// "<k> license(s) used by <user>@<host> [<ip>]" lines.
//
// Design decision: The parser never returns an error. Malformed or empty
// chunks produce records with absent fields, and absence is the error signal
// that downstream stages must check for. Input with no delimiter at all
// degrades to an empty record list.
package parser

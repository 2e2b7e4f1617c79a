// Package main provides the entry point for the licview CLI.
//
// licview queries a license-management server for per-feature usage,
// classifies each feature into a red/orange/green severity bucket by
// remaining capacity, and renders the buckets as human-readable reports.
//
// Usage:
//
//	licview report
//	licview report --input captured.txt --output lic.txt
//
// See --help for all available options.
package main

// main is the entry point for licview.
func main() {
	Execute()
}

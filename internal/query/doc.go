// Package query obtains the raw license utilization report text.
//
// The report is normally produced by running the vendor's license query
// utility as a subprocess; for offline use a previously captured report file
// can be read instead. Both sources implement the Fetcher interface so the
// rest of the program treats report acquisition as a function returning a
// raw text blob.
package query

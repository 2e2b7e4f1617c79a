// Package log provides structured logging for licview on top of log/slog.
//
// The license server report embeds usernames, hostnames, and client IP
// addresses ("blogsj@rayClinicApp01 [192.168.146.20]"). Those belong in the
// rendered reports, not in log files that may be shipped off the machine, so
// the handlers in this package mask such values before they reach the
// underlying slog handler.
package log

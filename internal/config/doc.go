// Package config provides configuration structures and utilities for licview.
// It defines the main options for querying the license server, classifying
// records, and rendering reports, plus the YAML rules file with the ignore,
// protect, strip, and alias lists.
package config

package normalize

import (
	"fmt"
	"regexp"

	"github.com/icrphysics/RS-License-Viewer/internal/model"
)

// Alias is one ordered (match, replacement) substitution rule.
// The match expression is a regular expression, compiled once up front.
type Alias struct {
	pattern     *regexp.Regexp
	replacement string
}

// NewAlias compiles a single alias rule.
func NewAlias(match, replacement string) (Alias, error) {
	re, err := regexp.Compile(match)
	if err != nil {
		return Alias{}, fmt.Errorf("invalid alias pattern %q: %w", match, err)
	}
	return Alias{pattern: re, replacement: replacement}, nil
}

// CompileStripPatterns compiles an ordered list of strip expressions.
// The returned slice preserves input order; order matters because patterns
// are applied sequentially per record.
func CompileStripPatterns(exprs []string) ([]*regexp.Regexp, error) {
	patterns := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		re, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("invalid strip pattern %q: %w", expr, err)
		}
		patterns = append(patterns, re)
	}
	return patterns, nil
}

// CompileAliases compiles an ordered list of (match, replacement) pairs.
func CompileAliases(pairs [][2]string) ([]Alias, error) {
	aliases := make([]Alias, 0, len(pairs))
	for _, pair := range pairs {
		alias, err := NewAlias(pair[0], pair[1])
		if err != nil {
			return nil, err
		}
		aliases = append(aliases, alias)
	}
	return aliases, nil
}

// ApplyStripPatterns removes every match of each pattern from each record's
// feature name, in pattern order. Applying an exhausted pattern again is a
// no-op, so the operation is idempotent per pattern.
func ApplyStripPatterns(records []model.LicenseRecord, patterns []*regexp.Regexp) {
	for i := range records {
		for _, pattern := range patterns {
			records[i].Feature = pattern.ReplaceAllString(records[i].Feature, "")
		}
	}
}

// ApplyAliases substitutes each alias in list order on each record's feature
// name. A later alias sees (and may rewrite) text introduced by an earlier
// replacement.
func ApplyAliases(records []model.LicenseRecord, aliases []Alias) {
	for i := range records {
		for _, alias := range aliases {
			records[i].Feature = alias.pattern.ReplaceAllString(records[i].Feature, alias.replacement)
		}
	}
}

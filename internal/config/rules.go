package config

// AliasRule is one ordered (match, replace) feature-name substitution.
// Match is a regular expression; Replace is the literal substitution text.
type AliasRule struct {
	Match   string `yaml:"match"`
	Replace string `yaml:"replace"`
}

// Rules holds the name rules loaded from the .licview rules file.
//
// Design decision: Aliases are an explicit ordered list rather than a map.
// Substitution order is significant (a later rule can act on text introduced
// by an earlier replacement) and YAML maps do not guarantee iteration order.
type Rules struct {
	// Ignore lists substrings; a feature whose name contains any of them is
	// dropped from reporting.
	Ignore []string `yaml:"ignore,omitempty"`

	// Protect lists substrings that override Ignore: a feature whose name
	// contains any of them is always kept.
	Protect []string `yaml:"protect,omitempty"`

	// Strip lists regular expressions removed from feature names, in order.
	Strip []string `yaml:"strip,omitempty"`

	// Aliases lists ordered (match, replace) substitutions applied to
	// feature names after stripping.
	Aliases []AliasRule `yaml:"aliases,omitempty"`
}

// AliasPairs returns the alias rules as ordered (match, replacement) pairs.
func (r *Rules) AliasPairs() [][2]string {
	pairs := make([][2]string, 0, len(r.Aliases))
	for _, a := range r.Aliases {
		pairs = append(pairs, [2]string{a.Match, a.Replace})
	}
	return pairs
}

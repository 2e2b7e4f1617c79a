// Package normalize rewrites feature display names via ordered strip
// patterns and ordered alias substitutions.
//
// Both operations mutate the Feature name of each record in place and are
// order-sensitive: pattern two sees the result of pattern one, and a later
// alias can act on text introduced by an earlier replacement. Records are
// independent of each other; no cross-record interaction occurs.
package normalize

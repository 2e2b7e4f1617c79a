// Package classify filters license records by name rules and partitions a
// record pool into red, orange, and green severity buckets by remaining
// capacity.
//
// All operations are pure value-returning transformations over record
// slices. Partitioning never mutates its input pool in place; this avoids
// the index-drift hazard of removing elements from a list while deriving
// another from it.
package classify

// Package match selects the catalog types a resolver specification applies
// to: case-insensitive property-name matching combined with include/exclude
// namespace-prefix filtering.
//
// Prefix filtering is a plain string-prefix test against the type's package
// path, with no segment-boundary check: prefix "app/foo" also matches
// package "app/foobar". This is deliberate, documented behavior.
package match

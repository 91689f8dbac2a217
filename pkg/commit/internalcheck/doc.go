// Package internalcheck holds policy tests that walk the syntax trees of
// every non-test package under pkg/commit.
//
// The package has no exported API. Its tests fail when library code compares
// encodings with ==, bytes.Equal or reflect.DeepEqual instead of
// crypto/subtle, or passes a hex verb to a printf-style function whose output
// could carry an opening into an error message or log line.
package internalcheck

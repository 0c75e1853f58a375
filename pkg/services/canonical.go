package services

import "strings"

// Canonicalize normalizes free-text identifiers like case names and opposing
// party names: trims, collapses internal whitespace runs to a single space.
// Two spellings that differ only in whitespace always hit the same row.
func Canonicalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

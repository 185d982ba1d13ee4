// Package stringutil provides string utilities shared across texmigrate packages.
package stringutil

import "strings"

// NormalizeTitle collapses runs of whitespace in a heading title to single spaces
// and trims leading/trailing whitespace. Section titles are normalized once at
// parse (and config-load) time so that matching is a plain string comparison.
func NormalizeTitle(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

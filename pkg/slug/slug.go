// Package slug derives URL-safe identifiers from display names.
package slug

import (
	"regexp"
	"strings"
)

var nonAlphanumRegex = regexp.MustCompile(`[^a-z0-9]+`)

// Make lower-cases the input, collapses every run of characters outside
// [a-z0-9] into a single hyphen, and strips leading/trailing hyphens.
// Pure and deterministic. An input with no usable characters yields the
// empty string, which downstream validation must reject rather than persist.
func Make(input string) string {
	s := strings.ToLower(input)
	s = nonAlphanumRegex.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

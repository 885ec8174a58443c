// Package namekey canonicalizes player-name strings for cross-source
// comparison. Stored records keep their original casing; the normalized
// form exists only to compare names.
package namekey

import "strings"

// Normalize collapses any run of whitespace to a single space, trims the
// result, and upper-cases it. Empty input yields the empty string. The
// function is deterministic and total.
func Normalize(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToUpper(strings.Join(fields, " "))
}

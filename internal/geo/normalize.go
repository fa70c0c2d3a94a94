package geo

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize lower-cases, trims, collapses whitespace runs and strips combining
// diacritical marks so that accented and unaccented spellings compare equal.
// Every name comparison in this package and its callers must go through here.
func Normalize(s string) string {
	// The chain carries transform state, so it is built per call rather than
	// shared across goroutines.
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		// Transform only fails on malformed UTF-8; fall back to the raw input
		// so the comparison still happens on something.
		out = s
	}
	return strings.Join(strings.Fields(strings.ToLower(out)), " ")
}

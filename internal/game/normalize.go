package game

import "strings"

// quoteFolder maps the Unicode curly quote variants onto their ASCII
// equivalents and drops periods, so "St. John’s" and "st john's" compare
// equal.
var quoteFolder = strings.NewReplacer(
	"‘", "'",
	"’", "'",
	"‚", "'",
	"‛", "'",
	"“", `"`,
	"”", `"`,
	"„", `"`,
	"‟", `"`,
	".", "",
)

// Normalize canonicalizes free-text input for comparison: folds smart quotes
// to ASCII, strips periods, trims surrounding whitespace, and lowercases.
// Folding happens before trimming so a stripped period cannot leave stray
// edge whitespace behind. Idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(quoteFolder.Replace(s)))
}

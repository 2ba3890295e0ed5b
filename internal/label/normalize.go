package label

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// accentStripper decomposes to NFD, drops combining marks and recomposes,
// turning "é" into "e" without touching the base letters.
var accentStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize produces the canonical matching form shared by diagram labels
// and dictionary keys: trimmed, lower-cased, accents removed, inner
// whitespace collapsed to single spaces. Normalize is idempotent.
func Normalize(text string) string {
	lowered := strings.ToLower(strings.TrimSpace(text))
	stripped, _, err := transform.String(accentStripper, lowered)
	if err != nil {
		stripped = lowered
	}
	return strings.Join(strings.Fields(stripped), " ")
}

package label

import (
	"strings"
	"unicode"

	"github.com/uvl-tools/istar2uvl/pkg/istar2uvl"
)

// ToIdentifier converts free-form text into a PascalCase UVL feature
// identifier.
//
// Algorithm:
//  1. Replace every rune that is neither letter, number, space nor
//     underscore with a space
//  2. Turn underscores into spaces
//  3. Split on whitespace, keeping only fully alphanumeric words
//  4. Capitalize each word (first rune upper, remainder lower) and join
//
// Text that yields no words at all maps to istar2uvl.DefaultRootFeature,
// so the rendered model always has a valid root.
func ToIdentifier(text string) string {
	var cleaned strings.Builder
	cleaned.Grow(len(text))
	for _, r := range text {
		switch {
		case r == '_':
			cleaned.WriteRune(' ')
		case unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsSpace(r):
			cleaned.WriteRune(r)
		default:
			cleaned.WriteRune(' ')
		}
	}

	var words []string
	for _, word := range strings.Fields(cleaned.String()) {
		if !isAlphanumeric(word) {
			continue
		}
		words = append(words, capitalize(word))
	}

	if len(words) == 0 {
		return istar2uvl.DefaultRootFeature
	}
	return strings.Join(words, "")
}

// isAlphanumeric reports whether every rune of word is a letter or number.
func isAlphanumeric(word string) bool {
	for _, r := range word {
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) {
			return false
		}
	}
	return len(word) > 0
}

// capitalize title-cases the first rune and lower-cases the remainder,
// so "AES" becomes "Aes" and "gpu" becomes "Gpu".
func capitalize(word string) string {
	r := []rune(word)
	return string(unicode.ToTitle(r[0])) + strings.ToLower(string(r[1:]))
}

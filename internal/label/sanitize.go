package label

import (
	"html"
	"regexp"
	"strings"
)

// tagRegex matches markup tags embedded in label attributes. draw.io stores
// rich-text labels as HTML fragments (<div>, <br>, <b style="...">, ...).
var tagRegex = regexp.MustCompile(`<[^>]+>`)

// Sanitize reduces a raw label attribute to plain text.
//
// Algorithm:
//  1. Decode HTML entities (&amp;, &lt;, &#228;, ...)
//  2. Replace every tag with a single space so adjacent words stay separated
//  3. Trim leading and trailing whitespace
//
// Sanitize never fails: malformed markup degrades to plain text and an
// empty label stays empty.
func Sanitize(raw string) string {
	decoded := html.UnescapeString(raw)
	stripped := tagRegex.ReplaceAllString(decoded, " ")
	return strings.TrimSpace(stripped)
}

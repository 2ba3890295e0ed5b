package diagram

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"github.com/uvl-tools/istar2uvl/internal/label"
	"github.com/uvl-tools/istar2uvl/pkg/istar2uvl"
)

// Parse extracts every i* model object from a draw.io diagram export.
//
// Algorithm:
//  1. Stream the document token by token
//  2. Capture the type and label attributes of each <object> start
//     element, at any nesting depth ("" when an attribute is absent);
//     the type is lower-cased so kind checks are case-insensitive
//  3. Sanitize the label and derive its normalized matching form
//
// Parameters:
//   - content: Diagram file content
//   - filePath: File path for error reporting (optional, can be empty)
//
// Returns:
//   - Objects in document order; empty (non-nil error only on bad XML)
//     when the document has elements but no <object> among them
//   - error: *ParseError matching istar2uvl.ErrDiagramParse for malformed
//     XML, including an empty document with no root element
//
// Attributes other than type and label are ignored.
func Parse(content []byte, filePath string) ([]istar2uvl.DiagramObject, error) {
	decoder := xml.NewDecoder(bytes.NewReader(content))

	var objects []istar2uvl.DiagramObject
	sawElement := false

	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, wrapXMLError(err, filePath)
		}

		start, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		sawElement = true

		if start.Name.Local != "object" {
			continue
		}

		var kind, rawLabel string
		for _, attr := range start.Attr {
			switch attr.Name.Local {
			case "type":
				kind = strings.ToLower(attr.Value)
			case "label":
				rawLabel = attr.Value
			}
		}

		sanitized := label.Sanitize(rawLabel)
		objects = append(objects, istar2uvl.DiagramObject{
			Kind:            kind,
			RawLabel:        sanitized,
			NormalizedLabel: label.Normalize(sanitized),
		})
	}

	if !sawElement {
		return nil, &ParseError{
			FilePath: filePath,
			Message:  "no element found",
			Hint:     "The file must be a draw.io XML export containing <object> elements.",
		}
	}

	return objects, nil
}

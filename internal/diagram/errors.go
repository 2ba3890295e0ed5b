package diagram

import (
	"encoding/xml"
	"fmt"

	"github.com/uvl-tools/istar2uvl/pkg/istar2uvl"
)

// ParseError represents a structured diagram parsing error with context
// and a helpful hint. It includes the file path and, when the XML decoder
// reports one, the offending line number.
type ParseError struct {
	FilePath string // Path to the diagram with the error
	Line     int    // Line number (0 if unknown)
	Message  string // Primary error message
	Hint     string // Actionable suggestion for fixing
}

// Error implements the error interface with rich formatting.
func (e *ParseError) Error() string {
	location := e.FilePath
	if e.Line > 0 {
		location = fmt.Sprintf("%s (line %d)", e.FilePath, e.Line)
	}

	msg := fmt.Sprintf("diagram error in %s: %s", location, e.Message)

	if e.Hint != "" {
		msg += "\n\nHint: " + e.Hint
	}

	return msg
}

// Unwrap ties every ParseError to the istar2uvl.ErrDiagramParse sentinel,
// so callers can classify it with errors.Is.
func (e *ParseError) Unwrap() error {
	return istar2uvl.ErrDiagramParse
}

// wrapXMLError converts xml package errors to ParseError with line numbers.
func wrapXMLError(err error, filePath string) error {
	if syntaxErr, ok := err.(*xml.SyntaxError); ok {
		return &ParseError{
			FilePath: filePath,
			Line:     int(syntaxErr.Line),
			Message:  syntaxErr.Msg,
			Hint: "Check that all XML tags are properly closed and attributes are quoted.\n" +
				"Re-export the diagram from draw.io if the file was edited by hand.",
		}
	}

	return &ParseError{
		FilePath: filePath,
		Message:  err.Error(),
		Hint:     "The file must be a draw.io XML export containing <object> elements.",
	}
}

package istar2uvl

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := generator.Generate(config)
//	if errors.Is(err, istar2uvl.ErrDiagramParse) {
//	    // Handle a malformed diagram
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrDiagramParse indicates the diagram XML could not be parsed.
	ErrDiagramParse = errors.New("diagram parse failed")

	// ErrMissingRootGoal indicates the diagram has no goal object with a
	// non-empty label while strict root-goal mode is enabled.
	ErrMissingRootGoal = errors.New("missing root goal")

	// ErrOutputWrite indicates the rendered UVL file could not be written.
	ErrOutputWrite = errors.New("output write failed")

	// ErrTemplateNotFound indicates the requested scaffold template does not exist.
	ErrTemplateNotFound = errors.New("template not found")
)

// usageErrorPatterns are substrings of the plain error strings cobra
// produces for command-line misuse.
var usageErrorPatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"invalid argument",
	"required flag",
	"missing required argument",
	"accepts ",
	"requires at least",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Check for sentinel errors
	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrDiagramParse):
		return ExitDiagramError
	case errors.Is(err, ErrMissingRootGoal):
		return ExitRootGoalMissing
	case errors.Is(err, ErrOutputWrite):
		return ExitOutputError
	case errors.Is(err, ErrTemplateNotFound):
		return ExitConfigError
	}

	// Cobra reports usage problems as plain error strings.
	errStr := err.Error()
	for _, pattern := range usageErrorPatterns {
		if strings.Contains(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}

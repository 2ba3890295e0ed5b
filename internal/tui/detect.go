package tui

import (
	"os"

	"golang.org/x/term"
)

// Mode represents the interaction mode for istar2uvl.
type Mode int

const (
	// ModeNonInteractive is used for CI/CD pipelines, scripts, and piped input.
	ModeNonInteractive Mode = iota
	// ModeInteractive is used when a human is at the terminal.
	ModeInteractive
)

// DetectMode determines whether istar2uvl should run in interactive or
// non-interactive mode.
//
// Returns ModeNonInteractive if:
//   - ISTAR2UVL_NON_INTERACTIVE=1 is set
//   - CI is set (common CI/CD convention)
//   - NO_COLOR is set (accessibility/automation indicator)
//   - stdin or stdout is not a terminal (piped input, CI/CD)
//
// Returns ModeInteractive otherwise.
func DetectMode() Mode {
	// Environment overrides come before any terminal probing
	if os.Getenv("ISTAR2UVL_NON_INTERACTIVE") == "1" {
		return ModeNonInteractive
	}
	if os.Getenv("CI") != "" {
		return ModeNonInteractive
	}
	if os.Getenv("NO_COLOR") != "" {
		return ModeNonInteractive
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return ModeNonInteractive
	}

	// stdout matters too: the selector renders there
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ModeNonInteractive
	}

	return ModeInteractive
}

// IsInteractive reports whether istar2uvl is running in interactive mode.
func IsInteractive() bool {
	return DetectMode() == ModeInteractive
}

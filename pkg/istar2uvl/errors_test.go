package istar2uvl_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/uvl-tools/istar2uvl/pkg/istar2uvl"
)

func TestExitCodeForError_SentinelErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, istar2uvl.ExitSuccess},
		{"invalid config", istar2uvl.ErrInvalidConfig, istar2uvl.ExitConfigError},
		{"diagram parse", istar2uvl.ErrDiagramParse, istar2uvl.ExitDiagramError},
		{"missing root goal", istar2uvl.ErrMissingRootGoal, istar2uvl.ExitRootGoalMissing},
		{"output write", istar2uvl.ErrOutputWrite, istar2uvl.ExitOutputError},
		{"template not found", istar2uvl.ErrTemplateNotFound, istar2uvl.ExitConfigError},
		{"general error", errors.New("something went wrong"), istar2uvl.ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := istar2uvl.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeForError_WrappedSentinels(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			"wrapped diagram parse",
			fmt.Errorf("loading diagram.xml: %w", istar2uvl.ErrDiagramParse),
			istar2uvl.ExitDiagramError,
		},
		{
			"double wrapped output write",
			fmt.Errorf("generate: %w", fmt.Errorf("writing model.uvl: %w", istar2uvl.ErrOutputWrite)),
			istar2uvl.ExitOutputError,
		},
		{
			"joined config errors",
			errors.Join(
				fmt.Errorf("DiagramPath is required: %w", istar2uvl.ErrInvalidConfig),
				fmt.Errorf("OutputPath is required: %w", istar2uvl.ErrInvalidConfig),
			),
			istar2uvl.ExitConfigError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := istar2uvl.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeForError_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unknown flag", errors.New("unknown flag: --foo"), istar2uvl.ExitUsageError},
		{"unknown shorthand flag", errors.New("unknown shorthand flag: 'x'"), istar2uvl.ExitUsageError},
		{"accepts args", errors.New("accepts 2 arg(s), received 0"), istar2uvl.ExitUsageError},
		{"missing required argument", errors.New("missing required argument: <diagram_path>"), istar2uvl.ExitUsageError},
		{"invalid argument", errors.New("invalid argument \"abc\" for \"--map\""), istar2uvl.ExitUsageError},
		{"unknown command", errors.New("unknown command \"genrate\" for \"istar2uvl\""), istar2uvl.ExitUsageError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := istar2uvl.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

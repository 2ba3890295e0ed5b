package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/uvl-tools/istar2uvl/internal/tui/components"
)

// ErrSelectionCancelled is returned when the user aborts a selector
// without choosing an option.
var ErrSelectionCancelled = errors.New("selection cancelled")

// RunSelector presents an interactive list picker and returns the chosen
// option. Callers must check IsInteractive before invoking it.
func RunSelector(title string, options []components.Option) (*components.Option, error) {
	model := components.NewSelector(title, options)

	finalModel, err := tea.NewProgram(model).Run()
	if err != nil {
		return nil, fmt.Errorf("selector failed: %w", err)
	}

	selector, ok := finalModel.(components.Selector)
	if !ok {
		return nil, fmt.Errorf("unexpected selector model type %T", finalModel)
	}

	if selector.Cancelled() || !selector.Submitted() {
		return nil, ErrSelectionCancelled
	}

	option := selector.SelectedOption()
	if option == nil {
		return nil, ErrSelectionCancelled
	}
	return option, nil
}

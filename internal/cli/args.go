package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RequireDiagramAndOutput validates that exactly the <diagram_path> and
// <output_path> arguments are provided.
// Returns a helpful error message with usage and examples if missing or too many.
func RequireDiagramAndOutput(cmd *cobra.Command, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf(`missing required arguments: <diagram_path> <output_path>

Usage: %s

Example:
  %s model.xml model.uvl`, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 2 {
		return fmt.Errorf("accepts 2 arg(s), received %d", len(args))
	}
	return nil
}

// RequireDiagramPath validates that exactly one diagram_path argument is provided.
// Returns a helpful error message with usage and examples if missing or too many.
func RequireDiagramPath(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <diagram_path>

Usage: %s

Example:
  %s model.xml`, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("accepts 1 arg(s), received %d", len(args))
	}
	return nil
}

// RequireTemplateName validates that exactly one template_name argument is provided.
// Returns a helpful error message with usage and examples if missing or too many.
func RequireTemplateName(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <template_name>

Usage: %s

Example:
  %s basic

Use 'istar2uvl templates list' to see available templates.`, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("accepts 1 arg(s), received %d", len(args))
	}
	return nil
}

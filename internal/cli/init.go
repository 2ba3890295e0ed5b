package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/uvl-tools/istar2uvl/internal/logging"
	"github.com/uvl-tools/istar2uvl/internal/scaffold"
	"github.com/uvl-tools/istar2uvl/internal/tui"
	"github.com/uvl-tools/istar2uvl/internal/tui/components"
	"github.com/uvl-tools/istar2uvl/pkg/istar2uvl"
)

var initCmd = &cobra.Command{
	Use:   "init <target_path>",
	Short: "Initialize a configuration directory",
	Long: `Initialize a configuration directory with starter mapping dictionaries.

The init command creates:
- One dictionary file per category (algorithms.txt, nfrs.txt,
  backend.txt, integration.txt)
- A README explaining the "key => Feature" entry format

Target directory must be empty or non-existent.

Examples:
  istar2uvl init config            # The directory generate reads by default
  istar2uvl init ./dictionaries    # Custom location, pass it via --config
  istar2uvl init /absolute/path    # Absolute path

Available templates:
  basic      - Generic starter entries for each category
  chemistry  - Entries for computational chemistry workflows

Use 'istar2uvl templates list' to see all available templates with descriptions.`,
	Args:              cobra.MinimumNArgs(0),
	ValidArgsFunction: completeDirectories,
	RunE:              runInit,
}

var (
	initTemplate string
	initList     bool
)

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVarP(&initTemplate, "template", "t", "basic", "Template to use (basic, chemistry)")
	initCmd.Flags().BoolVar(&initList, "list", false, "List available templates")
}

func runInit(cmd *cobra.Command, args []string) error {
	// Handle --list flag
	if initList {
		return runTemplatesList(cmd, args)
	}

	// Require target path if not listing
	if len(args) == 0 {
		return fmt.Errorf("target path required\n\nUsage: istar2uvl init <target_path> [flags]\n\nExamples:\n  istar2uvl init config        # Default configuration directory\n  istar2uvl init ./dictionaries # Custom location\n\nUse 'istar2uvl init --list' to see available templates")
	}

	targetPath := args[0]

	// Determine project name from target path
	projectName := filepath.Base(targetPath)
	if projectName == "." || projectName == ".." {
		cwd, err := os.Getwd()
		if err == nil {
			projectName = filepath.Base(cwd)
		} else {
			projectName = "project"
		}
	}
	verbose := getVerboseFlag(cmd)

	// Offer the selector only when the template was not pinned on the
	// command line and a terminal is attached.
	if !cmd.Flags().Changed("template") && tui.IsInteractive() {
		selected, err := selectTemplateInteractive()
		if err != nil {
			return err
		}
		if selected == "" {
			return nil
		}
		initTemplate = selected
	}

	if !scaffold.IsValidTemplate(initTemplate) {
		templates, listErr := scaffold.ListTemplates()
		if listErr != nil {
			return fmt.Errorf("failed to list templates: %w", listErr)
		}
		return fmt.Errorf("invalid template '%s'. Available templates: %v\n\nUse 'istar2uvl templates list' for detailed descriptions", initTemplate, templates)
	}

	scaffolder := scaffold.NewScaffolder(logging.NewConsoleLogger(verbose))

	if err := scaffolder.CreateProject(projectName, initTemplate, targetPath); err != nil {
		return fmt.Errorf("failed to create configuration directory: %w", err)
	}

	// Display file tree
	tree, err := scaffold.BuildFileTree(targetPath)
	if err != nil {
		// Non-fatal - just skip tree display
		fmt.Fprintf(os.Stderr, "\n✓ Configuration directory initialized in '%s' using template '%s'\n\n", targetPath, initTemplate)
	} else {
		fmt.Fprintf(os.Stderr, "\n✓ Configuration directory initialized using template '%s'\n\n", initTemplate)
		fmt.Fprintln(os.Stderr, "Created structure:")
		fmt.Fprint(os.Stderr, tree)
	}

	// Next steps
	fmt.Fprintln(os.Stderr, "\nNext steps:")
	fmt.Fprintln(os.Stderr, "  # Edit the dictionaries, then convert a diagram:")
	if targetPath == istar2uvl.DefaultConfigDir {
		fmt.Fprintln(os.Stderr, "  istar2uvl generate model.xml model.uvl")
	} else {
		fmt.Fprintf(os.Stderr, "  istar2uvl generate model.xml model.uvl --config %s\n", targetPath)
	}
	fmt.Fprintln(os.Stderr, "  # Check what the dictionaries match first:")
	if targetPath == istar2uvl.DefaultConfigDir {
		fmt.Fprintln(os.Stderr, "  istar2uvl inspect model.xml")
	} else {
		fmt.Fprintf(os.Stderr, "  istar2uvl inspect model.xml --config %s\n", targetPath)
	}

	return nil
}

// selectTemplateInteractive lets the user pick a template from a terminal
// selector. Returns "" with a nil error when the user cancels.
func selectTemplateInteractive() (string, error) {
	templates, err := scaffold.ListTemplates()
	if err != nil {
		return "", fmt.Errorf("failed to list templates: %w", err)
	}

	descriptions := getTemplateDescriptions()
	options := make([]components.Option, 0, len(templates))
	for _, name := range templates {
		description := "Starter dictionary set"
		if d, ok := descriptions[name]; ok {
			description = d.Short
		}
		options = append(options, components.Option{
			Label:       name,
			Description: description,
			Value:       name,
		})
	}

	selection, err := tui.RunSelector("Choose a starter dictionary set", options)
	if err != nil {
		if errors.Is(err, tui.ErrSelectionCancelled) {
			fmt.Fprintln(os.Stderr, "Cancelled.")
			return "", nil
		}
		return "", err
	}
	return selection.Value, nil
}

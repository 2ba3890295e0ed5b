package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/uvl-tools/istar2uvl/internal/scaffold"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Manage starter dictionary templates",
	Long: `List and describe available starter dictionary templates.

Templates provide different starting points for your configuration
directory, from generic mapping entries to domain-specific sets.`,
}

var templatesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available templates",
	Long:  `List all available starter dictionary templates with descriptions.`,
	RunE:  runTemplatesList,
}

var templatesDescribeCmd = &cobra.Command{
	Use:               "describe <template_name>",
	Short:             "Show detailed information about a template",
	Long:              `Show detailed information about a specific template including its files and dictionary coverage.`,
	Args:              RequireTemplateName,
	ValidArgsFunction: completeTemplateNames,
	RunE:              runTemplatesDescribe,
}

func init() {
	rootCmd.AddCommand(templatesCmd)
	templatesCmd.AddCommand(templatesListCmd)
	templatesCmd.AddCommand(templatesDescribeCmd)
}

func runTemplatesList(cmd *cobra.Command, args []string) error {
	templates, err := scaffold.ListTemplates()
	if err != nil {
		return fmt.Errorf("failed to list templates: %w", err)
	}

	fmt.Fprintln(os.Stderr, "Available templates:")
	fmt.Fprintln(os.Stderr)

	// Template descriptions
	descriptions := getTemplateDescriptions()

	for _, t := range templates {
		desc, ok := descriptions[t]
		if !ok {
			desc = TemplateDescription{
				Short: "No description available",
				Long:  "",
			}
		}

		fmt.Fprintf(os.Stderr, "  %-12s %s\n", t, desc.Short)
		if desc.Long != "" {
			fmt.Fprintf(os.Stderr, "               %s\n", desc.Long)
		}
		if desc.BestFor != "" {
			fmt.Fprintf(os.Stderr, "               Best for: %s\n", desc.BestFor)
		}
		fmt.Fprintln(os.Stderr)
	}

	fmt.Fprintln(os.Stderr, "Use: istar2uvl init <target_path> --template <template_name>")
	return nil
}

func runTemplatesDescribe(cmd *cobra.Command, args []string) error {
	templateName := args[0]

	info, err := scaffold.DescribeTemplate(templateName)
	if err != nil {
		templates, _ := scaffold.ListTemplates()
		return fmt.Errorf("template '%s' not found. Available templates: %v\n\nUse 'istar2uvl templates list' to see all templates", templateName, templates)
	}

	// Get template description
	descriptions := getTemplateDescriptions()
	desc, ok := descriptions[templateName]
	if !ok {
		return fmt.Errorf("no description available for template '%s'", templateName)
	}

	// Print detailed description
	fmt.Fprintf(os.Stderr, "Template: %s\n", templateName)
	fmt.Fprintf(os.Stderr, "Description: %s\n", desc.Short)
	if desc.Long != "" {
		fmt.Fprintf(os.Stderr, "\n%s\n", desc.Long)
	}

	if len(info.Files) > 0 {
		fmt.Fprintln(os.Stderr, "\nFiles:")
		for _, file := range info.Files {
			fmt.Fprintf(os.Stderr, "  %s\n", file)
		}
	}

	if len(desc.Features) > 0 {
		fmt.Fprintln(os.Stderr, "\nFeatures:")
		for _, feature := range desc.Features {
			fmt.Fprintf(os.Stderr, "  - %s\n", feature)
		}
	}

	if desc.BestFor != "" {
		fmt.Fprintf(os.Stderr, "\nBest for: %s\n", desc.BestFor)
	}

	fmt.Fprintf(os.Stderr, "\nUsage:\n  istar2uvl init config --template %s\n", templateName)

	return nil
}

// TemplateDescription contains metadata about a template
type TemplateDescription struct {
	Short    string
	Long     string
	Features []string
	BestFor  string
}

// getTemplateDescriptions returns descriptions for all templates
func getTemplateDescriptions() map[string]TemplateDescription {
	return map[string]TemplateDescription{
		"basic": {
			Short: "Generic starter entries for each category",
			Long:  "A minimal dictionary set covering common algorithm, quality, backend and integration keywords.",
			Features: []string{
				"One dictionary file per category",
				"Commented entry format examples",
				"Safe to trim down to a single category",
			},
			BestFor: "First conversions and diagrams outside a specific domain",
		},
		"chemistry": {
			Short: "Entries for computational chemistry workflows",
			Long:  "Dictionaries tuned to molecular simulation diagrams: solvers, accuracy goals and cluster backends.",
			Features: []string{
				"Simulation algorithm keywords (molecular dynamics, monte carlo)",
				"Accuracy and throughput quality keywords",
				"HPC and cloud backend keywords",
			},
			BestFor: "Goal models describing simulation and screening pipelines",
		},
	}
}

package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/uvl-tools/istar2uvl/internal/logging"
	"github.com/uvl-tools/istar2uvl/internal/params"
	"github.com/uvl-tools/istar2uvl/internal/services"
	"github.com/uvl-tools/istar2uvl/internal/tui"
	"github.com/uvl-tools/istar2uvl/pkg/istar2uvl"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <diagram_path>",
	Short: "Analyze a diagram without writing output",
	Long: `Inspect runs the full conversion pass and reports what generate
would produce, without writing a UVL file.

The report shows:
- Object counts per type attribute
- The root feature, the label it came from, and its provenance
- The features matched per category
- The dictionary sizes per category
- The constraint lines the model would carry

Examples:
  # Inspect with the default configuration directory
  istar2uvl inspect model.xml

  # Check what an ad-hoc mapping would change
  istar2uvl inspect model.xml --map nfrs:latency=Performance

  # Also print the UVL document generate would write
  istar2uvl inspect model.xml --preview`,
	Args: RequireDiagramPath,
	RunE: runInspect,
}

type inspectFlagValues struct {
	configDir       string
	rootLabel       string
	requireRootGoal bool
	mappings        []string
	preview         bool
}

var inspectFlags inspectFlagValues

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().StringVarP(&inspectFlags.configDir, "config", "c", "",
		"Directory holding the category dictionaries\n"+
			"Precedence: --config > $ISTAR2UVL_CONFIG_DIR > istar2uvl.yaml > config")
	inspectCmd.Flags().StringVar(&inspectFlags.rootLabel, "root-label", "",
		"Fallback root label used when the diagram has no labelled goal\n"+
			"Precedence: --root-label > $ISTAR2UVL_ROOT_LABEL > istar2uvl.yaml > empty")
	inspectCmd.Flags().BoolVar(&inspectFlags.requireRootGoal, "require-root-goal", false,
		"Fail when the diagram has no labelled goal object\n"+
			"Without this flag the fallback root label is substituted")
	inspectCmd.Flags().StringSliceVar(&inspectFlags.mappings, "map", nil,
		"Mapping entry as category:key=Feature (can be specified multiple times)\n"+
			"Merged over the loaded dictionaries; same key wins over the file entry\n"+
			"Example: --map \"algorithms:monte carlo=MonteCarlo\"")
	inspectCmd.Flags().BoolVar(&inspectFlags.preview, "preview", false,
		"Print the UVL document the conversion would produce")
}

// buildInspectConfig builds an InspectConfig from CLI flags, environment
// and the optional project file.
func buildInspectConfig(cmd *cobra.Command, diagramPath string) (istar2uvl.InspectConfig, error) {
	projectCfg, err := loadProjectConfig(".")
	if err != nil {
		return istar2uvl.InspectConfig{}, err
	}

	overrides, err := params.ParseMappingOverrides(inspectFlags.mappings)
	if err != nil {
		return istar2uvl.InspectConfig{}, fmt.Errorf("%w: %w", istar2uvl.ErrInvalidConfig, err)
	}

	return istar2uvl.InspectConfig{
		DiagramPath:     diagramPath,
		ConfigDir:       resolveConfigDir(cmd, inspectFlags.configDir, projectCfg),
		RootLabel:       resolveRootLabel(cmd, inspectFlags.rootLabel, projectCfg),
		RequireRootGoal: resolveRequireRootGoal(cmd, inspectFlags.requireRootGoal, projectCfg),
		Overrides:       overrides,
	}, nil
}

func runInspect(cmd *cobra.Command, args []string) error {
	diagramPath := args[0]
	verbose := getVerboseFlag(cmd)

	config, err := buildInspectConfig(cmd, diagramPath)
	if err != nil {
		return err
	}

	logger := logging.NewConsoleLogger(verbose)
	generator := services.NewGeneratorService(logger)

	report, err := generator.Inspect(config)
	if err != nil {
		return err
	}

	printInspectReport(report)

	if inspectFlags.preview {
		fmt.Println()
		document := generator.Render(report)
		fmt.Print(document)
		if !strings.HasSuffix(document, "\n") {
			fmt.Println()
		}
	}
	return nil
}

// printInspectReport writes the styled analysis report to stdout.
func printInspectReport(report *istar2uvl.Report) {
	fmt.Printf("%s %s\n", tui.LabelStyle.Render("Diagram:"), tui.ValueStyle.Render(report.DiagramPath))
	fmt.Printf("%s %s\n", tui.LabelStyle.Render("Objects:"), formatKindCounts(report.ObjectCount, report.KindCounts))

	provenance := fmt.Sprintf("from diagram goal %q", report.RootLabel)
	if !report.RootFromDiagram {
		provenance = "fallback, no labelled goal in the diagram"
		if report.RootLabel != "" {
			provenance = fmt.Sprintf("fallback label %q", report.RootLabel)
		}
	}
	fmt.Printf("%s %s (%s)\n", tui.LabelStyle.Render("Root:"), tui.ValueStyle.Render(report.RootFeature), provenance)

	fmt.Printf("\n%s\n", tui.LabelStyle.Render("Features:"))
	for _, category := range istar2uvl.Categories() {
		features := featuresFor(report.Classification, category)
		line := strings.Join(features, ", ")
		if len(features) == 0 {
			line = tui.WarningStyle.Render("(none)")
		}
		fmt.Printf("  %-12s %s\n", category, line)
	}

	fmt.Printf("\n%s\n", tui.LabelStyle.Render("Dictionary sizes:"))
	for _, category := range istar2uvl.Categories() {
		size := report.TableSizes[category]
		entries := fmt.Sprintf("%d", size)
		if size == 0 {
			entries = tui.WarningStyle.Render("empty")
		}
		fmt.Printf("  %-12s %s\n", category, entries)
	}

	fmt.Printf("\n%s\n", tui.LabelStyle.Render("Constraints:"))
	if len(report.Constraints) == 0 {
		fmt.Printf("  %s\n", tui.WarningStyle.Render("(none)"))
		return
	}
	for _, constraint := range report.Constraints {
		fmt.Printf("  %s\n", constraint)
	}
}

// formatKindCounts renders "4 (goal: 1, task: 3)" with kinds sorted by name.
func formatKindCounts(total int, counts map[string]int) string {
	if len(counts) == 0 {
		return fmt.Sprintf("%d", total)
	}

	kinds := make([]string, 0, len(counts))
	for kind := range counts {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)

	parts := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		parts = append(parts, fmt.Sprintf("%s: %d", kind, counts[kind]))
	}
	return fmt.Sprintf("%d (%s)", total, strings.Join(parts, ", "))
}

// featuresFor returns the classified feature slice backing a category.
func featuresFor(classification istar2uvl.Classification, category string) []string {
	switch category {
	case istar2uvl.CategoryAlgorithms:
		return classification.Algorithms
	case istar2uvl.CategoryNFRs:
		return classification.NFRs
	case istar2uvl.CategoryBackend:
		return classification.Backends
	case istar2uvl.CategoryIntegration:
		return classification.Integrations
	}
	return nil
}

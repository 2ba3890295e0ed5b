package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/uvl-tools/istar2uvl/internal/logging"
	"github.com/uvl-tools/istar2uvl/internal/params"
	"github.com/uvl-tools/istar2uvl/internal/services"
	"github.com/uvl-tools/istar2uvl/internal/tui"
	"github.com/uvl-tools/istar2uvl/pkg/istar2uvl"
)

var generateCmd = &cobra.Command{
	Use:   "generate <diagram_path> <output_path>",
	Short: "Convert an i* diagram to a UVL feature model",
	Long: `Generate reads a draw.io XML export of an i* goal model and writes
the corresponding UVL feature model.

The generate command:
1. Loads the category dictionaries from the configuration directory
2. Parses every <object> element of the diagram
3. Classifies object labels by keyword containment
4. Names the root feature after the first labelled goal object
5. Renders and writes the UVL document in a single pass

Arguments:
  diagram_path    Path to the draw.io XML export of the i* model
  output_path     Path of the UVL file to write

Nothing is written when any step fails; the output file is either the
complete model or absent.

Examples:
  # Convert with the default configuration directory (./config)
  istar2uvl generate model.xml model.uvl

  # Use a project-specific dictionary set
  istar2uvl generate model.xml model.uvl --config dictionaries

  # Ad-hoc mapping entries layered over the dictionaries
  istar2uvl generate model.xml model.uvl \
    --map "algorithms:monte carlo=MonteCarlo" \
    --map nfrs:latency=Performance

  # Fail instead of substituting a fallback root label
  istar2uvl generate model.xml model.uvl --require-root-goal`,
	Args: RequireDiagramAndOutput,
	RunE: runGenerate,
}

type generateFlagValues struct {
	configDir       string
	rootLabel       string
	requireRootGoal bool
	mappings        []string
}

var generateFlags generateFlagValues

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&generateFlags.configDir, "config", "c", "",
		"Directory holding the category dictionaries\n"+
			"Precedence: --config > $ISTAR2UVL_CONFIG_DIR > istar2uvl.yaml > config")
	generateCmd.Flags().StringVar(&generateFlags.rootLabel, "root-label", "",
		"Fallback root label used when the diagram has no labelled goal\n"+
			"Precedence: --root-label > $ISTAR2UVL_ROOT_LABEL > istar2uvl.yaml > empty")
	generateCmd.Flags().BoolVar(&generateFlags.requireRootGoal, "require-root-goal", false,
		"Fail when the diagram has no labelled goal object\n"+
			"Without this flag the fallback root label is substituted")
	generateCmd.Flags().StringSliceVar(&generateFlags.mappings, "map", nil,
		"Mapping entry as category:key=Feature (can be specified multiple times)\n"+
			"Merged over the loaded dictionaries; same key wins over the file entry\n"+
			"Example: --map \"algorithms:monte carlo=MonteCarlo\"")
}

// buildGenerateConfig builds a GenerateConfig from CLI flags, environment
// and the optional project file.
// This function is extracted for testability and separation of concerns.
func buildGenerateConfig(cmd *cobra.Command, diagramPath, outputPath string) (istar2uvl.GenerateConfig, error) {
	projectCfg, err := loadProjectConfig(".")
	if err != nil {
		return istar2uvl.GenerateConfig{}, err
	}

	overrides, err := params.ParseMappingOverrides(generateFlags.mappings)
	if err != nil {
		return istar2uvl.GenerateConfig{}, fmt.Errorf("%w: %w", istar2uvl.ErrInvalidConfig, err)
	}

	return istar2uvl.GenerateConfig{
		DiagramPath:     diagramPath,
		OutputPath:      outputPath,
		ConfigDir:       resolveConfigDir(cmd, generateFlags.configDir, projectCfg),
		RootLabel:       resolveRootLabel(cmd, generateFlags.rootLabel, projectCfg),
		RequireRootGoal: resolveRequireRootGoal(cmd, generateFlags.requireRootGoal, projectCfg),
		Overrides:       overrides,
	}, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	diagramPath, outputPath := args[0], args[1]
	verbose := getVerboseFlag(cmd)

	config, err := buildGenerateConfig(cmd, diagramPath, outputPath)
	if err != nil {
		return err
	}

	logger := logging.NewConsoleLogger(verbose)
	generator := services.NewGeneratorService(logger)

	report, err := generator.Generate(config)
	if err != nil {
		return err
	}

	fmt.Printf("%s UVL model written to %s\n",
		tui.SuccessStyle.Render(tui.SymbolCheck), report.OutputPath)
	return nil
}

package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/uvl-tools/istar2uvl/internal/logging"
	"github.com/uvl-tools/istar2uvl/internal/mapping"
	"github.com/uvl-tools/istar2uvl/internal/tui"
	"github.com/uvl-tools/istar2uvl/pkg/istar2uvl"
)

var mappingsCmd = &cobra.Command{
	Use:   "mappings",
	Short: "Show the loaded mapping dictionaries",
	Long: `Mappings prints the dictionary entries the conversion would use,
resolved from the same configuration directory generate reads.

Each category file is <config_dir>/<category>.txt with one
"key => Feature" entry per line. Missing files show as empty
categories rather than errors.

Examples:
  # Show all categories from the default directory
  istar2uvl mappings

  # Show a single category from a custom directory
  istar2uvl mappings --config ./dictionaries --category nfrs`,
	Args: cobra.NoArgs,
	RunE: runMappings,
}

type mappingsFlagValues struct {
	configDir string
	category  string
}

var mappingsFlags mappingsFlagValues

func init() {
	rootCmd.AddCommand(mappingsCmd)

	mappingsCmd.Flags().StringVarP(&mappingsFlags.configDir, "config", "c", "",
		"Directory holding the category dictionaries\n"+
			"Precedence: --config > $ISTAR2UVL_CONFIG_DIR > istar2uvl.yaml > config")
	mappingsCmd.Flags().StringVar(&mappingsFlags.category, "category", "",
		"Limit output to one category (algorithms, nfrs, backend, integration)")

	_ = mappingsCmd.RegisterFlagCompletionFunc("category", completeCategoryNames)
}

func runMappings(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)

	projectCfg, err := loadProjectConfig(".")
	if err != nil {
		return err
	}
	configDir := resolveConfigDir(cmd, mappingsFlags.configDir, projectCfg)

	categories := istar2uvl.Categories()
	if mappingsFlags.category != "" {
		if !istar2uvl.IsCategory(mappingsFlags.category) {
			return fmt.Errorf("%w: unknown category %q (valid categories: %s)",
				istar2uvl.ErrInvalidConfig, mappingsFlags.category, strings.Join(categories, ", "))
		}
		categories = []string{mappingsFlags.category}
	}

	logger := logging.NewConsoleLogger(verbose)
	store := mapping.NewStore(logger)
	tables := store.LoadAll(configDir)

	fmt.Printf("%s %s\n", tui.LabelStyle.Render("Configuration directory:"), tui.ValueStyle.Render(configDir))
	for _, category := range categories {
		printMappingTable(category, tables[category])
	}
	return nil
}

// printMappingTable writes one category block with entries sorted by key.
func printMappingTable(category string, table istar2uvl.MappingTable) {
	fmt.Printf("\n%s\n", tui.LabelStyle.Render(category))
	if len(table) == 0 {
		fmt.Printf("  %s\n", tui.WarningStyle.Render("(no entries)"))
		return
	}

	keys := make([]string, 0, len(table))
	for key := range table {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		fmt.Printf("  %s %s %s\n", key, istar2uvl.MappingDelimiter, tui.ValueStyle.Render(table[key]))
	}
}

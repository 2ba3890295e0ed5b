package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "istar2uvl",
	Short: "Convert i* goal models to UVL feature models",
	Long: asciiLogo + `

istar2uvl reads a draw.io XML export of an i* goal model, classifies the
diagram objects against plain-text keyword dictionaries, and writes a UVL
feature model: Algorithm, Backend and IntegrationModel groups plus the
quality attributes found in the diagram.

Classification is data-driven. Edit the dictionaries (key => Feature per
line) and the same diagram produces a different model; no code changes.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration or parameters
  11 - Diagram XML could not be parsed
  12 - No labelled goal in the diagram (--require-root-goal)
  13 - Writing the UVL output failed`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for istar2uvl")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}

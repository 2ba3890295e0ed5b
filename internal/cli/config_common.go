package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/uvl-tools/istar2uvl/internal/config"
	"github.com/uvl-tools/istar2uvl/pkg/istar2uvl"
)

// Environment variables consulted between the flags and istar2uvl.yaml.
// Both may come from a .env file in the working directory.
const (
	envConfigDir = "ISTAR2UVL_CONFIG_DIR"
	envRootLabel = "ISTAR2UVL_ROOT_LABEL"
)

// loadProjectConfig loads .env defaults into the environment and reads the
// optional istar2uvl.yaml from sourcePath.
// Returns nil config if istar2uvl.yaml does not exist (not an error).
func loadProjectConfig(sourcePath string) (*config.ProjectConfig, error) {
	_ = godotenv.Load()

	projectCfg, err := config.Load(sourcePath)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
	}
	return projectCfg, nil
}

// resolveConfigDir resolves the dictionary directory.
// Precedence: --config > $ISTAR2UVL_CONFIG_DIR > istar2uvl.yaml > built-in default.
func resolveConfigDir(cmd *cobra.Command, flagValue string, projectCfg *config.ProjectConfig) string {
	if cmd.Flags().Changed("config") {
		return flagValue
	}
	if env := os.Getenv(envConfigDir); env != "" {
		return env
	}
	if projectCfg != nil && projectCfg.ConfigDir != "" {
		return projectCfg.ConfigDir
	}
	return istar2uvl.DefaultConfigDir
}

// resolveRootLabel resolves the fallback root label.
// Precedence: --root-label > $ISTAR2UVL_ROOT_LABEL > istar2uvl.yaml > empty.
// An empty result is valid; the identifier formatter turns it into the
// default root feature.
func resolveRootLabel(cmd *cobra.Command, flagValue string, projectCfg *config.ProjectConfig) string {
	if cmd.Flags().Changed("root-label") {
		return flagValue
	}
	if env := os.Getenv(envRootLabel); env != "" {
		return env
	}
	if projectCfg != nil && projectCfg.RootLabel != "" {
		return projectCfg.RootLabel
	}
	return ""
}

// resolveRequireRootGoal resolves strict-mode root goal handling.
// Precedence: --require-root-goal > istar2uvl.yaml > off.
func resolveRequireRootGoal(cmd *cobra.Command, flagValue bool, projectCfg *config.ProjectConfig) bool {
	if cmd.Flags().Changed("require-root-goal") {
		return flagValue
	}
	if projectCfg != nil {
		return projectCfg.RequireRootGoal
	}
	return false
}

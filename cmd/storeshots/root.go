package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aellingwood/storeshots/internal/config"
	"github.com/aellingwood/storeshots/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "storeshots",
	Short: "Generate app store marketing screenshots",
	Long: "Storeshots renders a fixed set of marketing scenes for every configured\n" +
		"platform and writes them as images. Run without a command to generate.",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Root().PersistentFlags().GetBool("verbose")
		logger.Setup(cmd.ErrOrStderr(), verbose)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd, generateFlags{})
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "path to config file")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable verbose output")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig resolves the --config flag. A missing file at the default
// path yields the defaults; a missing explicit path is an error.
func loadConfig(cmd *cobra.Command) (*config.Config, string, error) {
	flags := cmd.Root().PersistentFlags()
	path, _ := flags.GetString("config")
	cfg, err := config.LoadOrDefault(path, flags.Changed("config"))
	if err != nil {
		return nil, path, fmt.Errorf("loading config: %w", err)
	}
	return cfg, path, nil
}

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/aellingwood/storeshots/internal/build"
	"github.com/aellingwood/storeshots/internal/config"
	"github.com/aellingwood/storeshots/internal/logger"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Render all screenshots",
	Long:    "Render every template for every configured platform into the output directory.",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd, readGenerateFlags(cmd.Flags()))
	},
}

// generateFlags are the command-line overrides for a generation run.
type generateFlags struct {
	output    string
	fonts     string
	copy      string
	platforms []string
	templates []string
	formats   []string
	quality   int
	jobs      int
	force     bool
	clean     bool
	noCache   bool
}

func readGenerateFlags(fs *pflag.FlagSet) generateFlags {
	var gf generateFlags
	gf.output, _ = fs.GetString("output")
	gf.fonts, _ = fs.GetString("fonts")
	gf.copy, _ = fs.GetString("copy")
	gf.platforms, _ = fs.GetStringSlice("platform")
	gf.templates, _ = fs.GetStringSlice("template")
	gf.formats, _ = fs.GetStringSlice("format")
	gf.quality, _ = fs.GetInt("quality")
	gf.jobs, _ = fs.GetInt("jobs")
	gf.force, _ = fs.GetBool("force")
	gf.clean, _ = fs.GetBool("clean")
	gf.noCache, _ = fs.GetBool("no-cache")
	return gf
}

// apply overlays the flags on cfg.
func (gf generateFlags) apply(cfg *config.Config) *config.Config {
	overrides := map[string]any{
		"output":  gf.output,
		"fonts":   gf.fonts,
		"copy":    gf.copy,
		"formats": gf.formats,
		"quality": gf.quality,
		"jobs":    gf.jobs,
	}
	if gf.noCache {
		overrides["cache"] = false
	}
	return cfg.WithOverrides(overrides)
}

func runGenerate(cmd *cobra.Command, gf generateFlags) error {
	cfg, configPath, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	gf.apply(cfg)

	projectRoot, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("determining project root: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	builder := build.NewBuilder(cfg, build.BuildOptions{
		ProjectRoot: projectRoot,
		ConfigPath:  configPath,
		Platforms:   gf.platforms,
		Templates:   gf.templates,
		Force:       gf.force,
		Clean:       gf.clean,
		Out:         cmd.OutOrStdout(),
	})
	result, err := builder.Build(ctx)
	if err != nil {
		return err
	}

	logger.L().Debug("generation complete",
		"rendered", result.Rendered,
		"cached", result.Skipped,
		"files", result.FilesWritten,
		"bytes", result.OutputSize,
		"duration", result.Duration.Round(time.Millisecond),
	)
	return nil
}

func init() {
	generateCmd.Flags().StringP("output", "o", "", "output directory (overrides config)")
	generateCmd.Flags().String("fonts", "", "font directory (overrides config)")
	generateCmd.Flags().String("copy", "", "copy deck file (overrides config)")
	generateCmd.Flags().StringSlice("platform", nil, "only render these platforms (repeatable)")
	generateCmd.Flags().StringSlice("template", nil, "only render these templates (repeatable)")
	generateCmd.Flags().StringSlice("format", nil, "output formats: png, webp, jpeg (repeatable)")
	generateCmd.Flags().Int("quality", 0, "quality for lossy formats, 1-100")
	generateCmd.Flags().IntP("jobs", "j", 0, "render this many screenshots in parallel")
	generateCmd.Flags().Bool("force", false, "ignore the render cache")
	generateCmd.Flags().Bool("clean", false, "empty the output directory first")
	generateCmd.Flags().Bool("no-cache", false, "disable the render cache")

	rootCmd.AddCommand(generateCmd)
}

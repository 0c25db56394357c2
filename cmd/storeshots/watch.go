package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/aellingwood/storeshots/internal/build"
	"github.com/aellingwood/storeshots/internal/config"
	"github.com/aellingwood/storeshots/internal/logger"
	"github.com/aellingwood/storeshots/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate screenshots when inputs change",
	Long: "Generate once, then regenerate whenever the config file, copy deck or fonts change.\n" +
		"Pointing the config at a different copy deck or fonts directory moves the watch to the new paths.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, configPath, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		explicit := cmd.Root().PersistentFlags().Changed("config")

		projectRoot, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("determining project root: %w", err)
		}
		force, _ := cmd.Flags().GetBool("force")
		debounce, _ := cmd.Flags().GetDuration("debounce")

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		generate := func(cfg *config.Config) error {
			builder := build.NewBuilder(cfg, build.BuildOptions{
				ProjectRoot: projectRoot,
				ConfigPath:  configPath,
				Force:       force,
				Out:         cmd.OutOrStdout(),
			})
			result, err := builder.Build(ctx)
			if err != nil {
				return err
			}
			logger.L().Info("generation complete",
				"rendered", result.Rendered,
				"cached", result.Skipped,
				"duration", result.Duration.Round(time.Millisecond),
			)
			return nil
		}

		// 1. Initial run.
		if err := generate(cfg); err != nil {
			return fmt.Errorf("initial generation failed: %w", err)
		}

		// 2. Watch the inputs until interrupted.
		fmt.Fprintln(cmd.OutOrStdout(), "\nWatching for changes. Press Ctrl+C to stop.")
		if err := watchLoop(ctx, configPath, explicit, debounce, cfg, generate); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "\nShutting down...")
		return nil
	},
}

// watchTargets lists the paths whose changes trigger regeneration.
func watchTargets(configPath string, cfg *config.Config) []string {
	targets := []string{configPath, cfg.Fonts.Dir}
	if cfg.Copy != "" {
		targets = append(targets, cfg.Copy)
	}
	return targets
}

// watchLoop regenerates on every change to the watched inputs until ctx is
// done. When a reloaded config points at a different copy deck or fonts
// directory, the watcher is restarted on the new paths.
func watchLoop(ctx context.Context, configPath string, explicit bool, debounce time.Duration, cfg *config.Config, generate func(*config.Config) error) error {
	for ctx.Err() == nil {
		targets := watchTargets(configPath, cfg)
		wctx, restart := context.WithCancel(ctx)

		w := watch.New(targets, debounce, func() {
			logger.L().Info("change detected, regenerating")
			next, err := config.LoadOrDefault(configPath, explicit)
			if err != nil {
				logger.L().Error("reloading config", "error", err)
				return
			}
			cfg = next
			if err := generate(next); err != nil {
				logger.L().Error("regeneration failed", "error", err)
			}
			if !slices.Equal(watchTargets(configPath, next), targets) {
				logger.L().Info("watched paths changed, restarting watcher")
				restart()
			}
		})

		err := w.Run(wctx)
		restart()
		if err != nil {
			return fmt.Errorf("watcher error: %w", err)
		}
	}
	return nil
}

func init() {
	watchCmd.Flags().Bool("force", false, "ignore the render cache")
	watchCmd.Flags().Duration("debounce", watch.DefaultDebounce, "quiet period before regenerating")

	rootCmd.AddCommand(watchCmd)
}

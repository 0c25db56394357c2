package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aellingwood/storeshots/internal/build"
	"github.com/aellingwood/storeshots/internal/scenes"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List platforms, templates and target files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "Platforms:")
		for _, p := range cfg.Platforms {
			fmt.Fprintf(tw, "  %s\t%s\n", p.Name, p.Size())
		}
		fmt.Fprintln(tw, "\nTemplates:")
		for _, t := range scenes.All() {
			fmt.Fprintf(tw, "  %s\n", t.Name)
		}
		fmt.Fprintln(tw, "\nTargets:")
		for _, p := range cfg.Platforms {
			for _, t := range scenes.All() {
				for _, f := range cfg.Formats {
					fmt.Fprintf(tw, "  %s\n", build.TargetPath(cfg.Output, p, t, f))
				}
			}
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

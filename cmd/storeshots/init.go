package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aellingwood/storeshots/internal/scaffold"
)

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Write a starter config and copy deck",
	Long:  "Write storeshots.yaml and copy.yaml with the default values into dir (default: current directory).",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		created, err := scaffold.Init(dir)
		if err != nil {
			return err
		}
		for _, p := range created {
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", p)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "\nAdd your fonts to the fonts directory, then run: storeshots")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

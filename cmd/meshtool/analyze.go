package main

import (
	"github.com/spf13/cobra"

	"github.com/Faultbox/meshtools/internal/cli"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Print bounding box statistics for a mesh JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.AnalyzeMesh(cfg, args[0], cmd.OutOrStdout())
	},
}

var bunnyCmd = &cobra.Command{
	Use:   "bunny",
	Short: "Print the bounds of the configured bunny mesh",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.AnalyzeBunny(cfg, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd, bunnyCmd)
}

package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Faultbox/meshtools/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the meshtools.yaml config file",
}

var configSaveCmd = &cobra.Command{
	Use:   "save [path]",
	Short: "Write the effective config as YAML",
	Long: `Write the effective config (defaults, then the loaded config file, then
flags) as YAML. Without a path the file goes to the user config directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := filepath.Join(config.ConfigDir(), config.FileName)
		var err error
		if len(args) > 0 {
			path = args[0]
			err = cfg.SaveTo(path)
		} else {
			err = cfg.Save()
		}
		if err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved config to %s\n", path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configSaveCmd)
	rootCmd.AddCommand(configCmd)
}

// meshtool bundles the mesh analysis and conversion commands in one binary.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Faultbox/meshtools/internal/config"
	"github.com/Faultbox/meshtools/internal/logger"
)

var (
	cfg *config.Config

	configPath string
	overrides  = config.Overrides{Precision: -1}
)

var rootCmd = &cobra.Command{
	Use:   "meshtool",
	Short: "Inspect and convert triangle meshes stored as JSON",
	Long: `meshtool reports bounding box statistics for mesh JSON files in the
compact (vertices + indices) or legacy (explicit triangles) schema, and
converts simple OBJ files to the compact schema.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadFile(configPath)
		if err != nil {
			return err
		}
		overrides.Apply(cfg)
		if err := cfg.Validate(); err != nil {
			return err
		}
		return logger.Init("meshtool "+cmd.Name(), cfg.Logging.Level, cfg.Logging.LogFile)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Path to config file")
	flags.BoolVar(&overrides.Debug, "debug", false, "Enable debug logging")
	flags.StringVar(&overrides.LogFile, "log-file", "", "Write logs to this file")
	flags.IntVar(&overrides.Precision, "precision", -1, "Decimals in printed numbers")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Sync()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/Faultbox/meshtools/internal/cli"
)

var (
	convertName   string
	convertIndent int
)

var convertCmd = &cobra.Command{
	Use:   "convert [input.obj] [output.json]",
	Short: "Convert an OBJ file to the compact JSON mesh schema",
	Long: `Convert an OBJ file with "v x y z" and "f i j k" lines to the compact
JSON mesh schema. Paths default to data.bunny_obj and data.bunny_json
from the config. Header count mismatches are reported as warnings.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		objPath, jsonPath := cfg.Data.BunnyOBJ, cfg.Data.BunnyJSON
		if len(args) > 0 {
			objPath = args[0]
		}
		if len(args) > 1 {
			jsonPath = args[1]
		}
		if cmd.Flags().Changed("name") {
			cfg.Output.OBJName = convertName
		}
		if cmd.Flags().Changed("indent") {
			cfg.Output.JSONIndent = convertIndent
		}
		return cli.ConvertOBJ(cfg, objPath, jsonPath, cmd.OutOrStdout())
	},
}

func init() {
	convertCmd.Flags().StringVar(&convertName, "name", "", "Mesh name written to the output")
	convertCmd.Flags().IntVar(&convertIndent, "indent", 2, "Spaces per JSON indentation level (0 = compact)")
	rootCmd.AddCommand(convertCmd)
}

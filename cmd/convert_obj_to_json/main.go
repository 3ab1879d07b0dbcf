// convert_obj_to_json converts the bunny OBJ file into the compact JSON
// mesh schema.
package main

import (
	"fmt"
	"os"

	"github.com/Faultbox/meshtools/internal/cli"
	"github.com/Faultbox/meshtools/internal/config"
	"github.com/Faultbox/meshtools/internal/logger"
)

func main() {
	if err := config.ParseFlags(); err != nil {
		os.Exit(cli.UsageError(err, cli.ConvertOBJUsage, os.Stdout, os.Stderr))
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init("convert_obj_to_json", cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := cli.ConvertOBJ(cfg, cfg.Data.BunnyOBJ, cfg.Data.BunnyJSON, os.Stdout); err != nil {
		logger.Sync()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

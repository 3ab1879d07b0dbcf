// analyze_bunny prints the bounding box of the bunny mesh.
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
		os.Exit(cli.UsageError(err, cli.AnalyzeBunnyUsage, os.Stdout, os.Stderr))
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init("analyze_bunny", cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := cli.AnalyzeBunny(cfg, os.Stdout); err != nil {
		logger.Sync()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

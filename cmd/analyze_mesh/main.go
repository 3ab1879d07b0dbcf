// analyze_mesh prints bounding box statistics for a mesh JSON file in
// either the compact or the legacy schema.
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
		os.Exit(cli.UsageError(err, cli.AnalyzeMeshUsage, os.Stdout, os.Stderr))
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init("analyze_mesh", cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	code := cli.AnalyzeMeshMain(cfg, config.Args(), os.Stdout, os.Stderr)
	logger.Sync()
	os.Exit(code)
}

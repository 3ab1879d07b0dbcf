package cli

import (
	"fmt"
	"io"

	"github.com/Faultbox/meshtools/internal/config"
)

// AnalyzeBunny prints the bounds of the configured bunny mesh.
func AnalyzeBunny(cfg *config.Config, w io.Writer) error {
	_, stats, err := loadStats(cfg.Data.BunnyJSON)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Bunny bounds:")
	writeBounds(w, stats, cfg.Output.Precision)
	return nil
}

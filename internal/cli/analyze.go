package cli

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/Faultbox/meshtools/internal/config"
	"github.com/Faultbox/meshtools/internal/logger"
	"github.com/Faultbox/meshtools/pkg/formats"
	"github.com/Faultbox/meshtools/pkg/meshstats"
)

// AnalyzeMeshMain runs analyze_mesh with the positional arguments left
// after flag parsing and returns the process exit code.
func AnalyzeMeshMain(cfg *config.Config, args []string, stdout, stderr io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(stdout, AnalyzeMeshUsage)
		return 1
	}

	if err := AnalyzeMesh(cfg, args[0], stdout); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// AnalyzeMesh loads a mesh file of either schema and prints its statistics.
func AnalyzeMesh(cfg *config.Config, path string, w io.Writer) error {
	mf, stats, err := loadStats(path)
	if err != nil {
		return err
	}

	prec := cfg.Output.Precision

	fmt.Fprintf(w, "=== Mesh Analysis: %s ===\n", mf.DisplayName())
	fmt.Fprintf(w, "File: %s\n", path)
	writeMeshSummary(w, mf)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Bounding Box:")
	writeBounds(w, stats, prec)
	writeDefaults(w, mf.Metadata(), prec)

	return nil
}

// loadStats parses the mesh at path and computes its bounds.
func loadStats(path string) (*formats.MeshFile, meshstats.Stats, error) {
	mf, err := formats.ParseMeshFile(path)
	if err != nil {
		return nil, meshstats.Stats{}, err
	}
	logger.Debug("mesh loaded", zap.String("path", path), zap.Stringer("format", mf.Format))

	if mf.Format == formats.FormatCompact {
		if n := mf.Compact.OutOfRangeIndices(); n > 0 {
			logger.Warn("indices reference missing vertices",
				zap.String("path", path),
				zap.Int("count", n),
				zap.Int("vertices", mf.Compact.NumVertices()))
		}
	}

	points, err := mf.Points()
	if err != nil {
		return nil, meshstats.Stats{}, fmt.Errorf("reading vertices of '%s': %w", path, err)
	}

	stats, err := meshstats.Compute(points)
	if err != nil {
		return nil, meshstats.Stats{}, fmt.Errorf("analyzing '%s': %w", path, err)
	}
	logger.Debug("bounds computed", zap.Int("entries", stats.Count), zap.Float64("max_dimension", stats.MaxDimension))

	return mf, stats, nil
}

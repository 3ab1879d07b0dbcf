// Package cli implements the mesh commands shared by all binaries.
package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/Faultbox/meshtools/pkg/formats"
	"github.com/Faultbox/meshtools/pkg/meshstats"
)

// writeBounds prints the per-axis extents, center and max dimension.
func writeBounds(w io.Writer, s meshstats.Stats, precision int) {
	low, high, size := s.Min.Array(), s.Max.Array(), s.Size.Array()
	for i, axis := range "XYZ" {
		fmt.Fprintf(w, "  %c: %.*f to %.*f (size: %.*f)\n", axis, precision, low[i], precision, high[i], precision, size[i])
	}
	fmt.Fprintf(w, "Center: %s\n", s.Center.Format(precision))
	fmt.Fprintf(w, "Max dimension: %.*f\n", precision, s.MaxDimension)
}

// writeMeshSummary prints the format line and the element counts.
func writeMeshSummary(w io.Writer, mf *formats.MeshFile) {
	fmt.Fprintf(w, "Format: %s\n", mf.Format)
	switch mf.Format {
	case formats.FormatCompact:
		fmt.Fprintf(w, "Vertices: %d\n", mf.Compact.NumVertices())
		fmt.Fprintf(w, "Triangles: %d\n", mf.Compact.NumTriangles())
	case formats.FormatLegacy:
		n := mf.Legacy.NumTriangles()
		fmt.Fprintf(w, "Triangles: %d\n", n)
		fmt.Fprintf(w, "Vertex entries: %d (may include duplicates)\n", n*3)
	}
}

// writeDefaults prints the declared scale and center, when present.
func writeDefaults(w io.Writer, meta *formats.Metadata, precision int) {
	if meta.Scale != nil {
		fmt.Fprintf(w, "Default scale: %s\n", strconv.FormatFloat(*meta.Scale, 'f', -1, 64))
	}
	if c, ok := meta.DefaultCenter(); ok {
		fmt.Fprintf(w, "Default center: %s\n", c.Format(precision))
	}
}

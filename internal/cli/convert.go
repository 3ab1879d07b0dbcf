package cli

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/Faultbox/meshtools/internal/config"
	"github.com/Faultbox/meshtools/internal/logger"
	"github.com/Faultbox/meshtools/pkg/formats"
)

// ConvertOBJ converts the OBJ file at objPath to a compact JSON mesh at
// jsonPath. Header count mismatches are reported but do not stop the write.
func ConvertOBJ(cfg *config.Config, objPath, jsonPath string, w io.Writer) error {
	res, err := formats.ImportOBJFile(objPath, cfg.Output.OBJName)
	if err != nil {
		return err
	}

	m, h := res.Mesh, res.Header
	if h.HasVertexCount || h.HasFaceCount {
		fmt.Fprintf(w, "Expected: %s vertices, %s faces\n",
			declared(h.VertexCount, h.HasVertexCount), declared(h.FaceCount, h.HasFaceCount))
	} else {
		fmt.Fprintln(w, "Expected: no counts declared in header")
	}
	fmt.Fprintf(w, "Actual: %d vertices, %d faces\n", m.NumVertices(), m.NumTriangles())
	fmt.Fprintf(w, "Vertices array length: %d\n", len(m.Vertices))
	fmt.Fprintf(w, "Indices array length: %d\n", len(m.Indices))

	for _, warning := range res.Warnings {
		fmt.Fprintf(w, "WARNING: %s\n", warning)
		logger.Info(warning, zap.String("path", objPath))
	}

	if err := formats.WriteCompactMeshFile(jsonPath, m, cfg.Output.JSONIndent); err != nil {
		return fmt.Errorf("writing '%s': %w", jsonPath, err)
	}
	logger.Info("mesh written",
		zap.String("path", jsonPath),
		zap.Int("vertices", m.NumVertices()),
		zap.Int("faces", m.NumTriangles()))

	fmt.Fprintf(w, "Converted %s to %s\n", objPath, jsonPath)
	return nil
}

func declared(n int, ok bool) string {
	if !ok {
		return "?"
	}
	return fmt.Sprint(n)
}

package formats

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// OBJ import errors.
var (
	ErrInvalidOBJ     = errors.New("invalid OBJ data")
	ErrUnsupportedOBJ = errors.New("unsupported OBJ feature")
)

// objHeaderLines is how many leading lines are scanned for count comments.
const objHeaderLines = 10

// DefaultOBJMeshName is the mesh name used when none is configured.
const DefaultOBJMeshName = "Stanford Bunny (OBJ Converted)"

// OBJHeader holds the counts declared in leading "# vertex count = N" and
// "# face count = N" comments.
type OBJHeader struct {
	VertexCount    int
	FaceCount      int
	HasVertexCount bool
	HasFaceCount   bool
}

// OBJImport is the result of converting OBJ text to the compact schema.
type OBJImport struct {
	Mesh   *CompactMesh
	Header OBJHeader

	// Warnings lists non-fatal count mismatches against the header.
	Warnings []string
}

// ImportOBJ converts OBJ text to a compact mesh named name.
// Only "v x y z" and "f i j k" lines are read; everything else is ignored.
func ImportOBJ(r io.Reader, name string) (*OBJImport, error) {
	if name == "" {
		name = DefaultOBJMeshName
	}

	res := &OBJImport{
		Mesh: &CompactMesh{
			Vertices: []float64{},
			Indices:  []int{},
		},
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		line := scanner.Text()
		lineNo++

		if lineNo <= objHeaderLines {
			parseOBJHeaderLine(line, &res.Header)
		}

		switch {
		case strings.HasPrefix(line, "v "):
			if err := res.parseVertex(line, lineNo); err != nil {
				return nil, err
			}
		case strings.HasPrefix(line, "f "):
			if err := res.parseFace(line, lineNo); err != nil {
				return nil, err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading OBJ data: %w", err)
	}

	res.finish(name)
	return res, nil
}

// ImportOBJFile converts an OBJ file from disk.
func ImportOBJFile(path, name string) (*OBJImport, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: '%s'", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("opening OBJ file: %w", err)
	}
	defer f.Close()

	res, err := ImportOBJ(f, name)
	if err != nil {
		return nil, fmt.Errorf("importing '%s': %w", path, err)
	}
	return res, nil
}

// parseOBJHeaderLine records a declared count; malformed values are skipped.
func parseOBJHeaderLine(line string, h *OBJHeader) {
	key, value, ok := strings.Cut(line, "=")
	if !ok {
		return
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return
	}

	switch strings.Join(strings.Fields(key), " ") {
	case "# vertex count":
		h.VertexCount, h.HasVertexCount = n, true
	case "# face count":
		h.FaceCount, h.HasFaceCount = n, true
	}
}

func (res *OBJImport) parseVertex(line string, lineNo int) error {
	fields := strings.Fields(line)[1:]
	if len(fields) < 3 || len(fields) > 4 {
		return fmt.Errorf("%w: line %d: vertex needs 3 coordinates, got %d", ErrInvalidOBJ, lineNo, len(fields))
	}

	// Optional w component is ignored.
	for _, s := range fields[:3] {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("%w: line %d: bad coordinate %q", ErrInvalidOBJ, lineNo, s)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: line %d: non-finite coordinate %q", ErrInvalidOBJ, lineNo, s)
		}
		res.Mesh.Vertices = append(res.Mesh.Vertices, v)
	}
	return nil
}

func (res *OBJImport) parseFace(line string, lineNo int) error {
	fields := strings.Fields(line)[1:]
	if len(fields) != 3 {
		return fmt.Errorf("%w: line %d: only triangles are supported, got %d vertices", ErrUnsupportedOBJ, lineNo, len(fields))
	}

	var face [3]int
	for i, s := range fields {
		if strings.Contains(s, "/") {
			return fmt.Errorf("%w: line %d: texture/normal references in %q", ErrUnsupportedOBJ, lineNo, s)
		}
		idx, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("%w: line %d: bad face index %q", ErrInvalidOBJ, lineNo, s)
		}
		if idx < 1 {
			return fmt.Errorf("%w: line %d: relative or zero index %d", ErrUnsupportedOBJ, lineNo, idx)
		}
		// OBJ indices are 1-based.
		face[i] = idx - 1
	}
	res.Mesh.Indices = append(res.Mesh.Indices, face[:]...)
	return nil
}

// finish fills in metadata and cross-checks counts against the header.
func (res *OBJImport) finish(name string) {
	m := res.Mesh
	h := res.Header

	vertexCount, faceCount := m.NumVertices(), m.NumTriangles()
	if h.HasVertexCount {
		vertexCount = h.VertexCount
		if m.NumVertices() != h.VertexCount {
			res.Warnings = append(res.Warnings, "Vertex count mismatch!")
		}
	}
	if h.HasFaceCount {
		faceCount = h.FaceCount
		if m.NumTriangles() != h.FaceCount {
			res.Warnings = append(res.Warnings, "Face count mismatch!")
		}
	}

	m.Name = name
	m.Description = fmt.Sprintf("%s converted from OBJ format - %d vertices, %d faces",
		strings.TrimSuffix(name, " (OBJ Converted)"), vertexCount, faceCount)
	m.VertexCount = vertexCount
	m.FaceCount = faceCount
}

package formats

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Faultbox/meshtools/pkg/math"
)

// MeshFormat identifies which JSON schema a mesh file uses.
type MeshFormat int

// Mesh format constants.
const (
	FormatUnrecognized MeshFormat = iota
	FormatCompact                 // vertices + indices
	FormatLegacy                  // triangles
)

// String returns a human-readable format description.
func (f MeshFormat) String() string {
	switch f {
	case FormatCompact:
		return "Compact (vertex/index buffers)"
	case FormatLegacy:
		return "Legacy (explicit triangles)"
	default:
		return "Unrecognized"
	}
}

// MeshFile is a decoded mesh in one of the two JSON schemas.
// Exactly one of Compact and Legacy is set, matching Format.
type MeshFile struct {
	Path    string
	Format  MeshFormat
	Compact *CompactMesh
	Legacy  *LegacyMesh
}

// Metadata returns the descriptive fields of whichever schema is set.
func (f *MeshFile) Metadata() *Metadata {
	switch f.Format {
	case FormatCompact:
		return &f.Compact.Metadata
	case FormatLegacy:
		return &f.Legacy.Metadata
	default:
		return &Metadata{}
	}
}

// Points returns the vertex entries used for bounds computation.
func (f *MeshFile) Points() ([]math.Vec3, error) {
	switch f.Format {
	case FormatCompact:
		return f.Compact.Points()
	case FormatLegacy:
		return f.Legacy.Points()
	default:
		return nil, ErrUnrecognizedFormat
	}
}

// DisplayName returns the mesh name, falling back to the file name
// without its extension.
func (f *MeshFile) DisplayName() string {
	if name := f.Metadata().Name; name != "" {
		return name
	}
	base := filepath.Base(f.Path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ParseMesh decodes a mesh from JSON, choosing the schema by its keys.
// A document with both "vertices" and "indices" is compact; otherwise one
// with "triangles" is legacy.
func ParseMesh(data []byte) (*MeshFile, error) {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			// Valid JSON, but not an object.
			return nil, ErrUnrecognizedFormat
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	_, hasVertices := keys["vertices"]
	_, hasIndices := keys["indices"]
	_, hasTriangles := keys["triangles"]

	switch {
	case hasVertices && hasIndices:
		m := &CompactMesh{}
		if err := json.Unmarshal(data, m); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedMesh, err)
		}
		if err := checkCompactNulls(data); err != nil {
			return nil, err
		}
		if err := m.Validate(); err != nil {
			return nil, err
		}
		return &MeshFile{Format: FormatCompact, Compact: m}, nil

	case hasTriangles:
		m := &LegacyMesh{}
		if err := json.Unmarshal(data, m); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedMesh, err)
		}
		if err := checkLegacyNulls(data); err != nil {
			return nil, err
		}
		if err := m.Validate(); err != nil {
			return nil, err
		}
		return &MeshFile{Format: FormatLegacy, Legacy: m}, nil

	default:
		return nil, ErrUnrecognizedFormat
	}
}

// JSON null decodes to zero in a []float64 or []int, so the numeric arrays
// are decoded a second time with pointer elements to find nulls.
type compactShape struct {
	Vertices []*float64 `json:"vertices"`
	Indices  []*int     `json:"indices"`
	Center   []*float64 `json:"center"`
}

type legacyShape struct {
	Triangles []struct {
		V0 []*float64 `json:"v0"`
		V1 []*float64 `json:"v1"`
		V2 []*float64 `json:"v2"`
	} `json:"triangles"`
	Center []*float64 `json:"center"`
}

func checkCompactNulls(data []byte) error {
	var shape compactShape
	if err := json.Unmarshal(data, &shape); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedMesh, err)
	}
	if err := firstNull("vertices", shape.Vertices); err != nil {
		return err
	}
	if err := firstNull("indices", shape.Indices); err != nil {
		return err
	}
	return firstNull("center", shape.Center)
}

func checkLegacyNulls(data []byte) error {
	var shape legacyShape
	if err := json.Unmarshal(data, &shape); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedMesh, err)
	}
	for i, tri := range shape.Triangles {
		for j, v := range [3][]*float64{tri.V0, tri.V1, tri.V2} {
			if err := firstNull(fmt.Sprintf("triangles[%d].v%d", i, j), v); err != nil {
				return err
			}
		}
	}
	return firstNull("center", shape.Center)
}

// firstNull returns a MalformedMeshError for the first nil entry of s.
func firstNull[T any](field string, s []*T) error {
	for i, v := range s {
		if v == nil {
			return nullEntry(field, i, len(s))
		}
	}
	return nil
}

// ParseMeshFile reads and decodes a mesh JSON file from disk.
func ParseMeshFile(path string) (*MeshFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: '%s'", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("reading mesh file: %w", err)
	}

	mf, err := ParseMesh(data)
	if err != nil {
		return nil, fmt.Errorf("parsing mesh file '%s': %w", path, err)
	}
	mf.Path = path
	return mf, nil
}

// MarshalCompactMesh encodes m as JSON with indent spaces per level.
// A non-positive indent produces compact output.
func MarshalCompactMesh(m *CompactMesh, indent int) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	var (
		data []byte
		err  error
	)
	if indent > 0 {
		data, err = json.MarshalIndent(m, "", strings.Repeat(" ", indent))
	} else {
		data, err = json.Marshal(m)
	}
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// WriteCompactMeshFile writes m to path, creating parent directories.
func WriteCompactMeshFile(path string, m *CompactMesh, indent int) error {
	data, err := MarshalCompactMesh(m, indent)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	return os.WriteFile(path, data, 0644)
}

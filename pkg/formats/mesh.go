package formats

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/Faultbox/meshtools/pkg/math"
)

// Metadata holds the optional descriptive fields shared by both schemas.
// None of it takes part in bounds computation.
type Metadata struct {
	Name        string    `json:"name,omitempty"`
	Description string    `json:"description,omitempty"`
	VertexCount int       `json:"vertex_count,omitempty"`
	FaceCount   int       `json:"face_count,omitempty"`
	Scale       *float64  `json:"scale,omitempty"`
	Center      []float64 `json:"center,omitempty"` // Default center, 3 values
}

// DefaultCenter returns the declared center, if any.
func (m *Metadata) DefaultCenter() (math.Vec3, bool) {
	return math.Vec3FromSlice(m.Center)
}

func (m *Metadata) validate() error {
	if m.Center != nil && len(m.Center) != 3 {
		return notTriple("center", len(m.Center))
	}
	return nil
}

// CompactMesh is the vertex/index buffer schema.
type CompactMesh struct {
	Metadata
	Vertices []float64 `json:"vertices"` // x, y, z per vertex
	Indices  []int     `json:"indices"`  // 3 vertex offsets per triangle
}

// Validate checks that both buffers hold whole triples.
func (m *CompactMesh) Validate() error {
	if len(m.Vertices)%3 != 0 {
		return notDivisibleBy3("vertices", len(m.Vertices))
	}
	if len(m.Indices)%3 != 0 {
		return notDivisibleBy3("indices", len(m.Indices))
	}
	return m.Metadata.validate()
}

// NumVertices returns the number of vertices in the vertex buffer.
func (m *CompactMesh) NumVertices() int {
	return len(m.Vertices) / 3
}

// NumTriangles returns the number of triangles in the index buffer.
func (m *CompactMesh) NumTriangles() int {
	return len(m.Indices) / 3
}

// Points validates the mesh and groups the vertex buffer into consecutive
// triples. Indices are not consulted; they only describe connectivity.
func (m *CompactMesh) Points() ([]math.Vec3, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return lo.Map(lo.Chunk(m.Vertices, 3), func(c []float64, _ int) math.Vec3 {
		return math.Vec3{X: c[0], Y: c[1], Z: c[2]}
	}), nil
}

// OutOfRangeIndices counts index values outside [0, NumVertices()).
// Such meshes are still accepted.
func (m *CompactMesh) OutOfRangeIndices() int {
	n := m.NumVertices()
	return lo.CountBy(m.Indices, func(i int) bool {
		return i < 0 || i >= n
	})
}

// Triangle is a legacy schema triangle with explicit vertices.
type Triangle struct {
	V0 []float64 `json:"v0"`
	V1 []float64 `json:"v1"`
	V2 []float64 `json:"v2"`
}

// LegacyMesh is the explicit-triangle schema.
type LegacyMesh struct {
	Metadata
	Triangles []Triangle `json:"triangles"`
}

// Validate checks that every triangle corner has exactly three coordinates.
func (m *LegacyMesh) Validate() error {
	for i, tri := range m.Triangles {
		for j, v := range [3][]float64{tri.V0, tri.V1, tri.V2} {
			if len(v) != 3 {
				return notTriple(fmt.Sprintf("triangles[%d].v%d", i, j), len(v))
			}
		}
	}
	return m.Metadata.validate()
}

// NumTriangles returns the number of triangles.
func (m *LegacyMesh) NumTriangles() int {
	return len(m.Triangles)
}

// Points validates the mesh and flattens the triangles into v0, v1, v2 per
// triangle in input order. Shared corners appear once per triangle; nothing
// is deduplicated.
func (m *LegacyMesh) Points() ([]math.Vec3, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	points := make([]math.Vec3, 0, len(m.Triangles)*3)
	for _, tri := range m.Triangles {
		for _, v := range [3][]float64{tri.V0, tri.V1, tri.V2} {
			points = append(points, math.Vec3{X: v[0], Y: v[1], Z: v[2]})
		}
	}
	return points, nil
}

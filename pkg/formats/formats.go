// Package formats provides readers and writers for mesh file formats.
//
// Two JSON schemas are supported: the compact schema (flat vertex and
// index buffers) and the legacy schema (explicit per-triangle vertices).
// A restricted OBJ dialect can be imported into the compact schema.
package formats

import (
	"errors"
	"fmt"
)

// Mesh format errors.
var (
	ErrFileNotFound       = errors.New("file not found")
	ErrInvalidJSON        = errors.New("invalid JSON")
	ErrMalformedMesh      = errors.New("malformed mesh")
	ErrUnrecognizedFormat = errors.New("no vertex data found: expected 'vertices'+'indices' or 'triangles' format")
)

// MalformedMeshError reports an array whose length breaks a schema invariant.
// It matches ErrMalformedMesh with errors.Is.
type MalformedMeshError struct {
	Field  string // e.g. "vertices", "indices", "triangles[2].v1", "vertices[7]"
	Length int    // Length of the offending array
	Reason string
}

func (e *MalformedMeshError) Error() string {
	return fmt.Sprintf("%v: %s %s", ErrMalformedMesh, e.Field, e.Reason)
}

// Is reports whether target is ErrMalformedMesh.
func (e *MalformedMeshError) Is(target error) bool {
	return target == ErrMalformedMesh
}

func notDivisibleBy3(field string, length int) *MalformedMeshError {
	return &MalformedMeshError{Field: field, Length: length,
		Reason: fmt.Sprintf("array length (%d) is not divisible by 3", length)}
}

func notTriple(field string, length int) *MalformedMeshError {
	return &MalformedMeshError{Field: field, Length: length,
		Reason: fmt.Sprintf("array length (%d) is not 3", length)}
}

func nullEntry(field string, index, length int) *MalformedMeshError {
	return &MalformedMeshError{Field: fmt.Sprintf("%s[%d]", field, index), Length: length,
		Reason: "is null"}
}

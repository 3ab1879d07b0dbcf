// Package math provides vector and bounding box types for mesh geometry.
package math

import (
	"fmt"
	"math"
)

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float64
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Min returns the component-wise minimum.
func (v Vec3) Min(other Vec3) Vec3 {
	return Vec3{math.Min(v.X, other.X), math.Min(v.Y, other.Y), math.Min(v.Z, other.Z)}
}

// Max returns the component-wise maximum.
func (v Vec3) Max(other Vec3) Vec3 {
	return Vec3{math.Max(v.X, other.X), math.Max(v.Y, other.Y), math.Max(v.Z, other.Z)}
}

// Array returns the components as [x, y, z].
func (v Vec3) Array() [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// Format renders the vector as "(x, y, z)" with the given number of decimals.
func (v Vec3) Format(precision int) string {
	return fmt.Sprintf("(%.*f, %.*f, %.*f)", precision, v.X, precision, v.Y, precision, v.Z)
}

// Vec3FromSlice builds a vector from the first three values of s.
// Returns false if s holds fewer than three values.
func Vec3FromSlice(s []float64) (Vec3, bool) {
	if len(s) < 3 {
		return Vec3{}, false
	}
	return Vec3{s[0], s[1], s[2]}, true
}

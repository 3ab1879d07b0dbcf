// Package meshstats computes bounding box statistics over mesh vertices.
package meshstats

import (
	"errors"

	"github.com/samber/lo"

	"github.com/Faultbox/meshtools/pkg/math"
)

// ErrEmptyMesh is returned when there are no vertices to compute bounds from.
var ErrEmptyMesh = errors.New("no vertices found in mesh")

// Stats holds the bounding box of a vertex set.
type Stats struct {
	Min    math.Vec3
	Max    math.Vec3
	Size   math.Vec3 // Max - Min per axis
	Center math.Vec3 // (Min + Max) / 2 per axis

	// MaxDimension is the largest component of Size.
	MaxDimension float64

	// Count is the number of vertex entries reduced, duplicates included.
	Count int
}

// Compute returns the bounding box statistics of points.
// The result does not depend on the order of points.
func Compute(points []math.Vec3) (Stats, error) {
	if len(points) == 0 {
		return Stats{}, ErrEmptyMesh
	}

	box := math.NewAABB(points[0])
	for _, p := range points[1:] {
		box.Extend(p)
	}

	size := box.Size()
	return Stats{
		Min:          box.Min,
		Max:          box.Max,
		Size:         size,
		Center:       box.Center(),
		MaxDimension: lo.Max([]float64{size.X, size.Y, size.Z}),
		Count:        len(points),
	}, nil
}

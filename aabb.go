package trimesh

import (
	"github.com/golang/geo/r3"
)

// Axis aligned bounding box.
type AABB struct {
	Center   r3.Vector
	HalfSize r3.Vector
}

// Construct an AABB from its center and halfsize.
func NewAABB(center, halfSize r3.Vector) AABB {
	return AABB{center, halfSize}
}

// Construct an AABB from its min/max bounds.
func NewAABBFromBounds(minBound, maxBound r3.Vector) AABB {
	center := maxBound.Add(minBound).Mul(0.5)
	halfSize := maxBound.Sub(minBound).Mul(0.5)
	return NewAABB(center, halfSize)
}

// Construct an AABB from a slice of points.
func NewAABBFromPoints(points []r3.Vector) AABB {
	minBound := points[0]
	maxBound := points[0]

	for _, point := range points[1:] {
		minBound.X = min(minBound.X, point.X)
		minBound.Y = min(minBound.Y, point.Y)
		minBound.Z = min(minBound.Z, point.Z)
		maxBound.X = max(maxBound.X, point.X)
		maxBound.Y = max(maxBound.Y, point.Y)
		maxBound.Z = max(maxBound.Z, point.Z)
	}

	return NewAABBFromBounds(minBound, maxBound)
}

// Construct an AABB with a buffer (percentage of the edge length).
func (a AABB) Buffer(s float64) AABB {
	return NewAABB(a.Center, a.HalfSize.Mul(1+s))
}

// Get the minimum bound.
func (a AABB) GetMinBound() r3.Vector {
	return a.Center.Sub(a.HalfSize)
}

// Get the maximum bound.
func (a AABB) GetMaxBound() r3.Vector {
	return a.Center.Add(a.HalfSize)
}

// Compute the octant AABB.
func (a AABB) Octant(octant int) AABB {
	if octant < 0 || octant >= 8 {
		panic("octant out of range")
	}

	halfSize := a.HalfSize.Mul(0.5)
	center := a.Center

	if octant&4 == 4 {
		center.X += halfSize.X
	} else {
		center.X -= halfSize.X
	}

	if octant&2 == 2 {
		center.Y += halfSize.Y
	} else {
		center.Y -= halfSize.Y
	}

	if octant&1 == 1 {
		center.Z += halfSize.Z
	} else {
		center.Z -= halfSize.Z
	}

	return AABB{center, halfSize}
}

// Implement the IntersectsAABB interface.
func (a AABB) IntersectsAABB(query AABB) bool {
	aMin := a.GetMinBound()
	aMax := a.GetMaxBound()
	qMin := query.GetMinBound()
	qMax := query.GetMaxBound()

	return aMin.X <= qMax.X &&
		aMax.X >= qMin.X &&
		aMin.Y <= qMax.Y &&
		aMax.Y >= qMin.Y &&
		aMin.Z <= qMax.Z &&
		aMax.Z >= qMin.Z
}

package trimesh

import (
	"math"

	"github.com/golang/geo/r3"
)

// Line segment in three-dimensional Cartesian space.
type Segment struct {
	P0 r3.Vector
	P1 r3.Vector
}

// Construct a Segment from its endpoints.
func NewSegment(p0, p1 r3.Vector) Segment {
	return Segment{p0, p1}
}

// Result of classifying a segment against a plane.
type PlaneIntersection int

const (
	PlaneMiss PlaneIntersection = iota
	PlaneP0
	PlaneP1
	PlaneSegment
	PlaneCross
)

// Classify the segment against the plane through point with the given
// normal. PlaneCross returns the crossing point; the in-plane cases
// (PlaneP0, PlaneP1, PlaneSegment) use PlanarTolerance on the signed
// distances of the endpoints.
func (s Segment) IntersectPlane(point, normal r3.Vector) (PlaneIntersection, r3.Vector) {
	d0 := normal.Dot(s.P0.Sub(point))
	d1 := normal.Dot(s.P1.Sub(point))

	switch {
	case math.Abs(d0) < PlanarTolerance && math.Abs(d1) < PlanarTolerance:
		return PlaneSegment, r3.Vector{}
	case math.Abs(d0) < PlanarTolerance:
		return PlaneP0, r3.Vector{}
	case math.Abs(d1) < PlanarTolerance:
		return PlaneP1, r3.Vector{}
	case math.Signbit(d0) != math.Signbit(d1):
		dir := s.P1.Sub(s.P0)
		t := -d0 / normal.Dot(dir)
		return PlaneCross, s.P0.Add(dir.Mul(t))
	}

	return PlaneMiss, r3.Vector{}
}

// Return the point where the segment strictly pierces the triangle. An
// endpoint or segment lying in the triangle's plane does not count as a
// pierce, which keeps piercing counts monotone when contacts are grazing.
func (s Segment) IntersectsTriangle(t Triangle) (r3.Vector, bool) {
	kind, point := s.IntersectPlane(t.P, t.UnitNormal())
	if kind != PlaneCross {
		return r3.Vector{}, false
	}

	u, v, w := t.Barycentric(point)
	e := BarycentricTolerance
	if u < -e || u > 1+e || v < -e || v > 1+e || w < -e || w > 1+e {
		return r3.Vector{}, false
	}

	return point, true
}

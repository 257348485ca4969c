package trimesh

import (
	"math"

	"github.com/golang/geo/r3"
)

// Triangle in three-dimensional Cartesian space.
type Triangle struct {
	P r3.Vector
	Q r3.Vector
	R r3.Vector
}

// Construct a Triangle from its vertices.
func NewTriangle(p, q, r r3.Vector) Triangle {
	return Triangle{p, q, r}
}

// Compute the area.
func (t Triangle) Area() float64 {
	u := t.Q.Sub(t.P)
	v := t.R.Sub(t.P)
	return u.Cross(v).Norm() * 0.5
}

// Compute the normal.
func (t Triangle) Normal() r3.Vector {
	u := t.Q.Sub(t.P)
	v := t.R.Sub(t.P)
	return u.Cross(v)
}

// Compute the unit normal.
func (t Triangle) UnitNormal() r3.Vector {
	return t.Normal().Normalize()
}

// Compute the center (arithmetic mean of the vertices).
func (t Triangle) Center() r3.Vector {
	return t.P.Add(t.Q).Add(t.R).Mul(1.0 / 3.0)
}

// Compute the axis aligned bounding box.
func (t Triangle) AABB() AABB {
	return NewAABBFromPoints([]r3.Vector{t.P, t.Q, t.R})
}

// Compute the barycentric coordinates (u, v, w) of a point with respect
// to the triangle (P, Q, R) such that p = u*P + v*Q + w*R.
func (t Triangle) Barycentric(p r3.Vector) (float64, float64, float64) {
	v0 := t.Q.Sub(t.P)
	v1 := t.R.Sub(t.P)
	v2 := p.Sub(t.P)

	d00 := v0.Dot(v0)
	d01 := v0.Dot(v1)
	d11 := v1.Dot(v1)
	d20 := v2.Dot(v0)
	d21 := v2.Dot(v1)

	denom := d00*d11 - d01*d01
	v := (d11*d20 - d01*d21) / denom
	w := (d00*d21 - d01*d20) / denom
	u := 1.0 - v - w

	return u, v, w
}

// Implement the IntersectsAABB interface using the separating axis theorem.
func (t Triangle) IntersectsAABB(query AABB) bool {
	h := query.HalfSize

	// Translate the triangle so the box is centered at the origin.
	v0 := t.P.Sub(query.Center)
	v1 := t.Q.Sub(query.Center)
	v2 := t.R.Sub(query.Center)

	e0 := v1.Sub(v0)
	e1 := v2.Sub(v1)
	e2 := v0.Sub(v2)

	axes := [9]r3.Vector{
		{X: 0, Y: -e0.Z, Z: e0.Y},
		{X: 0, Y: -e1.Z, Z: e1.Y},
		{X: 0, Y: -e2.Z, Z: e2.Y},
		{X: e0.Z, Y: 0, Z: -e0.X},
		{X: e1.Z, Y: 0, Z: -e1.X},
		{X: e2.Z, Y: 0, Z: -e2.X},
		{X: -e0.Y, Y: e0.X, Z: 0},
		{X: -e1.Y, Y: e1.X, Z: 0},
		{X: -e2.Y, Y: e2.X, Z: 0},
	}

	for _, axis := range axes {
		p0 := v0.Dot(axis)
		p1 := v1.Dot(axis)
		p2 := v2.Dot(axis)
		r := h.X*math.Abs(axis.X) + h.Y*math.Abs(axis.Y) + h.Z*math.Abs(axis.Z)

		if min(p0, p1, p2) > r || max(p0, p1, p2) < -r {
			return false
		}
	}

	// Test the three box face normals.
	if min(v0.X, v1.X, v2.X) > h.X || max(v0.X, v1.X, v2.X) < -h.X {
		return false
	}
	if min(v0.Y, v1.Y, v2.Y) > h.Y || max(v0.Y, v1.Y, v2.Y) < -h.Y {
		return false
	}
	if min(v0.Z, v1.Z, v2.Z) > h.Z || max(v0.Z, v1.Z, v2.Z) < -h.Z {
		return false
	}

	// Test the triangle face normal.
	normal := e0.Cross(e1)
	d := normal.Dot(v0)
	r := h.X*math.Abs(normal.X) + h.Y*math.Abs(normal.Y) + h.Z*math.Abs(normal.Z)

	return math.Abs(d) <= r
}

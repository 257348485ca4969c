package trimesh

import (
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
)

var xzPlane = Triangle{
	P: r3.Vector{X: -2, Y: 0, Z: -2},
	Q: r3.Vector{X: 2, Y: 0, Z: -2},
	R: r3.Vector{X: 0, Y: 0, Z: 2},
}

// Test classifying a segment crossing a plane.
func TestSegmentIntersectPlaneCross(t *testing.T) {
	segment := NewSegment(r3.Vector{X: 0, Y: -1, Z: 0}, r3.Vector{X: 0, Y: 1, Z: 0})

	kind, point := segment.IntersectPlane(xzPlane.P, xzPlane.Normal())
	assert.Equal(t, PlaneCross, kind)
	assert.InDelta(t, 0, point.X, 1e-12)
	assert.InDelta(t, 0, point.Y, 1e-12)
	assert.InDelta(t, 0, point.Z, 1e-12)
}

// Test classifying a segment with one endpoint in the plane.
func TestSegmentIntersectPlaneEndpoints(t *testing.T) {
	segment := NewSegment(r3.Vector{X: 1, Y: 0, Z: 1}, r3.Vector{X: 0, Y: 1, Z: 0})
	kind, _ := segment.IntersectPlane(xzPlane.P, xzPlane.Normal())
	assert.Equal(t, PlaneP0, kind)

	segment = NewSegment(r3.Vector{X: 0, Y: 1, Z: 0}, r3.Vector{X: 1, Y: 0, Z: 1})
	kind, _ = segment.IntersectPlane(xzPlane.P, xzPlane.Normal())
	assert.Equal(t, PlaneP1, kind)
}

// Test classifying a segment lying in the plane.
func TestSegmentIntersectPlaneInPlane(t *testing.T) {
	segment := NewSegment(r3.Vector{X: 1, Y: 0, Z: 1}, r3.Vector{X: -1, Y: 0, Z: 0})
	kind, _ := segment.IntersectPlane(xzPlane.P, xzPlane.Normal())
	assert.Equal(t, PlaneSegment, kind)
}

// Test classifying a segment on one side of the plane.
func TestSegmentIntersectPlaneMiss(t *testing.T) {
	segment := NewSegment(r3.Vector{X: 0, Y: 1, Z: 0}, r3.Vector{X: 0, Y: 2, Z: 0})
	kind, _ := segment.IntersectPlane(xzPlane.P, xzPlane.Normal())
	assert.Equal(t, PlaneMiss, kind)
}

// Test a segment piercing a triangle.
func TestSegmentIntersectsTriangleHit(t *testing.T) {
	segment := NewSegment(r3.Vector{X: 0, Y: -1, Z: 0}, r3.Vector{X: 0, Y: 1, Z: 0})

	point, ok := segment.IntersectsTriangle(xzPlane)
	assert.True(t, ok)
	assert.InDelta(t, 0, point.Y, 1e-12)
}

// Test a segment crossing the plane outside the triangle.
func TestSegmentIntersectsTriangleBesideMiss(t *testing.T) {
	segment := NewSegment(r3.Vector{X: 5, Y: -1, Z: 0}, r3.Vector{X: 5, Y: 1, Z: 0})

	_, ok := segment.IntersectsTriangle(xzPlane)
	assert.False(t, ok)
}

// Test a grazing in-plane segment does not count as a pierce.
func TestSegmentIntersectsTriangleGrazeMiss(t *testing.T) {
	segment := NewSegment(r3.Vector{X: -1, Y: 0, Z: 0}, r3.Vector{X: 1, Y: 0, Z: 0})

	_, ok := segment.IntersectsTriangle(xzPlane)
	assert.False(t, ok)
}

// Test a segment stopping short of the plane.
func TestSegmentIntersectsTriangleShortMiss(t *testing.T) {
	segment := NewSegment(r3.Vector{X: 0, Y: 2, Z: 0}, r3.Vector{X: 0, Y: 1, Z: 0})

	_, ok := segment.IntersectsTriangle(xzPlane)
	assert.False(t, ok)
}

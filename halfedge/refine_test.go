package halfedge

import (
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
)

// Test refining a mesh against a coincident copy is a no-op: every
// contact already classifies onto vertices.
func TestRefineAgainstCoincidentCopy(t *testing.T) {
	mesh1, err := NewBuilder().Cube().Build()
	assert.NoError(t, err)
	mesh2 := mesh1.Clone()

	assert.NoError(t, mesh1.RefineAgainst(mesh2))

	assert.Equal(t, 8, mesh1.GetNumberOfVertices())
	assert.Equal(t, 12, mesh1.GetNumberOfFaces())
	assert.Equal(t, 8, mesh2.GetNumberOfVertices())
	assert.Equal(t, 12, mesh2.GetNumberOfFaces())
	assert.NoError(t, mesh1.Validate())
	assert.NoError(t, mesh2.Validate())
}

// Test refining two transversally crossing triangles subdivides both
// until the intersection is shared.
func TestRefineCrossingTriangles(t *testing.T) {
	positions1 := []float32{-2, 0, -2, -2, 0, 2, 2, 0, 0}
	mesh1, err := NewMesh([]uint32{0, 1, 2}, positions1, nil)
	assert.NoError(t, err)

	positions2 := []float32{0, -1, -1, 0, -1, 1, 0, 1, 0}
	mesh2, err := NewMesh([]uint32{0, 1, 2}, positions2, nil)
	assert.NoError(t, err)

	assert.NoError(t, mesh1.RefineAgainst(mesh2))

	assert.Greater(t, mesh1.GetNumberOfFaces(), 1)
	assert.Greater(t, mesh2.GetNumberOfFaces(), 1)
	assert.NoError(t, mesh1.Validate())
	assert.NoError(t, mesh2.Validate())

	// Every intersection is now realized as coincident vertices, so some
	// half edge of each mesh lies on the shared curve.
	marked1 := 0
	for _, halfEdgeID := range mesh1.HalfEdgeIDs() {
		if IsAtIntersection(mesh1, mesh2, halfEdgeID) {
			marked1++
		}
	}
	assert.Greater(t, marked1, 0)

	marked2 := 0
	for _, halfEdgeID := range mesh2.HalfEdgeIDs() {
		if IsAtIntersection(mesh2, mesh1, halfEdgeID) {
			marked2++
		}
	}
	assert.Greater(t, marked2, 0)
}

// Test refining two cubes offset along the diagonal.
func TestRefineBoxBox(t *testing.T) {
	mesh1, err := NewBuilder().Cube().Build()
	assert.NoError(t, err)

	mesh2, err := NewBuilder().Cube().Build()
	assert.NoError(t, err)
	mesh2.Translate(r3.Vector{X: 0.5, Y: 0.5, Z: 0.5})

	assert.NoError(t, mesh1.RefineAgainst(mesh2))

	assert.Greater(t, mesh1.GetNumberOfFaces(), 12)
	assert.Greater(t, mesh2.GetNumberOfFaces(), 12)
	assert.NoError(t, mesh1.Validate())
	assert.NoError(t, mesh2.Validate())
}

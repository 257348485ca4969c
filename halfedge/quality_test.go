package halfedge

import (
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
)

// Test smoothing moves a vertex to its one-ring average at factor one.
func TestSmoothVertices(t *testing.T) {
	mesh := createThreeConnectedFaces(t)
	vertexID := VertexID(0)

	average := r3.Vector{}
	ring := mesh.VertexHalfEdgeIDs(vertexID)
	for _, halfEdgeID := range ring {
		average = average.Add(mesh.GetPosition(mesh.WalkerFromHalfEdge(halfEdgeID).VertexID()))
	}
	average = average.Mul(1 / float64(len(ring)))

	mesh.SmoothVertices(1.0)

	position := mesh.GetPosition(vertexID)
	assert.InDelta(t, average.X, position.X, 1e-9)
	assert.InDelta(t, average.Y, position.Y, 1e-9)
	assert.InDelta(t, average.Z, position.Z, 1e-9)
	assert.NoError(t, mesh.Validate())
}

// Test flipping replaces a sliver diagonal with the better one.
func TestFlipEdges(t *testing.T) {
	indices := []uint32{0, 1, 2, 0, 2, 3}
	positions := []float32{0, 0, 0, 1, 0, -0.05, 2, 0, 0, 1, 0, 1}
	mesh, err := NewMesh(indices, positions, nil)
	assert.NoError(t, err)

	assert.True(t, mesh.ConnectingEdge(VertexID(0), VertexID(2)).IsValid())

	mesh.FlipEdges(0.5)

	assert.False(t, mesh.ConnectingEdge(VertexID(0), VertexID(2)).IsValid())
	assert.True(t, mesh.ConnectingEdge(VertexID(1), VertexID(3)).IsValid())
	assert.NoError(t, mesh.Validate())
}

// Test flipping leaves an already well-shaped mesh alone.
func TestFlipEdgesStable(t *testing.T) {
	mesh, err := NewBuilder().Icosahedron().Build()
	assert.NoError(t, err)

	edgesBefore := mesh.Edges()
	mesh.FlipEdges(0.5)

	assert.Equal(t, edgesBefore, mesh.Edges())
	assert.NoError(t, mesh.Validate())
}

package halfedge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func createUnconnectedObject(t *testing.T) *Mesh {
	t.Helper()

	positions := []float32{
		1, -1, -1,
		1, -1, 1,
		-1, -1, 1,
		-1, -1, -1,
		1, 1, -1,
		1, 1, 1,
		-1, 1, 1,
		-1, 1, -1,

		-1, 2, -1,
		-1, 3, -1,
		-2, 4, -1,
		-2, 1, -1,

		-1, 3, -2,
		-2, 4, -3,
		-2, 1, -4,
	}
	indices := []uint32{
		0, 1, 2,
		0, 2, 3,
		4, 7, 6,
		4, 6, 5,
		0, 4, 5,
		0, 5, 1,
		1, 5, 6,
		1, 6, 2,
		2, 6, 7,
		2, 7, 3,
		4, 0, 3,
		4, 3, 7,

		8, 9, 10,
		8, 10, 11,

		12, 13, 14,
	}

	mesh, err := NewMesh(indices, positions, nil)
	assert.NoError(t, err)
	return mesh
}

// Test a closed object is one connected component.
func TestOneConnectedComponent(t *testing.T) {
	mesh, err := NewBuilder().Cube().Build()
	assert.NoError(t, err)

	component := mesh.ConnectedComponent(mesh.FaceIDs()[0])
	assert.Len(t, component, mesh.GetNumberOfFaces())
}

// Test separate objects come back as separate components.
func TestConnectedComponents(t *testing.T) {
	mesh := createUnconnectedObject(t)

	components := mesh.ConnectedComponents()
	assert.Len(t, components, 3)

	sizes := make([]int, 0, 3)
	total := 0
	for _, component := range components {
		sizes = append(sizes, len(component))
		total += len(component)
	}

	assert.Equal(t, 15, total)
	assert.Contains(t, sizes, 12)
	assert.Contains(t, sizes, 2)
	assert.Contains(t, sizes, 1)
}

// Test a component limited by a blocking predicate.
func TestConnectedComponentWithLimit(t *testing.T) {
	mesh := createTwoConnectedFaces(t)

	component := mesh.ConnectedComponentWithLimit(mesh.FaceIDs()[0], func(HalfEdgeID) bool {
		return true
	})
	assert.Len(t, component, 1)
}

// Test cloning all faces keeps the structure intact.
func TestCloneSubsetAllFaces(t *testing.T) {
	mesh := createThreeConnectedFaces(t)

	faces := make(map[FaceID]bool)
	for _, faceID := range mesh.FaceIDs() {
		faces[faceID] = true
	}

	subset := mesh.CloneSubset(faces)
	assert.Equal(t, mesh.GetNumberOfVertices(), subset.GetNumberOfVertices())
	assert.Equal(t, mesh.GetNumberOfHalfEdges(), subset.GetNumberOfHalfEdges())
	assert.Equal(t, mesh.GetNumberOfFaces(), subset.GetNumberOfFaces())
	assert.NoError(t, subset.Validate())
}

// Test cloning a strict subset turns the cut edges into boundaries.
func TestCloneSubsetPartial(t *testing.T) {
	mesh := createThreeConnectedFaces(t)
	faceID := mesh.FaceIDs()[0]

	subset := mesh.CloneSubset(map[FaceID]bool{faceID: true})
	assert.Equal(t, 3, subset.GetNumberOfVertices())
	assert.Equal(t, 6, subset.GetNumberOfHalfEdges())
	assert.Equal(t, 1, subset.GetNumberOfFaces())
	assert.NoError(t, subset.Validate())

	for _, halfEdgeID := range subset.HalfEdgeIDs() {
		if !subset.WalkerFromHalfEdge(halfEdgeID).FaceID().IsValid() {
			assert.False(t, subset.WalkerFromHalfEdge(halfEdgeID).NextID().IsValid())
		}
	}
}

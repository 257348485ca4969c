package halfedge

import (
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
)

func createSingleFace(t *testing.T) *Mesh {
	t.Helper()
	positions := []float32{0, 0, 0, 0, 0, 1, 1, 0, 0}
	mesh, err := NewMesh(nil, positions, nil)
	assert.NoError(t, err)
	return mesh
}

func createTwoConnectedFaces(t *testing.T) *Mesh {
	t.Helper()
	indices := []uint32{0, 2, 3, 0, 3, 1}
	positions := []float32{0, 0, 0, 0, 0, 1, 1, 0, -0.5, -1, 0, -0.5}
	mesh, err := NewMesh(indices, positions, nil)
	assert.NoError(t, err)
	return mesh
}

func createThreeConnectedFaces(t *testing.T) *Mesh {
	t.Helper()
	indices := []uint32{0, 2, 3, 0, 3, 1, 0, 1, 2}
	positions := []float32{0, 0, 0, 0, 0, 1, 1, 0, -0.5, -1, 0, -0.5}
	normals := []float32{0, 1, 0, 0, 1, 0, 0, 1, 0, 0, 1, 0}
	mesh, err := NewMesh(indices, positions, normals)
	assert.NoError(t, err)
	return mesh
}

// Test the half edge links around a single face.
func TestOneFaceConnectivity(t *testing.T) {
	mesh := createSingleFace(t)
	v0, v1, v2 := VertexID(0), VertexID(1), VertexID(2)
	f0 := FaceID(0)

	assert.Equal(t, v1, mesh.WalkerFromVertex(v0).VertexID())
	assert.Equal(t, v0, mesh.WalkerFromVertex(v0).Twin().VertexID())
	assert.Equal(t, v1, mesh.WalkerFromVertex(v1).Next().Next().VertexID())

	assert.False(t, mesh.WalkerFromFace(f0).Twin().FaceID().IsValid())
	assert.False(t, mesh.WalkerFromFace(f0).Twin().NextID().IsValid())
	assert.Equal(t, f0, mesh.WalkerFromFace(f0).Previous().Previous().Twin().Twin().FaceID())

	walker := mesh.WalkerFromVertex(v1)
	assert.Equal(t, walker.HalfEdgeID(), mesh.WalkerFromVertex(v1).Next().Next().NextID())
	assert.Equal(t, f0, mesh.WalkerFromVertex(v2).FaceID())

	assert.NoError(t, mesh.Validate())
}

// Test walking a full one-ring on an interior vertex.
func TestThreeFaceConnectivity(t *testing.T) {
	mesh := createThreeConnectedFaces(t)

	interior := InvalidVertexID
	for _, vertexID := range mesh.VertexIDs() {
		round := true
		for _, halfEdgeID := range mesh.VertexHalfEdgeIDs(vertexID) {
			if !mesh.WalkerFromHalfEdge(halfEdgeID).FaceID().IsValid() {
				round = false
				break
			}
		}
		if round {
			interior = vertexID
			break
		}
	}
	assert.True(t, interior.IsValid())

	walker := mesh.WalkerFromVertex(interior)
	start := walker.HalfEdgeID()
	oneRound := walker.Previous().Twin().Previous().Twin().Previous().TwinID()
	assert.Equal(t, start, oneRound)

	assert.NoError(t, mesh.Validate())
}

// Test the vertex iterator count and snapshot stability.
func TestVertexIterator(t *testing.T) {
	mesh := createThreeConnectedFaces(t)

	ids := mesh.VertexIDs()
	assert.Len(t, ids, 4)
	assert.Equal(t, ids, mesh.VertexIDs())
}

// Test the half edge iterator count and snapshot stability.
func TestHalfEdgeIterator(t *testing.T) {
	mesh := createThreeConnectedFaces(t)

	ids := mesh.HalfEdgeIDs()
	assert.Len(t, ids, 12)
	assert.Equal(t, ids, mesh.HalfEdgeIDs())
}

// Test the face iterator count and snapshot stability.
func TestFaceIterator(t *testing.T) {
	mesh := createThreeConnectedFaces(t)

	ids := mesh.FaceIDs()
	assert.Len(t, ids, 3)
	assert.Equal(t, ids, mesh.FaceIDs())
}

// Test the edge iterator deduplicates twin pairs.
func TestEdgeIterator(t *testing.T) {
	mesh := createThreeConnectedFaces(t)

	edges := mesh.Edges()
	assert.Len(t, edges, 6)
	for _, edge := range edges {
		assert.Less(t, edge[0], edge[1])
	}
}

// Test the one-ring iterator visits every outgoing half edge.
func TestVertexHalfEdgeIterator(t *testing.T) {
	mesh := createThreeConnectedFaces(t)

	ids := mesh.VertexIDs()
	ring := mesh.VertexHalfEdgeIDs(ids[len(ids)-1])
	assert.Len(t, ring, 3)

	for _, halfEdgeID := range ring {
		assert.True(t, mesh.WalkerFromHalfEdge(halfEdgeID).VertexID().IsValid())
	}
}

// Test the one-ring iterator steps across holes.
func TestVertexHalfEdgeIteratorWithHoles(t *testing.T) {
	indices := []uint32{0, 2, 3, 0, 4, 1, 0, 1, 2}
	positions := make([]float32, 5*3)
	mesh, err := NewMesh(indices, positions, nil)
	assert.NoError(t, err)

	ring := mesh.VertexHalfEdgeIDs(VertexID(0))
	assert.Len(t, ring, 4)
}

// Test the face half edge iterator.
func TestFaceHalfEdgeIterator(t *testing.T) {
	mesh := createSingleFace(t)

	ids := mesh.FaceHalfEdgeIDs(FaceID(0))
	assert.Len(t, ids, 3)

	for _, halfEdgeID := range ids {
		walker := mesh.WalkerFromHalfEdge(halfEdgeID)
		assert.True(t, walker.FaceID().IsValid())
		assert.True(t, walker.VertexID().IsValid())
	}
}

// Test edge vertices of a half edge and its twin are reversed.
func TestEdgeVertices(t *testing.T) {
	mesh := createThreeConnectedFaces(t)

	for _, halfEdgeID := range mesh.HalfEdgeIDs() {
		head, tail := mesh.EdgeVertices(halfEdgeID)
		twinHead, twinTail := mesh.EdgeVertices(mesh.WalkerFromHalfEdge(halfEdgeID).TwinID())
		assert.Equal(t, head, twinTail)
		assert.Equal(t, tail, twinHead)
	}
}

// Test every face contributes exactly three face-carrying half edges.
func TestFaceHalfEdgeCount(t *testing.T) {
	mesh := createThreeConnectedFaces(t)

	interior := 0
	for _, halfEdgeID := range mesh.HalfEdgeIDs() {
		if mesh.WalkerFromHalfEdge(halfEdgeID).FaceID().IsValid() {
			interior++
		}
	}

	assert.Equal(t, 3*mesh.GetNumberOfFaces(), interior)
}

// Test the connecting edge is symmetric.
func TestConnectingEdgeSymmetry(t *testing.T) {
	mesh := createThreeConnectedFaces(t)

	for _, vertexID1 := range mesh.VertexIDs() {
		for _, vertexID2 := range mesh.VertexIDs() {
			forward := mesh.ConnectingEdge(vertexID1, vertexID2).IsValid()
			backward := mesh.ConnectingEdge(vertexID2, vertexID1).IsValid()
			assert.Equal(t, forward, backward)
		}
	}
}

// Test a face normal computation.
func TestFaceNormal(t *testing.T) {
	mesh := createSingleFace(t)

	normal := mesh.GetFaceNormal(FaceID(0))
	assert.InDelta(t, 0, normal.X, 1e-9)
	assert.InDelta(t, 1, normal.Y, 1e-9)
	assert.InDelta(t, 0, normal.Z, 1e-9)
}

// Test a vertex normal computation.
func TestVertexNormal(t *testing.T) {
	mesh := createThreeConnectedFaces(t)

	normal := mesh.GetVertexNormal(VertexID(0))
	assert.InDelta(t, 0, normal.X, 1e-9)
	assert.InDelta(t, 1, normal.Y, 1e-9)
	assert.InDelta(t, 0, normal.Z, 1e-9)
}

// Test updating all vertex normals.
func TestUpdateVertexNormals(t *testing.T) {
	mesh := createThreeConnectedFaces(t)
	mesh.UpdateVertexNormals()

	for _, vertexID := range mesh.VertexIDs() {
		normal, ok := mesh.GetNormal(vertexID)
		assert.True(t, ok)
		assert.InDelta(t, 0, normal.X, 1e-9)
		assert.InDelta(t, 1, normal.Y, 1e-9)
		assert.InDelta(t, 0, normal.Z, 1e-9)
	}
}

// Test exporting the attribute tuples.
func TestExportTuples(t *testing.T) {
	mesh := createThreeConnectedFaces(t)
	mesh.UpdateVertexNormals()

	positions := mesh.Positions()
	assert.Len(t, positions, 3*mesh.GetNumberOfVertices())

	normals := mesh.Normals()
	assert.Len(t, normals, 3*mesh.GetNumberOfVertices())
	for i := 0; i < len(normals); i += 3 {
		assert.InDelta(t, 0, normals[i], 1e-6)
		assert.InDelta(t, 1, normals[i+1], 1e-6)
		assert.InDelta(t, 0, normals[i+2], 1e-6)
	}

	indices := mesh.Indices()
	assert.Len(t, indices, 3*mesh.GetNumberOfFaces())
	for _, index := range indices {
		assert.Less(t, int(index), mesh.GetNumberOfVertices())
	}
}

// Test the export round trips through the builder.
func TestExportRoundTrip(t *testing.T) {
	mesh := createThreeConnectedFaces(t)

	rebuilt, err := NewMesh(mesh.Indices(), mesh.Positions(), nil)
	assert.NoError(t, err)
	assert.Equal(t, mesh.GetNumberOfVertices(), rebuilt.GetNumberOfVertices())
	assert.Equal(t, mesh.GetNumberOfHalfEdges(), rebuilt.GetNumberOfHalfEdges())
	assert.Equal(t, mesh.GetNumberOfFaces(), rebuilt.GetNumberOfFaces())
	assert.NoError(t, rebuilt.Validate())
}

// Test cloning yields an independent mesh.
func TestClone(t *testing.T) {
	mesh := createThreeConnectedFaces(t)
	clone := mesh.Clone()

	clone.Translate(r3.Vector{X: 1})
	assert.NotEqual(t, mesh.GetPosition(VertexID(0)), clone.GetPosition(VertexID(0)))
	assert.Equal(t, mesh.GetNumberOfHalfEdges(), clone.GetNumberOfHalfEdges())
	assert.NoError(t, clone.Validate())
}

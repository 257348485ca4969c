package halfedge

import (
	"github.com/golang/geo/r3"

	"github.com/ajcurley/trimesh"
)

// Get the head and tail vertices of a half edge. The head is the vertex
// the half edge points to; the twin reports the reversed pair.
func (m *Mesh) EdgeVertices(id HalfEdgeID) (VertexID, VertexID) {
	walker := m.WalkerFromHalfEdge(id)
	head := walker.VertexID()
	tail := walker.Twin().VertexID()
	return head, tail
}

// Get the endpoint vertices of a half edge in ascending order.
func (m *Mesh) OrderedEdgeVertices(id HalfEdgeID) (VertexID, VertexID) {
	head, tail := m.EdgeVertices(id)
	if head < tail {
		return head, tail
	}
	return tail, head
}

// Get the three vertices of a face in cycle order.
func (m *Mesh) FaceVertices(id FaceID) (VertexID, VertexID, VertexID) {
	walker := m.WalkerFromFace(id)
	v0 := walker.VertexID()
	v1 := walker.Next().VertexID()
	v2 := walker.Next().VertexID()
	return v0, v1, v2
}

// Get the three vertices of a face in ascending order.
func (m *Mesh) OrderedFaceVertices(id FaceID) (VertexID, VertexID, VertexID) {
	v0, v1, v2 := m.FaceVertices(id)

	if v1 < v0 {
		v0, v1 = v1, v0
	}
	if v2 < v1 {
		v1, v2 = v2, v1
	}
	if v1 < v0 {
		v0, v1 = v1, v0
	}

	return v0, v1, v2
}

// Get the endpoint positions of a half edge in ascending vertex order.
func (m *Mesh) GetEdgePositions(id HalfEdgeID) (r3.Vector, r3.Vector) {
	v0, v1 := m.OrderedEdgeVertices(id)
	return m.positions[v0], m.positions[v1]
}

// Get the vertex positions of a face in ascending vertex order.
func (m *Mesh) GetFacePositions(id FaceID) (r3.Vector, r3.Vector, r3.Vector) {
	v0, v1, v2 := m.OrderedFaceVertices(id)
	return m.positions[v0], m.positions[v1], m.positions[v2]
}

// Get the face as a geometric triangle in cycle order.
func (m *Mesh) GetFaceTriangle(id FaceID) trimesh.Triangle {
	v0, v1, v2 := m.FaceVertices(id)
	return trimesh.NewTriangle(m.positions[v0], m.positions[v1], m.positions[v2])
}

// Compute the unit face normal from the face's half edge cycle.
func (m *Mesh) GetFaceNormal(id FaceID) r3.Vector {
	return m.GetFaceTriangle(id).UnitNormal()
}

// Compute the face area.
func (m *Mesh) GetFaceArea(id FaceID) float64 {
	return m.GetFaceTriangle(id).Area()
}

// Compute the face center.
func (m *Mesh) GetFaceCenter(id FaceID) r3.Vector {
	return m.GetFaceTriangle(id).Center()
}

// Compute the edge length.
func (m *Mesh) GetEdgeLength(id HalfEdgeID) float64 {
	p0, p1 := m.GetEdgePositions(id)
	return p0.Sub(p1).Norm()
}

// Compute the squared edge length.
func (m *Mesh) GetEdgeSqrLength(id HalfEdgeID) float64 {
	p0, p1 := m.GetEdgePositions(id)
	return p0.Sub(p1).Norm2()
}

// Compute the vertex normal as the normalized sum of the incident face
// normals.
func (m *Mesh) GetVertexNormal(id VertexID) r3.Vector {
	normal := r3.Vector{}
	for _, halfEdgeID := range m.VertexHalfEdgeIDs(id) {
		if faceID := m.WalkerFromHalfEdge(halfEdgeID).FaceID(); faceID.IsValid() {
			normal = normal.Add(m.GetFaceNormal(faceID))
		}
	}
	return normal.Normalize()
}

// Recompute and store the normal of every vertex.
func (m *Mesh) UpdateVertexNormals() {
	for _, id := range m.VertexIDs() {
		m.SetNormal(id, m.GetVertexNormal(id))
	}
}

// Find the half edge from one vertex to another by walking the one-ring.
func (m *Mesh) ConnectingEdge(vertexID1, vertexID2 VertexID) HalfEdgeID {
	for _, halfEdgeID := range m.VertexHalfEdgeIDs(vertexID1) {
		if m.WalkerFromHalfEdge(halfEdgeID).VertexID() == vertexID2 {
			return halfEdgeID
		}
	}
	return InvalidHalfEdgeID
}

// Find the half edge from one vertex to another by scanning every half
// edge. Unlike ConnectingEdge this does not rely on the one-ring being
// intact, so it remains usable mid-edit.
func (m *Mesh) FindEdge(vertexID1, vertexID2 VertexID) HalfEdgeID {
	walker := m.Walker()
	for _, halfEdgeID := range m.conn.halfEdgeIDs() {
		walker.JumpToHalfEdge(halfEdgeID)
		if walker.VertexID() == vertexID2 && walker.Twin().VertexID() == vertexID1 {
			return halfEdgeID
		}
	}
	return InvalidHalfEdgeID
}

// Return true if either side of the edge is face-less.
func (m *Mesh) IsEdgeOnBoundary(id HalfEdgeID) bool {
	walker := m.WalkerFromHalfEdge(id)
	return !walker.FaceID().IsValid() || !walker.Twin().FaceID().IsValid()
}

package halfedge

import (
	"fmt"
)

// Validate the structural invariants: link targets exist, twins are
// symmetric and connect two distinct vertices, next forms face cycles of
// three exactly on face-carrying half edges, vertices reference outgoing
// half edges, no directed vertex pair carries two half edges, and edge
// connectivity is symmetric.
func (m *Mesh) Validate() error {
	for _, vertexID := range m.VertexIDs() {
		halfEdgeID := m.WalkerFromVertex(vertexID).HalfEdgeID()
		if !halfEdgeID.IsValid() {
			return fmt.Errorf("vertex %d does not point to a half edge: %w", vertexID, ErrInvalidMesh)
		}
		if !m.conn.hasHalfEdge(halfEdgeID) {
			return fmt.Errorf("vertex %d points to an invalid half edge %d: %w", vertexID, halfEdgeID, ErrInvalidMesh)
		}
		if m.WalkerFromVertex(vertexID).Twin().VertexID() != vertexID {
			return fmt.Errorf("half edge pointed to by vertex %d does not start in that vertex: %w", vertexID, ErrInvalidMesh)
		}
	}

	seen := make(map[[2]VertexID]HalfEdgeID, m.conn.numHalfEdges())

	for _, halfEdgeID := range m.HalfEdgeIDs() {
		walker := m.WalkerFromHalfEdge(halfEdgeID)

		twinID := walker.TwinID()
		if !twinID.IsValid() {
			return fmt.Errorf("half edge %d does not point to a twin: %w", halfEdgeID, ErrInvalidMesh)
		}
		if !m.conn.hasHalfEdge(twinID) {
			return fmt.Errorf("half edge %d points to an invalid twin %d: %w", halfEdgeID, twinID, ErrInvalidMesh)
		}
		if m.WalkerFromHalfEdge(twinID).TwinID() != halfEdgeID {
			return fmt.Errorf("twin pointed to by half edge %d does not point back: %w", halfEdgeID, ErrInvalidMesh)
		}

		vertexID := walker.VertexID()
		if !vertexID.IsValid() {
			return fmt.Errorf("half edge %d does not point to a vertex: %w", halfEdgeID, ErrInvalidMesh)
		}
		if !m.conn.hasVertex(vertexID) {
			return fmt.Errorf("half edge %d points to an invalid vertex %d: %w", halfEdgeID, vertexID, ErrInvalidMesh)
		}
		if m.WalkerFromHalfEdge(twinID).VertexID() == vertexID {
			return fmt.Errorf("half edge %d and its twin point to the same vertex: %w", halfEdgeID, ErrInvalidMesh)
		}

		faceID := walker.FaceID()
		nextID := walker.NextID()

		if faceID.IsValid() {
			if !m.conn.hasFace(faceID) {
				return fmt.Errorf("half edge %d points to an invalid face %d: %w", halfEdgeID, faceID, ErrInvalidMesh)
			}
			if !nextID.IsValid() {
				return fmt.Errorf("half edge %d points to a face but not a next half edge: %w", halfEdgeID, ErrInvalidMesh)
			}
		}

		if nextID.IsValid() {
			if !m.conn.hasHalfEdge(nextID) {
				return fmt.Errorf("half edge %d points to an invalid next half edge %d: %w", halfEdgeID, nextID, ErrInvalidMesh)
			}
			if !faceID.IsValid() {
				return fmt.Errorf("half edge %d points to a next half edge but not a face: %w", halfEdgeID, ErrInvalidMesh)
			}
			if m.WalkerFromHalfEdge(nextID).FaceID() != faceID {
				return fmt.Errorf("half edge %d and its next lie on different faces: %w", halfEdgeID, ErrInvalidMesh)
			}
			if m.WalkerFromHalfEdge(halfEdgeID).Next().Next().Next().HalfEdgeID() != halfEdgeID {
				return fmt.Errorf("half edge %d does not lie on a cycle of three: %w", halfEdgeID, ErrInvalidMesh)
			}
		}

		head, tail := m.EdgeVertices(halfEdgeID)
		pair := [2]VertexID{tail, head}
		if other, ok := seen[pair]; ok {
			return fmt.Errorf("half edges %d and %d connect the same vertices %d and %d: %w", other, halfEdgeID, tail, head, ErrInvalidMesh)
		}
		seen[pair] = halfEdgeID
	}

	for _, faceID := range m.FaceIDs() {
		halfEdgeID := m.WalkerFromFace(faceID).HalfEdgeID()
		if !halfEdgeID.IsValid() {
			return fmt.Errorf("face %d does not point to a half edge: %w", faceID, ErrInvalidMesh)
		}
		if !m.conn.hasHalfEdge(halfEdgeID) {
			return fmt.Errorf("face %d points to an invalid half edge %d: %w", faceID, halfEdgeID, ErrInvalidMesh)
		}
		if m.WalkerFromFace(faceID).FaceID() != faceID {
			return fmt.Errorf("face %d points to a half edge on another face: %w", faceID, ErrInvalidMesh)
		}
	}

	vertexIDs := m.VertexIDs()
	for _, vertexID1 := range vertexIDs {
		for _, vertexID2 := range vertexIDs {
			forward := m.ConnectingEdge(vertexID1, vertexID2).IsValid()
			backward := m.ConnectingEdge(vertexID2, vertexID1).IsValid()
			if forward != backward {
				return fmt.Errorf("vertices %d and %d are connected one way but not the other: %w", vertexID1, vertexID2, ErrInvalidMesh)
			}
		}
	}

	return nil
}

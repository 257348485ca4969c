package halfedge

import (
	"fmt"

	"github.com/golang/geo/r3"
)

// Flip an interior edge to the other diagonal of its two-triangle quad.
// Fails on a boundary edge and when the flip would duplicate an existing
// edge; the mesh is untouched on failure.
func (m *Mesh) FlipEdge(id HalfEdgeID) error {
	walker := m.WalkerFromHalfEdge(id)
	faceID := walker.FaceID()
	if !faceID.IsValid() {
		return fmt.Errorf("half edge %d is on a boundary: %w", id, ErrFailedToFlipEdge)
	}

	nextID := walker.NextID()
	previousID := walker.PreviousID()
	v0 := walker.VertexID()
	v3 := walker.Next().VertexID()
	walker.Previous()

	walker.Twin()
	twinID := walker.HalfEdgeID()
	twinFaceID := walker.FaceID()
	if !twinFaceID.IsValid() {
		return fmt.Errorf("half edge %d is on a boundary: %w", id, ErrFailedToFlipEdge)
	}

	twinNextID := walker.NextID()
	twinPreviousID := walker.PreviousID()
	v1 := walker.VertexID()
	v2 := walker.Next().VertexID()

	if m.ConnectingEdge(v2, v3).IsValid() {
		return fmt.Errorf("flip would duplicate the edge between %d and %d: %w", v2, v3, ErrFailedToFlipEdge)
	}

	m.conn.setFaceHalfEdge(faceID, previousID)
	m.conn.setFaceHalfEdge(twinFaceID, twinPreviousID)

	m.conn.setVertexHalfEdge(v0, nextID)
	m.conn.setVertexHalfEdge(v1, twinNextID)

	m.conn.setHalfEdgeNext(id, previousID)
	m.conn.setHalfEdgeNext(nextID, twinID)
	m.conn.setHalfEdgeNext(previousID, twinNextID)
	m.conn.setHalfEdgeNext(twinID, twinPreviousID)
	m.conn.setHalfEdgeNext(twinNextID, id)
	m.conn.setHalfEdgeNext(twinPreviousID, nextID)

	m.conn.setHalfEdgeVertex(id, v3)
	m.conn.setHalfEdgeVertex(twinID, v2)

	m.conn.setHalfEdgeFace(nextID, twinFaceID)
	m.conn.setHalfEdgeFace(twinNextID, faceID)

	return nil
}

// Split the edge carrying the half edge by inserting a vertex at the
// position. An interior edge splits both incident faces; a boundary edge
// splits only the face side and replaces the boundary twin with two
// boundary half edges. Returns the new vertex.
func (m *Mesh) SplitEdge(id HalfEdgeID, position r3.Vector) VertexID {
	walker := m.WalkerFromHalfEdge(id)
	if !walker.FaceID().IsValid() {
		walker.Twin()
	}
	splitID := walker.HalfEdgeID()

	walker.Twin()
	twinID := walker.HalfEdgeID()
	twinVertexID := walker.VertexID()
	isBoundary := !walker.FaceID().IsValid()

	newVertexID := m.createVertex(position)
	m.splitOneFace(splitID, twinID, newVertexID)

	if !isBoundary {
		m.splitOneFace(twinID, splitID, newVertexID)
	} else {
		newHalfEdgeID := m.conn.createHalfEdge(twinVertexID, InvalidHalfEdgeID, InvalidFaceID)
		m.conn.setHalfEdgeTwin(splitID, newHalfEdgeID)
		m.conn.setHalfEdgeVertex(twinID, newVertexID)
	}

	return newVertexID
}

// Split a face by inserting a vertex at the position and fanning three
// triangles out of it. Returns the new vertex.
func (m *Mesh) SplitFace(id FaceID, position r3.Vector) VertexID {
	newVertexID := m.createVertex(position)

	walker := m.WalkerFromFace(id)
	vertexID1 := walker.VertexID()

	walker.Next()
	halfEdgeID2 := walker.HalfEdgeID()
	twinID2 := walker.TwinID()
	vertexID2 := walker.VertexID()

	walker.Next()
	halfEdgeID3 := walker.HalfEdgeID()
	twinID3 := walker.TwinID()
	vertexID3 := walker.VertexID()

	faceID1 := m.conn.createFace(vertexID1, vertexID2, newVertexID)
	faceID2 := m.conn.createFace(vertexID2, vertexID3, newVertexID)

	m.conn.setHalfEdgeVertex(halfEdgeID2, newVertexID)

	newHalfEdgeID := InvalidHalfEdgeID
	for _, halfEdgeID := range m.FaceHalfEdgeIDs(faceID1) {
		switch m.WalkerFromHalfEdge(halfEdgeID).VertexID() {
		case vertexID1:
			m.conn.setHalfEdgeTwin(halfEdgeID2, halfEdgeID)
		case vertexID2:
			m.conn.setHalfEdgeTwin(twinID2, halfEdgeID)
		case newVertexID:
			newHalfEdgeID = halfEdgeID
		default:
			panic("split face failed")
		}
	}

	for _, halfEdgeID := range m.FaceHalfEdgeIDs(faceID2) {
		switch m.WalkerFromHalfEdge(halfEdgeID).VertexID() {
		case vertexID2:
			m.conn.setHalfEdgeTwin(newHalfEdgeID, halfEdgeID)
		case vertexID3:
			m.conn.setHalfEdgeTwin(twinID3, halfEdgeID)
		case newVertexID:
			m.conn.setHalfEdgeTwin(halfEdgeID3, halfEdgeID)
		default:
			panic("split face failed")
		}
	}

	return newVertexID
}

// Split the face on one side of a half edge into two, reusing the half
// edge for the part nearest its head and re-twinning the surroundings.
func (m *Mesh) splitOneFace(id, twinID HalfEdgeID, newVertexID VertexID) {
	walker := m.WalkerFromHalfEdge(id)
	vertexID1 := walker.VertexID()

	walker.Next()
	vertexID2 := walker.VertexID()
	halfEdgeToUpdate1 := walker.TwinID()
	halfEdgeToUpdate2 := walker.HalfEdgeID()

	m.conn.setHalfEdgeVertex(id, newVertexID)
	newFaceID := m.conn.createFace(vertexID1, vertexID2, newVertexID)

	for _, halfEdgeID := range m.FaceHalfEdgeIDs(newFaceID) {
		switch m.WalkerFromHalfEdge(halfEdgeID).VertexID() {
		case vertexID1:
			m.conn.setHalfEdgeTwin(twinID, halfEdgeID)
		case vertexID2:
			m.conn.setHalfEdgeTwin(halfEdgeToUpdate1, halfEdgeID)
		case newVertexID:
			m.conn.setHalfEdgeTwin(halfEdgeToUpdate2, halfEdgeID)
		default:
			panic("split one face failed")
		}
	}
}

// Remove a face. Half edges left face-less on both sides are removed with
// the pair, along with any vertices left without incident half edges.
func (m *Mesh) RemoveFace(id FaceID) {
	v0, v1, v2 := m.FaceVertices(id)
	m.conn.removeFace(id)
	m.removeVertexAttributes(v0)
	m.removeVertexAttributes(v1)
	m.removeVertexAttributes(v2)
}

// Remove a face without any cleanup of the detached half edges or their
// vertices. Used during bulk overlap merging where the leftovers are
// merged away afterwards.
func (m *Mesh) RemoveFaceUnsafe(id FaceID) {
	m.conn.removeFaceOnly(id)
}

// Merge two vertices by rewriting every half edge pointing at the second
// to point at the first. The caller is responsible for merging any half
// edges duplicated by the rewrite.
func (m *Mesh) MergeVertices(vertexID1, vertexID2 VertexID) (VertexID, error) {
	if vertexID1 == vertexID2 || !m.conn.hasVertex(vertexID1) || !m.conn.hasVertex(vertexID2) {
		return InvalidVertexID, fmt.Errorf("vertices %d and %d cannot merge: %w", vertexID1, vertexID2, ErrFailedToMergeVertices)
	}

	for _, halfEdgeID := range m.conn.halfEdgeIDs() {
		if m.WalkerFromHalfEdge(halfEdgeID).VertexID() == vertexID2 {
			m.conn.setHalfEdgeVertex(halfEdgeID, vertexID1)
		}
	}

	m.conn.removeVertex(vertexID2)
	m.removeVertexAttributes(vertexID2)

	return vertexID1, nil
}

// Merge two half edges whose endpoints have already been identified,
// keeping the sides that carry faces. Merging an interior edge with
// anything but an alone edge would give the edge more than two faces.
func (m *Mesh) MergeHalfEdges(halfEdgeID1, halfEdgeID2 HalfEdgeID) (HalfEdgeID, error) {
	walker1 := m.WalkerFromHalfEdge(halfEdgeID1)
	walker2 := m.WalkerFromHalfEdge(halfEdgeID2)

	face1 := walker1.FaceID().IsValid()
	twinFace1 := walker1.Twin().FaceID().IsValid()
	walker1.Twin()

	face2 := walker2.FaceID().IsValid()
	twinFace2 := walker2.Twin().FaceID().IsValid()
	walker2.Twin()

	edge1Alone := !face1 && !twinFace1
	edge1Interior := face1 && twinFace1
	edge1Boundary := !edge1Alone && !edge1Interior

	edge2Alone := !face2 && !twinFace2
	edge2Interior := face2 && twinFace2
	edge2Boundary := !edge2Alone && !edge2Interior

	if (edge1Interior && !edge2Alone) || (edge2Interior && !edge1Alone) {
		return InvalidHalfEdgeID, fmt.Errorf("half edges %d and %d cannot merge: %w", halfEdgeID1, halfEdgeID2, ErrMergeWillCreateNonManifoldMesh)
	}

	halfEdgeToRemove1 := InvalidHalfEdgeID
	halfEdgeToRemove2 := InvalidHalfEdgeID
	halfEdgeToSurvive1 := InvalidHalfEdgeID
	halfEdgeToSurvive2 := InvalidHalfEdgeID
	vertexID1 := InvalidVertexID
	vertexID2 := InvalidVertexID

	if edge1Boundary {
		if !walker1.FaceID().IsValid() {
			walker1.Twin()
		}
		halfEdgeToRemove1 = walker1.TwinID()
		halfEdgeToSurvive1 = walker1.HalfEdgeID()
		vertexID1 = walker1.VertexID()
	}
	if edge2Boundary {
		if !walker2.FaceID().IsValid() {
			walker2.Twin()
		}
		halfEdgeToRemove2 = walker2.TwinID()
		halfEdgeToSurvive2 = walker2.HalfEdgeID()
		vertexID2 = walker2.VertexID()
	}
	if edge1Alone {
		if edge2Interior {
			halfEdgeToRemove1 = walker1.TwinID()
			halfEdgeToRemove2 = walker1.HalfEdgeID()

			halfEdgeToSurvive1 = walker2.HalfEdgeID()
			vertexID1 = walker2.VertexID()
			walker2.Twin()
			halfEdgeToSurvive2 = walker2.HalfEdgeID()
			vertexID2 = walker2.VertexID()
		} else {
			if vertexID2 == walker1.VertexID() {
				walker1.Twin()
			}
			halfEdgeToRemove1 = walker1.TwinID()
			halfEdgeToSurvive1 = walker1.HalfEdgeID()
			vertexID1 = walker1.VertexID()
		}
	}
	if edge2Alone {
		if edge1Interior {
			halfEdgeToRemove1 = walker2.TwinID()
			halfEdgeToRemove2 = walker2.HalfEdgeID()

			halfEdgeToSurvive1 = walker1.HalfEdgeID()
			vertexID1 = walker1.VertexID()
			walker1.Twin()
			halfEdgeToSurvive2 = walker1.HalfEdgeID()
			vertexID2 = walker1.VertexID()
		} else {
			if vertexID1 == walker2.VertexID() {
				walker2.Twin()
			}
			halfEdgeToRemove2 = walker2.TwinID()
			halfEdgeToSurvive2 = walker2.HalfEdgeID()
			vertexID2 = walker2.VertexID()
		}
	}

	m.conn.removeHalfEdge(halfEdgeToRemove1)
	m.conn.removeHalfEdge(halfEdgeToRemove2)
	m.conn.setHalfEdgeTwin(halfEdgeToSurvive1, halfEdgeToSurvive2)
	m.conn.setVertexHalfEdge(vertexID1, halfEdgeToSurvive2)
	m.conn.setVertexHalfEdge(vertexID2, halfEdgeToSurvive1)

	return halfEdgeToSurvive1, nil
}

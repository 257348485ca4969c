package halfedge

import (
	"fmt"
)

// Split the mesh into the two submeshes on either side of the curve of
// half edges matched by the predicate. The marked edges together with the
// natural boundaries must separate the faces into exactly two disjoint
// components.
func (m *Mesh) Split(isAtSplit func(*Mesh, HalfEdgeID) bool) (*Mesh, *Mesh, error) {
	faceID1 := InvalidFaceID
	faceID2 := InvalidFaceID

	for _, halfEdgeID := range m.HalfEdgeIDs() {
		if isAtSplit(m, halfEdgeID) && !m.IsEdgeOnBoundary(halfEdgeID) {
			walker := m.WalkerFromHalfEdge(halfEdgeID)
			faceID1 = walker.FaceID()
			faceID2 = walker.Twin().FaceID()
			break
		}
	}

	if !faceID1.IsValid() || !faceID2.IsValid() {
		return nil, nil, fmt.Errorf("no marked edge with faces on both sides: %w", ErrSplitDidNotFormClosedCurve)
	}

	limit := func(halfEdgeID HalfEdgeID) bool { return isAtSplit(m, halfEdgeID) }
	component1 := m.ConnectedComponentWithLimit(faceID1, limit)
	component2 := m.ConnectedComponentWithLimit(faceID2, limit)

	for faceID := range component1 {
		if component2[faceID] {
			return nil, nil, fmt.Errorf("marked edges do not separate the mesh: %w", ErrSplitDidNotFormClosedCurve)
		}
	}
	if len(component1)+len(component2) != m.GetNumberOfFaces() {
		return nil, nil, fmt.Errorf("marked edges leave faces outside both parts: %w", ErrSplitDidNotFormClosedCurve)
	}

	return m.CloneSubset(component1), m.CloneSubset(component2), nil
}

// Split the mesh into the submeshes on either side of the first marked
// half edge without checking that the marked edges form a closed curve.
// A side without a face yields an empty mesh.
func (m *Mesh) SplitMesh(isAtSplit func(*Mesh, HalfEdgeID) bool) (*Mesh, *Mesh) {
	faceID1 := InvalidFaceID
	faceID2 := InvalidFaceID

	for _, halfEdgeID := range m.HalfEdgeIDs() {
		if isAtSplit(m, halfEdgeID) {
			walker := m.WalkerFromHalfEdge(halfEdgeID)
			faceID1 = walker.FaceID()
			faceID2 = walker.Twin().FaceID()
			break
		}
	}

	limit := func(halfEdgeID HalfEdgeID) bool { return isAtSplit(m, halfEdgeID) }

	component1 := map[FaceID]bool{}
	if faceID1.IsValid() {
		component1 = m.ConnectedComponentWithLimit(faceID1, limit)
	}
	component2 := map[FaceID]bool{}
	if faceID2.IsValid() {
		component2 = m.ConnectedComponentWithLimit(faceID2, limit)
	}

	return m.CloneSubset(component1), m.CloneSubset(component2)
}

// Cut the mesh along the half edges matched by the predicate, returning
// every resulting connected component as its own mesh.
func (m *Mesh) Cut(isAtCut func(*Mesh, HalfEdgeID) bool) []*Mesh {
	limit := func(halfEdgeID HalfEdgeID) bool { return isAtCut(m, halfEdgeID) }
	components := m.ConnectedComponentsWithLimit(limit)

	meshes := make([]*Mesh, 0, len(components))
	for _, component := range components {
		meshes = append(meshes, m.CloneSubset(component))
	}

	return meshes
}

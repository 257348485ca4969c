package halfedge

import (
	"fmt"
	"slices"

	"github.com/ajcurley/trimesh"
)

// Merge another mesh into this one. The stitches map vertices of the
// other mesh onto vertices of this mesh declaring them the same point.
// The relative orientation is decided from the first stitched edge present
// in both meshes, and this mesh is flipped when the two orientations
// disagree. The shared boundary half edges are
// removed, the remaining vertices and faces of the other mesh are copied
// in, and twin connectivity is rebuilt.
func (m *Mesh) MergeWith(other *Mesh, stitches map[VertexID]VertexID) error {
	otherVertexIDs := make([]VertexID, 0, len(stitches))
	for id := range stitches {
		otherVertexIDs = append(otherVertexIDs, id)
	}
	slices.Sort(otherVertexIDs)

	orientationChecked := false
	sameOrientation := false
	halfEdgesToRemove := make([]HalfEdgeID, 0)

	for _, otherVertexID1 := range otherVertexIDs {
		for _, otherVertexID2 := range otherVertexIDs {
			selfHalfEdgeID := m.ConnectingEdge(stitches[otherVertexID1], stitches[otherVertexID2])
			if !selfHalfEdgeID.IsValid() {
				continue
			}
			otherHalfEdgeID := other.ConnectingEdge(otherVertexID1, otherVertexID2)
			if !otherHalfEdgeID.IsValid() {
				continue
			}

			walker := m.WalkerFromHalfEdge(selfHalfEdgeID)
			if walker.FaceID().IsValid() {
				walker.Twin()
			}
			if walker.FaceID().IsValid() {
				return fmt.Errorf("edge between %d and %d has two faces: %w",
					stitches[otherVertexID1], stitches[otherVertexID2], ErrMergeWillCreateNonManifoldMesh)
			}
			halfEdgesToRemove = append(halfEdgesToRemove, walker.HalfEdgeID())

			if !orientationChecked {
				otherWalker := other.WalkerFromHalfEdge(otherHalfEdgeID)
				if otherWalker.FaceID().IsValid() {
					otherWalker.Twin()
				}
				if otherWalker.FaceID().IsValid() {
					return fmt.Errorf("edge between %d and %d has two faces: %w",
						otherVertexID1, otherVertexID2, ErrMergeWillCreateNonManifoldMesh)
				}

				sameOrientation = stitches[otherWalker.VertexID()] != walker.VertexID()
				orientationChecked = true
			}
		}
	}

	if !orientationChecked {
		return fmt.Errorf("no stitched edge exists in both meshes: %w", ErrCannotCheckOrientation)
	}
	if !sameOrientation {
		m.FlipOrientation()
	}

	slices.Sort(halfEdgesToRemove)
	halfEdgesToRemove = slices.Compact(halfEdgesToRemove)
	for _, halfEdgeID := range halfEdgesToRemove {
		m.conn.removeHalfEdge(halfEdgeID)
	}

	mapping := make(map[VertexID]VertexID, len(stitches))
	for otherID, selfID := range stitches {
		mapping[otherID] = selfID
	}

	getOrCreateVertex := func(vertexID VertexID) VertexID {
		if mapped, ok := mapping[vertexID]; ok {
			return mapped
		}
		var created VertexID
		if normal, ok := other.GetNormal(vertexID); ok {
			created = m.createVertexWithNormal(other.GetPosition(vertexID), normal)
		} else {
			created = m.createVertex(other.GetPosition(vertexID))
		}
		mapping[vertexID] = created
		return created
	}

	for _, faceID := range other.FaceIDs() {
		v0, v1, v2 := other.FaceVertices(faceID)
		m.conn.createFace(getOrCreateVertex(v0), getOrCreateVertex(v1), getOrCreateVertex(v2))
	}

	m.createTwinConnectivity()

	return nil
}

// Flip the global orientation by reversing every face cycle. Half edges
// keep their identifiers but point at the opposite endpoint; stored
// vertex normals are negated to stay consistent.
func (m *Mesh) FlipOrientation() {
	ids := m.conn.halfEdgeIDs()

	newVertex := make(map[HalfEdgeID]VertexID, len(ids))
	newNext := make(map[HalfEdgeID]HalfEdgeID, len(ids))
	oldVertex := make(map[HalfEdgeID]VertexID, len(ids))

	for _, halfEdgeID := range ids {
		walker := m.WalkerFromHalfEdge(halfEdgeID)
		oldVertex[halfEdgeID] = walker.VertexID()
		newVertex[halfEdgeID] = m.WalkerFromHalfEdge(halfEdgeID).Twin().VertexID()
		if walker.FaceID().IsValid() {
			newNext[halfEdgeID] = walker.PreviousID()
		}
	}

	for _, halfEdgeID := range ids {
		m.conn.setHalfEdgeVertex(halfEdgeID, newVertex[halfEdgeID])
		if next, ok := newNext[halfEdgeID]; ok {
			m.conn.setHalfEdgeNext(halfEdgeID, next)
		}
	}

	// Every half edge now starts at the vertex it used to point to.
	for _, halfEdgeID := range ids {
		m.conn.setVertexHalfEdge(oldVertex[halfEdgeID], halfEdgeID)
	}

	for vertexID, normal := range m.normals {
		m.normals[vertexID] = normal.Mul(-1)
	}
}

// Collapse coincident vertices, half edges and faces into single
// representatives, leaving a clean manifold. Coincidence is positional
// within the coincidence tolerance. The pass is idempotent.
func (m *Mesh) MergeOverlappingPrimitives() error {
	vertexClasses := m.findOverlappingVertices()
	edgeClasses := m.findOverlappingEdges(vertexClasses)
	faceClasses := m.findOverlappingFaces(vertexClasses)

	for _, class := range faceClasses {
		for _, faceID := range class[1:] {
			m.RemoveFaceUnsafe(faceID)
		}
	}

	for _, class := range vertexClasses {
		target := class[0]
		for _, vertexID := range class[1:] {
			merged, err := m.MergeVertices(target, vertexID)
			if err != nil {
				return err
			}
			target = merged
		}
	}

	for _, class := range edgeClasses {
		target := class[0]
		for _, halfEdgeID := range class[1:] {
			merged, err := m.MergeHalfEdges(target, halfEdgeID)
			if err != nil {
				return err
			}
			target = merged
		}
	}

	return nil
}

// Group vertices into coincidence classes. Each class lists its smallest
// member first; vertices without a coincident partner are not listed.
func (m *Mesh) findOverlappingVertices() [][]VertexID {
	toCheck := m.VertexIDs()
	classes := make([][]VertexID, 0)

	for len(toCheck) > 0 {
		id1 := toCheck[0]
		toCheck = toCheck[1:]

		class := []VertexID{id1}
		remaining := toCheck[:0:0]
		for _, id2 := range toCheck {
			if m.positions[id1].Sub(m.positions[id2]).Norm() < trimesh.CoincidenceTolerance {
				class = append(class, id2)
			} else {
				remaining = append(remaining, id2)
			}
		}

		if len(class) > 1 {
			toCheck = remaining
			classes = append(classes, class)
		}
	}

	return classes
}

// Group edges into coincidence classes: edges whose endpoints fall in the
// same vertex coincidence classes, in either orientation.
func (m *Mesh) findOverlappingEdges(vertexClasses [][]VertexID) [][]HalfEdgeID {
	classOf := func(vertexID VertexID) []VertexID {
		for _, class := range vertexClasses {
			if slices.Contains(class, vertexID) {
				return class
			}
		}
		return nil
	}

	toCheck := m.Edges()
	classes := make([][]HalfEdgeID, 0)

	for len(toCheck) > 0 {
		edge1 := toCheck[0]
		toCheck = toCheck[1:]

		class0 := classOf(edge1[0])
		class1 := classOf(edge1[1])
		if class0 == nil || class1 == nil {
			continue
		}

		class := []HalfEdgeID{m.ConnectingEdge(edge1[0], edge1[1])}
		remaining := toCheck[:0:0]
		for _, edge2 := range toCheck {
			if (slices.Contains(class0, edge2[0]) && slices.Contains(class1, edge2[1])) ||
				(slices.Contains(class1, edge2[0]) && slices.Contains(class0, edge2[1])) {
				class = append(class, m.ConnectingEdge(edge2[0], edge2[1]))
			} else {
				remaining = append(remaining, edge2)
			}
		}

		if len(class) > 1 {
			toCheck = remaining
			classes = append(classes, class)
		}
	}

	return classes
}

// Group faces into coincidence classes: faces whose three vertices all
// fall in the same vertex coincidence classes as another face's three.
func (m *Mesh) findOverlappingFaces(vertexClasses [][]VertexID) [][]FaceID {
	classOf := func(vertexID VertexID) []VertexID {
		for _, class := range vertexClasses {
			if slices.Contains(class, vertexID) {
				return class
			}
		}
		return nil
	}

	toCheck := m.FaceIDs()
	classes := make([][]FaceID, 0)

	for len(toCheck) > 0 {
		id1 := toCheck[0]
		toCheck = toCheck[1:]

		v0, v1, v2 := m.FaceVertices(id1)
		class0 := classOf(v0)
		class1 := classOf(v1)
		class2 := classOf(v2)
		if class0 == nil || class1 == nil || class2 == nil {
			continue
		}

		contains := func(class []VertexID, v3, v4, v5 VertexID) bool {
			return slices.Contains(class, v3) || slices.Contains(class, v4) || slices.Contains(class, v5)
		}

		class := []FaceID{id1}
		remaining := toCheck[:0:0]
		for _, id2 := range toCheck {
			v3, v4, v5 := m.FaceVertices(id2)
			if contains(class0, v3, v4, v5) && contains(class1, v3, v4, v5) && contains(class2, v3, v4, v5) {
				class = append(class, id2)
			} else {
				remaining = append(remaining, id2)
			}
		}

		if len(class) > 1 {
			toCheck = remaining
			classes = append(classes, class)
		}
	}

	return classes
}

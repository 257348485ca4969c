package halfedge

import (
	"github.com/golang/geo/r3"
)

// Move every vertex toward the average of its one-ring by the factor.
func (m *Mesh) SmoothVertices(factor float64) {
	smoothed := make(map[VertexID]r3.Vector, m.GetNumberOfVertices())

	for _, vertexID := range m.VertexIDs() {
		average := r3.Vector{}
		count := 0
		for _, halfEdgeID := range m.VertexHalfEdgeIDs(vertexID) {
			average = average.Add(m.positions[m.WalkerFromHalfEdge(halfEdgeID).VertexID()])
			count++
		}
		average = average.Mul(1 / float64(count))

		position := m.positions[vertexID]
		smoothed[vertexID] = position.Add(average.Sub(position).Mul(factor))
	}

	for vertexID, position := range smoothed {
		m.positions[vertexID] = position
	}
}

// Flip interior edges flatter than the threshold while the flip improves
// triangle quality and inverts no triangle. The threshold is the dot of
// the adjacent face normals: 1 is completely flat, 0 a right angle.
func (m *Mesh) FlipEdges(flatnessThreshold float64) {
	insertOrRemove := func(toBeFlipped map[HalfEdgeID]bool, halfEdgeID HalfEdgeID) {
		twinID := m.WalkerFromHalfEdge(halfEdgeID).TwinID()
		id := halfEdgeID
		if twinID < id {
			id = twinID
		}
		if m.shouldFlip(id, flatnessThreshold) {
			toBeFlipped[id] = true
		} else {
			delete(toBeFlipped, id)
		}
	}

	toBeFlipped := make(map[HalfEdgeID]bool)
	for _, halfEdgeID := range m.HalfEdgeIDs() {
		insertOrRemove(toBeFlipped, halfEdgeID)
	}

	for len(toBeFlipped) > 0 {
		halfEdgeID := InvalidHalfEdgeID
		for id := range toBeFlipped {
			if !halfEdgeID.IsValid() || id < halfEdgeID {
				halfEdgeID = id
			}
		}
		delete(toBeFlipped, halfEdgeID)

		if m.FlipEdge(halfEdgeID) != nil {
			continue
		}

		walker := m.WalkerFromHalfEdge(halfEdgeID)
		insertOrRemove(toBeFlipped, walker.Next().HalfEdgeID())
		insertOrRemove(toBeFlipped, walker.Next().HalfEdgeID())
		insertOrRemove(toBeFlipped, walker.Next().Twin().Next().HalfEdgeID())
		insertOrRemove(toBeFlipped, walker.Next().HalfEdgeID())
	}
}

func (m *Mesh) shouldFlip(halfEdgeID HalfEdgeID, flatnessThreshold float64) bool {
	return !m.IsEdgeOnBoundary(halfEdgeID) &&
		m.flatness(halfEdgeID) > flatnessThreshold &&
		!m.flipWillInvertTriangle(halfEdgeID) &&
		m.flipWillImproveQuality(halfEdgeID)
}

// Dot of the adjacent face normals: 1 is completely flat, 0 a right angle.
func (m *Mesh) flatness(halfEdgeID HalfEdgeID) float64 {
	walker := m.WalkerFromHalfEdge(halfEdgeID)
	faceID1 := walker.FaceID()
	faceID2 := walker.Twin().FaceID()
	return m.GetFaceNormal(faceID1).Dot(m.GetFaceNormal(faceID2))
}

func (m *Mesh) quadPositions(halfEdgeID HalfEdgeID) (r3.Vector, r3.Vector, r3.Vector, r3.Vector) {
	walker := m.WalkerFromHalfEdge(halfEdgeID)
	p0 := m.positions[walker.VertexID()]
	p2 := m.positions[walker.Next().VertexID()]
	p1 := m.positions[walker.Previous().Twin().VertexID()]
	p3 := m.positions[walker.Next().VertexID()]
	return p0, p1, p2, p3
}

func (m *Mesh) flipWillInvertTriangle(halfEdgeID HalfEdgeID) bool {
	p0, p1, p2, p3 := m.quadPositions(halfEdgeID)
	return p2.Sub(p0).Cross(p3.Sub(p0)).Dot(p3.Sub(p1).Cross(p2.Sub(p1))) < 1e-4
}

func (m *Mesh) flipWillImproveQuality(halfEdgeID HalfEdgeID) bool {
	p0, p1, p2, p3 := m.quadPositions(halfEdgeID)
	return triangleQuality(p0, p2, p1)+triangleQuality(p0, p1, p3) >
		1.1*(triangleQuality(p0, p2, p3)+triangleQuality(p1, p3, p2))
}

// Quality measure of 0.5 = good (equilateral) and >> 0.5 = bad (needle or
// flattened): a quarter of the circumscribed radius over the inscribed
// radius, since area here is the doubled triangle area.
func triangleQuality(p0, p1, p2 r3.Vector) float64 {
	length01 := p0.Sub(p1).Norm()
	length02 := p0.Sub(p2).Norm()
	length12 := p1.Sub(p2).Norm()
	perimeter := length01 + length02 + length12
	area := p1.Sub(p0).Cross(p2.Sub(p0)).Norm()
	inscribedRadius := 2 * area / perimeter
	circumscribedRadius := length01 * length02 * length12 / (4 * area)
	return circumscribedRadius / inscribedRadius
}

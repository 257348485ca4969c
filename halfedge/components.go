package halfedge

import (
	"github.com/golang/geo/r3"
)

// Collect the faces reachable from the seed without crossing a blocked or
// boundary half edge. The flood is deterministic given the seed.
func (m *Mesh) ConnectedComponent(faceID FaceID) map[FaceID]bool {
	return m.ConnectedComponentWithLimit(faceID, func(HalfEdgeID) bool { return false })
}

// Collect the faces reachable from the seed, treating half edges matched
// by the limit predicate as walls.
func (m *Mesh) ConnectedComponentWithLimit(faceID FaceID, limit func(HalfEdgeID) bool) map[FaceID]bool {
	component := map[FaceID]bool{faceID: true}
	toBeTested := []FaceID{faceID}

	for len(toBeTested) > 0 {
		testFace := toBeTested[len(toBeTested)-1]
		toBeTested = toBeTested[:len(toBeTested)-1]

		for _, halfEdgeID := range m.FaceHalfEdgeIDs(testFace) {
			if limit(halfEdgeID) {
				continue
			}
			if neighborID := m.WalkerFromHalfEdge(halfEdgeID).Twin().FaceID(); neighborID.IsValid() {
				if !component[neighborID] {
					component[neighborID] = true
					toBeTested = append(toBeTested, neighborID)
				}
			}
		}
	}

	return component
}

// Collect all connected components.
func (m *Mesh) ConnectedComponents() []map[FaceID]bool {
	return m.ConnectedComponentsWithLimit(func(HalfEdgeID) bool { return false })
}

// Collect all connected components under the limit predicate, seeded in
// ascending face order.
func (m *Mesh) ConnectedComponentsWithLimit(limit func(HalfEdgeID) bool) []map[FaceID]bool {
	components := make([]map[FaceID]bool, 0)
	covered := make(map[FaceID]bool, m.conn.numFaces())

	for _, faceID := range m.FaceIDs() {
		if covered[faceID] {
			continue
		}

		component := m.ConnectedComponentWithLimit(faceID, limit)
		for id := range component {
			covered[id] = true
		}
		components = append(components, component)
	}

	return components
}

// Construct a new mesh containing exactly the given faces, copying the
// attributes of their incident vertices. Identifiers carry over from the
// source mesh. Half edges twinned against faces outside the subset become
// boundary half edges.
func (m *Mesh) CloneSubset(faces map[FaceID]bool) *Mesh {
	conn := newConnectivity(len(faces), len(faces))

	for _, faceID := range m.FaceIDs() {
		if !faces[faceID] {
			continue
		}

		for _, halfEdgeID := range m.FaceHalfEdgeIDs(faceID) {
			walker := m.WalkerFromHalfEdge(halfEdgeID)

			record, _ := m.conn.halfEdge(halfEdgeID)
			conn.addHalfEdge(halfEdgeID, record)

			twinID := walker.TwinID()
			twinRecord, _ := m.conn.halfEdge(twinID)
			if twinRecord.face.IsValid() && !faces[twinRecord.face] {
				twinRecord.face = InvalidFaceID
				twinRecord.next = InvalidHalfEdgeID
			}
			conn.addHalfEdge(twinID, twinRecord)

			vertexID := walker.VertexID()
			conn.addVertex(vertexID, vertexRecord{halfEdge: InvalidHalfEdgeID})
		}

		conn.addFace(faceID, *m.conn.faces[faceID])
	}

	// Attach each vertex to an outgoing half edge within the subset.
	for _, halfEdgeID := range conn.halfEdgeIDs() {
		twinID := conn.halfEdges[halfEdgeID].twin
		conn.setVertexHalfEdge(conn.halfEdges[twinID].vertex, halfEdgeID)
	}

	subset := &Mesh{
		positions: make(map[VertexID]r3.Vector, conn.numVertices()),
		normals:   make(map[VertexID]r3.Vector),
		conn:      conn,
	}
	for _, vertexID := range conn.vertexIDs() {
		subset.positions[vertexID] = m.positions[vertexID]
		if normal, ok := m.normals[vertexID]; ok {
			subset.normals[vertexID] = normal
		}
	}

	return subset
}

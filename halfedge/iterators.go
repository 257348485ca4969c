package halfedge

// The iterator families materialize identifier snapshots, so a caller may
// mutate the mesh inside the loop. Entities created during the loop are not
// visited. Vertex, half edge and face snapshots are in ascending order; the
// one-ring and face snapshots follow ring and cycle order.

// Snapshot of all vertex identifiers.
func (m *Mesh) VertexIDs() []VertexID {
	return m.conn.vertexIDs()
}

// Snapshot of all half edge identifiers.
func (m *Mesh) HalfEdgeIDs() []HalfEdgeID {
	return m.conn.halfEdgeIDs()
}

// Snapshot of all face identifiers.
func (m *Mesh) FaceIDs() []FaceID {
	return m.conn.faceIDs()
}

// Snapshot of the unordered edges, one per twin pair, in canonical order.
func (m *Mesh) Edges() []Edge {
	seen := make(map[Edge]bool, m.conn.numHalfEdges()/2)
	edges := make([]Edge, 0, m.conn.numHalfEdges()/2)

	for _, halfEdgeID := range m.conn.halfEdgeIDs() {
		v0, v1 := m.OrderedEdgeVertices(halfEdgeID)
		edge := Edge{v0, v1}
		if !seen[edge] {
			seen[edge] = true
			edges = append(edges, edge)
		}
	}

	return edges
}

// Snapshot of the outgoing half edges of a vertex in one-ring order. At a
// boundary hole the iteration continues on the far side of the hole, so
// every outgoing half edge is visited exactly once.
func (m *Mesh) VertexHalfEdgeIDs(id VertexID) []HalfEdgeID {
	walker := m.WalkerFromVertex(id)
	start := walker.HalfEdgeID()
	if !start.IsValid() {
		return nil
	}

	ids := make([]HalfEdgeID, 0, 6)
	for {
		ids = append(ids, walker.HalfEdgeID())

		if walker.FaceID().IsValid() {
			walker.Previous().Twin()
		} else {
			walker.Twin()
			for walker.FaceID().IsValid() {
				walker.Next().Twin()
			}
			walker.Twin()
		}

		if walker.HalfEdgeID() == start {
			return ids
		}
	}
}

// Snapshot of the three half edges of a face in cycle order.
func (m *Mesh) FaceHalfEdgeIDs(id FaceID) []HalfEdgeID {
	walker := m.WalkerFromFace(id)
	start := walker.HalfEdgeID()
	if !start.IsValid() {
		return nil
	}

	ids := make([]HalfEdgeID, 0, 3)
	for {
		ids = append(ids, walker.HalfEdgeID())
		walker.Next()

		if walker.HalfEdgeID() == start {
			return ids
		}
	}
}

package halfedge

// Walker is a read-only cursor over the connectivity. It carries at most
// one current half edge; moving off the mesh (for example following the
// next of a boundary half edge) leaves the walker parked on an invalid
// handle, and every accessor then reports invalid.
type Walker struct {
	conn    *connectivity
	current HalfEdgeID
	record  halfEdgeRecord
}

// Construct a parked Walker.
func (m *Mesh) Walker() *Walker {
	walker := &Walker{conn: m.conn}
	return walker.set(InvalidHalfEdgeID)
}

// Construct a Walker on the outgoing half edge of a vertex.
func (m *Mesh) WalkerFromVertex(id VertexID) *Walker {
	return m.Walker().JumpToVertex(id)
}

// Construct a Walker on a half edge.
func (m *Mesh) WalkerFromHalfEdge(id HalfEdgeID) *Walker {
	return m.Walker().JumpToHalfEdge(id)
}

// Construct a Walker on the boundary cycle of a face.
func (m *Mesh) WalkerFromFace(id FaceID) *Walker {
	return m.Walker().JumpToFace(id)
}

func (w *Walker) set(id HalfEdgeID) *Walker {
	if record, ok := w.conn.halfEdge(id); ok {
		w.current = id
		w.record = record
	} else {
		w.current = InvalidHalfEdgeID
		w.record = halfEdgeRecord{
			vertex: InvalidVertexID,
			twin:   InvalidHalfEdgeID,
			next:   InvalidHalfEdgeID,
			face:   InvalidFaceID,
		}
	}
	return w
}

// Jump to the outgoing half edge of a vertex.
func (w *Walker) JumpToVertex(id VertexID) *Walker {
	return w.set(w.conn.vertexHalfEdge(id))
}

// Jump to a half edge.
func (w *Walker) JumpToHalfEdge(id HalfEdgeID) *Walker {
	return w.set(id)
}

// Jump to the half edge of a face.
func (w *Walker) JumpToFace(id FaceID) *Walker {
	return w.set(w.conn.faceHalfEdge(id))
}

// Move to the twin half edge.
func (w *Walker) Twin() *Walker {
	return w.set(w.record.twin)
}

// Move to the next half edge around the face.
func (w *Walker) Next() *Walker {
	return w.set(w.record.next)
}

// Move to the previous half edge around the face.
func (w *Walker) Previous() *Walker {
	return w.Next().Next()
}

// Get the vertex the current half edge points to.
func (w *Walker) VertexID() VertexID {
	if !w.current.IsValid() {
		return InvalidVertexID
	}
	return w.record.vertex
}

// Get the current half edge.
func (w *Walker) HalfEdgeID() HalfEdgeID {
	return w.current
}

// Get the face of the current half edge.
func (w *Walker) FaceID() FaceID {
	if !w.current.IsValid() {
		return InvalidFaceID
	}
	return w.record.face
}

// Get the twin of the current half edge without moving.
func (w *Walker) TwinID() HalfEdgeID {
	if !w.current.IsValid() {
		return InvalidHalfEdgeID
	}
	return w.record.twin
}

// Get the next of the current half edge without moving.
func (w *Walker) NextID() HalfEdgeID {
	if !w.current.IsValid() {
		return InvalidHalfEdgeID
	}
	return w.record.next
}

// Get the previous of the current half edge without moving.
func (w *Walker) PreviousID() HalfEdgeID {
	if next, ok := w.conn.halfEdge(w.record.next); ok {
		return next.next
	}
	return InvalidHalfEdgeID
}

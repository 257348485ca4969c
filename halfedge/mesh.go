package halfedge

import (
	"fmt"

	"github.com/golang/geo/r3"
)

// Manifold triangle mesh on a half edge connectivity store. A Mesh is a
// self-contained value: positions and optional normals shadow the vertex
// set in maps keyed by VertexID, and all structural mutation goes through
// the mesh methods.
type Mesh struct {
	positions map[VertexID]r3.Vector
	normals   map[VertexID]r3.Vector
	conn      *connectivity
}

// Construct a Mesh from index and attribute tuples. The indices reference
// positions in groups of three; normals, when present, align with the
// positions. Passing nil indices treats the positions as a triangle soup
// with one vertex per corner.
func NewMesh(indices []uint32, positions []float32, normals []float32) (*Mesh, error) {
	if len(positions) == 0 {
		return nil, ErrNoPositionsSpecified
	}
	if len(positions)%3 != 0 {
		return nil, fmt.Errorf("positions length %d not divisible by 3: %w", len(positions), ErrInvalidBuildInput)
	}
	if normals != nil && len(normals) != len(positions) {
		return nil, fmt.Errorf("normals length %d does not match positions: %w", len(normals), ErrInvalidBuildInput)
	}

	numVertices := len(positions) / 3

	if indices == nil {
		indices = make([]uint32, numVertices)
		for i := range indices {
			indices[i] = uint32(i)
		}
	}
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("indices length %d not divisible by 3: %w", len(indices), ErrInvalidBuildInput)
	}
	for _, index := range indices {
		if int(index) >= numVertices {
			return nil, fmt.Errorf("index %d out of range: %w", index, ErrInvalidBuildInput)
		}
	}

	mesh := &Mesh{
		positions: make(map[VertexID]r3.Vector, numVertices),
		normals:   make(map[VertexID]r3.Vector),
		conn:      newConnectivity(numVertices, len(indices)/3),
	}

	for i := 0; i < numVertices; i++ {
		position := r3.Vector{
			X: float64(positions[3*i]),
			Y: float64(positions[3*i+1]),
			Z: float64(positions[3*i+2]),
		}

		if normals != nil {
			normal := r3.Vector{
				X: float64(normals[3*i]),
				Y: float64(normals[3*i+1]),
				Z: float64(normals[3*i+2]),
			}
			mesh.createVertexWithNormal(position, normal)
		} else {
			mesh.createVertex(position)
		}
	}

	for i := 0; i < len(indices); i += 3 {
		v0 := VertexID(indices[i])
		v1 := VertexID(indices[i+1])
		v2 := VertexID(indices[i+2])
		mesh.conn.createFace(v0, v1, v2)
	}

	mesh.createTwinConnectivity()

	return mesh, nil
}

// Get the number of vertices.
func (m *Mesh) GetNumberOfVertices() int {
	return m.conn.numVertices()
}

// Get the number of half edges.
func (m *Mesh) GetNumberOfHalfEdges() int {
	return m.conn.numHalfEdges()
}

// Get the number of faces.
func (m *Mesh) GetNumberOfFaces() int {
	return m.conn.numFaces()
}

// Get the position of a vertex.
func (m *Mesh) GetPosition(id VertexID) r3.Vector {
	return m.positions[id]
}

// Set the position of a vertex.
func (m *Mesh) SetPosition(id VertexID, position r3.Vector) {
	m.positions[id] = position
}

// Move a vertex by an offset.
func (m *Mesh) MoveVertex(id VertexID, offset r3.Vector) {
	m.positions[id] = m.positions[id].Add(offset)
}

// Get the normal of a vertex.
func (m *Mesh) GetNormal(id VertexID) (r3.Vector, bool) {
	normal, ok := m.normals[id]
	return normal, ok
}

// Set the normal of a vertex.
func (m *Mesh) SetNormal(id VertexID, normal r3.Vector) {
	m.normals[id] = normal
}

// Translate the mesh by an offset.
func (m *Mesh) Translate(offset r3.Vector) {
	for id, position := range m.positions {
		m.positions[id] = position.Add(offset)
	}
}

// Scale the mesh uniformly about the origin.
func (m *Mesh) Scale(factor float64) {
	for id, position := range m.positions {
		m.positions[id] = position.Mul(factor)
	}
}

// Deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	clone := &Mesh{
		positions: make(map[VertexID]r3.Vector, len(m.positions)),
		normals:   make(map[VertexID]r3.Vector, len(m.normals)),
		conn:      m.conn.clone(),
	}
	for id, position := range m.positions {
		clone.positions[id] = position
	}
	for id, normal := range m.normals {
		clone.normals[id] = normal
	}
	return clone
}

// Export the face indices into the vertex sequence of Positions.
func (m *Mesh) Indices() []uint32 {
	order := make(map[VertexID]uint32, m.conn.numVertices())
	for i, id := range m.conn.vertexIDs() {
		order[id] = uint32(i)
	}

	indices := make([]uint32, 0, 3*m.conn.numFaces())
	for _, faceID := range m.conn.faceIDs() {
		for _, halfEdgeID := range m.FaceHalfEdgeIDs(faceID) {
			record, _ := m.conn.halfEdge(halfEdgeID)
			indices = append(indices, order[record.vertex])
		}
	}

	return indices
}

// Export the vertex positions in ascending vertex order.
func (m *Mesh) Positions() []float32 {
	positions := make([]float32, 0, 3*m.conn.numVertices())
	for _, id := range m.conn.vertexIDs() {
		position := m.positions[id]
		positions = append(positions, float32(position.X), float32(position.Y), float32(position.Z))
	}
	return positions
}

// Export the vertex normals in ascending vertex order, or nil when any
// vertex is missing a normal.
func (m *Mesh) Normals() []float32 {
	if len(m.normals) != m.conn.numVertices() {
		return nil
	}

	normals := make([]float32, 0, 3*m.conn.numVertices())
	for _, id := range m.conn.vertexIDs() {
		normal, ok := m.normals[id]
		if !ok {
			return nil
		}
		normals = append(normals, float32(normal.X), float32(normal.Y), float32(normal.Z))
	}
	return normals
}

// Create a vertex carrying a position.
func (m *Mesh) createVertex(position r3.Vector) VertexID {
	id := m.conn.createVertex()
	m.positions[id] = position
	return id
}

// Create a vertex carrying a position and a normal.
func (m *Mesh) createVertexWithNormal(position, normal r3.Vector) VertexID {
	id := m.createVertex(position)
	m.normals[id] = normal
	return id
}

// Drop the attribute entries of a vertex that no longer exists.
func (m *Mesh) removeVertexAttributes(id VertexID) {
	if !m.conn.hasVertex(id) {
		delete(m.positions, id)
		delete(m.normals, id)
	}
}

// Bind twins across all unpaired half edges. Interior partners are matched
// by their directed endpoints; a half edge left without a partner gets a
// synthesized boundary twin with no face.
func (m *Mesh) createTwinConnectivity() {
	ids := m.conn.halfEdgeIDs()
	shared := make(map[[2]VertexID]HalfEdgeID, len(ids))

	for _, halfEdgeID := range ids {
		record, _ := m.conn.halfEdge(halfEdgeID)
		if record.twin.IsValid() {
			continue
		}

		head := record.vertex
		tail := m.halfEdgeTail(halfEdgeID)

		if twinID, ok := shared[[2]VertexID{head, tail}]; ok {
			m.conn.setHalfEdgeTwin(halfEdgeID, twinID)
			delete(shared, [2]VertexID{head, tail})
		} else {
			shared[[2]VertexID{tail, head}] = halfEdgeID
		}
	}

	for _, halfEdgeID := range ids {
		record, ok := m.conn.halfEdge(halfEdgeID)
		if !ok || record.twin.IsValid() {
			continue
		}

		tail := m.halfEdgeTail(halfEdgeID)
		boundaryID := m.conn.createHalfEdge(tail, InvalidHalfEdgeID, InvalidFaceID)
		m.conn.setHalfEdgeTwin(halfEdgeID, boundaryID)
	}
}

// Get the origin vertex of a half edge lying on a face cycle.
func (m *Mesh) halfEdgeTail(id HalfEdgeID) VertexID {
	record, _ := m.conn.halfEdge(id)
	next, _ := m.conn.halfEdge(record.next)
	previous, _ := m.conn.halfEdge(next.next)
	return previous.vertex
}

package halfedge

import (
	"math"
)

// Builder assembles a Mesh from raw tuples or from a primitive shape.
type Builder struct {
	indices   []uint32
	positions []float32
	normals   []float32
}

// Construct an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Set the face indices.
func (b *Builder) WithIndices(indices []uint32) *Builder {
	b.indices = indices
	return b
}

// Set the vertex positions.
func (b *Builder) WithPositions(positions []float32) *Builder {
	b.positions = positions
	return b
}

// Set the vertex normals.
func (b *Builder) WithNormals(normals []float32) *Builder {
	b.normals = normals
	return b
}

// Build the mesh. Without indices the positions are consumed as a
// triangle soup with one vertex per corner.
func (b *Builder) Build() (*Mesh, error) {
	if b.positions == nil {
		return nil, ErrNoPositionsSpecified
	}
	return NewMesh(b.indices, b.positions, b.normals)
}

// Set the canonical unit icosahedron.
func (b *Builder) Icosahedron() *Builder {
	x := float32(0.525731112119133606)
	z := float32(0.850650808352039932)

	b.positions = []float32{
		-x, 0, z, x, 0, z, -x, 0, -z, x, 0, -z,
		0, z, x, 0, z, -x, 0, -z, x, 0, -z, -x,
		z, x, 0, -z, x, 0, z, -x, 0, -z, -x, 0,
	}
	b.indices = []uint32{
		0, 1, 4, 0, 4, 9, 9, 4, 5, 4, 8, 5, 4, 1, 8,
		8, 1, 10, 8, 10, 3, 5, 8, 3, 5, 3, 2, 2, 3, 7,
		7, 3, 10, 7, 10, 6, 7, 6, 11, 11, 6, 0, 0, 6, 1,
		6, 10, 1, 9, 11, 0, 9, 2, 11, 9, 5, 2, 7, 11, 2,
	}
	return b
}

// Set a cube spanning [-1, 1] with connected faces.
func (b *Builder) Cube() *Builder {
	b.positions = []float32{
		1, -1, -1,
		1, -1, 1,
		-1, -1, 1,
		-1, -1, -1,
		1, 1, -1,
		1, 1, 1,
		-1, 1, 1,
		-1, 1, -1,
	}
	b.indices = []uint32{
		0, 1, 2,
		0, 2, 3,
		4, 7, 6,
		4, 6, 5,
		0, 4, 5,
		0, 5, 1,
		1, 5, 6,
		1, 6, 2,
		2, 6, 7,
		2, 7, 3,
		4, 0, 3,
		4, 3, 7,
	}
	return b
}

// Set a cube spanning [-1, 1] as a triangle soup, one set of vertices per
// triangle, with no faces connected.
func (b *Builder) UnconnectedCube() *Builder {
	connected := NewBuilder().Cube()
	positions := make([]float32, 0, 9*len(connected.indices)/3)

	for _, index := range connected.indices {
		positions = append(positions,
			connected.positions[3*index],
			connected.positions[3*index+1],
			connected.positions[3*index+2],
		)
	}

	b.positions = positions
	b.indices = nil
	return b
}

// Set a two-triangle plane spanning [-1, 1] in the XZ plane.
func (b *Builder) Plane() *Builder {
	b.positions = []float32{
		-1, 0, -1,
		1, 0, -1,
		1, 0, 1,
		-1, 0, 1,
	}
	b.normals = []float32{
		0, 1, 0,
		0, 1, 0,
		0, 1, 0,
		0, 1, 0,
	}
	b.indices = []uint32{
		0, 2, 1,
		0, 3, 2,
	}
	return b
}

// Set an open cylinder along the X axis with the given subdivisions.
func (b *Builder) Cylinder(xSubdivisions, angleSubdivisions int) *Builder {
	positions := make([]float32, 0, 3*(xSubdivisions+1)*angleSubdivisions)
	indices := make([]uint32, 0, 6*xSubdivisions*angleSubdivisions)

	for i := 0; i <= xSubdivisions; i++ {
		x := float64(i) / float64(xSubdivisions)
		for j := 0; j < angleSubdivisions; j++ {
			angle := 2 * math.Pi * float64(j) / float64(angleSubdivisions)
			positions = append(positions, float32(x), float32(math.Cos(angle)), float32(math.Sin(angle)))
		}
	}

	for i := 0; i < xSubdivisions; i++ {
		for j := 0; j < angleSubdivisions; j++ {
			indices = append(indices,
				uint32(i*angleSubdivisions+j),
				uint32(i*angleSubdivisions+(j+1)%angleSubdivisions),
				uint32((i+1)*angleSubdivisions+(j+1)%angleSubdivisions),
			)
			indices = append(indices,
				uint32(i*angleSubdivisions+j),
				uint32((i+1)*angleSubdivisions+(j+1)%angleSubdivisions),
				uint32((i+1)*angleSubdivisions+j),
			)
		}
	}

	b.positions = positions
	b.indices = indices
	return b
}

package halfedge

import (
	"github.com/golang/geo/r3"
)

// Weld margin for raw triangle soups, looser than the mesh coincidence
// tolerance since soup corners come straight from exporters.
const soupWeldMargin = 1e-3

// Weld the positionally coincident corners of a triangle soup into an
// indexed tuple set. The first occurrence of each position survives and
// later occurrences reference it.
func IndicesFromPositions(positions []float32) ([]uint32, []float32) {
	numPoints := len(positions) / 3
	indices := make([]int, numPoints)
	for i := range indices {
		indices[i] = -1
	}

	positionsOut := make([]float32, 0, len(positions))

	for i := 0; i < numPoints; i++ {
		if indices[i] >= 0 {
			continue
		}

		p1 := r3.Vector{
			X: float64(positions[3*i]),
			Y: float64(positions[3*i+1]),
			Z: float64(positions[3*i+2]),
		}
		positionsOut = append(positionsOut, positions[3*i], positions[3*i+1], positions[3*i+2])

		current := len(positionsOut)/3 - 1
		indices[i] = current

		for j := i + 1; j < numPoints; j++ {
			p2 := r3.Vector{
				X: float64(positions[3*j]),
				Y: float64(positions[3*j+1]),
				Z: float64(positions[3*j+2]),
			}
			if p1.Sub(p2).Norm() < soupWeldMargin {
				indices[j] = current
			}
		}
	}

	out := make([]uint32, numPoints)
	for i, index := range indices {
		out[i] = uint32(index)
	}

	return out, positionsOut
}

package halfedge

import (
	"fmt"

	"github.com/golang/geo/r3"

	"github.com/ajcurley/trimesh"
	"github.com/ajcurley/trimesh/spatial"
)

// Splits allowed per initial face before refinement gives up.
const RefinementIterationFactor = 10

// Refine this mesh and the other so that every geometric intersection
// between the two surfaces is realized as vertices present in both
// meshes. Contacts classified onto a face interior insert a vertex with
// SplitFace, contacts on an edge with SplitEdge, and contacts on a vertex
// need no split; splitting continues until every contact classifies onto
// vertices on both sides.
func (m *Mesh) RefineAgainst(other *Mesh) error {
	limit := RefinementIterationFactor * (m.GetNumberOfFaces() + other.GetNumberOfFaces())

	for i := 0; i < limit; i++ {
		if !splitAtFirstIntersection(m, other) && !splitAtFirstIntersection(other, m) {
			return nil
		}
	}

	return fmt.Errorf("no convergence after %d splits: %w", limit, ErrRefinementDidNotConverge)
}

// Find the first face/edge contact between the meshes that still requires
// a split, apply the split to the face side, the edge side or both, and
// report whether anything changed.
func splitAtFirstIntersection(mesh1, mesh2 *Mesh) bool {
	faceIDs := mesh1.FaceIDs()
	if len(faceIDs) == 0 {
		return false
	}
	octree := newFaceOctree(mesh1, faceIDs)

	for _, edge := range mesh2.Edges() {
		p0 := mesh2.positions[edge[0]]
		p1 := mesh2.positions[edge[1]]
		query := edgeQueryBounds(p0, p1)

		for _, index := range octree.Query(query) {
			faceID := faceIDs[index]

			for _, intersection := range FindFaceEdgeIntersections(mesh1, faceID, mesh2, edge) {
				split := false

				switch intersection.ID1.Kind {
				case PrimitiveFace:
					mesh1.SplitFace(intersection.ID1.Face, intersection.Point)
					split = true
				case PrimitiveEdge:
					halfEdgeID := mesh1.ConnectingEdge(intersection.ID1.Edge[0], intersection.ID1.Edge[1])
					mesh1.SplitEdge(halfEdgeID, intersection.Point)
					split = true
				}

				if intersection.ID2.Kind == PrimitiveEdge {
					halfEdgeID := mesh2.ConnectingEdge(intersection.ID2.Edge[0], intersection.ID2.Edge[1])
					mesh2.SplitEdge(halfEdgeID, intersection.Point)
					split = true
				}

				if split {
					return true
				}
			}
		}
	}

	return false
}

// Query box around an edge, padded so grazing contacts within the
// tolerances are not culled.
func edgeQueryBounds(p0, p1 r3.Vector) trimesh.AABB {
	const padding = 1e-3
	bounds := trimesh.NewAABBFromPoints([]r3.Vector{p0, p1})
	halfSize := bounds.HalfSize.Add(r3.Vector{X: padding, Y: padding, Z: padding})
	return trimesh.NewAABB(bounds.Center, halfSize)
}

// Build an octree over the face triangles for candidate pruning.
func newFaceOctree(m *Mesh, faceIDs []FaceID) *spatial.Octree {
	points := make([]r3.Vector, 0, 3*len(faceIDs))
	triangles := make([]trimesh.Triangle, 0, len(faceIDs))

	for _, faceID := range faceIDs {
		triangle := m.GetFaceTriangle(faceID)
		triangles = append(triangles, triangle)
		points = append(points, triangle.P, triangle.Q, triangle.R)
	}

	bounds := trimesh.NewAABBFromPoints(points).Buffer(0.01)
	octree := spatial.NewOctree(bounds)

	for _, triangle := range triangles {
		octree.Insert(triangle)
	}

	return octree
}

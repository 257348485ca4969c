package halfedge

import (
	"fmt"

	"github.com/golang/geo/r3"
)

// Refine two meshes against each other and cut each along the resulting
// shared intersection curve. Both meshes are mutated by the refinement;
// the returned submeshes are clones.
func CutAtIntersection(mesh1, mesh2 *Mesh) ([]*Mesh, []*Mesh, error) {
	if err := mesh1.RefineAgainst(mesh2); err != nil {
		return nil, nil, err
	}

	meshes1 := mesh1.Cut(func(m *Mesh, halfEdgeID HalfEdgeID) bool {
		return IsAtIntersection(m, mesh2, halfEdgeID)
	})
	meshes2 := mesh2.Cut(func(m *Mesh, halfEdgeID HalfEdgeID) bool {
		return IsAtIntersection(m, mesh1, halfEdgeID)
	})

	return meshes1, meshes2, nil
}

// Stitch two overlapping meshes into a single manifold: refine both until
// the intersection is a shared set of edges, cut each mesh along the
// curve, keep the parts facing the reference point, and merge the parts
// under the vertex coincidence stitch map. The inputs are not mutated.
func Stitch(mesh1, mesh2 *Mesh, origin r3.Vector) (*Mesh, error) {
	clone1 := mesh1.Clone()
	clone2 := mesh2.Clone()

	meshes1, meshes2, err := CutAtIntersection(clone1, clone2)
	if err != nil {
		return nil, err
	}

	parts := make([]*Mesh, 0, len(meshes1)+len(meshes2))
	for _, submesh := range meshes1 {
		if meshIsInsideOther(submesh, clone2, origin) {
			parts = append(parts, submesh)
		}
	}
	for _, submesh := range meshes2 {
		if meshIsInsideOther(submesh, clone1, origin) {
			parts = append(parts, submesh)
		}
	}

	if len(parts) == 0 {
		return nil, fmt.Errorf("no parts face the reference point: %w", ErrSplitDidNotFormClosedCurve)
	}

	result := parts[0]
	for _, part := range parts[1:] {
		if err := result.MergeWith(part, FindStitches(result, part)); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// Map every vertex of the other mesh onto a positionally coincident
// vertex of the target mesh. Vertices without a coincident partner are
// not mapped.
func FindStitches(target, other *Mesh) map[VertexID]VertexID {
	stitches := make(map[VertexID]VertexID)

	for _, otherVertexID := range other.VertexIDs() {
		for _, targetVertexID := range target.VertexIDs() {
			if pointsCoincide(other.GetPosition(otherVertexID), target.GetPosition(targetVertexID)) {
				stitches[otherVertexID] = targetVertexID
				break
			}
		}
	}

	return stitches
}

// Return true if any face center of the mesh has an unobstructed segment
// to the reference point, meaning the part faces the point rather than
// being screened off by the other surface.
func meshIsInsideOther(m, other *Mesh, point r3.Vector) bool {
	for _, faceID := range m.FaceIDs() {
		if !meshBlocksView(other, m.GetFaceCenter(faceID), point) {
			return true
		}
	}
	return false
}

// Return true if any face of the mesh strictly pierces the segment.
func meshBlocksView(m *Mesh, point0, point1 r3.Vector) bool {
	for _, faceID := range m.FaceIDs() {
		if _, ok := m.FaceSegmentIntersection(faceID, point0, point1); ok {
			return true
		}
	}
	return false
}

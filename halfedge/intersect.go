package halfedge

import (
	"math"

	"github.com/golang/geo/r3"

	"github.com/ajcurley/trimesh"
)

// Kind of mesh primitive a geometric contact resolves to.
type PrimitiveKind int

const (
	PrimitiveVertex PrimitiveKind = iota + 1
	PrimitiveEdge
	PrimitiveFace
)

// Primitive identifies a vertex, an edge (by its endpoint vertices) or a
// face of one mesh.
type Primitive struct {
	Kind   PrimitiveKind
	Vertex VertexID
	Edge   [2]VertexID
	Face   FaceID
}

// Construct a vertex Primitive.
func VertexPrimitive(id VertexID) Primitive {
	return Primitive{Kind: PrimitiveVertex, Vertex: id}
}

// Construct an edge Primitive.
func EdgePrimitive(v0, v1 VertexID) Primitive {
	return Primitive{Kind: PrimitiveEdge, Edge: [2]VertexID{v0, v1}}
}

// Construct a face Primitive.
func FacePrimitive(id FaceID) Primitive {
	return Primitive{Kind: PrimitiveFace, Face: id}
}

// Intersection is a single geometric contact between a primitive of one
// mesh and a primitive of another.
type Intersection struct {
	ID1   Primitive
	ID2   Primitive
	Point r3.Vector
}

// Classify a point known to lie on the line of an edge onto the edge's
// endpoints or interior. Returns false when the point lies off the edge.
func (m *Mesh) FindEdgeIntersection(edge [2]VertexID, point r3.Vector) (Primitive, bool) {
	p0 := m.positions[edge[0]]
	p1 := m.positions[edge[1]]

	l0 := point.Sub(p0).Norm2()
	if l0 < trimesh.BarycentricTolerance {
		return VertexPrimitive(edge[0]), true
	}

	l1 := point.Sub(p1).Norm2()
	if l1 < trimesh.BarycentricTolerance {
		return VertexPrimitive(edge[1]), true
	}

	if l0+l1 < p1.Sub(p0).Norm2()+trimesh.BarycentricTolerance {
		return EdgePrimitive(edge[0], edge[1]), true
	}

	return Primitive{}, false
}

// Classify a point against a face using barycentric coordinates: outside,
// through a vertex, through an edge, or in the interior.
func (m *Mesh) FindFaceIntersection(faceID FaceID, point r3.Vector) (Primitive, bool) {
	v0, v1, v2 := m.OrderedFaceVertices(faceID)
	triangle := trimesh.NewTriangle(m.positions[v0], m.positions[v1], m.positions[v2])
	u, v, w := triangle.Barycentric(point)

	e := trimesh.BarycentricTolerance
	if u < -e || u > 1+e || v < -e || v > 1+e || w < -e || w > 1+e {
		return Primitive{}, false
	}

	switch {
	case u > 1-e:
		return VertexPrimitive(v0), true
	case v > 1-e:
		return VertexPrimitive(v1), true
	case w > 1-e:
		return VertexPrimitive(v2), true
	case u < e:
		return EdgePrimitive(v1, v2), true
	case v < e:
		return EdgePrimitive(v0, v2), true
	case w < e:
		return EdgePrimitive(v0, v1), true
	}

	return FacePrimitive(faceID), true
}

// Find the contacts between a face of one mesh and an edge of another,
// classifying each side onto its vertex, edge or face primitives. An edge
// lying in the face plane can touch the face at both endpoints, so up to
// two contacts come back.
func FindFaceEdgeIntersections(mesh1 *Mesh, faceID FaceID, mesh2 *Mesh, edge [2]VertexID) []Intersection {
	p0 := mesh2.positions[edge[0]]
	p1 := mesh2.positions[edge[1]]

	walker := mesh1.WalkerFromFace(faceID)
	planePoint := mesh1.positions[walker.VertexID()]
	planeNormal := mesh1.GetFaceNormal(faceID)

	segment := trimesh.NewSegment(p0, p1)
	kind, point := segment.IntersectPlane(planePoint, planeNormal)

	switch kind {
	case trimesh.PlaneSegment:
		if id1, ok := mesh1.FindFaceIntersection(faceID, p0); ok {
			first := Intersection{ID1: id1, ID2: VertexPrimitive(edge[0]), Point: p0}
			if id1b, ok := mesh1.FindFaceIntersection(faceID, p1); ok {
				second := Intersection{ID1: id1b, ID2: VertexPrimitive(edge[1]), Point: p1}
				return []Intersection{first, second}
			}
			return []Intersection{first}
		}
		if id1, ok := mesh1.FindFaceIntersection(faceID, p1); ok {
			return []Intersection{{ID1: id1, ID2: VertexPrimitive(edge[1]), Point: p1}}
		}
	case trimesh.PlaneP0:
		if id1, ok := mesh1.FindFaceIntersection(faceID, p0); ok {
			return []Intersection{{ID1: id1, ID2: VertexPrimitive(edge[0]), Point: p0}}
		}
	case trimesh.PlaneP1:
		if id1, ok := mesh1.FindFaceIntersection(faceID, p1); ok {
			return []Intersection{{ID1: id1, ID2: VertexPrimitive(edge[1]), Point: p1}}
		}
	case trimesh.PlaneCross:
		if id1, ok := mesh1.FindFaceIntersection(faceID, point); ok {
			if id2, ok := mesh2.FindEdgeIntersection(edge, point); ok {
				return []Intersection{{ID1: id1, ID2: id2, Point: point}}
			}
		}
	}

	return nil
}

// Return true if the other face's three vertices lie within the planar
// tolerance of this face's plane and either face's center lies inside the
// other face. A coplanar overlap that contains neither center is not
// detected and returns false.
func (m *Mesh) FaceAndFaceOverlaps(faceID FaceID, other *Mesh, otherFaceID FaceID) bool {
	normal := m.GetFaceNormal(faceID)
	walker := m.WalkerFromFace(faceID)
	planePoint := m.positions[walker.VertexID()]

	v0, v1, v2 := other.FaceVertices(otherFaceID)
	for _, vertexID := range []VertexID{v0, v1, v2} {
		if math.Abs(normal.Dot(other.positions[vertexID].Sub(planePoint))) >= trimesh.PlanarTolerance {
			return false
		}
	}

	if _, ok := m.FindFaceIntersection(faceID, other.GetFaceCenter(otherFaceID)); ok {
		return true
	}
	if _, ok := other.FindFaceIntersection(otherFaceID, m.GetFaceCenter(faceID)); ok {
		return true
	}

	return false
}

// Return the point where the segment from p0 to p1 strictly pierces the
// face. Contacts within the planar tolerance do not count.
func (m *Mesh) FaceSegmentIntersection(faceID FaceID, p0, p1 r3.Vector) (r3.Vector, bool) {
	return trimesh.NewSegment(p0, p1).IntersectsTriangle(m.GetFaceTriangle(faceID))
}

// Return true if a half edge of the first mesh lies on the geometric
// intersection curve with the second mesh: its endpoints coincide with an
// edge of the second mesh and the faces around the pair either stop at a
// boundary or cross rather than overlap.
func IsAtIntersection(mesh1, mesh2 *Mesh, halfEdgeID HalfEdgeID) bool {
	p10, p11 := mesh1.GetEdgePositions(halfEdgeID)

	for _, edge := range mesh2.Edges() {
		p20 := mesh2.positions[edge[0]]
		p21 := mesh2.positions[edge[1]]

		matched := (pointsCoincide(p10, p20) && pointsCoincide(p11, p21)) ||
			(pointsCoincide(p11, p20) && pointsCoincide(p10, p21))
		if !matched {
			continue
		}

		halfEdgeID2 := mesh2.ConnectingEdge(edge[0], edge[1])
		if mesh1.IsEdgeOnBoundary(halfEdgeID) || mesh2.IsEdgeOnBoundary(halfEdgeID2) {
			return true
		}

		walker1 := mesh1.WalkerFromHalfEdge(halfEdgeID)
		walker2 := mesh2.WalkerFromHalfEdge(halfEdgeID2)
		faceID10 := walker1.FaceID()
		faceID11 := walker1.Twin().FaceID()
		faceID20 := walker2.FaceID()
		faceID21 := walker2.Twin().FaceID()

		if (!mesh1.FaceAndFaceOverlaps(faceID10, mesh2, faceID20) &&
			!mesh1.FaceAndFaceOverlaps(faceID10, mesh2, faceID21)) ||
			(!mesh1.FaceAndFaceOverlaps(faceID11, mesh2, faceID20) &&
				!mesh1.FaceAndFaceOverlaps(faceID11, mesh2, faceID21)) {
			return true
		}
	}

	return false
}

func pointsCoincide(point1, point2 r3.Vector) bool {
	return point1.Sub(point2).Norm2() < trimesh.CoincidenceTolerance*trimesh.CoincidenceTolerance
}

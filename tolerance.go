package trimesh

// Tolerances shared by every geometric predicate in the module. All three
// are stated in single-precision units.
const (
	// BarycentricTolerance widens point-on-simplex classification so that
	// near-vertex and near-edge contacts snap to the vertex or edge.
	BarycentricTolerance = 1e-4

	// PlanarTolerance decides plane containment of points and segments.
	PlanarTolerance = 1e-4

	// CoincidenceTolerance decides whether two positions are the same point.
	CoincidenceTolerance = 1e-5
)

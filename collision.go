package trimesh

type IntersectsAABB interface {
	IntersectsAABB(AABB) bool
}

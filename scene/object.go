package scene

import "render-engine/core"

// Object is the capability set every primitive (sphere, plane, TriMesh)
// must implement (§3's "Primitive" tagged union), expressed as a Go
// interface per the "deep inheritance" design note instead of a virtual
// base class.
type Object interface {
	Intersect(r core.DiffRay, hit *core.HitInfo, mask core.SideMask) bool
	BoundingBox() core.AABB
}

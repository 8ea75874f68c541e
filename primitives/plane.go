package primitives

import (
	"render-engine/core"
	"render-engine/math"
)

// Plane is the unit square z=0, |x|,|y| <= 1 in local space (§4.D).
type Plane struct{}

func (Plane) BoundingBox() core.AABB {
	return core.AABB{Min: math.Vec3{X: -1, Y: -1, Z: -1e-4}, Max: math.Vec3{X: 1, Y: 1, Z: 1e-4}}
}

func (p Plane) Intersect(r core.DiffRay, hit *core.HitInfo, mask core.SideMask) bool {
	t, px, py, ok := planeHit(r.Center)
	if !ok {
		return false
	}
	frontHit := r.Center.Dir.Z <= 0
	if !mask.Accepts(frontHit) {
		return false
	}
	return hit.TryUpdate(t, func(h *core.HitInfo) {
		h.P = r.Center.At(t)
		h.N = math.Vec3{X: 0, Y: 0, Z: 1}
		h.FrontHit = frontHit
		h.UVW = math.Vec3{X: (px + 1) / 2, Y: (py + 1) / 2}
		if r.HasDiff {
			if _, qx, qy, ok := planeHit(r.DX); ok {
				h.DUVWDX = math.Vec3{X: (qx + 1) / 2, Y: (qy + 1) / 2}.Sub(h.UVW)
			}
			if _, qx, qy, ok := planeHit(r.DY); ok {
				h.DUVWDY = math.Vec3{X: (qx + 1) / 2, Y: (qy + 1) / 2}.Sub(h.UVW)
			}
		}
	})
}

// planeHit solves t = -o.z/d.z, rejecting near-parallel rays and misses
// outside the unit square.
func planeHit(r core.Ray) (t, x, y float32, ok bool) {
	if r.Dir.Z > -1e-7 && r.Dir.Z < 1e-7 {
		return 0, 0, 0, false
	}
	t = -r.Origin.Z / r.Dir.Z
	if t <= intersectionBias {
		return 0, 0, 0, false
	}
	p := r.At(t)
	if p.X < -1 || p.X > 1 || p.Y < -1 || p.Y > 1 {
		return 0, 0, 0, false
	}
	return t, p.X, p.Y, true
}

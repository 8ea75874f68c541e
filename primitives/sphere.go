// Package primitives implements the ray-vs-primitive intersectors
// (§4.D): the unit sphere, the unit plane, and triangle meshes
// accelerated by a BVH (§4.E).
package primitives

import (
	gomath "math"

	"render-engine/core"
	"render-engine/math"
)

const intersectionBias = 5e-3

// Sphere is the unit sphere (radius 1, centered at the origin) in local
// space, matching §4.D: rays reaching this intersector have already been
// converted to node-local coordinates by the scene graph.
type Sphere struct{}

func (Sphere) BoundingBox() core.AABB {
	return core.AABB{Min: math.Vec3{X: -1, Y: -1, Z: -1}, Max: math.Vec3{X: 1, Y: 1, Z: 1}}
}

func (s Sphere) Intersect(r core.DiffRay, hit *core.HitInfo, mask core.SideMask) bool {
	t, ok := sphereHit(r.Center)
	if !ok {
		return false
	}
	p := r.Center.At(t)
	n := p // unit sphere: normal == position
	frontHit := n.Dot(r.Center.Dir) <= 0
	if !mask.Accepts(frontHit) {
		return false
	}
	return hit.TryUpdate(t, func(h *core.HitInfo) {
		h.P = p
		h.N = n
		h.FrontHit = frontHit
		h.UVW = sphereUV(p)
		if r.HasDiff {
			if tx, ok := sphereHit(r.DX); ok {
				px := r.DX.At(tx)
				h.DUVWDX = sphereUV(px).Sub(h.UVW)
			}
			if ty, ok := sphereHit(r.DY); ok {
				py := r.DY.At(ty)
				h.DUVWDY = sphereUV(py).Sub(h.UVW)
			}
		}
	})
}

// sphereHit solves ||o + t*d||^2 = 1 and returns the smallest t greater
// than the intersection bias, or ok=false on a miss.
func sphereHit(r core.Ray) (float32, bool) {
	o, d := r.Origin, r.Dir
	a := d.Dot(d)
	b := 2 * o.Dot(d)
	c := o.Dot(o) - 1
	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, false
	}
	sq := float32(gomath.Sqrt(float64(disc)))
	t0 := (-b - sq) / (2 * a)
	t1 := (-b + sq) / (2 * a)
	if t0 > intersectionBias {
		return t0, true
	}
	if t1 > intersectionBias {
		return t1, true
	}
	return 0, false
}

func sphereUV(p math.Vec3) math.Vec3 {
	u := 0.5 - float32(gomath.Atan2(float64(p.X), float64(p.Y)))/(2*float32(gomath.Pi))
	v := 0.5 + float32(gomath.Asin(float64(clampf(p.Z/p.Length(), -1, 1))))/float32(gomath.Pi)
	return math.Vec3{X: u, Y: v, Z: 0}
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

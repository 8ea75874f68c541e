package core

import "render-engine/math"

// AABB is an axis-aligned bounding box. The empty box is represented by
// Min > Max in every axis (matching the teacher's scene.AABB shape, but
// with the empty-box convention spec'd for scene and BVH bounds rather
// than the teacher's "zero value" convention).
type AABB struct {
	Min, Max math.Vec3
}

const emptyBound = 1e30

// EmptyAABB returns an invalid box (Min > Max) suitable as the identity
// element for Union.
func EmptyAABB() AABB {
	return AABB{
		Min: math.Vec3{X: emptyBound, Y: emptyBound, Z: emptyBound},
		Max: math.Vec3{X: -emptyBound, Y: -emptyBound, Z: -emptyBound},
	}
}

func (b AABB) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// UnionPoint grows b to include p. Idempotent: unioning a point already
// inside leaves b unchanged.
func (b AABB) UnionPoint(p math.Vec3) AABB {
	return AABB{
		Min: math.Vec3{X: fmin(b.Min.X, p.X), Y: fmin(b.Min.Y, p.Y), Z: fmin(b.Min.Z, p.Z)},
		Max: math.Vec3{X: fmax(b.Max.X, p.X), Y: fmax(b.Max.Y, p.Y), Z: fmax(b.Max.Z, p.Z)},
	}
}

// Union is commutative and idempotent over the point sets the two boxes
// represent.
func (b AABB) Union(o AABB) AABB {
	if o.IsEmpty() {
		return b
	}
	if b.IsEmpty() {
		return o
	}
	return AABB{
		Min: math.Vec3{X: fmin(b.Min.X, o.Min.X), Y: fmin(b.Min.Y, o.Min.Y), Z: fmin(b.Min.Z, o.Min.Z)},
		Max: math.Vec3{X: fmax(b.Max.X, o.Max.X), Y: fmax(b.Max.Y, o.Max.Y), Z: fmax(b.Max.Z, o.Max.Z)},
	}
}

func (b AABB) Center() math.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

func (b AABB) Extent() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// LongestAxis returns 0/1/2 for X/Y/Z, the axis of largest extent. Ties
// break toward the lower-numbered axis (X over Y over Z).
func (b AABB) LongestAxis() int {
	e := b.Extent()
	axis := 0
	best := e.X
	if e.Y > best {
		axis, best = 1, e.Y
	}
	if e.Z > best {
		axis = 2
	}
	return axis
}

const intersectBias = 1e-7

// Intersect returns the entry/exit ray parameters (tmin, tmax) for the
// slab test, and whether the ray hits the box at all within [0, tmax0].
// Axes whose direction component has |dir| < 1e-7 are not divided by:
// if the origin lies inside that axis's slab the axis contributes
// (-inf, +inf), otherwise the ray misses the box.
func (b AABB) Intersect(r Ray, tmax0 float32) (tmin, tmax float32, hit bool) {
	tmin, tmax = 0, tmax0
	mn := [3]float32{b.Min.X, b.Min.Y, b.Min.Z}
	mx := [3]float32{b.Max.X, b.Max.Y, b.Max.Z}
	o := [3]float32{r.Origin.X, r.Origin.Y, r.Origin.Z}
	d := [3]float32{r.Dir.X, r.Dir.Y, r.Dir.Z}
	for axis := 0; axis < 3; axis++ {
		if d[axis] > -intersectBias && d[axis] < intersectBias {
			if o[axis] < mn[axis] || o[axis] > mx[axis] {
				return tmin, tmax, false
			}
			continue
		}
		invD := 1 / d[axis]
		t0 := (mn[axis] - o[axis]) * invD
		t1 := (mx[axis] - o[axis]) * invD
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		if t0 > tmin {
			tmin = t0
		}
		if t1 < tmax {
			tmax = t1
		}
		if tmin > tmax {
			return tmin, tmax, false
		}
	}
	return tmin, tmax, true
}

func fmin(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func fmax(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

package primitives

import (
	"testing"

	"render-engine/core"
	"render-engine/math"
)

func TestSphereIntersectFrontHit(t *testing.T) {
	s := Sphere{}
	ray := core.DiffRay{Center: core.Ray{Origin: math.Vec3{X: 0, Y: 0, Z: 5}, Dir: math.Vec3{X: 0, Y: 0, Z: -1}}}
	hit := core.NewHitInfo()

	if !s.Intersect(ray, &hit, core.SideFront) {
		t.Fatal("expected a hit on the unit sphere from outside")
	}
	if hit.Z < 3.9 || hit.Z > 4.1 {
		t.Errorf("expected t~4, got %v", hit.Z)
	}
	if !hit.FrontHit {
		t.Error("expected a front-facing hit from outside the sphere")
	}
	wantN := math.Vec3{X: 0, Y: 0, Z: 1}
	if hit.N.Sub(wantN).Length() > 1e-4 {
		t.Errorf("expected normal %v, got %v", wantN, hit.N)
	}
}

func TestSphereIntersectMiss(t *testing.T) {
	s := Sphere{}
	ray := core.DiffRay{Center: core.Ray{Origin: math.Vec3{X: 5, Y: 5, Z: 5}, Dir: math.Vec3{X: 0, Y: 0, Z: -1}}}
	hit := core.NewHitInfo()
	if s.Intersect(ray, &hit, core.SideBoth) {
		t.Error("expected no hit for a ray that misses the unit sphere entirely")
	}
}

func TestSphereIntersectRespectsSideMask(t *testing.T) {
	s := Sphere{}
	ray := core.DiffRay{Center: core.Ray{Origin: math.Vec3{X: 0, Y: 0, Z: 5}, Dir: math.Vec3{X: 0, Y: 0, Z: -1}}}
	hit := core.NewHitInfo()
	if s.Intersect(ray, &hit, core.SideBack) {
		t.Error("expected SideBack to reject a front-facing hit")
	}
}

func TestSphereBoundingBox(t *testing.T) {
	box := Sphere{}.BoundingBox()
	want := math.Vec3{X: -1, Y: -1, Z: -1}
	if box.Min.Sub(want).Length() > 1e-6 {
		t.Errorf("expected min %v, got %v", want, box.Min)
	}
}

package scene

import (
	"testing"

	"render-engine/math"
)

func TestCameraComputeBasisOrthonormal(t *testing.T) {
	c := NewCamera(math.Vec3{}, math.Vec3{X: 0, Y: 0, Z: -1}, math.Vec3{X: 0, Y: 1, Z: 0}, 60, 64, 64)

	if d := c.X.Dot(c.Y); d > 1e-4 || d < -1e-4 {
		t.Errorf("expected X.Y ~ 0, got %v", d)
	}
	if d := c.X.Dot(c.Z); d > 1e-4 || d < -1e-4 {
		t.Errorf("expected X.Z ~ 0, got %v", d)
	}
	if l := c.Z.Length(); l < 0.99 || l > 1.01 {
		t.Errorf("expected unit-length Z, got %v", l)
	}
}

func TestCameraGenerateRayCentered(t *testing.T) {
	c := NewCamera(math.Vec3{}, math.Vec3{X: 0, Y: 0, Z: -1}, math.Vec3{X: 0, Y: 1, Z: 0}, 60, 64, 64)
	ray := c.GenerateRay(32, 32)

	if ray.Center.Dir.Z >= 0 {
		t.Errorf("expected the center ray to point roughly along -Z, got %v", ray.Center.Dir)
	}
	if !ray.HasDiff {
		t.Error("expected GenerateRay to populate differential offsets")
	}
}

func TestCameraApertureOffsetNoopWithoutDOF(t *testing.T) {
	c := NewCamera(math.Vec3{}, math.Vec3{X: 0, Y: 0, Z: -1}, math.Vec3{X: 0, Y: 1, Z: 0}, 60, 64, 64)
	center := c.rayThroughScreen(32, 32)
	out := c.ApertureOffset(center, 0.5, 0.5)
	if out.Origin.Sub(center.Origin).Length() > 1e-6 {
		t.Error("expected ApertureOffset to be a no-op when DOFRadius is 0")
	}
}

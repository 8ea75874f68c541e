package scene

import (
	"testing"

	"render-engine/math"
)

func TestTransformTranslateRoundTrip(t *testing.T) {
	tr := NewTransform().Translate(math.Vec3{X: 1, Y: 2, Z: 3})
	p := math.Vec3{X: 0, Y: 0, Z: 0}
	world := tr.TransformFrom(p)
	if world.Sub(math.Vec3{X: 1, Y: 2, Z: 3}).Length() > 1e-6 {
		t.Errorf("expected translated point (1,2,3), got %v", world)
	}
	back := tr.TransformTo(world)
	if back.Sub(p).Length() > 1e-6 {
		t.Errorf("expected TransformTo to invert TransformFrom, got %v", back)
	}
}

func TestTransformScaleThenTranslate(t *testing.T) {
	tr := NewTransform().Scale(math.Vec3{X: 2, Y: 2, Z: 2}).Translate(math.Vec3{X: 0, Y: 0, Z: 5})
	world := tr.TransformFrom(math.Vec3{X: 1, Y: 0, Z: 0})
	want := math.Vec3{X: 2, Y: 0, Z: 5}
	if world.Sub(want).Length() > 1e-5 {
		t.Errorf("expected local scale applied before the world translation, got %v want %v", world, want)
	}
}

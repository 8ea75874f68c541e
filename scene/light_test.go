package scene

import (
	"testing"

	"render-engine/core"
	"render-engine/math"
	"render-engine/sampler"
)

func TestLightIsAmbientAndPhotonSource(t *testing.T) {
	amb := &Light{Kind: LightAmbient}
	if !amb.IsAmbient() {
		t.Error("expected an ambient light to report IsAmbient")
	}
	if amb.IsPhotonSource() {
		t.Error("expected an ambient light not to be a photon source")
	}

	pt := &Light{Kind: LightPoint}
	if pt.IsAmbient() {
		t.Error("expected a point light not to be ambient")
	}
	if !pt.IsPhotonSource() {
		t.Error("expected a point light to be a photon source")
	}

	dir := &Light{Kind: LightDirectional}
	if dir.IsPhotonSource() {
		t.Error("expected a directional light not to be a photon source")
	}
}

func TestLightIlluminatePointFalloff(t *testing.T) {
	s := NewScene()
	l := &Light{Kind: LightPoint, Position: math.Vec3{X: 0, Y: 0, Z: 2}, Intensity: core.Color{R: 4, G: 4, B: 4, A: 1}}

	c := l.Illuminate(s, math.Vec3{}, math.Vec3{X: 0, Y: 0, Z: 1}, sampler.NewHalton(1))
	want := float32(4) / 4 // falloff = 1/dist^2 = 1/4
	if c.R < want-0.01 || c.R > want+0.01 {
		t.Errorf("expected intensity ~%v after inverse-square falloff, got %v", want, c.R)
	}
}

func TestLightIlluminateAmbientIgnoresGeometry(t *testing.T) {
	s := NewScene()
	l := &Light{Kind: LightAmbient, Intensity: core.Color{R: 0.1, G: 0.1, B: 0.1, A: 1}}
	c := l.Illuminate(s, math.Vec3{}, math.Vec3{}, sampler.NewHalton(1))
	if c.R != 0.1 {
		t.Errorf("expected ambient light to return its intensity unconditionally, got %v", c.R)
	}
}

func TestLightRandomPhotonSplitsIntensityBySourceCount(t *testing.T) {
	l := &Light{Kind: LightPoint, Intensity: core.Color{R: 10, G: 10, B: 10, A: 1}}
	_, power := l.RandomPhoton(sampler.NewHalton(1), 5)
	if power.R != 2 {
		t.Errorf("expected intensity/numSources = 2, got %v", power.R)
	}
}

package photon

import (
	"testing"

	"render-engine/core"
	"render-engine/math"
	"render-engine/primitives"
	"render-engine/sampler"
	"render-engine/scene"
)

func sphereScene() *scene.Scene {
	s := scene.NewScene()
	mtl := scene.NewDiffuseMaterial("wall", core.Color{R: 0.8, G: 0.8, B: 0.8, A: 1})
	mtlIdx := s.AddMaterial(mtl)
	objIdx := s.AddObject(primitives.Sphere{})

	node := scene.NewNode("sphere")
	node.ObjectIndex = objIdx
	node.MaterialIndex = mtlIdx
	s.Root.AddChild(node)

	s.AddLight(&scene.Light{Kind: scene.LightPoint, Position: math.Vec3{X: 0, Y: 0, Z: 1.5}, Intensity: core.Color{R: 100, G: 100, B: 100, A: 1}})
	return s
}

func TestEmitGlobalPassStoresAtDiffuseHits(t *testing.T) {
	s := sphereScene()
	rng := sampler.NewXorshift128(42)

	res := Emit(s, 5, 5, rng, false)
	if len(res.Photons) == 0 {
		t.Fatal("expected photons stored from a point light illuminating a diffuse sphere")
	}
	if res.Emitted == 0 {
		t.Fatal("expected a nonzero emitted-ray count")
	}
}

// The caustics-only pass's store condition (a photon surface hit preceded
// by a non-diffuse bounce) is exercised indirectly through SampleBounce's
// lobe selection (see scene/material_test.go) rather than by driving a
// full Emit() caustics pass to convergence: like the original renderer's
// caustics loop, Emit never terminates on a scene with no caustic-capable
// (specular/refractive) geometry in the light path, so a scene built
// purely to prove "it stores nothing here" would hang instead of
// returning an empty result. See DESIGN.md for the grounding note.

func TestEmitNoPhotonSourcesReturnsEmpty(t *testing.T) {
	s := scene.NewScene()
	res := Emit(s, 20, 5, sampler.NewHalton(1), false)
	if len(res.Photons) != 0 || res.Emitted != 0 {
		t.Errorf("expected empty result with no photon sources, got %+v", res)
	}
}

func TestBuildFromEmissionRescalesPower(t *testing.T) {
	raw := []Photon{NewPhoton(math.Vec3{}, core.Color{R: 1, G: 1, B: 1, A: 1}, math.Vec3{X: 0, Y: 0, Z: -1})}
	m := BuildFromEmission(EmitResult{Photons: raw, Emitted: 4})
	if m.Photons[1].Power > 0.26 || m.Photons[1].Power < 0.24 {
		t.Errorf("expected power scaled by 1/emitted=0.25, got %v", m.Photons[1].Power)
	}
}

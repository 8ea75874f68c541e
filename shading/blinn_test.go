package shading

import (
	"testing"

	"render-engine/core"
	"render-engine/math"
	"render-engine/sampler"
	"render-engine/scene"
)

func emptyScene() *scene.Scene {
	s := scene.NewScene()
	s.Camera = scene.NewCamera(math.Vec3{}, math.Vec3{X: 0, Y: 0, Z: -1}, math.Vec3{X: 0, Y: 1, Z: 0}, 60, 64, 64)
	return s
}

func TestShadeEmissionOnlyNoLightsNoBounce(t *testing.T) {
	s := emptyScene()
	m := scene.NewDiffuseMaterial("emitter", core.Color{})
	m.Emission = scene.ColorMap{Color: core.Color{R: 2, G: 1, B: 0.5, A: 1}}
	s.AddMaterial(m)

	hit := core.NewHitInfo()
	hit.N = math.Vec3{X: 0, Y: 0, Z: 1}
	hit.FrontHit = true
	hit.MtlID = 0

	ray := core.NewDiffRay(core.Ray{Origin: math.Vec3{X: 0, Y: 0, Z: 5}, Dir: math.Vec3{X: 0, Y: 0, Z: -1}})
	rng := sampler.NewHalton(1)

	out := Shade(s, ray, &hit, 0, false, rng, nil)
	if out.R != 2 || out.G != 1 || out.B != 0.5 {
		t.Errorf("expected pure emission %v, got %v", core.Color{R: 2, G: 1, B: 0.5}, out)
	}
}

func TestShadeDirectLightingPointLight(t *testing.T) {
	s := emptyScene()
	m := scene.NewDiffuseMaterial("wall", core.Color{R: 0.5, G: 0.5, B: 0.5, A: 1})
	s.AddMaterial(m)
	s.AddLight(&scene.Light{Kind: scene.LightPoint, Position: math.Vec3{X: 0, Y: 0, Z: 3}, Intensity: core.Color{R: 10, G: 10, B: 10, A: 1}})

	hit := core.NewHitInfo()
	hit.N = math.Vec3{X: 0, Y: 0, Z: 1}
	hit.FrontHit = true
	hit.MtlID = 0
	hit.P = math.Vec3{X: 0, Y: 0, Z: 0}

	ray := core.NewDiffRay(core.Ray{Origin: math.Vec3{X: 0, Y: 0, Z: 5}, Dir: math.Vec3{X: 0, Y: 0, Z: -1}})
	out := Shade(s, ray, &hit, 0, false, sampler.NewHalton(1), nil)
	if out.R <= 0 {
		t.Errorf("expected a lit surface facing a visible point light to get nonzero radiance, got %v", out.R)
	}
}

func TestShadeSkipsBackfaceLights(t *testing.T) {
	s := emptyScene()
	m := scene.NewDiffuseMaterial("wall", core.Color{R: 0.5, G: 0.5, B: 0.5, A: 1})
	s.AddMaterial(m)
	// a light directly behind the surface contributes nothing (cosNL <= 0).
	s.AddLight(&scene.Light{Kind: scene.LightPoint, Position: math.Vec3{X: 0, Y: 0, Z: -3}, Intensity: core.Color{R: 10, G: 10, B: 10, A: 1}})

	hit := core.NewHitInfo()
	hit.N = math.Vec3{X: 0, Y: 0, Z: 1}
	hit.FrontHit = true
	hit.MtlID = 0

	ray := core.NewDiffRay(core.Ray{Origin: math.Vec3{X: 0, Y: 0, Z: 5}, Dir: math.Vec3{X: 0, Y: 0, Z: -1}})
	out := Shade(s, ray, &hit, 0, false, sampler.NewHalton(1), nil)
	if out.R != 0 {
		t.Errorf("expected no contribution from a light behind the surface, got %v", out.R)
	}
}

func TestLinearToSRGBMonotonic(t *testing.T) {
	prev := float32(-1)
	for _, v := range []float32{0, 0.001, 0.01, 0.1, 0.5, 1} {
		c := LinearToSRGB(core.Color{R: v, G: v, B: v, A: 1})
		if c.R < prev {
			t.Errorf("sRGB encode not monotonic at v=%v: got %v after %v", v, c.R, prev)
		}
		prev = c.R
	}
}

func TestLinearToSRGBBounds(t *testing.T) {
	zero := LinearToSRGB(core.Color{})
	if zero.R != 0 || zero.G != 0 || zero.B != 0 {
		t.Errorf("expected black to map to black, got %v", zero)
	}
	one := LinearToSRGB(core.Color{R: 1, G: 1, B: 1, A: 1})
	tol := float32(0.001)
	if one.R < 1-tol || one.R > 1+tol {
		t.Errorf("expected white to map to ~1, got %v", one.R)
	}
}

func TestBeerLambertDecaysWithDistance(t *testing.T) {
	sigma := core.Color{R: 1, G: 1, B: 1}
	near := beerLambert(core.ColorWhite, sigma, 0.1)
	far := beerLambert(core.ColorWhite, sigma, 10)
	if far.R >= near.R {
		t.Errorf("expected attenuation to increase with distance: near=%v far=%v", near.R, far.R)
	}
	if far.R < 0 {
		t.Errorf("attenuated color must stay non-negative, got %v", far.R)
	}
}

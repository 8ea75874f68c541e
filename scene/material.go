package scene

import (
	gomath "math"

	"render-engine/core"
	"render-engine/math"
	"render-engine/sampler"
)

// ColorMap is a (base color, optional texture) pair (§3), sampled with
// ray-differential footprint when available. Texture is nil when the
// material channel is a flat color.
type ColorMap struct {
	Color   core.Color
	Texture TextureSampler
}

func flatColor(c core.Color) ColorMap { return ColorMap{Color: c} }

// Material holds the Blinn path-tracing parameter set (§3/§4.I),
// replacing the teacher's Cook-Torrance PBR model (materials/material.go)
// with the set this spec's shader actually consumes.
type Material struct {
	Name string

	Diffuse    ColorMap
	Specular   ColorMap
	Reflection ColorMap
	Refraction ColorMap
	Emission   ColorMap

	Absorption core.Color // bulk absorption sigma_a, Beer-Lambert

	SpecularGlossiness   float32 // Blinn exponent n_s
	ReflectionGlossiness float32 // <= 0 => sharp mirror (presets use -1), > 0 => rough
	RefractionGlossiness float32
	IOR                  float32

	RussianRouletteKill float32
}

// DefaultMaterial returns a plain white diffuse-only material, the
// Blinn-model equivalent of the teacher's DefaultMaterial() preset.
func DefaultMaterial() *Material {
	return &Material{
		Name:                 "Default",
		Diffuse:              flatColor(core.ColorWhite),
		SpecularGlossiness:   20,
		ReflectionGlossiness: -1,
		RefractionGlossiness: -1,
		IOR:                  1,
		RussianRouletteKill:  0.1,
	}
}

// NewDiffuseMaterial creates a pure-diffuse material with the given
// albedo, matching the teacher's NewMaterial(name, albedo) preset shape.
func NewDiffuseMaterial(name string, albedo core.Color) *Material {
	m := DefaultMaterial()
	m.Name = name
	m.Diffuse = flatColor(albedo)
	return m
}

// NewMirrorMaterial creates a sharp mirror preset, the Blinn-model
// analogue of the teacher's MetalMaterial().
func NewMirrorMaterial(name string, reflectance core.Color) *Material {
	m := DefaultMaterial()
	m.Name = name
	m.Diffuse = flatColor(core.Color{})
	m.Reflection = flatColor(reflectance)
	m.ReflectionGlossiness = -1
	return m
}

// NewGlassMaterial creates a dielectric preset, the Blinn-model analogue
// of the teacher's GlassMaterial().
func NewGlassMaterial(name string, ior float32) *Material {
	m := DefaultMaterial()
	m.Name = name
	m.Diffuse = flatColor(core.Color{})
	m.Reflection = flatColor(core.ColorWhite)
	m.Refraction = flatColor(core.ColorWhite)
	m.ReflectionGlossiness = -1
	m.RefractionGlossiness = -1
	m.IOR = ior
	return m
}

// IsPhotonSurface reports whether a photon striking this material should
// be stored in the global (bounce != 0) or caustics (bounce != 0 and at
// least one non-diffuse bounce already happened) map — true iff the
// material is ideal diffuse, i.e. carries no reflection or refraction
// component (§4.K).
func (m *Material) IsPhotonSurface() bool {
	return m.Reflection.Color.IsBlack() && m.Refraction.Color.IsBlack()
}

// IsSharpReflection reports the "roughness ~ 0 => mirror" sentinel.
func (m *Material) IsSharpReflection() bool {
	return m.ReflectionGlossiness <= 0
}

func (m *Material) IsSharpRefraction() bool {
	return m.RefractionGlossiness <= 0
}

// Lobe identifies which BxDF component SampleBounce importance-sampled.
type Lobe int

const (
	LobeRefraction Lobe = iota
	LobeReflection
	LobeSpecular
	LobeDiffuse
)

// SampleBounce importance-samples one lobe of this material's BxDF by
// the L-infinity luma of the refraction/reflection/specular/diffuse
// colors, scaled by Fresnel reflectance/transmittance (§4.I step 5,
// §4.K's RandomPhotonBounce). It is shared between the eye-ray indirect
// bounce and forward photon scattering, since both need the identical
// lobe-selection and BxDF/PDF cancellation behavior. rayDir is the
// incoming ray direction (pointing toward the surface); n is the
// geometric/shading normal as reported by the intersector. Returns
// ok=false when every lobe weight is zero (the photon or path
// terminates).
func (m *Material) SampleBounce(rayDir, n math.Vec3, frontHit bool, rng sampler.Sampler) (dir math.Vec3, weight core.Color, lobe Lobe, ok bool) {
	v := rayDir.Negate().Normalize()
	sn := n
	if sn.Dot(v) < 0 {
		sn = sn.Negate()
	}
	cosI := sn.Dot(v)
	if cosI < 1e-4 {
		cosI = 1e-4
	}

	eta := float32(1)
	if m.IOR > 0 {
		if frontHit {
			eta = 1 / m.IOR
		} else {
			eta = m.IOR
		}
	}

	f0 := (1 - eta) / (1 + eta)
	f0 *= f0
	fresnel := f0 + (1-f0)*pow5(1-cosI)

	sin2T := eta * eta * (1 - cosI*cosI)
	tir := sin2T > 1
	var refractDir math.Vec3
	if !tir {
		cosT := sqrt32(1 - sin2T)
		refractDir = rayDir.Mul(eta).Add(sn.Mul(eta*cosI - cosT)).Normalize()
	}
	reflectDir := sn.Mul(2 * cosI).Sub(v).Normalize()

	// The refraction color splits into a reflected share and a
	// transmitted share by Fresnel reflectance; the reflection color
	// itself is never attenuated by Fresnel (it isn't the dielectric
	// interface's transmission, so there's nothing for it to lose),
	// matching MtlBlinn_PathTracing.cpp's sampleReflection/sampleRefraction.
	refrColor := m.Refraction.Color
	reflColor := m.Reflection.Color
	var sampleRefraction, sampleReflection core.Color
	if tir {
		sampleRefraction = core.Color{}
		sampleReflection = reflColor.Add(refrColor)
	} else {
		sampleRefraction = refrColor.Scale(1 - fresnel)
		sampleReflection = reflColor.Add(refrColor.Scale(fresnel))
	}

	wRefr := sampleRefraction.Max()
	wRefl := sampleReflection.Max()
	wSpec := m.Specular.Color.Max()
	wDiff := m.Diffuse.Color.Max()
	total := wRefr + wRefl + wSpec + wDiff
	if total <= 1e-6 {
		return math.Vec3{}, core.Color{}, LobeDiffuse, false
	}

	u := rng.Get1f()
	switch {
	case u < wRefr/total:
		p := wRefr / total
		if m.IsSharpRefraction() {
			dir = refractDir
		} else {
			u1, u2 := rng.Get2f()
			dir = sampler.TransformToLocalFrame(refractDir, sampler.CosWeightedHemisphere(u1, u2))
		}
		weight = sampleRefraction.Scale(1 / p)
		lobe, ok = LobeRefraction, true
	case u < (wRefr+wRefl)/total:
		p := wRefl / total
		if m.IsSharpReflection() {
			dir = reflectDir
		} else {
			u1, u2 := rng.Get2f()
			dir = sampler.TransformToLocalFrame(reflectDir, sampler.CosWeightedHemisphere(u1, u2))
		}
		weight = sampleReflection.Scale(1 / p)
		lobe, ok = LobeReflection, true
	case u < (wRefr+wRefl+wSpec)/total:
		p := wSpec / total
		u1, u2 := rng.Get2f()
		dir = sampler.TransformToLocalFrame(sn, sampler.CosWeightedHemisphere(u1, u2))
		weight = m.Specular.Color.Scale(1 / p)
		lobe, ok = LobeSpecular, true
	default:
		p := wDiff / total
		u1, u2 := rng.Get2f()
		dir = sampler.TransformToLocalFrame(sn, sampler.CosWeightedHemisphere(u1, u2))
		weight = m.Diffuse.Color.Scale(1 / p)
		lobe, ok = LobeDiffuse, true
	}
	return dir, weight, lobe, ok
}

func pow5(x float32) float32 {
	x2 := x * x
	return x2 * x2 * x
}

func sqrt32(v float32) float32 { return float32(gomath.Sqrt(float64(v))) }

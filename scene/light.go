package scene

import (
	"render-engine/core"
	"render-engine/math"
	"render-engine/sampler"
)

// LightKind tags the Light sum type (§3, §9 "deep inheritance" design
// note: tagged unions instead of virtual dispatch).
type LightKind int

const (
	LightAmbient LightKind = iota
	LightDirectional
	LightPoint
)

const (
	minSoftShadowSamples = 16
	maxSoftShadowSamples = 64
	softShadowSizeFloor  = 0.01
)

// Light is a tagged union over Ambient/Directional/Point (§3/§4.H). A
// Point light is additionally a photon source.
type Light struct {
	Kind      LightKind
	Position  math.Vec3
	Direction math.Vec3 // Directional: the direction light travels
	Intensity core.Color
	Size      float32 // Point: soft-shadow disk radius
	MaxRange  float32 // Point: falloff cap distance; 0 disables the cap
}

// IsAmbient reports whether the light is ambient. Ambient lights do not
// take part in the direct-lighting average over shadow-casting lights —
// they are excluded from |lights| before dividing (§9's third flagged fix).
func (l *Light) IsAmbient() bool {
	return l.Kind == LightAmbient
}

// IsPhotonSource reports whether the light can emit photons (§3: "A
// point light is a photon source; ambient and directional are not").
func (l *Light) IsPhotonSource() bool {
	return l.Kind == LightPoint
}

// Illuminate returns the radiance arriving at p from this light, given
// the shading normal N and a scene to cast shadow rays against.
func (l *Light) Illuminate(s *Scene, p, n math.Vec3, rng sampler.Sampler) core.Color {
	switch l.Kind {
	case LightAmbient:
		return l.Intensity
	case LightDirectional:
		dir := l.Direction.Negate().Normalize()
		if s.shadowed(p, dir, float32(1e30)) {
			return core.Color{}
		}
		return l.Intensity
	case LightPoint:
		return l.illuminatePoint(s, p, n, rng)
	default:
		return core.Color{}
	}
}

func (l *Light) illuminatePoint(s *Scene, p, n math.Vec3, rng sampler.Sampler) core.Color {
	toLight := l.Position.Sub(p)
	dist := toLight.Length()
	if dist < 1e-6 {
		return core.Color{}
	}
	dir := toLight.Mul(1 / dist)
	falloff := l.falloff(dist)

	if l.Size <= softShadowSizeFloor {
		if s.shadowed(p, dir, dist-1e-3) {
			return core.Color{}
		}
		return l.Intensity.Scale(falloff)
	}

	tangent, bitangent := orthoBasis(dir)
	samples := minSoftShadowSamples
	sum := float32(0)
	visible := 0
	for i := 0; i < maxSoftShadowSamples; i++ {
		if i >= samples {
			break
		}
		u1, u2 := rng.Get2f()
		dx, dy := sampler.UniformDisk(l.Size, u1, u2)
		samplePos := l.Position.Add(tangent.Mul(dx)).Add(bitangent.Mul(dy))
		sampleDir := samplePos.Sub(p)
		sampleDist := sampleDir.Length()
		sampleDir = sampleDir.Mul(1 / sampleDist)
		if !s.shadowed(p, sampleDir, sampleDist-1e-3) {
			visible++
		}
		sum = float32(visible) / float32(i+1)
		// If the running estimate is strictly between fully-lit and
		// fully-shadowed, the penumbra is ambiguous at this sample count;
		// extend the search up to maxSoftShadowSamples.
		if i+1 == samples && sum > 0 && sum < 1 && samples < maxSoftShadowSamples {
			samples = maxSoftShadowSamples
		}
	}
	return l.Intensity.Scale(sum * falloff)
}

func (l *Light) falloff(dist float32) float32 {
	d := dist
	if l.MaxRange > 0 && d < l.MaxRange {
		d = l.MaxRange
	}
	if d < 1e-4 {
		d = 1e-4
	}
	return 1 / (d * d)
}

// RandomPhoton samples a differential ray and initial intensity for
// forward photon tracing (§4.H, §4.K). Only photon-source lights
// (Point) are ever called this way.
func (l *Light) RandomPhoton(rng sampler.Sampler, numSources int) (core.DiffRay, core.Color) {
	u1, u2 := rng.Get2f()
	dir := sampler.UniformSphere(u1, u2)
	ray := core.NewDiffRay(core.Ray{Origin: l.Position, Dir: dir})
	intensity := l.Intensity.Scale(1 / float32(numSources))
	return ray, intensity
}

func orthoBasis(n math.Vec3) (math.Vec3, math.Vec3) {
	var helper math.Vec3
	ax, ay, az := absf(n.X), absf(n.Y), absf(n.Z)
	switch {
	case ax <= ay && ax <= az:
		helper = math.Vec3{X: 1}
	case ay <= ax && ay <= az:
		helper = math.Vec3{Y: 1}
	default:
		helper = math.Vec3{Z: 1}
	}
	t := helper.Cross(n).Normalize()
	b := n.Cross(t)
	return t, b
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

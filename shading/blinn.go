// Package shading implements the Blinn path-tracing material shader
// (§4.I), the one place eye-ray direct lighting, stochastic indirect
// bounces, Beer-Lambert attenuation, and the optional photon-map/
// caustics-map gather all come together at a surface hit.
package shading

import (
	gomath "math"

	"render-engine/core"
	"render-engine/math"
	"render-engine/photon"
	"render-engine/sampler"
	"render-engine/scene"
)

// Options bundles the renderer-wide settings a shading call needs beyond
// the hit itself: the maximum bounce depth and, when photon mapping is
// enabled, the prebuilt global/caustics maps and gather parameters
// (§4.I's photon-map branch, §4.J's EstimateIrradiance knobs).
type Options struct {
	MaxBounce int

	UsePhotonMap bool
	GlobalMap    *photon.Map
	CausticsMap  *photon.Map
	GatherK      int
	GatherRadius float32
	Ellipticity  float32
	Filter       photon.Filter
}

func (o *Options) gatherK() int {
	if o.GatherK > 0 {
		return o.GatherK
	}
	return 100
}

// Shade evaluates outgoing radiance at hit for a ray arriving with
// bounce bounces remaining. viaSpecular records whether the previous
// hop's sampled lobe was non-diffuse, which the photon-map branch uses
// to decide between a direct global-map gather and a single stochastic
// diffuse bounce (§4.I).
func Shade(scn *scene.Scene, ray core.DiffRay, hit *core.HitInfo, bounce int, viaSpecular bool, rng sampler.Sampler, opt *Options) core.Color {
	mtl := scn.MaterialAt(hit.MtlID)
	if mtl == nil {
		mtl = scene.DefaultMaterial()
	}

	uv := math.Vec2{X: hit.UVW.X, Y: hit.UVW.Y}
	duvdx := math.Vec2{X: hit.DUVWDX.X, Y: hit.DUVWDX.Y}
	duvdy := math.Vec2{X: hit.DUVWDY.X, Y: hit.DUVWDY.Y}
	diffuse := sampleColor(mtl.Diffuse, uv, duvdx, duvdy)
	specular := sampleColor(mtl.Specular, uv, duvdx, duvdy)
	emission := sampleColor(mtl.Emission, uv, duvdx, duvdy)

	v := ray.Center.Dir.Negate().Normalize()
	n := hit.N
	if n.Dot(v) < 0 {
		n = n.Negate()
	}

	out := emission
	out = out.Add(directLighting(scn, hit.P, n, v, diffuse, specular, mtl.SpecularGlossiness, rng))

	if opt != nil && opt.UsePhotonMap && mtl.IsPhotonSurface() {
		out = out.Add(photonMapContribution(opt, hit.P, n, diffuse, viaSpecular))
	}

	if bounce > 0 {
		useMonteCarloDiffuseOnly := opt != nil && opt.UsePhotonMap && mtl.IsPhotonSurface() && !viaSpecular
		skipIndirect := opt != nil && opt.UsePhotonMap && mtl.IsPhotonSurface() && viaSpecular
		if !skipIndirect {
			dir, weight, lobe, ok := mtl.SampleBounce(ray.Center.Dir, hit.N, hit.FrontHit, rng)
			if ok && !(useMonteCarloDiffuseOnly && lobe != scene.LobeDiffuse) {
				secondary := core.NewDiffRay(core.Ray{Origin: hit.P, Dir: dir})
				next := core.NewHitInfo()
				if scn.TraceNormal(scn.Root, secondary, &next, core.SideBoth) {
					indirect := Shade(scn, secondary, &next, bounce-1, lobe != scene.LobeDiffuse, rng, opt)
					out = out.Add(indirect.Mul(weight))
				} else {
					out = out.Add(scn.Background.Mul(weight))
				}
			}
		}
	}

	if !hit.FrontHit {
		out = beerLambert(out, mtl.Absorption, hit.Z)
	}

	return out
}

func sampleColor(cm scene.ColorMap, uv, duvdx, duvdy math.Vec2) core.Color {
	if cm.Texture != nil {
		return cm.Texture.Sample(uv, duvdx, duvdy)
	}
	return cm.Color
}

// directLighting implements §4.I step 4: sum over non-ambient lights,
// dividing by their count (excluding ambient per §9's flagged fix),
// then add ambient contributions unscaled.
func directLighting(scn *scene.Scene, p, n, v math.Vec3, diffuse, specular core.Color, ns float32, rng sampler.Sampler) core.Color {
	var out core.Color
	shadowCount := scn.NumShadowLights()
	for _, l := range scn.Lights {
		if l.IsAmbient() {
			lin := l.Illuminate(scn, p, n, rng)
			out = out.Add(lin.Mul(diffuse))
			continue
		}
		if shadowCount == 0 {
			continue
		}
		lin := l.Illuminate(scn, p, n, rng)
		if lin.IsBlack() {
			continue
		}
		ldir := lightDirection(l, p)
		cosNL := n.Dot(ldir)
		if cosNL <= 0 {
			continue
		}
		h := v.Add(ldir).Normalize()
		spec := pow32(max32(n.Dot(h), 0), ns)
		brdf := diffuse.Add(specular.Scale(spec))
		out = out.Add(lin.Mul(brdf).Scale(cosNL / float32(shadowCount)))
	}
	return out
}

func lightDirection(l *scene.Light, p math.Vec3) math.Vec3 {
	switch l.Kind {
	case scene.LightDirectional:
		return l.Direction.Negate().Normalize()
	default:
		return l.Position.Sub(p).Normalize()
	}
}

// beerLambert applies exp(-sigma_a * z) per channel, the bulk
// attenuation of light traveling distance z through the medium on the
// far side of a back hit (§4.I step 6).
func beerLambert(in core.Color, sigmaA core.Color, z float32) core.Color {
	return core.Color{
		R: in.R * exp32(-sigmaA.R*z),
		G: in.G * exp32(-sigmaA.G*z),
		B: in.B * exp32(-sigmaA.B*z),
		A: in.A,
	}
}

func pow32(base, exp float32) float32 { return float32(gomath.Pow(float64(base), float64(exp))) }
func exp32(x float32) float32         { return float32(gomath.Exp(float64(x))) }
func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

package photon

import (
	"render-engine/core"
	"render-engine/sampler"
	"render-engine/scene"
)

// EmitResult is a completed forward photon trace: the stored photons
// (still unbalanced) plus the total number of photons emitted from
// light sources to fill them, used to rescale power to a per-photon
// estimator (§4.K step 3).
type EmitResult struct {
	Photons []Photon
	Emitted int
}

// Emit runs the two-pass forward tracing driver of §4.K. Passing
// causticsOnly=false fills the global map (stores at every ideal-diffuse
// hit); causticsOnly=true fills the caustics map (stores only once at
// least one non-diffuse bounce has already occurred). Both passes share
// the same per-photon trace loop since they differ only in the store
// policy, not in how photons scatter.
func Emit(scn *scene.Scene, target, maxBounce int, rng sampler.Sampler, causticsOnly bool) EmitResult {
	numSources := scn.NumPhotonSources()
	if numSources == 0 || target <= 0 {
		return EmitResult{}
	}

	photons := make([]Photon, 0, target)
	emitted := 0
	for len(photons) < target {
		emitted++
		light := pickSource(scn, rng, numSources)
		if light == nil {
			break
		}
		ray, power := light.RandomPhoton(rng, numSources)
		nonDiffuseBounce := false

		for bounce := 0; bounce <= maxBounce; bounce++ {
			hit := core.NewHitInfo()
			if !scn.TraceNormal(scn.Root, ray, &hit, core.SideFront) {
				break
			}
			mtl := scn.MaterialAt(hit.MtlID)
			if mtl == nil {
				break
			}

			if mtl.IsPhotonSurface() && (!causticsOnly || nonDiffuseBounce) {
				photons = append(photons, NewPhoton(hit.P, power, ray.Center.Dir))
				if len(photons) >= target {
					break
				}
			}

			if mtl.RussianRouletteKill > 0 && rng.Get1f() < mtl.RussianRouletteKill {
				break
			}

			dir, weight, lobe, ok := mtl.SampleBounce(ray.Center.Dir, hit.N, hit.FrontHit, rng)
			if !ok {
				break
			}
			if lobe != scene.LobeDiffuse {
				nonDiffuseBounce = true
			}
			power = power.Mul(weight)
			ray = core.NewDiffRay(core.Ray{Origin: hit.P, Dir: dir})
		}
	}
	return EmitResult{Photons: photons, Emitted: emitted}
}

// pickSource draws one of the scene's photon-source lights uniformly.
func pickSource(scn *scene.Scene, rng sampler.Sampler, numSources int) *scene.Light {
	target := int(rng.Get1f() * float32(numSources))
	if target >= numSources {
		target = numSources - 1
	}
	count := 0
	for _, l := range scn.Lights {
		if !l.IsPhotonSource() {
			continue
		}
		if count == target {
			return l
		}
		count++
	}
	return nil
}

// BuildFromEmission rescales every stored photon's power by
// 1/emittedRays (§4.K step 3) and balances the result into a queryable
// Map.
func BuildFromEmission(res EmitResult) *Map {
	if res.Emitted > 0 {
		scale := 1 / float32(res.Emitted)
		for i := range res.Photons {
			res.Photons[i].Power *= scale
		}
	}
	m := Build(res.Photons)
	m.TotalEmitted = res.Emitted
	return m
}

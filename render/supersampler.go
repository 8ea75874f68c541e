package render

import (
	gomath "math"

	"render-engine/core"
	"render-engine/sampler"
	"render-engine/scene"
	"render-engine/shading"
)

// Settings bundles the per-frame adaptive sampling knobs of §4.L.
type Settings struct {
	SppMin    int
	SppMax    int
	Threshold float32 // variance stop threshold on the running stddev estimate
	SRGB      bool
	Shade     *shading.Options
	Seed      uint64 // process RNG seed each worker's Xorshift128 is derived from (§5)
}

func (s *Settings) sppMin() int {
	if s.SppMin > 0 {
		return s.SppMin
	}
	return 4
}

func (s *Settings) sppMax() int {
	if s.SppMax > s.sppMin() {
		return s.SppMax
	}
	return s.sppMin()
}

// PixelResult is one fully-integrated pixel, ready for FrameBuffer.SetPixel.
type PixelResult struct {
	Color          core.Color
	Depth          float32
	Samples        uint8
	UsedIrradiance bool
}

// SamplePixel runs the adaptive per-pixel loop of §4.L: draw successive
// Halton-11/13-jittered sub-pixel offsets from jitter (the low-discrepancy
// sequence stays reserved for pixel placement only), shade each sample
// through the camera's differential ray — with every other stochastic
// draw (the DOF lens warp, BxDF lobe selection, soft-shadow sampling deep
// inside Shade) pulled from rng, the worker's private Xorshift-128
// generator (§4.G, §5) — and maintain a Welford running mean/variance of
// the resulting radiance. Sampling stops once at least sppMin samples
// have been taken and either sppMax is reached or the per-channel
// estimated standard deviation of the mean falls under threshold.
func SamplePixel(scn *scene.Scene, px, py int, jitter *sampler.Halton, rng sampler.Sampler, st *Settings) PixelResult {
	var mean core.Color
	var m2 core.Color // Welford's running sum of squared deviations
	var depth float32
	usedIrradiance := false

	s := 0
	for {
		jx, jy := jitter.PixelJitter(uint64(s))
		cx := float32(px) + jx
		cy := float32(py) + jy

		ray := scn.Camera.GenerateRay(cx, cy)
		if scn.Camera.DOFRadius > 0 {
			lu, lv := rng.Get2f()
			dx, dy := sampler.UniformDisk(scn.Camera.DOFRadius, lu, lv)
			ray.Center = scn.Camera.ApertureOffset(ray.Center, dx, dy)
		}

		hit := core.NewHitInfo()
		var c core.Color
		if scn.TraceNormal(scn.Root, ray, &hit, core.SideBoth) {
			c = shading.Shade(scn, ray, &hit, maxBounce(st), false, rng, st.Shade)
			if s == 0 {
				depth = hit.Z
			}
			if st.Shade != nil && st.Shade.UsePhotonMap {
				usedIrradiance = true
			}
		} else {
			c = scn.Background
			if s == 0 {
				depth = float32(gomath.Inf(1))
			}
		}

		s++
		delta := c.Sub(mean)
		mean = mean.Add(delta.Scale(1 / float32(s)))
		delta2 := c.Sub(mean)
		m2 = m2.Add(core.Color{
			R: delta.R * delta2.R,
			G: delta.G * delta2.G,
			B: delta.B * delta2.B,
		})

		if s >= st.sppMax() {
			break
		}
		if s >= st.sppMin() && converged(m2, s, st.Threshold) {
			break
		}
	}

	return PixelResult{Color: mean, Depth: depth, Samples: clampSamples(s), UsedIrradiance: usedIrradiance}
}

func maxBounce(st *Settings) int {
	if st.Shade != nil {
		return st.Shade.MaxBounce
	}
	return 0
}

// converged reports whether every channel's estimated standard deviation
// of the running mean (sqrt(variance/n)) is under the threshold.
func converged(m2 core.Color, n int, threshold float32) bool {
	if n < 2 {
		return false
	}
	variance := m2.Scale(1 / float32(n-1))
	stderr := func(v float32) float32 {
		if v <= 0 {
			return 0
		}
		return float32(gomath.Sqrt(float64(v) / float64(n)))
	}
	return stderr(variance.R) < threshold && stderr(variance.G) < threshold && stderr(variance.B) < threshold
}

func clampSamples(s int) uint8 {
	if s > 255 {
		return 255
	}
	return uint8(s)
}

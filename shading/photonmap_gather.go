package shading

import (
	gomath "math"

	"render-engine/core"
	"render-engine/math"
)

// photonMapContribution always gathers the caustics map at a diffuse
// surface; it additionally gathers the global map only when this hit
// was reached through a non-diffuse (specular/refractive) chain, since
// a directly-viewed diffuse surface gets its indirect estimate from the
// single stochastic bounce in Shade instead (§4.I).
func photonMapContribution(opt *Options, p, n math.Vec3, diffuse core.Color, viaSpecular bool) core.Color {
	var out core.Color
	pi := float32(gomath.Pi)
	if opt.CausticsMap != nil {
		irr, _ := opt.CausticsMap.EstimateIrradiance(p, n, opt.gatherK(), opt.GatherRadius, opt.Ellipticity, opt.Filter)
		out = out.Add(irr.Mul(diffuse).Scale(1 / pi))
	}
	if viaSpecular && opt.GlobalMap != nil {
		irr, _ := opt.GlobalMap.EstimateIrradiance(p, n, opt.gatherK(), opt.GatherRadius, opt.Ellipticity, opt.Filter)
		out = out.Add(irr.Mul(diffuse).Scale(1 / pi))
	}
	return out
}

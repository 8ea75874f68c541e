package scene

import (
	"render-engine/core"
	"render-engine/math"
)

// TextureSampler is the in-scope sampling contract (§1): given a 2-D
// texture coordinate and its screen-space derivatives (for filtering),
// return a color. Concrete implementations — checker patterns, decoded
// image files — are out of scope beyond this contract; callers that need
// one supply their own TextureSampler.
type TextureSampler interface {
	Sample(uv math.Vec2, duvdx, duvdy math.Vec2) core.Color
}

// SolidSampler is the trivial TextureSampler: every sample returns the
// same color, used as a stand-in where the sampling contract needs a
// concrete value (e.g. tests) without pulling in file decoding.
type SolidSampler struct {
	Color core.Color
}

func (s SolidSampler) Sample(uv, duvdx, duvdy math.Vec2) core.Color {
	return s.Color
}

// TileClamp wraps uv into [0,1) with tiling repeat, matching §4.F's
// "tile-clamped 2-D sampling" contract description; TextureSampler
// implementations that tile call this before indexing into their pixel
// store.
func TileClamp(v float32) float32 {
	v = v - float32(int(v))
	if v < 0 {
		v += 1
	}
	return v
}

// Package render implements the tile-based parallel frame scheduler
// (§4.M), the adaptive per-pixel super-sampler (§4.L), the packed frame
// buffer (§3), and MPI-style rank composition (§4.N).
package render

import (
	gomath "math"
	"sync/atomic"

	"render-engine/core"
	"render-engine/shading"
)

// FrameBuffer is the packed per-rank image target of §3: 8-bit color,
// f32 depth, 8-bit sample count, and two independent 8-bit masks (one
// marking pixels that hit geometry while photon mapping was enabled, one
// marking pixels this rank has written), plus an atomic count of
// rendered pixels so progress can be polled without locking.
type FrameBuffer struct {
	Width, Height int

	Color          []uint8 // RGB8, len = 3*Width*Height
	Depth          []float32
	SampleCount    []uint8
	IrradianceMask []uint8
	WriteMask      []uint8

	rendered int64
}

func NewFrameBuffer(width, height int) *FrameBuffer {
	n := width * height
	return &FrameBuffer{
		Width: width, Height: height,
		Color:          make([]uint8, 3*n),
		Depth:          make([]float32, n),
		SampleCount:    make([]uint8, n),
		IrradianceMask: make([]uint8, n),
		WriteMask:      make([]uint8, n),
	}
}

// SetPixel commits one finished pixel: this is the only write path into
// the buffer, and is only ever called once the super-sampler loop for
// that pixel has fully terminated, so no partially-integrated color is
// ever visible (§5 Cancellation).
func (fb *FrameBuffer) SetPixel(x, y int, c core.Color, depth float32, samples uint8, srgb, usedIrradiance bool) {
	idx := y*fb.Width + x
	out := c
	if srgb {
		out = shading.LinearToSRGB(out)
	}
	out = out.Clamp01()
	fb.Color[3*idx+0] = quantize(out.R)
	fb.Color[3*idx+1] = quantize(out.G)
	fb.Color[3*idx+2] = quantize(out.B)
	fb.Depth[idx] = depth
	fb.SampleCount[idx] = samples
	if usedIrradiance {
		fb.IrradianceMask[idx] = 1
	}
	fb.WriteMask[idx] = 1
	atomic.AddInt64(&fb.rendered, 1)
}

func (fb *FrameBuffer) RenderedCount() int64 {
	return atomic.LoadInt64(&fb.rendered)
}

func quantize(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// DepthImage remaps the depth buffer to 8-bit luminance: the nearest hit
// becomes 255, the farthest becomes 0, and misses (depth == +Inf, never
// written) stay 0 (§6 Image output).
func (fb *FrameBuffer) DepthImage() []uint8 {
	out := make([]uint8, len(fb.Depth))
	minZ, maxZ := float32(0), float32(0)
	first := true
	for i, z := range fb.Depth {
		if fb.WriteMask[i] == 0 || gomath.IsInf(float64(z), 1) {
			continue
		}
		if first {
			minZ, maxZ = z, z
			first = false
			continue
		}
		if z < minZ {
			minZ = z
		}
		if z > maxZ {
			maxZ = z
		}
	}
	span := maxZ - minZ
	for i, z := range fb.Depth {
		if fb.WriteMask[i] == 0 || span <= 0 || gomath.IsInf(float64(z), 1) {
			continue
		}
		t := 1 - (z-minZ)/span
		out[i] = quantize(t)
	}
	return out
}

// SampleCountImage linearly remaps the per-pixel sample count between
// its observed minimum and maximum to 8-bit luminance (§6).
func (fb *FrameBuffer) SampleCountImage() []uint8 {
	out := make([]uint8, len(fb.SampleCount))
	var minS, maxS uint8
	first := true
	for i, s := range fb.SampleCount {
		if fb.WriteMask[i] == 0 {
			continue
		}
		if first {
			minS, maxS = s, s
			first = false
			continue
		}
		if s < minS {
			minS = s
		}
		if s > maxS {
			maxS = s
		}
	}
	span := float32(maxS) - float32(minS)
	for i, s := range fb.SampleCount {
		if fb.WriteMask[i] == 0 {
			continue
		}
		if span <= 0 {
			out[i] = 255
			continue
		}
		out[i] = quantize((float32(s) - float32(minS)) / span)
	}
	return out
}

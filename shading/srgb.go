package shading

import "render-engine/core"

// LinearToSRGB applies the piecewise linear-to-sRGB transfer function
// per channel, grounded on renderer.cpp's LinearToSRGB.
func LinearToSRGB(c core.Color) core.Color {
	return core.Color{R: srgbChannel(c.R), G: srgbChannel(c.G), B: srgbChannel(c.B), A: c.A}
}

func srgbChannel(v float32) float32 {
	if v <= 0 {
		return 0
	}
	if v < 0.0031308 {
		return 12.92 * v
	}
	return 1.055*pow32(v, 1/2.4) - 0.055
}

// Package photon implements the balanced-kd-tree photon map (§3/§4.J):
// a compact photon record, array-based build/balance, and bounded k-NN
// irradiance queries, plus the two-pass emission driver (§4.K) and the
// binary dump format (§6).
package photon

import (
	gomath "math"

	"render-engine/core"
	"render-engine/math"
)

// Plane identifies the kd-tree splitting axis stored in a photon's
// packed byte, matching the 2-bit plane field of §3.
type Plane uint8

const (
	PlaneX Plane = 0
	PlaneY Plane = 1
	PlaneZ Plane = 2
)

// Photon is the compact record of §3: position, a scalar power with an
// 8-bit chromaticity (power*color reconstructs the full radiant power,
// max(color)==1), and a packed direction (two 16-bit signed fixed-point
// components plus a sign bit for z), plus the 2-bit splitting plane
// used once the photon becomes an internal tree node.
type Photon struct {
	Pos       math.Vec3
	Power     float32
	Color     [3]uint8
	DirX      int16
	DirY      int16
	DirZNeg   bool
	SplitPlane Plane
}

// NewPhoton packs a full radiant power and direction into a Photon
// record, matching cyPhotonMap.h's Photon::SetPower/SetDir packing.
func NewPhoton(pos math.Vec3, fullPower core.Color, dir math.Vec3) Photon {
	maxC := fullPower.Max()
	var color [3]uint8
	power := float32(0)
	if maxC > 0 {
		power = maxC
		color = [3]uint8{
			quantize(fullPower.R / maxC),
			quantize(fullPower.G / maxC),
			quantize(fullPower.B / maxC),
		}
	}
	p := Photon{Pos: pos, Power: power, Color: color}
	p.SetDir(dir)
	return p
}

func quantize(v float32) uint8 {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return uint8(v*255 + 0.5)
}

// FullPower reconstructs power*color as the full radiant power.
func (p Photon) FullPower() core.Color {
	return core.Color{
		R: p.Power * float32(p.Color[0]) / 255,
		G: p.Power * float32(p.Color[1]) / 255,
		B: p.Power * float32(p.Color[2]) / 255,
		A: 1,
	}
}

// SetDir packs a unit direction into the 16-bit fixed-point x/y plus
// the z-sign bit, matching cyPhotonMap.h's Photon::SetDir.
func (p *Photon) SetDir(dir math.Vec3) {
	p.DirX = int16(clampf(dir.X, -1, 1) * 32767)
	p.DirY = int16(clampf(dir.Y, -1, 1) * 32767)
	p.DirZNeg = dir.Z < 0
}

// Dir reconstructs the packed direction. The z component is recovered
// from the corrected expression dirX*dirX + dirY*dirY (the original
// source's decoder has a dirX*dirX + dirY - dirY typo; this
// implementation uses the corrected form per the spec's note).
func (p Photon) Dir() math.Vec3 {
	fx := float32(p.DirX) / 32767
	fy := float32(p.DirY) / 32767
	zz := 1 - fx*fx - fy*fy
	if zz < 0 {
		zz = 0
	}
	z := sqrt32(zz)
	if p.DirZNeg {
		z = -z
	}
	return math.Vec3{X: fx, Y: fy, Z: z}
}

func (p Photon) axis(axis int) float32 {
	switch axis {
	case 0:
		return p.Pos.X
	case 1:
		return p.Pos.Y
	default:
		return p.Pos.Z
	}
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func sqrt32(v float32) float32 { return float32(gomath.Sqrt(float64(v))) }

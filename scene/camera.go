package scene

import (
	gomath "math"

	"render-engine/core"
	"render-engine/math"
)

// Camera holds the world-space eye description and the once-per-frame
// derived projection basis (§3/§4.A). ComputeBasis is grounded on the
// original renderer's ComputeScene: X/Y/Z form a right-handed basis with
// Z = -dir, and screenU/screenV/screenA describe the view-plane rectangle
// one focal distance away.
type Camera struct {
	Position  math.Vec3
	Dir       math.Vec3
	Up        math.Vec3
	FovY      float32 // degrees
	Focal     float32
	DOFRadius float32
	Width     int
	Height    int

	X, Y, Z             math.Vec3
	ScreenU, ScreenV    math.Vec3
	ScreenA             math.Vec3
}

func NewCamera(pos, dir, up math.Vec3, fovY float32, width, height int) *Camera {
	c := &Camera{Position: pos, Dir: dir.Normalize(), Up: up, FovY: fovY, Focal: 1, Width: width, Height: height}
	c.ComputeBasis()
	return c
}

// ComputeBasis derives the orthonormal camera frame and the view-plane
// spans/corner used by every primary-ray generator.
func (c *Camera) ComputeBasis() {
	aspect := float32(c.Width) / float32(c.Height)
	fovyRad := float64(c.FovY) * gomath.Pi / 180
	screenH := 2 * c.Focal * float32(gomath.Tan(fovyRad/2))
	screenW := aspect * screenH

	c.X = c.Dir.Cross(c.Up).Normalize()
	c.Y = c.X.Cross(c.Dir).Normalize()
	c.Z = c.Dir.Negate()

	c.ScreenU = c.X.Mul(screenW / float32(c.Width))
	c.ScreenV = c.Y.Negate().Mul(screenH / float32(c.Height))
	c.ScreenA = c.Position.
		Sub(c.Z.Mul(c.Focal)).
		Add(c.Y.Mul(screenH / 2)).
		Sub(c.X.Mul(screenW / 2))
}

// GenerateRay builds the primary differential ray bundle for continuous
// pixel coordinates (px, py) — center plus the two one-pixel offset rays
// used for ray-differential texture filtering.
func (c *Camera) GenerateRay(px, py float32) core.DiffRay {
	center := c.rayThroughScreen(px, py)
	dx := c.rayThroughScreen(px+1, py)
	dy := c.rayThroughScreen(px, py+1)
	return core.DiffRay{Center: center, DX: dx, DY: dy, HasDiff: true}
}

func (c *Camera) rayThroughScreen(px, py float32) core.Ray {
	target := c.ScreenA.Add(c.ScreenU.Mul(px)).Add(c.ScreenV.Mul(py))
	dir := target.Sub(c.Position).Normalize()
	return core.Ray{Origin: c.Position, Dir: dir}
}

// ApertureOffset returns a depth-of-field-perturbed ray origin/target
// pair by sampling a disk point (dx, dy) (already warped by the caller
// via sampler.UniformDisk) on the lens and refocusing at the focal plane.
func (c *Camera) ApertureOffset(center core.Ray, dx, dy float32) core.Ray {
	if c.DOFRadius <= 0 {
		return center
	}
	focusPoint := center.Origin.Add(center.Dir.Mul(c.Focal / center.Dir.Dot(c.Z.Negate())))
	newOrigin := c.Position.Add(c.X.Mul(dx)).Add(c.Y.Mul(dy))
	return core.Ray{Origin: newOrigin, Dir: focusPoint.Sub(newOrigin).Normalize()}
}

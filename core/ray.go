package core

import "render-engine/math"

// Ray is an origin point and a (not necessarily normalized, though camera
// and shading rays keep it normalized by convention) direction, matching
// the shape of the teacher's editor.Ray.
type Ray struct {
	Origin, Dir math.Vec3
}

func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}

// DiffRay bundles a center ray with two neighboring offset rays for the
// pixels to the right and below, used to estimate texture footprint via
// ray differentials.
type DiffRay struct {
	Center Ray
	DX, DY Ray
	// HasDiff is false for shadow rays and photon rays, which never carry
	// differentials.
	HasDiff bool
}

func NewDiffRay(center Ray) DiffRay {
	return DiffRay{Center: center, DX: center, DY: center, HasDiff: false}
}

// Transform returns r with its origin carried through pointXform and its
// direction through dirXform,
// used when converting a world-space ray into node-local coordinates and
// back (scene.Transform.ToNodeCoords / FromNodeCoords).
func (r Ray) Transform(pointXform func(math.Vec3) math.Vec3, dirXform func(math.Vec3) math.Vec3) Ray {
	return Ray{Origin: pointXform(r.Origin), Dir: dirXform(r.Dir)}
}

func (d DiffRay) Transform(pointXform, dirXform func(math.Vec3) math.Vec3) DiffRay {
	return DiffRay{
		Center:  d.Center.Transform(pointXform, dirXform),
		DX:      d.DX.Transform(pointXform, dirXform),
		DY:      d.DY.Transform(pointXform, dirXform),
		HasDiff: d.HasDiff,
	}
}

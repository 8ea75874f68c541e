package core

import (
	"math"

	gmath "render-engine/math"
)

// SideMask selects which face orientation an intersector is allowed to
// report a hit for.
type SideMask int

const (
	SideFront SideMask = iota
	SideBack
	SideBoth
)

// Accepts reports whether a hit with the given front/back orientation
// passes this mask.
func (m SideMask) Accepts(frontHit bool) bool {
	switch m {
	case SideFront:
		return frontHit
	case SideBack:
		return !frontHit
	default:
		return true
	}
}

// HitInfo is the mutable hit record threaded through scene traversal.
// It is initialized with Z = +Inf and updated monotonically: callers
// only overwrite the stored fields when a candidate Z strictly reduces
// the stored Z and the candidate's orientation passes the caller's side
// mask.
type HitInfo struct {
	Z             float32
	P             gmath.Vec3
	N             gmath.Vec3
	UVW           gmath.Vec3
	DUVWDX        gmath.Vec3
	DUVWDY        gmath.Vec3
	MtlID         int
	Node          interface{} // weak reference to the owning scene node
	FrontHit      bool
	HasDiffuseHit bool
}

// NewHitInfo returns a hit record ready for traversal, with Z = +Inf so
// the first accepted candidate always wins.
func NewHitInfo() HitInfo {
	return HitInfo{Z: float32(math.Inf(1))}
}

// TryUpdate only overwrites the record when candidateZ strictly reduces
// the stored Z. It returns whether the update was applied, preserving the
// monotone-hit-update invariant across an arbitrary sequence of
// intersector calls.
func (h *HitInfo) TryUpdate(candidateZ float32, apply func(*HitInfo)) bool {
	if candidateZ >= h.Z {
		return false
	}
	h.Z = candidateZ
	apply(h)
	return true
}

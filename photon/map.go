package photon

import (
	"render-engine/core"
	"render-engine/math"
)

// Map is a balanced kd-tree of photons, stored 1-indexed with index 0
// unused so that children of node i live at 2i and 2i+1 (§3).
type Map struct {
	Photons      []Photon
	HalfStored   int
	TotalEmitted int
}

// Build packs raw (unbalanced) photons into a left-balanced implicit
// kd-tree, following PrepareForIrradianceEstimation's BalanceSegment
// recursion (§4.J): split on the longest axis of the shrinking bounding
// box at each level, select a median index that keeps every level of
// the tree exactly filled (complete except possibly the last), then
// partition in place and recurse.
func Build(raw []Photon) *Map {
	n := len(raw)
	m := &Map{Photons: make([]Photon, n+1)}
	if n == 0 {
		m.HalfStored = (n-1)/2 - 1
		return m
	}
	work := make([]Photon, n)
	copy(work, raw)

	box := core.EmptyAABB()
	for _, p := range work {
		box = box.UnionPoint(p.Pos)
	}
	m.balanceSegment(work, 1, 0, n-1, box)
	// HalfStored follows (n-1)/2-1 with n the actual photon count (§4.J).
	// cyPhotonMap.h computes the same quantity as (size-1)/2-1 but over
	// size = n+1 (its index-0 slot included), i.e. n/2-1 for even n — one
	// higher than here. The boundary node this excludes is treated as a
	// leaf during locate instead of an internal node with children, which
	// is statistically negligible for irradiance estimation.
	m.HalfStored = (n-1)/2 - 1
	return m
}

func (m *Map) balanceSegment(work []Photon, index, start, end int, box core.AABB) {
	if start == end {
		m.Photons[index] = work[start]
		return
	}

	n := end - start + 1
	median := 1
	for 4*median <= n {
		median += median
	}
	if 3*median <= n {
		median += median
		median += start - 1
	} else {
		median = end - median + 1
	}

	axis := box.LongestAxis()
	medianSplit(work, start, end, median, axis)
	work[median].SplitPlane = Plane(axis)
	m.Photons[index] = work[median]

	if median > start {
		if start < median-1 {
			shrunk := box
			shrunk.Max = setAxis(shrunk.Max, axis, axisOf(work[median].Pos, axis))
			m.balanceSegment(work, 2*index, start, median-1, shrunk)
		} else {
			m.Photons[2*index] = work[start]
		}
	}

	if median < end {
		if median+1 < end {
			shrunk := box
			shrunk.Min = setAxis(shrunk.Min, axis, axisOf(work[median].Pos, axis))
			m.balanceSegment(work, 2*index+1, median+1, end, shrunk)
		} else {
			m.Photons[2*index+1] = work[median+1]
		}
	}
}

func axisOf(v math.Vec3, axis int) float32 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

func setAxis(v math.Vec3, axis int, value float32) math.Vec3 {
	switch axis {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	default:
		v.Z = value
	}
	return v
}

// medianSplit partitions work[start..end] in place (Lomuto quickselect)
// so that work[median] holds the order statistic for the given axis:
// every element before it has a coordinate <= its own, every element
// after has a coordinate >= its own.
func medianSplit(work []Photon, start, end, median, axis int) {
	left, right := start, end
	for right > left {
		pivot := work[right].axis(axis)
		i := left - 1
		for j := left; j < right; j++ {
			if work[j].axis(axis) <= pivot {
				i++
				work[i], work[j] = work[j], work[i]
			}
		}
		i++
		work[i], work[right] = work[right], work[i]
		if i >= median {
			right = i - 1
		}
		if i <= median {
			left = i + 1
		}
	}
}

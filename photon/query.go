package photon

import (
	gomath "math"

	"render-engine/core"
	"render-engine/math"
)

// Filter selects the radial falloff kernel applied to a photon's
// contribution in EstimateIrradiance (§4.J).
type Filter int

const (
	FilterConstant Filter = iota
	FilterLinear
	FilterQuadratic
)

func filterWeight(f Filter, dist, r float32) float32 {
	switch f {
	case FilterLinear:
		return 1 - dist/r
	case FilterQuadratic:
		d := dist / r
		return 1 - d*d
	default:
		return 1
	}
}

func filterArea(f Filter, r2 float32) float32 {
	pi := float32(gomath.Pi)
	switch f {
	case FilterLinear:
		return (pi / 3) * r2
	case FilterQuadratic:
		return (pi / 2) * r2
	default:
		return pi * r2
	}
}

// maxHeap is a fixed-capacity max-heap of the k closest candidates seen
// so far, keyed by squared distance (§4.J): append until full, then
// convert to a heap and thereafter replace the root whenever a closer
// candidate arrives.
type maxHeap struct {
	cap     int
	count   int
	dist    []float32 // 1-indexed, dist[1] is the max once heapified
	photons []Photon
}

func newMaxHeap(k int) *maxHeap {
	return &maxHeap{cap: k, dist: make([]float32, k+1), photons: make([]Photon, k+1)}
}

func (h *maxHeap) full() bool { return h.count == h.cap }

func (h *maxHeap) insert(dist2 float32, p Photon) {
	if h.count < h.cap {
		h.count++
		h.dist[h.count] = dist2
		h.photons[h.count] = p
		if h.count == h.cap {
			for i := h.cap / 2; i >= 1; i-- {
				h.siftDown(i)
			}
		}
		return
	}
	if dist2 >= h.dist[1] {
		return
	}
	h.dist[1] = dist2
	h.photons[1] = p
	h.siftDown(1)
}

func (h *maxHeap) siftDown(i int) {
	for {
		left, right := 2*i, 2*i+1
		largest := i
		if left <= h.count && h.dist[left] > h.dist[largest] {
			largest = left
		}
		if right <= h.count && h.dist[right] > h.dist[largest] {
			largest = right
		}
		if largest == i {
			return
		}
		h.dist[i], h.dist[largest] = h.dist[largest], h.dist[i]
		h.photons[i], h.photons[largest] = h.photons[largest], h.photons[i]
		i = largest
	}
}

// bound reports the current pruning distance squared: the heap's root
// once it holds k candidates, otherwise the caller's initial search
// radius squared.
func (h *maxHeap) bound(initR2 float32) float32 {
	if h.full() {
		return h.dist[1]
	}
	return initR2
}

type queryParams struct {
	pos         math.Vec3
	normal      math.Vec3
	ellipticity float32
	initR2      float32
}

// EstimateIrradiance performs a bounded k-NN query rooted at index 1
// (§4.J): at internal nodes, descend the near side of the split plane
// first and only the far side when its squared plane distance is less
// than the current heap bound; at every node, optionally project the
// displacement onto the tangent plane of normal (scaled by
// 1/ellipticity - 1) and reject photons arriving from behind the
// surface before considering them for the heap.
func (m *Map) EstimateIrradiance(pos, normal math.Vec3, k int, maxRadius float32, ellipticity float32, filter Filter) (core.Color, math.Vec3) {
	n := len(m.Photons) - 1
	if n <= 0 || k <= 0 {
		return core.Color{}, math.Vec3{}
	}
	if ellipticity <= 0 {
		ellipticity = 1
	}
	h := newMaxHeap(k)
	qp := queryParams{pos: pos, normal: normal, ellipticity: ellipticity, initR2: maxRadius * maxRadius}
	m.locate(1, n, qp, h)
	if h.count == 0 {
		return core.Color{}, math.Vec3{}
	}

	r2 := qp.initR2
	if h.full() {
		r2 = h.dist[1]
	} else {
		for i := 1; i <= h.count; i++ {
			if h.dist[i] > r2 {
				r2 = h.dist[i]
			}
		}
	}
	r := sqrt32(r2)
	area := filterArea(filter, r2)

	var sum core.Color
	var dirSum math.Vec3
	for i := 1; i <= h.count; i++ {
		ph := h.photons[i]
		dist := sqrt32(h.dist[i])
		w := filterWeight(filter, dist, r)
		full := ph.FullPower()
		sum = sum.Add(full.Scale(w))
		dirSum = dirSum.Add(ph.Dir().Mul(w * full.Max()))
	}

	irr := sum.Scale(1 / area)
	if dirSum.LengthSqr() > 0 {
		dirSum = dirSum.Normalize()
	}
	return irr, dirSum
}

func (m *Map) locate(idx, n int, qp queryParams, h *maxHeap) {
	if idx < 1 || idx > n {
		return
	}
	p := m.Photons[idx]

	if idx < m.HalfStored {
		axis := int(p.SplitPlane)
		delta := axisOf(qp.pos, axis) - axisOf(p.Pos, axis)
		if delta > 0 {
			m.locate(2*idx+1, n, qp, h)
			if delta*delta < h.bound(qp.initR2) {
				m.locate(2*idx, n, qp, h)
			}
		} else {
			m.locate(2*idx, n, qp, h)
			if delta*delta < h.bound(qp.initR2) {
				m.locate(2*idx+1, n, qp, h)
			}
		}
	}

	d := p.Pos.Sub(qp.pos)
	if qp.ellipticity != 1 {
		nd := d.Dot(qp.normal)
		d = d.Add(qp.normal.Mul(nd * (1/qp.ellipticity - 1)))
	}
	dist2 := d.LengthSqr()
	if dist2 >= h.bound(qp.initR2) {
		return
	}
	if p.Dir().Dot(qp.normal) >= 0 {
		return
	}
	h.insert(dist2, p)
}

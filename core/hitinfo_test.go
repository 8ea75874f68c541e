package core

import "testing"

func TestHitInfoMonotoneUpdate(t *testing.T) {
	hit := NewHitInfo()
	applied := hit.TryUpdate(5, func(h *HitInfo) { h.MtlID = 1 })
	if !applied || hit.Z != 5 || hit.MtlID != 1 {
		t.Fatalf("expected first update to apply, got applied=%v hit=%+v", applied, hit)
	}

	applied = hit.TryUpdate(10, func(h *HitInfo) { h.MtlID = 2 })
	if applied || hit.Z != 5 || hit.MtlID != 1 {
		t.Fatalf("farther candidate must not override: applied=%v hit=%+v", applied, hit)
	}

	applied = hit.TryUpdate(2, func(h *HitInfo) { h.MtlID = 3 })
	if !applied || hit.Z != 2 || hit.MtlID != 3 {
		t.Fatalf("closer candidate must override: applied=%v hit=%+v", applied, hit)
	}
}

func TestSideMaskAccepts(t *testing.T) {
	cases := []struct {
		mask     SideMask
		frontHit bool
		want     bool
	}{
		{SideFront, true, true},
		{SideFront, false, false},
		{SideBack, false, true},
		{SideBack, true, false},
		{SideBoth, true, true},
		{SideBoth, false, true},
	}
	for _, c := range cases {
		if got := c.mask.Accepts(c.frontHit); got != c.want {
			t.Errorf("mask=%v frontHit=%v: expected %v, got %v", c.mask, c.frontHit, c.want, got)
		}
	}
}

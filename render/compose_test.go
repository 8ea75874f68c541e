package render

import (
	"testing"

	"render-engine/core"
)

func TestGatherMergesDisjointRankRegions(t *testing.T) {
	width, height := 2, 1
	a := NewFrameBuffer(width, height)
	a.SetPixel(0, 0, core.Color{R: 1, G: 0, B: 0, A: 1}, 1, 1, false, false)

	b := NewFrameBuffer(width, height)
	b.SetPixel(1, 0, core.Color{R: 0, G: 1, B: 0, A: 1}, 2, 1, false, false)

	out := Gather(width, height, []RankBuffer{{Rank: 0, Buf: a}, {Rank: 1, Buf: b}})

	if out.Color[0] != 255 || out.Color[1] != 0 {
		t.Errorf("expected rank 0's red pixel preserved, got %v %v", out.Color[0], out.Color[1])
	}
	if out.Color[4] != 255 {
		t.Errorf("expected rank 1's green pixel preserved, got %v", out.Color[4])
	}
	if out.RenderedCount() != 2 {
		t.Errorf("expected combined rendered count 2, got %d", out.RenderedCount())
	}
}

package render

import (
	"testing"

	"render-engine/core"
)

func TestFrameBufferSetPixel(t *testing.T) {
	fb := NewFrameBuffer(4, 4)
	fb.SetPixel(1, 2, core.Color{R: 1, G: 0, B: 0, A: 1}, 3.5, 8, false, true)

	idx := 2*4 + 1
	if fb.Color[3*idx+0] != 255 || fb.Color[3*idx+1] != 0 || fb.Color[3*idx+2] != 0 {
		t.Errorf("expected pure red pixel, got %v %v %v", fb.Color[3*idx+0], fb.Color[3*idx+1], fb.Color[3*idx+2])
	}
	if fb.Depth[idx] != 3.5 {
		t.Errorf("expected depth 3.5, got %v", fb.Depth[idx])
	}
	if fb.SampleCount[idx] != 8 {
		t.Errorf("expected sample count 8, got %v", fb.SampleCount[idx])
	}
	if fb.IrradianceMask[idx] != 1 {
		t.Error("expected irradiance mask set")
	}
	if fb.WriteMask[idx] != 1 {
		t.Error("expected write mask set")
	}
	if fb.RenderedCount() != 1 {
		t.Errorf("expected rendered count 1, got %d", fb.RenderedCount())
	}
}

func TestFrameBufferSetPixelClampsOutOfRange(t *testing.T) {
	fb := NewFrameBuffer(1, 1)
	fb.SetPixel(0, 0, core.Color{R: 2, G: -1, B: 0.5, A: 1}, 0, 1, false, false)
	if fb.Color[0] != 255 {
		t.Errorf("expected clamp to 255, got %d", fb.Color[0])
	}
	if fb.Color[1] != 0 {
		t.Errorf("expected clamp to 0, got %d", fb.Color[1])
	}
}

func TestSampleCountImageRemap(t *testing.T) {
	fb := NewFrameBuffer(2, 1)
	fb.SetPixel(0, 0, core.Color{}, 0, 4, false, false)
	fb.SetPixel(1, 0, core.Color{}, 0, 64, false, false)

	img := fb.SampleCountImage()
	if img[0] != 0 {
		t.Errorf("expected min sample count to remap to 0, got %d", img[0])
	}
	if img[1] != 255 {
		t.Errorf("expected max sample count to remap to 255, got %d", img[1])
	}
}

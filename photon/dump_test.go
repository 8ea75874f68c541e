package photon

import (
	"bytes"
	"testing"

	"render-engine/core"
	"render-engine/math"
)

func TestDumpRoundTrip(t *testing.T) {
	raw := randomPhotons(30, 7)

	var buf bytes.Buffer
	n, err := Build(raw).WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if n != int64(len(raw))*recordSize {
		t.Errorf("expected %d bytes written, got %d", int64(len(raw))*recordSize, n)
	}

	got, err := ReadFrom(&buf)
	if err != nil {
		t.Fatalf("ReadFrom: %v", err)
	}
	if len(got) != len(raw) {
		t.Fatalf("expected %d photons read back, got %d", len(raw), len(got))
	}
}

func TestPhotonRecordSize(t *testing.T) {
	if recordSize != 24 {
		t.Errorf("expected 24-byte packed record, got %d", recordSize)
	}
}

func TestFullPowerReconstruction(t *testing.T) {
	full := core.Color{R: 1, G: 0.5, B: 0.25, A: 1}
	p := NewPhoton(math.Vec3{}, full, math.Vec3{X: 0, Y: 0, Z: -1})
	got := p.FullPower()
	tol := float32(0.01)
	if abs(got.R-full.R) > tol || abs(got.G-full.G) > tol || abs(got.B-full.B) > tol {
		t.Errorf("expected FullPower ~%v, got %v", full, got)
	}
}

package photon

import (
	"math/rand"
	"testing"

	"render-engine/core"
	"render-engine/math"
)

func randomPhotons(n int, seed int64) []Photon {
	r := rand.New(rand.NewSource(seed))
	photons := make([]Photon, n)
	for i := range photons {
		pos := math.Vec3{X: r.Float32()*10 - 5, Y: r.Float32()*10 - 5, Z: r.Float32()*10 - 5}
		dir := math.Vec3{X: 0, Y: 0, Z: -1}
		photons[i] = NewPhoton(pos, core.Color{R: 1, G: 1, B: 1, A: 1}, dir)
	}
	return photons
}

func TestBuildBalanced(t *testing.T) {
	raw := randomPhotons(100, 1)
	m := Build(raw)

	if len(m.Photons) != len(raw)+1 {
		t.Fatalf("expected %d slots, got %d", len(raw)+1, len(m.Photons))
	}

	seen := make(map[math.Vec3]int)
	for i := 1; i < len(m.Photons); i++ {
		seen[m.Photons[i].Pos]++
	}
	if len(seen) != len(raw) {
		t.Fatalf("expected %d distinct positions stored, got %d", len(raw), len(seen))
	}
}

func TestBuildEmpty(t *testing.T) {
	m := Build(nil)
	if len(m.Photons) != 1 {
		t.Fatalf("expected a single unused slot, got %d", len(m.Photons))
	}
}

func TestPhotonDirRoundTrip(t *testing.T) {
	dir := math.Vec3{X: 0.3, Y: -0.4, Z: 0.866}.Normalize()
	p := NewPhoton(math.Vec3{}, core.Color{R: 1, G: 1, B: 1, A: 1}, dir)
	got := p.Dir()

	tolerance := float32(0.001)
	if abs(got.X-dir.X) > tolerance || abs(got.Y-dir.Y) > tolerance || abs(got.Z-dir.Z) > tolerance {
		t.Errorf("Dir round trip: expected %v, got %v", dir, got)
	}
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

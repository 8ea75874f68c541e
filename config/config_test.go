package config

import (
	"os"
	"path/filepath"
	"testing"

	"render-engine/photon"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	if cfg.SppMin <= 0 || cfg.SppMax < cfg.SppMin {
		t.Errorf("expected sane default spp bounds, got min=%d max=%d", cfg.SppMin, cfg.SppMax)
	}
	if cfg.GatherFilter() != photon.FilterQuadratic {
		t.Errorf("expected default filter to resolve to quadratic, got %v", cfg.GatherFilter())
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "render.yaml")
	yaml := "spp_max: 128\nmax_bounce: 3\ngather_filter: linear\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.SppMax != 128 {
		t.Errorf("expected spp_max override to 128, got %d", cfg.SppMax)
	}
	if cfg.MaxBounce != 3 {
		t.Errorf("expected max_bounce override to 3, got %d", cfg.MaxBounce)
	}
	if cfg.GatherFilter() != photon.FilterLinear {
		t.Errorf("expected gather_filter override to linear, got %v", cfg.GatherFilter())
	}
	// an unset field should keep its default.
	if cfg.SppMin != Default().SppMin {
		t.Errorf("expected spp_min to keep default %d, got %d", Default().SppMin, cfg.SppMin)
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.DB == "" {
		t.Error("default config has no database path")
	}
	if cfg.Solve.FrameBuffer <= 0 {
		t.Errorf("frame buffer = %d", cfg.Solve.FrameBuffer)
	}
	if cfg.Render.Sea == "" || cfg.Render.Land == "" || cfg.Render.Unknown == "" {
		t.Errorf("missing cell glyphs: %+v", cfg.Render)
	}
}

func TestLoadCustomFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "db: /tmp/other.db\nsolve:\n  timeout_secs: 5\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.DB != "/tmp/other.db" {
		t.Errorf("db = %q", cfg.DB)
	}
	if cfg.Solve.Timeout() != 5*time.Second {
		t.Errorf("timeout = %v", cfg.Solve.Timeout())
	}
	// Fields the file omits keep their defaults.
	if cfg.Render.Sea != Default().Render.Sea {
		t.Errorf("sea glyph = %q", cfg.Render.Sea)
	}
}

func TestLoadMissingCustomFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() accepted a missing explicit path")
	}
}

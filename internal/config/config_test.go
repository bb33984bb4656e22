package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ofc-quake/internal/sims/ofc"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ofc.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := cfg.Sim(); got != ofc.DefaultConfig() {
		t.Fatalf("default sim config = %+v, want %+v", got, ofc.DefaultConfig())
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("default log level = %q, want info", cfg.Logging.Level)
	}
}

func TestLoadYAMLOverridesDefaults(t *testing.T) {
	path := writeFile(t, `
grid:
  n: 32
model:
  f_out: 0.002
run:
  steps: 1000
logging:
  level: debug
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	sim := cfg.Sim()
	if sim.N != 32 || sim.FOut != 0.002 || sim.Steps != 1000 {
		t.Fatalf("yaml values not applied: %+v", sim)
	}
	if sim.FCrit != 4.0 || sim.Alpha != 0.25 {
		t.Fatalf("unset keys should keep defaults: %+v", sim)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("log level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoadEnvOverridesYAML(t *testing.T) {
	path := writeFile(t, "grid:\n  n: 32\n")
	t.Setenv("OFC_N", "64")
	t.Setenv("OFC_ALPHA", "0.2")
	t.Setenv("OFC_LOG_LEVEL", "trace")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Grid.N != 64 || cfg.Model.Alpha != 0.2 || cfg.Logging.Level != "trace" {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil || !strings.Contains(err.Error(), "read config:") {
		t.Fatalf("missing file error = %v", err)
	}

	bad := writeFile(t, "grid: [not, a, map]\n")
	if _, err := Load(bad); err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("malformed yaml error = %v", err)
	}

	t.Setenv("OFC_STEPS", "many")
	if _, err := Load(""); err == nil || !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("bad env error = %v", err)
	}
}

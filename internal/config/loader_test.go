package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "primed.yaml", "addr: \":9090\"\nlog_level: debug\nportable_only: true\n")
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":9090" || cfg.LogLevel != "debug" || !cfg.PortableOnly {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "primed.json", `{"addr":":7070","cors_enabled":true,"cors_origins":["http://localhost:5173"]}`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":7070" || !cfg.CORSEnabled || len(cfg.CORSOrigins) != 1 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "primed.toml", "addr = \":6060\"\nportable_only = true\n")
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":6060" || !cfg.PortableOnly {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(""); err == nil {
		t.Fatal("empty path must error")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("missing file must error")
	}
	dir := t.TempDir()
	p := writeFile(t, dir, "primed.ini", "addr=:1\n")
	if _, err := Load(p); err == nil {
		t.Fatal("unsupported extension must error")
	}
	bad := writeFile(t, dir, "bad.json", "{not json")
	if _, err := Load(bad); err == nil {
		t.Fatal("malformed body must error")
	}
}

package fsutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandHomeNoTilde(t *testing.T) {
	for _, p := range []string{"", "/abs/path", "relative/path"} {
		got, err := ExpandHome(p)
		if err != nil {
			t.Fatalf("ExpandHome(%q): %v", p, err)
		}
		if got != p {
			t.Fatalf("ExpandHome(%q) = %q", p, got)
		}
	}
}

func TestExpandHomeTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir: %v", err)
	}
	got, err := ExpandHome("~")
	if err != nil {
		t.Fatalf("ExpandHome(~): %v", err)
	}
	if got != home {
		t.Fatalf("ExpandHome(~) = %q, want %q", got, home)
	}
	got, err = ExpandHome("~/primed.yaml")
	if err != nil {
		t.Fatalf("ExpandHome(~/primed.yaml): %v", err)
	}
	if got != filepath.Join(home, "primed.yaml") {
		t.Fatalf("ExpandHome(~/primed.yaml) = %q", got)
	}
}

func TestPathExists(t *testing.T) {
	dir := t.TempDir()
	if !PathExists(dir) {
		t.Fatal("temp dir must exist")
	}
	if PathExists(filepath.Join(dir, "nope")) {
		t.Fatal("missing path must not exist")
	}
}

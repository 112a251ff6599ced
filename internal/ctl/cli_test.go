package ctl

import (
	"bytes"
	"net/http/httptest"
	"strings"
	"testing"

	"primed/internal/engine"
	"primed/internal/httpapi"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := BuildRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestCountCommand(t *testing.T) {
	out, err := runCmd(t, "count", "1000")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if strings.TrimSpace(out) != "168" {
		t.Fatalf("count output %q, want 168", out)
	}
}

func TestCountCommandRejectsBadInput(t *testing.T) {
	if _, err := runCmd(t, "count", "abc"); err == nil {
		t.Fatal("non-integer limit must error")
	}
	if _, err := runCmd(t, "count", "-3"); err == nil {
		t.Fatal("negative limit must error")
	}
}

func TestNthCommand(t *testing.T) {
	out, err := runCmd(t, "nth", "100")
	if err != nil {
		t.Fatalf("nth: %v", err)
	}
	if strings.TrimSpace(out) != "541" {
		t.Fatalf("nth output %q, want 541", out)
	}
}

func TestNthCommandInvalidOrdinal(t *testing.T) {
	if _, err := runCmd(t, "nth", "0"); err == nil || !engine.IsInvalidOrdinal(err) {
		t.Fatalf("nth 0 = %v, want invalid ordinal error", err)
	}
}

func TestBackendsCommand(t *testing.T) {
	out, err := runCmd(t, "backends")
	if err != nil {
		t.Fatalf("backends: %v", err)
	}
	if !strings.Contains(out, "portable") {
		t.Fatalf("backends output missing portable:\n%s", out)
	}
	if !strings.Contains(out, "*") {
		t.Fatalf("backends output missing selection marker:\n%s", out)
	}
}

func TestStatusCommandAgainstServer(t *testing.T) {
	srv := httptest.NewServer(httpapi.NewMux(engine.New()))
	defer srv.Close()
	out, err := runCmd(t, "status", "--addr", srv.URL)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if !strings.Contains(out, "backend:") {
		t.Fatalf("status output missing backend line:\n%s", out)
	}
}

func TestHealthCommandAgainstServer(t *testing.T) {
	srv := httptest.NewServer(httpapi.NewMux(engine.New()))
	defer srv.Close()
	out, err := runCmd(t, "health", "--addr", srv.URL)
	if err != nil {
		t.Fatalf("health: %v", err)
	}
	if strings.TrimSpace(out) != "ok" {
		t.Fatalf("health output %q, want ok", out)
	}
}

func TestHealthCommandUnreachable(t *testing.T) {
	if _, err := runCmd(t, "health", "--addr", "http://127.0.0.1:1"); err == nil {
		t.Fatal("unreachable daemon must error")
	}
}

package engine

import "testing"

func TestEngineStatusShape(t *testing.T) {
	e := New()
	st := e.Status()
	if st.Backend == "" {
		t.Fatal("status must name the resolved backend")
	}
	if len(st.Backends) != len(candidates) {
		t.Fatalf("status lists %d backends, want %d", len(st.Backends), len(candidates))
	}
	selected := 0
	for _, b := range st.Backends {
		if b.Selected {
			selected++
			if b.Kind != st.Backend {
				t.Fatalf("selected entry %s disagrees with status backend %s", b.Kind, st.Backend)
			}
		}
	}
	if selected != 1 {
		t.Fatalf("exactly one backend must be selected, got %d", selected)
	}
	if st.ServerTimeUnix == 0 {
		t.Fatal("server time must be set")
	}
}

func TestEngineReadyAndBackend(t *testing.T) {
	e := New()
	if !e.Ready() {
		t.Fatal("engine must be ready once resolved")
	}
	if e.Backend() != string(Resolve().Kind) {
		t.Fatal("Backend() must match the resolution")
	}
	if got := e.CountPrimes(100); got != 25 {
		t.Fatalf("CountPrimes(100) = %d, want 25", got)
	}
	p, err := e.NthPrime(5)
	if err != nil || p != 11 {
		t.Fatalf("NthPrime(5) = %d, %v, want 11", p, err)
	}
}

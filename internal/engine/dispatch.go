package engine

import (
	"sync"
	"time"
)

// Selection is the process-wide resolution result: exactly one active
// backend plus the availability trail that led to it.
type Selection struct {
	Backend Backend
	Kind    Kind
	// Disabled is true when configuration forced the portable backend.
	Disabled bool
	// Trail holds probe outcomes in priority order, with skip reasons.
	Trail []Availability
}

var (
	resolveOnce sync.Once
	selection   Selection

	injectMu sync.Mutex
	injected *Config
)

// SetConfig injects the dispatcher configuration ahead of the first
// resolution; the daemon calls it after merging flags and the config file.
// It has no effect once resolution has happened.
func SetConfig(cfg Config) {
	injectMu.Lock()
	c := cfg
	injected = &c
	injectMu.Unlock()
}

// Resolve picks the active backend, once per process. Concurrent first
// calls may race on the probe, which is harmless because probing is
// side-effect free; sync.Once guarantees every caller observes the same
// Selection afterwards.
func Resolve() Selection {
	resolveOnce.Do(func() {
		injectMu.Lock()
		cfg := ConfigFromEnv()
		if injected != nil {
			cfg = *injected
		}
		injectMu.Unlock()
		selection = resolveWith(cfg, candidates)
		markSelected(selection.Kind)
	})
	return selection
}

// resolveWith applies the selection policy: walk candidates in priority
// order, skip unavailable or disabled ones, settle on the first survivor.
// Split out from Resolve so tests can exercise the policy without touching
// the process-wide memoization.
func resolveWith(cfg Config, cands []candidate) Selection {
	sel := Selection{Disabled: cfg.DisableAccel}
	for _, c := range cands {
		b, err := c.probe()
		av := Availability{Kind: c.kind, Available: err == nil}
		switch {
		case err != nil:
			av.Reason = err.Error()
		case cfg.DisableAccel && c.kind != KindPortable:
			av.Reason = "disabled by configuration"
		case sel.Backend == nil:
			sel.Backend = b
			sel.Kind = c.kind
		}
		sel.Trail = append(sel.Trail, av)
	}
	if sel.Backend == nil {
		// unreachable while portable stays in the candidate list; keep the
		// baseline guarantee anyway
		sel.Backend = portableBackend{}
		sel.Kind = KindPortable
	}
	return sel
}

// CountPrimes counts primes <= limit on the resolved backend.
func CountPrimes(limit int64) int64 {
	sel := Resolve()
	start := time.Now()
	n := sel.Backend.CountPrimes(limit)
	observeOp("count_primes", sel.Kind, start)
	return n
}

// NthPrime returns the nth prime (1-indexed) from the resolved backend.
// The only error is the invalid-ordinal error for n < 1.
func NthPrime(n int64) (int64, error) {
	sel := Resolve()
	start := time.Now()
	p, err := sel.Backend.NthPrime(n)
	if err != nil {
		return 0, err
	}
	observeOp("nth_prime", sel.Kind, start)
	return p, nil
}

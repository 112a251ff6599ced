package engine

import (
	"time"

	"primed/pkg/types"
)

// Engine adapts the package-level dispatcher to the HTTP layer's Service
// interface and carries process bookkeeping for /status.
type Engine struct {
	start time.Time
}

// New returns an Engine. Resolution still happens lazily on first use
// unless the caller resolved earlier.
func New() *Engine {
	return &Engine{start: time.Now()}
}

func (e *Engine) CountPrimes(limit int64) int64 { return CountPrimes(limit) }

func (e *Engine) NthPrime(n int64) (int64, error) { return NthPrime(n) }

// Backend names the resolved backend for response payloads.
func (e *Engine) Backend() string { return string(Resolve().Kind) }

// Ready reports whether the engine can serve. Resolution cannot fail (the
// portable baseline always probes), so readiness follows from resolving.
func (e *Engine) Ready() bool {
	Resolve()
	return true
}

// Status reports the selection and the probe trail.
func (e *Engine) Status() types.StatusResponse {
	sel := Resolve()
	backends := make([]types.BackendStatus, 0, len(sel.Trail))
	for _, av := range sel.Trail {
		backends = append(backends, types.BackendStatus{
			Kind:      string(av.Kind),
			Available: av.Available,
			Selected:  av.Kind == sel.Kind,
			Reason:    av.Reason,
		})
	}
	now := time.Now()
	return types.StatusResponse{
		Backend:        string(sel.Kind),
		AccelDisabled:  sel.Disabled,
		Backends:       backends,
		UptimeSeconds:  int64(now.Sub(e.start).Seconds()),
		ServerTimeUnix: now.Unix(),
	}
}

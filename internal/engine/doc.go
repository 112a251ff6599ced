// Package engine selects and routes to one of several interchangeable
// prime-counting backends. It is structured into small files by concern:
//
//   - backend.go: the Backend interface and backend kinds.
//   - errors.go: error types and helpers (IsInvalidOrdinal).
//   - portable.go: the byte-per-flag baseline, always available.
//   - words_64bit.go / words_stub.go: packed-word popcount backend on
//     64-bit targets, stubbed elsewhere.
//   - native_cgo.go / native_stub.go: in-tree C sieve via cgo, enabled with
//     `-tags=native`; the stub keeps default builds CGO-free.
//   - probe.go: priority-ordered capability probing.
//   - config.go: the two disable flags, read once at resolution.
//   - dispatch.go: once-per-process resolution and the public operations.
//   - metrics.go: Prometheus instrumentation.
//   - service.go: the adapter consumed by the HTTP layer.
//
// Every backend must return identical results for identical inputs,
// including the invalid-ordinal policy on NthPrime. The dispatcher resolves
// exactly once per process; configuration changes after resolution have no
// effect.
package engine

//go:build !native

package engine

// This file provides a no-CGO stub for the native backend. It is compiled
// when the 'native' build tag is NOT set, keeping default builds and CI
// CGO-free. The real backend lives in native_cgo.go (tagged 'native').

// nativeBuilt indicates this binary was compiled with the cgo sieve.
var nativeBuilt = false

func probeNative() (Backend, error) {
	return nil, errUnavailable(KindNative, "native sieve not built (missing 'native' build tag)")
}

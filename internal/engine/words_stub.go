//go:build !(amd64 || arm64)

package engine

// The packed-word backend is not built for this target; its probe reports
// unavailable and the dispatcher falls through.

func probeWords() (Backend, error) {
	return nil, errUnavailable(KindWords, "packed-word sieve not built for this target")
}

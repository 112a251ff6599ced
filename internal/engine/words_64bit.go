//go:build amd64 || arm64

package engine

import "primed/internal/sieve"

// wordsBackend runs the sieve over packed uint64 words and counts with
// popcount. Built only on the 64-bit targets it is tuned for; everywhere
// else the portable baseline stays the reference.
type wordsBackend struct{}

func probeWords() (Backend, error) { return wordsBackend{}, nil }

func (wordsBackend) Kind() Kind { return KindWords }

func (wordsBackend) CountPrimes(limit int64) int64 {
	if limit < 2 {
		return 0
	}
	return int64(sieve.Count(uint64(limit)))
}

func (wordsBackend) NthPrime(n int64) (int64, error) {
	if n < 1 {
		return 0, ErrInvalidOrdinal(n)
	}
	p := sieve.Nth(uint64(n), func(limit uint64) sieve.Flags { return sieve.NewPacked(limit) })
	return int64(p), nil
}

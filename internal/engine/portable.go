package engine

import "primed/internal/sieve"

// portableBackend is the baseline: byte-per-flag sieve with no build
// constraints. It is last in probe order and the backend every other
// implementation is checked against.
type portableBackend struct{}

func probePortable() (Backend, error) { return portableBackend{}, nil }

func (portableBackend) Kind() Kind { return KindPortable }

func (portableBackend) CountPrimes(limit int64) int64 {
	if limit < 2 {
		return 0
	}
	return int64(sieve.NewBytes(uint64(limit)).Count())
}

func (portableBackend) NthPrime(n int64) (int64, error) {
	if n < 1 {
		return 0, ErrInvalidOrdinal(n)
	}
	p := sieve.Nth(uint64(n), func(limit uint64) sieve.Flags { return sieve.NewBytes(limit) })
	return int64(p), nil
}

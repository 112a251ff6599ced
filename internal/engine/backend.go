package engine

// Kind identifies one of the interchangeable backend implementations.
type Kind string

const (
	// KindNative is the in-tree C sieve via cgo, built with `-tags=native`.
	KindNative Kind = "native"
	// KindWords is the packed-word popcount sieve, built on 64-bit targets.
	KindWords Kind = "words"
	// KindPortable is the byte-per-flag baseline, always available.
	KindPortable Kind = "portable"
)

// Backend is one implementation of the two public operations. Results must
// be byte-for-byte identical across backends for identical inputs; the only
// observable difference between backends is latency.
type Backend interface {
	Kind() Kind
	// CountPrimes returns the number of primes <= limit. Negative limits
	// count as zero.
	CountPrimes(limit int64) int64
	// NthPrime returns the nth prime, 1-indexed. The only error is the
	// invalid-ordinal error for n < 1.
	NthPrime(n int64) (int64, error)
}

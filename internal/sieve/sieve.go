// Package sieve implements the Sieve of Eratosthenes over two storage
// layouts: a packed uint64 bit set counted with popcount, and a plain
// byte-per-flag slice. Both layouts mark composites the same way and must
// agree bit for bit; backends pick a layout, the nth-prime logic in
// locate.go is shared.
package sieve

// Flags is a read-only view over primality flags for 0..Limit() inclusive.
type Flags interface {
	// Has reports whether n is marked prime. Out-of-range n is not prime.
	Has(n uint64) bool
	// Limit is the inclusive upper bound the flags were generated for.
	Limit() uint64
}

// mark runs the sieve over any writable flag layout. All indices start
// flagged prime except 0 and 1; composites are cleared starting at i*i
// (smaller multiples were already cleared by smaller prime factors).
func mark(limit uint64, has func(uint64) bool, clear func(uint64)) {
	clear(0)
	if limit >= 1 {
		clear(1)
	}
	for i := uint64(2); i*i <= limit; i++ {
		if has(i) {
			for j := i * i; j <= limit; j += i {
				clear(j)
			}
		}
	}
}

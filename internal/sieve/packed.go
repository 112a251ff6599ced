package sieve

import "math/bits"

// Packed stores one primality flag per bit in uint64 words. Counting is a
// popcount over whole words, so the tail word is masked down to the bits
// that actually fall within the limit.
type Packed struct {
	limit uint64
	words []uint64
}

// NewPacked builds the flag set for 0..limit inclusive and runs the sieve.
func NewPacked(limit uint64) *Packed {
	words := make([]uint64, limit/64+1)
	for i := range words {
		words[i] = ^uint64(0)
	}
	p := &Packed{limit: limit, words: words}
	mark(limit, p.Has, p.clear)
	// zero the bits above limit in the last word so Count stays a plain
	// popcount
	if top := limit % 64; top != 63 {
		p.words[len(p.words)-1] &= (uint64(1) << (top + 1)) - 1
	}
	return p
}

// Has reports whether n is marked prime.
func (p *Packed) Has(n uint64) bool {
	if n > p.limit {
		return false
	}
	return p.words[n/64]>>(n%64)&1 == 1
}

func (p *Packed) clear(n uint64) {
	p.words[n/64] &^= uint64(1) << (n % 64)
}

// Limit is the inclusive upper bound of the flag set.
func (p *Packed) Limit() uint64 { return p.limit }

// Count returns the number of flags still set.
func (p *Packed) Count() uint64 {
	var count uint64
	for _, w := range p.words {
		count += uint64(bits.OnesCount64(w))
	}
	return count
}

// Count returns the number of primes <= limit using the packed layout.
func Count(limit uint64) uint64 {
	if limit < 2 {
		return 0
	}
	return NewPacked(limit).Count()
}

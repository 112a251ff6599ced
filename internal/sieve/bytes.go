package sieve

// Bytes stores one primality flag per byte. It trades memory for the
// simplest possible indexing and has no per-word bookkeeping, which makes
// it the portable reference layout.
type Bytes struct {
	limit uint64
	flags []bool
}

// NewBytes builds the flag set for 0..limit inclusive and runs the sieve.
func NewBytes(limit uint64) *Bytes {
	flags := make([]bool, limit+1)
	for i := range flags {
		flags[i] = true
	}
	b := &Bytes{limit: limit, flags: flags}
	mark(limit, b.Has, b.clear)
	return b
}

// Has reports whether n is marked prime.
func (b *Bytes) Has(n uint64) bool {
	if n > b.limit {
		return false
	}
	return b.flags[n]
}

func (b *Bytes) clear(n uint64) {
	b.flags[n] = false
}

// Limit is the inclusive upper bound of the flag set.
func (b *Bytes) Limit() uint64 { return b.limit }

// Count returns the number of flags still set.
func (b *Bytes) Count() uint64 {
	var count uint64
	for _, f := range b.flags {
		if f {
			count++
		}
	}
	return count
}

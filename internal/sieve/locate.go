package sieve

import "math"

// smallPrimes answers the lowest ordinals directly. The asymptotic bound
// below is unreliable for tiny n, so those never reach the estimator.
var smallPrimes = [...]uint64{2, 3, 5, 7, 11, 13}

// boundMargin pads the p_n < n(ln n + ln ln n) approximation. The constant
// is empirical, not proven tight for all n; Nth retries with a doubled
// bound whenever the scan comes up short, so correctness never rests on it.
const boundMargin = 1.3

// SmallPrime returns the nth prime from the fixed table, with ok=false when
// n is beyond the table (or zero).
func SmallPrime(n uint64) (uint64, bool) {
	if n >= 1 && n <= uint64(len(smallPrimes)) {
		return smallPrimes[n-1], true
	}
	return 0, false
}

// UpperBound estimates a sieve limit expected to contain at least n primes,
// with a floor of 2n to cover the range where the asymptotic underestimates.
func UpperBound(n uint64) uint64 {
	f := float64(n)
	b := f * (math.Log(f) + math.Log(math.Log(f))) * boundMargin
	if b < 2*f {
		b = 2 * f
	}
	return uint64(b)
}

// ScanNth walks the flags ascending and returns the value at which the
// running prime count reaches n. ok=false means the flags ran out first:
// the bound they were generated for was an undercount.
func ScanNth(f Flags, n uint64) (uint64, bool) {
	var count uint64
	for i := uint64(2); i <= f.Limit(); i++ {
		if f.Has(i) {
			count++
			if count == n {
				return i, true
			}
		}
	}
	return 0, false
}

// Nth locates the nth prime (1-indexed), generating flags with gen. An
// undercount doubles the bound and retries, so the call is total for every
// n >= 1; callers handle n < 1 before reaching here.
func Nth(n uint64, gen func(limit uint64) Flags) uint64 {
	if p, ok := SmallPrime(n); ok {
		return p
	}
	bound := UpperBound(n)
	for {
		if p, ok := ScanNth(gen(bound), n); ok {
			return p
		}
		bound *= 2
	}
}

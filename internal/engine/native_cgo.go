//go:build native

package engine

/*
#include <stdint.h>
#include <stdlib.h>
#include <string.h>

// Bit-set Sieve of Eratosthenes, one flag per bit. Returns NULL when the
// allocation fails; callers treat that as "answer unavailable here".
static uint8_t *primed_build(int64_t limit) {
	int64_t nbytes = limit/8 + 1;
	uint8_t *bits = malloc(nbytes);
	if (bits == NULL) {
		return NULL;
	}
	memset(bits, 0xFF, nbytes);
	bits[0] &= (uint8_t)~3; // 0 and 1 are not prime
	for (int64_t i = 2; i*i <= limit; i++) {
		if (bits[i/8] & (uint8_t)(1 << (i%8))) {
			for (int64_t j = i*i; j <= limit; j += i) {
				bits[j/8] &= (uint8_t)~(1 << (j%8));
			}
		}
	}
	return bits;
}

// primed_count returns the number of primes <= limit, or -1 when the sieve
// could not be allocated.
int64_t primed_count(int64_t limit) {
	if (limit < 2) {
		return 0;
	}
	uint8_t *bits = primed_build(limit);
	if (bits == NULL) {
		return -1;
	}
	int64_t count = 0;
	for (int64_t i = 2; i <= limit; i++) {
		if (bits[i/8] & (uint8_t)(1 << (i%8))) {
			count++;
		}
	}
	free(bits);
	return count;
}

// primed_nth_upto scans flags up to limit and returns the nth prime, or -1
// when the bound proved too small (the caller retries with a larger one) or
// the sieve could not be allocated.
int64_t primed_nth_upto(int64_t n, int64_t limit) {
	uint8_t *bits = primed_build(limit);
	if (bits == NULL) {
		return -1;
	}
	int64_t count = 0;
	int64_t found = -1;
	for (int64_t i = 2; i <= limit; i++) {
		if (bits[i/8] & (uint8_t)(1 << (i%8))) {
			count++;
			if (count == n) {
				found = i;
				break;
			}
		}
	}
	free(bits);
	return found;
}
*/
import "C"

import "primed/internal/sieve"

// nativeBuilt indicates this binary was compiled with the cgo sieve.
var nativeBuilt = true

type nativeBackend struct{}

func probeNative() (Backend, error) { return nativeBackend{}, nil }

func (nativeBackend) Kind() Kind { return KindNative }

func (nativeBackend) CountPrimes(limit int64) int64 {
	if limit < 2 {
		return 0
	}
	if n := int64(C.primed_count(C.int64_t(limit))); n >= 0 {
		return n
	}
	// allocation failed in the C core; the packed Go sieve gives the
	// identical answer
	return int64(sieve.Count(uint64(limit)))
}

func (nativeBackend) NthPrime(n int64) (int64, error) {
	if n < 1 {
		return 0, ErrInvalidOrdinal(n)
	}
	if p, ok := sieve.SmallPrime(uint64(n)); ok {
		return int64(p), nil
	}
	// shared estimation policy: same initial bound and same doubling retry
	// as the Go backends, so results match across backends even when the
	// estimate undercounts
	bound := sieve.UpperBound(uint64(n))
	for tries := 0; tries < 8; tries++ {
		if p := int64(C.primed_nth_upto(C.int64_t(n), C.int64_t(bound))); p > 0 {
			return p, nil
		}
		bound *= 2
	}
	// the estimate never misses by 2^8; only a failing C allocation gets
	// here, and the packed Go sieve gives the identical answer
	p := sieve.Nth(uint64(n), func(limit uint64) sieve.Flags { return sieve.NewPacked(limit) })
	return int64(p), nil
}

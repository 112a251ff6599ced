package engine

import "fmt"

// invalidOrdinalError signals an nth-prime request with n < 1 for 400 mapping.
type invalidOrdinalError struct{ n int64 }

func (e invalidOrdinalError) Error() string {
	return fmt.Sprintf("ordinal must be >= 1, got %d", e.n)
}

// ErrInvalidOrdinal constructs the error returned by NthPrime for n < 1.
func ErrInvalidOrdinal(n int64) error { return invalidOrdinalError{n: n} }

// IsInvalidOrdinal reports whether err indicates a rejected ordinal.
func IsInvalidOrdinal(err error) bool {
	_, ok := err.(invalidOrdinalError)
	return ok
}

// backendUnavailableError records why a probe failed. It never crosses the
// public boundary; the dispatcher falls through to the next candidate.
type backendUnavailableError struct {
	kind   Kind
	reason string
}

func (e backendUnavailableError) Error() string {
	return string(e.kind) + " backend unavailable: " + e.reason
}

func errUnavailable(kind Kind, reason string) error {
	return backendUnavailableError{kind: kind, reason: reason}
}

package types

// CountResponse is returned by GET /v1/primes/count.
type CountResponse struct {
	// Inclusive upper bound that was counted to.
	// example: 1000
	Limit int64 `json:"limit" example:"1000"`
	// Number of primes <= limit.
	// example: 168
	Count int64 `json:"count" example:"168"`
	// Backend that served the call.
	// example: words
	Backend string `json:"backend" example:"words"`
}

// NthPrimeResponse is returned by GET /v1/primes/nth.
type NthPrimeResponse struct {
	// 1-indexed ordinal of the requested prime.
	// example: 100
	N int64 `json:"n" example:"100"`
	// Value of the nth prime.
	// example: 541
	Prime int64 `json:"prime" example:"541"`
	// Backend that served the call.
	// example: words
	Backend string `json:"backend" example:"words"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: ordinal must be >= 1, got 0
	Error string `json:"error" example:"ordinal must be >= 1, got 0"`
	// HTTP status code.
	// example: 400
	Code int `json:"code" example:"400"`
}

// BackendStatus describes one probed backend for /status.
type BackendStatus struct {
	// Backend kind (native, words, portable).
	// example: native
	Kind string `json:"kind" example:"native"`
	// Whether the capability probe succeeded.
	// example: false
	Available bool `json:"available" example:"false"`
	// Whether the dispatcher selected this backend.
	// example: false
	Selected bool `json:"selected" example:"false"`
	// Why the backend was not selected, when it wasn't.
	// example: native sieve not built (missing 'native' build tag)
	Reason string `json:"reason,omitempty" example:"native sieve not built (missing 'native' build tag)"`
}

// StatusResponse is returned by GET /status.
type StatusResponse struct {
	// Backend the dispatcher resolved to for this process.
	// example: words
	Backend string `json:"backend" example:"words"`
	// True when configuration forced the portable backend.
	// example: false
	AccelDisabled bool `json:"accel_disabled" example:"false"`
	// Probe outcomes in priority order.
	Backends []BackendStatus `json:"backends"`
	// Uptime of the server in seconds.
	// example: 3600
	UptimeSeconds int64 `json:"uptime_seconds" example:"3600"`
	// Server time in unix seconds.
	// example: 1700000000
	ServerTimeUnix int64 `json:"server_time_unix" example:"1700000000"`
}

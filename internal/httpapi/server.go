package httpapi

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"primed/internal/engine"
	"primed/pkg/types"
)

// Service defines the methods required by the HTTP API layer.
type Service interface {
	CountPrimes(limit int64) int64
	NthPrime(n int64) (int64, error)
	Backend() string
	Status() types.StatusResponse
	Ready() bool
}

func NewMux(svc Service) http.Handler {
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	// Compression for JSON endpoints
	r.Use(middleware.Compress(5))
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})
	if corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsAllowedOrigins,
			AllowedMethods: corsAllowedMethods,
			AllowedHeaders: corsAllowedHeaders,
		}))
	}
	r.Use(MetricsMiddleware)

	r.Get("/v1/primes/count", func(w http.ResponseWriter, r *http.Request) {
		limit, ok := queryInt(w, r, "limit")
		if !ok {
			return
		}
		if limit < 0 {
			writeJSONError(w, http.StatusBadRequest, "limit must be non-negative")
			return
		}
		start := time.Now()
		count := svc.CountPrimes(limit)
		logOpEnd(r, "count_primes", start)
		writeJSON(w, types.CountResponse{Limit: limit, Count: count, Backend: svc.Backend()})
	})

	r.Get("/v1/primes/nth", func(w http.ResponseWriter, r *http.Request) {
		n, ok := queryInt(w, r, "n")
		if !ok {
			return
		}
		start := time.Now()
		prime, err := svc.NthPrime(n)
		if err != nil {
			if engine.IsInvalidOrdinal(err) {
				writeJSONError(w, http.StatusBadRequest, err.Error())
				return
			}
			if he, ok := err.(HTTPError); ok {
				writeJSONError(w, he.StatusCode(), he.Error())
				return
			}
			writeJSONError(w, http.StatusInternalServerError, err.Error())
			return
		}
		logOpEnd(r, "nth_prime", start)
		writeJSON(w, types.NthPrimeResponse{N: n, Prime: prime, Backend: svc.Backend()})
	})

	r.Get("/status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, svc.Status())
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if svc.Ready() {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("ready"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("resolving"))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	// Swagger UI, mounted only with -tags=swagger
	MountSwagger(r)

	return r
}

// queryInt parses a required integer query parameter, writing a 400 and
// returning ok=false when it is missing or malformed.
func queryInt(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		writeJSONError(w, http.StatusBadRequest, name+" is required")
		return 0, false
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, name+" must be an integer")
		return 0, false
	}
	return v, true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to encode response")
	}
}

// logOpEnd emits one structured event per completed engine call when the
// effective level allows it.
func logOpEnd(r *http.Request, op string, start time.Time) {
	if requestLogLevel(r) < LevelInfo {
		return
	}
	if zlog != nil {
		z := zlog.Info().Str("op", op).Str("path", r.URL.Path).Dur("dur", time.Since(start))
		if rid := middleware.GetReqID(r.Context()); rid != "" {
			z = z.Str("request_id", rid)
		}
		z.Msg("engine op end")
		return
	}
	log.Printf("%s end dur=%s", op, time.Since(start))
}

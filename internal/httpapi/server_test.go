package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"primed/internal/engine"
	"primed/pkg/types"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(NewMux(engine.New()))
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, out any) int {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
	return resp.StatusCode
}

func TestCountEndpoint(t *testing.T) {
	srv := newTestServer(t)
	cases := []struct {
		limit string
		want  int64
	}{
		{"0", 0},
		{"1", 0},
		{"2", 1},
		{"10", 4},
		{"100", 25},
		{"1000", 168},
		{"10000", 1229},
	}
	for _, c := range cases {
		var body types.CountResponse
		code := getJSON(t, srv.URL+"/v1/primes/count?limit="+c.limit, &body)
		if code != http.StatusOK {
			t.Fatalf("limit=%s: status %d", c.limit, code)
		}
		if body.Count != c.want {
			t.Fatalf("limit=%s: count %d, want %d", c.limit, body.Count, c.want)
		}
		if body.Backend == "" {
			t.Fatalf("limit=%s: backend missing from response", c.limit)
		}
	}
}

func TestCountEndpointValidation(t *testing.T) {
	srv := newTestServer(t)
	for _, q := range []string{"", "?limit=", "?limit=abc", "?limit=-1"} {
		var body types.ErrorResponse
		code := getJSON(t, srv.URL+"/v1/primes/count"+q, &body)
		if code != http.StatusBadRequest {
			t.Fatalf("query %q: status %d, want 400", q, code)
		}
		if body.Error == "" || body.Code != http.StatusBadRequest {
			t.Fatalf("query %q: malformed error payload %+v", q, body)
		}
	}
}

func TestNthEndpoint(t *testing.T) {
	srv := newTestServer(t)
	cases := []struct {
		n    string
		want int64
	}{
		{"1", 2},
		{"2", 3},
		{"3", 5},
		{"4", 7},
		{"5", 11},
		{"100", 541},
		{"1000", 7919},
	}
	for _, c := range cases {
		var body types.NthPrimeResponse
		code := getJSON(t, srv.URL+"/v1/primes/nth?n="+c.n, &body)
		if code != http.StatusOK {
			t.Fatalf("n=%s: status %d", c.n, code)
		}
		if body.Prime != c.want {
			t.Fatalf("n=%s: prime %d, want %d", c.n, body.Prime, c.want)
		}
	}
}

func TestNthEndpointInvalidOrdinal(t *testing.T) {
	srv := newTestServer(t)
	for _, q := range []string{"?n=0", "?n=-1"} {
		var body types.ErrorResponse
		code := getJSON(t, srv.URL+"/v1/primes/nth"+q, &body)
		if code != http.StatusBadRequest {
			t.Fatalf("query %q: status %d, want 400", q, code)
		}
		if !strings.Contains(body.Error, "ordinal") {
			t.Fatalf("query %q: unexpected error message %q", q, body.Error)
		}
	}
	// unparseable is a 400 too
	if code := getJSON(t, srv.URL+"/v1/primes/nth?n=two", nil); code != http.StatusBadRequest {
		t.Fatalf("n=two: status %d, want 400", code)
	}
}

func TestStatusEndpoint(t *testing.T) {
	srv := newTestServer(t)
	var body types.StatusResponse
	if code := getJSON(t, srv.URL+"/status", &body); code != http.StatusOK {
		t.Fatalf("status code %d", code)
	}
	if body.Backend == "" {
		t.Fatal("status must name the resolved backend")
	}
	if len(body.Backends) == 0 {
		t.Fatal("status must list probed backends")
	}
	selected := 0
	for _, b := range body.Backends {
		if b.Selected {
			selected++
		}
	}
	if selected != 1 {
		t.Fatalf("exactly one backend must be selected, got %d", selected)
	}
}

func TestHealthAndReady(t *testing.T) {
	srv := newTestServer(t)
	for _, path := range []string{"/healthz", "/readyz"} {
		resp, err := http.Get(srv.URL + path)
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("%s: status %d", path, resp.StatusCode)
		}
	}
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t)
	// generate one engine op first so engine metrics exist
	if code := getJSON(t, srv.URL+"/v1/primes/count?limit=100", nil); code != http.StatusOK {
		t.Fatalf("count status %d", code)
	}
	resp, err := http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("/metrics status %d", resp.StatusCode)
	}
}

func TestNosniffHeader(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	resp.Body.Close()
	if got := resp.Header.Get("X-Content-Type-Options"); got != "nosniff" {
		t.Fatalf("X-Content-Type-Options = %q", got)
	}
}

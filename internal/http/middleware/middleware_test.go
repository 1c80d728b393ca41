package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/preston-bernstein/nba-player-stats-service/internal/logging"
	"github.com/preston-bernstein/nba-player-stats-service/internal/metrics"
	"github.com/preston-bernstein/nba-player-stats-service/internal/testutil"
)

func TestLoggingMiddlewareSetsRequestIDAndContextLogger(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	rec := metrics.NewRecorder()
	nextCalled := false

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		if got := RequestIDFromContext(r.Context()); got != "req-42" {
			t.Fatalf("expected request id in context, got %q", got)
		}
		logging.FromContext(r.Context(), nil).Info("inside handler")
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/stats/2024-11", nil)
	req.Header.Set("X-Request-ID", "req-42")
	rr := testutil.ServeRequest(LoggingMiddleware(logger, rec, next), req)

	if !nextCalled {
		t.Fatalf("expected next handler to be called")
	}
	testutil.AssertStatus(t, rr, http.StatusTeapot)
	if got := rr.Header().Get("X-Request-ID"); got != "req-42" {
		t.Fatalf("expected request id echoed, got %q", got)
	}
	if !testutil.ContainsAll(buf.String(), "inside handler", "request_id=req-42", "request complete", "status_code=418") {
		t.Fatalf("expected request-scoped logs, got %q", buf.String())
	}
}

func TestLoggingMiddlewareGeneratesRequestIDWhenMissing(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := RequestIDFromContext(r.Context()); got == "" {
			t.Fatalf("expected generated request id")
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "not a valid id!")
	rr := testutil.ServeRequest(LoggingMiddleware(logger, nil, next), req)

	testutil.AssertStatus(t, rr, http.StatusOK)
	if got := rr.Header().Get("X-Request-ID"); got == "" || got == "not a valid id!" {
		t.Fatalf("expected X-Request-ID header to be regenerated, got %q", got)
	}
}

func TestLoggingMiddlewareUsesForwardedFor(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Forwarded-For", "198.51.100.1, 10.0.0.1")
	rr := testutil.ServeRequest(LoggingMiddleware(logger, nil, next), req)

	testutil.AssertStatus(t, rr, http.StatusOK)
	if !testutil.ContainsAll(buf.String(), "client_ip=198.51.100.1") {
		t.Fatalf("expected forwarded client ip in logs, got %q", buf.String())
	}
}

func TestLoggingMiddlewareDefaultsLogger(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	rr := testutil.Serve(LoggingMiddleware(nil, nil, next), http.MethodGet, "/", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
}

func TestResponseWriterDefaultsStatus(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}
	if w.status != 0 {
		t.Fatalf("expected zero status before write, got %d", w.status)
	}
	w.WriteHeader(http.StatusAccepted)
	if w.status != http.StatusAccepted {
		t.Fatalf("expected status set to 202, got %d", w.status)
	}
}

func TestCORSAllowsAnyOrigin(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := CORS(nil, next)

	req := httptest.NewRequest(http.MethodGet, "/api/stats/2024-11", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rr := testutil.ServeRequest(handler, req)

	testutil.AssertStatus(t, rr, http.StatusOK)
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got == "" {
		t.Fatalf("expected allow-origin header")
	}
}

func TestCORSPreflight(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })
	handler := CORS([]string{"https://stats.example.com"}, next)

	req := httptest.NewRequest(http.MethodOptions, "/api/stats/2024-11", nil)
	req.Header.Set("Origin", "https://stats.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rr := testutil.ServeRequest(handler, req)

	if called {
		t.Fatalf("expected preflight to be answered by cors")
	}
	if rr.Code >= 300 {
		t.Fatalf("expected preflight success, got %d", rr.Code)
	}
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "https://stats.example.com" {
		t.Fatalf("unexpected allow-origin %q", got)
	}
}

func TestCORSRejectsUnknownOrigin(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	handler := CORS([]string{"https://stats.example.com"}, next)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rr := testutil.ServeRequest(handler, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("expected no allow-origin for unknown origin, got %q", got)
	}
}

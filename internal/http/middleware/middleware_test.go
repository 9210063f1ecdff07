package middleware

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/preston-bernstein/nexus-data-service/internal/metrics"
	"github.com/preston-bernstein/nexus-data-service/internal/testutil"
)

func TestLoggingMiddlewareSetsRequestID(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	rec := metrics.NewRecorder()
	nextCalled := false

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		if got := RequestIDFromContext(r.Context()); got != "client-id-1" {
			t.Fatalf("expected incoming request id in context, got %q", got)
		}
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/clubs", nil)
	req.Header.Set("X-Request-ID", "client-id-1")
	rr := testutil.ServeRequest(LoggingMiddleware(logger, rec, next), req)

	if !nextCalled {
		t.Fatalf("expected next handler to be called")
	}
	testutil.AssertStatus(t, rr, http.StatusTeapot)
	if got := rr.Header().Get("X-Request-ID"); got != "client-id-1" {
		t.Fatalf("expected request id echoed, got %q", got)
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

	rr := testutil.Serve(LoggingMiddleware(logger, nil, next), http.MethodGet, "/v1/news?foo=bar", nil)

	testutil.AssertStatus(t, rr, http.StatusOK)
	if got := rr.Header().Get("X-Request-ID"); got == "" {
		t.Fatalf("expected X-Request-ID header to be set")
	}
}

func TestLoggingMiddlewareNilLoggerFallsBackToDefault(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	rr := testutil.Serve(LoggingMiddleware(nil, nil, next), http.MethodDelete, "/v1/news/1", nil)
	testutil.AssertStatus(t, rr, http.StatusNoContent)
}

func TestResponseWriterKeepsFirstStatus(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr, status: http.StatusOK}

	w.WriteHeader(http.StatusAccepted)
	w.WriteHeader(http.StatusInternalServerError)
	if w.status != http.StatusAccepted {
		t.Fatalf("expected first status to stick, got %d", w.status)
	}
}

func TestResponseWriterImplicitOK(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr, status: http.StatusOK}

	_, _ = w.Write([]byte("hi"))
	w.WriteHeader(http.StatusTeapot)
	if w.status != http.StatusOK {
		t.Fatalf("expected implicit 200 after body write, got %d", w.status)
	}
}

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: "/:unmatched"},
		{in: "/v1/clubs", want: "/v1/clubs"},
		{in: "/v1/clubs/finance", want: "/v1/clubs/:id"},
		{in: "/v1/news", want: "/v1/news"},
		{in: "/v1/news/1728561600000", want: "/v1/news/:id"},
		{in: "/v1/news/", want: "/:unmatched"},
		{in: "/v1/clubs/a/b", want: "/:unmatched"},
		{in: "/v1/features", want: "/v1/features"},
		{in: "/v1/auth/login", want: "/v1/auth/login"},
		{in: "/health?x=1", want: "/health"},
		{in: "/wp-admin/setup.php", want: "/:unmatched"},
		{in: "/.env", want: "/:unmatched"},
	}

	for _, tt := range tests {
		if got := normalizePath(tt.in); got != tt.want {
			t.Fatalf("normalizePath(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestNormalizePathBoundsScannerTraffic(t *testing.T) {
	labels := make(map[string]bool)
	for i := 0; i < 100; i++ {
		labels[normalizePath(fmt.Sprintf("/scan-%d/%d", i, i*7))] = true
	}
	if len(labels) != 1 || !labels["/:unmatched"] {
		t.Fatalf("expected unknown paths to share one label, got %v", labels)
	}
}

func TestRequestIDHelpers(t *testing.T) {
	ctx := context.Background()
	if got := RequestIDFromContext(ctx); got != "" {
		t.Fatalf("expected empty id, got %s", got)
	}

	ctx = withRequestID(ctx, "abc123")
	if got := RequestIDFromContext(ctx); got != "abc123" {
		t.Fatalf("expected id from context, got %s", got)
	}
	if got := RequestIDFromContext(nil); got != "" {
		t.Fatalf("expected empty id for nil context, got %s", got)
	}
}

func BenchmarkLoggingMiddleware(b *testing.B) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	rec := metrics.NewRecorder()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Microsecond)
		w.WriteHeader(http.StatusOK)
	})

	handler := LoggingMiddleware(logger, rec, next)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/clubs", nil)
		handler.ServeHTTP(rr, req)
	}
}

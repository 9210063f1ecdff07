package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/preston-bernstein/nexus-data-service/internal/logging"
	"github.com/preston-bernstein/nexus-data-service/internal/testutil"
)

func TestLoggingMiddlewareWritesRequestFields(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logging.FromContext(r.Context(), nil).Info("inside handler")
		w.WriteHeader(http.StatusCreated)
	})

	req := httptest.NewRequest(http.MethodPost, "/v1/news", nil)
	req.Header.Set("X-Request-ID", "req-42")
	req.Header.Set("X-Forwarded-For", "198.51.100.1")
	testutil.ServeRequest(LoggingMiddleware(logger, nil, next), req)

	out := buf.String()
	for _, want := range []string{
		"inside handler",
		"request complete",
		"request_id=req-42",
		"method=POST",
		"path=/v1/news",
		"client_ip=198.51.100.1",
		"status_code=201",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in log output:\n%s", want, out)
		}
	}
}

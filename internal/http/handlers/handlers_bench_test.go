package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/preston-bernstein/nexus-data-service/internal/testutil"
)

func BenchmarkListClubs(b *testing.B) {
	svc, _, _ := testutil.NewMockBackend(b)
	h := NewHandler(Config{Backend: svc})

	req := httptest.NewRequest(http.MethodGet, "/v1/clubs", nil)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rr := httptest.NewRecorder()
		h.ListClubs(rr, req)
	}
}

func BenchmarkGetClub(b *testing.B) {
	svc, _, _ := testutil.NewMockBackend(b)
	h := NewHandler(Config{Backend: svc})

	req := httptest.NewRequest(http.MethodGet, "/v1/clubs/tech", nil)
	req.SetPathValue("id", "tech")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rr := httptest.NewRecorder()
		h.GetClub(rr, req)
	}
}

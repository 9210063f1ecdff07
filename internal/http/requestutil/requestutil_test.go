package requestutil

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSanitizeRequestID(t *testing.T) {
	if got := SanitizeRequestID("valid-123"); got != "valid-123" {
		t.Fatalf("expected pass-through, got %s", got)
	}
	if got := SanitizeRequestID("bad id"); got == "" || got == "bad id" {
		t.Fatalf("expected sanitized id, got %s", got)
	}
	if got := NewRequestID(); got == "" {
		t.Fatalf("expected generated request id")
	}
	useFallback.Store(true)
	defer useFallback.Store(false)
	if got := NewRequestID(); got == "" {
		t.Fatalf("expected fallback request id when RNG fails")
	}
}

func TestClientIP(t *testing.T) {
	if got := ClientIP(nil); got != "" {
		t.Fatalf("expected empty for nil request, got %q", got)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "9.9.9.9:1234"
	req.Header.Set("X-Forwarded-For", "1.2.3.4")
	if got := ClientIP(req); got != "9.9.9.9" {
		t.Fatalf("expected remote host without port, got %s", got)
	}

	req.RemoteAddr = "pipe"
	if got := ClientIP(req); got != "pipe" {
		t.Fatalf("expected raw remote addr when it has no port, got %s", got)
	}
}

func TestProxyResolverTrustsOnlyConfiguredPeers(t *testing.T) {
	p, err := NewProxyResolver([]string{"10.0.0.0/8", " 192.168.1.5 ", ""})
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	cases := []struct {
		name   string
		remote string
		xff    string
		want   string
	}{
		{"untrusted peer ignores header", "203.0.113.7:5000", "1.2.3.4", "203.0.113.7"},
		{"trusted peer yields client", "10.1.2.3:5000", "1.2.3.4", "1.2.3.4"},
		{"spoofed left entries are skipped", "10.1.2.3:5000", "6.6.6.6, 1.2.3.4, 10.9.9.9", "1.2.3.4"},
		{"bare address proxy", "192.168.1.5:80", "8.8.8.8", "8.8.8.8"},
		{"all hops trusted falls back to peer", "10.1.2.3:5000", "10.0.0.9", "10.1.2.3"},
		{"malformed hop falls back to peer", "10.1.2.3:5000", "not-an-ip", "10.1.2.3"},
		{"missing header", "10.1.2.3:5000", "", "10.1.2.3"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = tc.remote
		if tc.xff != "" {
			req.Header.Set("X-Forwarded-For", tc.xff)
		}
		if got := p.ClientIP(req); got != tc.want {
			t.Fatalf("%s: expected %s, got %s", tc.name, tc.want, got)
		}
	}
}

func TestNilProxyResolverUsesPeer(t *testing.T) {
	var p *ProxyResolver
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "9.9.9.9:1"
	req.Header.Set("X-Forwarded-For", "1.2.3.4")
	if got := p.ClientIP(req); got != "9.9.9.9" {
		t.Fatalf("expected peer, got %s", got)
	}
}

func TestNewProxyResolverRejectsGarbage(t *testing.T) {
	if _, err := NewProxyResolver([]string{"10.0.0.0/8", "proxy.local"}); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestBearerToken(t *testing.T) {
	cases := []struct {
		header string
		want   string
		ok     bool
	}{
		{"", "", false},
		{"Bearer abc", "abc", true},
		{"bearer   abc ", "abc", true},
		{"Basic abc", "", false},
		{"Bearer ", "", false},
		{"Bearer", "", false},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		got, ok := BearerToken(req)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("header %q: expected (%q,%v), got (%q,%v)", tc.header, tc.want, tc.ok, got, ok)
		}
	}
}

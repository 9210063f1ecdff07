package auth

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMemoryTokenStoreRoundTrip(t *testing.T) {
	s := NewMemoryTokenStore()
	assertStoreRoundTrip(t, s)
}

func TestFileTokenStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token")
	s := NewFileTokenStore(path)
	assertStoreRoundTrip(t, s)
}

func TestFileTokenStoreUsesPrivatePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	s := NewFileTokenStore(path)
	if err := s.SetToken("abc"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("expected mode 0600, got %o", perm)
	}
}

func TestFileTokenStoreSharedAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	if err := NewFileTokenStore(path).SetToken("persisted"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := NewFileTokenStore(path).Token()
	if err != nil || got != "persisted" {
		t.Fatalf("expected token from previous run, got %q (%v)", got, err)
	}
}

func assertStoreRoundTrip(t *testing.T, s TokenStore) {
	t.Helper()

	if got, err := s.Token(); err != nil || got != "" {
		t.Fatalf("expected empty initial token, got %q (%v)", got, err)
	}
	if err := s.SetToken("abc"); err != nil {
		t.Fatalf("unexpected set error: %v", err)
	}
	if got, _ := s.Token(); got != "abc" {
		t.Fatalf("expected stored token, got %q", got)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("unexpected clear error: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("expected clear to be idempotent, got %v", err)
	}
	if got, _ := s.Token(); got != "" {
		t.Fatalf("expected token cleared, got %q", got)
	}
}

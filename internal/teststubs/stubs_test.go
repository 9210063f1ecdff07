package teststubs

import (
	"context"
	"errors"
	"testing"

	"github.com/preston-bernstein/nexus-data-service/internal/domain/clubs"
	"github.com/preston-bernstein/nexus-data-service/internal/domain/news"
)

func TestStubTokenStore(t *testing.T) {
	s := &StubTokenStore{}
	if err := s.SetToken("abc"); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if got, _ := s.Token(); got != "abc" {
		t.Fatalf("expected stored token, got %q", got)
	}
	_ = s.Clear()
	if got, _ := s.Token(); got != "" {
		t.Fatalf("expected cleared token, got %q", got)
	}

	boom := errors.New("disk full")
	failing := &StubTokenStore{ReadErr: boom, WriteErr: boom}
	if _, err := failing.Token(); !errors.Is(err, boom) {
		t.Fatalf("expected read error passthrough")
	}
	if err := failing.SetToken("x"); !errors.Is(err, boom) {
		t.Fatalf("expected write error passthrough")
	}
	if failing.SetCalls.Load() != 1 {
		t.Fatalf("expected set call counted")
	}
}

func TestRecordingClubsTracksCalls(t *testing.T) {
	r := &RecordingClubs{Clubs: []clubs.Club{{ID: "tech", Name: "Tech"}}}
	ctx := context.Background()

	if _, ok, _ := r.Get(ctx, "tech"); !ok {
		t.Fatalf("expected seeded club")
	}
	updated, err := r.Update(ctx, "tech", clubs.Patch{Tagline: clubs.String("t")})
	if err != nil || updated.Tagline != "t" || r.LastID != "tech" {
		t.Fatalf("unexpected update %+v err %v", updated, err)
	}
	if r.Calls.Load() != 2 {
		t.Fatalf("expected 2 calls, got %d", r.Calls.Load())
	}
}

func TestRecordingNewsTracksMutations(t *testing.T) {
	r := &RecordingNews{}
	ctx := context.Background()
	_, _ = r.Create(ctx, news.Item{ID: "1", Title: "x"})
	_ = r.Delete(ctx, "1")
	if len(r.Created) != 1 || len(r.Deleted) != 1 {
		t.Fatalf("expected mutations recorded, got %+v %+v", r.Created, r.Deleted)
	}

	r.Err = errors.New("boom")
	if err := r.Delete(ctx, "2"); err == nil {
		t.Fatalf("expected error passthrough")
	}
}

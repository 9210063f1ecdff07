// Package contracttest holds behaviour every backend.Backend must share, so
// implementations can be checked for parity against one suite.
package contracttest

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/preston-bernstein/nexus-data-service/internal/backend"
	"github.com/preston-bernstein/nexus-data-service/internal/domain/clubs"
	"github.com/preston-bernstein/nexus-data-service/internal/domain/news"
)

// AdminPassword is the shared secret the factory must configure.
const AdminPassword = "nexus2024"

// Factory builds a backend over a freshly seeded store.
type Factory func(t *testing.T) backend.Backend

// Run exercises the service contract against backends produced by newBackend.
func Run(t *testing.T, newBackend Factory) {
	t.Helper()

	cases := []struct {
		name string
		fn   func(t *testing.T, b backend.Backend)
	}{
		{"GetReturnsSeededClubs", getReturnsSeededClubs},
		{"GetMissingClubIsNotAnError", getMissingClubIsNotAnError},
		{"UpdateMergesAndPersists", updateMergesAndPersists},
		{"UpdateMissingClubFails", updateMissingClubFails},
		{"CreatePrependsNews", createPrependsNews},
		{"CreateAssignsIDWhenEmpty", createAssignsIDWhenEmpty},
		{"CreateRejectsBlankTitle", createRejectsBlankTitle},
		{"CreateTrimsID", createTrimsID},
		{"DeleteIsIdempotent", deleteIsIdempotent},
		{"LoginWithSharedSecret", loginWithSharedSecret},
		{"LoginRejectsOtherPasswords", loginRejectsOtherPasswords},
		{"LogoutAlwaysSucceeds", logoutAlwaysSucceeds},
		{"ListReturnsCopies", listReturnsCopies},
		{"FeaturesAreListed", featuresAreListed},
		{"NewsScenario", newsScenario},
		{"ClubTaglineScenario", clubTaglineScenario},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.fn(t, newBackend(t))
		})
	}
}

func login(t *testing.T, b backend.Backend) {
	t.Helper()
	resp, err := b.Auth().Login(context.Background(), AdminPassword)
	if err != nil || !resp.Success {
		t.Fatalf("expected login to succeed, got %+v (%v)", resp, err)
	}
}

func newsIDs(t *testing.T, b backend.Backend) []string {
	t.Helper()
	items, err := b.News().List(context.Background())
	if err != nil {
		t.Fatalf("list news: %v", err)
	}
	return news.IDs(items)
}

func assertIDs(t *testing.T, got []string, want ...string) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected ids %v, got %v", want, got)
	}
}

func getReturnsSeededClubs(t *testing.T, b backend.Backend) {
	ctx := context.Background()
	all, err := b.Clubs().List(ctx)
	if err != nil {
		t.Fatalf("list clubs: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 seeded clubs, got %d", len(all))
	}
	for _, c := range all {
		got, ok, err := b.Clubs().Get(ctx, c.ID)
		if err != nil || !ok {
			t.Fatalf("expected club %s, got ok=%v err=%v", c.ID, ok, err)
		}
		if got.ID != c.ID {
			t.Fatalf("expected id %s, got %s", c.ID, got.ID)
		}
	}
}

func getMissingClubIsNotAnError(t *testing.T, b backend.Backend) {
	got, ok, err := b.Clubs().Get(context.Background(), "does-not-exist")
	if err != nil {
		t.Fatalf("expected no error for missing club, got %v", err)
	}
	if ok || got.ID != "" {
		t.Fatalf("expected absent result, got %+v", got)
	}
}

func updateMergesAndPersists(t *testing.T, b backend.Backend) {
	login(t, b)
	ctx := context.Background()
	before, _, err := b.Clubs().Get(ctx, "tech")
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	features := []string{"Only one"}
	updated, err := b.Clubs().Update(ctx, "tech", clubs.Patch{Name: clubs.String("Renamed"), Features: &features})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	want := before.Clone()
	want.Name = "Renamed"
	want.Features = []string{"Only one"}
	if !reflect.DeepEqual(updated, want) {
		t.Fatalf("unexpected merge:\nwant %+v\ngot  %+v", want, updated)
	}

	after, ok, err := b.Clubs().Get(ctx, "tech")
	if err != nil || !ok {
		t.Fatalf("get after update: ok=%v err=%v", ok, err)
	}
	if !reflect.DeepEqual(after, want) {
		t.Fatalf("expected read-after-write consistency, got %+v", after)
	}
}

func updateMissingClubFails(t *testing.T, b backend.Backend) {
	login(t, b)
	_, err := b.Clubs().Update(context.Background(), "never-seeded", clubs.Patch{Tagline: clubs.String("x")})
	if !errors.Is(err, backend.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func createPrependsNews(t *testing.T, b backend.Backend) {
	login(t, b)
	item := news.Item{ID: "99", Title: "Fresh", Summary: "S", Date: "Oct 11, 2024", Category: news.CategoryAchievement, Author: "A"}

	created, err := b.News().Create(context.Background(), item)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created != item {
		t.Fatalf("expected created item %+v, got %+v", item, created)
	}

	items, err := b.News().List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if items[0] != item || items[1].ID != "1" {
		t.Fatalf("expected new item first and previous head second, got %v", news.IDs(items))
	}
}

func createAssignsIDWhenEmpty(t *testing.T, b backend.Backend) {
	login(t, b)
	created, err := b.News().Create(context.Background(), news.Item{Title: "No id", Category: news.CategoryOpportunity})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" || created.Date == "" {
		t.Fatalf("expected id and date to be assigned, got %+v", created)
	}
	if ids := newsIDs(t, b); ids[0] != created.ID {
		t.Fatalf("expected assigned id at head, got %v", ids)
	}
}

func createRejectsBlankTitle(t *testing.T, b backend.Backend) {
	login(t, b)
	for _, item := range []news.Item{{ID: "9"}, {ID: "10", Title: "   "}} {
		_, err := b.News().Create(context.Background(), item)
		if !errors.Is(err, backend.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", item, err)
		}
	}
	assertIDs(t, newsIDs(t, b), "1", "2", "3")
}

func createTrimsID(t *testing.T, b backend.Backend) {
	login(t, b)
	ctx := context.Background()

	created, err := b.News().Create(ctx, news.Item{ID: " 5 ", Title: "Padded"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != "5" {
		t.Fatalf("expected trimmed id, got %q", created.ID)
	}
	if _, err := b.News().Create(ctx, news.Item{ID: "5", Title: "Again"}); !errors.Is(err, backend.ErrConflict) {
		t.Fatalf("expected trimmed and bare id to collide, got %v", err)
	}
}

func deleteIsIdempotent(t *testing.T, b backend.Backend) {
	login(t, b)
	ctx := context.Background()

	if err := b.News().Delete(ctx, "2"); err != nil {
		t.Fatalf("delete present: %v", err)
	}
	assertIDs(t, newsIDs(t, b), "1", "3")

	if err := b.News().Delete(ctx, "2"); err != nil {
		t.Fatalf("delete absent: %v", err)
	}
	if err := b.News().Delete(ctx, "nope"); err != nil {
		t.Fatalf("delete unknown: %v", err)
	}
	assertIDs(t, newsIDs(t, b), "1", "3")
}

func loginWithSharedSecret(t *testing.T, b backend.Backend) {
	resp, err := b.Auth().Login(context.Background(), AdminPassword)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if !resp.Success || resp.Token == "" {
		t.Fatalf("expected success with token, got %+v", resp)
	}
}

func loginRejectsOtherPasswords(t *testing.T, b backend.Backend) {
	for _, pw := range []string{"", "wrong", "Nexus2024"} {
		resp, err := b.Auth().Login(context.Background(), pw)
		if err != nil {
			t.Fatalf("expected rejection without error for %q, got %v", pw, err)
		}
		if resp.Success || resp.Token != "" {
			t.Fatalf("expected failure without token for %q, got %+v", pw, resp)
		}
	}
}

func logoutAlwaysSucceeds(t *testing.T, b backend.Backend) {
	ctx := context.Background()
	if err := b.Auth().Logout(ctx); err != nil {
		t.Fatalf("logout without session: %v", err)
	}
	login(t, b)
	if err := b.Auth().Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}
}

func listReturnsCopies(t *testing.T, b backend.Backend) {
	ctx := context.Background()
	first, err := b.Clubs().List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	first[0].Tagline = "mutated"
	first[0].Leadership[0].Name = "mutated"

	second, err := b.Clubs().List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if second[0].Tagline == "mutated" || second[0].Leadership[0].Name == "mutated" {
		t.Fatalf("expected caller mutation not to leak into the backend")
	}
}

func featuresAreListed(t *testing.T, b backend.Backend) {
	items, err := b.Features().List(context.Background())
	if err != nil {
		t.Fatalf("list features: %v", err)
	}
	if len(items) != 4 {
		t.Fatalf("expected 4 features, got %d", len(items))
	}
}

func newsScenario(t *testing.T, b backend.Backend) {
	login(t, b)
	ctx := context.Background()

	_, err := b.News().Create(ctx, news.Item{
		ID:       "4",
		Title:    "X",
		Summary:  "Y",
		Date:     "Oct 10, 2024",
		Category: news.CategoryAnnouncement,
		Author:   "Z",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	assertIDs(t, newsIDs(t, b), "4", "1", "2", "3")

	if err := b.News().Delete(ctx, "2"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	assertIDs(t, newsIDs(t, b), "4", "1", "3")
}

func clubTaglineScenario(t *testing.T, b backend.Backend) {
	login(t, b)
	ctx := context.Background()
	before, _, _ := b.Clubs().Get(ctx, "finance")

	if _, err := b.Clubs().Update(ctx, "finance", clubs.Patch{Tagline: clubs.String("New Tag")}); err != nil {
		t.Fatalf("update: %v", err)
	}

	after, ok, err := b.Clubs().Get(ctx, "finance")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if after.Tagline != "New Tag" {
		t.Fatalf("expected tagline New Tag, got %q", after.Tagline)
	}
	if after.Description != before.Description {
		t.Fatalf("expected description unchanged")
	}
}

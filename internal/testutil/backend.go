package testutil

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/preston-bernstein/nexus-data-service/internal/auth"
	"github.com/preston-bernstein/nexus-data-service/internal/backend"
	"github.com/preston-bernstein/nexus-data-service/internal/backend/contracttest"
	"github.com/preston-bernstein/nexus-data-service/internal/backend/mock"
	"github.com/preston-bernstein/nexus-data-service/internal/domain/clubs"
	"github.com/preston-bernstein/nexus-data-service/internal/domain/features"
	"github.com/preston-bernstein/nexus-data-service/internal/domain/news"
	"github.com/preston-bernstein/nexus-data-service/internal/domain/session"
	"github.com/preston-bernstein/nexus-data-service/internal/store"
)

// NewAuthenticator builds an authenticator for contracttest.AdminPassword with
// the cheapest bcrypt cost.
func NewAuthenticator(t testing.TB) *auth.Authenticator {
	t.Helper()
	a, err := auth.NewAuthenticator(auth.Config{
		Password: contracttest.AdminPassword,
		Secret:   "test-secret",
		Cost:     bcrypt.MinCost,
	})
	if err != nil {
		t.Fatalf("failed to build authenticator: %v", err)
	}
	return a
}

// NewMockBackend returns a seeded mock backend without delay, its store and
// the authenticator that signs its tokens.
func NewMockBackend(t testing.TB) (*mock.Backend, *store.MemoryStore, *auth.Authenticator) {
	t.Helper()
	st := store.NewSeededStore()
	authn := NewAuthenticator(t)
	return mock.New(st, authn, mock.Config{Now: NowAt(FixedNow)}), st, authn
}

// ErrBackend fails every operation with Err.
type ErrBackend struct {
	Err error
}

var _ backend.Backend = ErrBackend{}

func (b ErrBackend) Name() string                     { return "err" }
func (b ErrBackend) Clubs() backend.ClubService       { return b }
func (b ErrBackend) News() backend.NewsService        { return errNews(b) }
func (b ErrBackend) Features() backend.FeatureService { return errFeatures(b) }
func (b ErrBackend) Auth() backend.AuthService        { return errAuth(b) }

func (b ErrBackend) List(context.Context) ([]clubs.Club, error) { return nil, b.Err }
func (b ErrBackend) Get(context.Context, string) (clubs.Club, bool, error) {
	return clubs.Club{}, false, b.Err
}
func (b ErrBackend) Update(context.Context, string, clubs.Patch) (clubs.Club, error) {
	return clubs.Club{}, b.Err
}

type errNews ErrBackend

func (b errNews) List(context.Context) ([]news.Item, error)            { return nil, b.Err }
func (b errNews) Create(context.Context, news.Item) (news.Item, error) { return news.Item{}, b.Err }
func (b errNews) Delete(context.Context, string) error                 { return b.Err }

type errFeatures ErrBackend

func (b errFeatures) List(context.Context) ([]features.Feature, error) { return nil, b.Err }

type errAuth ErrBackend

func (b errAuth) Login(context.Context, string) (session.AuthResponse, error) {
	return session.AuthResponse{}, b.Err
}
func (b errAuth) Logout(context.Context) error { return b.Err }

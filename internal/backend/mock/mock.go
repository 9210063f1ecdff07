// Package mock implements the service contract in process, over a
// store.MemoryStore, with simulated network latency.
package mock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/preston-bernstein/nexus-data-service/internal/auth"
	"github.com/preston-bernstein/nexus-data-service/internal/backend"
	"github.com/preston-bernstein/nexus-data-service/internal/domain/clubs"
	"github.com/preston-bernstein/nexus-data-service/internal/domain/features"
	"github.com/preston-bernstein/nexus-data-service/internal/domain/news"
	"github.com/preston-bernstein/nexus-data-service/internal/domain/session"
	"github.com/preston-bernstein/nexus-data-service/internal/fixtures"
	"github.com/preston-bernstein/nexus-data-service/internal/store"
	"github.com/preston-bernstein/nexus-data-service/internal/timeutil"
)

// Name identifies the mock backend in logs and metrics.
const Name = "mock"

const invalidPasswordMessage = "Invalid password"

// Config tunes the mock backend.
type Config struct {
	// Delay is added after every operation. Zero disables it.
	Delay time.Duration
	// Tokens keeps the issued session token. Defaults to an in-memory store.
	Tokens auth.TokenStore
	Now    func() time.Time
}

// Backend is the in-process implementation of backend.Backend.
type Backend struct {
	store  *store.MemoryStore
	authn  *auth.Authenticator
	tokens auth.TokenStore
	delay  time.Duration
	now    func() time.Time
}

var _ backend.Backend = (*Backend)(nil)

// New builds a mock backend over st. Mutations are applied to st immediately,
// before the simulated delay elapses.
func New(st *store.MemoryStore, authn *auth.Authenticator, cfg Config) *Backend {
	if cfg.Tokens == nil {
		cfg.Tokens = auth.NewMemoryTokenStore()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Backend{
		store:  st,
		authn:  authn,
		tokens: cfg.Tokens,
		delay:  cfg.Delay,
		now:    cfg.Now,
	}
}

func (b *Backend) Name() string                     { return Name }
func (b *Backend) Clubs() backend.ClubService       { return clubService{b} }
func (b *Backend) News() backend.NewsService        { return newsService{b} }
func (b *Backend) Features() backend.FeatureService { return featureService{b} }
func (b *Backend) Auth() backend.AuthService        { return authService{b} }

// wait simulates latency. A cancelled context cuts it short; any mutation
// already performed stays applied.
func (b *Backend) wait(ctx context.Context) error {
	if b.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(b.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

type clubService struct{ b *Backend }

func (s clubService) List(ctx context.Context) ([]clubs.Club, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	items := s.b.store.ListClubs()
	if err := s.b.wait(ctx); err != nil {
		return nil, err
	}
	return items, nil
}

func (s clubService) Get(ctx context.Context, id string) (clubs.Club, bool, error) {
	if err := ctx.Err(); err != nil {
		return clubs.Club{}, false, err
	}
	club, ok := s.b.store.GetClub(id)
	if err := s.b.wait(ctx); err != nil {
		return clubs.Club{}, false, err
	}
	return club, ok, nil
}

func (s clubService) Update(ctx context.Context, id string, patch clubs.Patch) (clubs.Club, error) {
	if err := ctx.Err(); err != nil {
		return clubs.Club{}, err
	}
	updated, err := s.b.store.UpdateClub(id, patch)
	if waitErr := s.b.wait(ctx); waitErr != nil {
		return clubs.Club{}, waitErr
	}
	if errors.Is(err, store.ErrClubNotFound) {
		return clubs.Club{}, fmt.Errorf("club %q: %w", id, backend.ErrNotFound)
	}
	if err != nil {
		return clubs.Club{}, err
	}
	return updated, nil
}

type newsService struct{ b *Backend }

func (s newsService) List(ctx context.Context) ([]news.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	items := s.b.store.ListNews()
	if err := s.b.wait(ctx); err != nil {
		return nil, err
	}
	return items, nil
}

// Create prepends item after news.Normalize. An empty ID is assigned from the
// current time and an empty Date defaults to today.
func (s newsService) Create(ctx context.Context, item news.Item) (news.Item, error) {
	if err := ctx.Err(); err != nil {
		return news.Item{}, err
	}
	item, err := news.Normalize(item)
	if err != nil {
		return news.Item{}, backend.InvalidInput(err)
	}
	now := s.b.now()
	if item.Date == "" {
		item.Date = timeutil.FormatDisplayDate(now)
	}
	created, err := s.b.store.PrependNews(item, now)
	if waitErr := s.b.wait(ctx); waitErr != nil {
		return news.Item{}, waitErr
	}
	if errors.Is(err, store.ErrDuplicateID) {
		return news.Item{}, fmt.Errorf("news %q: %w", item.ID, backend.ErrConflict)
	}
	if err != nil {
		return news.Item{}, err
	}
	return created, nil
}

func (s newsService) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.b.store.DeleteNews(id)
	return s.b.wait(ctx)
}

type featureService struct{ b *Backend }

func (s featureService) List(ctx context.Context) ([]features.Feature, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	items := fixtures.Features()
	if err := s.b.wait(ctx); err != nil {
		return nil, err
	}
	return items, nil
}

type authService struct{ b *Backend }

func (s authService) Login(ctx context.Context, password string) (session.AuthResponse, error) {
	if err := ctx.Err(); err != nil {
		return session.AuthResponse{}, err
	}

	token, err := s.b.authn.Authenticate(password)
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		if waitErr := s.b.wait(ctx); waitErr != nil {
			return session.AuthResponse{}, waitErr
		}
		return session.Rejected(invalidPasswordMessage), nil
	case err != nil:
		return session.AuthResponse{}, err
	}

	if err := s.b.tokens.SetToken(token); err != nil {
		return session.AuthResponse{}, err
	}
	if err := s.b.wait(ctx); err != nil {
		return session.AuthResponse{}, err
	}
	return session.Accepted(token), nil
}

func (s authService) Logout(ctx context.Context) error {
	if err := s.b.tokens.Clear(); err != nil {
		return err
	}
	return s.b.wait(ctx)
}

package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/nexus-data-service/internal/backend"
	"github.com/preston-bernstein/nexus-data-service/internal/domain/clubs"
	"github.com/preston-bernstein/nexus-data-service/internal/domain/features"
	"github.com/preston-bernstein/nexus-data-service/internal/domain/news"
	"github.com/preston-bernstein/nexus-data-service/internal/domain/session"
)

// StubTokenStore is a test double for auth.TokenStore with error injection.
type StubTokenStore struct {
	mu       sync.Mutex
	Value    string
	ReadErr  error
	WriteErr error

	SetCalls   atomic.Int32
	ClearCalls atomic.Int32
}

// Token returns Value or ReadErr.
func (s *StubTokenStore) Token() (string, error) {
	if s.ReadErr != nil {
		return "", s.ReadErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Value, nil
}

// SetToken stores token unless WriteErr is set.
func (s *StubTokenStore) SetToken(token string) error {
	s.SetCalls.Add(1)
	if s.WriteErr != nil {
		return s.WriteErr
	}
	s.mu.Lock()
	s.Value = token
	s.mu.Unlock()
	return nil
}

// Clear forgets the token unless WriteErr is set.
func (s *StubTokenStore) Clear() error {
	s.ClearCalls.Add(1)
	if s.WriteErr != nil {
		return s.WriteErr
	}
	s.mu.Lock()
	s.Value = ""
	s.mu.Unlock()
	return nil
}

// RecordingClubs is a backend.ClubService double that records the last call.
type RecordingClubs struct {
	mu        sync.Mutex
	Clubs     []clubs.Club
	Err       error
	LastID    string
	LastPatch clubs.Patch
	Calls     atomic.Int32
}

func (r *RecordingClubs) List(ctx context.Context) ([]clubs.Club, error) {
	_ = ctx
	r.Calls.Add(1)
	return clubs.CloneAll(r.Clubs), r.Err
}

func (r *RecordingClubs) Get(ctx context.Context, id string) (clubs.Club, bool, error) {
	_ = ctx
	r.Calls.Add(1)
	r.mu.Lock()
	r.LastID = id
	r.mu.Unlock()
	if r.Err != nil {
		return clubs.Club{}, false, r.Err
	}
	for _, c := range r.Clubs {
		if c.ID == id {
			return c.Clone(), true, nil
		}
	}
	return clubs.Club{}, false, nil
}

func (r *RecordingClubs) Update(ctx context.Context, id string, patch clubs.Patch) (clubs.Club, error) {
	_ = ctx
	r.Calls.Add(1)
	r.mu.Lock()
	r.LastID = id
	r.LastPatch = patch
	r.mu.Unlock()
	if r.Err != nil {
		return clubs.Club{}, r.Err
	}
	return patch.Apply(clubs.Club{ID: id}), nil
}

// RecordingNews is a backend.NewsService double that records created items and deleted ids.
type RecordingNews struct {
	mu      sync.Mutex
	Items   []news.Item
	Created []news.Item
	Deleted []string
	Err     error
}

func (r *RecordingNews) List(ctx context.Context) ([]news.Item, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	return news.CloneAll(r.Items), r.Err
}

func (r *RecordingNews) Create(ctx context.Context, item news.Item) (news.Item, error) {
	_ = ctx
	if r.Err != nil {
		return news.Item{}, r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Created = append(r.Created, item)
	return item, nil
}

func (r *RecordingNews) Delete(ctx context.Context, id string) error {
	_ = ctx
	if r.Err != nil {
		return r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Deleted = append(r.Deleted, id)
	return nil
}

// Backend assembles a backend.Backend from the recording doubles. Features is
// always empty and every login is accepted with token "stub".
type Backend struct {
	ClubsSvc *RecordingClubs
	NewsSvc  *RecordingNews
}

var _ backend.Backend = (*Backend)(nil)

// NewBackend returns a Backend with empty recording services.
func NewBackend() *Backend {
	return &Backend{ClubsSvc: &RecordingClubs{}, NewsSvc: &RecordingNews{}}
}

func (b *Backend) Name() string                     { return "stub" }
func (b *Backend) Clubs() backend.ClubService       { return b.ClubsSvc }
func (b *Backend) News() backend.NewsService        { return b.NewsSvc }
func (b *Backend) Features() backend.FeatureService { return stubFeatures{} }
func (b *Backend) Auth() backend.AuthService        { return stubAuth{} }

type stubFeatures struct{}

func (stubFeatures) List(context.Context) ([]features.Feature, error) {
	return []features.Feature{}, nil
}

type stubAuth struct{}

func (stubAuth) Login(context.Context, string) (session.AuthResponse, error) {
	return session.Accepted("stub"), nil
}

func (stubAuth) Logout(context.Context) error { return nil }

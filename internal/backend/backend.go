package backend

import (
	"context"

	"github.com/preston-bernstein/nexus-data-service/internal/domain/clubs"
	"github.com/preston-bernstein/nexus-data-service/internal/domain/features"
	"github.com/preston-bernstein/nexus-data-service/internal/domain/news"
	"github.com/preston-bernstein/nexus-data-service/internal/domain/session"
)

// ClubService reads and edits club profiles.
// Get reports a missing club with ok=false and a nil error.
// Update of a missing club returns an error wrapping ErrNotFound.
type ClubService interface {
	List(ctx context.Context) ([]clubs.Club, error)
	Get(ctx context.Context, id string) (club clubs.Club, ok bool, err error)
	Update(ctx context.Context, id string, patch clubs.Patch) (clubs.Club, error)
}

// NewsService manages the announcement feed. List is newest first; Create
// prepends and returns the stored item with its assigned ID; Delete of an
// unknown ID is a no-op.
type NewsService interface {
	List(ctx context.Context) ([]news.Item, error)
	Create(ctx context.Context, item news.Item) (news.Item, error)
	Delete(ctx context.Context, id string) error
}

// FeatureService exposes the static landing-page pillars.
type FeatureService interface {
	List(ctx context.Context) ([]features.Feature, error)
}

// AuthService checks the admin password. A wrong password is reported as
// AuthResponse{Success: false} with a nil error; errors are reserved for
// failures to reach the authority.
type AuthService interface {
	Login(ctx context.Context, password string) (session.AuthResponse, error)
	Logout(ctx context.Context) error
}

// Backend is the full service contract. Implementations are interchangeable.
type Backend interface {
	Name() string
	Clubs() ClubService
	News() NewsService
	Features() FeatureService
	Auth() AuthService
}

// Operation names used in logs and metrics.
const (
	OpClubsList    = "clubs.list"
	OpClubsGet     = "clubs.get"
	OpClubsUpdate  = "clubs.update"
	OpNewsList     = "news.list"
	OpNewsCreate   = "news.create"
	OpNewsDelete   = "news.delete"
	OpFeaturesList = "features.list"
	OpAuthLogin    = "auth.login"
	OpAuthLogout   = "auth.logout"
)

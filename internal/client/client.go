// Package client selects the backend that satisfies the service contract.
package client

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/nexus-data-service/internal/auth"
	"github.com/preston-bernstein/nexus-data-service/internal/backend"
	"github.com/preston-bernstein/nexus-data-service/internal/backend/httpapi"
	"github.com/preston-bernstein/nexus-data-service/internal/backend/mock"
	"github.com/preston-bernstein/nexus-data-service/internal/config"
	"github.com/preston-bernstein/nexus-data-service/internal/metrics"
	"github.com/preston-bernstein/nexus-data-service/internal/store"
)

// Deps are the collaborators shared by every backend. All fields are optional.
type Deps struct {
	Logger   *slog.Logger
	Recorder *metrics.Recorder
	// Tokens holds the session token; defaults to an in-memory store.
	Tokens auth.TokenStore
	// Store backs the mock backend; defaults to a freshly seeded store.
	Store *store.MemoryStore
	// Authenticator checks mock logins; defaults to one built from cfg.Auth.
	Authenticator *auth.Authenticator
	HTTPClient    *http.Client
}

// New binds cfg.Mode to a backend once. There is no runtime fallback between
// backends: an api backend that cannot be reached fails its calls.
func New(cfg config.Config, deps Deps) (backend.Backend, error) {
	if deps.Tokens == nil {
		deps.Tokens = auth.NewMemoryTokenStore()
	}

	var b backend.Backend
	switch cfg.Mode {
	case config.ModeMock:
		m, err := newMock(cfg, deps)
		if err != nil {
			return nil, err
		}
		b = m
	case config.ModeAPI:
		b = httpapi.NewClient(httpapi.Config{
			BaseURL:    cfg.API.BaseURL,
			HTTPClient: deps.HTTPClient,
			Tokens:     deps.Tokens,
		})
	default:
		return nil, fmt.Errorf("client: unknown backend mode %q", cfg.Mode)
	}

	if deps.Logger != nil {
		deps.Logger.Info("backend selected", slog.String("backend", b.Name()))
	}
	return backend.Instrument(b, deps.Logger, deps.Recorder), nil
}

func newMock(cfg config.Config, deps Deps) (*mock.Backend, error) {
	authn := deps.Authenticator
	if authn == nil {
		var err error
		authn, err = auth.NewAuthenticator(auth.Config{
			Password: cfg.Auth.AdminPassword,
			Secret:   cfg.Auth.TokenSecret,
			TTL:      cfg.Auth.TokenTTL,
		})
		if err != nil {
			return nil, fmt.Errorf("client: %w", err)
		}
	}
	st := deps.Store
	if st == nil {
		st = store.NewSeededStore()
	}
	return mock.New(st, authn, mock.Config{Delay: cfg.Mock.Delay, Tokens: deps.Tokens}), nil
}

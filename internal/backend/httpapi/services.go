package httpapi

import (
	"context"
	"net/http"

	"github.com/preston-bernstein/nexus-data-service/internal/backend"
	"github.com/preston-bernstein/nexus-data-service/internal/domain/clubs"
	"github.com/preston-bernstein/nexus-data-service/internal/domain/features"
	"github.com/preston-bernstein/nexus-data-service/internal/domain/news"
	"github.com/preston-bernstein/nexus-data-service/internal/domain/session"
)

type clubService struct{ c *Client }

func (s clubService) List(ctx context.Context) ([]clubs.Club, error) {
	var out []clubs.Club
	if err := s.c.do(ctx, backend.OpClubsList, http.MethodGet, pathClubs, nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []clubs.Club{}
	}
	return out, nil
}

// Get maps the API's own "club not found" answer to an absent result. Any
// other 404, such as a wrong base URL, stays an error.
func (s clubService) Get(ctx context.Context, id string) (clubs.Club, bool, error) {
	var out clubs.Club
	err := s.c.do(ctx, backend.OpClubsGet, http.MethodGet, resourcePath(pathClubs, id), nil, &out)
	if isNotFoundMessage(err, clubs.NotFoundMessage) {
		return clubs.Club{}, false, nil
	}
	if err != nil {
		return clubs.Club{}, false, err
	}
	return out, true, nil
}

func (s clubService) Update(ctx context.Context, id string, patch clubs.Patch) (clubs.Club, error) {
	var out clubs.Club
	if err := s.c.do(ctx, backend.OpClubsUpdate, http.MethodPatch, resourcePath(pathClubs, id), patch, &out); err != nil {
		return clubs.Club{}, err
	}
	return out, nil
}

type newsService struct{ c *Client }

func (s newsService) List(ctx context.Context) ([]news.Item, error) {
	var out []news.Item
	if err := s.c.do(ctx, backend.OpNewsList, http.MethodGet, pathNews, nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []news.Item{}
	}
	return out, nil
}

func (s newsService) Create(ctx context.Context, item news.Item) (news.Item, error) {
	var out news.Item
	if err := s.c.do(ctx, backend.OpNewsCreate, http.MethodPost, pathNews, item, &out); err != nil {
		return news.Item{}, err
	}
	return out, nil
}

// Delete succeeds only on a 2xx answer. The API answers 204 for unknown ids,
// so a 404 means the request never reached it.
func (s newsService) Delete(ctx context.Context, id string) error {
	return s.c.do(ctx, backend.OpNewsDelete, http.MethodDelete, resourcePath(pathNews, id), nil, nil)
}

type featureService struct{ c *Client }

func (s featureService) List(ctx context.Context) ([]features.Feature, error) {
	var out []features.Feature
	if err := s.c.do(ctx, backend.OpFeaturesList, http.MethodGet, pathFeatures, nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []features.Feature{}
	}
	return out, nil
}

type authService struct{ c *Client }

// Login stores the issued token on success. A 401 is a rejected password,
// reported as a failed AuthResponse rather than an error.
func (s authService) Login(ctx context.Context, password string) (session.AuthResponse, error) {
	var out session.AuthResponse
	err := s.c.do(ctx, backend.OpAuthLogin, http.MethodPost, pathLogin, session.LoginRequest{Password: password}, &out)
	if isStatus(err, http.StatusUnauthorized) {
		reqErr, _ := backend.AsRequestError(err)
		return session.Rejected(reqErr.Message), nil
	}
	if err != nil {
		return session.AuthResponse{}, err
	}
	if !out.Success {
		return session.Rejected(out.Error), nil
	}
	if out.Token == "" {
		return session.AuthResponse{}, &backend.RequestError{
			Op: backend.OpAuthLogin, Method: http.MethodPost, Path: pathLogin,
			StatusCode: http.StatusOK, Err: backend.ErrServer, Cause: errNoToken,
		}
	}
	if err := s.c.tokens.SetToken(out.Token); err != nil {
		return session.AuthResponse{}, err
	}
	return out, nil
}

// Logout only forgets the local token; the server keeps no session.
func (s authService) Logout(context.Context) error {
	return s.c.tokens.Clear()
}

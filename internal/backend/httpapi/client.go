// Package httpapi implements the service contract as a REST client, one
// request per operation.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/preston-bernstein/nexus-data-service/internal/auth"
	"github.com/preston-bernstein/nexus-data-service/internal/backend"
)

// Name identifies the HTTP backend in logs and metrics.
const Name = "api"

const (
	pathClubs    = "/v1/clubs"
	pathNews     = "/v1/news"
	pathFeatures = "/v1/features"
	pathLogin    = "/v1/auth/login"

	maxErrorBody = 4 << 10
)

// Config controls how the client reaches the REST API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	// Tokens holds the bearer token. Defaults to an in-memory store.
	Tokens auth.TokenStore
}

// Client is the REST implementation of backend.Backend. It never retries.
type Client struct {
	baseURL    string
	httpClient httpDoer
	tokens     auth.TokenStore
}

var _ backend.Backend = (*Client)(nil)

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	tokens := cfg.Tokens
	if tokens == nil {
		tokens = auth.NewMemoryTokenStore()
	}
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		tokens:     tokens,
	}
}

func (c *Client) Name() string                     { return Name }
func (c *Client) Clubs() backend.ClubService       { return clubService{c} }
func (c *Client) News() backend.NewsService        { return newsService{c} }
func (c *Client) Features() backend.FeatureService { return featureService{c} }
func (c *Client) Auth() backend.AuthService        { return authService{c} }

type errorBody struct {
	Error string `json:"error"`
}

// do sends one request. in is encoded as JSON when non-nil; out is decoded
// from the response unless it is nil or the server answered 204.
func (c *Client) do(ctx context.Context, op, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	token, err := c.tokens.Token()
	if err != nil {
		return fmt.Errorf("%s: read token: %w", op, err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &backend.RequestError{Op: op, Method: method, Path: path, Err: backend.ErrUnavailable, Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &backend.RequestError{
			Op:         op,
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Message:    readErrorMessage(resp),
			Err:        backend.ErrorForStatus(resp.StatusCode),
		}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &backend.RequestError{
			Op:         op,
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Message:    "invalid response body",
			Err:        backend.ErrServer,
			Cause:      err,
		}
	}
	return nil
}

// readErrorMessage prefers the server's {"error": "..."} body and falls back
// to the status text.
func readErrorMessage(resp *http.Response) string {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	var parsed errorBody
	if json.Unmarshal(raw, &parsed) == nil && parsed.Error != "" {
		return parsed.Error
	}
	if text := strings.TrimSpace(string(raw)); text != "" && !strings.HasPrefix(text, "{") {
		return text
	}
	return http.StatusText(resp.StatusCode)
}

func isStatus(err error, status int) bool {
	reqErr, ok := backend.AsRequestError(err)
	return ok && reqErr.StatusCode == status
}

// isNotFoundMessage reports a 404 whose JSON body named the resource itself.
func isNotFoundMessage(err error, message string) bool {
	reqErr, ok := backend.AsRequestError(err)
	return ok && reqErr.StatusCode == http.StatusNotFound && reqErr.Message == message
}

var errNoToken = errors.New("login succeeded without a token")

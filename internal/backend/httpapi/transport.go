package httpapi

import (
	"net/http"
	"net/url"
	"strings"
)

const defaultBaseURL = "http://localhost:4000"

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// resolveHTTPClient returns client, or a client with no timeout: calls are
// bounded only by the caller's context.
func resolveHTTPClient(client *http.Client) httpDoer {
	if client != nil {
		return client
	}
	return &http.Client{}
}

func normalizeBaseURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = defaultBaseURL
	}
	return strings.TrimSuffix(raw, "/")
}

func resourcePath(collection, id string) string {
	return collection + "/" + url.PathEscape(id)
}

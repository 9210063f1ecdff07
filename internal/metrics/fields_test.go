package metrics

import "testing"

func TestLoginResultsAreDistinct(t *testing.T) {
	seen := map[string]bool{}
	for _, r := range []string{LoginAccepted, LoginRejected, LoginRateLimited} {
		if r == "" || seen[r] {
			t.Fatalf("login result labels must be unique and non-empty, got %q", r)
		}
		seen[r] = true
	}
}

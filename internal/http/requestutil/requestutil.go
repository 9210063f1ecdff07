package requestutil

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"regexp"
	"strings"
	"sync/atomic"
	"time"
)

const (
	HeaderRequestID = "X-Request-ID"
	headerForwarded = "X-Forwarded-For"
)

var requestIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,64}$`)
var useFallback atomic.Bool

// SanitizeRequestID validates the incoming request ID header and generates a new one when invalid.
func SanitizeRequestID(incoming string) string {
	if incoming != "" && requestIDPattern.MatchString(incoming) {
		return incoming
	}
	return NewRequestID()
}

// NewRequestID generates a random request ID with a time-based fallback.
func NewRequestID() string {
	var b [8]byte
	if !useFallback.Load() {
		if _, err := rand.Read(b[:]); err == nil {
			return hex.EncodeToString(b[:])
		}
	}
	return hex.EncodeToString([]byte(time.Now().Format("20060102150405.000000000")))
}

// ClientIP returns the peer address of r without the port. Forwarding
// headers are ignored; use a ProxyResolver when the server sits behind a proxy.
func ClientIP(r *http.Request) string {
	if r == nil {
		return ""
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

// ProxyResolver honours X-Forwarded-For only on requests whose peer is a
// trusted proxy. The zero value and nil trust nobody.
type ProxyResolver struct {
	trusted []netip.Prefix
}

// NewProxyResolver parses trusted proxies given as CIDRs or bare addresses.
func NewProxyResolver(proxies []string) (*ProxyResolver, error) {
	p := &ProxyResolver{}
	for _, raw := range proxies {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		if prefix, err := netip.ParsePrefix(raw); err == nil {
			p.trusted = append(p.trusted, prefix.Masked())
			continue
		}
		addr, err := netip.ParseAddr(raw)
		if err != nil {
			return nil, fmt.Errorf("trusted proxy %q: %w", raw, err)
		}
		p.trusted = append(p.trusted, netip.PrefixFrom(addr.Unmap(), addr.Unmap().BitLen()))
	}
	return p, nil
}

// ClientIP walks X-Forwarded-For from the right, skipping trusted hops, and
// returns the first untrusted address. Requests from untrusted peers, or with
// a malformed header, resolve to the peer itself.
func (p *ProxyResolver) ClientIP(r *http.Request) string {
	peer := ClientIP(r)
	if p == nil || len(p.trusted) == 0 || !p.trusts(peer) {
		return peer
	}
	hops := strings.Split(r.Header.Get(headerForwarded), ",")
	for i := len(hops) - 1; i >= 0; i-- {
		hop := strings.TrimSpace(hops[i])
		if hop == "" {
			continue
		}
		addr, err := netip.ParseAddr(hop)
		if err != nil {
			return peer
		}
		if !p.trusts(addr.String()) {
			return addr.Unmap().String()
		}
	}
	return peer
}

func (p *ProxyResolver) trusts(ip string) bool {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, prefix := range p.trusted {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}

// BearerToken returns the token from an "Authorization: Bearer <token>" header.
func BearerToken(r *http.Request) (string, bool) {
	if r == nil {
		return "", false
	}
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

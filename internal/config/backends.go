package config

import "time"

// APIConfig controls how the HTTP backend reaches the REST API.
type APIConfig struct {
	BaseURL string
}

// MockConfig controls the in-process backend.
type MockConfig struct {
	// Delay is the simulated latency added to every call.
	Delay time.Duration
}

// ServerConfig controls the reference REST server.
type ServerConfig struct {
	// Delay is the simulated latency of the in-memory backend behind the server.
	Delay       time.Duration
	CORSOrigins []string
	// TrustedProxies lists proxy addresses or CIDRs whose X-Forwarded-For is
	// believed. Empty means the TCP peer is always the client.
	TrustedProxies []string
}

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected defaults to load, got %v", err)
	}

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.Mode != ModeMock {
		t.Fatalf("expected default mode %s, got %s", ModeMock, cfg.Mode)
	}
	if cfg.Mock.Delay != defaultMockDelay {
		t.Fatalf("expected default mock delay %s, got %s", defaultMockDelay, cfg.Mock.Delay)
	}
	if cfg.Server.Delay != 0 {
		t.Fatalf("expected no server delay by default, got %s", cfg.Server.Delay)
	}
	if cfg.Auth.AdminPassword != "nexus2024" {
		t.Fatalf("expected default admin password, got %s", cfg.Auth.AdminPassword)
	}
	if cfg.Auth.TokenSecret != "" {
		t.Fatalf("expected empty token secret by default")
	}
	if len(cfg.Server.CORSOrigins) != 1 || cfg.Server.CORSOrigins[0] != "*" {
		t.Fatalf("expected wildcard cors by default, got %v", cfg.Server.CORSOrigins)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.ServiceName != defaultServiceName {
		t.Fatalf("unexpected metrics defaults %+v", cfg.Metrics)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPort, "5000")
	t.Setenv(envMode, "API")
	t.Setenv(envAPIBaseURL, "http://example.com/api")
	t.Setenv(envMockDelay, "0s")
	t.Setenv(envServerDelay, "25ms")
	t.Setenv(envCORSOrigins, "https://nexus.club, http://localhost:5173")
	t.Setenv(envAdminPassword, "hunter2")
	t.Setenv(envTokenSecret, "shh")
	t.Setenv(envTokenTTL, "1h")
	t.Setenv(envLoginRate, "3")
	t.Setenv(envLoginBurst, "2")
	t.Setenv(envTokenFile, "/tmp/token")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "5000" {
		t.Fatalf("expected port 5000, got %s", cfg.Port)
	}
	if cfg.Mode != ModeAPI {
		t.Fatalf("expected mode api, got %s", cfg.Mode)
	}
	if cfg.API.BaseURL != "http://example.com/api" {
		t.Fatalf("expected base url override, got %s", cfg.API.BaseURL)
	}
	if cfg.Mock.Delay != 0 {
		t.Fatalf("expected zero mock delay to be honoured, got %s", cfg.Mock.Delay)
	}
	if cfg.Server.Delay != 25*time.Millisecond {
		t.Fatalf("expected server delay 25ms, got %s", cfg.Server.Delay)
	}
	if len(cfg.Server.CORSOrigins) != 2 || cfg.Server.CORSOrigins[1] != "http://localhost:5173" {
		t.Fatalf("expected trimmed cors origins, got %v", cfg.Server.CORSOrigins)
	}
	if cfg.Auth.AdminPassword != "hunter2" || cfg.Auth.TokenSecret != "shh" || cfg.Auth.TokenTTL != time.Hour {
		t.Fatalf("unexpected auth config %+v", cfg.Auth)
	}
	if cfg.Auth.LoginRatePerMinute != 3 || cfg.Auth.LoginBurst != 2 {
		t.Fatalf("unexpected login limits %+v", cfg.Auth)
	}
	if cfg.TokenFile != "/tmp/token" {
		t.Fatalf("expected token file override, got %s", cfg.TokenFile)
	}
}

func TestLoadRejectsUnknownMode(t *testing.T) {
	t.Setenv(envMode, "hybrid")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestLoadInvalidDelayFallsBack(t *testing.T) {
	t.Setenv(envMockDelay, "not-a-duration")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Mock.Delay != defaultMockDelay {
		t.Fatalf("expected default delay on invalid value, got %s", cfg.Mock.Delay)
	}
}

func TestLoadReadsTOMLFileBeforeEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nexus.toml")
	contents := `
port = "7000"
mode = "api"

[api]
base_url = "http://file.example"

[mock]
delay = "0s"

[server]
delay = "10ms"
cors_allowed_origins = ["https://nexus.club"]

[auth]
admin_password = "from-file"
token_ttl = "30m"

[metrics]
enabled = false
`
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(envConfigFile, path)
	t.Setenv(envPort, "8000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8000" {
		t.Fatalf("expected env to win over file, got %s", cfg.Port)
	}
	if cfg.Mode != ModeAPI || cfg.API.BaseURL != "http://file.example" {
		t.Fatalf("expected api settings from file, got %s %s", cfg.Mode, cfg.API.BaseURL)
	}
	if cfg.Mock.Delay != 0 || cfg.Server.Delay != 10*time.Millisecond {
		t.Fatalf("unexpected delays %s %s", cfg.Mock.Delay, cfg.Server.Delay)
	}
	if cfg.Server.CORSOrigins[0] != "https://nexus.club" {
		t.Fatalf("unexpected cors origins %v", cfg.Server.CORSOrigins)
	}
	if cfg.Auth.AdminPassword != "from-file" || cfg.Auth.TokenTTL != 30*time.Minute {
		t.Fatalf("unexpected auth from file %+v", cfg.Auth)
	}
	if cfg.Metrics.Enabled {
		t.Fatalf("expected metrics disabled by file")
	}
}

func TestLoadFileZeroLoginRateDisablesLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nexus.toml")
	contents := `
[server]
trusted_proxies = ["10.0.0.0/8"]

[auth]
login_rate_per_minute = 0
`
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(envConfigFile, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Auth.LoginRatePerMinute != 0 {
		t.Fatalf("expected explicit zero from file, got %d", cfg.Auth.LoginRatePerMinute)
	}
	if cfg.Auth.LoginBurst != defaultLoginBurst {
		t.Fatalf("expected unset burst to keep default, got %d", cfg.Auth.LoginBurst)
	}
	if len(cfg.Server.TrustedProxies) != 1 || cfg.Server.TrustedProxies[0] != "10.0.0.0/8" {
		t.Fatalf("unexpected trusted proxies %v", cfg.Server.TrustedProxies)
	}
}

func TestLoadTrustedProxiesAndZeroRateFromEnv(t *testing.T) {
	t.Setenv(envProxies, "10.0.0.1, 192.168.0.0/16")
	t.Setenv(envLoginRate, "0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Server.TrustedProxies) != 2 || cfg.Server.TrustedProxies[1] != "192.168.0.0/16" {
		t.Fatalf("unexpected trusted proxies %v", cfg.Server.TrustedProxies)
	}
	if cfg.Auth.LoginRatePerMinute != 0 {
		t.Fatalf("expected zero rate from env, got %d", cfg.Auth.LoginRatePerMinute)
	}
	if len(Defaults().Server.TrustedProxies) != 0 {
		t.Fatalf("expected no trusted proxies by default")
	}
}

func TestValidateRejectsNegativeLoginLimits(t *testing.T) {
	cfg := Defaults()
	cfg.Auth.LoginBurst = -1
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected negative burst to be rejected")
	}
}

func TestLoadRejectsUnknownFileKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nexus.toml")
	if err := os.WriteFile(path, []byte(`colour = "blue"`), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(envConfigFile, path)

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "colour") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	t.Setenv(envConfigFile, filepath.Join(t.TempDir(), "missing.toml"))

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestAuthConfigStringMasksSecrets(t *testing.T) {
	s := AuthConfig{AdminPassword: "nexus2024", TokenSecret: "abc"}.String()
	if strings.Contains(s, "nexus2024") || strings.Contains(s, "abc,") {
		t.Fatalf("expected secrets to be masked, got %s", s)
	}
}

func TestValidateRequiresBaseURLForAPI(t *testing.T) {
	cfg := Defaults()
	cfg.Mode = ModeAPI
	cfg.API.BaseURL = " "
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error")
	}
}

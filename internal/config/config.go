package config

import (
	"fmt"
	"os"
	"strings"
)

// Mode selects which backend satisfies the service contract.
type Mode string

const (
	ModeMock Mode = "mock"
	ModeAPI  Mode = "api"
)

// Config holds runtime configuration. It is read once at startup.
type Config struct {
	Port      string
	Mode      Mode
	API       APIConfig
	Mock      MockConfig
	Server    ServerConfig
	Auth      AuthConfig
	Metrics   MetricsConfig
	TokenFile string
}

// Load builds configuration from defaults, then the optional TOML file named by
// CONFIG_FILE, then environment variables (highest precedence).
func Load() (Config, error) {
	cfg := Defaults()
	if path := strings.TrimSpace(os.Getenv(envConfigFile)); path != "" {
		if err := applyFile(&cfg, path); err != nil {
			return Config{}, err
		}
	}
	applyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Port:      defaultPort,
		Mode:      defaultMode,
		API:       APIConfig{BaseURL: defaultAPIBaseURL},
		Mock:      MockConfig{Delay: defaultMockDelay},
		Server:    ServerConfig{Delay: defaultServerDelay, CORSOrigins: []string{"*"}},
		Auth:      defaultAuth(),
		Metrics:   defaultMetrics(),
		TokenFile: defaultTokenFile,
	}
}

// Validate reports configuration that cannot be used.
func (c Config) Validate() error {
	switch c.Mode {
	case ModeMock:
	case ModeAPI:
		if strings.TrimSpace(c.API.BaseURL) == "" {
			return fmt.Errorf("config: %s requires %s", ModeAPI, envAPIBaseURL)
		}
	default:
		return fmt.Errorf("config: unknown backend mode %q (supported: %s, %s)", c.Mode, ModeMock, ModeAPI)
	}
	if c.Mock.Delay < 0 || c.Server.Delay < 0 {
		return fmt.Errorf("config: delays must not be negative")
	}
	if c.Auth.LoginRatePerMinute < 0 || c.Auth.LoginBurst < 0 {
		return fmt.Errorf("config: login limits must not be negative")
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.Port = envOrDefault(envPort, cfg.Port)
	cfg.Mode = Mode(strings.ToLower(envOrDefault(envMode, string(cfg.Mode))))
	cfg.API.BaseURL = envOrDefault(envAPIBaseURL, cfg.API.BaseURL)
	cfg.Mock.Delay = delayEnvOrDefault(envMockDelay, cfg.Mock.Delay)
	cfg.Server.Delay = delayEnvOrDefault(envServerDelay, cfg.Server.Delay)
	cfg.Server.CORSOrigins = listEnvOrDefault(envCORSOrigins, cfg.Server.CORSOrigins)
	cfg.Server.TrustedProxies = listEnvOrDefault(envProxies, cfg.Server.TrustedProxies)
	cfg.TokenFile = envOrDefault(envTokenFile, cfg.TokenFile)
	applyAuthEnv(&cfg.Auth)
	applyMetricsEnv(&cfg.Metrics)
}

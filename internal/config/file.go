package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// duration decodes TOML strings such as "250ms" or "12h".
type duration time.Duration

func (d *duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = duration(parsed)
	return nil
}

// fileConfig mirrors Config for TOML decoding. Pointer fields distinguish
// "unset" from an explicit zero; plain strings and lists treat empty as unset.
type fileConfig struct {
	Port      string `toml:"port"`
	Mode      string `toml:"mode"`
	TokenFile string `toml:"token_file"`
	API       struct {
		BaseURL string `toml:"base_url"`
	} `toml:"api"`
	Mock struct {
		Delay *duration `toml:"delay"`
	} `toml:"mock"`
	Server struct {
		Delay          *duration `toml:"delay"`
		CORSOrigins    []string  `toml:"cors_allowed_origins"`
		TrustedProxies []string  `toml:"trusted_proxies"`
	} `toml:"server"`
	Auth struct {
		AdminPassword      string    `toml:"admin_password"`
		TokenSecret        string    `toml:"token_secret"`
		TokenTTL           *duration `toml:"token_ttl"`
		LoginRatePerMinute *int      `toml:"login_rate_per_minute"`
		LoginBurst         *int      `toml:"login_burst"`
	} `toml:"auth"`
	Metrics struct {
		Enabled      *bool  `toml:"enabled"`
		Port         string `toml:"port"`
		OtlpEndpoint string `toml:"otlp_endpoint"`
		ServiceName  string `toml:"service_name"`
		OtlpInsecure *bool  `toml:"otlp_insecure"`
	} `toml:"metrics"`
}

func applyFile(cfg *Config, path string) error {
	var fc fileConfig
	meta, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return fmt.Errorf("config: failed to decode %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return fmt.Errorf("config: unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}

	setString(&cfg.Port, fc.Port)
	if fc.Mode != "" {
		cfg.Mode = Mode(strings.ToLower(fc.Mode))
	}
	setString(&cfg.TokenFile, fc.TokenFile)
	setString(&cfg.API.BaseURL, fc.API.BaseURL)
	setDuration(&cfg.Mock.Delay, fc.Mock.Delay)
	setDuration(&cfg.Server.Delay, fc.Server.Delay)
	if len(fc.Server.CORSOrigins) > 0 {
		cfg.Server.CORSOrigins = fc.Server.CORSOrigins
	}
	if len(fc.Server.TrustedProxies) > 0 {
		cfg.Server.TrustedProxies = fc.Server.TrustedProxies
	}

	setString(&cfg.Auth.AdminPassword, fc.Auth.AdminPassword)
	setString(&cfg.Auth.TokenSecret, fc.Auth.TokenSecret)
	setDuration(&cfg.Auth.TokenTTL, fc.Auth.TokenTTL)
	if fc.Auth.LoginRatePerMinute != nil {
		cfg.Auth.LoginRatePerMinute = *fc.Auth.LoginRatePerMinute
	}
	if fc.Auth.LoginBurst != nil {
		cfg.Auth.LoginBurst = *fc.Auth.LoginBurst
	}

	if fc.Metrics.Enabled != nil {
		cfg.Metrics.Enabled = *fc.Metrics.Enabled
	}
	setString(&cfg.Metrics.Port, fc.Metrics.Port)
	setString(&cfg.Metrics.OtlpEndpoint, fc.Metrics.OtlpEndpoint)
	setString(&cfg.Metrics.ServiceName, fc.Metrics.ServiceName)
	if fc.Metrics.OtlpInsecure != nil {
		cfg.Metrics.OtlpInsecure = *fc.Metrics.OtlpInsecure
	}
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v *duration) {
	if v != nil {
		*dst = time.Duration(*v)
	}
}

package config

import (
	"fmt"
	"strings"
	"time"
)

// AuthConfig controls the admin login.
type AuthConfig struct {
	AdminPassword      string
	TokenSecret        string
	TokenTTL           time.Duration
	LoginRatePerMinute int
	LoginBurst         int
}

func defaultAuth() AuthConfig {
	return AuthConfig{
		AdminPassword:      defaultAdminPassword,
		TokenTTL:           defaultTokenTTL,
		LoginRatePerMinute: defaultLoginRate,
		LoginBurst:         defaultLoginBurst,
	}
}

func applyAuthEnv(a *AuthConfig) {
	a.AdminPassword = envOrDefault(envAdminPassword, a.AdminPassword)
	a.TokenSecret = envOrDefault(envTokenSecret, a.TokenSecret)
	a.TokenTTL = durationEnvOrDefault(envTokenTTL, a.TokenTTL)
	a.LoginRatePerMinute = limitEnvOrDefault(envLoginRate, a.LoginRatePerMinute)
	a.LoginBurst = intEnvOrDefault(envLoginBurst, a.LoginBurst)
}

func (a AuthConfig) String() string {
	return fmt.Sprintf("AdminPassword: %s, TokenSecret: %s, TokenTTL: %s, LoginRatePerMinute: %d, LoginBurst: %d",
		strings.Repeat("*", len(a.AdminPassword)),
		strings.Repeat("*", len(a.TokenSecret)),
		a.TokenTTL,
		a.LoginRatePerMinute,
		a.LoginBurst,
	)
}

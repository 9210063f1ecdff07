package config

import "time"

const (
	envConfigFile    = "CONFIG_FILE"
	envPort          = "PORT"
	envMode          = "BACKEND_MODE"
	envAPIBaseURL    = "API_BASE_URL"
	envMockDelay     = "MOCK_DELAY"
	envServerDelay   = "SERVER_DELAY"
	envCORSOrigins   = "CORS_ALLOWED_ORIGINS"
	envProxies       = "TRUSTED_PROXIES"
	envAdminPassword = "ADMIN_PASSWORD"
	envTokenSecret   = "TOKEN_SECRET"
	envTokenTTL      = "TOKEN_TTL"
	envLoginRate     = "LOGIN_RATE_PER_MINUTE"
	envLoginBurst    = "LOGIN_BURST"
	envTokenFile     = "TOKEN_FILE"
	envMetricsPort   = "METRICS_PORT"
	envMetricsOn     = "METRICS_ENABLED"
	envOtelEndpoint  = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService   = "OTEL_SERVICE_NAME"
	envOtelInsecure  = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort       = "4000"
	defaultMode       = ModeMock
	defaultAPIBaseURL = "http://localhost:4000"
	// Long enough for loading states to be visible in the UI.
	defaultMockDelay     = 500 * time.Millisecond
	defaultServerDelay   = time.Duration(0)
	defaultAdminPassword = "nexus2024"
	defaultTokenTTL      = 12 * time.Hour
	defaultLoginRate     = 10
	defaultLoginBurst    = 5
	defaultTokenFile     = ".nexusctl-token"
	defaultMetricsPort   = "9090"
	defaultServiceName   = "nexus-data-service"
)

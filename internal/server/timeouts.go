package server

import "time"

const (
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 10 * time.Second
	baseWriteTimeout  = 10 * time.Second
	idleTimeout       = 60 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second

// writeTimeout leaves room for the simulated backend delay on top of the base budget.
func writeTimeout(delay time.Duration) time.Duration {
	if delay <= 0 {
		return baseWriteTimeout
	}
	return baseWriteTimeout + delay
}

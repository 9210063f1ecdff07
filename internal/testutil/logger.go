package testutil

import (
	"bytes"
	"log/slog"

	"github.com/preston-bernstein/nexus-data-service/internal/logging"
)

// NewBufferLogger returns an info-level text logger writing to the returned buffer.
func NewBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return logging.NewLogger(logging.Config{Level: "info", Output: &buf}), &buf
}

package logging

import (
	"log/slog"
	"time"
)

// Info logs an info message when a logger is configured.
func Info(logger *slog.Logger, msg string, args ...any) {
	if logger != nil {
		logger.Info(msg, args...)
	}
}

// Warn logs a warning when a logger is configured.
func Warn(logger *slog.Logger, msg string, args ...any) {
	if logger != nil {
		logger.Warn(msg, args...)
	}
}

// Error logs err under FieldError when a logger is configured.
func Error(logger *slog.Logger, msg string, err error, args ...any) {
	if logger == nil {
		return
	}
	if err != nil {
		args = append(args, slog.Any(FieldError, err))
	}
	logger.Error(msg, args...)
}

// BackendCall records one service contract call. Failures are warnings,
// successes are debug so a quiet CLI stays quiet.
func BackendCall(logger *slog.Logger, backend, op string, elapsed time.Duration, err error, args ...any) {
	if logger == nil {
		return
	}
	args = append(args,
		slog.String(FieldBackend, backend),
		slog.String(FieldOperation, op),
		slog.Int64(FieldDurationMS, elapsed.Milliseconds()),
	)
	if err != nil {
		logger.Warn("backend call failed", append(args, slog.Any(FieldError, err))...)
		return
	}
	logger.Debug("backend call", args...)
}

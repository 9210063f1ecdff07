package logging

import "log/slog"

// Structured log keys shared by the server, the backends and the CLI.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldBackend    = "backend"
	FieldOperation  = "operation"
	FieldRequestID  = "request_id"
	FieldPath       = "path"
	FieldMethod     = "method"
	FieldStatusCode = "status_code"
	FieldClubID     = "club_id"
	FieldNewsID     = "news_id"
	FieldCount      = "count"
	FieldDurationMS = "duration_ms"
	FieldClientIP   = "client_ip"
	FieldError      = "error"
)

// ServiceAttrs returns the attributes stamped on every record of a process.
// Empty values are left out.
func ServiceAttrs(service, version string) []slog.Attr {
	var attrs []slog.Attr
	if service != "" {
		attrs = append(attrs, slog.String(FieldService, service))
	}
	if version != "" {
		attrs = append(attrs, slog.String(FieldVersion, version))
	}
	return attrs
}

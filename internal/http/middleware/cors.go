package middleware

import (
	"net/http"

	"github.com/rs/cors"

	"github.com/preston-bernstein/nexus-data-service/internal/http/requestutil"
)

// CORS lets the browser front end call the API from allowedOrigins. "*" allows any origin.
func CORS(allowedOrigins []string, next http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowedHeaders: []string{"Authorization", "Content-Type", requestutil.HeaderRequestID},
		ExposedHeaders: []string{requestutil.HeaderRequestID},
		MaxAge:         600,
	}).Handler(next)
}

package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// CORS lets the listed origins call the API with the session cookie. An
// empty list disables cross-origin access entirely.
func CORS(allowedOrigins []string, logger *zap.Logger) func(http.Handler) http.Handler {
	if len(allowedOrigins) == 0 {
		logger.Info("CORS disabled, no allowed origins configured")
		return func(next http.Handler) http.Handler { return next }
	}

	logger.Info("CORS middleware initialized", zap.Strings("allowed_origins", allowedOrigins))
	return cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", SessionHeader},
		ExposedHeaders:   []string{SessionHeader, "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}

package middleware

import (
	"net/http"
	"time"

	"concert-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionHeader lets non-browser clients carry the session without cookies.
const SessionHeader = "X-Session-ID"

// Session resolves the visitor's booking session from the cookie or the
// X-Session-ID header, minting a new one when neither holds a valid UUID.
func Session(cookieName string, ttl time.Duration, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID, ok := sessionFromRequest(r, cookieName)
			if !ok {
				sessionID = utils.GenerateSessionID()
				logger.Debug("New booking session",
					zap.String("session_id", sessionID.String()),
					zap.String("path", r.URL.Path))
			}

			// Refresh on every request so the cookie follows the store TTL.
			http.SetCookie(w, &http.Cookie{
				Name:     cookieName,
				Value:    sessionID.String(),
				Path:     "/",
				MaxAge:   int(ttl.Seconds()),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
			w.Header().Set(SessionHeader, sessionID.String())

			ctx := utils.SetSessionContext(r.Context(), sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func sessionFromRequest(r *http.Request, cookieName string) (uuid.UUID, bool) {
	if cookie, err := r.Cookie(cookieName); err == nil {
		if id, err := utils.ParseSessionID(cookie.Value); err == nil && id != uuid.Nil {
			return id, true
		}
	}
	if value := r.Header.Get(SessionHeader); value != "" {
		if id, err := utils.ParseSessionID(value); err == nil && id != uuid.Nil {
			return id, true
		}
	}
	return uuid.Nil, false
}

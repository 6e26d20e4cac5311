package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"concert-booking/pkg/middleware"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

const allowedOrigin = "http://localhost:5500"

func serveCORS(origins []string, req *http.Request) (*httptest.ResponseRecorder, bool) {
	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
	})

	rec := httptest.NewRecorder()
	middleware.CORS(origins, zap.NewNop())(next).ServeHTTP(rec, req)
	return rec, reached
}

func TestCORS(t *testing.T) {
	origins := []string{allowedOrigin}

	t.Run("allowed origin gets credentialed access", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/booking/checkout", nil)
		req.Header.Set("Origin", allowedOrigin)

		rec, reached := serveCORS(origins, req)

		assert.True(t, reached)
		assert.Equal(t, allowedOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
		assert.Contains(t, rec.Header().Get("Access-Control-Expose-Headers"), middleware.SessionHeader)
	})

	t.Run("other origins get no cors headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/booking/checkout", nil)
		req.Header.Set("Origin", "https://evil.example")

		rec, _ := serveCORS(origins, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("preflight from an allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/booking/promo", nil)
		req.Header.Set("Origin", allowedOrigin)
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)

		rec, reached := serveCORS(origins, req)

		assert.False(t, reached)
		assert.Equal(t, allowedOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("preflight from another origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/booking/promo", nil)
		req.Header.Set("Origin", "https://evil.example")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)

		rec, _ := serveCORS(origins, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("empty allow-list disables cross-origin access", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/booking/checkout", nil)
		req.Header.Set("Origin", allowedOrigin)

		rec, reached := serveCORS(nil, req)

		assert.True(t, reached)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

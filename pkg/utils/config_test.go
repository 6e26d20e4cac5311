package utils_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"concert-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		// viper treats an empty variable as unset
		t.Setenv(k, "")
	}
}

func TestLoadConfigFile_Defaults(t *testing.T) {
	clearEnv(t, "APP_NAME", "PORT", "SESSION_STORE", "SESSION_TTL", "SESSION_COOKIE", "REDIS_ADDR", "REDIS_PREFIX", "PROMO_CODES", "CORS_ALLOWED_ORIGINS")

	config, err := utils.LoadConfigFile(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "concert-booking", config.App.Name)
	assert.Equal(t, "8080", config.App.Port)
	assert.Equal(t, utils.SessionStoreMemory, config.Session.Store)
	assert.Equal(t, 2*time.Hour, config.Session.TTL)
	assert.Equal(t, "booking_session", config.Session.CookieName)
	assert.Equal(t, "localhost:6379", config.Redis.Addr)
	assert.Equal(t, "booking:session:", config.Redis.Prefix)
	assert.Empty(t, config.Promo.Codes)
	assert.Empty(t, config.CORS.AllowedOrigins)
}

func TestLoadConfigFile_FileAndEnvironment(t *testing.T) {
	clearEnv(t, "APP_NAME", "SESSION_STORE", "SESSION_TTL", "REDIS_DB", "PROMO_CODES")
	t.Setenv("CORS_ALLOWED_ORIGINS", " http://localhost:5500, ,https://tickets.example.com ")

	path := filepath.Join(t.TempDir(), ".env")
	content := "APP_NAME=concert-test\nPORT=9000\nSESSION_STORE=redis\nSESSION_TTL=45m\nREDIS_DB=3\nPROMO_CODES=VIP10:0.1\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("PORT", "9100")

	config, err := utils.LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, "concert-test", config.App.Name)
	assert.Equal(t, "9100", config.App.Port, "environment wins over the file")
	assert.Equal(t, utils.SessionStoreRedis, config.Session.Store)
	assert.Equal(t, 45*time.Minute, config.Session.TTL)
	assert.Equal(t, 3, config.Redis.DB)
	assert.Equal(t, "VIP10:0.1", config.Promo.Codes)
	assert.Equal(t, []string{"http://localhost:5500", "https://tickets.example.com"}, config.CORS.AllowedOrigins)
}

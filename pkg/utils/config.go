package utils

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

type Config struct {
	App     AppConfig
	Session SessionConfig
	Redis   RedisConfig
	Promo   PromoConfig
	CORS    CORSConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type SessionConfig struct {
	Store      string
	TTL        time.Duration
	CookieName string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

type PromoConfig struct {
	// Codes is a comma separated CODE:rate list, e.g. "MEOW20:0.2,FAN20:0.2".
	// Empty means the built-in table.
	Codes string
}

type CORSConfig struct {
	// AllowedOrigins comes from a comma separated CORS_ALLOWED_ORIGINS.
	// Empty means no cross-origin access.
	AllowedOrigins []string
}

func LoadConfig() (*Config, error) {
	return LoadConfigFile(".env")
}

// LoadConfigFile reads path when it exists; the environment always wins.
func LoadConfigFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "concert-booking")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("SESSION_STORE", SessionStoreMemory)
	v.SetDefault("SESSION_TTL", "2h")
	v.SetDefault("SESSION_COOKIE", "booking_session")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_PREFIX", "booking:session:")
	v.SetDefault("PROMO_CODES", "")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")

	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    v.GetString("APP_NAME"),
			Port:    v.GetString("PORT"),
			Debug:   v.GetBool("DEBUG"),
			LogPath: v.GetString("LOG_PATH"),
		},
		Session: SessionConfig{
			Store:      v.GetString("SESSION_STORE"),
			TTL:        v.GetDuration("SESSION_TTL"),
			CookieName: v.GetString("SESSION_COOKIE"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
			Prefix:   v.GetString("REDIS_PREFIX"),
		},
		Promo: PromoConfig{
			Codes: v.GetString("PROMO_CODES"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
	}

	if config.Session.TTL <= 0 {
		config.Session.TTL = 2 * time.Hour
	}

	return config, nil
}

// splitList reads "a, b,,c" as [a b c].
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

package repository

import (
	"time"

	"concert-booking/pkg/clock"
	"concert-booking/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Repository struct {
	Session SessionRepository
}

// NewRepository picks the session backend. A nil rdb always yields the
// in-memory store.
func NewRepository(config utils.SessionConfig, redisConfig utils.RedisConfig, rdb redis.UniversalClient, clk clock.Clock, log *zap.Logger) *Repository {
	ttl := config.TTL
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}

	var session SessionRepository
	if config.Store == utils.SessionStoreRedis && rdb != nil {
		session = NewRedisSessionRepository(rdb, redisConfig.Prefix, ttl, log)
	} else {
		session = NewMemorySessionRepository(ttl, clk, log)
	}

	return &Repository{
		Session: session,
	}
}

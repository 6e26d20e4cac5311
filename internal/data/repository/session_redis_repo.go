package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"concert-booking/internal/data/entity"
	"concert-booking/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type redisSessionRepository struct {
	rdb    redis.UniversalClient
	prefix string
	ttl    time.Duration
	log    *zap.Logger
}

// NewRedisSessionRepository stores each state as JSON under prefix+id with a
// sliding TTL refreshed on every save.
func NewRedisSessionRepository(rdb redis.UniversalClient, prefix string, ttl time.Duration, log *zap.Logger) SessionRepository {
	return &redisSessionRepository{
		rdb:    rdb,
		prefix: prefix,
		ttl:    ttl,
		log:    log.With(zap.String("repository", "session"), zap.String("store", "redis")),
	}
}

func (r *redisSessionRepository) key(sessionID uuid.UUID) string {
	return r.prefix + sessionID.String()
}

func (r *redisSessionRepository) Find(ctx context.Context, sessionID uuid.UUID) (*entity.BookingState, error) {
	raw, err := r.rdb.Get(ctx, r.key(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to load session",
			zap.Error(err),
			zap.String("session_id", sessionID.String()),
		)
		return nil, errs.Wrapf(err, "load session %s", sessionID)
	}

	var state entity.BookingState
	if err := json.Unmarshal(raw, &state); err != nil {
		r.log.Warn("Discarding undecodable session",
			zap.Error(err),
			zap.String("session_id", sessionID.String()),
		)
		return nil, nil
	}
	if state.Quantities == nil {
		state.Quantities = make(map[string]int)
	}

	return &state, nil
}

func (r *redisSessionRepository) Save(ctx context.Context, state *entity.BookingState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return errs.Wrapf(err, "encode session %s", state.SessionID)
	}

	if err := r.rdb.Set(ctx, r.key(state.SessionID), raw, r.ttl).Err(); err != nil {
		r.log.Error("Failed to save session",
			zap.Error(err),
			zap.String("session_id", state.SessionID.String()),
		)
		return errs.Wrapf(err, "save session %s", state.SessionID)
	}

	return nil
}

func (r *redisSessionRepository) Delete(ctx context.Context, sessionID uuid.UUID) error {
	if err := r.rdb.Del(ctx, r.key(sessionID)).Err(); err != nil {
		return errs.Wrapf(err, "delete session %s", sessionID)
	}
	return nil
}

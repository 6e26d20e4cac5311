package repository

import (
	"context"
	"sync"
	"time"

	"concert-booking/internal/data/entity"
	"concert-booking/pkg/clock"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionRepository keeps booking state per browsing session. Find returns
// nil, nil for an unknown or expired session.
type SessionRepository interface {
	Find(ctx context.Context, sessionID uuid.UUID) (*entity.BookingState, error)
	Save(ctx context.Context, state *entity.BookingState) error
	Delete(ctx context.Context, sessionID uuid.UUID) error
}

type memoryEntry struct {
	state     *entity.BookingState
	expiresAt time.Time
}

type memorySessionRepository struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]memoryEntry
	ttl      time.Duration
	clock    clock.Clock
	log      *zap.Logger
}

func NewMemorySessionRepository(ttl time.Duration, clk clock.Clock, log *zap.Logger) SessionRepository {
	return &memorySessionRepository{
		sessions: make(map[uuid.UUID]memoryEntry),
		ttl:      ttl,
		clock:    clk,
		log:      log.With(zap.String("repository", "session"), zap.String("store", "memory")),
	}
}

func (r *memorySessionRepository) Find(ctx context.Context, sessionID uuid.UUID) (*entity.BookingState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	if !r.clock.Now().Before(entry.expiresAt) {
		delete(r.sessions, sessionID)
		r.log.Debug("Session expired", zap.String("session_id", sessionID.String()))
		return nil, nil
	}

	return entry.state.Clone(), nil
}

func (r *memorySessionRepository) Save(ctx context.Context, state *entity.BookingState) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now()
	r.sessions[state.SessionID] = memoryEntry{
		state:     state.Clone(),
		expiresAt: now.Add(r.ttl),
	}
	r.sweep(now)

	return nil
}

func (r *memorySessionRepository) Delete(ctx context.Context, sessionID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, sessionID)
	return nil
}

// sweep drops expired entries; callers hold mu.
func (r *memorySessionRepository) sweep(now time.Time) {
	for id, entry := range r.sessions {
		if !now.Before(entry.expiresAt) {
			delete(r.sessions, id)
		}
	}
}

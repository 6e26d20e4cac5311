package utils

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

// ==================== SESSION ====================

func GenerateSessionID() uuid.UUID {
	return uuid.New()
}

func ParseSessionID(value string) (uuid.UUID, error) {
	return uuid.Parse(value)
}

// ==================== TICKET ID ====================

// GenerateTicketID returns TKT-<unix seconds>-<1000..9999>. Two calls in the
// same second can collide; nothing downstream relies on global uniqueness.
func GenerateTicketID() string {
	return TicketIDAt(time.Now(), 1000+rand.IntN(9000))
}

func TicketIDAt(t time.Time, suffix int) string {
	return fmt.Sprintf("TKT-%d-%04d", t.Unix(), suffix)
}

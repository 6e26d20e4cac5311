package entity_test

import (
	"testing"
	"time"

	"concert-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestBookingState(t *testing.T) {
	now := time.Date(2024, time.December, 1, 9, 0, 0, 0, time.UTC)
	newState := func() *entity.BookingState {
		return entity.NewBookingState(uuid.New(), entity.ConcertCatalog(), now)
	}

	t.Run("starts idle with every tier at zero", func(t *testing.T) {
		s := newState()
		assert.Equal(t, entity.BookingStageIdle, s.Stage)
		assert.Len(t, s.Quantities, 4)
		assert.Zero(t, s.TotalTickets())
	})

	t.Run("restage follows tickets and name", func(t *testing.T) {
		s := newState()
		s.Quantities["vip"] = 2
		s.Restage()
		assert.Equal(t, entity.BookingStageSelecting, s.Stage)

		s.CustomerName = "Aisyah"
		s.Restage()
		assert.Equal(t, entity.BookingStageReady, s.Stage)

		s.Quantities["vip"] = 0
		s.Restage()
		assert.Equal(t, entity.BookingStageIdle, s.Stage)
	})

	t.Run("clear selection keeps name and receipt", func(t *testing.T) {
		s := newState()
		s.Quantities["regular"] = 3
		s.PromoCode = "MEOW20"
		s.CustomerName = "Aisyah"
		s.LastReceipt = sampleReceipt(false)

		s.ClearSelection()

		assert.Zero(t, s.TotalTickets())
		assert.Empty(t, s.PromoCode)
		assert.Equal(t, "Aisyah", s.CustomerName)
		assert.NotNil(t, s.LastReceipt)
		assert.Equal(t, entity.BookingStageIdle, s.Stage)
	})

	t.Run("clone does not share quantities", func(t *testing.T) {
		s := newState()
		clone := s.Clone()
		clone.Quantities["vip"] = 5

		assert.Zero(t, s.Quantity("vip"))
	})
}

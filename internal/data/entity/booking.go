package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStage string

const (
	BookingStageIdle          BookingStage = "idle"
	BookingStageSelecting     BookingStage = "selecting"
	BookingStagePromoApplied  BookingStage = "promo_applied"
	BookingStagePromoRejected BookingStage = "promo_rejected"
	BookingStageReady         BookingStage = "ready"
	BookingStageReceipted     BookingStage = "receipted"
)

// BookingState is one visitor's in-progress selection. It lives only as long
// as the session store keeps it.
type BookingState struct {
	SessionID    uuid.UUID      `json:"session_id"`
	Quantities   map[string]int `json:"quantities"`
	PromoCode    string         `json:"promo_code,omitempty"`
	CustomerName string         `json:"customer_name,omitempty"`
	Stage        BookingStage   `json:"stage"`
	LastReceipt  *Receipt       `json:"last_receipt,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func NewBookingState(sessionID uuid.UUID, catalog *Catalog, now time.Time) *BookingState {
	quantities := make(map[string]int, catalog.Len())
	for _, t := range catalog.Tiers() {
		quantities[t.ID] = 0
	}
	return &BookingState{
		SessionID:  sessionID,
		Quantities: quantities,
		Stage:      BookingStageIdle,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (s *BookingState) Quantity(tierID string) int {
	return s.Quantities[tierID]
}

func (s *BookingState) TotalTickets() int {
	total := 0
	for _, q := range s.Quantities {
		total += q
	}
	return total
}

// ClearSelection zeroes every quantity and drops the promo code. The name
// and the last receipt are kept.
func (s *BookingState) ClearSelection() {
	for id := range s.Quantities {
		s.Quantities[id] = 0
	}
	s.PromoCode = ""
	s.Stage = BookingStageIdle
}

// Restage derives the stage after a quantity or name change.
func (s *BookingState) Restage() {
	switch {
	case s.TotalTickets() == 0:
		s.Stage = BookingStageIdle
	case s.CustomerName != "":
		s.Stage = BookingStageReady
	default:
		s.Stage = BookingStageSelecting
	}
}

func (s *BookingState) Clone() *BookingState {
	if s == nil {
		return nil
	}
	out := *s
	out.Quantities = make(map[string]int, len(s.Quantities))
	for id, q := range s.Quantities {
		out.Quantities[id] = q
	}
	if s.LastReceipt != nil {
		out.LastReceipt = s.LastReceipt.Clone()
	}
	return &out
}

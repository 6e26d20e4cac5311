package event

import (
	"time"

	"github.com/ThreeDotsLabs/watermill"
)

type Header struct {
	ID          string    `json:"id"`
	PublishedAt time.Time `json:"published_at"`
}

func NewHeader() Header {
	return Header{
		ID:          watermill.NewUUID(),
		PublishedAt: time.Now().UTC(),
	}
}

// TicketIssued is published after a successful checkout.
type TicketIssued struct {
	Header       Header         `json:"header"`
	TicketID     string         `json:"ticket_id"`
	SessionID    string         `json:"session_id"`
	CustomerName string         `json:"customer_name"`
	Quantities   map[string]int `json:"quantities"`
	TotalTickets int            `json:"total_tickets"`
	Subtotal     string         `json:"subtotal"`
	Discount     string         `json:"discount"`
	Final        string         `json:"final"`
	PromoCode    string         `json:"promo_code,omitempty"`
}

// BookingReset is published when a session clears its selection.
type BookingReset struct {
	Header       Header `json:"header"`
	SessionID    string `json:"session_id"`
	TotalTickets int    `json:"total_tickets"`
}

package response

import (
	"time"

	"concert-booking/internal/data/entity"
)

type TierResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description"`
}

type EventResponse struct {
	Title     string         `json:"title"`
	Artists   string         `json:"artists"`
	Date      string         `json:"date"`
	DateLabel string         `json:"date_label"`
	Venue     string         `json:"venue"`
	Currency  string         `json:"currency"`
	DaysLeft  int            `json:"days_left"`
	Started   bool           `json:"started"`
	Tiers     []TierResponse `json:"tiers"`
}

func TierToResponse(t entity.Tier) TierResponse {
	return TierResponse{
		ID:          t.ID,
		Name:        t.Name,
		Price:       t.UnitPrice().StringFixed(2),
		Description: t.Description,
	}
}

func NewEventResponse(event entity.Event, catalog *entity.Catalog, now time.Time) *EventResponse {
	tiers := catalog.Tiers()
	out := make([]TierResponse, len(tiers))
	for i, t := range tiers {
		out[i] = TierToResponse(t)
	}

	return &EventResponse{
		Title:     event.Title,
		Artists:   event.Artists,
		Date:      event.Date.Format(time.DateOnly),
		DateLabel: event.DateLabel(),
		Venue:     event.Venue,
		Currency:  event.Currency,
		DaysLeft:  event.DaysLeft(now),
		Started:   event.Started(now),
		Tiers:     out,
	}
}

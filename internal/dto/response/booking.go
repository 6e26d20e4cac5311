package response

import (
	"time"

	"concert-booking/internal/data/entity"
)

type BookingLineResponse struct {
	TierID    string `json:"tier_id"`
	TierName  string `json:"tier_name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	Amount    string `json:"amount"`
}

type PromoResponse struct {
	Code    string `json:"code,omitempty"`
	Applied bool   `json:"applied"`
	Percent int64  `json:"percent,omitempty"`
	Message string `json:"message"`
}

type BookingSummaryResponse struct {
	SessionID     string                `json:"session_id"`
	Stage         entity.BookingStage   `json:"stage"`
	CustomerName  string                `json:"customer_name"`
	Quantities    map[string]int        `json:"quantities"`
	TotalTickets  int                   `json:"total_tickets"`
	Breakdown     []BookingLineResponse `json:"breakdown"`
	Currency      string                `json:"currency"`
	Subtotal      string                `json:"subtotal"`
	Discount      string                `json:"discount"`
	Final         string                `json:"final"`
	PromoCode     string                `json:"promo_code,omitempty"`
	Discounted    bool                  `json:"discounted"`
	CheckoutReady bool                  `json:"checkout_ready"`
	HasReceipt    bool                  `json:"has_receipt"`
}

type PromoResultResponse struct {
	Promo   PromoResponse          `json:"promo"`
	Summary BookingSummaryResponse `json:"summary"`
}

type ReceiptResponse struct {
	TicketID     string                `json:"ticket_id"`
	CustomerName string                `json:"customer_name"`
	TotalTickets int                   `json:"total_tickets"`
	Lines        []BookingLineResponse `json:"lines"`
	Currency     string                `json:"currency"`
	Subtotal     string                `json:"subtotal"`
	Discount     string                `json:"discount"`
	Final        string                `json:"final"`
	PromoCode    string                `json:"promo_code,omitempty"`
	IssuedAt     time.Time             `json:"issued_at"`
	Filename     string                `json:"filename"`
	Text         string                `json:"text"`
}

// Helper converters
func LinesToResponse(lines []entity.ReceiptLine) []BookingLineResponse {
	out := make([]BookingLineResponse, len(lines))
	for i, l := range lines {
		out[i] = BookingLineResponse{
			TierID:    l.TierID,
			TierName:  l.TierName,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice.StringFixed(2),
			Amount:    l.Amount.StringFixed(2),
		}
	}
	return out
}

func ReceiptToResponse(r *entity.Receipt) *ReceiptResponse {
	promo := ""
	if r.DiscountApplied {
		promo = r.PromoCode
	}
	return &ReceiptResponse{
		TicketID:     r.TicketID,
		CustomerName: r.CustomerName,
		TotalTickets: r.TotalTickets,
		Lines:        LinesToResponse(r.Lines),
		Currency:     r.Event.Currency,
		Subtotal:     r.Subtotal.StringFixed(2),
		Discount:     r.Discount.StringFixed(2),
		Final:        r.Final.StringFixed(2),
		PromoCode:    promo,
		IssuedAt:     r.IssuedAt,
		Filename:     r.Filename(),
		Text:         r.Text(),
	}
}

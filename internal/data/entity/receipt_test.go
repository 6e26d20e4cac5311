package entity_test

import (
	"strings"
	"testing"
	"time"

	"concert-booking/internal/data/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func sampleReceipt(discounted bool) *entity.Receipt {
	r := &entity.Receipt{
		TicketID:     "TKT-1734000000-4321",
		CustomerName: "Aisyah",
		Lines: []entity.ReceiptLine{
			{TierID: "vip", TierName: "VIP (Front Row)", Quantity: 1, UnitPrice: decimal.NewFromInt(500), Amount: decimal.NewFromInt(500)},
			{TierID: "regular", TierName: "Regular (Back Row)", Quantity: 2, UnitPrice: decimal.NewFromInt(100), Amount: decimal.NewFromInt(200)},
		},
		TotalTickets: 3,
		Subtotal:     decimal.NewFromInt(700),
		Discount:     decimal.Zero,
		Final:        decimal.NewFromInt(700),
		Event:        entity.ConcertEvent(),
		IssuedAt:     time.Date(2024, time.December, 1, 10, 0, 0, 0, time.UTC),
	}
	if discounted {
		r.Discount = decimal.NewFromInt(140)
		r.Final = decimal.NewFromInt(560)
		r.DiscountApplied = true
		r.PromoCode = "MEOW20"
	}
	return r
}

func TestReceipt_Text(t *testing.T) {
	t.Run("without discount", func(t *testing.T) {
		text := sampleReceipt(false).Text()

		assert.Contains(t, text, "Anugerah Malaysia Live 2024")
		assert.Contains(t, text, "Date: 25th December 2024\n")
		assert.Contains(t, text, "Venue: Bukit Jalil National Stadium\n")
		assert.Contains(t, text, "Name: Aisyah\n")
		assert.Contains(t, text, "Ticket Number: TKT-1734000000-4321\n")
		assert.Contains(t, text, "Total Tickets: 3\n")
		assert.Contains(t, text, "VIP (Front Row): 1 ticket(s)\n")
		assert.Contains(t, text, "Regular (Back Row): 2 ticket(s)\n")
		assert.Contains(t, text, "Total Amount: RM 700.00\n")
		assert.NotContains(t, text, "Discount Applied")
		assert.NotContains(t, text, "Original Total")
	})

	t.Run("with discount", func(t *testing.T) {
		text := sampleReceipt(true).Text()

		assert.Contains(t, text, "Original Total: RM 700.00\n")
		assert.Contains(t, text, "Discount Applied (MEOW20): -RM 140.00\n")
		assert.Contains(t, text, "Total Amount: RM 560.00\n")
	})

	t.Run("lines follow selection order", func(t *testing.T) {
		text := sampleReceipt(false).Text()
		assert.Less(t, strings.Index(text, "VIP (Front Row)"), strings.Index(text, "Regular (Back Row)"))
	})

	t.Run("rendering is deterministic", func(t *testing.T) {
		r := sampleReceipt(true)
		assert.Equal(t, r.Text(), r.Text())
	})
}

func TestReceiptFilename(t *testing.T) {
	cases := []struct {
		name    string
		tickets int
		want    string
	}{
		{"Aisyah", 1, "Aisyah_ticket.txt"},
		{"Aisyah", 3, "Aisyah_tickets.txt"},
		{"  Tan Wei  ", 2, "Tan Wei_tickets.txt"},
		{"a/b:c", 1, "a_b_c_ticket.txt"},
		{"", 2, "guest_tickets.txt"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, entity.ReceiptFilename(tc.name, tc.tickets))
	}
}

func TestReceipt_CloneIsIndependent(t *testing.T) {
	original := sampleReceipt(false)
	clone := original.Clone()
	clone.Lines[0].Quantity = 99

	assert.Equal(t, 1, original.Lines[0].Quantity)
}

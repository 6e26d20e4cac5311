package usecase

import (
	"strings"
	"time"

	"concert-booking/internal/data/entity"
	"concert-booking/pkg/errs"

	"github.com/shopspring/decimal"
)

// IDGenerator yields a ticket identifier. Production uses
// utils.GenerateTicketID; tests pass a fixed value.
type IDGenerator func() string

// Totals is everything the summary and the receipt derive from one state.
type Totals struct {
	Lines        []entity.ReceiptLine
	TotalTickets int
	Subtotal     decimal.Decimal
	Discount     decimal.Decimal
	Final        decimal.Decimal
	Rate         decimal.Decimal
	Applied      bool
}

// ComputeSubtotal sums quantity x unit price over the catalog. Ids that are
// not in the catalog and non-positive quantities contribute nothing.
func ComputeSubtotal(quantities map[string]int, catalog *entity.Catalog) decimal.Decimal {
	subtotal := decimal.Zero
	for _, tier := range catalog.Tiers() {
		q := quantities[tier.ID]
		if q <= 0 {
			continue
		}
		subtotal = subtotal.Add(tier.UnitPrice().Mul(decimal.NewFromInt(int64(q))))
	}
	return subtotal
}

// ApplyDiscount looks code up exactly. A miss, including the empty code,
// leaves the subtotal untouched.
func ApplyDiscount(subtotal decimal.Decimal, code string, promos *entity.PromoTable) (discount, final decimal.Decimal, applied bool) {
	rate, ok := promos.Lookup(code)
	if !ok {
		return decimal.Zero, subtotal, false
	}
	discount = subtotal.Mul(rate).Round(2)
	return discount, subtotal.Sub(discount), true
}

// ItemizeSelection lists the non-zero tiers in catalog order.
func ItemizeSelection(quantities map[string]int, catalog *entity.Catalog) []entity.ReceiptLine {
	var lines []entity.ReceiptLine
	for _, tier := range catalog.Tiers() {
		q := quantities[tier.ID]
		if q <= 0 {
			continue
		}
		lines = append(lines, entity.ReceiptLine{
			TierID:    tier.ID,
			TierName:  tier.Name,
			Quantity:  q,
			UnitPrice: tier.UnitPrice(),
			Amount:    tier.UnitPrice().Mul(decimal.NewFromInt(int64(q))),
		})
	}
	return lines
}

// ComputeTotals derives lines, subtotal and discount from the stored state.
func ComputeTotals(state *entity.BookingState, catalog *entity.Catalog, promos *entity.PromoTable) Totals {
	lines := ItemizeSelection(state.Quantities, catalog)
	tickets := 0
	for _, l := range lines {
		tickets += l.Quantity
	}

	subtotal := ComputeSubtotal(state.Quantities, catalog)
	discount, final, applied := ApplyDiscount(subtotal, state.PromoCode, promos)
	rate, _ := promos.Lookup(state.PromoCode)

	return Totals{
		Lines:        lines,
		TotalTickets: tickets,
		Subtotal:     subtotal,
		Discount:     discount,
		Final:        final,
		Rate:         rate,
		Applied:      applied,
	}
}

// ValidateCheckout refuses an empty selection first, then a blank name.
func ValidateCheckout(totalTickets int, name string) error {
	if totalTickets <= 0 {
		return errs.ErrNoTickets
	}
	if strings.TrimSpace(name) == "" {
		return errs.ErrNameRequired
	}
	return nil
}

// BuildReceipt freezes totals into a receipt. It has no side effects.
func BuildReceipt(totals Totals, promoCode, name, ticketID string, event entity.Event, issuedAt time.Time) (*entity.Receipt, error) {
	if err := ValidateCheckout(totals.TotalTickets, name); err != nil {
		return nil, err
	}

	receipt := &entity.Receipt{
		TicketID:        ticketID,
		CustomerName:    strings.TrimSpace(name),
		Lines:           totals.Lines,
		TotalTickets:    totals.TotalTickets,
		Subtotal:        totals.Final.Add(totals.Discount),
		Discount:        totals.Discount,
		Final:           totals.Final,
		DiscountApplied: totals.Applied,
		Event:           event,
		IssuedAt:        issuedAt,
	}
	if totals.Applied {
		receipt.PromoCode = promoCode
	}

	return receipt, nil
}

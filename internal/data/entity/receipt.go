package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const receiptRule = "---------------------------------------------------------"

type ReceiptLine struct {
	TierID    string          `json:"tier_id"`
	TierName  string          `json:"tier_name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Amount    decimal.Decimal `json:"amount"`
}

// Receipt is derived at checkout and never stored beyond the session.
type Receipt struct {
	TicketID        string          `json:"ticket_id"`
	CustomerName    string          `json:"customer_name"`
	Lines           []ReceiptLine   `json:"lines"`
	TotalTickets    int             `json:"total_tickets"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	Discount        decimal.Decimal `json:"discount"`
	Final           decimal.Decimal `json:"final"`
	DiscountApplied bool            `json:"discount_applied"`
	PromoCode       string          `json:"promo_code,omitempty"`
	Event           Event           `json:"event"`
	IssuedAt        time.Time       `json:"issued_at"`
}

func (r *Receipt) Clone() *Receipt {
	out := *r
	out.Lines = append([]ReceiptLine(nil), r.Lines...)
	return &out
}

// Filename is <name>_ticket.txt for a single ticket, <name>_tickets.txt otherwise.
func (r *Receipt) Filename() string {
	return ReceiptFilename(r.CustomerName, r.TotalTickets)
}

func ReceiptFilename(name string, totalTickets int) string {
	safe := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '"', '*', '?', '<', '>', '|':
			return '_'
		}
		if r < 0x20 {
			return -1
		}
		return r
	}, strings.TrimSpace(name))
	if safe == "" {
		safe = "guest"
	}
	if totalTickets == 1 {
		return safe + "_ticket.txt"
	}
	return safe + "_tickets.txt"
}

// Text renders the printable ticket. Output depends only on the receipt.
func (r *Receipt) Text() string {
	currency := r.Event.Currency
	var b strings.Builder

	b.WriteString(receiptRule + "\n")
	b.WriteString(centered(r.Event.Title, len(receiptRule)) + "\n")
	b.WriteString(receiptRule + "\n")
	fmt.Fprintf(&b, "Date: %s\n", r.Event.DateLabel())
	fmt.Fprintf(&b, "Venue: %s\n", r.Event.Venue)
	b.WriteString("\n")
	fmt.Fprintf(&b, "Name: %s\n", r.CustomerName)
	fmt.Fprintf(&b, "Ticket Number: %s\n", r.TicketID)
	fmt.Fprintf(&b, "Total Tickets: %d\n", r.TotalTickets)
	b.WriteString(receiptRule + "\n")
	b.WriteString("Ticket Breakdown:\n")
	b.WriteString(receiptRule + "\n")
	for _, line := range r.Lines {
		fmt.Fprintf(&b, "%s: %d ticket(s)\n", line.TierName, line.Quantity)
	}
	b.WriteString("\n")
	if r.DiscountApplied {
		fmt.Fprintf(&b, "Original Total: %s %s\n", currency, r.Final.Add(r.Discount).StringFixed(2))
		fmt.Fprintf(&b, "Discount Applied (%s): -%s %s\n", r.PromoCode, currency, r.Discount.StringFixed(2))
	}
	fmt.Fprintf(&b, "Total Amount: %s %s\n", currency, r.Final.StringFixed(2))
	b.WriteString("\n" + receiptRule + "\n\n")
	b.WriteString("Thank you for your purchase! We look forward to seeing you at the concert.\n\n")
	b.WriteString("Note: This is a digital ticket. Please show it at the venue entrance.\n")
	b.WriteString(receiptRule + "\n")

	return b.String()
}

func centered(s string, width int) string {
	pad := (width - len(s)) / 2
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}

package errs

import (
	cr "github.com/cockroachdb/errors"
)

// Booking sentinels. Handlers match them with Is, never by message text.
var (
	ErrTierNotFound     = cr.New("ticket tier not found")
	ErrInvalidQuantity  = cr.New("invalid ticket quantity")
	ErrNoTickets        = cr.New("no tickets selected")
	ErrNameRequired     = cr.New("customer name is required")
	ErrReceiptNotFound  = cr.New("receipt not found")
	ErrInvalidPromoRate = cr.New("invalid promo rate")
)

func New(msg string) error {
	return cr.New(msg)
}

func Newf(format string, args ...any) error {
	return cr.Newf(format, args...)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

// Mark attaches markErr's identity to err so Is(err, markErr) holds
// while err keeps its own message.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

func Is(err, reference error) bool {
	return cr.Is(err, reference)
}

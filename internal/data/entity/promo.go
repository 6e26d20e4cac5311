package entity

import (
	"sort"
	"strings"

	"concert-booking/pkg/errs"

	"github.com/shopspring/decimal"
)

// PromoTable maps a case-sensitive code to a discount fraction in [0, 1).
type PromoTable struct {
	rates map[string]decimal.Decimal
}

func NewPromoTable(rates map[string]decimal.Decimal) (*PromoTable, error) {
	one := decimal.NewFromInt(1)
	table := &PromoTable{rates: make(map[string]decimal.Decimal, len(rates))}
	for code, rate := range rates {
		if code == "" {
			return nil, errs.Mark(errs.New("promo code is empty"), errs.ErrInvalidPromoRate)
		}
		if rate.IsNegative() || rate.GreaterThanOrEqual(one) {
			return nil, errs.Mark(errs.Newf("promo %s has rate %s outside [0,1)", code, rate), errs.ErrInvalidPromoRate)
		}
		table.rates[code] = rate
	}
	return table, nil
}

// DefaultPromoRates is the table used when PROMO_CODES is empty.
func DefaultPromoRates() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"MEOW20": decimal.RequireFromString("0.20"),
		"FAN20":  decimal.RequireFromString("0.20"),
	}
}

// Lookup is an exact match; empty never matches.
func (p *PromoTable) Lookup(code string) (decimal.Decimal, bool) {
	if p == nil || code == "" {
		return decimal.Zero, false
	}
	rate, ok := p.rates[code]
	return rate, ok
}

func (p *PromoTable) Codes() []string {
	codes := make([]string, 0, len(p.rates))
	for code := range p.rates {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// ParsePromoRates reads "CODE:0.2,OTHER:0.15". Whitespace around entries is
// ignored, codes keep their case.
func ParsePromoRates(raw string) (map[string]decimal.Decimal, error) {
	rates := make(map[string]decimal.Decimal)
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		code, value, ok := strings.Cut(entry, ":")
		if !ok {
			return nil, errs.Mark(errs.Newf("promo entry %q is not CODE:rate", entry), errs.ErrInvalidPromoRate)
		}
		rate, err := decimal.NewFromString(strings.TrimSpace(value))
		if err != nil {
			return nil, errs.Mark(errs.Wrapf(err, "promo %s", code), errs.ErrInvalidPromoRate)
		}
		rates[strings.TrimSpace(code)] = rate
	}
	return rates, nil
}

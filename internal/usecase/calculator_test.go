package usecase_test

import (
	"testing"
	"time"

	"concert-booking/internal/data/entity"
	"concert-booking/internal/usecase"
	"concert-booking/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func defaultPromos(t *testing.T) *entity.PromoTable {
	t.Helper()
	promos, err := entity.NewPromoTable(entity.DefaultPromoRates())
	require.NoError(t, err)
	return promos
}

func TestComputeSubtotal(t *testing.T) {
	catalog := entity.ConcertCatalog()

	cases := []struct {
		name       string
		quantities map[string]int
		want       string
	}{
		{"nothing selected", map[string]int{}, "0"},
		{"all zero", map[string]int{"vip": 0, "regular": 0}, "0"},
		{"two regular and one vip", map[string]int{"regular": 2, "vip": 1}, "700"},
		{"one of each", map[string]int{"meet-greet": 1, "vip": 1, "premium": 1, "regular": 1}, "1900"},
		{"unknown tier is ignored", map[string]int{"backstage": 4, "premium": 1}, "300"},
		{"negative quantity is ignored", map[string]int{"regular": -3, "vip": 1}, "500"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := usecase.ComputeSubtotal(tc.quantities, catalog)
			assert.True(t, got.Equal(dec(tc.want)), "got %s", got)
		})
	}
}

func TestApplyDiscount(t *testing.T) {
	promos := defaultPromos(t)

	t.Run("recognised code takes its fraction", func(t *testing.T) {
		discount, final, applied := usecase.ApplyDiscount(dec("1000"), "MEOW20", promos)
		assert.True(t, applied)
		assert.Equal(t, "200.00", discount.StringFixed(2))
		assert.Equal(t, "800.00", final.StringFixed(2))
	})

	t.Run("both shipped codes are accepted", func(t *testing.T) {
		_, final, applied := usecase.ApplyDiscount(dec("700"), "FAN20", promos)
		assert.True(t, applied)
		assert.Equal(t, "560.00", final.StringFixed(2))
	})

	t.Run("unrecognised code leaves subtotal untouched", func(t *testing.T) {
		for _, subtotal := range []string{"0", "100", "1900"} {
			discount, final, applied := usecase.ApplyDiscount(dec(subtotal), "WRONG1", promos)
			assert.False(t, applied)
			assert.True(t, discount.IsZero())
			assert.True(t, final.Equal(dec(subtotal)))
		}
	})

	t.Run("empty code is unmatched", func(t *testing.T) {
		_, final, applied := usecase.ApplyDiscount(dec("500"), "", promos)
		assert.False(t, applied)
		assert.True(t, final.Equal(dec("500")))
	})

	t.Run("matching is case sensitive", func(t *testing.T) {
		_, _, applied := usecase.ApplyDiscount(dec("500"), "meow20", promos)
		assert.False(t, applied)
	})

	t.Run("re-applying the same code is idempotent", func(t *testing.T) {
		d1, f1, _ := usecase.ApplyDiscount(dec("1300"), "MEOW20", promos)
		d2, f2, _ := usecase.ApplyDiscount(dec("1300"), "MEOW20", promos)
		assert.True(t, d1.Equal(d2))
		assert.True(t, f1.Equal(f2))
	})

	t.Run("discount rounds to cents", func(t *testing.T) {
		odd, err := entity.NewPromoTable(map[string]decimal.Decimal{"THIRD": dec("0.3333")})
		require.NoError(t, err)

		discount, final, applied := usecase.ApplyDiscount(dec("10"), "THIRD", odd)
		assert.True(t, applied)
		assert.Equal(t, "3.33", discount.StringFixed(2))
		assert.Equal(t, "6.67", final.StringFixed(2))
	})
}

func TestItemizeSelection_CatalogOrder(t *testing.T) {
	lines := usecase.ItemizeSelection(map[string]int{"regular": 2, "meet-greet": 1, "vip": 0}, entity.ConcertCatalog())

	require.Len(t, lines, 2)
	assert.Equal(t, "meet-greet", lines[0].TierID)
	assert.Equal(t, "regular", lines[1].TierID)
	assert.Equal(t, "200.00", lines[1].Amount.StringFixed(2))
}

func TestValidateCheckout(t *testing.T) {
	assert.NoError(t, usecase.ValidateCheckout(1, "Aisyah"))
	assert.True(t, errs.Is(usecase.ValidateCheckout(0, "Aisyah"), errs.ErrNoTickets))
	assert.True(t, errs.Is(usecase.ValidateCheckout(2, ""), errs.ErrNameRequired))
	assert.True(t, errs.Is(usecase.ValidateCheckout(2, "   "), errs.ErrNameRequired))
	// No tickets wins over a missing name.
	assert.True(t, errs.Is(usecase.ValidateCheckout(0, ""), errs.ErrNoTickets))
}

func TestBuildReceipt(t *testing.T) {
	catalog := entity.ConcertCatalog()
	promos := defaultPromos(t)
	issuedAt := time.Date(2024, time.December, 1, 10, 0, 0, 0, time.UTC)

	state := entity.NewBookingState(uuid.New(), catalog, issuedAt)
	state.Quantities["regular"] = 2
	state.Quantities["vip"] = 1
	state.PromoCode = "MEOW20"

	t.Run("freezes discounted totals", func(t *testing.T) {
		totals := usecase.ComputeTotals(state, catalog, promos)
		receipt, err := usecase.BuildReceipt(totals, state.PromoCode, " Aisyah ", "TKT-1-0001", entity.ConcertEvent(), issuedAt)
		require.NoError(t, err)

		assert.Equal(t, "TKT-1-0001", receipt.TicketID)
		assert.Equal(t, "Aisyah", receipt.CustomerName)
		assert.Equal(t, 3, receipt.TotalTickets)
		assert.Equal(t, "700.00", receipt.Subtotal.StringFixed(2))
		assert.Equal(t, "140.00", receipt.Discount.StringFixed(2))
		assert.Equal(t, "560.00", receipt.Final.StringFixed(2))
		assert.True(t, receipt.DiscountApplied)
		assert.Equal(t, "MEOW20", receipt.PromoCode)
		assert.True(t, receipt.Subtotal.Equal(receipt.Final.Add(receipt.Discount)))
	})

	t.Run("unmatched code is not carried", func(t *testing.T) {
		bad := state.Clone()
		bad.PromoCode = "WRONG1"
		totals := usecase.ComputeTotals(bad, catalog, promos)
		receipt, err := usecase.BuildReceipt(totals, bad.PromoCode, "Aisyah", "TKT-1-0002", entity.ConcertEvent(), issuedAt)
		require.NoError(t, err)

		assert.False(t, receipt.DiscountApplied)
		assert.Empty(t, receipt.PromoCode)
		assert.Equal(t, "700.00", receipt.Final.StringFixed(2))
	})

	t.Run("refuses an empty name", func(t *testing.T) {
		totals := usecase.ComputeTotals(state, catalog, promos)
		receipt, err := usecase.BuildReceipt(totals, state.PromoCode, "", "TKT-1-0003", entity.ConcertEvent(), issuedAt)
		assert.Nil(t, receipt)
		assert.True(t, errs.Is(err, errs.ErrNameRequired))
	})

	t.Run("refuses an empty selection", func(t *testing.T) {
		empty := entity.NewBookingState(uuid.New(), catalog, issuedAt)
		totals := usecase.ComputeTotals(empty, catalog, promos)
		receipt, err := usecase.BuildReceipt(totals, "", "Aisyah", "TKT-1-0004", entity.ConcertEvent(), issuedAt)
		assert.Nil(t, receipt)
		assert.True(t, errs.Is(err, errs.ErrNoTickets))
	})
}

package usecase_test

import (
	"context"
	"testing"
	"time"

	"concert-booking/internal/data/entity"
	"concert-booking/internal/usecase"
	"concert-booking/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCatalogService_GetEvent(t *testing.T) {
	event := entity.ConcertEvent()
	clk := clock.NewMockClock(event.Date.Add(-10 * 24 * time.Hour))

	opts := usecase.Options{Clock: clk, Event: event, Catalog: entity.ConcertCatalog()}
	srv := usecase.NewCatalogService(opts, zap.NewNop())

	got := srv.GetEvent(context.Background())
	require.NotNil(t, got)

	assert.Equal(t, "2024-12-25", got.Date)
	assert.Equal(t, "25th December 2024", got.DateLabel)
	assert.Equal(t, "Bukit Jalil National Stadium", got.Venue)
	assert.Equal(t, "RM", got.Currency)
	assert.Equal(t, 10, got.DaysLeft)
	assert.False(t, got.Started)

	require.Len(t, got.Tiers, 4)
	assert.Equal(t, "meet-greet", got.Tiers[0].ID)
	assert.Equal(t, "1000.00", got.Tiers[0].Price)
	assert.Equal(t, "regular", got.Tiers[3].ID)
	assert.Equal(t, "100.00", got.Tiers[3].Price)

	clk.Add(11 * 24 * time.Hour)
	later := srv.GetEvent(context.Background())
	assert.Zero(t, later.DaysLeft)
	assert.True(t, later.Started)
}

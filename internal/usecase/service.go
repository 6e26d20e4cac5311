package usecase

import (
	"concert-booking/internal/data/entity"
	"concert-booking/internal/data/repository"
	"concert-booking/pkg/clock"
	"concert-booking/pkg/utils"

	"go.uber.org/zap"
)

// Options carries the static booking data and injected capabilities.
// Zero fields fall back to the concert defaults.
type Options struct {
	Catalog      *entity.Catalog
	Promos       *entity.PromoTable
	Event        entity.Event
	Publisher    EventPublisher
	NextTicketID IDGenerator
	Clock        clock.Clock
}

func (o Options) withDefaults() Options {
	if o.Catalog == nil {
		o.Catalog = entity.ConcertCatalog()
	}
	if o.Promos == nil {
		o.Promos, _ = entity.NewPromoTable(entity.DefaultPromoRates())
	}
	if o.Event.Title == "" {
		o.Event = entity.ConcertEvent()
	}
	if o.NextTicketID == nil {
		o.NextTicketID = utils.GenerateTicketID
	}
	if o.Clock == nil {
		o.Clock = clock.NewRealClock()
	}
	return o
}

type Service struct {
	Catalog CatalogService
	Booking BookingService
}

func NewService(repo *repository.Repository, opts Options, log *zap.Logger) *Service {
	opts = opts.withDefaults()
	return &Service{
		Catalog: NewCatalogService(opts, log),
		Booking: NewBookingService(repo, opts, log),
	}
}

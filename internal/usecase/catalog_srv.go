package usecase

import (
	"context"

	"concert-booking/internal/data/entity"
	"concert-booking/internal/dto/response"
	"concert-booking/pkg/clock"

	"go.uber.org/zap"
)

type CatalogService interface {
	GetEvent(ctx context.Context) *response.EventResponse
}

type catalogService struct {
	catalog *entity.Catalog
	event   entity.Event
	clock   clock.Clock
	log     *zap.Logger
}

func NewCatalogService(opts Options, log *zap.Logger) CatalogService {
	return &catalogService{
		catalog: opts.Catalog,
		event:   opts.Event,
		clock:   opts.Clock,
		log:     log.With(zap.String("service", "catalog")),
	}
}

// GetEvent includes the countdown, which is why it needs the clock.
func (s *catalogService) GetEvent(ctx context.Context) *response.EventResponse {
	return response.NewEventResponse(s.event, s.catalog, s.clock.Now())
}

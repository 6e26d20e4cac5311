package event

import (
	"context"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"go.uber.org/zap"

	"concert-booking/pkg/errs"
)

type RouterDeps struct {
	Subscriber message.Subscriber
	Logger     watermill.LoggerAdapter
	Log        *zap.Logger
}

// NewRouter subscribes the audit handlers. Run it with the service context.
func NewRouter(deps RouterDeps) (*message.Router, error) {
	router, err := message.NewRouter(message.RouterConfig{
		CloseTimeout: 5 * time.Second,
	}, deps.Logger)
	if err != nil {
		return nil, errs.Wrap(err, "create event router")
	}

	router.AddMiddleware(middleware.Recoverer)
	router.AddMiddleware(middleware.Retry{
		MaxRetries:      3,
		InitialInterval: 50 * time.Millisecond,
		MaxInterval:     time.Second,
		Multiplier:      2,
		Logger:          deps.Logger,
	}.Middleware)

	processor, err := cqrs.NewEventProcessorWithConfig(router, cqrs.EventProcessorConfig{
		SubscriberConstructor: func(params cqrs.EventProcessorSubscriberConstructorParams) (message.Subscriber, error) {
			return deps.Subscriber, nil
		},
		GenerateSubscribeTopic: func(params cqrs.EventProcessorGenerateSubscribeTopicParams) (string, error) {
			return params.EventName, nil
		},
		Marshaler: marshaler(),
		Logger:    deps.Logger,
	})
	if err != nil {
		return nil, errs.Wrap(err, "create event processor")
	}

	h := handler{log: deps.Log.With(zap.String("handler", "event"))}
	if err := processor.AddHandlers(
		cqrs.NewEventHandler("audit-ticket-issued", h.TicketIssued),
		cqrs.NewEventHandler("audit-booking-reset", h.BookingReset),
	); err != nil {
		return nil, errs.Wrap(err, "add event handlers")
	}

	return router, nil
}

type handler struct {
	log *zap.Logger
}

func (h handler) TicketIssued(ctx context.Context, e *TicketIssued) error {
	h.log.Info("Ticket issued",
		zap.String("event_id", e.Header.ID),
		zap.String("ticket_id", e.TicketID),
		zap.String("session_id", e.SessionID),
		zap.String("customer_name", e.CustomerName),
		zap.Int("total_tickets", e.TotalTickets),
		zap.String("final", e.Final),
		zap.String("promo_code", e.PromoCode),
	)
	return nil
}

func (h handler) BookingReset(ctx context.Context, e *BookingReset) error {
	h.log.Info("Booking reset",
		zap.String("event_id", e.Header.ID),
		zap.String("session_id", e.SessionID),
		zap.Int("cleared_tickets", e.TotalTickets),
	)
	return nil
}

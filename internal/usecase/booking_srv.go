package usecase

import (
	"context"
	"fmt"
	"strings"

	"concert-booking/internal/data/entity"
	"concert-booking/internal/data/repository"
	"concert-booking/internal/dto/request"
	"concert-booking/internal/dto/response"
	"concert-booking/internal/event"
	"concert-booking/pkg/clock"
	"concert-booking/pkg/errs"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	promoAppliedMessage  = "Promo code applied! You get a %d%% discount."
	promoRejectedMessage = "Invalid promo code. Please check and try again."
	promoEmptyMessage    = "Enter a promo code to get a discount!"
)

type BookingService interface {
	GetSummary(ctx context.Context, sessionID uuid.UUID) (*response.BookingSummaryResponse, error)

	// Quantity changes
	SetQuantity(ctx context.Context, sessionID uuid.UUID, tierID string, quantity int) (*response.BookingSummaryResponse, error)
	Increment(ctx context.Context, sessionID uuid.UUID, tierID string) (*response.BookingSummaryResponse, error)
	Decrement(ctx context.Context, sessionID uuid.UUID, tierID string) (*response.BookingSummaryResponse, error)

	ApplyPromo(ctx context.Context, sessionID uuid.UUID, code string) (*response.PromoResultResponse, error)
	SetName(ctx context.Context, sessionID uuid.UUID, name string) (*response.BookingSummaryResponse, error)

	// Checkout
	Checkout(ctx context.Context, sessionID uuid.UUID, req *request.CheckoutRequest) (*response.ReceiptResponse, error)
	GetReceipt(ctx context.Context, sessionID uuid.UUID) (*entity.Receipt, error)

	Reset(ctx context.Context, sessionID uuid.UUID) (*response.BookingSummaryResponse, error)
}

// EventPublisher is satisfied by *cqrs.EventBus.
type EventPublisher interface {
	Publish(ctx context.Context, event any) error
}

type bookingService struct {
	repo      *repository.Repository
	catalog   *entity.Catalog
	promos    *entity.PromoTable
	event     entity.Event
	publisher EventPublisher
	nextID    IDGenerator
	clock     clock.Clock
	log       *zap.Logger
}

func NewBookingService(repo *repository.Repository, opts Options, log *zap.Logger) BookingService {
	return &bookingService{
		repo:      repo,
		catalog:   opts.Catalog,
		promos:    opts.Promos,
		event:     opts.Event,
		publisher: opts.Publisher,
		nextID:    opts.NextTicketID,
		clock:     opts.Clock,
		log:       log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) GetSummary(ctx context.Context, sessionID uuid.UUID) (*response.BookingSummaryResponse, error) {
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.summarize(state), nil
}

func (s *bookingService) SetQuantity(ctx context.Context, sessionID uuid.UUID, tierID string, quantity int) (*response.BookingSummaryResponse, error) {
	if quantity < 0 || quantity > entity.MaxQuantityPerTier {
		return nil, errs.Mark(errs.Newf("quantity %d for %s", quantity, tierID), errs.ErrInvalidQuantity)
	}
	return s.mutateQuantity(ctx, sessionID, tierID, func(int) int { return quantity })
}

func (s *bookingService) Increment(ctx context.Context, sessionID uuid.UUID, tierID string) (*response.BookingSummaryResponse, error) {
	return s.mutateQuantity(ctx, sessionID, tierID, func(q int) int {
		if q >= entity.MaxQuantityPerTier {
			return q
		}
		return q + 1
	})
}

// Decrement at zero is a no-op, not an error.
func (s *bookingService) Decrement(ctx context.Context, sessionID uuid.UUID, tierID string) (*response.BookingSummaryResponse, error) {
	return s.mutateQuantity(ctx, sessionID, tierID, func(q int) int {
		if q <= 0 {
			return 0
		}
		return q - 1
	})
}

func (s *bookingService) mutateQuantity(ctx context.Context, sessionID uuid.UUID, tierID string, next func(int) int) (*response.BookingSummaryResponse, error) {
	if _, ok := s.catalog.Find(tierID); !ok {
		return nil, errs.Mark(errs.Newf("tier %q", tierID), errs.ErrTierNotFound)
	}

	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	before := state.Quantity(tierID)
	state.Quantities[tierID] = next(before)
	state.Restage()

	if err := s.save(ctx, state); err != nil {
		return nil, err
	}

	s.log.Debug("Quantity changed",
		zap.String("session_id", sessionID.String()),
		zap.String("tier", tierID),
		zap.Int("from", before),
		zap.Int("to", state.Quantities[tierID]),
	)

	return s.summarize(state), nil
}

func (s *bookingService) ApplyPromo(ctx context.Context, sessionID uuid.UUID, code string) (*response.PromoResultResponse, error) {
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	// Codes match exactly; only a blank submission is treated as empty.
	promo := response.PromoResponse{Code: code}

	rate, ok := s.promos.Lookup(code)
	switch {
	case strings.TrimSpace(code) == "":
		state.PromoCode = ""
		state.Restage()
		promo.Code = ""
		promo.Message = promoEmptyMessage
	case ok:
		state.PromoCode = code
		state.Stage = entity.BookingStagePromoApplied
		if state.TotalTickets() == 0 {
			state.Restage()
		}
		promo.Applied = true
		promo.Percent = rate.Shift(2).IntPart()
		promo.Message = fmt.Sprintf(promoAppliedMessage, promo.Percent)
	default:
		state.PromoCode = ""
		state.Stage = entity.BookingStagePromoRejected
		promo.Message = promoRejectedMessage
		s.log.Info("Promo code rejected",
			zap.String("session_id", sessionID.String()),
			zap.String("code", code),
		)
	}

	if err := s.save(ctx, state); err != nil {
		return nil, err
	}

	return &response.PromoResultResponse{
		Promo:   promo,
		Summary: *s.summarize(state),
	}, nil
}

func (s *bookingService) SetName(ctx context.Context, sessionID uuid.UUID, name string) (*response.BookingSummaryResponse, error) {
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	state.CustomerName = strings.TrimSpace(name)
	state.Restage()

	if err := s.save(ctx, state); err != nil {
		return nil, err
	}

	return s.summarize(state), nil
}

func (s *bookingService) Checkout(ctx context.Context, sessionID uuid.UUID, req *request.CheckoutRequest) (*response.ReceiptResponse, error) {
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	name := state.CustomerName
	if req != nil && req.Name != nil {
		name = strings.TrimSpace(*req.Name)
	}

	totals := ComputeTotals(state, s.catalog, s.promos)
	if err := ValidateCheckout(totals.TotalTickets, name); err != nil {
		s.log.Warn("Checkout refused",
			zap.Error(err),
			zap.String("session_id", sessionID.String()),
			zap.Int("total_tickets", totals.TotalTickets),
		)
		return nil, err
	}

	receipt, err := BuildReceipt(totals, state.PromoCode, name, s.nextID(), s.event, s.clock.Now())
	if err != nil {
		return nil, err
	}

	state.CustomerName = receipt.CustomerName
	state.LastReceipt = receipt
	state.Stage = entity.BookingStageReceipted

	if err := s.save(ctx, state); err != nil {
		return nil, err
	}

	s.log.Info("Ticket issued",
		zap.String("ticket_id", receipt.TicketID),
		zap.String("session_id", sessionID.String()),
		zap.Int("total_tickets", receipt.TotalTickets),
		zap.String("final", receipt.Final.StringFixed(2)),
		zap.Bool("discount_applied", receipt.DiscountApplied),
	)

	s.publish(ctx, &event.TicketIssued{
		Header:       event.NewHeader(),
		TicketID:     receipt.TicketID,
		SessionID:    sessionID.String(),
		CustomerName: receipt.CustomerName,
		Quantities:   nonZero(state.Quantities),
		TotalTickets: receipt.TotalTickets,
		Subtotal:     receipt.Subtotal.StringFixed(2),
		Discount:     receipt.Discount.StringFixed(2),
		Final:        receipt.Final.StringFixed(2),
		PromoCode:    receipt.PromoCode,
	})

	return response.ReceiptToResponse(receipt), nil
}

func (s *bookingService) GetReceipt(ctx context.Context, sessionID uuid.UUID) (*entity.Receipt, error) {
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if state.LastReceipt == nil {
		return nil, errs.Mark(errs.Newf("session %s has not checked out", sessionID), errs.ErrReceiptNotFound)
	}
	return state.LastReceipt, nil
}

func (s *bookingService) Reset(ctx context.Context, sessionID uuid.UUID) (*response.BookingSummaryResponse, error) {
	state, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	cleared := state.TotalTickets()
	state.ClearSelection()

	// Nothing left worth keeping: drop the session instead of storing zeros.
	if state.CustomerName == "" && state.LastReceipt == nil {
		if err := s.repo.Session.Delete(ctx, sessionID); err != nil {
			s.log.Error("Failed to delete booking state",
				zap.Error(err),
				zap.String("session_id", sessionID.String()),
			)
			return nil, errs.Wrap(err, "delete booking state")
		}
	} else if err := s.save(ctx, state); err != nil {
		return nil, err
	}

	s.publish(ctx, &event.BookingReset{
		Header:       event.NewHeader(),
		SessionID:    sessionID.String(),
		TotalTickets: cleared,
	})

	return s.summarize(state), nil
}

// load returns the stored state or a fresh idle one.
func (s *bookingService) load(ctx context.Context, sessionID uuid.UUID) (*entity.BookingState, error) {
	state, err := s.repo.Session.Find(ctx, sessionID)
	if err != nil {
		s.log.Error("Failed to load booking state",
			zap.Error(err),
			zap.String("session_id", sessionID.String()),
		)
		return nil, errs.Wrap(err, "load booking state")
	}
	if state == nil {
		state = entity.NewBookingState(sessionID, s.catalog, s.clock.Now())
	}
	return state, nil
}

func (s *bookingService) save(ctx context.Context, state *entity.BookingState) error {
	state.UpdatedAt = s.clock.Now()
	if err := s.repo.Session.Save(ctx, state); err != nil {
		s.log.Error("Failed to save booking state",
			zap.Error(err),
			zap.String("session_id", state.SessionID.String()),
		)
		return errs.Wrap(err, "save booking state")
	}
	return nil
}

// publish is best effort: the booking already succeeded.
func (s *bookingService) publish(ctx context.Context, e any) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, e); err != nil {
		s.log.Warn("Failed to publish event", zap.Error(err))
	}
}

func (s *bookingService) summarize(state *entity.BookingState) *response.BookingSummaryResponse {
	totals := ComputeTotals(state, s.catalog, s.promos)

	promoCode := ""
	if totals.Applied {
		promoCode = state.PromoCode
	}

	return &response.BookingSummaryResponse{
		SessionID:     state.SessionID.String(),
		Stage:         state.Stage,
		CustomerName:  state.CustomerName,
		Quantities:    copyQuantities(state.Quantities),
		TotalTickets:  totals.TotalTickets,
		Breakdown:     response.LinesToResponse(totals.Lines),
		Currency:      s.event.Currency,
		Subtotal:      totals.Subtotal.StringFixed(2),
		Discount:      totals.Discount.StringFixed(2),
		Final:         totals.Final.StringFixed(2),
		PromoCode:     promoCode,
		Discounted:    totals.Applied,
		CheckoutReady: ValidateCheckout(totals.TotalTickets, state.CustomerName) == nil,
		HasReceipt:    state.LastReceipt != nil,
	}
}

func copyQuantities(in map[string]int) map[string]int {
	out := make(map[string]int, len(in))
	for id, q := range in {
		out[id] = q
	}
	return out
}

func nonZero(in map[string]int) map[string]int {
	out := make(map[string]int)
	for id, q := range in {
		if q > 0 {
			out[id] = q
		}
	}
	return out
}

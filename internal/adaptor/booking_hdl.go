package adaptor

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"concert-booking/internal/dto/request"
	"concert-booking/internal/usecase"
	"concert-booking/pkg/errs"
	"concert-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// GetSummary handles GET /api/booking
func (h *BookingHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := utils.GetSessionIDFromContext(r.Context())
	if !ok {
		utils.ResponseInternalError(w, "Session unavailable")
		return
	}

	summary, err := h.service.GetSummary(r.Context(), sessionID)
	if err != nil {
		h.handleServiceError(w, err, "get summary")
		return
	}

	utils.ResponseSuccess(w, "success", summary)
}

// SetQuantity handles PUT /api/booking/tickets/{tier}
func (h *BookingHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := utils.GetSessionIDFromContext(r.Context())
	if !ok {
		utils.ResponseInternalError(w, "Session unavailable")
		return
	}

	var req request.SetQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	summary, err := h.service.SetQuantity(r.Context(), sessionID, chi.URLParam(r, "tier"), *req.Quantity)
	if err != nil {
		h.handleServiceError(w, err, "set quantity")
		return
	}

	utils.ResponseSuccess(w, "success", summary)
}

// Increment handles POST /api/booking/tickets/{tier}/increment
func (h *BookingHandler) Increment(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := utils.GetSessionIDFromContext(r.Context())
	if !ok {
		utils.ResponseInternalError(w, "Session unavailable")
		return
	}

	summary, err := h.service.Increment(r.Context(), sessionID, chi.URLParam(r, "tier"))
	if err != nil {
		h.handleServiceError(w, err, "increment")
		return
	}

	utils.ResponseSuccess(w, "success", summary)
}

// Decrement handles POST /api/booking/tickets/{tier}/decrement
func (h *BookingHandler) Decrement(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := utils.GetSessionIDFromContext(r.Context())
	if !ok {
		utils.ResponseInternalError(w, "Session unavailable")
		return
	}

	summary, err := h.service.Decrement(r.Context(), sessionID, chi.URLParam(r, "tier"))
	if err != nil {
		h.handleServiceError(w, err, "decrement")
		return
	}

	utils.ResponseSuccess(w, "success", summary)
}

// ApplyPromo handles POST /api/booking/promo
func (h *BookingHandler) ApplyPromo(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := utils.GetSessionIDFromContext(r.Context())
	if !ok {
		utils.ResponseInternalError(w, "Session unavailable")
		return
	}

	var req request.ApplyPromoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	result, err := h.service.ApplyPromo(r.Context(), sessionID, req.Code)
	if err != nil {
		h.handleServiceError(w, err, "apply promo")
		return
	}

	// A rejected code is informational, not a failed request.
	utils.ResponseSuccess(w, result.Promo.Message, result)
}

// SetName handles PUT /api/booking/name
func (h *BookingHandler) SetName(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := utils.GetSessionIDFromContext(r.Context())
	if !ok {
		utils.ResponseInternalError(w, "Session unavailable")
		return
	}

	var req request.SetNameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	summary, err := h.service.SetName(r.Context(), sessionID, req.Name)
	if err != nil {
		h.handleServiceError(w, err, "set name")
		return
	}

	utils.ResponseSuccess(w, "success", summary)
}

// Checkout handles POST /api/booking/checkout. The body is optional.
func (h *BookingHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := utils.GetSessionIDFromContext(r.Context())
	if !ok {
		utils.ResponseInternalError(w, "Session unavailable")
		return
	}

	var req request.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	receipt, err := h.service.Checkout(r.Context(), sessionID, &req)
	if err != nil {
		h.handleServiceError(w, err, "checkout")
		return
	}

	utils.ResponseCreated(w, "Your ticket has been generated!", receipt)
}

// DownloadReceipt handles GET /api/booking/receipt
func (h *BookingHandler) DownloadReceipt(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := utils.GetSessionIDFromContext(r.Context())
	if !ok {
		utils.ResponseInternalError(w, "Session unavailable")
		return
	}

	receipt, err := h.service.GetReceipt(r.Context(), sessionID)
	if err != nil {
		h.handleServiceError(w, err, "download receipt")
		return
	}

	utils.ResponseAttachment(w, receipt.Filename(), "text/plain; charset=utf-8", []byte(receipt.Text()))
}

// Reset handles POST /api/booking/reset
func (h *BookingHandler) Reset(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := utils.GetSessionIDFromContext(r.Context())
	if !ok {
		utils.ResponseInternalError(w, "Session unavailable")
		return
	}

	summary, err := h.service.Reset(r.Context(), sessionID)
	if err != nil {
		h.handleServiceError(w, err, "reset")
		return
	}

	utils.ResponseSuccess(w, "Ticket selections reset!", summary)
}

// handleServiceError maps booking sentinels to status codes
func (h *BookingHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errs.Is(err, errs.ErrNoTickets):
		utils.ResponseWarning(w, "Please select tickets before proceeding.", nil)

	case errs.Is(err, errs.ErrNameRequired):
		utils.ResponseWarning(w, "Please enter your name to proceed.", nil)

	case errs.Is(err, errs.ErrTierNotFound):
		h.log.Warn(operation+" failed - unknown tier",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, "Ticket tier not found")

	case errs.Is(err, errs.ErrInvalidQuantity):
		h.log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, "Invalid ticket quantity", nil)

	case errs.Is(err, errs.ErrReceiptNotFound):
		utils.ResponseNotFound(w, "No ticket has been generated yet")

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

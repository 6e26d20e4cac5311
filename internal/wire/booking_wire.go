package wire

import (
	"concert-booking/internal/adaptor"
	"concert-booking/pkg/middleware"
	"concert-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/booking", func(r chi.Router) {
		// Every booking route works on the visitor's session
		r.Use(middleware.Session(config.Session.CookieName, config.Session.TTL, log))

		// GET /api/booking - Current selection and totals
		r.Get("/", bookingHandler.GetSummary)

		// Ticket quantities per tier
		r.Put("/tickets/{tier}", bookingHandler.SetQuantity)
		r.Post("/tickets/{tier}/increment", bookingHandler.Increment)
		r.Post("/tickets/{tier}/decrement", bookingHandler.Decrement)

		// POST /api/booking/promo - Apply or clear a promo code
		r.Post("/promo", bookingHandler.ApplyPromo)

		// PUT /api/booking/name - Name printed on the ticket
		r.Put("/name", bookingHandler.SetName)

		// POST /api/booking/checkout - Generate the ticket
		r.Post("/checkout", bookingHandler.Checkout)

		// GET /api/booking/receipt - Download the last generated ticket
		r.Get("/receipt", bookingHandler.DownloadReceipt)

		// POST /api/booking/reset - Clear selections and promo
		r.Post("/reset", bookingHandler.Reset)
	})
}

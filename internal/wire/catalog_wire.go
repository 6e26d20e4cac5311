package wire

import (
	"concert-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCatalog(r chi.Router, catalogHandler *adaptor.CatalogHandler) {
	// GET /api/event - Concert details, countdown and ticket tiers (public)
	r.Get("/api/event", catalogHandler.GetEvent)
}

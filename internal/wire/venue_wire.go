package wire

import (
	"venue-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireVenue(r chi.Router, venueHandler *adaptor.VenueHandler) {
	r.Route("/venues", func(r chi.Router) {
		r.Get("/", venueHandler.GetVenues)
		r.Post("/search", venueHandler.SearchVenues)

		// static segment, matched before /{id}
		r.Get("/create", venueHandler.CreateVenueForm)
		r.Post("/create", venueHandler.CreateVenue)

		r.Get("/{id}", venueHandler.GetVenue)
		r.Get("/{id}/edit", venueHandler.EditVenueForm)
		r.Post("/{id}/edit", venueHandler.EditVenue)
		r.Get("/{id}/delete", venueHandler.DeleteVenue)
	})
}

package adaptor

import (
	"context"
	"errors"
	"net/http"

	"venue-booking/internal/dto/response"
	"venue-booking/internal/usecase"
	"venue-booking/internal/view"

	"go.uber.org/zap"
)

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	Home   *HomeHandler
	Venue  *VenueHandler
	Artist *ArtistHandler
	Show   *ShowHandler
	Health *HealthHandler
}

func NewHandler(service *usecase.Service, db Pinger, renderer *view.Renderer, log *zap.Logger) *Handler {
	return &Handler{
		Home:   NewHomeHandler(renderer, log),
		Venue:  NewVenueHandler(service.Venue, renderer, log),
		Artist: NewArtistHandler(service.Artist, renderer, log),
		Show:   NewShowHandler(service.Show, renderer, log),
		Health: NewHealthHandler(db, log),
	}
}

// searchPage is the data of the venue and artist search result pages.
type searchPage struct {
	Term    string
	Results *response.SearchResponse
}

// pageHandler holds what every HTML handler needs.
type pageHandler struct {
	view *view.Renderer
	log  *zap.Logger
}

// home renders the landing page carrying a single flash message.
func (h *pageHandler) home(w http.ResponseWriter, status int, category, message string) {
	page := (&view.Page{}).AddFlash(category, message)
	h.view.Render(w, status, view.PageHome, page)
}

// handleServiceError maps errors from read-only operations to an error page.
func (h *pageHandler) handleServiceError(w http.ResponseWriter, r *http.Request, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		h.view.NotFound(w, r)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		h.view.ServerError(w, r)
	}
}

// validationFields returns the field errors carried by err, if any.
func validationFields(err error) (map[string]string, bool) {
	var validationErr *usecase.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Fields, true
	}
	return nil, false
}

func emptySearch() *response.SearchResponse {
	return &response.SearchResponse{Data: []response.EntrySummary{}}
}

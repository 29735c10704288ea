package adaptor

import (
	"errors"
	"net/http"

	"venue-booking/internal/dto/request"
	"venue-booking/internal/usecase"
	"venue-booking/internal/view"
	"venue-booking/pkg/utils"

	"go.uber.org/zap"
)

const (
	showListedMsg = "Show was successfully listed!"
	showFailedMsg = "An error occurred. Show could not be listed."
)

type ShowHandler struct {
	pageHandler
	service usecase.ShowService
}

func NewShowHandler(service usecase.ShowService, renderer *view.Renderer, log *zap.Logger) *ShowHandler {
	return &ShowHandler{
		pageHandler: pageHandler{
			view: renderer,
			log:  log.With(zap.String("handler", "show")),
		},
		service: service,
	}
}

// GetShows handles GET /shows
func (h *ShowHandler) GetShows(w http.ResponseWriter, r *http.Request) {
	shows, err := h.service.GetShows(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err, "get shows")
		return
	}

	h.view.Render(w, http.StatusOK, view.PageShows, &view.Page{Data: shows})
}

// CreateShowForm handles GET /shows/create
func (h *ShowHandler) CreateShowForm(w http.ResponseWriter, r *http.Request) {
	h.view.Render(w, http.StatusOK, view.PageNewShow, &view.Page{Form: &request.ShowRequest{}})
}

// CreateShow handles POST /shows/create
func (h *ShowHandler) CreateShow(w http.ResponseWriter, r *http.Request) {
	var req request.ShowRequest
	if errs := utils.BindForm(r, &req); errs != nil {
		h.view.Render(w, http.StatusBadRequest, view.PageNewShow, &view.Page{Form: &req, Errors: errs})
		return
	}

	err := h.service.CreateShow(r.Context(), &req)
	if fields, ok := validationFields(err); ok {
		h.view.Render(w, http.StatusBadRequest, view.PageNewShow, &view.Page{Form: &req, Errors: fields})
		return
	}

	switch {
	case err == nil:
		h.home(w, http.StatusOK, view.FlashSuccess, showListedMsg)
	case errors.Is(err, usecase.ErrConflict):
		h.home(w, http.StatusConflict, view.FlashDanger, showFailedMsg)
	default:
		h.log.Error("Failed to create show",
			zap.Error(err),
			zap.Int64("artist_id", req.ArtistID),
			zap.Int64("venue_id", req.VenueID),
		)
		h.home(w, http.StatusInternalServerError, view.FlashDanger, showFailedMsg)
	}
}

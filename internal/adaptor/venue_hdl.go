package adaptor

import (
	"errors"
	"fmt"
	"net/http"

	"venue-booking/internal/dto/request"
	"venue-booking/internal/usecase"
	"venue-booking/internal/view"
	"venue-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type VenueHandler struct {
	pageHandler
	service usecase.VenueService
}

func NewVenueHandler(service usecase.VenueService, renderer *view.Renderer, log *zap.Logger) *VenueHandler {
	return &VenueHandler{
		pageHandler: pageHandler{
			view: renderer,
			log:  log.With(zap.String("handler", "venue")),
		},
		service: service,
	}
}

// GetVenues handles GET /venues
func (h *VenueHandler) GetVenues(w http.ResponseWriter, r *http.Request) {
	areas, err := h.service.GetVenueAreas(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err, "get venues")
		return
	}

	h.view.Render(w, http.StatusOK, view.PageVenues, &view.Page{Data: areas})
}

// SearchVenues handles POST /venues/search
func (h *VenueHandler) SearchVenues(w http.ResponseWriter, r *http.Request) {
	var req request.SearchRequest
	if errs := utils.BindForm(r, &req); errs != nil {
		h.view.Render(w, http.StatusBadRequest, view.PageSearchVenues, &view.Page{
			Errors: errs,
			Data:   searchPage{Term: req.SearchTerm, Results: emptySearch()},
		})
		return
	}

	results, err := h.service.SearchVenues(r.Context(), req.SearchTerm)
	if err != nil {
		h.handleServiceError(w, r, err, "search venues")
		return
	}

	h.view.Render(w, http.StatusOK, view.PageSearchVenues, &view.Page{
		Data: searchPage{Term: req.SearchTerm, Results: results},
	})
}

// GetVenue handles GET /venues/{id}
func (h *VenueHandler) GetVenue(w http.ResponseWriter, r *http.Request) {
	venueID, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		h.view.NotFound(w, r)
		return
	}

	venue, err := h.service.GetVenueByID(r.Context(), venueID)
	if err != nil {
		h.handleServiceError(w, r, err, "get venue")
		return
	}

	h.view.Render(w, http.StatusOK, view.PageShowVenue, &view.Page{Data: venue})
}

// CreateVenueForm handles GET /venues/create
func (h *VenueHandler) CreateVenueForm(w http.ResponseWriter, r *http.Request) {
	h.view.Render(w, http.StatusOK, view.PageNewVenue, &view.Page{Form: &request.VenueRequest{}})
}

// CreateVenue handles POST /venues/create
func (h *VenueHandler) CreateVenue(w http.ResponseWriter, r *http.Request) {
	var req request.VenueRequest
	if errs := utils.BindForm(r, &req); errs != nil {
		h.log.Debug("Venue form rejected", zap.Any("errors", errs))
		h.view.Render(w, http.StatusBadRequest, view.PageNewVenue, &view.Page{Form: &req, Errors: errs})
		return
	}

	venue, err := h.service.CreateVenue(r.Context(), &req)
	if err != nil {
		if fields, ok := validationFields(err); ok {
			h.view.Render(w, http.StatusBadRequest, view.PageNewVenue, &view.Page{Form: &req, Errors: fields})
			return
		}
		h.log.Error("Failed to create venue", zap.Error(err), zap.String("name", req.Name))
		h.home(w, http.StatusInternalServerError, view.FlashDanger,
			fmt.Sprintf("An error occurred. Venue %s could not be listed.", req.Name))
		return
	}

	h.home(w, http.StatusOK, view.FlashSuccess,
		fmt.Sprintf("Venue %s was successfully listed!", venue.Name))
}

// EditVenueForm handles GET /venues/{id}/edit
func (h *VenueHandler) EditVenueForm(w http.ResponseWriter, r *http.Request) {
	venueID, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		h.view.NotFound(w, r)
		return
	}

	form, err := h.service.GetVenueForEdit(r.Context(), venueID)
	if err != nil {
		h.handleServiceError(w, r, err, "get venue for edit")
		return
	}

	h.view.Render(w, http.StatusOK, view.PageEditVenue, &view.Page{Form: form, Data: venueID})
}

// EditVenue handles POST /venues/{id}/edit
func (h *VenueHandler) EditVenue(w http.ResponseWriter, r *http.Request) {
	venueID, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		h.view.NotFound(w, r)
		return
	}

	var req request.VenueRequest
	if errs := utils.BindForm(r, &req); errs != nil {
		h.view.Render(w, http.StatusBadRequest, view.PageEditVenue, &view.Page{Form: &req, Errors: errs, Data: venueID})
		return
	}

	err := h.service.UpdateVenue(r.Context(), venueID, &req)
	if err != nil {
		if fields, ok := validationFields(err); ok {
			h.view.Render(w, http.StatusBadRequest, view.PageEditVenue, &view.Page{Form: &req, Errors: fields, Data: venueID})
			return
		}
		if errors.Is(err, usecase.ErrNotFound) {
			h.view.NotFound(w, r)
			return
		}

		h.log.Error("Failed to update venue", zap.Error(err), zap.Int64("venue_id", venueID))
		page := &view.Page{Form: &req, Data: venueID}
		page.AddFlash(view.FlashDanger, fmt.Sprintf("An error occurred. Venue %s could not be updated.", req.Name))
		h.view.Render(w, http.StatusInternalServerError, view.PageEditVenue, page)
		return
	}

	utils.RedirectSeeOther(w, r, fmt.Sprintf("/venues/%d", venueID))
}

// DeleteVenue handles GET /venues/{id}/delete
func (h *VenueHandler) DeleteVenue(w http.ResponseWriter, r *http.Request) {
	venueID, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		h.view.NotFound(w, r)
		return
	}

	name, err := h.service.DeleteVenue(r.Context(), venueID)
	switch {
	case err == nil:
		h.home(w, http.StatusOK, view.FlashSuccess,
			fmt.Sprintf("Venue \"%s\" has been removed successfully.", name))
	case errors.Is(err, usecase.ErrNotFound):
		h.view.NotFound(w, r)
	case errors.Is(err, usecase.ErrConflict):
		h.home(w, http.StatusConflict, view.FlashDanger,
			"Cannot delete! This venue has one or more shows associated with it.")
	default:
		h.log.Error("Failed to delete venue", zap.Error(err), zap.Int64("venue_id", venueID))
		h.home(w, http.StatusInternalServerError, view.FlashDanger,
			fmt.Sprintf("An error occurred. Venue \"%s\" could not be removed.", name))
	}
}

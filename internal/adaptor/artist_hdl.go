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

type ArtistHandler struct {
	pageHandler
	service usecase.ArtistService
}

func NewArtistHandler(service usecase.ArtistService, renderer *view.Renderer, log *zap.Logger) *ArtistHandler {
	return &ArtistHandler{
		pageHandler: pageHandler{
			view: renderer,
			log:  log.With(zap.String("handler", "artist")),
		},
		service: service,
	}
}

// GetArtists handles GET /artists
func (h *ArtistHandler) GetArtists(w http.ResponseWriter, r *http.Request) {
	artists, err := h.service.GetArtists(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err, "get artists")
		return
	}

	h.view.Render(w, http.StatusOK, view.PageArtists, &view.Page{Data: artists})
}

// SearchArtists handles POST /artists/search
func (h *ArtistHandler) SearchArtists(w http.ResponseWriter, r *http.Request) {
	var req request.SearchRequest
	if errs := utils.BindForm(r, &req); errs != nil {
		h.view.Render(w, http.StatusBadRequest, view.PageSearchArtists, &view.Page{
			Errors: errs,
			Data:   searchPage{Term: req.SearchTerm, Results: emptySearch()},
		})
		return
	}

	results, err := h.service.SearchArtists(r.Context(), req.SearchTerm)
	if err != nil {
		h.handleServiceError(w, r, err, "search artists")
		return
	}

	h.view.Render(w, http.StatusOK, view.PageSearchArtists, &view.Page{
		Data: searchPage{Term: req.SearchTerm, Results: results},
	})
}

// GetArtist handles GET /artists/{id}
func (h *ArtistHandler) GetArtist(w http.ResponseWriter, r *http.Request) {
	artistID, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		h.view.NotFound(w, r)
		return
	}

	artist, err := h.service.GetArtistByID(r.Context(), artistID)
	if err != nil {
		h.handleServiceError(w, r, err, "get artist")
		return
	}

	h.view.Render(w, http.StatusOK, view.PageShowArtist, &view.Page{Data: artist})
}

// CreateArtistForm handles GET /artists/create
func (h *ArtistHandler) CreateArtistForm(w http.ResponseWriter, r *http.Request) {
	h.view.Render(w, http.StatusOK, view.PageNewArtist, &view.Page{Form: &request.ArtistRequest{}})
}

// CreateArtist handles POST /artists/create
func (h *ArtistHandler) CreateArtist(w http.ResponseWriter, r *http.Request) {
	var req request.ArtistRequest
	if errs := utils.BindForm(r, &req); errs != nil {
		h.log.Debug("Artist form rejected", zap.Any("errors", errs))
		h.view.Render(w, http.StatusBadRequest, view.PageNewArtist, &view.Page{Form: &req, Errors: errs})
		return
	}

	artist, err := h.service.CreateArtist(r.Context(), &req)
	if err != nil {
		if fields, ok := validationFields(err); ok {
			h.view.Render(w, http.StatusBadRequest, view.PageNewArtist, &view.Page{Form: &req, Errors: fields})
			return
		}
		h.log.Error("Failed to create artist", zap.Error(err), zap.String("name", req.Name))
		h.home(w, http.StatusInternalServerError, view.FlashDanger,
			fmt.Sprintf("An error occurred. Artist %s could not be listed.", req.Name))
		return
	}

	h.home(w, http.StatusOK, view.FlashSuccess,
		fmt.Sprintf("Artist %s was successfully listed!", artist.Name))
}

// EditArtistForm handles GET /artists/{id}/edit
func (h *ArtistHandler) EditArtistForm(w http.ResponseWriter, r *http.Request) {
	artistID, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		h.view.NotFound(w, r)
		return
	}

	form, err := h.service.GetArtistForEdit(r.Context(), artistID)
	if err != nil {
		h.handleServiceError(w, r, err, "get artist for edit")
		return
	}

	h.view.Render(w, http.StatusOK, view.PageEditArtist, &view.Page{Form: form, Data: artistID})
}

// EditArtist handles POST /artists/{id}/edit
func (h *ArtistHandler) EditArtist(w http.ResponseWriter, r *http.Request) {
	artistID, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		h.view.NotFound(w, r)
		return
	}

	var req request.ArtistRequest
	if errs := utils.BindForm(r, &req); errs != nil {
		h.view.Render(w, http.StatusBadRequest, view.PageEditArtist, &view.Page{Form: &req, Errors: errs, Data: artistID})
		return
	}

	err := h.service.UpdateArtist(r.Context(), artistID, &req)
	if err != nil {
		if fields, ok := validationFields(err); ok {
			h.view.Render(w, http.StatusBadRequest, view.PageEditArtist, &view.Page{Form: &req, Errors: fields, Data: artistID})
			return
		}
		if errors.Is(err, usecase.ErrNotFound) {
			h.view.NotFound(w, r)
			return
		}

		h.log.Error("Failed to update artist", zap.Error(err), zap.Int64("artist_id", artistID))
		page := &view.Page{Form: &req, Data: artistID}
		page.AddFlash(view.FlashDanger, fmt.Sprintf("An error occurred. Artist %s could not be updated.", req.Name))
		h.view.Render(w, http.StatusInternalServerError, view.PageEditArtist, page)
		return
	}

	utils.RedirectSeeOther(w, r, fmt.Sprintf("/artists/%d", artistID))
}

// DeleteArtist handles GET /artists/{id}/delete
func (h *ArtistHandler) DeleteArtist(w http.ResponseWriter, r *http.Request) {
	artistID, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		h.view.NotFound(w, r)
		return
	}

	name, err := h.service.DeleteArtist(r.Context(), artistID)
	switch {
	case err == nil:
		h.home(w, http.StatusOK, view.FlashSuccess,
			fmt.Sprintf("Artist \"%s\" has been removed successfully.", name))
	case errors.Is(err, usecase.ErrNotFound):
		h.view.NotFound(w, r)
	case errors.Is(err, usecase.ErrConflict):
		h.home(w, http.StatusConflict, view.FlashDanger,
			"Cannot delete! This artist has one or more shows associated with it.")
	default:
		h.log.Error("Failed to delete artist", zap.Error(err), zap.Int64("artist_id", artistID))
		h.home(w, http.StatusInternalServerError, view.FlashDanger,
			fmt.Sprintf("An error occurred. Artist \"%s\" could not be removed.", name))
	}
}

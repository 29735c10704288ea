package adaptor

import (
	"net/http"

	"venue-booking/internal/view"

	"go.uber.org/zap"
)

type HomeHandler struct {
	pageHandler
}

func NewHomeHandler(renderer *view.Renderer, log *zap.Logger) *HomeHandler {
	return &HomeHandler{
		pageHandler: pageHandler{
			view: renderer,
			log:  log.With(zap.String("handler", "home")),
		},
	}
}

// Index handles GET /
func (h *HomeHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.view.Render(w, http.StatusOK, view.PageHome, nil)
}

package adaptor

import (
	"context"
	"net/http"
	"time"

	"venue-booking/pkg/utils"

	"go.uber.org/zap"
)

const healthTimeout = 2 * time.Second

type HealthHandler struct {
	db  Pinger
	log *zap.Logger
}

func NewHealthHandler(db Pinger, log *zap.Logger) *HealthHandler {
	return &HealthHandler{
		db:  db,
		log: log.With(zap.String("handler", "health")),
	}
}

// Check handles GET /health
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.log.Error("Database ping failed", zap.Error(err))
		utils.ResponseUnavailable(w, "database unavailable")
		return
	}

	utils.ResponseSuccess(w, "OK", nil)
}

package wire

import (
	"venue-booking/internal/adaptor"
	"venue-booking/internal/data/repository"
	"venue-booking/internal/usecase"
	"venue-booking/internal/view"
	"venue-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the assembled application.
type App struct {
	Router *chi.Mux
}

// Wiring builds services and handlers on top of repo and mounts every route.
func Wiring(repo *repository.Repository, renderer *view.Renderer, logger *zap.Logger) *App {
	service := usecase.NewService(repo, logger)
	handler := adaptor.NewHandler(service, repo.DB, renderer, logger)

	return &App{
		Router: setupRouter(handler, renderer, logger),
	}
}

func setupRouter(handler *adaptor.Handler, renderer *view.Renderer, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger, renderer.ServerError))

	r.NotFound(renderer.NotFound)

	r.Get("/", handler.Home.Index)
	r.Get("/health", handler.Health.Check)

	wireVenue(r, handler.Venue)
	wireArtist(r, handler.Artist)
	wireShow(r, handler.Show)

	return r
}

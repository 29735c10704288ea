package usecase

import (
	"time"

	"venue-booking/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Venue  VenueService
	Artist ArtistService
	Show   ShowService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Venue:  NewVenueService(repo, log),
		Artist: NewArtistService(repo, log),
		Show:   NewShowService(repo, log),
	}
}

// clock is the source of "now" for past/upcoming decisions.
type clock func() time.Time

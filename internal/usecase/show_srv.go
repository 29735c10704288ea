package usecase

import (
	"context"
	"errors"
	"fmt"

	"venue-booking/internal/data/entity"
	"venue-booking/internal/data/repository"
	"venue-booking/internal/dto/request"
	"venue-booking/internal/dto/response"
	"venue-booking/pkg/utils"

	"go.uber.org/zap"
)

type ShowService interface {
	GetShows(ctx context.Context) ([]response.ShowResponse, error)
	CreateShow(ctx context.Context, req *request.ShowRequest) error
}

type showService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewShowService(repo *repository.Repository, log *zap.Logger) ShowService {
	return &showService{
		repo: repo,
		log:  log.With(zap.String("service", "show")),
	}
}

func (s *showService) GetShows(ctx context.Context) ([]response.ShowResponse, error) {
	shows, err := s.repo.Show.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get shows: %w", err)
	}

	data := make([]response.ShowResponse, len(shows))
	for i, show := range shows {
		data[i] = response.ListingToShowResponse(show)
	}

	return data, nil
}

// CreateShow stores a new show time and the show pointing at it in one unit
// of work. Unknown artist or venue ids are reported as field errors.
func (s *showService) CreateShow(ctx context.Context, req *request.ShowRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create show validation failed", zap.Any("errors", errs))
		return newValidationError(errs)
	}

	startTime, err := utils.ParseTimestamp(req.StartTime)
	if err != nil {
		return newValidationError(map[string]string{"start_time": err.Error()})
	}

	show := &entity.Show{
		ArtistID: req.ArtistID,
		VenueID:  req.VenueID,
	}

	err = s.repo.InTx(ctx, func(tx *repository.Repository) error {
		missing := make(map[string]string)

		artist, err := tx.Artist.FindByID(ctx, req.ArtistID)
		if err != nil {
			return err
		}
		if artist == nil {
			missing["artist_id"] = "No artist with this ID"
		}

		venue, err := tx.Venue.FindByID(ctx, req.VenueID)
		if err != nil {
			return err
		}
		if venue == nil {
			missing["venue_id"] = "No venue with this ID"
		}

		if len(missing) > 0 {
			return newValidationError(missing)
		}

		showTime := &entity.ShowTime{StartTime: startTime}
		if err := tx.ShowTime.Create(ctx, showTime); err != nil {
			return err
		}

		show.ShowTimeID = showTime.ID
		return tx.Show.Create(ctx, show)
	})

	var validationErr *ValidationError
	switch {
	case err == nil:
	case errors.As(err, &validationErr):
		s.log.Warn("Create show rejected", zap.Any("errors", validationErr.Fields))
		return err
	case errors.Is(err, repository.ErrConflict), errors.Is(err, repository.ErrDuplicate):
		s.log.Warn("Create show conflict", zap.Error(err))
		return fmt.Errorf("create show: %w", ErrConflict)
	default:
		s.log.Error("Failed to create show",
			zap.Error(err),
			zap.Int64("artist_id", req.ArtistID),
			zap.Int64("venue_id", req.VenueID),
		)
		return fmt.Errorf("create show: %w", err)
	}

	s.log.Info("Show created",
		zap.Int64("show_id", show.ID),
		zap.Int64("artist_id", show.ArtistID),
		zap.Int64("venue_id", show.VenueID),
		zap.Time("start_time", startTime),
	)

	return nil
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"venue-booking/internal/data/entity"
	"venue-booking/internal/data/repository"
	"venue-booking/internal/dto/request"
	"venue-booking/internal/dto/response"
	"venue-booking/pkg/utils"

	"go.uber.org/zap"
)

type VenueService interface {
	GetVenueAreas(ctx context.Context) ([]response.VenueArea, error)
	SearchVenues(ctx context.Context, term string) (*response.SearchResponse, error)
	GetVenueByID(ctx context.Context, venueID int64) (*response.VenueDetailResponse, error)
	GetVenueForEdit(ctx context.Context, venueID int64) (*request.VenueRequest, error)

	CreateVenue(ctx context.Context, req *request.VenueRequest) (*response.EntrySummary, error)
	UpdateVenue(ctx context.Context, venueID int64, req *request.VenueRequest) error
	DeleteVenue(ctx context.Context, venueID int64) (string, error)
}

type venueService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  clock
}

func NewVenueService(repo *repository.Repository, log *zap.Logger) VenueService {
	return &venueService{
		repo: repo,
		log:  log.With(zap.String("service", "venue")),
		now:  time.Now,
	}
}

func (s *venueService) GetVenueAreas(ctx context.Context) ([]response.VenueArea, error) {
	venues, err := s.repo.Venue.FindSummaries(ctx, s.now())
	if err != nil {
		return nil, fmt.Errorf("get venue areas: %w", err)
	}

	// rows arrive ordered by state, city so each area is one contiguous run
	areas := []response.VenueArea{}
	for _, venue := range venues {
		last := len(areas) - 1
		if last < 0 || areas[last].City != venue.City || areas[last].State != venue.State {
			areas = append(areas, response.VenueArea{City: venue.City, State: venue.State})
			last++
		}
		areas[last].Venues = append(areas[last].Venues, response.VenueSummaryToEntry(venue))
	}

	s.log.Debug("Venue areas retrieved",
		zap.Int("venue_count", len(venues)),
		zap.Int("area_count", len(areas)),
	)

	return areas, nil
}

func (s *venueService) SearchVenues(ctx context.Context, term string) (*response.SearchResponse, error) {
	if !utils.SearchableText(term) {
		s.log.Debug("Unsearchable term, no venues match", zap.String("term", strconv.QuoteToASCII(term)))
		return &response.SearchResponse{Count: 0, Data: []response.EntrySummary{}}, nil
	}

	venues, err := s.repo.Venue.Search(ctx, term, s.now())
	if err != nil {
		return nil, fmt.Errorf("search venues: %w", err)
	}

	data := make([]response.EntrySummary, len(venues))
	for i, venue := range venues {
		data[i] = response.VenueSummaryToEntry(venue)
	}

	s.log.Debug("Venues searched",
		zap.String("term", term),
		zap.Int("count", len(data)),
	)

	return &response.SearchResponse{Count: len(data), Data: data}, nil
}

func (s *venueService) GetVenueByID(ctx context.Context, venueID int64) (*response.VenueDetailResponse, error) {
	now := s.now()

	venue, err := s.repo.Venue.FindByID(ctx, venueID)
	if err != nil {
		return nil, fmt.Errorf("get venue %d: %w", venueID, err)
	}
	if venue == nil {
		return nil, fmt.Errorf("venue %d: %w", venueID, ErrNotFound)
	}

	shows, err := s.repo.Show.FindByVenueID(ctx, venueID)
	if err != nil {
		return nil, fmt.Errorf("get shows for venue %d: %w", venueID, err)
	}

	detail := response.VenueToDetailResponse(venue)
	detail.PastShows, detail.UpcomingShows = splitShows(shows, now, response.ListingToVenueShow)
	detail.PastShowsCount = len(detail.PastShows)
	detail.UpcomingShowsCount = len(detail.UpcomingShows)

	return detail, nil
}

func (s *venueService) GetVenueForEdit(ctx context.Context, venueID int64) (*request.VenueRequest, error) {
	venue, err := s.repo.Venue.FindByID(ctx, venueID)
	if err != nil {
		return nil, fmt.Errorf("get venue %d: %w", venueID, err)
	}
	if venue == nil {
		return nil, fmt.Errorf("venue %d: %w", venueID, ErrNotFound)
	}

	return request.VenueRequestFromEntity(venue), nil
}

func (s *venueService) CreateVenue(ctx context.Context, req *request.VenueRequest) (*response.EntrySummary, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create venue validation failed", zap.Any("errors", errs))
		return nil, newValidationError(errs)
	}

	venue := &entity.Venue{}
	req.ApplyTo(venue)

	err := s.repo.InTx(ctx, func(tx *repository.Repository) error {
		return tx.Venue.Create(ctx, venue)
	})
	if err != nil {
		s.log.Error("Failed to create venue",
			zap.Error(err),
			zap.String("name", req.Name),
		)
		return nil, fmt.Errorf("create venue: %w", err)
	}

	s.log.Info("Venue created",
		zap.Int64("venue_id", venue.ID),
		zap.String("name", venue.Name),
		zap.String("city", venue.City),
	)

	return &response.EntrySummary{ID: venue.ID, Name: venue.Name}, nil
}

func (s *venueService) UpdateVenue(ctx context.Context, venueID int64, req *request.VenueRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update venue validation failed", zap.Any("errors", errs))
		return newValidationError(errs)
	}

	err := s.repo.InTx(ctx, func(tx *repository.Repository) error {
		venue, err := tx.Venue.FindByID(ctx, venueID)
		if err != nil {
			return err
		}
		if venue == nil {
			return fmt.Errorf("venue %d: %w", venueID, ErrNotFound)
		}

		req.ApplyTo(venue)
		return tx.Venue.Update(ctx, venue)
	})
	if errors.Is(err, ErrNotFound) || errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("update venue %d: %w", venueID, ErrNotFound)
	}
	if err != nil {
		s.log.Error("Failed to update venue",
			zap.Error(err),
			zap.Int64("venue_id", venueID),
		)
		return fmt.Errorf("update venue %d: %w", venueID, err)
	}

	s.log.Info("Venue updated",
		zap.Int64("venue_id", venueID),
		zap.String("name", req.Name),
	)

	return nil
}

func (s *venueService) DeleteVenue(ctx context.Context, venueID int64) (string, error) {
	var name string

	err := s.repo.InTx(ctx, func(tx *repository.Repository) error {
		venue, err := tx.Venue.FindByID(ctx, venueID)
		if err != nil {
			return err
		}
		if venue == nil {
			return fmt.Errorf("venue %d: %w", venueID, ErrNotFound)
		}
		name = venue.Name

		return tx.Venue.Delete(ctx, venueID)
	})

	switch {
	case err == nil:
	case errors.Is(err, ErrNotFound), errors.Is(err, repository.ErrNotFound):
		return "", fmt.Errorf("delete venue %d: %w", venueID, ErrNotFound)
	case errors.Is(err, repository.ErrConflict):
		s.log.Warn("Venue has shows, not deleted", zap.Int64("venue_id", venueID))
		return name, fmt.Errorf("delete venue %d: %w", venueID, ErrConflict)
	default:
		s.log.Error("Failed to delete venue",
			zap.Error(err),
			zap.Int64("venue_id", venueID),
		)
		return name, fmt.Errorf("delete venue %d: %w", venueID, err)
	}

	s.log.Info("Venue deleted",
		zap.Int64("venue_id", venueID),
		zap.String("name", name),
	)

	return name, nil
}

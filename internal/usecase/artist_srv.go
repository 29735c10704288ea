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

type ArtistService interface {
	GetArtists(ctx context.Context) ([]response.ArtistResponse, error)
	SearchArtists(ctx context.Context, term string) (*response.SearchResponse, error)
	GetArtistByID(ctx context.Context, artistID int64) (*response.ArtistDetailResponse, error)
	GetArtistForEdit(ctx context.Context, artistID int64) (*request.ArtistRequest, error)

	CreateArtist(ctx context.Context, req *request.ArtistRequest) (*response.EntrySummary, error)
	UpdateArtist(ctx context.Context, artistID int64, req *request.ArtistRequest) error
	DeleteArtist(ctx context.Context, artistID int64) (string, error)
}

type artistService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  clock
}

func NewArtistService(repo *repository.Repository, log *zap.Logger) ArtistService {
	return &artistService{
		repo: repo,
		log:  log.With(zap.String("service", "artist")),
		now:  time.Now,
	}
}

func (s *artistService) GetArtists(ctx context.Context) ([]response.ArtistResponse, error) {
	artists, err := s.repo.Artist.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get artists: %w", err)
	}

	data := make([]response.ArtistResponse, len(artists))
	for i, artist := range artists {
		data[i] = response.ArtistSummaryToResponse(artist)
	}

	return data, nil
}

func (s *artistService) SearchArtists(ctx context.Context, term string) (*response.SearchResponse, error) {
	if !utils.SearchableText(term) {
		s.log.Debug("Unsearchable term, no artists match", zap.String("term", strconv.QuoteToASCII(term)))
		return &response.SearchResponse{Count: 0, Data: []response.EntrySummary{}}, nil
	}

	artists, err := s.repo.Artist.Search(ctx, term, s.now())
	if err != nil {
		return nil, fmt.Errorf("search artists: %w", err)
	}

	data := make([]response.EntrySummary, len(artists))
	for i, artist := range artists {
		data[i] = response.ArtistSummaryToEntry(artist)
	}

	s.log.Debug("Artists searched",
		zap.String("term", term),
		zap.Int("count", len(data)),
	)

	return &response.SearchResponse{Count: len(data), Data: data}, nil
}

func (s *artistService) GetArtistByID(ctx context.Context, artistID int64) (*response.ArtistDetailResponse, error) {
	now := s.now()

	artist, err := s.repo.Artist.FindByID(ctx, artistID)
	if err != nil {
		return nil, fmt.Errorf("get artist %d: %w", artistID, err)
	}
	if artist == nil {
		return nil, fmt.Errorf("artist %d: %w", artistID, ErrNotFound)
	}

	shows, err := s.repo.Show.FindByArtistID(ctx, artistID)
	if err != nil {
		return nil, fmt.Errorf("get shows for artist %d: %w", artistID, err)
	}

	detail := response.ArtistToDetailResponse(artist)
	detail.PastShows, detail.UpcomingShows = splitShows(shows, now, response.ListingToArtistShow)
	detail.PastShowsCount = len(detail.PastShows)
	detail.UpcomingShowsCount = len(detail.UpcomingShows)

	return detail, nil
}

func (s *artistService) GetArtistForEdit(ctx context.Context, artistID int64) (*request.ArtistRequest, error) {
	artist, err := s.repo.Artist.FindByID(ctx, artistID)
	if err != nil {
		return nil, fmt.Errorf("get artist %d: %w", artistID, err)
	}
	if artist == nil {
		return nil, fmt.Errorf("artist %d: %w", artistID, ErrNotFound)
	}

	return request.ArtistRequestFromEntity(artist), nil
}

func (s *artistService) CreateArtist(ctx context.Context, req *request.ArtistRequest) (*response.EntrySummary, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create artist validation failed", zap.Any("errors", errs))
		return nil, newValidationError(errs)
	}

	artist := &entity.Artist{}
	req.ApplyTo(artist)

	err := s.repo.InTx(ctx, func(tx *repository.Repository) error {
		return tx.Artist.Create(ctx, artist)
	})
	if err != nil {
		s.log.Error("Failed to create artist",
			zap.Error(err),
			zap.String("name", req.Name),
		)
		return nil, fmt.Errorf("create artist: %w", err)
	}

	s.log.Info("Artist created",
		zap.Int64("artist_id", artist.ID),
		zap.String("name", artist.Name),
	)

	return &response.EntrySummary{ID: artist.ID, Name: artist.Name}, nil
}

func (s *artistService) UpdateArtist(ctx context.Context, artistID int64, req *request.ArtistRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update artist validation failed", zap.Any("errors", errs))
		return newValidationError(errs)
	}

	err := s.repo.InTx(ctx, func(tx *repository.Repository) error {
		artist, err := tx.Artist.FindByID(ctx, artistID)
		if err != nil {
			return err
		}
		if artist == nil {
			return fmt.Errorf("artist %d: %w", artistID, ErrNotFound)
		}

		req.ApplyTo(artist)
		return tx.Artist.Update(ctx, artist)
	})
	if errors.Is(err, ErrNotFound) || errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("update artist %d: %w", artistID, ErrNotFound)
	}
	if err != nil {
		s.log.Error("Failed to update artist",
			zap.Error(err),
			zap.Int64("artist_id", artistID),
		)
		return fmt.Errorf("update artist %d: %w", artistID, err)
	}

	s.log.Info("Artist updated",
		zap.Int64("artist_id", artistID),
		zap.String("name", req.Name),
	)

	return nil
}

func (s *artistService) DeleteArtist(ctx context.Context, artistID int64) (string, error) {
	var name string

	err := s.repo.InTx(ctx, func(tx *repository.Repository) error {
		artist, err := tx.Artist.FindByID(ctx, artistID)
		if err != nil {
			return err
		}
		if artist == nil {
			return fmt.Errorf("artist %d: %w", artistID, ErrNotFound)
		}
		name = artist.Name

		return tx.Artist.Delete(ctx, artistID)
	})

	switch {
	case err == nil:
	case errors.Is(err, ErrNotFound), errors.Is(err, repository.ErrNotFound):
		return "", fmt.Errorf("delete artist %d: %w", artistID, ErrNotFound)
	case errors.Is(err, repository.ErrConflict):
		s.log.Warn("Artist has shows, not deleted", zap.Int64("artist_id", artistID))
		return name, fmt.Errorf("delete artist %d: %w", artistID, ErrConflict)
	default:
		s.log.Error("Failed to delete artist",
			zap.Error(err),
			zap.Int64("artist_id", artistID),
		)
		return name, fmt.Errorf("delete artist %d: %w", artistID, err)
	}

	s.log.Info("Artist deleted",
		zap.Int64("artist_id", artistID),
		zap.String("name", name),
	)

	return name, nil
}

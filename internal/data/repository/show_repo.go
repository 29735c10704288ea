package repository

import (
	"context"
	"fmt"

	"venue-booking/internal/data/entity"
	"venue-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ShowRepository interface {
	Create(ctx context.Context, show *entity.Show) error
	FindAll(ctx context.Context) ([]*entity.ShowListing, error)
	FindByVenueID(ctx context.Context, venueID int64) ([]*entity.ShowListing, error)
	FindByArtistID(ctx context.Context, artistID int64) ([]*entity.ShowListing, error)

	WithTx(tx database.DBTX) ShowRepository
}

type showRepository struct {
	db  database.DBTX
	log *zap.Logger
}

func NewShowRepository(db database.DBTX, log *zap.Logger) ShowRepository {
	return &showRepository{
		db:  db,
		log: log.With(zap.String("repository", "show")),
	}
}

func (r *showRepository) WithTx(tx database.DBTX) ShowRepository {
	return &showRepository{db: tx, log: r.log}
}

func (r *showRepository) Create(ctx context.Context, show *entity.Show) error {
	query := `
		INSERT INTO shows (artist_id, venue_id, show_time_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		show.ArtistID,
		show.VenueID,
		show.ShowTimeID,
	).Scan(&show.ID, &show.CreatedAt)

	if err != nil {
		r.log.Error("Failed to create show",
			zap.Error(err),
			zap.Int64("artist_id", show.ArtistID),
			zap.Int64("venue_id", show.VenueID),
			zap.Int64("show_time_id", show.ShowTimeID),
		)
		return fmt.Errorf("create show: %w", translateError(err))
	}

	return nil
}

const showListingSelect = `
	SELECT s.id, v.id, v.name, v.image_link, a.id, a.name, a.image_link, st.start_time
	FROM shows s
	JOIN venues v ON v.id = s.venue_id
	JOIN artists a ON a.id = s.artist_id
	JOIN show_times st ON st.id = s.show_time_id
`

const showListingOrder = ` ORDER BY st.start_time, s.id`

func (r *showRepository) FindAll(ctx context.Context) ([]*entity.ShowListing, error) {
	rows, err := r.db.Query(ctx, showListingSelect+showListingOrder)
	if err != nil {
		r.log.Error("Failed to find all shows", zap.Error(err))
		return nil, fmt.Errorf("find all shows: %w", err)
	}

	return r.scanListings(rows)
}

func (r *showRepository) FindByVenueID(ctx context.Context, venueID int64) ([]*entity.ShowListing, error) {
	query := showListingSelect + ` WHERE s.venue_id = $1` + showListingOrder

	rows, err := r.db.Query(ctx, query, venueID)
	if err != nil {
		r.log.Error("Failed to find shows by venue",
			zap.Error(err),
			zap.Int64("venue_id", venueID),
		)
		return nil, fmt.Errorf("find shows by venue %d: %w", venueID, err)
	}

	return r.scanListings(rows)
}

func (r *showRepository) FindByArtistID(ctx context.Context, artistID int64) ([]*entity.ShowListing, error) {
	query := showListingSelect + ` WHERE s.artist_id = $1` + showListingOrder

	rows, err := r.db.Query(ctx, query, artistID)
	if err != nil {
		r.log.Error("Failed to find shows by artist",
			zap.Error(err),
			zap.Int64("artist_id", artistID),
		)
		return nil, fmt.Errorf("find shows by artist %d: %w", artistID, err)
	}

	return r.scanListings(rows)
}

func (r *showRepository) scanListings(rows pgx.Rows) ([]*entity.ShowListing, error) {
	defer rows.Close()

	shows := []*entity.ShowListing{}
	for rows.Next() {
		var show entity.ShowListing
		err := rows.Scan(
			&show.ID,
			&show.VenueID,
			&show.VenueName,
			&show.VenueImageLink,
			&show.ArtistID,
			&show.ArtistName,
			&show.ArtistImageLink,
			&show.StartTime,
		)
		if err != nil {
			r.log.Error("Failed to scan show row", zap.Error(err))
			return nil, fmt.Errorf("scan show row: %w", err)
		}
		shows = append(shows, &show)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate show rows: %w", err)
	}

	return shows, nil
}

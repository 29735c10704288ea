package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"venue-booking/internal/data/entity"
	"venue-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type VenueRepository interface {
	Create(ctx context.Context, venue *entity.Venue) error
	FindByID(ctx context.Context, id int64) (*entity.Venue, error)
	FindSummaries(ctx context.Context, now time.Time) ([]*entity.VenueSummary, error)
	Search(ctx context.Context, term string, now time.Time) ([]*entity.VenueSummary, error)
	Update(ctx context.Context, venue *entity.Venue) error
	Delete(ctx context.Context, id int64) error

	WithTx(tx database.DBTX) VenueRepository
}

type venueRepository struct {
	db  database.DBTX
	log *zap.Logger
}

func NewVenueRepository(db database.DBTX, log *zap.Logger) VenueRepository {
	return &venueRepository{
		db:  db,
		log: log.With(zap.String("repository", "venue")),
	}
}

func (r *venueRepository) WithTx(tx database.DBTX) VenueRepository {
	return &venueRepository{db: tx, log: r.log}
}

func (r *venueRepository) Create(ctx context.Context, venue *entity.Venue) error {
	query := `
		INSERT INTO venues (name, city, state, address, phone, image_link, facebook_link,
			website, genres, seeking_talent, seeking_description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		venue.Name,
		venue.City,
		venue.State,
		venue.Address,
		venue.Phone,
		venue.ImageLink,
		venue.FacebookLink,
		venue.Website,
		venue.Genres,
		venue.SeekingTalent,
		venue.SeekingDescription,
	).Scan(&venue.ID, &venue.CreatedAt, &venue.UpdatedAt)

	if err != nil {
		r.log.Error("Failed to create venue",
			zap.Error(err),
			zap.String("name", venue.Name),
			zap.String("city", venue.City),
		)
		return fmt.Errorf("create venue %s: %w", venue.Name, translateError(err))
	}

	return nil
}

func (r *venueRepository) FindByID(ctx context.Context, id int64) (*entity.Venue, error) {
	query := `
		SELECT id, name, city, state, address, phone, image_link, facebook_link,
			website, genres, seeking_talent, seeking_description, created_at, updated_at
		FROM venues
		WHERE id = $1
	`

	var venue entity.Venue
	err := r.db.QueryRow(ctx, query, id).Scan(
		&venue.ID,
		&venue.Name,
		&venue.City,
		&venue.State,
		&venue.Address,
		&venue.Phone,
		&venue.ImageLink,
		&venue.FacebookLink,
		&venue.Website,
		&venue.Genres,
		&venue.SeekingTalent,
		&venue.SeekingDescription,
		&venue.CreatedAt,
		&venue.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find venue by ID",
			zap.Error(err),
			zap.Int64("venue_id", id),
		)
		return nil, fmt.Errorf("find venue by ID %d: %w", id, err)
	}

	return &venue, nil
}

// venueSummarySelect counts each venue's shows starting after $1.
const venueSummarySelect = `
	SELECT v.id, v.name, v.city, v.state,
		COUNT(st.id) FILTER (WHERE st.start_time > $1) AS num_upcoming_shows
	FROM venues v
	LEFT JOIN shows s ON s.venue_id = v.id
	LEFT JOIN show_times st ON st.id = s.show_time_id
`

func (r *venueRepository) FindSummaries(ctx context.Context, now time.Time) ([]*entity.VenueSummary, error) {
	query := venueSummarySelect + `
		GROUP BY v.id
		ORDER BY v.state, v.city, v.name, v.id
	`

	rows, err := r.db.Query(ctx, query, now)
	if err != nil {
		r.log.Error("Failed to find venue summaries", zap.Error(err))
		return nil, fmt.Errorf("find venue summaries: %w", err)
	}

	return r.scanSummaries(rows)
}

func (r *venueRepository) Search(ctx context.Context, term string, now time.Time) ([]*entity.VenueSummary, error) {
	query := venueSummarySelect + `
		WHERE v.name ILIKE $2
		GROUP BY v.id
		ORDER BY v.name, v.id
	`

	rows, err := r.db.Query(ctx, query, now, containsPattern(term))
	if err != nil {
		r.log.Error("Failed to search venues",
			zap.Error(err),
			zap.String("term", term),
		)
		return nil, fmt.Errorf("search venues %q: %w", term, err)
	}

	return r.scanSummaries(rows)
}

func (r *venueRepository) scanSummaries(rows pgx.Rows) ([]*entity.VenueSummary, error) {
	defer rows.Close()

	venues := []*entity.VenueSummary{}
	for rows.Next() {
		var venue entity.VenueSummary
		err := rows.Scan(
			&venue.ID,
			&venue.Name,
			&venue.City,
			&venue.State,
			&venue.NumUpcomingShows,
		)
		if err != nil {
			r.log.Error("Failed to scan venue row", zap.Error(err))
			return nil, fmt.Errorf("scan venue row: %w", err)
		}
		venues = append(venues, &venue)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate venue rows: %w", err)
	}

	return venues, nil
}

func (r *venueRepository) Update(ctx context.Context, venue *entity.Venue) error {
	query := `
		UPDATE venues
		SET name = $2, city = $3, state = $4, address = $5, phone = $6, image_link = $7,
			facebook_link = $8, website = $9, genres = $10, seeking_talent = $11,
			seeking_description = $12, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		venue.ID,
		venue.Name,
		venue.City,
		venue.State,
		venue.Address,
		venue.Phone,
		venue.ImageLink,
		venue.FacebookLink,
		venue.Website,
		venue.Genres,
		venue.SeekingTalent,
		venue.SeekingDescription,
	)

	if err != nil {
		r.log.Error("Failed to update venue",
			zap.Error(err),
			zap.Int64("venue_id", venue.ID),
		)
		return fmt.Errorf("update venue %d: %w", venue.ID, translateError(err))
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update venue %d: %w", venue.ID, ErrNotFound)
	}

	return nil
}

func (r *venueRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM venues WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		err = translateError(err)
		if errors.Is(err, ErrConflict) {
			r.log.Warn("Venue still referenced by shows", zap.Int64("venue_id", id))
		} else {
			r.log.Error("Failed to delete venue",
				zap.Error(err),
				zap.Int64("venue_id", id),
			)
		}
		return fmt.Errorf("delete venue %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete venue %d: %w", id, ErrNotFound)
	}

	r.log.Info("Venue deleted", zap.Int64("venue_id", id))
	return nil
}

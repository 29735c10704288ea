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

type ArtistRepository interface {
	Create(ctx context.Context, artist *entity.Artist) error
	FindByID(ctx context.Context, id int64) (*entity.Artist, error)
	FindAll(ctx context.Context) ([]*entity.ArtistSummary, error)
	Search(ctx context.Context, term string, now time.Time) ([]*entity.ArtistSummary, error)
	Update(ctx context.Context, artist *entity.Artist) error
	Delete(ctx context.Context, id int64) error

	WithTx(tx database.DBTX) ArtistRepository
}

type artistRepository struct {
	db  database.DBTX
	log *zap.Logger
}

func NewArtistRepository(db database.DBTX, log *zap.Logger) ArtistRepository {
	return &artistRepository{
		db:  db,
		log: log.With(zap.String("repository", "artist")),
	}
}

func (r *artistRepository) WithTx(tx database.DBTX) ArtistRepository {
	return &artistRepository{db: tx, log: r.log}
}

func (r *artistRepository) Create(ctx context.Context, artist *entity.Artist) error {
	query := `
		INSERT INTO artists (name, city, state, phone, website, genres, image_link,
			facebook_link, seeking_venue, seeking_description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		artist.Name,
		artist.City,
		artist.State,
		artist.Phone,
		artist.Website,
		artist.Genres,
		artist.ImageLink,
		artist.FacebookLink,
		artist.SeekingVenue,
		artist.SeekingDescription,
	).Scan(&artist.ID, &artist.CreatedAt, &artist.UpdatedAt)

	if err != nil {
		r.log.Error("Failed to create artist",
			zap.Error(err),
			zap.String("name", artist.Name),
		)
		return fmt.Errorf("create artist %s: %w", artist.Name, translateError(err))
	}

	return nil
}

func (r *artistRepository) FindByID(ctx context.Context, id int64) (*entity.Artist, error) {
	query := `
		SELECT id, name, city, state, phone, website, genres, image_link, facebook_link,
			seeking_venue, seeking_description, created_at, updated_at
		FROM artists
		WHERE id = $1
	`

	var artist entity.Artist
	err := r.db.QueryRow(ctx, query, id).Scan(
		&artist.ID,
		&artist.Name,
		&artist.City,
		&artist.State,
		&artist.Phone,
		&artist.Website,
		&artist.Genres,
		&artist.ImageLink,
		&artist.FacebookLink,
		&artist.SeekingVenue,
		&artist.SeekingDescription,
		&artist.CreatedAt,
		&artist.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find artist by ID",
			zap.Error(err),
			zap.Int64("artist_id", id),
		)
		return nil, fmt.Errorf("find artist by ID %d: %w", id, err)
	}

	return &artist, nil
}

func (r *artistRepository) FindAll(ctx context.Context) ([]*entity.ArtistSummary, error) {
	query := `SELECT id, name FROM artists ORDER BY name, id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all artists", zap.Error(err))
		return nil, fmt.Errorf("find all artists: %w", err)
	}
	defer rows.Close()

	artists := []*entity.ArtistSummary{}
	for rows.Next() {
		var artist entity.ArtistSummary
		if err := rows.Scan(&artist.ID, &artist.Name); err != nil {
			r.log.Error("Failed to scan artist row", zap.Error(err))
			return nil, fmt.Errorf("scan artist row: %w", err)
		}
		artists = append(artists, &artist)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate artist rows: %w", err)
	}

	return artists, nil
}

func (r *artistRepository) Search(ctx context.Context, term string, now time.Time) ([]*entity.ArtistSummary, error) {
	query := `
		SELECT a.id, a.name,
			COUNT(st.id) FILTER (WHERE st.start_time > $1) AS num_upcoming_shows
		FROM artists a
		LEFT JOIN shows s ON s.artist_id = a.id
		LEFT JOIN show_times st ON st.id = s.show_time_id
		WHERE a.name ILIKE $2
		GROUP BY a.id
		ORDER BY a.name, a.id
	`

	rows, err := r.db.Query(ctx, query, now, containsPattern(term))
	if err != nil {
		r.log.Error("Failed to search artists",
			zap.Error(err),
			zap.String("term", term),
		)
		return nil, fmt.Errorf("search artists %q: %w", term, err)
	}
	defer rows.Close()

	artists := []*entity.ArtistSummary{}
	for rows.Next() {
		var artist entity.ArtistSummary
		if err := rows.Scan(&artist.ID, &artist.Name, &artist.NumUpcomingShows); err != nil {
			r.log.Error("Failed to scan artist row", zap.Error(err))
			return nil, fmt.Errorf("scan artist row: %w", err)
		}
		artists = append(artists, &artist)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate artist rows: %w", err)
	}

	return artists, nil
}

func (r *artistRepository) Update(ctx context.Context, artist *entity.Artist) error {
	query := `
		UPDATE artists
		SET name = $2, city = $3, state = $4, phone = $5, website = $6, genres = $7,
			image_link = $8, facebook_link = $9, seeking_venue = $10,
			seeking_description = $11, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		artist.ID,
		artist.Name,
		artist.City,
		artist.State,
		artist.Phone,
		artist.Website,
		artist.Genres,
		artist.ImageLink,
		artist.FacebookLink,
		artist.SeekingVenue,
		artist.SeekingDescription,
	)

	if err != nil {
		r.log.Error("Failed to update artist",
			zap.Error(err),
			zap.Int64("artist_id", artist.ID),
		)
		return fmt.Errorf("update artist %d: %w", artist.ID, translateError(err))
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update artist %d: %w", artist.ID, ErrNotFound)
	}

	return nil
}

func (r *artistRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM artists WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		err = translateError(err)
		if errors.Is(err, ErrConflict) {
			r.log.Warn("Artist still referenced by shows", zap.Int64("artist_id", id))
		} else {
			r.log.Error("Failed to delete artist",
				zap.Error(err),
				zap.Int64("artist_id", id),
			)
		}
		return fmt.Errorf("delete artist %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete artist %d: %w", id, ErrNotFound)
	}

	r.log.Info("Artist deleted", zap.Int64("artist_id", id))
	return nil
}

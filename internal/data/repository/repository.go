package repository

import (
	"context"

	"venue-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	DB       database.PgxIface
	Venue    VenueRepository
	Artist   ArtistRepository
	ShowTime ShowTimeRepository
	Show     ShowRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		DB:       db,
		Venue:    NewVenueRepository(db, log),
		Artist:   NewArtistRepository(db, log),
		ShowTime: NewShowTimeRepository(db, log),
		Show:     NewShowRepository(db, log),
	}
}

// InTx runs fn with every repository bound to one transaction. Returning an
// error from fn rolls the whole unit of work back.
func (r *Repository) InTx(ctx context.Context, fn func(tx *Repository) error) error {
	return database.WithTx(ctx, r.DB, func(tx pgx.Tx) error {
		return fn(&Repository{
			DB:       r.DB,
			Venue:    r.Venue.WithTx(tx),
			Artist:   r.Artist.WithTx(tx),
			ShowTime: r.ShowTime.WithTx(tx),
			Show:     r.Show.WithTx(tx),
		})
	})
}

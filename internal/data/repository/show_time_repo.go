package repository

import (
	"context"
	"fmt"

	"venue-booking/internal/data/entity"
	"venue-booking/pkg/database"

	"go.uber.org/zap"
)

type ShowTimeRepository interface {
	Create(ctx context.Context, showTime *entity.ShowTime) error

	WithTx(tx database.DBTX) ShowTimeRepository
}

type showTimeRepository struct {
	db  database.DBTX
	log *zap.Logger
}

func NewShowTimeRepository(db database.DBTX, log *zap.Logger) ShowTimeRepository {
	return &showTimeRepository{
		db:  db,
		log: log.With(zap.String("repository", "show_time")),
	}
}

func (r *showTimeRepository) WithTx(tx database.DBTX) ShowTimeRepository {
	return &showTimeRepository{db: tx, log: r.log}
}

func (r *showTimeRepository) Create(ctx context.Context, showTime *entity.ShowTime) error {
	query := `INSERT INTO show_times (start_time) VALUES ($1) RETURNING id`

	if err := r.db.QueryRow(ctx, query, showTime.StartTime).Scan(&showTime.ID); err != nil {
		r.log.Error("Failed to create show time",
			zap.Error(err),
			zap.Time("start_time", showTime.StartTime),
		)
		return fmt.Errorf("create show time: %w", translateError(err))
	}

	return nil
}

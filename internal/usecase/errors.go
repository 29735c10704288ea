package usecase

import (
	"errors"
	"time"

	"venue-booking/internal/data/entity"
	"venue-booking/pkg/utils"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

// ValidationError carries every field error of a rejected submission.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + utils.FormatValidationErrors(e.Fields)
}

func newValidationError(fields map[string]string) error {
	return &ValidationError{Fields: fields}
}

// splitShows partitions shows into past (start <= now) and upcoming
// (start > now), keeping their order.
func splitShows[T any](shows []*entity.ShowListing, now time.Time, convert func(*entity.ShowListing) T) (past, upcoming []T) {
	past = []T{}
	upcoming = []T{}
	for _, show := range shows {
		if show.StartTime.After(now) {
			upcoming = append(upcoming, convert(show))
		} else {
			past = append(past, convert(show))
		}
	}
	return past, upcoming
}

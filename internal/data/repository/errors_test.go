package repository

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestTranslateError(t *testing.T) {
	t.Run("foreign key violation becomes conflict", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "23503", ConstraintName: "shows_venue_id_fkey"}

		err := translateError(pgErr)

		assert.ErrorIs(t, err, ErrConflict)
		assert.ErrorIs(t, err, pgErr)
		assert.Contains(t, err.Error(), "shows_venue_id_fkey")
	})

	t.Run("unique violation becomes duplicate", func(t *testing.T) {
		err := translateError(&pgconn.PgError{Code: "23505", ConstraintName: "shows_artist_venue_time_key"})

		assert.ErrorIs(t, err, ErrDuplicate)
		assert.NotErrorIs(t, err, ErrConflict)
	})

	t.Run("other errors pass through", func(t *testing.T) {
		assert.Equal(t, pgx.ErrNoRows, translateError(pgx.ErrNoRows))

		plain := errors.New("connection reset")
		assert.Equal(t, plain, translateError(plain))

		syntax := &pgconn.PgError{Code: "42601"}
		assert.Equal(t, error(syntax), translateError(syntax))
	})
}

func TestContainsPattern(t *testing.T) {
	tests := []struct {
		term string
		want string
	}{
		{"", "%%"},
		{"Hop", "%Hop%"},
		{"100%", `%100\%%`},
		{"a_b", `%a\_b%`},
		{`back\slash`, `%back\\slash%`},
		{" Music ", "% Music %"},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			assert.Equal(t, tt.want, containsPattern(tt.term))
		})
	}
}

package utils

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testShowForm struct {
	ArtistID  int64    `form:"artist_id" validate:"required,gt=0"`
	StartTime string   `form:"start_time" validate:"required,showtime"`
	Genres    []string `form:"genres" validate:"omitempty,dive,genre"`
}

func (f *testShowForm) Normalize() {
	f.StartTime = strings.TrimSpace(f.StartTime)
}

func postForm(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/shows/create", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestBindForm(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		var dst testShowForm
		errs := BindForm(postForm(url.Values{
			"artist_id":  {"4"},
			"start_time": {" 2035-04-01 20:00:00 "},
			"genres":     {"Jazz", "Blues"},
		}), &dst)

		require.Nil(t, errs)
		assert.Equal(t, int64(4), dst.ArtistID)
		assert.Equal(t, "2035-04-01 20:00:00", dst.StartTime)
		assert.Equal(t, []string{"Jazz", "Blues"}, dst.Genres)
	})

	t.Run("decode failure is reported once per field", func(t *testing.T) {
		var dst testShowForm
		errs := BindForm(postForm(url.Values{
			"artist_id":  {"four"},
			"start_time": {"2035-04-01 20:00:00"},
		}), &dst)

		assert.Equal(t, map[string]string{"artist_id": "Invalid value"}, errs)
	})

	t.Run("validation errors", func(t *testing.T) {
		var dst testShowForm
		errs := BindForm(postForm(url.Values{
			"start_time": {"soon"},
			"genres":     {"Polka"},
		}), &dst)

		assert.Equal(t, "This field is required", errs["artist_id"])
		assert.Equal(t, "Invalid date, use YYYY-MM-DD HH:MM:SS", errs["start_time"])
		assert.Equal(t, "Not a valid genre: Polka", errs["genres"])
	})
}

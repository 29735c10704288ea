package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"venue-booking/internal/data/entity"
	"venue-booking/internal/data/repository"
	"venue-booking/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestShowService(d *testDeps) *showService {
	return &showService{repo: d.repo, log: zap.NewNop()}
}

func TestShowService_GetShows(t *testing.T) {
	d := newTestDeps(t)
	svc := newTestShowService(d)

	start := time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)
	d.show.On("FindAll", mock.Anything).Return([]*entity.ShowListing{
		{ID: 1, VenueID: 1, VenueName: "The Musical Hop", ArtistID: 4, ArtistName: "Guns N Petals", ArtistImageLink: "gnp.jpg", StartTime: start},
	}, nil)

	shows, err := svc.GetShows(context.Background())

	require.NoError(t, err)
	require.Len(t, shows, 1)
	assert.Equal(t, "The Musical Hop", shows[0].VenueName)
	assert.Equal(t, "gnp.jpg", shows[0].ArtistImageLink)
	assert.Equal(t, start, shows[0].StartTime)
	d.assertExpectations(t)
}

func TestShowService_CreateShow(t *testing.T) {
	start := time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)
	validReq := func() *request.ShowRequest {
		return &request.ShowRequest{ArtistID: 4, VenueID: 1, StartTime: "2035-04-01 20:00:00"}
	}

	t.Run("creates show time and show in one transaction", func(t *testing.T) {
		d := newTestDeps(t)
		svc := newTestShowService(d)

		d.pool.ExpectBegin()
		d.artist.On("FindByID", mock.Anything, int64(4)).Return(&entity.Artist{Base: entity.Base{ID: 4}}, nil)
		d.venue.On("FindByID", mock.Anything, int64(1)).Return(&entity.Venue{Base: entity.Base{ID: 1}}, nil)
		d.showTime.On("Create", mock.Anything, mock.MatchedBy(func(st *entity.ShowTime) bool {
			return st.StartTime.Equal(start)
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*entity.ShowTime).ID = 11
		}).Return(nil)
		d.show.On("Create", mock.Anything, mock.MatchedBy(func(s *entity.Show) bool {
			return s.ArtistID == 4 && s.VenueID == 1 && s.ShowTimeID == 11
		})).Return(nil)
		d.pool.ExpectCommit()

		require.NoError(t, svc.CreateShow(context.Background(), validReq()))
		d.assertExpectations(t)
	})

	t.Run("bad timestamp", func(t *testing.T) {
		d := newTestDeps(t)
		svc := newTestShowService(d)

		req := validReq()
		req.StartTime = "not a date"

		err := svc.CreateShow(context.Background(), req)

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Fields, "start_time")
		d.assertExpectations(t)
	})

	t.Run("unknown artist and venue", func(t *testing.T) {
		d := newTestDeps(t)
		svc := newTestShowService(d)

		d.pool.ExpectBegin()
		d.artist.On("FindByID", mock.Anything, int64(4)).Return(nil, nil)
		d.venue.On("FindByID", mock.Anything, int64(1)).Return(nil, nil)
		d.pool.ExpectRollback()

		err := svc.CreateShow(context.Background(), validReq())

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Fields, "artist_id")
		assert.Contains(t, validationErr.Fields, "venue_id")
		d.showTime.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		d.assertExpectations(t)
	})

	t.Run("duplicate show rolls back the show time", func(t *testing.T) {
		d := newTestDeps(t)
		svc := newTestShowService(d)

		d.pool.ExpectBegin()
		d.artist.On("FindByID", mock.Anything, int64(4)).Return(&entity.Artist{Base: entity.Base{ID: 4}}, nil)
		d.venue.On("FindByID", mock.Anything, int64(1)).Return(&entity.Venue{Base: entity.Base{ID: 1}}, nil)
		d.showTime.On("Create", mock.Anything, mock.Anything).Return(nil)
		d.show.On("Create", mock.Anything, mock.Anything).Return(repository.ErrDuplicate)
		d.pool.ExpectRollback()

		err := svc.CreateShow(context.Background(), validReq())

		assert.ErrorIs(t, err, ErrConflict)
		d.assertExpectations(t)
	})

	t.Run("unexpected failure", func(t *testing.T) {
		d := newTestDeps(t)
		svc := newTestShowService(d)

		d.pool.ExpectBegin()
		d.artist.On("FindByID", mock.Anything, int64(4)).Return(nil, errors.New("connection reset"))
		d.pool.ExpectRollback()

		err := svc.CreateShow(context.Background(), validReq())

		assert.ErrorContains(t, err, "connection reset")
		assert.NotErrorIs(t, err, ErrConflict)
		d.assertExpectations(t)
	})
}

func TestSplitShows(t *testing.T) {
	shows := []*entity.ShowListing{
		{ID: 1, StartTime: fixedNow.Add(-time.Minute)},
		{ID: 2, StartTime: fixedNow.Add(time.Minute)},
		{ID: 3, StartTime: fixedNow},
	}

	past, upcoming := splitShows(shows, fixedNow, func(s *entity.ShowListing) int64 { return s.ID })

	assert.Equal(t, []int64{1, 3}, past)
	assert.Equal(t, []int64{2}, upcoming)
	assert.Equal(t, len(shows), len(past)+len(upcoming))
}

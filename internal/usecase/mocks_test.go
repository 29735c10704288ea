package usecase

import (
	"context"
	"testing"
	"time"

	"venue-booking/internal/data/entity"
	"venue-booking/internal/data/repository"
	"venue-booking/pkg/database"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mock repositories return themselves from WithTx so expectations set on the
// mock apply inside a unit of work too

type MockVenueRepo struct{ mock.Mock }

func (m *MockVenueRepo) Create(ctx context.Context, venue *entity.Venue) error {
	args := m.Called(ctx, venue)
	return args.Error(0)
}

func (m *MockVenueRepo) FindByID(ctx context.Context, id int64) (*entity.Venue, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Venue), args.Error(1)
}

func (m *MockVenueRepo) FindSummaries(ctx context.Context, now time.Time) ([]*entity.VenueSummary, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.VenueSummary), args.Error(1)
}

func (m *MockVenueRepo) Search(ctx context.Context, term string, now time.Time) ([]*entity.VenueSummary, error) {
	args := m.Called(ctx, term, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.VenueSummary), args.Error(1)
}

func (m *MockVenueRepo) Update(ctx context.Context, venue *entity.Venue) error {
	return m.Called(ctx, venue).Error(0)
}

func (m *MockVenueRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockVenueRepo) WithTx(database.DBTX) repository.VenueRepository { return m }

type MockArtistRepo struct{ mock.Mock }

func (m *MockArtistRepo) Create(ctx context.Context, artist *entity.Artist) error {
	return m.Called(ctx, artist).Error(0)
}

func (m *MockArtistRepo) FindByID(ctx context.Context, id int64) (*entity.Artist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Artist), args.Error(1)
}

func (m *MockArtistRepo) FindAll(ctx context.Context) ([]*entity.ArtistSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.ArtistSummary), args.Error(1)
}

func (m *MockArtistRepo) Search(ctx context.Context, term string, now time.Time) ([]*entity.ArtistSummary, error) {
	args := m.Called(ctx, term, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.ArtistSummary), args.Error(1)
}

func (m *MockArtistRepo) Update(ctx context.Context, artist *entity.Artist) error {
	return m.Called(ctx, artist).Error(0)
}

func (m *MockArtistRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockArtistRepo) WithTx(database.DBTX) repository.ArtistRepository { return m }

type MockShowTimeRepo struct{ mock.Mock }

func (m *MockShowTimeRepo) Create(ctx context.Context, showTime *entity.ShowTime) error {
	return m.Called(ctx, showTime).Error(0)
}

func (m *MockShowTimeRepo) WithTx(database.DBTX) repository.ShowTimeRepository { return m }

type MockShowRepo struct{ mock.Mock }

func (m *MockShowRepo) Create(ctx context.Context, show *entity.Show) error {
	return m.Called(ctx, show).Error(0)
}

func (m *MockShowRepo) FindAll(ctx context.Context) ([]*entity.ShowListing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.ShowListing), args.Error(1)
}

func (m *MockShowRepo) FindByVenueID(ctx context.Context, venueID int64) ([]*entity.ShowListing, error) {
	args := m.Called(ctx, venueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.ShowListing), args.Error(1)
}

func (m *MockShowRepo) FindByArtistID(ctx context.Context, artistID int64) ([]*entity.ShowListing, error) {
	args := m.Called(ctx, artistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.ShowListing), args.Error(1)
}

func (m *MockShowRepo) WithTx(database.DBTX) repository.ShowRepository { return m }

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

type testDeps struct {
	pool     pgxmock.PgxPoolIface
	venue    *MockVenueRepo
	artist   *MockArtistRepo
	showTime *MockShowTimeRepo
	show     *MockShowRepo
	repo     *repository.Repository
}

func newTestDeps(t *testing.T) *testDeps {
	t.Helper()

	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	d := &testDeps{
		pool:     pool,
		venue:    new(MockVenueRepo),
		artist:   new(MockArtistRepo),
		showTime: new(MockShowTimeRepo),
		show:     new(MockShowRepo),
	}
	d.repo = &repository.Repository{
		DB:       pool,
		Venue:    d.venue,
		Artist:   d.artist,
		ShowTime: d.showTime,
		Show:     d.show,
	}

	return d
}

func (d *testDeps) assertExpectations(t *testing.T) {
	t.Helper()

	d.venue.AssertExpectations(t)
	d.artist.AssertExpectations(t)
	d.showTime.AssertExpectations(t)
	d.show.AssertExpectations(t)
	require.NoError(t, d.pool.ExpectationsWereMet())
}

package adaptor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"venue-booking/internal/dto/request"
	"venue-booking/internal/dto/response"
	"venue-booking/internal/usecase"
	"venue-booking/internal/view"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockVenueService struct{ mock.Mock }

func (m *MockVenueService) GetVenueAreas(ctx context.Context) ([]response.VenueArea, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]response.VenueArea), args.Error(1)
}

func (m *MockVenueService) SearchVenues(ctx context.Context, term string) (*response.SearchResponse, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.SearchResponse), args.Error(1)
}

func (m *MockVenueService) GetVenueByID(ctx context.Context, venueID int64) (*response.VenueDetailResponse, error) {
	args := m.Called(ctx, venueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.VenueDetailResponse), args.Error(1)
}

func (m *MockVenueService) GetVenueForEdit(ctx context.Context, venueID int64) (*request.VenueRequest, error) {
	args := m.Called(ctx, venueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*request.VenueRequest), args.Error(1)
}

func (m *MockVenueService) CreateVenue(ctx context.Context, req *request.VenueRequest) (*response.EntrySummary, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.EntrySummary), args.Error(1)
}

func (m *MockVenueService) UpdateVenue(ctx context.Context, venueID int64, req *request.VenueRequest) error {
	return m.Called(ctx, venueID, req).Error(0)
}

func (m *MockVenueService) DeleteVenue(ctx context.Context, venueID int64) (string, error) {
	args := m.Called(ctx, venueID)
	return args.String(0), args.Error(1)
}

type MockArtistService struct{ mock.Mock }

func (m *MockArtistService) GetArtists(ctx context.Context) ([]response.ArtistResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]response.ArtistResponse), args.Error(1)
}

func (m *MockArtistService) SearchArtists(ctx context.Context, term string) (*response.SearchResponse, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.SearchResponse), args.Error(1)
}

func (m *MockArtistService) GetArtistByID(ctx context.Context, artistID int64) (*response.ArtistDetailResponse, error) {
	args := m.Called(ctx, artistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.ArtistDetailResponse), args.Error(1)
}

func (m *MockArtistService) GetArtistForEdit(ctx context.Context, artistID int64) (*request.ArtistRequest, error) {
	args := m.Called(ctx, artistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*request.ArtistRequest), args.Error(1)
}

func (m *MockArtistService) CreateArtist(ctx context.Context, req *request.ArtistRequest) (*response.EntrySummary, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.EntrySummary), args.Error(1)
}

func (m *MockArtistService) UpdateArtist(ctx context.Context, artistID int64, req *request.ArtistRequest) error {
	return m.Called(ctx, artistID, req).Error(0)
}

func (m *MockArtistService) DeleteArtist(ctx context.Context, artistID int64) (string, error) {
	args := m.Called(ctx, artistID)
	return args.String(0), args.Error(1)
}

type MockShowService struct{ mock.Mock }

func (m *MockShowService) GetShows(ctx context.Context) ([]response.ShowResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]response.ShowResponse), args.Error(1)
}

func (m *MockShowService) CreateShow(ctx context.Context, req *request.ShowRequest) error {
	return m.Called(ctx, req).Error(0)
}

type MockPinger struct{ mock.Mock }

func (m *MockPinger) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type testServer struct {
	venue  *MockVenueService
	artist *MockArtistService
	show   *MockShowService
	db     *MockPinger
	router chi.Router
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	renderer, err := view.NewRenderer(zap.NewNop())
	require.NoError(t, err)

	s := &testServer{
		venue:  new(MockVenueService),
		artist: new(MockArtistService),
		show:   new(MockShowService),
		db:     new(MockPinger),
	}

	service := &usecase.Service{Venue: s.venue, Artist: s.artist, Show: s.show}
	h := NewHandler(service, s.db, renderer, zap.NewNop())

	r := chi.NewRouter()
	r.NotFound(renderer.NotFound)
	r.Get("/", h.Home.Index)
	r.Get("/health", h.Health.Check)

	r.Get("/venues", h.Venue.GetVenues)
	r.Post("/venues/search", h.Venue.SearchVenues)
	r.Get("/venues/create", h.Venue.CreateVenueForm)
	r.Post("/venues/create", h.Venue.CreateVenue)
	r.Get("/venues/{id}", h.Venue.GetVenue)
	r.Get("/venues/{id}/edit", h.Venue.EditVenueForm)
	r.Post("/venues/{id}/edit", h.Venue.EditVenue)
	r.Get("/venues/{id}/delete", h.Venue.DeleteVenue)

	r.Get("/artists", h.Artist.GetArtists)
	r.Post("/artists/search", h.Artist.SearchArtists)
	r.Get("/artists/create", h.Artist.CreateArtistForm)
	r.Post("/artists/create", h.Artist.CreateArtist)
	r.Get("/artists/{id}", h.Artist.GetArtist)
	r.Get("/artists/{id}/edit", h.Artist.EditArtistForm)
	r.Post("/artists/{id}/edit", h.Artist.EditArtist)
	r.Get("/artists/{id}/delete", h.Artist.DeleteArtist)

	r.Get("/shows", h.Show.GetShows)
	r.Get("/shows/create", h.Show.CreateShowForm)
	r.Post("/shows/create", h.Show.CreateShow)

	s.router = r
	return s
}

func (s *testServer) get(path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func (s *testServer) post(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) assertExpectations(t *testing.T) {
	t.Helper()

	s.venue.AssertExpectations(t)
	s.artist.AssertExpectations(t)
	s.show.AssertExpectations(t)
	s.db.AssertExpectations(t)
}

package response

import (
	"time"

	"venue-booking/internal/data/entity"
)

// VenueArea groups the venues of one city.
type VenueArea struct {
	City   string         `json:"city"`
	State  string         `json:"state"`
	Venues []EntrySummary `json:"venues"`
}

// EntrySummary is one venue or artist line in a directory or search result.
type EntrySummary struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

type SearchResponse struct {
	Count int            `json:"count"`
	Data  []EntrySummary `json:"data"`
}

type VenueDetailResponse struct {
	ID                 int64               `json:"id"`
	Name               string              `json:"name"`
	Genres             []string            `json:"genres"`
	Address            string              `json:"address"`
	City               string              `json:"city"`
	State              string              `json:"state"`
	Phone              string              `json:"phone"`
	Website            string              `json:"website"`
	FacebookLink       string              `json:"facebook_link"`
	SeekingTalent      bool                `json:"seeking_talent"`
	SeekingDescription string              `json:"seeking_description"`
	ImageLink          string              `json:"image_link"`
	PastShows          []VenueShowResponse `json:"past_shows"`
	UpcomingShows      []VenueShowResponse `json:"upcoming_shows"`
	PastShowsCount     int                 `json:"past_shows_count"`
	UpcomingShowsCount int                 `json:"upcoming_shows_count"`
}

// VenueShowResponse is a show on a venue page, described by its artist.
type VenueShowResponse struct {
	ArtistID        int64     `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

func VenueSummaryToEntry(venue *entity.VenueSummary) EntrySummary {
	return EntrySummary{
		ID:               venue.ID,
		Name:             venue.Name,
		NumUpcomingShows: venue.NumUpcomingShows,
	}
}

func VenueToDetailResponse(venue *entity.Venue) *VenueDetailResponse {
	return &VenueDetailResponse{
		ID:                 venue.ID,
		Name:               venue.Name,
		Genres:             venue.Genres,
		Address:            venue.Address,
		City:               venue.City,
		State:              venue.State,
		Phone:              venue.Phone,
		Website:            venue.Website,
		FacebookLink:       venue.FacebookLink,
		SeekingTalent:      venue.SeekingTalent,
		SeekingDescription: venue.SeekingDescription,
		ImageLink:          venue.ImageLink,
		PastShows:          []VenueShowResponse{},
		UpcomingShows:      []VenueShowResponse{},
	}
}

func ListingToVenueShow(show *entity.ShowListing) VenueShowResponse {
	return VenueShowResponse{
		ArtistID:        show.ArtistID,
		ArtistName:      show.ArtistName,
		ArtistImageLink: show.ArtistImageLink,
		StartTime:       show.StartTime,
	}
}

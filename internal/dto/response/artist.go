package response

import (
	"time"

	"venue-booking/internal/data/entity"
)

type ArtistResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ArtistDetailResponse struct {
	ID                 int64                `json:"id"`
	Name               string               `json:"name"`
	Genres             []string             `json:"genres"`
	City               string               `json:"city"`
	State              string               `json:"state"`
	Phone              string               `json:"phone"`
	Website            string               `json:"website"`
	FacebookLink       string               `json:"facebook_link"`
	SeekingVenue       bool                 `json:"seeking_venue"`
	SeekingDescription string               `json:"seeking_description"`
	ImageLink          string               `json:"image_link"`
	PastShows          []ArtistShowResponse `json:"past_shows"`
	UpcomingShows      []ArtistShowResponse `json:"upcoming_shows"`
	PastShowsCount     int                  `json:"past_shows_count"`
	UpcomingShowsCount int                  `json:"upcoming_shows_count"`
}

// ArtistShowResponse is a show on an artist page, described by its venue.
type ArtistShowResponse struct {
	VenueID        int64     `json:"venue_id"`
	VenueName      string    `json:"venue_name"`
	VenueImageLink string    `json:"venue_image_link"`
	StartTime      time.Time `json:"start_time"`
}

func ArtistSummaryToResponse(artist *entity.ArtistSummary) ArtistResponse {
	return ArtistResponse{ID: artist.ID, Name: artist.Name}
}

func ArtistSummaryToEntry(artist *entity.ArtistSummary) EntrySummary {
	return EntrySummary{
		ID:               artist.ID,
		Name:             artist.Name,
		NumUpcomingShows: artist.NumUpcomingShows,
	}
}

func ArtistToDetailResponse(artist *entity.Artist) *ArtistDetailResponse {
	return &ArtistDetailResponse{
		ID:                 artist.ID,
		Name:               artist.Name,
		Genres:             artist.Genres,
		City:               artist.City,
		State:              artist.State,
		Phone:              artist.Phone,
		Website:            artist.Website,
		FacebookLink:       artist.FacebookLink,
		SeekingVenue:       artist.SeekingVenue,
		SeekingDescription: artist.SeekingDescription,
		ImageLink:          artist.ImageLink,
		PastShows:          []ArtistShowResponse{},
		UpcomingShows:      []ArtistShowResponse{},
	}
}

func ListingToArtistShow(show *entity.ShowListing) ArtistShowResponse {
	return ArtistShowResponse{
		VenueID:        show.VenueID,
		VenueName:      show.VenueName,
		VenueImageLink: show.VenueImageLink,
		StartTime:      show.StartTime,
	}
}

package response

import (
	"time"

	"venue-booking/internal/data/entity"
)

type ShowResponse struct {
	VenueID         int64     `json:"venue_id"`
	VenueName       string    `json:"venue_name"`
	ArtistID        int64     `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

func ListingToShowResponse(show *entity.ShowListing) ShowResponse {
	return ShowResponse{
		VenueID:         show.VenueID,
		VenueName:       show.VenueName,
		ArtistID:        show.ArtistID,
		ArtistName:      show.ArtistName,
		ArtistImageLink: show.ArtistImageLink,
		StartTime:       show.StartTime,
	}
}

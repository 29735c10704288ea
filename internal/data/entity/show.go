package entity

import "time"

// Show links one artist to one venue at one show time. The triple is unique.
type Show struct {
	BaseSimple
	ArtistID   int64 `db:"artist_id"`
	VenueID    int64 `db:"venue_id"`
	ShowTimeID int64 `db:"show_time_id"`
}

// ShowListing is a show joined with its venue, artist and start time.
type ShowListing struct {
	ID              int64     `db:"id"`
	VenueID         int64     `db:"venue_id"`
	VenueName       string    `db:"venue_name"`
	VenueImageLink  string    `db:"venue_image_link"`
	ArtistID        int64     `db:"artist_id"`
	ArtistName      string    `db:"artist_name"`
	ArtistImageLink string    `db:"artist_image_link"`
	StartTime       time.Time `db:"start_time"`
}

package request

import "strings"

type ShowRequest struct {
	ArtistID  int64  `form:"artist_id" json:"artist_id" validate:"required,gt=0"`
	VenueID   int64  `form:"venue_id" json:"venue_id" validate:"required,gt=0"`
	StartTime string `form:"start_time" json:"start_time" validate:"required,showtime"`
}

func (r *ShowRequest) Normalize() {
	r.StartTime = strings.TrimSpace(r.StartTime)
}

package request

import (
	"strings"

	"venue-booking/internal/data/entity"
)

type ArtistRequest struct {
	Name               string   `form:"name" json:"name" validate:"required,max=255"`
	City               string   `form:"city" json:"city" validate:"required,max=120"`
	State              string   `form:"state" json:"state" validate:"required,state"`
	Phone              string   `form:"phone" json:"phone" validate:"required,phone"`
	ImageLink          string   `form:"image_link" json:"image_link" validate:"omitempty,url,max=500"`
	Genres             []string `form:"genres" json:"genres" validate:"required,min=1,dive,genre"`
	FacebookLink       string   `form:"facebook_link" json:"facebook_link" validate:"omitempty,url,max=120"`
	WebsiteLink        string   `form:"website_link" json:"website_link" validate:"omitempty,url,max=120"`
	SeekingVenue       string   `form:"seeking_venue" json:"seeking_venue"`
	SeekingDescription string   `form:"seeking_description" json:"seeking_description" validate:"max=200"`
}

func (r *ArtistRequest) IsSeekingVenue() bool {
	return r.SeekingVenue == SeekingYes
}

func (r *ArtistRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.City = strings.TrimSpace(r.City)
	r.State = strings.TrimSpace(r.State)
	r.Phone = strings.TrimSpace(r.Phone)
	r.ImageLink = strings.TrimSpace(r.ImageLink)
	r.FacebookLink = strings.TrimSpace(r.FacebookLink)
	r.WebsiteLink = strings.TrimSpace(r.WebsiteLink)
	r.SeekingDescription = strings.TrimSpace(r.SeekingDescription)
}

func (r *ArtistRequest) ApplyTo(artist *entity.Artist) {
	artist.Name = r.Name
	artist.City = r.City
	artist.State = r.State
	artist.Phone = r.Phone
	artist.ImageLink = r.ImageLink
	artist.FacebookLink = r.FacebookLink
	artist.Website = r.WebsiteLink
	artist.Genres = r.Genres
	artist.SeekingVenue = r.IsSeekingVenue()
	artist.SeekingDescription = r.SeekingDescription
}

func ArtistRequestFromEntity(artist *entity.Artist) *ArtistRequest {
	req := &ArtistRequest{
		Name:               artist.Name,
		City:               artist.City,
		State:              artist.State,
		Phone:              artist.Phone,
		ImageLink:          artist.ImageLink,
		Genres:             artist.Genres,
		FacebookLink:       artist.FacebookLink,
		WebsiteLink:        artist.Website,
		SeekingDescription: artist.SeekingDescription,
	}
	if artist.SeekingVenue {
		req.SeekingVenue = SeekingYes
	}
	return req
}

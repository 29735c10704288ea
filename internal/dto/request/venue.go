package request

import (
	"strings"

	"venue-booking/internal/data/entity"
)

// SeekingYes is the checkbox value that marks a venue or artist as seeking.
const SeekingYes = "y"

type VenueRequest struct {
	Name               string   `form:"name" json:"name" validate:"required,max=255"`
	City               string   `form:"city" json:"city" validate:"required,max=120"`
	State              string   `form:"state" json:"state" validate:"required,state"`
	Address            string   `form:"address" json:"address" validate:"required,max=120"`
	Phone              string   `form:"phone" json:"phone" validate:"required,phone"`
	ImageLink          string   `form:"image_link" json:"image_link" validate:"omitempty,url,max=500"`
	Genres             []string `form:"genres" json:"genres" validate:"required,min=1,dive,genre"`
	FacebookLink       string   `form:"facebook_link" json:"facebook_link" validate:"omitempty,url,max=120"`
	WebsiteLink        string   `form:"website_link" json:"website_link" validate:"omitempty,url,max=120"`
	SeekingTalent      string   `form:"seeking_talent" json:"seeking_talent"`
	SeekingDescription string   `form:"seeking_description" json:"seeking_description" validate:"max=200"`
}

func (r *VenueRequest) IsSeekingTalent() bool {
	return r.SeekingTalent == SeekingYes
}

// Normalize trims surrounding whitespace so "  " counts as missing.
func (r *VenueRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.City = strings.TrimSpace(r.City)
	r.State = strings.TrimSpace(r.State)
	r.Address = strings.TrimSpace(r.Address)
	r.Phone = strings.TrimSpace(r.Phone)
	r.ImageLink = strings.TrimSpace(r.ImageLink)
	r.FacebookLink = strings.TrimSpace(r.FacebookLink)
	r.WebsiteLink = strings.TrimSpace(r.WebsiteLink)
	r.SeekingDescription = strings.TrimSpace(r.SeekingDescription)
}

// ApplyTo copies the submitted fields onto venue.
func (r *VenueRequest) ApplyTo(venue *entity.Venue) {
	venue.Name = r.Name
	venue.City = r.City
	venue.State = r.State
	venue.Address = r.Address
	venue.Phone = r.Phone
	venue.ImageLink = r.ImageLink
	venue.FacebookLink = r.FacebookLink
	venue.Website = r.WebsiteLink
	venue.Genres = r.Genres
	venue.SeekingTalent = r.IsSeekingTalent()
	venue.SeekingDescription = r.SeekingDescription
}

// VenueRequestFromEntity pre-populates the edit form.
func VenueRequestFromEntity(venue *entity.Venue) *VenueRequest {
	req := &VenueRequest{
		Name:               venue.Name,
		City:               venue.City,
		State:              venue.State,
		Address:            venue.Address,
		Phone:              venue.Phone,
		ImageLink:          venue.ImageLink,
		Genres:             venue.Genres,
		FacebookLink:       venue.FacebookLink,
		WebsiteLink:        venue.Website,
		SeekingDescription: venue.SeekingDescription,
	}
	if venue.SeekingTalent {
		req.SeekingTalent = SeekingYes
	}
	return req
}

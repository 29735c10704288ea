package entity

type Artist struct {
	Base
	Name               string   `db:"name"`
	City               string   `db:"city"`
	State              string   `db:"state"`
	Phone              string   `db:"phone"`
	Website            string   `db:"website"`
	Genres             []string `db:"genres"`
	ImageLink          string   `db:"image_link"`
	FacebookLink       string   `db:"facebook_link"`
	SeekingVenue       bool     `db:"seeking_venue"`
	SeekingDescription string   `db:"seeking_description"`
}

type ArtistSummary struct {
	ID               int64  `db:"id"`
	Name             string `db:"name"`
	NumUpcomingShows int    `db:"num_upcoming_shows"`
}

package entity

type Venue struct {
	Base
	Name               string   `db:"name"`
	City               string   `db:"city"`
	State              string   `db:"state"`
	Address            string   `db:"address"`
	Phone              string   `db:"phone"`
	ImageLink          string   `db:"image_link"`
	FacebookLink       string   `db:"facebook_link"`
	Website            string   `db:"website"`
	Genres             []string `db:"genres"`
	SeekingTalent      bool     `db:"seeking_talent"`
	SeekingDescription string   `db:"seeking_description"`
}

// VenueSummary is a venue row with its upcoming show count.
type VenueSummary struct {
	ID               int64  `db:"id"`
	Name             string `db:"name"`
	City             string `db:"city"`
	State            string `db:"state"`
	NumUpcomingShows int    `db:"num_upcoming_shows"`
}

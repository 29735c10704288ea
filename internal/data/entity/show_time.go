package entity

import "time"

// ShowTime is a scheduled moment a show refers to.
type ShowTime struct {
	ID        int64     `db:"id"`
	StartTime time.Time `db:"start_time"`
}

package entity

import "time"

// Delivery records one reminder sent to a user, keyed by the course slot and
// the calendar date it fired on. The unique key (user, week, weekday, period,
// fired_on) is what keeps a reminder from repeating every poll while its
// window is still open.
type Delivery struct {
	ID        int64     `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Week      int       `json:"week" db:"week"`
	Weekday   int       `json:"weekday" db:"weekday"`
	Period    int       `json:"period" db:"period"`
	FiredOn   string    `json:"fired_on" db:"fired_on"` // YYYY-MM-DD
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

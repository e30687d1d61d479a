package entity

import (
	"fmt"
	"time"

	"github.com/teheiw192/kcjqr/internal/domain"
)

// Course is one entry of a user's weekly course grid. Week, Weekday and
// Period together identify the slot the course occupies.
type Course struct {
	Week     int    `json:"week"`
	Weekday  int    `json:"weekday"` // ISO 8601, Monday=1..Sunday=7
	Period   int    `json:"period"`  // 45-minute slot, numbered from 1
	Name     string `json:"name"`
	Location string `json:"location"`
	Teacher  string `json:"teacher"`
}

// StartMinute returns the course start as minutes since midnight.
func (c Course) StartMinute() int {
	return domain.DayStartHour*60 + domain.DayStartMinute + (c.Period-1)*domain.PeriodMinutes
}

// EndMinute returns the course end as minutes since midnight.
func (c Course) EndMinute() int {
	return c.StartMinute() + domain.PeriodMinutes
}

// TimeRange formats the slot as "HH:MM-HH:MM".
func (c Course) TimeRange() string {
	return fmt.Sprintf("%02d:%02d-%02d:%02d",
		c.StartMinute()/60, c.StartMinute()%60,
		c.EndMinute()/60, c.EndMinute()%60)
}

// SameSlot reports whether two courses occupy the same (week, weekday, period).
func (c Course) SameSlot(other Course) bool {
	return c.Week == other.Week && c.Weekday == other.Weekday && c.Period == other.Period
}

// BasicInfo carries the semester details echoed from the submitted schedule
// text. It is informational only; the authoritative term bounds live in
// SemesterConfig.
type BasicInfo struct {
	StartDate  string `json:"start_date,omitempty"`
	TotalWeeks int    `json:"total_weeks,omitempty"`
}

// Schedule is the full course data owned by one user. It is replaced
// wholesale on every successful re-parse of schedule text.
type Schedule struct {
	BasicInfo       BasicInfo `json:"basic_info"`
	Courses         []Course  `json:"courses"`
	ReminderEnabled bool      `json:"reminder_enabled"`
}

// SemesterConfig anchors week arithmetic. There is one per deployment and it
// persists across restarts until explicitly replaced.
type SemesterConfig struct {
	StartDate  string `json:"start_date"` // YYYY-MM-DD
	TotalWeeks int    `json:"total_weeks"`
}

// Start parses the configured start date. The date is validated when the
// config is set, so a parse failure here means the on-disk document was
// edited by hand.
func (c SemesterConfig) Start() (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", c.StartDate, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid semester start date %q: %w", c.StartDate, err)
	}
	return t, nil
}

package domain

import "time"

// ISO 8601 weekday constants
const (
	Monday    = 1
	Tuesday   = 2
	Wednesday = 3
	Thursday  = 4
	Friday    = 5
	Saturday  = 6
	Sunday    = 7
)

// WeekdayNames maps ISO 8601 weekday numbers to the characters used in
// schedule text and replies (星期一..星期日).
var WeekdayNames = map[int]string{
	Monday:    "一",
	Tuesday:   "二",
	Wednesday: "三",
	Thursday:  "四",
	Friday:    "五",
	Saturday:  "六",
	Sunday:    "日",
}

// Teaching periods are fixed 45-minute slots, numbered from 1, starting at 08:00.
const (
	PeriodMinutes  = 45
	DayStartHour   = 8
	DayStartMinute = 0
)

// Scheduler defaults, overridable through configuration.
const (
	DefaultLeadMinutes  = 30
	DefaultPollInterval = 60 * time.Second
	DefaultDigestTime   = "23:00"
	DigestCooldown      = time.Minute
)

package service

import (
	"time"

	"github.com/teheiw192/kcjqr/internal/domain/entity"
)

// CurrentWeek computes the 1-based week number of now within the semester:
// floor(days since start / 7) + 1. The second return value is false when the
// term has not started, has already ended, or no usable semester config
// exists. Callers treat that as "no courses active", never as an error.
func CurrentWeek(now time.Time, cfg *entity.SemesterConfig) (int, bool) {
	if cfg == nil || cfg.TotalWeeks < 1 {
		return 0, false
	}

	start, err := cfg.Start()
	if err != nil {
		return 0, false
	}

	days := daysBetween(start, now)
	if days < 0 {
		return 0, false
	}

	week := days/7 + 1
	if week > cfg.TotalWeeks {
		return 0, false
	}

	return week, true
}

// ISOWeekday returns the weekday of t with Monday=1..Sunday=7, matching the
// weekday encoding of entity.Course.
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 { // Sunday = 0 in Go, but course records use ISO 8601
		wd = 7
	}
	return wd
}

// daysBetween counts whole calendar days from a to b, ignoring time of day.
// Both dates are rebuilt in UTC so daylight saving shifts cannot skew the
// division.
func daysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	ua := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	ub := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}

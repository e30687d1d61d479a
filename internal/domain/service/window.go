package service

import (
	"time"

	"github.com/teheiw192/kcjqr/internal/domain/entity"
)

// ActiveNow reports whether the course's reminder window contains now.
// The window is the closed interval [courseStart-lead, courseEnd]: both
// endpoints fire. A lead that pushes the window start before midnight, or a
// period ending past midnight, is undefined and not special-cased here.
func ActiveNow(course entity.Course, now time.Time, cfg *entity.SemesterConfig, lead time.Duration) bool {
	week, ok := CurrentWeek(now, cfg)
	if !ok {
		return false
	}

	if course.Week != week || course.Weekday != ISOWeekday(now) {
		return false
	}

	start := slotStart(course, now)
	end := start.Add(time.Duration(course.EndMinute()-course.StartMinute()) * time.Minute)
	reminderStart := start.Add(-lead)

	return !now.Before(reminderStart) && !now.After(end)
}

// TomorrowCourses returns every course scheduled for tomorrow's week and
// weekday, regardless of time of day. Empty when tomorrow falls outside the
// term.
func TomorrowCourses(courses []entity.Course, now time.Time, cfg *entity.SemesterConfig) []entity.Course {
	tomorrow := now.AddDate(0, 0, 1)

	week, ok := CurrentWeek(tomorrow, cfg)
	if !ok {
		return nil
	}
	weekday := ISOWeekday(tomorrow)

	var result []entity.Course
	for _, course := range courses {
		if course.Week == week && course.Weekday == weekday {
			result = append(result, course)
		}
	}
	return result
}

// DetectConflicts returns every pair of courses sharing a (week, weekday,
// period) slot, each pair exactly once. Pairwise comparison; course lists
// are term-sized, so O(n²) is fine.
func DetectConflicts(courses []entity.Course) []entity.Conflict {
	var conflicts []entity.Conflict
	for i := 0; i < len(courses); i++ {
		for j := i + 1; j < len(courses); j++ {
			if courses[i].SameSlot(courses[j]) {
				conflicts = append(conflicts, entity.Conflict{First: courses[i], Second: courses[j]})
			}
		}
	}
	return conflicts
}

// slotStart places the course's start time on the calendar date of ref.
func slotStart(course entity.Course, ref time.Time) time.Time {
	year, month, day := ref.Date()
	return time.Date(year, month, day, 0, course.StartMinute(), 0, 0, ref.Location())
}

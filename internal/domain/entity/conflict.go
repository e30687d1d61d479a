package entity

// Conflict is a pair of courses occupying the same (week, weekday, period)
// slot. Each conflicting pair is reported exactly once.
type Conflict struct {
	First  Course
	Second Course
}

package contract

import (
	"context"

	"github.com/teheiw192/kcjqr/internal/domain/entity"
)

// CourseService is the command-facing surface of the plugin
type CourseService interface {
	// SetSemester validates and stores the global semester config.
	SetSemester(startDate string, totalWeeks int) (*entity.SemesterConfig, error)

	// ImportSchedule parses text, rejects conflicting grids, and replaces
	// the user's schedule. On conflicts it returns them with a nil schedule
	// and the stored state unchanged.
	ImportSchedule(ctx context.Context, userID, text string) (*entity.Schedule, []entity.Conflict, error)

	// ListCourses returns the user's schedule, or false if none exists.
	ListCourses(userID string) (*entity.Schedule, bool)

	// ClearCourses deletes the user's schedule and stops their reminders.
	ClearCourses(userID string) error

	// EnableReminder / DisableReminder flip the user's reminder state and
	// start or cancel their polling loop.
	EnableReminder(userID string) error
	DisableReminder(userID string) error

	// ToggleReminder flips the reminder state and returns the new value.
	ToggleReminder(userID string) (bool, error)

	// TestReminder evaluates the user's currently active courses and sends
	// a reminder for each, bypassing the delivery ledger. Returns how many
	// reminders were sent.
	TestReminder(ctx context.Context, userID string) (int, error)

	// Backup snapshots the persistent documents and returns the snapshot path.
	Backup() (string, error)
}

// ReminderRegistry manages per-user reminder loops. Enable is idempotent,
// as is Disable: cancelling an already-stopped loop is a no-op.
type ReminderRegistry interface {
	Enable(userID string)
	Disable(userID string)
}

package contract

import "github.com/teheiw192/kcjqr/internal/domain/entity"

// ScheduleStore owns all shared mutable schedule state. Implementations must
// be safe for concurrent use from the message-handling path and the reminder
// loops; iteration helpers return snapshots, never live references.
type ScheduleStore interface {
	// Schedule returns a copy of the user's schedule, or false if none exists.
	Schedule(userID string) (*entity.Schedule, bool)

	// SetSchedule replaces the user's schedule wholesale and persists.
	SetSchedule(userID string, schedule *entity.Schedule) error

	// DeleteSchedule removes the user's schedule and persists. Deleting an
	// absent schedule is a no-op.
	DeleteSchedule(userID string) error

	// Schedules returns a snapshot copy of every stored schedule keyed by
	// user id.
	Schedules() map[string]*entity.Schedule

	// SetReminderEnabled flips the user's reminder flag and persists.
	SetReminderEnabled(userID string, enabled bool) error

	// ReminderEnabled reports the user's reminder flag.
	ReminderEnabled(userID string) bool

	// Semester returns a copy of the semester config, or nil if unset.
	Semester() *entity.SemesterConfig

	// SetSemester replaces the semester config and persists.
	SetSemester(cfg *entity.SemesterConfig) error

	// Flush writes every document to disk. Called on shutdown.
	Flush() error

	// Backup snapshots all documents into a timestamped directory and
	// returns its path.
	Backup() (string, error)
}

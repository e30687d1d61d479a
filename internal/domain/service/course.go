package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/teheiw192/kcjqr/internal/domain"
	"github.com/teheiw192/kcjqr/internal/domain/contract"
	"github.com/teheiw192/kcjqr/internal/domain/entity"
)

// ErrNoSchedule is returned by operations that require the user to have
// submitted a schedule first.
var ErrNoSchedule = errors.New("no schedule stored for user")

// startDateLayouts accepted by set_semester, most specific first.
var startDateLayouts = []string{"2006-01-02", "2006.01.02", "2006/01/02", "2006.1.2", "2006/1/2"}

type courseService struct {
	store     contract.ScheduleStore
	parser    contract.CourseParser
	registry  contract.ReminderRegistry
	messenger contract.Messenger
	log       *zap.Logger
	lead      time.Duration
	now       func() time.Time
}

func newCourseService(
	store contract.ScheduleStore,
	courseParser contract.CourseParser,
	registry contract.ReminderRegistry,
	messenger contract.Messenger,
	log *zap.Logger,
	opts Options,
) *courseService {
	return &courseService{
		store:     store,
		parser:    courseParser,
		registry:  registry,
		messenger: messenger,
		log:       log,
		lead:      opts.leadDuration(),
		now:       opts.nowFunc(),
	}
}

func (s *courseService) SetSemester(startDate string, totalWeeks int) (*entity.SemesterConfig, error) {
	if totalWeeks < 1 {
		return nil, fmt.Errorf("total weeks must be at least 1, got %d", totalWeeks)
	}

	var parsed time.Time
	var err error
	for _, layout := range startDateLayouts {
		parsed, err = time.ParseInLocation(layout, startDate, time.Local)
		if err == nil {
			break
		}
	}
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", startDate, err)
	}

	cfg := &entity.SemesterConfig{
		StartDate:  parsed.Format("2006-01-02"),
		TotalWeeks: totalWeeks,
	}

	if err := s.store.SetSemester(cfg); err != nil {
		return nil, fmt.Errorf("failed to save semester config: %w", err)
	}

	return cfg, nil
}

func (s *courseService) ImportSchedule(ctx context.Context, userID, text string) (*entity.Schedule, []entity.Conflict, error) {
	schedule, err := s.parser.Parse(ctx, text)
	if err != nil {
		return nil, nil, err
	}

	if conflicts := DetectConflicts(schedule.Courses); len(conflicts) > 0 {
		return nil, conflicts, nil
	}

	// Wholesale replacement: the reminder flag starts off and any running
	// loop for the user is cancelled until they enable reminders again.
	schedule.ReminderEnabled = false
	s.registry.Disable(userID)

	if err := s.store.SetSchedule(userID, schedule); err != nil {
		return nil, nil, fmt.Errorf("failed to save schedule: %w", err)
	}

	s.log.Info("schedule imported",
		zap.String("user_id", userID),
		zap.Int("courses", len(schedule.Courses)))

	return schedule, nil, nil
}

func (s *courseService) ListCourses(userID string) (*entity.Schedule, bool) {
	return s.store.Schedule(userID)
}

func (s *courseService) ClearCourses(userID string) error {
	s.registry.Disable(userID)

	if err := s.store.DeleteSchedule(userID); err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}

	return nil
}

func (s *courseService) EnableReminder(userID string) error {
	if _, ok := s.store.Schedule(userID); !ok {
		return ErrNoSchedule
	}

	if err := s.store.SetReminderEnabled(userID, true); err != nil {
		return fmt.Errorf("failed to save reminder status: %w", err)
	}

	s.registry.Enable(userID)
	return nil
}

func (s *courseService) DisableReminder(userID string) error {
	if _, ok := s.store.Schedule(userID); !ok {
		return ErrNoSchedule
	}

	if err := s.store.SetReminderEnabled(userID, false); err != nil {
		return fmt.Errorf("failed to save reminder status: %w", err)
	}

	s.registry.Disable(userID)
	return nil
}

func (s *courseService) ToggleReminder(userID string) (bool, error) {
	if s.store.ReminderEnabled(userID) {
		return false, s.DisableReminder(userID)
	}
	return true, s.EnableReminder(userID)
}

// TestReminder sends a reminder for every currently active course without
// touching the delivery ledger, so a real poll can still fire later.
func (s *courseService) TestReminder(ctx context.Context, userID string) (int, error) {
	schedule, ok := s.store.Schedule(userID)
	if !ok {
		return 0, ErrNoSchedule
	}

	now := s.now()
	cfg := s.store.Semester()

	sent := 0
	for _, course := range schedule.Courses {
		if !ActiveNow(course, now, cfg, s.lead) {
			continue
		}
		if err := s.messenger.SendPrivate(ctx, userID, reminderMessage(course)); err != nil {
			return sent, fmt.Errorf("failed to send test reminder: %w", err)
		}
		sent++
	}

	return sent, nil
}

func (s *courseService) Backup() (string, error) {
	path, err := s.store.Backup()
	if err != nil {
		return "", fmt.Errorf("failed to back up data: %w", err)
	}
	return path, nil
}

// compile-time interface check
var _ contract.CourseService = (*courseService)(nil)

// Options tunes the schedule services. Zero values fall back to the plugin
// defaults.
type Options struct {
	LeadMinutes  int
	PollInterval time.Duration
	DigestTime   string
	Now          func() time.Time
}

func (o Options) leadDuration() time.Duration {
	if o.LeadMinutes <= 0 {
		return domain.DefaultLeadMinutes * time.Minute
	}
	return time.Duration(o.LeadMinutes) * time.Minute
}

func (o Options) pollInterval() time.Duration {
	if o.PollInterval <= 0 {
		return domain.DefaultPollInterval
	}
	return o.PollInterval
}

func (o Options) digestTime() string {
	if o.DigestTime == "" {
		return domain.DefaultDigestTime
	}
	return o.DigestTime
}

func (o Options) nowFunc() func() time.Time {
	if o.Now == nil {
		return time.Now
	}
	return o.Now
}

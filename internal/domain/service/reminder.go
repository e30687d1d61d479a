package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/teheiw192/kcjqr/internal/domain"
	"github.com/teheiw192/kcjqr/internal/domain/contract"
	"github.com/teheiw192/kcjqr/internal/domain/entity"
)

// ledger rows older than this are purged after each digest run
const ledgerRetentionDays = 7

// reminderScheduler runs one polling loop per reminder-enabled user plus a
// single daily digest loop. Loops only ever see snapshots of the schedule
// store; per-user failures are logged and never stop other users or the
// next cycle.
type reminderScheduler struct {
	store     contract.ScheduleStore
	dm        contract.DataManager
	messenger contract.Messenger
	log       *zap.Logger

	lead         time.Duration
	pollInterval time.Duration
	digestTime   string
	now          func() time.Time

	mu       sync.Mutex
	loops    map[string]chan struct{}
	stopChan chan struct{}
	running  bool
}

func newReminderScheduler(
	store contract.ScheduleStore,
	dm contract.DataManager,
	messenger contract.Messenger,
	log *zap.Logger,
	opts Options,
) *reminderScheduler {
	return &reminderScheduler{
		store:        store,
		dm:           dm,
		messenger:    messenger,
		log:          log,
		lead:         opts.leadDuration(),
		pollInterval: opts.pollInterval(),
		digestTime:   opts.digestTime(),
		now:          opts.nowFunc(),
		loops:        make(map[string]chan struct{}),
		stopChan:     make(chan struct{}),
	}
}

// Start launches the digest loop and restores a polling loop for every user
// whose reminder flag survived the last shutdown.
func (s *reminderScheduler) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.mu.Unlock()

	s.log.Info("reminder scheduler starting",
		zap.Duration("poll_interval", s.pollInterval),
		zap.String("digest_time", s.digestTime))

	go s.digestLoop()

	for userID, schedule := range s.store.Schedules() {
		if schedule.ReminderEnabled {
			s.Enable(userID)
		}
	}
}

// Stop cancels every user loop and the digest loop.
func (s *reminderScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	s.running = false

	s.log.Info("reminder scheduler stopping")
	close(s.stopChan)

	for userID, stop := range s.loops {
		close(stop)
		delete(s.loops, userID)
	}
}

// Enable starts the user's polling loop. Enabling an already-enabled user is
// a no-op.
func (s *reminderScheduler) Enable(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.loops[userID]; ok {
		return
	}

	stop := make(chan struct{})
	s.loops[userID] = stop
	go s.userLoop(userID, stop)

	s.log.Info("reminder loop started", zap.String("user_id", userID))
}

// Disable cancels the user's polling loop. Cancelling an absent loop is a
// no-op, so the call is idempotent.
func (s *reminderScheduler) Disable(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stop, ok := s.loops[userID]
	if !ok {
		return
	}

	close(stop)
	delete(s.loops, userID)

	s.log.Info("reminder loop stopped", zap.String("user_id", userID))
}

func (s *reminderScheduler) userLoop(userID string, stop chan struct{}) {
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	// evaluate once right away, then on every tick
	s.pollUser(userID)

	for {
		select {
		case <-ticker.C:
			s.pollUser(userID)
		case <-stop:
			return
		case <-s.stopChan:
			return
		}
	}
}

// pollUser evaluates the user's courses against the current reminder window
// and delivers at most one reminder per (course slot, calendar date). A
// failed send is not recorded in the ledger, so the next poll retries it
// while the window is still open.
func (s *reminderScheduler) pollUser(userID string) {
	schedule, ok := s.store.Schedule(userID)
	if !ok || !schedule.ReminderEnabled {
		return
	}

	now := s.now()
	cfg := s.store.Semester()
	firedOn := now.Format("2006-01-02")

	for _, course := range schedule.Courses {
		if !ActiveNow(course, now, cfg, s.lead) {
			continue
		}

		fired, err := s.dm.Delivery().Exists(userID, course.Week, course.Weekday, course.Period, firedOn)
		if err != nil {
			s.log.Error("failed to check delivery ledger",
				zap.String("user_id", userID), zap.Error(err))
			continue
		}
		if fired {
			continue
		}

		if err := s.sendReminder(userID, course, firedOn); err != nil {
			s.log.Error("failed to deliver reminder",
				zap.String("user_id", userID),
				zap.String("course", course.Name),
				zap.Error(err))
		}
	}
}

func (s *reminderScheduler) sendReminder(userID string, course entity.Course, firedOn string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.messenger.SendPrivate(ctx, userID, reminderMessage(course)); err != nil {
		return fmt.Errorf("failed to send reminder: %w", err)
	}

	delivery := &entity.Delivery{
		UserID:  userID,
		Week:    course.Week,
		Weekday: course.Weekday,
		Period:  course.Period,
		FiredOn: firedOn,
	}
	if err := s.dm.Delivery().Record(delivery); err != nil {
		return fmt.Errorf("failed to record delivery: %w", err)
	}

	s.log.Info("reminder delivered",
		zap.String("user_id", userID),
		zap.String("course", course.Name),
		zap.Int("period", course.Period))

	return nil
}

// digestLoop sleeps until the next occurrence of the configured digest time,
// sends every enabled user tomorrow's courses, then cools down a minute so
// the same occurrence cannot fire twice.
func (s *reminderScheduler) digestLoop() {
	for {
		next, err := s.nextDigestTime(s.now())
		if err != nil {
			s.log.Error("invalid digest time, digest loop disabled",
				zap.String("digest_time", s.digestTime), zap.Error(err))
			return
		}

		timer := time.NewTimer(time.Until(next))

		select {
		case <-timer.C:
			s.sendDigests()
			s.purgeLedger()

			cooldown := time.NewTimer(domain.DigestCooldown)
			select {
			case <-cooldown.C:
			case <-s.stopChan:
				cooldown.Stop()
				return
			}

		case <-s.stopChan:
			timer.Stop()
			return
		}
	}
}

// nextDigestTime computes the next wall-clock occurrence of the configured
// "HH:MM" after now.
func (s *reminderScheduler) nextDigestTime(now time.Time) (time.Time, error) {
	parts := strings.Split(s.digestTime, ":")
	if len(parts) != 2 {
		return time.Time{}, fmt.Errorf("invalid digest time format: %s", s.digestTime)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return time.Time{}, fmt.Errorf("invalid hour in digest time: %s", parts[0])
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return time.Time{}, fmt.Errorf("invalid minute in digest time: %s", parts[1])
	}

	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}

	return next, nil
}

func (s *reminderScheduler) sendDigests() {
	now := s.now()
	cfg := s.store.Semester()

	for userID, schedule := range s.store.Schedules() {
		if !schedule.ReminderEnabled {
			continue
		}

		tomorrow := TomorrowCourses(schedule.Courses, now, cfg)
		if len(tomorrow) == 0 {
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err := s.messenger.SendPrivate(ctx, userID, digestMessage(tomorrow))
		cancel()
		if err != nil {
			s.log.Error("failed to deliver daily digest",
				zap.String("user_id", userID), zap.Error(err))
			continue
		}

		s.log.Info("daily digest delivered",
			zap.String("user_id", userID), zap.Int("courses", len(tomorrow)))
	}
}

func (s *reminderScheduler) purgeLedger() {
	cutoff := s.now().AddDate(0, 0, -ledgerRetentionDays).Format("2006-01-02")

	removed, err := s.dm.Delivery().PurgeBefore(cutoff)
	if err != nil {
		s.log.Error("failed to purge delivery ledger", zap.Error(err))
		return
	}
	if removed > 0 {
		s.log.Info("delivery ledger purged", zap.Int64("rows", removed))
	}
}

// compile-time interface check
var _ contract.ReminderRegistry = (*reminderScheduler)(nil)

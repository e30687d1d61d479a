// Package storage persists the plugin's state as three JSON documents under
// one data directory: courses.json (user id -> schedule), reminder_status.json
// (user id -> bool) and semester_config.json (single object). Every save
// replaces the whole document through a temp file and rename; a missing file
// is empty state and a corrupt one falls back to defaults.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/teheiw192/kcjqr/internal/domain/contract"
	"github.com/teheiw192/kcjqr/internal/domain/entity"
)

const (
	coursesFile  = "courses.json"
	statusFile   = "reminder_status.json"
	semesterFile = "semester_config.json"
)

// Store is the single owner of all shared schedule state. The message
// handling path and the reminder loops go through it; readers always get
// copies, so no caller ever iterates live state.
type Store struct {
	dir string
	log *zap.Logger

	mu        sync.RWMutex
	schedules map[string]*entity.Schedule
	semester  *entity.SemesterConfig
}

func New(dir string, log *zap.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	s := &Store{
		dir:       dir,
		log:       log,
		schedules: make(map[string]*entity.Schedule),
	}
	s.load()

	return s, nil
}

// load reads all three documents. Any failure is logged and leaves the
// in-memory defaults in place; a half-readable deployment still starts.
func (s *Store) load() {
	if err := s.readDoc(coursesFile, &s.schedules); err != nil {
		s.log.Error("failed to load course data", zap.Error(err))
	}
	if s.schedules == nil { // a literal "null" document decodes to a nil map
		s.schedules = make(map[string]*entity.Schedule)
	}

	status := make(map[string]bool)
	if err := s.readDoc(statusFile, &status); err != nil {
		s.log.Error("failed to load reminder status", zap.Error(err))
	}
	for userID, enabled := range status {
		if schedule, ok := s.schedules[userID]; ok {
			schedule.ReminderEnabled = enabled
		}
	}

	var semester entity.SemesterConfig
	if err := s.readDoc(semesterFile, &semester); err != nil {
		s.log.Error("failed to load semester config", zap.Error(err))
	} else if semester.StartDate != "" {
		s.semester = &semester
	}
}

func (s *Store) readDoc(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil // absent file means empty state
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return nil
}

// writeDoc replaces the named document atomically. The previous on-disk
// state survives any failure before the rename.
func (s *Store) writeDoc(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}

	path := filepath.Join(s.dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", name, err)
	}
	return nil
}

func (s *Store) saveCoursesLocked() error {
	return s.writeDoc(coursesFile, s.schedules)
}

func (s *Store) saveStatusLocked() error {
	status := make(map[string]bool, len(s.schedules))
	for userID, schedule := range s.schedules {
		status[userID] = schedule.ReminderEnabled
	}
	return s.writeDoc(statusFile, status)
}

func (s *Store) saveSemesterLocked() error {
	if s.semester == nil {
		return nil
	}
	return s.writeDoc(semesterFile, s.semester)
}

func (s *Store) Schedule(userID string) (*entity.Schedule, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	schedule, ok := s.schedules[userID]
	if !ok {
		return nil, false
	}
	return copySchedule(schedule), true
}

func (s *Store) SetSchedule(userID string, schedule *entity.Schedule) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.schedules[userID] = copySchedule(schedule)

	if err := s.saveCoursesLocked(); err != nil {
		return err
	}
	return s.saveStatusLocked()
}

func (s *Store) DeleteSchedule(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.schedules[userID]; !ok {
		return nil
	}
	delete(s.schedules, userID)

	if err := s.saveCoursesLocked(); err != nil {
		return err
	}
	return s.saveStatusLocked()
}

func (s *Store) Schedules() map[string]*entity.Schedule {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make(map[string]*entity.Schedule, len(s.schedules))
	for userID, schedule := range s.schedules {
		snapshot[userID] = copySchedule(schedule)
	}
	return snapshot
}

func (s *Store) SetReminderEnabled(userID string, enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	schedule, ok := s.schedules[userID]
	if !ok {
		return fmt.Errorf("no schedule stored for user %s", userID)
	}
	schedule.ReminderEnabled = enabled

	if err := s.saveCoursesLocked(); err != nil {
		return err
	}
	return s.saveStatusLocked()
}

func (s *Store) ReminderEnabled(userID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	schedule, ok := s.schedules[userID]
	return ok && schedule.ReminderEnabled
}

func (s *Store) Semester() *entity.SemesterConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.semester == nil {
		return nil
	}
	cfg := *s.semester
	return &cfg
}

func (s *Store) SetSemester(cfg *entity.SemesterConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *cfg
	s.semester = &copied

	return s.saveSemesterLocked()
}

// Flush writes every document. Used on shutdown so no in-memory state is
// lost across restarts.
func (s *Store) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.saveCoursesLocked(); err != nil {
		return err
	}
	if err := s.saveStatusLocked(); err != nil {
		return err
	}
	return s.saveSemesterLocked()
}

func copySchedule(schedule *entity.Schedule) *entity.Schedule {
	copied := *schedule
	copied.Courses = make([]entity.Course, len(schedule.Courses))
	copy(copied.Courses, schedule.Courses)
	return &copied
}

// compile-time interface check
var _ contract.ScheduleStore = (*Store)(nil)

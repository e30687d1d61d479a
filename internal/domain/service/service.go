package service

import (
	"go.uber.org/zap"

	"github.com/teheiw192/kcjqr/internal/domain/contract"
)

type Services struct {
	Course   contract.CourseService
	Reminder *reminderScheduler
}

func New(
	store contract.ScheduleStore,
	dm contract.DataManager,
	messenger contract.Messenger,
	courseParser contract.CourseParser,
	log *zap.Logger,
	opts Options,
) *Services {
	reminder := newReminderScheduler(store, dm, messenger, log, opts)

	return &Services{
		Course:   newCourseService(store, courseParser, reminder, messenger, log, opts),
		Reminder: reminder,
	}
}

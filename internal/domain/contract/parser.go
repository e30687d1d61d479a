package contract

import (
	"context"

	"github.com/teheiw192/kcjqr/internal/domain/entity"
)

// CourseParser turns free-form schedule text into the canonical
// week/weekday/period representation. The window evaluator and scheduler
// behave identically regardless of which parser populated the schedule.
type CourseParser interface {
	Parse(ctx context.Context, text string) (*entity.Schedule, error)
}

package parser

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/teheiw192/kcjqr/internal/domain/contract"
	"github.com/teheiw192/kcjqr/internal/domain/entity"
)

// Fallback tries the line grammar first and only calls the AI service when
// the text is unrecognized by it.
type Fallback struct {
	primary   contract.CourseParser
	secondary contract.CourseParser
	log       *zap.Logger
}

func NewFallback(primary, secondary contract.CourseParser, log *zap.Logger) *Fallback {
	return &Fallback{primary: primary, secondary: secondary, log: log}
}

func (p *Fallback) Parse(ctx context.Context, text string) (*entity.Schedule, error) {
	schedule, err := p.primary.Parse(ctx, text)
	if err == nil {
		return schedule, nil
	}

	if p.secondary == nil || !errors.Is(err, ErrUnrecognized) {
		return nil, err
	}

	p.log.Info("text parser failed, falling back to parsing service", zap.Error(err))
	return p.secondary.Parse(ctx, text)
}

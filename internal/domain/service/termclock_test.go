package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/teheiw192/kcjqr/internal/domain/entity"
)

func TestCurrentWeek(t *testing.T) {
	cfg := &entity.SemesterConfig{StartDate: "2024-09-01", TotalWeeks: 16}

	type args struct {
		now time.Time
		cfg *entity.SemesterConfig
	}
	tests := []struct {
		name     string
		args     args
		wantWeek int
		wantOK   bool
	}{
		{
			name:     "Should return week 1 on the start date",
			args:     args{now: time.Date(2024, 9, 1, 0, 0, 0, 0, time.Local), cfg: cfg},
			wantWeek: 1,
			wantOK:   true,
		},
		{
			name:     "Should return week 1 on the last day of the first week",
			args:     args{now: time.Date(2024, 9, 7, 23, 59, 0, 0, time.Local), cfg: cfg},
			wantWeek: 1,
			wantOK:   true,
		},
		{
			name:     "Should return week 2 exactly seven days in",
			args:     args{now: time.Date(2024, 9, 8, 0, 0, 0, 0, time.Local), cfg: cfg},
			wantWeek: 2,
			wantOK:   true,
		},
		{
			name:     "Should return week 16 on the last day of the term",
			args:     args{now: time.Date(2024, 9, 1, 0, 0, 0, 0, time.Local).AddDate(0, 0, 16*7-1), cfg: cfg},
			wantWeek: 16,
			wantOK:   true,
		},
		{
			name:   "Should be out of range the day before the term starts",
			args:   args{now: time.Date(2024, 8, 31, 23, 0, 0, 0, time.Local), cfg: cfg},
			wantOK: false,
		},
		{
			name:   "Should be out of range once total weeks have elapsed",
			args:   args{now: time.Date(2024, 9, 1, 0, 0, 0, 0, time.Local).AddDate(0, 0, 16*7), cfg: cfg},
			wantOK: false,
		},
		{
			name:   "Should be out of range seventeen weeks in",
			args:   args{now: time.Date(2024, 9, 1, 8, 0, 0, 0, time.Local).AddDate(0, 0, 17*7), cfg: cfg},
			wantOK: false,
		},
		{
			name:   "Should be out of range without a semester config",
			args:   args{now: time.Date(2024, 9, 2, 8, 0, 0, 0, time.Local), cfg: nil},
			wantOK: false,
		},
		{
			name:   "Should be out of range with an unparseable start date",
			args:   args{now: time.Date(2024, 9, 2, 8, 0, 0, 0, time.Local), cfg: &entity.SemesterConfig{StartDate: "soon", TotalWeeks: 16}},
			wantOK: false,
		},
		{
			name:   "Should be out of range with zero total weeks",
			args:   args{now: time.Date(2024, 9, 2, 8, 0, 0, 0, time.Local), cfg: &entity.SemesterConfig{StartDate: "2024-09-01"}},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			week, ok := CurrentWeek(tt.args.now, tt.args.cfg)

			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantWeek, week)
			}
		})
	}
}

func TestCurrentWeek_Monotonic(t *testing.T) {
	cfg := &entity.SemesterConfig{StartDate: "2024-09-01", TotalWeeks: 16}

	// Week numbers never decrease as now advances through the whole term,
	// sampled every six hours.
	prev := 0
	now := time.Date(2024, 9, 1, 0, 0, 0, 0, time.Local)
	end := now.AddDate(0, 0, 16*7)

	for now.Before(end) {
		week, ok := CurrentWeek(now, cfg)
		if ok {
			assert.GreaterOrEqual(t, week, prev, "week regressed at %v", now)
			prev = week
		}
		now = now.Add(6 * time.Hour)
	}

	assert.Equal(t, 16, prev)
}

func TestISOWeekday(t *testing.T) {
	// 2024-09-02 is a Monday, 2024-09-08 a Sunday
	assert.Equal(t, 1, ISOWeekday(time.Date(2024, 9, 2, 12, 0, 0, 0, time.Local)))
	assert.Equal(t, 6, ISOWeekday(time.Date(2024, 9, 7, 12, 0, 0, 0, time.Local)))
	assert.Equal(t, 7, ISOWeekday(time.Date(2024, 9, 8, 12, 0, 0, 0, time.Local)))
}

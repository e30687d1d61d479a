// Package parser normalizes free-form schedule text into the canonical
// week/weekday/period course representation. Two parsers exist: the line
// grammar below and an optional AI service client; both produce the same
// document, so everything downstream is parser-agnostic.
package parser

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/teheiw192/kcjqr/internal/domain/entity"
)

// ErrUnrecognized reports text that does not match the course-line grammar.
// The caller replies to the user and leaves the stored schedule unchanged.
var ErrUnrecognized = errors.New("schedule text did not match the expected format")

var weekdayChars = []string{"一", "二", "三", "四", "五", "六", "日"}

// TextParser parses the line grammar of the original plugin:
//
//	学期开始日期：2024-09-01
//	总周数：16
//	第1周 星期一 第1节 高等数学
//	地点：教学楼A101
//	教师：张老师
//
// Course lines start a record; 地点/教师 lines attach to the most recent one.
type TextParser struct{}

func NewTextParser() *TextParser {
	return &TextParser{}
}

func (p *TextParser) Parse(_ context.Context, text string) (*entity.Schedule, error) {
	schedule := &entity.Schedule{}

	var current *entity.Course
	flush := func() {
		if current != nil {
			schedule.Courses = append(schedule.Courses, *current)
			current = nil
		}
	}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		switch {
		case strings.Contains(line, "学期开始日期"):
			schedule.BasicInfo.StartDate = valueAfterColon(line)

		case strings.Contains(line, "总周数"):
			weeks, err := strconv.Atoi(valueAfterColon(line))
			if err != nil {
				return nil, fmt.Errorf("%w: invalid total weeks line %q", ErrUnrecognized, line)
			}
			schedule.BasicInfo.TotalWeeks = weeks

		case isCourseLine(line):
			flush()
			course, err := parseCourseLine(line)
			if err != nil {
				return nil, err
			}
			current = course

		case current != nil && strings.Contains(line, "地点"):
			current.Location = valueAfterColon(line)

		case current != nil && strings.Contains(line, "教师"):
			current.Teacher = valueAfterColon(line)
		}
	}
	flush()

	if len(schedule.Courses) == 0 {
		return nil, ErrUnrecognized
	}

	return schedule, nil
}

func isCourseLine(line string) bool {
	return strings.Contains(line, "第") && strings.Contains(line, "周") && strings.Contains(line, "星期")
}

// parseCourseLine decodes "第N周 星期X 第K节 NAME".
func parseCourseLine(line string) (*entity.Course, error) {
	parts := strings.Fields(line)
	if len(parts) < 4 {
		return nil, fmt.Errorf("%w: incomplete course line %q", ErrUnrecognized, line)
	}

	week, err := numberBetween(parts[0], "第", "周")
	if err != nil {
		return nil, fmt.Errorf("%w: invalid week in %q", ErrUnrecognized, line)
	}

	weekday := weekdayFromName(strings.TrimPrefix(parts[1], "星期"))
	if weekday == 0 {
		return nil, fmt.Errorf("%w: invalid weekday in %q", ErrUnrecognized, line)
	}

	period, err := numberBetween(parts[2], "第", "节")
	if err != nil {
		return nil, fmt.Errorf("%w: invalid period in %q", ErrUnrecognized, line)
	}

	if week < 1 || period < 1 {
		return nil, fmt.Errorf("%w: week and period must be positive in %q", ErrUnrecognized, line)
	}

	return &entity.Course{
		Week:    week,
		Weekday: weekday,
		Period:  period,
		Name:    strings.Join(parts[3:], " "),
	}, nil
}

func numberBetween(s, prefix, suffix string) (int, error) {
	s = strings.TrimPrefix(s, prefix)
	s = strings.TrimSuffix(s, suffix)
	return strconv.Atoi(s)
}

func weekdayFromName(name string) int {
	for i, c := range weekdayChars {
		if name == c {
			return i + 1
		}
	}
	if name == "天" { // 星期天 is common for Sunday alongside 星期日
		return 7
	}
	return 0
}

// valueAfterColon returns the trimmed text after the first full-width or
// ASCII colon.
func valueAfterColon(line string) string {
	if _, after, ok := strings.Cut(line, "："); ok {
		return strings.TrimSpace(after)
	}
	if _, after, ok := strings.Cut(line, ":"); ok {
		return strings.TrimSpace(after)
	}
	return ""
}

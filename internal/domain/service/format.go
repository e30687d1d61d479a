package service

import (
	"fmt"
	"strings"

	"github.com/teheiw192/kcjqr/internal/domain"
	"github.com/teheiw192/kcjqr/internal/domain/entity"
)

// FormatSchedule renders a stored schedule the way it is echoed back to the
// user after import and by the list command.
func FormatSchedule(schedule *entity.Schedule) string {
	var b strings.Builder

	if schedule.BasicInfo.StartDate != "" || schedule.BasicInfo.TotalWeeks > 0 {
		fmt.Fprintf(&b, "学期开始日期：%s\n", schedule.BasicInfo.StartDate)
		fmt.Fprintf(&b, "总周数：%d\n\n", schedule.BasicInfo.TotalWeeks)
	}

	b.WriteString("课程信息：\n")
	for _, course := range schedule.Courses {
		fmt.Fprintf(&b, "第%d周 星期%s 第%d节 %s\n",
			course.Week, domain.WeekdayNames[course.Weekday], course.Period, course.Name)
		fmt.Fprintf(&b, "时间：%s\n", course.TimeRange())
		fmt.Fprintf(&b, "地点：%s\n", course.Location)
		fmt.Fprintf(&b, "教师：%s\n\n", course.Teacher)
	}

	return b.String()
}

// FormatConflicts renders detected slot conflicts for the user reply.
func FormatConflicts(conflicts []entity.Conflict) string {
	var b strings.Builder
	b.WriteString("发现课程冲突：\n")
	for _, c := range conflicts {
		fmt.Fprintf(&b, "\n%s 与 %s 在第%d周 星期%s 第%d节 冲突\n",
			c.First.Name, c.Second.Name,
			c.First.Week, domain.WeekdayNames[c.First.Weekday], c.First.Period)
	}
	return b.String()
}

func reminderMessage(course entity.Course) string {
	var b strings.Builder
	fmt.Fprintf(&b, "课程提醒：\n%s\n", course.Name)
	fmt.Fprintf(&b, "时间：%s\n", course.TimeRange())
	fmt.Fprintf(&b, "地点：%s\n", course.Location)
	fmt.Fprintf(&b, "教师：%s", course.Teacher)
	return b.String()
}

func digestMessage(courses []entity.Course) string {
	var b strings.Builder
	b.WriteString("明日课程提醒：\n")
	for _, course := range courses {
		fmt.Fprintf(&b, "\n%s\n", course.Name)
		fmt.Fprintf(&b, "时间：%s\n", course.TimeRange())
		fmt.Fprintf(&b, "地点：%s\n", course.Location)
		fmt.Fprintf(&b, "教师：%s\n", course.Teacher)
	}
	return b.String()
}

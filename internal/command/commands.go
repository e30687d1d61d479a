// Package command parses the plugin's textual command surface. Commands are
// lines starting with "/"; anything else is treated as schedule text.
package command

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdHelp            CommandType = "help"
	CmdSetSemester     CommandType = "set_semester"
	CmdListCourses     CommandType = "list_courses"
	CmdClearCourses    CommandType = "clear_courses"
	CmdEnableReminder  CommandType = "enable_reminder"
	CmdDisableReminder CommandType = "disable_reminder"
	CmdToggleReminder  CommandType = "toggle_reminder"
	CmdTestReminder    CommandType = "test_reminder"
	CmdBackup          CommandType = "backup"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

// IsCommand reports whether the text addresses the command surface.
func IsCommand(text string) bool {
	return strings.HasPrefix(strings.TrimSpace(text), "/")
}

func ParseCommand(text string) (*Command, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(text), "/")
	parts := strings.Fields(trimmed)
	if len(parts) == 0 {
		return nil, fmt.Errorf("empty command")
	}

	cmd := &Command{
		Raw:  text,
		Args: parts[1:],
	}

	switch parts[0] {
	case "help":
		cmd.Type = CmdHelp
	case "set_semester":
		cmd.Type = CmdSetSemester
	case "list_courses", "show_courses":
		cmd.Type = CmdListCourses
	case "clear_courses":
		cmd.Type = CmdClearCourses
	case "enable_reminder":
		cmd.Type = CmdEnableReminder
	case "disable_reminder":
		cmd.Type = CmdDisableReminder
	case "toggle_reminder":
		cmd.Type = CmdToggleReminder
	case "test_reminder":
		cmd.Type = CmdTestReminder
	case "backup":
		cmd.Type = CmdBackup
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

func HelpText() string {
	return `课程提醒插件使用说明：
1. 发送课程信息（文字格式），例如：
   第1周 星期一 第1节 高等数学
   地点：教学楼A101
   教师：张老师
2. /set_semester <开始日期> <总周数> 设置学期信息
3. /list_courses 查看课程信息
4. /clear_courses 清除课程信息
5. /enable_reminder 开启提醒，/disable_reminder 关闭提醒
6. /toggle_reminder 切换提醒开关
7. /test_reminder 测试提醒功能
8. /backup 备份数据`
}

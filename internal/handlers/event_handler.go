package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/teheiw192/kcjqr/internal/command"
	"github.com/teheiw192/kcjqr/internal/domain/contract"
	"github.com/teheiw192/kcjqr/internal/domain/service"
	"github.com/teheiw192/kcjqr/internal/parser"
)

const (
	replyMediaRejected = "请使用文字格式发送课程信息，或使用其他AI识别图片/文件中的课程信息。"
	replyNoSchedule    = "请先发送课程信息。"
	replyParseFailed   = "解析课程信息失败，请检查格式是否正确。"
	replyUnknownCmd    = "未知命令。"
)

// EventHandler receives OneBot v11 events over HTTP and turns private text
// messages into command replies or schedule imports.
type EventHandler struct {
	courseService contract.CourseService
	messenger     contract.Messenger
	log           *zap.Logger
}

func New(courseService contract.CourseService, messenger contract.Messenger, log *zap.Logger) *EventHandler {
	return &EventHandler{
		courseService: courseService,
		messenger:     messenger,
		log:           log,
	}
}

func (h *EventHandler) RegisterRoutes(r *gin.Engine) {
	r.POST("/onebot", h.HandleEvent)
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
}

type messageSegment struct {
	Type string            `json:"type"`
	Data map[string]string `json:"data"`
}

type inboundEvent struct {
	PostType    string          `json:"post_type"`
	MessageType string          `json:"message_type"`
	UserID      int64           `json:"user_id"`
	Message     json.RawMessage `json:"message"`
	RawMessage  string          `json:"raw_message"`
}

func (h *EventHandler) HandleEvent(c *gin.Context) {
	var event inboundEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event payload"})
		return
	}

	// Only private message events carry schedule text or commands.
	if event.PostType != "message" || event.MessageType != "private" {
		c.Status(http.StatusNoContent)
		return
	}

	userID := strconv.FormatInt(event.UserID, 10)
	text, hasMedia := extractText(event)

	reply := h.dispatch(c.Request.Context(), userID, text, hasMedia)
	if reply == "" {
		c.Status(http.StatusNoContent)
		return
	}

	if err := h.messenger.SendPrivate(c.Request.Context(), userID, reply); err != nil {
		h.log.Error("failed to send reply",
			zap.String("user_id", userID), zap.Error(err))
	}

	c.Status(http.StatusNoContent)
}

// extractText flattens the event's message segments into plain text and
// reports whether any image or file segment was present.
func extractText(event inboundEvent) (string, bool) {
	var segments []messageSegment
	if err := json.Unmarshal(event.Message, &segments); err != nil {
		// Some OneBot implementations deliver the message as a plain string.
		var raw string
		if err := json.Unmarshal(event.Message, &raw); err != nil {
			raw = event.RawMessage
		}
		return strings.TrimSpace(raw), false
	}

	var b strings.Builder
	hasMedia := false
	for _, segment := range segments {
		switch segment.Type {
		case "text":
			b.WriteString(segment.Data["text"])
		case "image", "file":
			hasMedia = true
		}
	}

	return strings.TrimSpace(b.String()), hasMedia
}

func (h *EventHandler) dispatch(ctx context.Context, userID, text string, hasMedia bool) string {
	if hasMedia {
		return replyMediaRejected
	}
	if text == "" {
		return ""
	}

	if command.IsCommand(text) {
		return h.handleCommand(ctx, userID, text)
	}

	return h.handleScheduleText(ctx, userID, text)
}

func (h *EventHandler) handleCommand(ctx context.Context, userID, text string) string {
	cmd, err := command.ParseCommand(text)
	if err != nil {
		return replyUnknownCmd
	}

	switch cmd.Type {
	case command.CmdHelp:
		return command.HelpText()
	case command.CmdSetSemester:
		return h.handleSetSemester(cmd)
	case command.CmdListCourses:
		return h.handleListCourses(userID)
	case command.CmdClearCourses:
		return h.handleClearCourses(userID)
	case command.CmdEnableReminder:
		return h.handleEnableReminder(userID)
	case command.CmdDisableReminder:
		return h.handleDisableReminder(userID)
	case command.CmdToggleReminder:
		return h.handleToggleReminder(userID)
	case command.CmdTestReminder:
		return h.handleTestReminder(ctx, userID)
	case command.CmdBackup:
		return h.handleBackup()
	default:
		return replyUnknownCmd
	}
}

func (h *EventHandler) handleSetSemester(cmd *command.Command) string {
	if len(cmd.Args) != 2 {
		return "请使用正确的格式：/set_semester <开始日期> <总周数>"
	}

	totalWeeks, err := strconv.Atoi(cmd.Args[1])
	if err != nil {
		return fmt.Sprintf("设置学期信息失败：总周数必须是数字，收到 %s", cmd.Args[1])
	}

	cfg, err := h.courseService.SetSemester(cmd.Args[0], totalWeeks)
	if err != nil {
		return fmt.Sprintf("设置学期信息失败：%v", err)
	}

	return fmt.Sprintf("学期信息设置成功：\n开始日期：%s\n总周数：%d", cfg.StartDate, cfg.TotalWeeks)
}

func (h *EventHandler) handleListCourses(userID string) string {
	schedule, ok := h.courseService.ListCourses(userID)
	if !ok {
		return replyNoSchedule
	}
	return service.FormatSchedule(schedule)
}

func (h *EventHandler) handleClearCourses(userID string) string {
	if err := h.courseService.ClearCourses(userID); err != nil {
		h.log.Error("failed to clear courses", zap.String("user_id", userID), zap.Error(err))
		return fmt.Sprintf("清除课程信息失败：%v", err)
	}
	return "课程信息已清除。"
}

func (h *EventHandler) handleEnableReminder(userID string) string {
	err := h.courseService.EnableReminder(userID)
	if errors.Is(err, service.ErrNoSchedule) {
		return replyNoSchedule
	}
	if err != nil {
		h.log.Error("failed to enable reminder", zap.String("user_id", userID), zap.Error(err))
		return fmt.Sprintf("开启提醒失败：%v", err)
	}
	return "课程提醒已开启。"
}

func (h *EventHandler) handleDisableReminder(userID string) string {
	err := h.courseService.DisableReminder(userID)
	if errors.Is(err, service.ErrNoSchedule) {
		return replyNoSchedule
	}
	if err != nil {
		h.log.Error("failed to disable reminder", zap.String("user_id", userID), zap.Error(err))
		return fmt.Sprintf("关闭提醒失败：%v", err)
	}
	return "课程提醒已关闭。"
}

func (h *EventHandler) handleToggleReminder(userID string) string {
	enabled, err := h.courseService.ToggleReminder(userID)
	if errors.Is(err, service.ErrNoSchedule) {
		return replyNoSchedule
	}
	if err != nil {
		h.log.Error("failed to toggle reminder", zap.String("user_id", userID), zap.Error(err))
		return fmt.Sprintf("切换提醒失败：%v", err)
	}
	if enabled {
		return "课程提醒已开启。"
	}
	return "课程提醒已关闭。"
}

func (h *EventHandler) handleTestReminder(ctx context.Context, userID string) string {
	sent, err := h.courseService.TestReminder(ctx, userID)
	if errors.Is(err, service.ErrNoSchedule) {
		return replyNoSchedule
	}
	if err != nil {
		h.log.Error("failed to send test reminder", zap.String("user_id", userID), zap.Error(err))
		return fmt.Sprintf("测试提醒发送失败：%v", err)
	}
	if sent == 0 {
		return "当前没有课程。"
	}
	return "测试提醒已发送。"
}

func (h *EventHandler) handleBackup() string {
	path, err := h.courseService.Backup()
	if err != nil {
		h.log.Error("failed to back up data", zap.Error(err))
		return fmt.Sprintf("备份数据失败：%v", err)
	}
	return fmt.Sprintf("数据备份成功：%s", path)
}

func (h *EventHandler) handleScheduleText(ctx context.Context, userID, text string) string {
	schedule, conflicts, err := h.courseService.ImportSchedule(ctx, userID, text)
	if err != nil {
		if errors.Is(err, parser.ErrUnrecognized) {
			return replyParseFailed
		}
		h.log.Error("failed to import schedule", zap.String("user_id", userID), zap.Error(err))
		return fmt.Sprintf("保存课程信息失败：%v", err)
	}

	if len(conflicts) > 0 {
		return service.FormatConflicts(conflicts)
	}

	return "课程信息已保存：\n" + service.FormatSchedule(schedule) + "\n使用 /enable_reminder 开启提醒功能。"
}

package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/teheiw192/kcjqr/internal/domain/entity"
	"github.com/teheiw192/kcjqr/internal/domain/service"
	"github.com/teheiw192/kcjqr/internal/parser"
	"github.com/teheiw192/kcjqr/mocks"
)

type handlerMocks struct {
	courseService *mocks.MockCourseService
	messenger     *mocks.MockMessenger
}

func newHandlerTest(t *testing.T) (*gin.Engine, handlerMocks, *gomock.Controller) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	m := handlerMocks{
		courseService: mocks.NewMockCourseService(ctrl),
		messenger:     mocks.NewMockMessenger(ctrl),
	}

	router := gin.New()
	New(m.courseService, m.messenger, zap.NewNop()).RegisterRoutes(router)

	return router, m, ctrl
}

// expectReply captures the text sent back to the user.
func expectReply(m handlerMocks, reply *string) {
	m.messenger.EXPECT().
		SendPrivate(gomock.Any(), "42", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, text string) error {
			*reply = text
			return nil
		})
}

func postEvent(t *testing.T, router *gin.Engine, payload string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/onebot", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func privateTextEvent(t *testing.T, text string) string {
	t.Helper()

	data, err := json.Marshal(map[string]any{
		"post_type":    "message",
		"message_type": "private",
		"user_id":      42,
		"message":      []map[string]any{{"type": "text", "data": map[string]string{"text": text}}},
	})
	require.NoError(t, err)
	return string(data)
}

func TestEventHandler_Health(t *testing.T) {
	router, _, ctrl := newHandlerTest(t)
	defer ctrl.Finish()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "OK", recorder.Body.String())
}

func TestEventHandler_IgnoresNonPrivateEvents(t *testing.T) {
	router, _, ctrl := newHandlerTest(t)
	defer ctrl.Finish()

	tests := []struct {
		name    string
		payload string
	}{
		{
			name:    "Should ignore heartbeat events",
			payload: `{"post_type": "meta_event"}`,
		},
		{
			name:    "Should ignore group messages",
			payload: `{"post_type": "message", "message_type": "group", "user_id": 42, "message": "hi"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := postEvent(t, router, tt.payload)

			assert.Equal(t, http.StatusNoContent, recorder.Code)
		})
	}
}

func TestEventHandler_RejectsMalformedPayload(t *testing.T) {
	router, _, ctrl := newHandlerTest(t)
	defer ctrl.Finish()

	recorder := postEvent(t, router, "{not json")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestEventHandler_RejectsMediaMessages(t *testing.T) {
	router, m, ctrl := newHandlerTest(t)
	defer ctrl.Finish()

	m.messenger.EXPECT().
		SendPrivate(gomock.Any(), "42", replyMediaRejected).
		Return(nil)

	payload := `{
		"post_type": "message", "message_type": "private", "user_id": 42,
		"message": [{"type": "image", "data": {"file": "photo.jpg"}}]
	}`
	recorder := postEvent(t, router, payload)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
}

func TestEventHandler_PlainStringMessage(t *testing.T) {
	router, m, ctrl := newHandlerTest(t)
	defer ctrl.Finish()

	// some OneBot implementations send the message as a bare string
	m.courseService.EXPECT().ListCourses("42").Return(nil, false)
	m.messenger.EXPECT().SendPrivate(gomock.Any(), "42", replyNoSchedule).Return(nil)

	payload := `{"post_type": "message", "message_type": "private", "user_id": 42, "message": "/list_courses"}`
	recorder := postEvent(t, router, payload)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
}

func TestEventHandler_Commands(t *testing.T) {
	schedule := &entity.Schedule{
		Courses: []entity.Course{{Week: 1, Weekday: 1, Period: 1, Name: "高等数学"}},
	}

	tests := []struct {
		name      string
		text      string
		expect    func(m handlerMocks)
		wantReply string
	}{
		{
			name:      "Should reply with help",
			text:      "/help",
			expect:    func(handlerMocks) {},
			wantReply: "使用说明",
		},
		{
			name: "Should set the semester",
			text: "/set_semester 2024-09-01 16",
			expect: func(m handlerMocks) {
				m.courseService.EXPECT().
					SetSemester("2024-09-01", 16).
					Return(&entity.SemesterConfig{StartDate: "2024-09-01", TotalWeeks: 16}, nil)
			},
			wantReply: "学期信息设置成功",
		},
		{
			name:      "Should demand both semester arguments",
			text:      "/set_semester 2024-09-01",
			expect:    func(handlerMocks) {},
			wantReply: "/set_semester <开始日期> <总周数>",
		},
		{
			name:      "Should demand a numeric week count",
			text:      "/set_semester 2024-09-01 sixteen",
			expect:    func(handlerMocks) {},
			wantReply: "总周数必须是数字",
		},
		{
			name: "Should list courses",
			text: "/list_courses",
			expect: func(m handlerMocks) {
				m.courseService.EXPECT().ListCourses("42").Return(schedule, true)
			},
			wantReply: "高等数学",
		},
		{
			name: "Should ask for a schedule before listing",
			text: "/list_courses",
			expect: func(m handlerMocks) {
				m.courseService.EXPECT().ListCourses("42").Return(nil, false)
			},
			wantReply: replyNoSchedule,
		},
		{
			name: "Should clear courses",
			text: "/clear_courses",
			expect: func(m handlerMocks) {
				m.courseService.EXPECT().ClearCourses("42").Return(nil)
			},
			wantReply: "课程信息已清除。",
		},
		{
			name: "Should enable reminders",
			text: "/enable_reminder",
			expect: func(m handlerMocks) {
				m.courseService.EXPECT().EnableReminder("42").Return(nil)
			},
			wantReply: "课程提醒已开启。",
		},
		{
			name: "Should ask for a schedule before enabling reminders",
			text: "/enable_reminder",
			expect: func(m handlerMocks) {
				m.courseService.EXPECT().EnableReminder("42").Return(service.ErrNoSchedule)
			},
			wantReply: replyNoSchedule,
		},
		{
			name: "Should disable reminders",
			text: "/disable_reminder",
			expect: func(m handlerMocks) {
				m.courseService.EXPECT().DisableReminder("42").Return(nil)
			},
			wantReply: "课程提醒已关闭。",
		},
		{
			name: "Should toggle reminders on",
			text: "/toggle_reminder",
			expect: func(m handlerMocks) {
				m.courseService.EXPECT().ToggleReminder("42").Return(true, nil)
			},
			wantReply: "课程提醒已开启。",
		},
		{
			name: "Should toggle reminders off",
			text: "/toggle_reminder",
			expect: func(m handlerMocks) {
				m.courseService.EXPECT().ToggleReminder("42").Return(false, nil)
			},
			wantReply: "课程提醒已关闭。",
		},
		{
			name: "Should confirm a delivered test reminder",
			text: "/test_reminder",
			expect: func(m handlerMocks) {
				m.courseService.EXPECT().TestReminder(gomock.Any(), "42").Return(1, nil)
			},
			wantReply: "测试提醒已发送。",
		},
		{
			name: "Should report no current courses for a test reminder",
			text: "/test_reminder",
			expect: func(m handlerMocks) {
				m.courseService.EXPECT().TestReminder(gomock.Any(), "42").Return(0, nil)
			},
			wantReply: "当前没有课程。",
		},
		{
			name: "Should back up data",
			text: "/backup",
			expect: func(m handlerMocks) {
				m.courseService.EXPECT().Backup().Return("/data/backup/backup_20240902_080000", nil)
			},
			wantReply: "数据备份成功：/data/backup/backup_20240902_080000",
		},
		{
			name:      "Should report unknown commands",
			text:      "/frobnicate",
			expect:    func(handlerMocks) {},
			wantReply: replyUnknownCmd,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m, ctrl := newHandlerTest(t)
			defer ctrl.Finish()

			tt.expect(m)

			var reply string
			expectReply(m, &reply)

			recorder := postEvent(t, router, privateTextEvent(t, tt.text))

			assert.Equal(t, http.StatusNoContent, recorder.Code)
			assert.Contains(t, reply, tt.wantReply)
		})
	}
}

func TestEventHandler_ScheduleText(t *testing.T) {
	text := "第1周 星期一 第1节 高等数学"

	t.Run("Should confirm a saved schedule", func(t *testing.T) {
		router, m, ctrl := newHandlerTest(t)
		defer ctrl.Finish()

		schedule := &entity.Schedule{
			Courses: []entity.Course{{Week: 1, Weekday: 1, Period: 1, Name: "高等数学"}},
		}
		m.courseService.EXPECT().
			ImportSchedule(gomock.Any(), "42", text).
			Return(schedule, nil, nil)

		var reply string
		expectReply(m, &reply)

		recorder := postEvent(t, router, privateTextEvent(t, text))

		assert.Equal(t, http.StatusNoContent, recorder.Code)
		assert.Contains(t, reply, "课程信息已保存")
		assert.Contains(t, reply, "/enable_reminder")
	})

	t.Run("Should report conflicts instead of saving", func(t *testing.T) {
		router, m, ctrl := newHandlerTest(t)
		defer ctrl.Finish()

		conflicts := []entity.Conflict{{
			First:  entity.Course{Week: 1, Weekday: 1, Period: 1, Name: "高等数学"},
			Second: entity.Course{Week: 1, Weekday: 1, Period: 1, Name: "大学英语"},
		}}
		m.courseService.EXPECT().
			ImportSchedule(gomock.Any(), "42", text).
			Return(nil, conflicts, nil)

		var reply string
		expectReply(m, &reply)

		recorder := postEvent(t, router, privateTextEvent(t, text))

		assert.Equal(t, http.StatusNoContent, recorder.Code)
		assert.Contains(t, reply, "课程冲突")
		assert.Contains(t, reply, "高等数学")
		assert.Contains(t, reply, "大学英语")
	})

	t.Run("Should explain unparseable text", func(t *testing.T) {
		router, m, ctrl := newHandlerTest(t)
		defer ctrl.Finish()

		m.courseService.EXPECT().
			ImportSchedule(gomock.Any(), "42", "随便聊聊").
			Return(nil, nil, parser.ErrUnrecognized)
		m.messenger.EXPECT().
			SendPrivate(gomock.Any(), "42", replyParseFailed).
			Return(nil)

		recorder := postEvent(t, router, privateTextEvent(t, "随便聊聊"))

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})
}

func TestEventHandler_ReplyFailureStillAccepts(t *testing.T) {
	router, m, ctrl := newHandlerTest(t)
	defer ctrl.Finish()

	m.courseService.EXPECT().ListCourses("42").Return(nil, false)
	m.messenger.EXPECT().
		SendPrivate(gomock.Any(), "42", replyNoSchedule).
		Return(errors.New("send failed"))

	recorder := postEvent(t, router, privateTextEvent(t, "/list_courses"))

	// delivery failures are logged, the webhook still acknowledges the event
	assert.Equal(t, http.StatusNoContent, recorder.Code)
}

func TestEventHandler_EmptyTextIsIgnored(t *testing.T) {
	router, _, ctrl := newHandlerTest(t)
	defer ctrl.Finish()

	recorder := postEvent(t, router, privateTextEvent(t, "   "))

	assert.Equal(t, http.StatusNoContent, recorder.Code)
}

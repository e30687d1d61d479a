package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/teheiw192/kcjqr/mocks"
)

type allMocks struct {
	mockStore        *mocks.MockScheduleStore
	mockDataManager  *mocks.MockDataManager
	mockDeliveryRepo *mocks.MockDeliveryRepo
	mockMessenger    *mocks.MockMessenger
	mockParser       *mocks.MockCourseParser
	mockRegistry     *mocks.MockReminderRegistry
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	deliveryRepo := mocks.NewMockDeliveryRepo(ctrl)
	dm.EXPECT().Delivery().Return(deliveryRepo).AnyTimes()

	m = allMocks{
		mockStore:        mocks.NewMockScheduleStore(ctrl),
		mockDataManager:  dm,
		mockDeliveryRepo: deliveryRepo,
		mockMessenger:    mocks.NewMockMessenger(ctrl),
		mockParser:       mocks.NewMockCourseParser(ctrl),
		mockRegistry:     mocks.NewMockReminderRegistry(ctrl),
	}

	return
}

func (m allMocks) newCourseService(t *testing.T, opts Options) *courseService {
	t.Helper()

	svc := newCourseService(m.mockStore, m.mockParser, m.mockRegistry, m.mockMessenger, zap.NewNop(), opts)
	require.NotNil(t, svc)
	return svc
}

func (m allMocks) newReminderScheduler(t *testing.T, opts Options) *reminderScheduler {
	t.Helper()

	s := newReminderScheduler(m.mockStore, m.mockDataManager, m.mockMessenger, zap.NewNop(), opts)
	require.NotNil(t, s)
	return s
}

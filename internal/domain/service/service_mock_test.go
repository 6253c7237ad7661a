package service

import (
	"testing"

	"github.com/diegoclair/meal-schedule-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager    *mocks.MockDataManager
	mockChannelRepo    *mocks.MockChannelRepo
	mockSchedulerRepo  *mocks.MockSchedulerRepo
	mockRemoteStore    *mocks.MockRemoteStore
	mockGridService    *mocks.MockGridService
	mockCatalogService *mocks.MockCatalogService
	mockRosterService  *mocks.MockRosterService
	mockSlackClient    *mocks.MockSlackClient
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	channelRepo := mocks.NewMockChannelRepo(ctrl)
	dm.EXPECT().Channel().Return(channelRepo).AnyTimes()

	schedulerRepo := mocks.NewMockSchedulerRepo(ctrl)
	dm.EXPECT().Scheduler().Return(schedulerRepo).AnyTimes()

	m = allMocks{
		mockDataManager:    dm,
		mockChannelRepo:    channelRepo,
		mockSchedulerRepo:  schedulerRepo,
		mockRemoteStore:    mocks.NewMockRemoteStore(ctrl),
		mockGridService:    mocks.NewMockGridService(ctrl),
		mockCatalogService: mocks.NewMockCatalogService(ctrl),
		mockRosterService:  mocks.NewMockRosterService(ctrl),
		mockSlackClient:    mocks.NewMockSlackClient(ctrl),
	}

	// validate service creation
	instance := NewInstance(dm, m.mockRemoteStore, m.mockSlackClient, Options{})
	require.NotNil(t, instance.Menu)

	return
}

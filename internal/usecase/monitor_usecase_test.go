package usecase

import (
	"context"
	"testing"
	"time"

	"eldercare-manager-api/internal/domain/entity"
	"eldercare-manager-api/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupMonitorUsecase(t *testing.T) (MonitorUsecase, *MockHealthDataRepository, *MockReminderRepository, *MockEmergencyCallRepository, *MockHealthDeviceRepository) {
	t.Helper()

	db, _ := newTestDB(t)
	log := newTestLogger()
	dataRepo := new(MockHealthDataRepository)
	reminderRepo := new(MockReminderRepository)
	emergencyRepo := new(MockEmergencyCallRepository)
	deviceRepo := new(MockHealthDeviceRepository)
	latestCache := service.NewLatestHealthCache(newTestRedis(t), log)

	uc := NewMonitorUsecase(db, log, dataRepo, reminderRepo, emergencyRepo, deviceRepo, latestCache)
	return uc, dataRepo, reminderRepo, emergencyRepo, deviceRepo
}

func TestMonitorData_WindowScalesWithDays(t *testing.T) {
	uc, dataRepo, reminderRepo, emergencyRepo, deviceRepo := setupMonitorUsecase(t)

	dataRepo.On("FindWindow", mock.Anything, int64(7), mock.Anything, mock.Anything, 3*samplesPerDayCap).
		Return([]entity.HealthData{}, nil)
	reminderRepo.On("FindWindowByUser", mock.Anything, int64(7), mock.Anything, mock.Anything, 3*remindersPerDayCap).
		Return([]entity.Reminder{}, nil)
	emergencyRepo.On("FindByUserID", mock.Anything, int64(7)).Return([]entity.EmergencyCall{}, nil)
	deviceRepo.On("FindConnectedByUserID", mock.Anything, int64(7)).Return([]entity.HealthDevice{}, nil)

	data, err := uc.GetMonitorData(context.Background(), 7, 3)

	require.NoError(t, err)
	assert.True(t, data.Success)
	assert.Equal(t, entity.DeviceStatusDisconnected, data.DeviceStatus)
	dataRepo.AssertExpectations(t)
	reminderRepo.AssertExpectations(t)
}

func TestMonitorData_DefaultsToSevenDays(t *testing.T) {
	uc, dataRepo, reminderRepo, emergencyRepo, deviceRepo := setupMonitorUsecase(t)

	dataRepo.On("FindWindow", mock.Anything, int64(7), mock.Anything, mock.Anything, 7*samplesPerDayCap).
		Return([]entity.HealthData{}, nil)
	reminderRepo.On("FindWindowByUser", mock.Anything, int64(7), mock.Anything, mock.Anything, 7*remindersPerDayCap).
		Return([]entity.Reminder{}, nil)
	emergencyRepo.On("FindByUserID", mock.Anything, int64(7)).Return([]entity.EmergencyCall{}, nil)
	deviceRepo.On("FindConnectedByUserID", mock.Anything, int64(7)).Return([]entity.HealthDevice{}, nil)

	_, err := uc.GetMonitorData(context.Background(), 7, 0)

	require.NoError(t, err)
	dataRepo.AssertExpectations(t)
	reminderRepo.AssertExpectations(t)
}

func TestMonitorData_FiltersClosedEmergencies(t *testing.T) {
	uc, dataRepo, reminderRepo, emergencyRepo, deviceRepo := setupMonitorUsecase(t)

	sampleTime := time.Now().Add(-time.Hour)
	dataRepo.On("FindWindow", mock.Anything, int64(7), mock.Anything, mock.Anything, mock.Anything).
		Return([]entity.HealthData{{ID: 1, UserID: 7, Timestamp: sampleTime}}, nil)
	reminderRepo.On("FindWindowByUser", mock.Anything, int64(7), mock.Anything, mock.Anything, mock.Anything).
		Return([]entity.Reminder{}, nil)
	emergencyRepo.On("FindByUserID", mock.Anything, int64(7)).Return([]entity.EmergencyCall{
		{ID: 1, Status: entity.EmergencyStatusTriggered},
		{ID: 2, Status: entity.EmergencyStatusResolved},
		{ID: 3, Status: entity.EmergencyStatusFalseAlarm},
		{ID: 4, Status: entity.EmergencyStatusCalling},
	}, nil)
	deviceRepo.On("FindConnectedByUserID", mock.Anything, int64(7)).
		Return([]entity.HealthDevice{{ID: 5, ConnectionStatus: entity.DeviceStatusConnected}}, nil)

	data, err := uc.GetMonitorData(context.Background(), 7, 1)

	require.NoError(t, err)
	require.Len(t, data.EmergencyCalls, 2)
	assert.Equal(t, int64(1), data.EmergencyCalls[0].ID)
	assert.Equal(t, int64(4), data.EmergencyCalls[1].ID)
	assert.Equal(t, entity.DeviceStatusConnected, data.DeviceStatus)
	assert.Equal(t, sampleTime.Format(timeLayout), data.LastActivity)
}

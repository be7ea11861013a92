package usecase

import (
	"context"
	"testing"
	"time"

	"eldercare-manager-api/internal/delivery/dto"
	"eldercare-manager-api/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupHealthDeviceUsecase(t *testing.T) (HealthDeviceUsecase, *MockHealthDeviceRepository) {
	t.Helper()

	db, _ := newTestDB(t)
	deviceRepo := new(MockHealthDeviceRepository)

	uc := NewHealthDeviceUsecase(db, newTestLogger(), deviceRepo)
	return uc, deviceRepo
}

func TestDevicePair_StartsInPairingState(t *testing.T) {
	uc, deviceRepo := setupHealthDeviceUsecase(t)

	deviceRepo.On("FindByMacAddress", mock.Anything, "AA:BB:CC:DD:EE:FF").Return(nil, nil)
	deviceRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.HealthDevice")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.HealthDevice).ID = 5
		}).
		Return(nil)

	resp, err := uc.Pair(context.Background(), &dto.PairDeviceRequest{
		UserID:     7,
		DeviceName: "Wrist Band",
		DeviceType: "wearable",
		MacAddress: "AA:BB:CC:DD:EE:FF",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.ID)
	assert.Equal(t, entity.DeviceStatusPairing, resp.ConnectionStatus)
	deviceRepo.AssertExpectations(t)
}

func TestDevicePair_MacAlreadyBound(t *testing.T) {
	uc, deviceRepo := setupHealthDeviceUsecase(t)

	deviceRepo.On("FindByMacAddress", mock.Anything, "AA:BB:CC:DD:EE:FF").
		Return(&entity.HealthDevice{ID: 3}, nil)

	_, err := uc.Pair(context.Background(), &dto.PairDeviceRequest{
		UserID:     7,
		DeviceName: "Wrist Band",
		DeviceType: "wearable",
		MacAddress: "AA:BB:CC:DD:EE:FF",
	})

	assert.ErrorIs(t, err, ErrMacAlreadyBound)
}

func TestDeviceConnect_TouchesSyncTime(t *testing.T) {
	uc, deviceRepo := setupHealthDeviceUsecase(t)

	deviceRepo.On("FindByID", mock.Anything, int64(5)).Return(&entity.HealthDevice{
		ID:               5,
		ConnectionStatus: entity.DeviceStatusPairing,
	}, nil)
	deviceRepo.On("Update", mock.Anything, mock.AnythingOfType("*entity.HealthDevice")).Return(nil)

	resp, err := uc.Connect(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, entity.DeviceStatusConnected, resp.ConnectionStatus)
	require.NotNil(t, resp.LastSyncTime)
	assert.WithinDuration(t, time.Now(), *resp.LastSyncTime, time.Second)
}

func TestDeviceDisconnect_LeavesSyncTimeAlone(t *testing.T) {
	uc, deviceRepo := setupHealthDeviceUsecase(t)

	deviceRepo.On("FindByID", mock.Anything, int64(5)).Return(&entity.HealthDevice{
		ID:               5,
		ConnectionStatus: entity.DeviceStatusConnected,
	}, nil)
	deviceRepo.On("Update", mock.Anything, mock.AnythingOfType("*entity.HealthDevice")).Return(nil)

	resp, err := uc.Disconnect(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, entity.DeviceStatusDisconnected, resp.ConnectionStatus)
	assert.Nil(t, resp.LastSyncTime)
}

func TestDeviceUpdateStatus_WithBattery(t *testing.T) {
	uc, deviceRepo := setupHealthDeviceUsecase(t)

	deviceRepo.On("FindByID", mock.Anything, int64(5)).Return(&entity.HealthDevice{
		ID:               5,
		ConnectionStatus: entity.DeviceStatusConnected,
	}, nil)
	deviceRepo.On("Update", mock.Anything, mock.AnythingOfType("*entity.HealthDevice")).Return(nil)

	resp, err := uc.UpdateStatus(context.Background(), 5, &dto.UpdateDeviceStatusRequest{
		Status:       entity.DeviceStatusDisconnected,
		BatteryLevel: intPtr(15),
	})

	require.NoError(t, err)
	assert.Equal(t, entity.DeviceStatusDisconnected, resp.ConnectionStatus)
	require.NotNil(t, resp.BatteryLevel)
	assert.Equal(t, 15, *resp.BatteryLevel)
}

func TestDeviceGetByMacAddress_NotFound(t *testing.T) {
	uc, deviceRepo := setupHealthDeviceUsecase(t)

	deviceRepo.On("FindByMacAddress", mock.Anything, "00:00:00:00:00:00").Return(nil, nil)

	_, err := uc.GetByMacAddress(context.Background(), "00:00:00:00:00:00")

	assert.ErrorIs(t, err, ErrDeviceNotFound)
}

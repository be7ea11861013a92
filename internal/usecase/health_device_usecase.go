package usecase

import (
	"context"
	"errors"
	"time"

	"eldercare-manager-api/internal/converter"
	"eldercare-manager-api/internal/delivery/dto"
	"eldercare-manager-api/internal/domain/entity"
	"eldercare-manager-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrMacAlreadyBound = errors.New("mac address already bound to a device")

type HealthDeviceUsecase interface {
	Pair(ctx context.Context, req *dto.PairDeviceRequest) (*dto.DeviceResponse, error)
	Connect(ctx context.Context, id int64) (*dto.DeviceResponse, error)
	Disconnect(ctx context.Context, id int64) (*dto.DeviceResponse, error)
	Sync(ctx context.Context, id int64) (*dto.DeviceResponse, error)
	UpdateStatus(ctx context.Context, id int64, req *dto.UpdateDeviceStatusRequest) (*dto.DeviceResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.DeviceResponse, error)
	GetUserDevices(ctx context.Context, userID int64) ([]dto.DeviceResponse, error)
	GetConnectedDevices(ctx context.Context, userID int64) ([]dto.DeviceResponse, error)
	GetByMacAddress(ctx context.Context, mac string) (*dto.DeviceResponse, error)
}

type healthDeviceUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	deviceRepo repository.HealthDeviceRepository
}

func NewHealthDeviceUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	deviceRepo repository.HealthDeviceRepository,
) HealthDeviceUsecase {
	return &healthDeviceUsecase{
		db:         db,
		log:        log,
		deviceRepo: deviceRepo,
	}
}

// Pair registers a new device for the user. It starts in the pairing
// state until the device reports a connection.
func (u *healthDeviceUsecase) Pair(ctx context.Context, req *dto.PairDeviceRequest) (*dto.DeviceResponse, error) {
	if req.MacAddress != "" {
		existing, err := u.deviceRepo.FindByMacAddress(u.db.WithContext(ctx), req.MacAddress)
		if err != nil {
			u.log.Warnf("Failed to check mac address: %+v", err)
			return nil, err
		}
		if existing != nil {
			return nil, ErrMacAlreadyBound
		}
	}

	device := &entity.HealthDevice{
		UserID:           req.UserID,
		AiAgentID:        req.AiAgentID,
		PluginID:         req.PluginID,
		DeviceName:       req.DeviceName,
		DeviceType:       req.DeviceType,
		DeviceBrand:      req.DeviceBrand,
		DeviceModel:      req.DeviceModel,
		MacAddress:       req.MacAddress,
		HealthFeatures:   req.HealthFeatures,
		SensorConfig:     req.SensorConfig,
		DataSyncConfig:   req.DataSyncConfig,
		ConnectionStatus: entity.DeviceStatusPairing,
		IsActive:         1,
	}

	if err := u.deviceRepo.Create(u.db.WithContext(ctx), device); err != nil {
		u.log.Warnf("Failed to create health device: %+v", err)
		return nil, err
	}

	return converter.HealthDeviceToResponse(device), nil
}

func (u *healthDeviceUsecase) Connect(ctx context.Context, id int64) (*dto.DeviceResponse, error) {
	return u.setStatus(ctx, id, entity.DeviceStatusConnected, true)
}

func (u *healthDeviceUsecase) Disconnect(ctx context.Context, id int64) (*dto.DeviceResponse, error) {
	return u.setStatus(ctx, id, entity.DeviceStatusDisconnected, false)
}

// Sync records a successful data sync; connected state is implied.
func (u *healthDeviceUsecase) Sync(ctx context.Context, id int64) (*dto.DeviceResponse, error) {
	return u.setStatus(ctx, id, entity.DeviceStatusConnected, true)
}

func (u *healthDeviceUsecase) setStatus(ctx context.Context, id int64, status string, touchSync bool) (*dto.DeviceResponse, error) {
	device, err := u.deviceRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find health device: %+v", err)
		return nil, err
	}
	if device == nil {
		return nil, ErrDeviceNotFound
	}

	device.ConnectionStatus = status
	if touchSync {
		now := time.Now()
		device.LastSyncTime = &now
	}

	if err := u.deviceRepo.Update(u.db.WithContext(ctx), device); err != nil {
		u.log.Warnf("Failed to update health device: %+v", err)
		return nil, err
	}

	return converter.HealthDeviceToResponse(device), nil
}

func (u *healthDeviceUsecase) UpdateStatus(ctx context.Context, id int64, req *dto.UpdateDeviceStatusRequest) (*dto.DeviceResponse, error) {
	device, err := u.deviceRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find health device: %+v", err)
		return nil, err
	}
	if device == nil {
		return nil, ErrDeviceNotFound
	}

	device.ConnectionStatus = req.Status
	if req.BatteryLevel != nil {
		device.BatteryLevel = req.BatteryLevel
	}

	if err := u.deviceRepo.Update(u.db.WithContext(ctx), device); err != nil {
		u.log.Warnf("Failed to update health device: %+v", err)
		return nil, err
	}

	return converter.HealthDeviceToResponse(device), nil
}

func (u *healthDeviceUsecase) GetByID(ctx context.Context, id int64) (*dto.DeviceResponse, error) {
	device, err := u.deviceRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find health device: %+v", err)
		return nil, err
	}
	if device == nil {
		return nil, ErrDeviceNotFound
	}

	return converter.HealthDeviceToResponse(device), nil
}

func (u *healthDeviceUsecase) GetUserDevices(ctx context.Context, userID int64) ([]dto.DeviceResponse, error) {
	devices, err := u.deviceRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to list health devices: %+v", err)
		return nil, err
	}

	return converter.HealthDevicesToResponses(devices), nil
}

func (u *healthDeviceUsecase) GetConnectedDevices(ctx context.Context, userID int64) ([]dto.DeviceResponse, error) {
	devices, err := u.deviceRepo.FindConnectedByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to list connected devices: %+v", err)
		return nil, err
	}

	return converter.HealthDevicesToResponses(devices), nil
}

func (u *healthDeviceUsecase) GetByMacAddress(ctx context.Context, mac string) (*dto.DeviceResponse, error) {
	device, err := u.deviceRepo.FindByMacAddress(u.db.WithContext(ctx), mac)
	if err != nil {
		u.log.Warnf("Failed to find device by mac: %+v", err)
		return nil, err
	}
	if device == nil {
		return nil, ErrDeviceNotFound
	}

	return converter.HealthDeviceToResponse(device), nil
}

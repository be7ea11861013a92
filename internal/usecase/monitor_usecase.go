package usecase

import (
	"context"
	"time"

	"eldercare-manager-api/internal/converter"
	"eldercare-manager-api/internal/delivery/dto"
	"eldercare-manager-api/internal/domain/entity"
	"eldercare-manager-api/internal/domain/repository"
	"eldercare-manager-api/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// defaultMonitorDays is the dashboard window when the client sends none.
const defaultMonitorDays = 7

type MonitorUsecase interface {
	GetMonitorData(ctx context.Context, userID int64, days int) (*dto.MonitorDataResponse, error)
	GetDeviceStatus(ctx context.Context, deviceID string) (*dto.DeviceStatusResponse, error)
}

type monitorUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	healthDataRepo repository.HealthDataRepository
	reminderRepo   repository.ReminderRepository
	emergencyRepo  repository.EmergencyCallRepository
	deviceRepo     repository.HealthDeviceRepository
	latestCache    *service.LatestHealthCache
}

func NewMonitorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	healthDataRepo repository.HealthDataRepository,
	reminderRepo repository.ReminderRepository,
	emergencyRepo repository.EmergencyCallRepository,
	deviceRepo repository.HealthDeviceRepository,
	latestCache *service.LatestHealthCache,
) MonitorUsecase {
	return &monitorUsecase{
		db:             db,
		log:            log,
		healthDataRepo: healthDataRepo,
		reminderRepo:   reminderRepo,
		emergencyRepo:  emergencyRepo,
		deviceRepo:     deviceRepo,
		latestCache:    latestCache,
	}
}

// GetMonitorData assembles one dashboard poll over the last `days` days
// (default 7): recent samples, reminders, the user's open emergencies,
// plus a derived device status and last-activity stamp. Row caps scale
// with the window.
func (u *monitorUsecase) GetMonitorData(ctx context.Context, userID int64, days int) (*dto.MonitorDataResponse, error) {
	if days < 1 {
		days = defaultMonitorDays
	}

	db := u.db.WithContext(ctx)
	now := time.Now()
	windowStart := now.AddDate(0, 0, -days)

	samples, err := u.healthDataRepo.FindWindow(db, userID, windowStart, now, days*samplesPerDayCap)
	if err != nil {
		u.log.Warnf("Failed to query monitor health data: %+v", err)
		return nil, err
	}

	reminders, err := u.reminderRepo.FindWindowByUser(db, userID, windowStart, now, days*remindersPerDayCap)
	if err != nil {
		u.log.Warnf("Failed to query monitor reminders: %+v", err)
		return nil, err
	}

	allCalls, err := u.emergencyRepo.FindByUserID(db, userID)
	if err != nil {
		u.log.Warnf("Failed to query monitor emergencies: %+v", err)
		return nil, err
	}
	openCalls := make([]entity.EmergencyCall, 0, len(allCalls))
	for i := range allCalls {
		if allCalls[i].Status != entity.EmergencyStatusResolved && allCalls[i].Status != entity.EmergencyStatusFalseAlarm {
			openCalls = append(openCalls, allCalls[i])
		}
	}

	deviceStatus := entity.DeviceStatusDisconnected
	connected, err := u.deviceRepo.FindConnectedByUserID(db, userID)
	if err != nil {
		u.log.Warnf("Failed to query monitor devices: %+v", err)
		return nil, err
	}
	if len(connected) > 0 {
		deviceStatus = entity.DeviceStatusConnected
	}

	lastActivity := ""
	if latest, _ := u.latestCache.Get(ctx, userID); latest != nil {
		lastActivity = latest.Timestamp.Format(timeLayout)
	} else if len(samples) > 0 {
		lastActivity = samples[0].Timestamp.Format(timeLayout)
	}

	return &dto.MonitorDataResponse{
		Success:        true,
		HealthData:     converter.HealthDataToResponses(samples),
		Reminders:      converter.RemindersToResponses(reminders),
		EmergencyCalls: converter.EmergencyCallsToResponses(openCalls),
		DeviceStatus:   deviceStatus,
		LastActivity:   lastActivity,
	}, nil
}

// GetDeviceStatus reports the voice-device channel state. Presence
// tracking lives in the agent subsystem; until that feed is wired in,
// every queried device reads as online.
func (u *monitorUsecase) GetDeviceStatus(ctx context.Context, deviceID string) (*dto.DeviceStatusResponse, error) {
	return &dto.DeviceStatusResponse{
		DeviceID:     deviceID,
		Status:       "online",
		LastActivity: time.Now().Format(timeLayout),
	}, nil
}

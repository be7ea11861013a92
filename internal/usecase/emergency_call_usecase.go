package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eldercare-manager-api/internal/converter"
	"eldercare-manager-api/internal/delivery/dto"
	"eldercare-manager-api/internal/domain/entity"
	"eldercare-manager-api/internal/domain/repository"
	"eldercare-manager-api/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrEmergencyNotFound        = errors.New("emergency call not found")
	ErrInvalidSeverity          = errors.New("severity level must be between 1 and 4")
	ErrEmergencyAlreadyResolved = errors.New("emergency call is already resolved")
	ErrNoCallNumbers            = errors.New("no call numbers configured for emergency")
)

type EmergencyCallUsecase interface {
	Trigger(ctx context.Context, req *dto.TriggerEmergencyRequest) (*dto.EmergencyCallResponse, error)
	Handle(ctx context.Context, id int64, req *dto.HandleEmergencyRequest) (*dto.EmergencyCallResponse, error)
	AutoCall(ctx context.Context, id int64) (*dto.EmergencyCallResponse, error)
	FalseAlarm(ctx context.Context, id int64, req *dto.FalseAlarmRequest) (*dto.EmergencyCallResponse, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*dto.EmergencyCallResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.EmergencyCallResponse, error)
	GetUserCalls(ctx context.Context, userID int64) ([]dto.EmergencyCallResponse, error)
	GetUnresolved(ctx context.Context) ([]dto.EmergencyCallResponse, error)
	GetBySeverity(ctx context.Context, userID int64, severity int) ([]dto.EmergencyCallResponse, error)
	Statistics(ctx context.Context, userID int64, startDate, endDate string) (*dto.EmergencyStatisticsResponse, error)
}

type emergencyCallUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	emergencyRepo repository.EmergencyCallRepository
	dialer        service.EmergencyDialer
}

func NewEmergencyCallUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	emergencyRepo repository.EmergencyCallRepository,
	dialer service.EmergencyDialer,
) EmergencyCallUsecase {
	return &emergencyCallUsecase{
		db:            db,
		log:           log,
		emergencyRepo: emergencyRepo,
		dialer:        dialer,
	}
}

func (u *emergencyCallUsecase) Trigger(ctx context.Context, req *dto.TriggerEmergencyRequest) (*dto.EmergencyCallResponse, error) {
	severity := req.SeverityLevel
	if severity == 0 {
		severity = entity.SeverityMin
	}
	if severity < entity.SeverityMin || severity > entity.SeverityMax {
		return nil, ErrInvalidSeverity
	}

	timestamp := time.Now()
	if req.Timestamp != "" {
		var err error
		timestamp, err = time.ParseInLocation(timeLayout, req.Timestamp, time.Local)
		if err != nil {
			return nil, ErrInvalidTimeFormat
		}
	}

	call := &entity.EmergencyCall{
		UserID:              req.UserID,
		HealthDeviceID:      req.HealthDeviceID,
		AiDeviceID:          req.AiDeviceID,
		EmergencyType:       req.EmergencyType,
		TriggerSource:       req.TriggerSource,
		Timestamp:           timestamp,
		LocationGps:         req.LocationGps,
		LocationAddress:     req.LocationAddress,
		IndoorLocation:      req.IndoorLocation,
		EmergencyHealthData: req.EmergencyHealthData,
		SeverityLevel:       severity,
		CallNumbers:         req.CallNumbers,
		Status:              entity.EmergencyStatusTriggered,
	}

	if err := u.emergencyRepo.Create(u.db.WithContext(ctx), call); err != nil {
		u.log.Warnf("Failed to create emergency call: %+v", err)
		return nil, err
	}

	u.log.WithFields(logrus.Fields{
		"emergency_id":   call.ID,
		"user_id":        call.UserID,
		"emergency_type": call.EmergencyType,
		"severity":       call.SeverityLevel,
	}).Warn("Emergency triggered")

	return converter.EmergencyCallToResponse(call), nil
}

// Handle closes an incident: resolved status, response timestamp and the
// handler's notes in one update.
func (u *emergencyCallUsecase) Handle(ctx context.Context, id int64, req *dto.HandleEmergencyRequest) (*dto.EmergencyCallResponse, error) {
	call, err := u.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if call.Status == entity.EmergencyStatusResolved || call.Status == entity.EmergencyStatusFalseAlarm {
		return nil, ErrEmergencyAlreadyResolved
	}

	now := time.Now()
	call.Status = entity.EmergencyStatusResolved
	call.ResponseTime = &now
	call.HandlerInfo = req.HandlerInfo
	call.ResolutionNotes = req.Notes

	if err := u.emergencyRepo.Update(u.db.WithContext(ctx), call); err != nil {
		u.log.Warnf("Failed to handle emergency call: %+v", err)
		return nil, err
	}

	return converter.EmergencyCallToResponse(call), nil
}

// AutoCall dials the configured numbers and moves the incident to the
// calling state. The dial result summary lands in CallResults.
func (u *emergencyCallUsecase) AutoCall(ctx context.Context, id int64) (*dto.EmergencyCallResponse, error) {
	call, err := u.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if call.Status == entity.EmergencyStatusResolved || call.Status == entity.EmergencyStatusFalseAlarm {
		return nil, ErrEmergencyAlreadyResolved
	}
	if call.CallNumbers == "" {
		return nil, ErrNoCallNumbers
	}

	result, err := u.dialer.Dial(ctx, call, call.CallNumbers)
	if err != nil {
		u.log.Warnf("Failed to auto-call for emergency %d: %+v", call.ID, err)
		return nil, err
	}

	call.AutoCallTriggered = 1
	call.Status = entity.EmergencyStatusCalling
	call.CallResults = result

	if err := u.emergencyRepo.Update(u.db.WithContext(ctx), call); err != nil {
		u.log.Warnf("Failed to update emergency call: %+v", err)
		return nil, err
	}

	return converter.EmergencyCallToResponse(call), nil
}

func (u *emergencyCallUsecase) FalseAlarm(ctx context.Context, id int64, req *dto.FalseAlarmRequest) (*dto.EmergencyCallResponse, error) {
	call, err := u.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if call.Status == entity.EmergencyStatusResolved || call.Status == entity.EmergencyStatusFalseAlarm {
		return nil, ErrEmergencyAlreadyResolved
	}

	now := time.Now()
	call.Status = entity.EmergencyStatusFalseAlarm
	call.ResponseTime = &now
	call.ResolutionNotes = req.Reason

	if err := u.emergencyRepo.Update(u.db.WithContext(ctx), call); err != nil {
		u.log.Warnf("Failed to mark false alarm: %+v", err)
		return nil, err
	}

	return converter.EmergencyCallToResponse(call), nil
}

func (u *emergencyCallUsecase) UpdateStatus(ctx context.Context, id int64, status string) (*dto.EmergencyCallResponse, error) {
	call, err := u.find(ctx, id)
	if err != nil {
		return nil, err
	}

	call.Status = status
	if status == entity.EmergencyStatusResolved && call.ResponseTime == nil {
		now := time.Now()
		call.ResponseTime = &now
	}

	if err := u.emergencyRepo.Update(u.db.WithContext(ctx), call); err != nil {
		u.log.Warnf("Failed to update emergency status: %+v", err)
		return nil, err
	}

	return converter.EmergencyCallToResponse(call), nil
}

func (u *emergencyCallUsecase) GetByID(ctx context.Context, id int64) (*dto.EmergencyCallResponse, error) {
	call, err := u.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return converter.EmergencyCallToResponse(call), nil
}

func (u *emergencyCallUsecase) GetUserCalls(ctx context.Context, userID int64) ([]dto.EmergencyCallResponse, error) {
	calls, err := u.emergencyRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to list emergency calls: %+v", err)
		return nil, err
	}
	return converter.EmergencyCallsToResponses(calls), nil
}

func (u *emergencyCallUsecase) GetUnresolved(ctx context.Context) ([]dto.EmergencyCallResponse, error) {
	calls, err := u.emergencyRepo.FindUnresolved(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list unresolved emergencies: %+v", err)
		return nil, err
	}
	return converter.EmergencyCallsToResponses(calls), nil
}

func (u *emergencyCallUsecase) GetBySeverity(ctx context.Context, userID int64, severity int) ([]dto.EmergencyCallResponse, error) {
	if severity < entity.SeverityMin || severity > entity.SeverityMax {
		return nil, ErrInvalidSeverity
	}

	calls, err := u.emergencyRepo.FindBySeverity(u.db.WithContext(ctx), userID, severity)
	if err != nil {
		u.log.Warnf("Failed to list emergencies by severity: %+v", err)
		return nil, err
	}
	return converter.EmergencyCallsToResponses(calls), nil
}

// Statistics counts incidents in the inclusive date window, grouped by
// status and by severity level.
func (u *emergencyCallUsecase) Statistics(ctx context.Context, userID int64, startDate, endDate string) (*dto.EmergencyStatisticsResponse, error) {
	start, end, err := parseDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	calls, err := u.emergencyRepo.FindWindowByUser(u.db.WithContext(ctx), userID, start, end)
	if err != nil {
		u.log.Warnf("Failed to query emergency statistics: %+v", err)
		return nil, err
	}

	byStatus := make(map[string]int)
	bySeverity := make(map[string]int)
	for i := range calls {
		byStatus[calls[i].Status]++
		bySeverity[fmt.Sprintf("level_%d", calls[i].SeverityLevel)]++
	}

	return &dto.EmergencyStatisticsResponse{
		UserID:     userID,
		StartDate:  startDate,
		EndDate:    endDate,
		Total:      len(calls),
		ByStatus:   byStatus,
		BySeverity: bySeverity,
	}, nil
}

func (u *emergencyCallUsecase) find(ctx context.Context, id int64) (*entity.EmergencyCall, error) {
	call, err := u.emergencyRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find emergency call: %+v", err)
		return nil, err
	}
	if call == nil {
		return nil, ErrEmergencyNotFound
	}
	return call, nil
}

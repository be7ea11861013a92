package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"eldercare-manager-api/internal/delivery/dto"
	"eldercare-manager-api/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// recordingDialer captures what the auto-call path hands to telephony.
type recordingDialer struct {
	call    *entity.EmergencyCall
	numbers string
	result  string
	err     error
}

func (d *recordingDialer) Dial(ctx context.Context, call *entity.EmergencyCall, numbers string) (string, error) {
	d.call = call
	d.numbers = numbers
	return d.result, d.err
}

func setupEmergencyUsecase(t *testing.T) (EmergencyCallUsecase, *MockEmergencyCallRepository, *recordingDialer) {
	t.Helper()

	db, _ := newTestDB(t)
	emergencyRepo := new(MockEmergencyCallRepository)
	dialer := &recordingDialer{result: "auto_call_initiated"}

	uc := NewEmergencyCallUsecase(db, newTestLogger(), emergencyRepo, dialer)
	return uc, emergencyRepo, dialer
}

func TestEmergencyTrigger_DefaultsSeverity(t *testing.T) {
	uc, emergencyRepo, _ := setupEmergencyUsecase(t)

	emergencyRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.EmergencyCall")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.EmergencyCall).ID = 21
		}).
		Return(nil)

	resp, err := uc.Trigger(context.Background(), &dto.TriggerEmergencyRequest{
		UserID:        7,
		EmergencyType: "fall_detected",
		TriggerSource: "wearable_device",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.SeverityMin, resp.SeverityLevel)
	assert.Equal(t, entity.EmergencyStatusTriggered, resp.Status)
	assert.WithinDuration(t, time.Now(), resp.Timestamp, time.Second)
}

func TestEmergencyTrigger_RejectsOutOfRangeSeverity(t *testing.T) {
	uc, _, _ := setupEmergencyUsecase(t)

	_, err := uc.Trigger(context.Background(), &dto.TriggerEmergencyRequest{
		UserID:        7,
		EmergencyType: "fall_detected",
		TriggerSource: "wearable_device",
		SeverityLevel: 5,
	})

	assert.ErrorIs(t, err, ErrInvalidSeverity)
}

func TestEmergencyHandle_ClosesIncident(t *testing.T) {
	uc, emergencyRepo, _ := setupEmergencyUsecase(t)

	emergencyRepo.On("FindByID", mock.Anything, int64(21)).Return(&entity.EmergencyCall{
		ID:     21,
		Status: entity.EmergencyStatusCalling,
	}, nil)
	emergencyRepo.On("Update", mock.Anything, mock.AnythingOfType("*entity.EmergencyCall")).Return(nil)

	resp, err := uc.Handle(context.Background(), 21, &dto.HandleEmergencyRequest{
		HandlerInfo: "community nurse",
		Notes:       "elder recovered, no hospitalization",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.EmergencyStatusResolved, resp.Status)
	assert.Equal(t, "community nurse", resp.HandlerInfo)
	require.NotNil(t, resp.ResponseTime)
}

func TestEmergencyHandle_AlreadyResolved(t *testing.T) {
	uc, emergencyRepo, _ := setupEmergencyUsecase(t)

	emergencyRepo.On("FindByID", mock.Anything, int64(21)).Return(&entity.EmergencyCall{
		ID:     21,
		Status: entity.EmergencyStatusResolved,
	}, nil)

	_, err := uc.Handle(context.Background(), 21, &dto.HandleEmergencyRequest{HandlerInfo: "nurse"})

	assert.ErrorIs(t, err, ErrEmergencyAlreadyResolved)
}

func TestEmergencyAutoCall(t *testing.T) {
	uc, emergencyRepo, dialer := setupEmergencyUsecase(t)

	emergencyRepo.On("FindByID", mock.Anything, int64(21)).Return(&entity.EmergencyCall{
		ID:          21,
		Status:      entity.EmergencyStatusTriggered,
		CallNumbers: "13812345678,120",
	}, nil)
	emergencyRepo.On("Update", mock.Anything, mock.AnythingOfType("*entity.EmergencyCall")).Return(nil)

	resp, err := uc.AutoCall(context.Background(), 21)

	require.NoError(t, err)
	assert.Equal(t, entity.EmergencyStatusCalling, resp.Status)
	assert.Equal(t, 1, resp.AutoCallTriggered)
	assert.Equal(t, "auto_call_initiated", resp.CallResults)
	assert.Equal(t, "13812345678,120", dialer.numbers)
}

func TestEmergencyAutoCall_NoNumbers(t *testing.T) {
	uc, emergencyRepo, _ := setupEmergencyUsecase(t)

	emergencyRepo.On("FindByID", mock.Anything, int64(21)).Return(&entity.EmergencyCall{
		ID:     21,
		Status: entity.EmergencyStatusTriggered,
	}, nil)

	_, err := uc.AutoCall(context.Background(), 21)

	assert.ErrorIs(t, err, ErrNoCallNumbers)
}

func TestEmergencyAutoCall_DialFailureLeavesStateUntouched(t *testing.T) {
	uc, emergencyRepo, dialer := setupEmergencyUsecase(t)
	dialer.err = errors.New("trunk unavailable")

	emergencyRepo.On("FindByID", mock.Anything, int64(21)).Return(&entity.EmergencyCall{
		ID:          21,
		Status:      entity.EmergencyStatusTriggered,
		CallNumbers: "120",
	}, nil)

	_, err := uc.AutoCall(context.Background(), 21)

	require.Error(t, err)
	emergencyRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestEmergencyGetBySeverity_ValidatesRange(t *testing.T) {
	uc, _, _ := setupEmergencyUsecase(t)

	_, err := uc.GetBySeverity(context.Background(), 7, 0)

	assert.ErrorIs(t, err, ErrInvalidSeverity)
}

func TestEmergencyStatistics(t *testing.T) {
	uc, emergencyRepo, _ := setupEmergencyUsecase(t)

	calls := []entity.EmergencyCall{
		{Status: entity.EmergencyStatusResolved, SeverityLevel: 2},
		{Status: entity.EmergencyStatusResolved, SeverityLevel: 3},
		{Status: entity.EmergencyStatusFalseAlarm, SeverityLevel: 2},
	}
	emergencyRepo.On("FindWindowByUser", mock.Anything, int64(7), mock.Anything, mock.Anything).
		Return(calls, nil)

	stats, err := uc.Statistics(context.Background(), 7, "2026-08-01", "2026-08-28")

	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, map[string]int{"resolved": 2, "false_alarm": 1}, stats.ByStatus)
	assert.Equal(t, map[string]int{"level_2": 2, "level_3": 1}, stats.BySeverity)
}

func TestEmergencyStatistics_InvalidWindow(t *testing.T) {
	uc, _, _ := setupEmergencyUsecase(t)

	_, err := uc.Statistics(context.Background(), 7, "2026-08-28", "2026-08-01")

	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

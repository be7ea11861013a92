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

// recordingNotifier captures the reminder handed to the voice channel.
type recordingNotifier struct {
	notified *entity.Reminder
	err      error
}

func (n *recordingNotifier) NotifyReminder(ctx context.Context, reminder *entity.Reminder) error {
	n.notified = reminder
	return n.err
}

func setupReminderUsecase(t *testing.T) (ReminderUsecase, *MockReminderRepository, *recordingNotifier) {
	t.Helper()

	db, _ := newTestDB(t)
	reminderRepo := new(MockReminderRepository)
	notifier := &recordingNotifier{}

	uc := NewReminderUsecase(db, newTestLogger(), reminderRepo, notifier)
	return uc, reminderRepo, notifier
}

func TestReminderCreate_AlwaysStartsPending(t *testing.T) {
	uc, reminderRepo, _ := setupReminderUsecase(t)

	reminderRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Reminder")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Reminder).ID = 12
		}).
		Return(nil)

	resp, err := uc.Create(context.Background(), &dto.CreateReminderRequest{
		UserID:        7,
		ReminderType:  "medication",
		Title:         "Morning pills",
		ScheduledTime: "2026-08-28 08:00:00",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(12), resp.ID)
	assert.Equal(t, entity.ReminderStatusPending, resp.Status)
	assert.Equal(t, mustParseTime(t, "2026-08-28 08:00:00"), resp.ScheduledTime)
	reminderRepo.AssertExpectations(t)
}

func TestReminderCreate_InvalidScheduledTime(t *testing.T) {
	uc, _, _ := setupReminderUsecase(t)

	_, err := uc.Create(context.Background(), &dto.CreateReminderRequest{
		UserID:        7,
		ReminderType:  "medication",
		Title:         "Morning pills",
		ScheduledTime: "08:00",
	})

	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestReminderComplete(t *testing.T) {
	uc, reminderRepo, _ := setupReminderUsecase(t)

	reminderRepo.On("FindByID", mock.Anything, int64(12)).Return(&entity.Reminder{
		ID:     12,
		Status: entity.ReminderStatusTriggered,
	}, nil)
	reminderRepo.On("Update", mock.Anything, mock.AnythingOfType("*entity.Reminder")).Return(nil)

	resp, err := uc.Complete(context.Background(), 12)

	require.NoError(t, err)
	assert.Equal(t, entity.ReminderStatusCompleted, resp.Status)
	require.NotNil(t, resp.CompletedTime)
	assert.WithinDuration(t, time.Now(), *resp.CompletedTime, time.Second)
}

func TestReminderComplete_AlreadyFinished(t *testing.T) {
	uc, reminderRepo, _ := setupReminderUsecase(t)

	reminderRepo.On("FindByID", mock.Anything, int64(12)).Return(&entity.Reminder{
		ID:     12,
		Status: entity.ReminderStatusCancelled,
	}, nil)

	_, err := uc.Complete(context.Background(), 12)

	assert.ErrorIs(t, err, ErrReminderFinished)
}

func TestReminderSnooze_ShiftsScheduleOnly(t *testing.T) {
	uc, reminderRepo, _ := setupReminderUsecase(t)

	scheduled := mustParseTime(t, "2026-08-28 08:00:00")
	reminderRepo.On("FindByID", mock.Anything, int64(12)).Return(&entity.Reminder{
		ID:            12,
		Status:        entity.ReminderStatusTriggered,
		ScheduledTime: scheduled,
		SnoozeCount:   2,
	}, nil)
	reminderRepo.On("Update", mock.Anything, mock.AnythingOfType("*entity.Reminder")).Return(nil)

	resp, err := uc.Snooze(context.Background(), 12, 30)

	require.NoError(t, err)
	assert.Equal(t, scheduled.Add(30*time.Minute), resp.ScheduledTime)
	// A triggered reminder stays triggered after snoozing.
	assert.Equal(t, entity.ReminderStatusTriggered, resp.Status)
	assert.Equal(t, 2, resp.SnoozeCount)
}

func TestReminderSnooze_PendingStaysPending(t *testing.T) {
	uc, reminderRepo, _ := setupReminderUsecase(t)

	scheduled := mustParseTime(t, "2026-08-28 08:00:00")
	reminderRepo.On("FindByID", mock.Anything, int64(13)).Return(&entity.Reminder{
		ID:            13,
		Status:        entity.ReminderStatusPending,
		ScheduledTime: scheduled,
	}, nil)
	reminderRepo.On("Update", mock.Anything, mock.AnythingOfType("*entity.Reminder")).Return(nil)

	resp, err := uc.Snooze(context.Background(), 13, 10)

	require.NoError(t, err)
	assert.Equal(t, entity.ReminderStatusPending, resp.Status)
	assert.Equal(t, scheduled.Add(10*time.Minute), resp.ScheduledTime)
}

func TestReminderTrigger_NotifiesVoiceChannel(t *testing.T) {
	uc, reminderRepo, notifier := setupReminderUsecase(t)

	reminderRepo.On("FindByID", mock.Anything, int64(12)).Return(&entity.Reminder{
		ID:           12,
		Status:       entity.ReminderStatusPending,
		VoiceContent: "Time for your morning pills",
	}, nil)
	reminderRepo.On("Update", mock.Anything, mock.AnythingOfType("*entity.Reminder")).Return(nil)

	resp, err := uc.Trigger(context.Background(), 12)

	require.NoError(t, err)
	assert.Equal(t, entity.ReminderStatusTriggered, resp.Status)
	require.NotNil(t, resp.LastTriggeredTime)
	require.NotNil(t, notifier.notified)
	assert.Equal(t, int64(12), notifier.notified.ID)
}

func TestReminderTrigger_NotPending(t *testing.T) {
	uc, reminderRepo, notifier := setupReminderUsecase(t)

	reminderRepo.On("FindByID", mock.Anything, int64(12)).Return(&entity.Reminder{
		ID:     12,
		Status: entity.ReminderStatusPaused,
	}, nil)

	_, err := uc.Trigger(context.Background(), 12)

	assert.ErrorIs(t, err, ErrReminderNotPending)
	assert.Nil(t, notifier.notified)
}

func TestReminderResume_RequiresPaused(t *testing.T) {
	uc, reminderRepo, _ := setupReminderUsecase(t)

	reminderRepo.On("FindByID", mock.Anything, int64(12)).Return(&entity.Reminder{
		ID:     12,
		Status: entity.ReminderStatusPending,
	}, nil)

	_, err := uc.Resume(context.Background(), 12)

	assert.ErrorIs(t, err, ErrReminderNotPaused)
}

func TestReminderResume(t *testing.T) {
	uc, reminderRepo, _ := setupReminderUsecase(t)

	reminderRepo.On("FindByID", mock.Anything, int64(12)).Return(&entity.Reminder{
		ID:     12,
		Status: entity.ReminderStatusPaused,
	}, nil)
	reminderRepo.On("Update", mock.Anything, mock.AnythingOfType("*entity.Reminder")).Return(nil)

	resp, err := uc.Resume(context.Background(), 12)

	require.NoError(t, err)
	assert.Equal(t, entity.ReminderStatusPending, resp.Status)
}

func TestReminderGetByID_NotFound(t *testing.T) {
	uc, reminderRepo, _ := setupReminderUsecase(t)

	reminderRepo.On("FindByID", mock.Anything, int64(404)).Return(nil, nil)

	_, err := uc.GetByID(context.Background(), 404)

	assert.ErrorIs(t, err, ErrReminderNotFound)
}

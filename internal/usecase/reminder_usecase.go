package usecase

import (
	"context"
	"errors"
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
	ErrReminderNotFound   = errors.New("reminder not found")
	ErrReminderNotPaused  = errors.New("reminder is not paused")
	ErrReminderNotPending = errors.New("reminder is not pending")
	ErrReminderFinished   = errors.New("reminder is already completed or cancelled")
)

// remindersPerDayCap bounds window queries.
const remindersPerDayCap = 10

type ReminderUsecase interface {
	Create(ctx context.Context, req *dto.CreateReminderRequest) (*dto.ReminderResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.ReminderResponse, error)
	GetUserReminders(ctx context.Context, userID int64) ([]dto.ReminderResponse, error)
	GetByType(ctx context.Context, userID int64, reminderType string) ([]dto.ReminderResponse, error)
	Complete(ctx context.Context, id int64) (*dto.ReminderResponse, error)
	Snooze(ctx context.Context, id int64, minutes int) (*dto.ReminderResponse, error)
	Trigger(ctx context.Context, id int64) (*dto.ReminderResponse, error)
	Pause(ctx context.Context, id int64) (*dto.ReminderResponse, error)
	Resume(ctx context.Context, id int64) (*dto.ReminderResponse, error)
	GetPendingDue(ctx context.Context) ([]dto.ReminderResponse, error)
	GetToday(ctx context.Context, userID int64) ([]dto.ReminderResponse, error)
	GetWindow(ctx context.Context, userID int64, startDate, endDate string) ([]dto.ReminderResponse, error)
	Delete(ctx context.Context, id int64) error
}

type reminderUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	reminderRepo repository.ReminderRepository
	notifier     service.VoiceNotifier
}

func NewReminderUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	reminderRepo repository.ReminderRepository,
	notifier service.VoiceNotifier,
) ReminderUsecase {
	return &reminderUsecase{
		db:           db,
		log:          log,
		reminderRepo: reminderRepo,
		notifier:     notifier,
	}
}

// Create always starts a reminder in the pending state regardless of
// what the client sends.
func (u *reminderUsecase) Create(ctx context.Context, req *dto.CreateReminderRequest) (*dto.ReminderResponse, error) {
	scheduledTime, err := time.ParseInLocation(timeLayout, req.ScheduledTime, time.Local)
	if err != nil {
		return nil, ErrInvalidTimeFormat
	}

	reminder := &entity.Reminder{
		UserID:        req.UserID,
		AiAgentID:     req.AiAgentID,
		ReminderType:  req.ReminderType,
		Title:         req.Title,
		Content:       req.Content,
		VoiceContent:  req.VoiceContent,
		ScheduledTime: scheduledTime,
		RepeatPattern: req.RepeatPattern,
		RepeatConfig:  req.RepeatConfig,
		Status:        entity.ReminderStatusPending,
	}

	if err := u.reminderRepo.Create(u.db.WithContext(ctx), reminder); err != nil {
		u.log.Warnf("Failed to create reminder: %+v", err)
		return nil, err
	}

	return converter.ReminderToResponse(reminder), nil
}

func (u *reminderUsecase) GetByID(ctx context.Context, id int64) (*dto.ReminderResponse, error) {
	reminder, err := u.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return converter.ReminderToResponse(reminder), nil
}

func (u *reminderUsecase) GetUserReminders(ctx context.Context, userID int64) ([]dto.ReminderResponse, error) {
	reminders, err := u.reminderRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to list reminders: %+v", err)
		return nil, err
	}
	return converter.RemindersToResponses(reminders), nil
}

func (u *reminderUsecase) GetByType(ctx context.Context, userID int64, reminderType string) ([]dto.ReminderResponse, error) {
	reminders, err := u.reminderRepo.FindByUserAndType(u.db.WithContext(ctx), userID, reminderType)
	if err != nil {
		u.log.Warnf("Failed to list reminders by type: %+v", err)
		return nil, err
	}
	return converter.RemindersToResponses(reminders), nil
}

func (u *reminderUsecase) Complete(ctx context.Context, id int64) (*dto.ReminderResponse, error) {
	reminder, err := u.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if reminder.Status == entity.ReminderStatusCompleted || reminder.Status == entity.ReminderStatusCancelled {
		return nil, ErrReminderFinished
	}

	now := time.Now()
	reminder.Status = entity.ReminderStatusCompleted
	reminder.IsCompleted = 1
	reminder.CompletedTime = &now

	if err := u.reminderRepo.Update(u.db.WithContext(ctx), reminder); err != nil {
		u.log.Warnf("Failed to complete reminder: %+v", err)
		return nil, err
	}

	return converter.ReminderToResponse(reminder), nil
}

// Snooze pushes the scheduled time forward. Status is left alone: a
// triggered reminder stays triggered until completed. SnoozeCount is a
// lifetime counter maintained elsewhere; snoozing does not change it.
func (u *reminderUsecase) Snooze(ctx context.Context, id int64, minutes int) (*dto.ReminderResponse, error) {
	reminder, err := u.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if reminder.Status == entity.ReminderStatusCompleted || reminder.Status == entity.ReminderStatusCancelled {
		return nil, ErrReminderFinished
	}

	reminder.ScheduledTime = reminder.ScheduledTime.Add(time.Duration(minutes) * time.Minute)

	if err := u.reminderRepo.Update(u.db.WithContext(ctx), reminder); err != nil {
		u.log.Warnf("Failed to snooze reminder: %+v", err)
		return nil, err
	}

	return converter.ReminderToResponse(reminder), nil
}

// Trigger marks the reminder as fired and hands it to the voice channel.
// Notification failure does not roll back the state change.
func (u *reminderUsecase) Trigger(ctx context.Context, id int64) (*dto.ReminderResponse, error) {
	reminder, err := u.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if reminder.Status != entity.ReminderStatusPending {
		return nil, ErrReminderNotPending
	}

	now := time.Now()
	reminder.Status = entity.ReminderStatusTriggered
	reminder.LastTriggeredTime = &now

	if err := u.reminderRepo.Update(u.db.WithContext(ctx), reminder); err != nil {
		u.log.Warnf("Failed to trigger reminder: %+v", err)
		return nil, err
	}

	if err := u.notifier.NotifyReminder(ctx, reminder); err != nil {
		u.log.Warnf("Failed to notify voice channel for reminder %d: %+v", reminder.ID, err)
	}

	return converter.ReminderToResponse(reminder), nil
}

func (u *reminderUsecase) Pause(ctx context.Context, id int64) (*dto.ReminderResponse, error) {
	reminder, err := u.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if reminder.Status != entity.ReminderStatusPending {
		return nil, ErrReminderNotPending
	}

	reminder.Status = entity.ReminderStatusPaused

	if err := u.reminderRepo.Update(u.db.WithContext(ctx), reminder); err != nil {
		u.log.Warnf("Failed to pause reminder: %+v", err)
		return nil, err
	}

	return converter.ReminderToResponse(reminder), nil
}

func (u *reminderUsecase) Resume(ctx context.Context, id int64) (*dto.ReminderResponse, error) {
	reminder, err := u.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if reminder.Status != entity.ReminderStatusPaused {
		return nil, ErrReminderNotPaused
	}

	reminder.Status = entity.ReminderStatusPending

	if err := u.reminderRepo.Update(u.db.WithContext(ctx), reminder); err != nil {
		u.log.Warnf("Failed to resume reminder: %+v", err)
		return nil, err
	}

	return converter.ReminderToResponse(reminder), nil
}

// GetPendingDue is the poll endpoint for the external scheduler: every
// pending reminder across all users whose scheduled time has passed.
func (u *reminderUsecase) GetPendingDue(ctx context.Context) ([]dto.ReminderResponse, error) {
	reminders, err := u.reminderRepo.FindPendingDue(u.db.WithContext(ctx), time.Now())
	if err != nil {
		u.log.Warnf("Failed to query due reminders: %+v", err)
		return nil, err
	}
	return converter.RemindersToResponses(reminders), nil
}

func (u *reminderUsecase) GetToday(ctx context.Context, userID int64) ([]dto.ReminderResponse, error) {
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	dayEnd := dayStart.AddDate(0, 0, 1)

	reminders, err := u.reminderRepo.FindDayByUser(u.db.WithContext(ctx), userID, dayStart, dayEnd)
	if err != nil {
		u.log.Warnf("Failed to query today's reminders: %+v", err)
		return nil, err
	}
	return converter.RemindersToResponses(reminders), nil
}

func (u *reminderUsecase) GetWindow(ctx context.Context, userID int64, startDate, endDate string) ([]dto.ReminderResponse, error) {
	start, end, err := parseDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	days := int(end.Sub(start).Hours()/24) + 1
	limit := days * remindersPerDayCap

	reminders, err := u.reminderRepo.FindWindowByUser(u.db.WithContext(ctx), userID, start, end, limit)
	if err != nil {
		u.log.Warnf("Failed to query reminder window: %+v", err)
		return nil, err
	}
	return converter.RemindersToResponses(reminders), nil
}

func (u *reminderUsecase) Delete(ctx context.Context, id int64) error {
	reminder, err := u.find(ctx, id)
	if err != nil {
		return err
	}

	if err := u.reminderRepo.Delete(u.db.WithContext(ctx), reminder.ID); err != nil {
		u.log.Warnf("Failed to delete reminder: %+v", err)
		return err
	}
	return nil
}

func (u *reminderUsecase) find(ctx context.Context, id int64) (*entity.Reminder, error) {
	reminder, err := u.reminderRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find reminder: %+v", err)
		return nil, err
	}
	if reminder == nil {
		return nil, ErrReminderNotFound
	}
	return reminder, nil
}

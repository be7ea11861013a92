package converter

import (
	"eldercare-manager-api/internal/delivery/dto"
	"eldercare-manager-api/internal/domain/entity"
)

// ReminderToResponse converts a Reminder entity to ReminderResponse DTO
func ReminderToResponse(reminder *entity.Reminder) *dto.ReminderResponse {
	if reminder == nil {
		return nil
	}

	return &dto.ReminderResponse{
		ID:                reminder.ID,
		UserID:            reminder.UserID,
		AiAgentID:         reminder.AiAgentID,
		ReminderType:      reminder.ReminderType,
		Title:             reminder.Title,
		Content:           reminder.Content,
		VoiceContent:      reminder.VoiceContent,
		ScheduledTime:     reminder.ScheduledTime,
		RepeatPattern:     reminder.RepeatPattern,
		Status:            reminder.Status,
		SnoozeCount:       reminder.SnoozeCount,
		CompletedTime:     reminder.CompletedTime,
		LastTriggeredTime: reminder.LastTriggeredTime,
		CreatedAt:         reminder.CreatedAt,
	}
}

// RemindersToResponses converts a slice of Reminder entities to slice of ReminderResponse DTOs
func RemindersToResponses(reminders []entity.Reminder) []dto.ReminderResponse {
	responses := make([]dto.ReminderResponse, len(reminders))
	for i := range reminders {
		responses[i] = *ReminderToResponse(&reminders[i])
	}
	return responses
}

package dto

import "time"

// ScheduledTime uses the wire layout "2006-01-02 15:04:05".

type CreateReminderRequest struct {
	UserID        int64  `json:"userId" validate:"required"`
	AiAgentID     string `json:"aiAgentId" validate:"omitempty"`
	ReminderType  string `json:"reminderType" validate:"required,oneof=medication blood_pressure blood_glucose exercise meal appointment sleep water"`
	Title         string `json:"title" validate:"required"`
	Content       string `json:"content" validate:"omitempty"`
	VoiceContent  string `json:"voiceContent" validate:"omitempty"`
	ScheduledTime string `json:"scheduledTime" validate:"required"`
	RepeatPattern string `json:"repeatPattern" validate:"omitempty,oneof=once daily weekly monthly custom"`
	RepeatConfig  string `json:"repeatConfig" validate:"omitempty"`
}

type SnoozeReminderRequest struct {
	Minutes int `json:"minutes" validate:"required,gte=1"`
}

type ReminderResponse struct {
	ID                int64      `json:"id"`
	UserID            int64      `json:"userId"`
	AiAgentID         string     `json:"aiAgentId,omitempty"`
	ReminderType      string     `json:"reminderType"`
	Title             string     `json:"title"`
	Content           string     `json:"content,omitempty"`
	VoiceContent      string     `json:"voiceContent,omitempty"`
	ScheduledTime     time.Time  `json:"scheduledTime"`
	RepeatPattern     string     `json:"repeatPattern,omitempty"`
	Status            string     `json:"status"`
	SnoozeCount       int        `json:"snoozeCount"`
	CompletedTime     *time.Time `json:"completedTime"`
	LastTriggeredTime *time.Time `json:"lastTriggeredTime"`
	CreatedAt         time.Time  `json:"createdAt"`
}

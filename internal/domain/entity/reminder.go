package entity

import "time"

// Reminder statuses. pending → triggered → completed; pending ⇄ paused;
// cancelled may be applied from outside the normal flow.
const (
	ReminderStatusPending   = "pending"
	ReminderStatusTriggered = "triggered"
	ReminderStatusCompleted = "completed"
	ReminderStatusPaused    = "paused"
	ReminderStatusCancelled = "cancelled"
)

// Reminder is a scheduled caregiving task (medication, exercise, ...) with
// recurrence and voice-delivery intent.
type Reminder struct {
	ID                int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID            int64      `gorm:"not null;index" json:"userId"`
	AiAgentID         string     `gorm:"type:varchar(32)" json:"aiAgentId"`
	ReminderType      string     `gorm:"type:varchar(30)" json:"reminderType"`
	Title             string     `gorm:"type:varchar(100)" json:"title"`
	Content           string     `gorm:"type:text" json:"content"`
	VoiceContent      string     `gorm:"type:text" json:"voiceContent"`
	ScheduledTime     time.Time  `gorm:"not null;index" json:"scheduledTime"`
	RepeatPattern     string     `gorm:"type:varchar(20)" json:"repeatPattern"`
	RepeatConfig      string     `gorm:"type:text" json:"repeatConfig"`
	IsCompleted       int        `gorm:"not null;default:0" json:"isCompleted"`
	CompletedTime     *time.Time `json:"completedTime"`
	SnoozeCount       int        `gorm:"not null;default:0" json:"snoozeCount"`
	LastTriggeredTime *time.Time `json:"lastTriggeredTime"`
	Status            string     `gorm:"type:varchar(20);not null;index" json:"status"`
	CreatedAt         time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Reminder) TableName() string {
	return "ec_reminders"
}

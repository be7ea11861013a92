package repository

import (
	"time"

	"eldercare-manager-api/internal/domain/entity"

	"gorm.io/gorm"
)

type ReminderRepository interface {
	Create(db *gorm.DB, reminder *entity.Reminder) error
	Update(db *gorm.DB, reminder *entity.Reminder) error
	FindByID(db *gorm.DB, id int64) (*entity.Reminder, error)
	Delete(db *gorm.DB, id int64) error
	FindByUserID(db *gorm.DB, userID int64) ([]entity.Reminder, error)
	FindByUserAndType(db *gorm.DB, userID int64, reminderType string) ([]entity.Reminder, error)
	// FindPendingDue is the global due-poll used by the external
	// scheduler: status=pending AND scheduledTime<=now, across all users.
	FindPendingDue(db *gorm.DB, now time.Time) ([]entity.Reminder, error)
	// FindDayByUser covers [dayStart, dayEnd), soonest-first.
	FindDayByUser(db *gorm.DB, userID int64, dayStart, dayEnd time.Time) ([]entity.Reminder, error)
	// FindWindowByUser returns newest-first with a row cap.
	FindWindowByUser(db *gorm.DB, userID int64, start, end time.Time, limit int) ([]entity.Reminder, error)
}

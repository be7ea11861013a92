package repository

import (
	"time"

	"eldercare-manager-api/internal/domain/entity"

	"gorm.io/gorm"
)

type EmergencyCallRepository interface {
	Create(db *gorm.DB, call *entity.EmergencyCall) error
	Update(db *gorm.DB, call *entity.EmergencyCall) error
	FindByID(db *gorm.DB, id int64) (*entity.EmergencyCall, error)
	FindByUserID(db *gorm.DB, userID int64) ([]entity.EmergencyCall, error)
	// FindUnresolved returns calls whose status is neither resolved nor
	// false_alarm, newest-first.
	FindUnresolved(db *gorm.DB) ([]entity.EmergencyCall, error)
	FindBySeverity(db *gorm.DB, userID int64, severity int) ([]entity.EmergencyCall, error)
	FindWindowByUser(db *gorm.DB, userID int64, start, end time.Time) ([]entity.EmergencyCall, error)
}

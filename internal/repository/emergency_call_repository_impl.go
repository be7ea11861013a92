package repository

import (
	"errors"
	"time"

	"eldercare-manager-api/internal/domain/entity"
	domainRepo "eldercare-manager-api/internal/domain/repository"

	"gorm.io/gorm"
)

type emergencyCallRepository struct{}

func NewEmergencyCallRepository() domainRepo.EmergencyCallRepository {
	return &emergencyCallRepository{}
}

func (r *emergencyCallRepository) Create(db *gorm.DB, call *entity.EmergencyCall) error {
	return db.Create(call).Error
}

func (r *emergencyCallRepository) Update(db *gorm.DB, call *entity.EmergencyCall) error {
	return db.Save(call).Error
}

func (r *emergencyCallRepository) FindByID(db *gorm.DB, id int64) (*entity.EmergencyCall, error) {
	var call entity.EmergencyCall
	err := db.Where("id = ?", id).First(&call).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &call, nil
}

func (r *emergencyCallRepository) FindByUserID(db *gorm.DB, userID int64) ([]entity.EmergencyCall, error) {
	var list []entity.EmergencyCall
	err := db.Where("user_id = ?", userID).
		Order("timestamp DESC").
		Find(&list).Error
	return list, err
}

func (r *emergencyCallRepository) FindUnresolved(db *gorm.DB) ([]entity.EmergencyCall, error) {
	var list []entity.EmergencyCall
	err := db.Where("status NOT IN ?", []string{entity.EmergencyStatusResolved, entity.EmergencyStatusFalseAlarm}).
		Order("timestamp DESC").
		Find(&list).Error
	return list, err
}

func (r *emergencyCallRepository) FindBySeverity(db *gorm.DB, userID int64, severity int) ([]entity.EmergencyCall, error) {
	var list []entity.EmergencyCall
	err := db.Where("user_id = ? AND severity_level = ?", userID, severity).
		Order("timestamp DESC").
		Find(&list).Error
	return list, err
}

func (r *emergencyCallRepository) FindWindowByUser(db *gorm.DB, userID int64, start, end time.Time) ([]entity.EmergencyCall, error) {
	var list []entity.EmergencyCall
	err := db.Where("user_id = ? AND timestamp >= ? AND timestamp <= ?", userID, start, end).
		Order("timestamp DESC").
		Find(&list).Error
	return list, err
}

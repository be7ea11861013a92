package repository

import (
	"errors"
	"time"

	"eldercare-manager-api/internal/domain/entity"
	domainRepo "eldercare-manager-api/internal/domain/repository"

	"gorm.io/gorm"
)

type healthDataRepository struct{}

func NewHealthDataRepository() domainRepo.HealthDataRepository {
	return &healthDataRepository{}
}

func (r *healthDataRepository) Create(db *gorm.DB, data *entity.HealthData) error {
	return db.Create(data).Error
}

func (r *healthDataRepository) Update(db *gorm.DB, data *entity.HealthData) error {
	return db.Save(data).Error
}

func (r *healthDataRepository) FindByID(db *gorm.DB, id int64) (*entity.HealthData, error) {
	var data entity.HealthData
	err := db.Where("id = ?", id).First(&data).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &data, nil
}

func (r *healthDataRepository) DeleteByIDs(db *gorm.DB, ids []int64) error {
	return db.Where("id IN ?", ids).Delete(&entity.HealthData{}).Error
}

func (r *healthDataRepository) Page(db *gorm.DB, filter domainRepo.HealthDataFilter) ([]entity.HealthData, int64, error) {
	query := db.Model(&entity.HealthData{})
	if filter.UserID != 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.DeviceID != 0 {
		query = query.Where("health_device_id = ?", filter.DeviceID)
	}
	if filter.DataSource != "" {
		query = query.Where("data_source = ?", filter.DataSource)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 10
	}

	var list []entity.HealthData
	err := query.Order("timestamp DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).Error
	return list, total, err
}

func (r *healthDataRepository) FindByUserAndRange(db *gorm.DB, userID int64, start, end time.Time) ([]entity.HealthData, error) {
	var list []entity.HealthData
	err := db.Where("user_id = ? AND timestamp >= ? AND timestamp <= ?", userID, start, end).
		Order("timestamp DESC").
		Find(&list).Error
	return list, err
}

func (r *healthDataRepository) FindWindow(db *gorm.DB, userID int64, start, end time.Time, limit int) ([]entity.HealthData, error) {
	var list []entity.HealthData
	err := db.Where("user_id = ? AND timestamp >= ? AND timestamp <= ?", userID, start, end).
		Order("timestamp DESC").
		Limit(limit).
		Find(&list).Error
	return list, err
}

func (r *healthDataRepository) FindLatestByUser(db *gorm.DB, userID int64) (*entity.HealthData, error) {
	var data entity.HealthData
	err := db.Where("user_id = ?", userID).
		Order("timestamp DESC").
		First(&data).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &data, nil
}

package repository

import (
	"errors"
	"time"

	"eldercare-manager-api/internal/domain/entity"
	domainRepo "eldercare-manager-api/internal/domain/repository"

	"gorm.io/gorm"
)

type reminderRepository struct{}

func NewReminderRepository() domainRepo.ReminderRepository {
	return &reminderRepository{}
}

func (r *reminderRepository) Create(db *gorm.DB, reminder *entity.Reminder) error {
	return db.Create(reminder).Error
}

func (r *reminderRepository) Update(db *gorm.DB, reminder *entity.Reminder) error {
	return db.Save(reminder).Error
}

func (r *reminderRepository) FindByID(db *gorm.DB, id int64) (*entity.Reminder, error) {
	var reminder entity.Reminder
	err := db.Where("id = ?", id).First(&reminder).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &reminder, nil
}

func (r *reminderRepository) Delete(db *gorm.DB, id int64) error {
	return db.Where("id = ?", id).Delete(&entity.Reminder{}).Error
}

func (r *reminderRepository) FindByUserID(db *gorm.DB, userID int64) ([]entity.Reminder, error) {
	var list []entity.Reminder
	err := db.Where("user_id = ?", userID).
		Order("scheduled_time ASC").
		Find(&list).Error
	return list, err
}

func (r *reminderRepository) FindByUserAndType(db *gorm.DB, userID int64, reminderType string) ([]entity.Reminder, error) {
	var list []entity.Reminder
	err := db.Where("user_id = ? AND reminder_type = ?", userID, reminderType).
		Order("scheduled_time ASC").
		Find(&list).Error
	return list, err
}

func (r *reminderRepository) FindPendingDue(db *gorm.DB, now time.Time) ([]entity.Reminder, error) {
	var list []entity.Reminder
	err := db.Where("status = ? AND scheduled_time <= ?", entity.ReminderStatusPending, now).
		Order("scheduled_time ASC").
		Find(&list).Error
	return list, err
}

func (r *reminderRepository) FindDayByUser(db *gorm.DB, userID int64, dayStart, dayEnd time.Time) ([]entity.Reminder, error) {
	var list []entity.Reminder
	err := db.Where("user_id = ? AND scheduled_time >= ? AND scheduled_time < ?", userID, dayStart, dayEnd).
		Order("scheduled_time ASC").
		Find(&list).Error
	return list, err
}

func (r *reminderRepository) FindWindowByUser(db *gorm.DB, userID int64, start, end time.Time, limit int) ([]entity.Reminder, error) {
	var list []entity.Reminder
	err := db.Where("user_id = ? AND scheduled_time >= ? AND scheduled_time <= ?", userID, start, end).
		Order("scheduled_time DESC").
		Limit(limit).
		Find(&list).Error
	return list, err
}

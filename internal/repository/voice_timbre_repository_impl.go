package repository

import (
	"errors"

	"eldercare-manager-api/internal/domain/entity"
	domainRepo "eldercare-manager-api/internal/domain/repository"

	"gorm.io/gorm"
)

type voiceTimbreRepository struct{}

func NewVoiceTimbreRepository() domainRepo.VoiceTimbreRepository {
	return &voiceTimbreRepository{}
}

func (r *voiceTimbreRepository) Create(db *gorm.DB, timbre *entity.VoiceTimbre) error {
	return db.Create(timbre).Error
}

func (r *voiceTimbreRepository) FindByID(db *gorm.DB, id string) (*entity.VoiceTimbre, error) {
	var timbre entity.VoiceTimbre
	err := db.Where("id = ?", id).First(&timbre).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &timbre, nil
}

func (r *voiceTimbreRepository) FindByCreator(db *gorm.DB, userID int64) ([]entity.VoiceTimbre, error) {
	var list []entity.VoiceTimbre
	err := db.Where("creator = ?", userID).
		Order("sort DESC").
		Find(&list).Error
	return list, err
}

func (r *voiceTimbreRepository) Delete(db *gorm.DB, id string) error {
	return db.Where("id = ?", id).Delete(&entity.VoiceTimbre{}).Error
}

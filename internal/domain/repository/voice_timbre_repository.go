package repository

import (
	"eldercare-manager-api/internal/domain/entity"

	"gorm.io/gorm"
)

type VoiceTimbreRepository interface {
	Create(db *gorm.DB, timbre *entity.VoiceTimbre) error
	// FindByID returns (nil, nil) when absent.
	FindByID(db *gorm.DB, id string) (*entity.VoiceTimbre, error)
	FindByCreator(db *gorm.DB, userID int64) ([]entity.VoiceTimbre, error)
	Delete(db *gorm.DB, id string) error
}

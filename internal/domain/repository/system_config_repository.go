package repository

import (
	"eldercare-manager-api/internal/domain/entity"

	"gorm.io/gorm"
)

type SystemConfigRepository interface {
	Create(db *gorm.DB, cfg *entity.SystemConfig) error
	Update(db *gorm.DB, cfg *entity.SystemConfig) error
	// FindByKey returns (nil, nil) when the key is absent.
	FindByKey(db *gorm.DB, key string) (*entity.SystemConfig, error)
	FindByCategory(db *gorm.DB, category string) ([]entity.SystemConfig, error)
	FindPublic(db *gorm.DB) ([]entity.SystemConfig, error)
}

package repository

import (
	"errors"

	"eldercare-manager-api/internal/domain/entity"
	domainRepo "eldercare-manager-api/internal/domain/repository"

	"gorm.io/gorm"
)

type systemConfigRepository struct{}

func NewSystemConfigRepository() domainRepo.SystemConfigRepository {
	return &systemConfigRepository{}
}

func (r *systemConfigRepository) Create(db *gorm.DB, cfg *entity.SystemConfig) error {
	return db.Create(cfg).Error
}

func (r *systemConfigRepository) Update(db *gorm.DB, cfg *entity.SystemConfig) error {
	return db.Save(cfg).Error
}

func (r *systemConfigRepository) FindByKey(db *gorm.DB, key string) (*entity.SystemConfig, error) {
	var cfg entity.SystemConfig
	err := db.Where("config_key = ?", key).First(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *systemConfigRepository) FindByCategory(db *gorm.DB, category string) ([]entity.SystemConfig, error) {
	var list []entity.SystemConfig
	err := db.Where("category = ?", category).
		Order("config_key ASC").
		Find(&list).Error
	return list, err
}

func (r *systemConfigRepository) FindPublic(db *gorm.DB) ([]entity.SystemConfig, error) {
	var list []entity.SystemConfig
	err := db.Where("is_public = 1").
		Order("config_key ASC").
		Find(&list).Error
	return list, err
}

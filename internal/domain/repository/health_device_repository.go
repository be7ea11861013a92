package repository

import (
	"eldercare-manager-api/internal/domain/entity"

	"gorm.io/gorm"
)

type HealthDeviceRepository interface {
	Create(db *gorm.DB, device *entity.HealthDevice) error
	Update(db *gorm.DB, device *entity.HealthDevice) error
	FindByID(db *gorm.DB, id int64) (*entity.HealthDevice, error)
	FindByUserID(db *gorm.DB, userID int64) ([]entity.HealthDevice, error)
	FindConnectedByUserID(db *gorm.DB, userID int64) ([]entity.HealthDevice, error)
	// FindByMacAddress returns (nil, nil) when no device matches; mac
	// uniqueness is convention, not a constraint enforced here.
	FindByMacAddress(db *gorm.DB, mac string) (*entity.HealthDevice, error)
}

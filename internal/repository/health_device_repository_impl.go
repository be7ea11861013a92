package repository

import (
	"errors"

	"eldercare-manager-api/internal/domain/entity"
	domainRepo "eldercare-manager-api/internal/domain/repository"

	"gorm.io/gorm"
)

type healthDeviceRepository struct{}

func NewHealthDeviceRepository() domainRepo.HealthDeviceRepository {
	return &healthDeviceRepository{}
}

func (r *healthDeviceRepository) Create(db *gorm.DB, device *entity.HealthDevice) error {
	return db.Create(device).Error
}

func (r *healthDeviceRepository) Update(db *gorm.DB, device *entity.HealthDevice) error {
	return db.Save(device).Error
}

func (r *healthDeviceRepository) FindByID(db *gorm.DB, id int64) (*entity.HealthDevice, error) {
	var device entity.HealthDevice
	err := db.Where("id = ?", id).First(&device).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &device, nil
}

func (r *healthDeviceRepository) FindByUserID(db *gorm.DB, userID int64) ([]entity.HealthDevice, error) {
	var list []entity.HealthDevice
	err := db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *healthDeviceRepository) FindConnectedByUserID(db *gorm.DB, userID int64) ([]entity.HealthDevice, error) {
	var list []entity.HealthDevice
	err := db.Where("user_id = ? AND connection_status = ?", userID, entity.DeviceStatusConnected).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *healthDeviceRepository) FindByMacAddress(db *gorm.DB, mac string) (*entity.HealthDevice, error) {
	var device entity.HealthDevice
	err := db.Where("mac_address = ?", mac).First(&device).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &device, nil
}

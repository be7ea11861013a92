package repository

import (
	"time"

	"eldercare-manager-api/internal/domain/entity"

	"gorm.io/gorm"
)

// HealthDataFilter narrows paged sample queries. Zero values mean
// "no constraint".
type HealthDataFilter struct {
	UserID     int64
	DeviceID   int64
	DataSource string
	Page       int
	Limit      int
}

type HealthDataRepository interface {
	Create(db *gorm.DB, data *entity.HealthData) error
	Update(db *gorm.DB, data *entity.HealthData) error
	FindByID(db *gorm.DB, id int64) (*entity.HealthData, error)
	DeleteByIDs(db *gorm.DB, ids []int64) error
	// Page returns samples newest-first together with the total row count.
	Page(db *gorm.DB, filter HealthDataFilter) ([]entity.HealthData, int64, error)
	// FindByUserAndRange is inclusive on both bounds, newest-first.
	FindByUserAndRange(db *gorm.DB, userID int64, start, end time.Time) ([]entity.HealthData, error)
	// FindWindow is FindByUserAndRange with a row cap.
	FindWindow(db *gorm.DB, userID int64, start, end time.Time, limit int) ([]entity.HealthData, error)
	FindLatestByUser(db *gorm.DB, userID int64) (*entity.HealthData, error)
}

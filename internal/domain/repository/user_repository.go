package repository

import (
	"eldercare-manager-api/internal/domain/entity"

	"gorm.io/gorm"
)

// UserRepository finders return (nil, nil) when no row matches.
type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	Update(db *gorm.DB, user *entity.User) error
	FindByID(db *gorm.DB, id int64) (*entity.User, error)
	FindByUsername(db *gorm.DB, username string) (*entity.User, error)
	FindByPhone(db *gorm.DB, phone string) (*entity.User, error)
	FindByEmail(db *gorm.DB, email string) (*entity.User, error)
}

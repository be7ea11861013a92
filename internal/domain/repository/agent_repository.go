package repository

import (
	"eldercare-manager-api/internal/domain/entity"

	"gorm.io/gorm"
)

// AgentRepository reads from the agent subsystem's table; only the TTS
// voice binding is ever written from this service.
type AgentRepository interface {
	FindByUserID(db *gorm.DB, userID int64) ([]entity.Agent, error)
	// FindByID returns (nil, nil) when absent.
	FindByID(db *gorm.DB, id string) (*entity.Agent, error)
	Update(db *gorm.DB, agent *entity.Agent) error
}

package repository

import (
	"errors"

	"eldercare-manager-api/internal/domain/entity"
	domainRepo "eldercare-manager-api/internal/domain/repository"

	"gorm.io/gorm"
)

type agentRepository struct{}

func NewAgentRepository() domainRepo.AgentRepository {
	return &agentRepository{}
}

func (r *agentRepository) FindByUserID(db *gorm.DB, userID int64) ([]entity.Agent, error) {
	var list []entity.Agent
	err := db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *agentRepository) FindByID(db *gorm.DB, id string) (*entity.Agent, error) {
	var agent entity.Agent
	err := db.Where("id = ?", id).First(&agent).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &agent, nil
}

func (r *agentRepository) Update(db *gorm.DB, agent *entity.Agent) error {
	return db.Save(agent).Error
}

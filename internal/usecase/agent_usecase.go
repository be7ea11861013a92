package usecase

import (
	"context"
	"errors"

	"eldercare-manager-api/internal/converter"
	"eldercare-manager-api/internal/delivery/dto"
	"eldercare-manager-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrAgentNotFound = errors.New("agent not found")

type AgentUsecase interface {
	List(ctx context.Context, userID int64) ([]dto.AgentResponse, error)
	GetByID(ctx context.Context, id string) (*dto.AgentResponse, error)
	UpdateVoice(ctx context.Context, id string, req *dto.UpdateAgentVoiceRequest) (*dto.AgentResponse, error)
	SetDefaultAgent(ctx context.Context, userID int64, agentID string) error
}

type agentUsecase struct {
	db        *gorm.DB
	log       *logrus.Logger
	agentRepo repository.AgentRepository
	userRepo  repository.UserRepository
}

func NewAgentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	agentRepo repository.AgentRepository,
	userRepo repository.UserRepository,
) AgentUsecase {
	return &agentUsecase{
		db:        db,
		log:       log,
		agentRepo: agentRepo,
		userRepo:  userRepo,
	}
}

func (u *agentUsecase) List(ctx context.Context, userID int64) ([]dto.AgentResponse, error) {
	agents, err := u.agentRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to list agents: %+v", err)
		return nil, err
	}

	return converter.AgentsToResponses(agents), nil
}

func (u *agentUsecase) GetByID(ctx context.Context, id string) (*dto.AgentResponse, error) {
	agent, err := u.agentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find agent: %+v", err)
		return nil, err
	}
	if agent == nil {
		return nil, ErrAgentNotFound
	}

	return converter.AgentToResponse(agent), nil
}

// UpdateVoice rebinds the agent's TTS voice. The only write this service
// ever makes to the agent table.
func (u *agentUsecase) UpdateVoice(ctx context.Context, id string, req *dto.UpdateAgentVoiceRequest) (*dto.AgentResponse, error) {
	agent, err := u.agentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find agent: %+v", err)
		return nil, err
	}
	if agent == nil {
		return nil, ErrAgentNotFound
	}

	agent.TTSVoiceID = req.TTSVoiceID

	if err := u.agentRepo.Update(u.db.WithContext(ctx), agent); err != nil {
		u.log.Warnf("Failed to update agent voice: %+v", err)
		return nil, err
	}

	return converter.AgentToResponse(agent), nil
}

// SetDefaultAgent records the user's preferred agent. Agent-side default
// flags are owned by the agent subsystem, so only the user row changes.
func (u *agentUsecase) SetDefaultAgent(ctx context.Context, userID int64, agentID string) error {
	agent, err := u.agentRepo.FindByID(u.db.WithContext(ctx), agentID)
	if err != nil {
		u.log.Warnf("Failed to find agent: %+v", err)
		return err
	}
	if agent == nil {
		return ErrAgentNotFound
	}

	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	user.CurrentAiAgentID = agentID

	if err := u.userRepo.Update(u.db.WithContext(ctx), user); err != nil {
		u.log.Warnf("Failed to set default agent: %+v", err)
		return err
	}

	return nil
}

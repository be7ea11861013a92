package converter

import (
	"eldercare-manager-api/internal/delivery/dto"
	"eldercare-manager-api/internal/domain/entity"
)

// AgentToResponse converts an Agent entity to AgentResponse DTO. The
// agent table is managed by the agent subsystem, so no agent here is
// ever the platform default.
func AgentToResponse(agent *entity.Agent) *dto.AgentResponse {
	if agent == nil {
		return nil
	}

	createdAt := agent.CreatedAt
	return &dto.AgentResponse{
		ID:         agent.ID,
		AgentName:  agent.AgentName,
		Name:       agent.AgentName,
		TTSVoiceID: agent.TTSVoiceID,
		TTSModelID: agent.TTSModelID,
		IsDefault:  false,
		CreatedAt:  &createdAt,
	}
}

// AgentsToResponses converts a slice of Agent entities to slice of AgentResponse DTOs
func AgentsToResponses(agents []entity.Agent) []dto.AgentResponse {
	responses := make([]dto.AgentResponse, len(agents))
	for i := range agents {
		responses[i] = *AgentToResponse(&agents[i])
	}
	return responses
}

package dto

import "time"

type UpdateAgentVoiceRequest struct {
	TTSVoiceID string `json:"ttsVoiceId" validate:"required"`
}

type AgentResponse struct {
	ID         string     `json:"id"`
	AgentName  string     `json:"agentName"`
	Name       string     `json:"name"`
	TTSVoiceID string     `json:"ttsVoiceId,omitempty"`
	TTSModelID string     `json:"ttsModelId,omitempty"`
	IsDefault  bool       `json:"isDefault"`
	CreatedAt  *time.Time `json:"createdAt"`
}

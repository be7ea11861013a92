package entity

import "time"

// Agent is a read-mostly projection of the externally-owned ai_agent
// table. This service only lists agents and updates their TTS voice
// binding; agent lifecycle is managed by the agent subsystem.
type Agent struct {
	ID              string     `gorm:"type:char(32);primaryKey" json:"id"`
	UserID          int64      `gorm:"index" json:"userId"`
	AgentName       string     `gorm:"type:varchar(100)" json:"agentName"`
	TTSVoiceID      string     `gorm:"type:varchar(32)" json:"ttsVoiceId"`
	TTSModelID      string     `gorm:"type:varchar(50)" json:"ttsModelId"`
	LastConnectedAt *time.Time `json:"lastConnectedAt"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"createdAt"`
}

func (Agent) TableName() string {
	return "ai_agent"
}

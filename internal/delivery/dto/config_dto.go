package dto

import "time"

type UpdateConfigValueRequest struct {
	ConfigValue string `json:"configValue" validate:"required"`
}

type CreateConfigRequest struct {
	ConfigKey   string `json:"configKey" validate:"required,configkey"`
	ConfigValue string `json:"configValue" validate:"required"`
	ConfigType  string `json:"configType" validate:"required,oneof=string number boolean json"`
	Description string `json:"description" validate:"omitempty"`
	Category    string `json:"category" validate:"omitempty,oneof=system health emergency tts device"`
	IsPublic    int    `json:"isPublic" validate:"omitempty,oneof=0 1"`
}

// BatchUpdateConfigsRequest maps configKey to new raw value. Updates are
// best-effort: keys that fail are reported, the rest stay applied.
type BatchUpdateConfigsRequest struct {
	Configs map[string]string `json:"configs" validate:"required,min=1"`
}

// BatchUpdateResult reports which keys could not be applied.
type BatchUpdateResult struct {
	Updated    int      `json:"updated"`
	FailedKeys []string `json:"failedKeys"`
}

type ConfigResponse struct {
	ConfigKey   string    `json:"configKey"`
	ConfigValue string    `json:"configValue"`
	ConfigType  string    `json:"configType"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	IsPublic    int       `json:"isPublic"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

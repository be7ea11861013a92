package converter

import (
	"eldercare-manager-api/internal/delivery/dto"
	"eldercare-manager-api/internal/domain/entity"
)

// SystemConfigToResponse converts a SystemConfig entity to ConfigResponse DTO
func SystemConfigToResponse(config *entity.SystemConfig) *dto.ConfigResponse {
	if config == nil {
		return nil
	}

	return &dto.ConfigResponse{
		ConfigKey:   config.ConfigKey,
		ConfigValue: config.ConfigValue,
		ConfigType:  config.ConfigType,
		Description: config.Description,
		Category:    config.Category,
		IsPublic:    config.IsPublic,
		UpdatedAt:   config.UpdatedAt,
	}
}

// SystemConfigsToResponses converts a slice of SystemConfig entities to slice of ConfigResponse DTOs
func SystemConfigsToResponses(configs []entity.SystemConfig) []dto.ConfigResponse {
	responses := make([]dto.ConfigResponse, len(configs))
	for i := range configs {
		responses[i] = *SystemConfigToResponse(&configs[i])
	}
	return responses
}

package converter

import (
	"eldercare-manager-api/internal/delivery/dto"
	"eldercare-manager-api/internal/domain/entity"
)

// HealthDeviceToResponse converts a HealthDevice entity to DeviceResponse DTO
func HealthDeviceToResponse(device *entity.HealthDevice) *dto.DeviceResponse {
	if device == nil {
		return nil
	}

	return &dto.DeviceResponse{
		ID:               device.ID,
		UserID:           device.UserID,
		AiAgentID:        device.AiAgentID,
		DeviceName:       device.DeviceName,
		DeviceType:       device.DeviceType,
		DeviceBrand:      device.DeviceBrand,
		DeviceModel:      device.DeviceModel,
		MacAddress:       device.MacAddress,
		ConnectionStatus: device.ConnectionStatus,
		BatteryLevel:     device.BatteryLevel,
		FirmwareVersion:  device.FirmwareVersion,
		LastSyncTime:     device.LastSyncTime,
		IsActive:         device.IsActive,
		CreatedAt:        device.CreatedAt,
	}
}

// HealthDevicesToResponses converts a slice of HealthDevice entities to slice of DeviceResponse DTOs
func HealthDevicesToResponses(devices []entity.HealthDevice) []dto.DeviceResponse {
	responses := make([]dto.DeviceResponse, len(devices))
	for i := range devices {
		responses[i] = *HealthDeviceToResponse(&devices[i])
	}
	return responses
}

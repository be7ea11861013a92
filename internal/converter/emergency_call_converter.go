package converter

import (
	"eldercare-manager-api/internal/delivery/dto"
	"eldercare-manager-api/internal/domain/entity"
)

// EmergencyCallToResponse converts an EmergencyCall entity to EmergencyCallResponse DTO
func EmergencyCallToResponse(call *entity.EmergencyCall) *dto.EmergencyCallResponse {
	if call == nil {
		return nil
	}

	return &dto.EmergencyCallResponse{
		ID:                call.ID,
		UserID:            call.UserID,
		HealthDeviceID:    call.HealthDeviceID,
		AiDeviceID:        call.AiDeviceID,
		EmergencyType:     call.EmergencyType,
		TriggerSource:     call.TriggerSource,
		Timestamp:         call.Timestamp,
		LocationGps:       call.LocationGps,
		LocationAddress:   call.LocationAddress,
		IndoorLocation:    call.IndoorLocation,
		SeverityLevel:     call.SeverityLevel,
		AutoCallTriggered: call.AutoCallTriggered,
		CallNumbers:       call.CallNumbers,
		CallResults:       call.CallResults,
		ResponseTime:      call.ResponseTime,
		Status:            call.Status,
		HandlerInfo:       call.HandlerInfo,
		ResolutionNotes:   call.ResolutionNotes,
		CreatedAt:         call.CreatedAt,
	}
}

// EmergencyCallsToResponses converts a slice of EmergencyCall entities to slice of EmergencyCallResponse DTOs
func EmergencyCallsToResponses(calls []entity.EmergencyCall) []dto.EmergencyCallResponse {
	responses := make([]dto.EmergencyCallResponse, len(calls))
	for i := range calls {
		responses[i] = *EmergencyCallToResponse(&calls[i])
	}
	return responses
}

package converter

import (
	"eldercare-manager-api/internal/delivery/dto"
	"eldercare-manager-api/internal/domain/entity"
)

// HealthDataToResponse converts a HealthData entity to HealthDataResponse DTO
func HealthDataToResponse(data *entity.HealthData) *dto.HealthDataResponse {
	if data == nil {
		return nil
	}

	return &dto.HealthDataResponse{
		ID:                     data.ID,
		UserID:                 data.UserID,
		HealthDeviceID:         data.HealthDeviceID,
		AiDeviceID:             data.AiDeviceID,
		Timestamp:              data.Timestamp,
		DataType:               data.DataType,
		HeartRate:              data.HeartRate,
		BloodPressureSystolic:  data.BloodPressureSystolic,
		BloodPressureDiastolic: data.BloodPressureDiastolic,
		BloodGlucose:           data.BloodGlucose,
		BodyTemperature:        data.BodyTemperature,
		BloodOxygen:            data.BloodOxygen,
		StepCount:              data.StepCount,
		ActivityLevel:          data.ActivityLevel,
		SleepDuration:          data.SleepDuration,
		FallDetected:           data.FallDetected,
		AbnormalHeartRate:      data.AbnormalHeartRate,
		DataSource:             data.DataSource,
		CreatedAt:              data.CreatedAt,
	}
}

// HealthDataToResponses converts a slice of HealthData entities to slice of HealthDataResponse DTOs
func HealthDataToResponses(list []entity.HealthData) []dto.HealthDataResponse {
	responses := make([]dto.HealthDataResponse, len(list))
	for i := range list {
		responses[i] = *HealthDataToResponse(&list[i])
	}
	return responses
}

package converter

import (
	"eldercare-manager-api/internal/delivery/dto"
	"eldercare-manager-api/internal/domain/entity"
)

// VoiceTimbreToResponse converts a VoiceTimbre entity to VoiceCloneResponse DTO
func VoiceTimbreToResponse(timbre *entity.VoiceTimbre) *dto.VoiceCloneResponse {
	if timbre == nil {
		return nil
	}

	return &dto.VoiceCloneResponse{
		ID:             timbre.ID,
		Name:           timbre.Name,
		ReferenceText:  timbre.ReferenceText,
		ReferenceAudio: timbre.ReferenceAudio,
		TTSVoice:       timbre.TTSVoice,
		TTSModelID:     timbre.TTSModelID,
		Languages:      timbre.Languages,
		VoiceDemo:      timbre.VoiceDemo,
		CreatedAt:      timbre.CreatedAt,
	}
}

// VoiceTimbresToResponses converts a slice of VoiceTimbre entities to slice of VoiceCloneResponse DTOs
func VoiceTimbresToResponses(timbres []entity.VoiceTimbre) []dto.VoiceCloneResponse {
	responses := make([]dto.VoiceCloneResponse, len(timbres))
	for i := range timbres {
		responses[i] = *VoiceTimbreToResponse(&timbres[i])
	}
	return responses
}

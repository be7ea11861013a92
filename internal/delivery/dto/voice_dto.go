package dto

import "time"

// VoiceCloneRequest carries the multipart form fields; the audio file
// itself is read from the request by the handler.
type VoiceCloneRequest struct {
	UserID        int64  `json:"userId" validate:"required"`
	Name          string `json:"name" validate:"required"`
	ReferenceText string `json:"referenceText" validate:"required"`
	TTSModelID    string `json:"ttsModelId" validate:"omitempty"`
}

type TestVoiceRequest struct {
	VoiceID  string `json:"voiceId" validate:"required"`
	TestText string `json:"testText" validate:"required"`
}

type VoiceCloneResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	ReferenceText  string    `json:"referenceText,omitempty"`
	ReferenceAudio string    `json:"referenceAudio,omitempty"`
	TTSVoice       string    `json:"ttsVoice,omitempty"`
	TTSModelID     string    `json:"ttsModelId,omitempty"`
	Languages      string    `json:"languages,omitempty"`
	VoiceDemo      string    `json:"voiceDemo,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

package entity

import "time"

// DefaultTTSModelID is used when a clone request does not name a model.
const DefaultTTSModelID = "TTS_CosyVoiceClone302AI"

// VoiceTimbre is a cloned voice profile. The reference audio lives on
// disk under the configured upload directory; ReferenceAudio stores the
// relative path.
type VoiceTimbre struct {
	ID             string    `gorm:"type:char(32);primaryKey" json:"id"`
	Name           string    `gorm:"type:varchar(100);not null" json:"name"`
	ReferenceText  string    `gorm:"type:text" json:"referenceText"`
	ReferenceAudio string    `gorm:"type:varchar(255)" json:"referenceAudio"`
	TTSVoice       string    `gorm:"type:char(32)" json:"ttsVoice"`
	TTSModelID     string    `gorm:"type:varchar(50)" json:"ttsModelId"`
	Languages      string    `gorm:"type:varchar(10)" json:"languages"`
	VoiceDemo      string    `gorm:"type:varchar(255)" json:"voiceDemo"`
	Sort           int64     `json:"sort"`
	Creator        int64     `gorm:"index" json:"creator"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (VoiceTimbre) TableName() string {
	return "ec_voice_timbres"
}

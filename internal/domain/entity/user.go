package entity

import "time"

// User statuses. Accounts are disabled, never hard-deleted.
const (
	UserStatusDisabled = 0
	UserStatusEnabled  = 1
)

// User is a caregiver/family account owning one elder profile.
type User struct {
	ID                 int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Username           string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	Password           string    `gorm:"type:varchar(255);not null" json:"-"`
	RealName           string    `gorm:"type:varchar(50)" json:"realName"`
	Phone              string    `gorm:"type:varchar(20);uniqueIndex" json:"phone"`
	Email              string    `gorm:"type:varchar(100);uniqueIndex" json:"email"`
	ElderName          string    `gorm:"type:varchar(50)" json:"elderName"`
	ElderRelation      string    `gorm:"type:varchar(20)" json:"elderRelation"`
	ElderProfile       string    `gorm:"type:text" json:"elderProfile"`
	FamilyContacts     string    `gorm:"type:text" json:"familyContacts"`
	CurrentAiAgentID   string    `gorm:"type:varchar(32)" json:"currentAiAgentId"`
	CurrentAiDeviceID  string    `gorm:"type:varchar(32)" json:"currentAiDeviceId"`
	DeviceAgentMapping string    `gorm:"type:text" json:"deviceAgentMapping"`
	Status             int       `gorm:"not null;default:1" json:"status"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (User) TableName() string {
	return "ec_users"
}

package entity

import "time"

// Emergency call statuses.
const (
	EmergencyStatusTriggered  = "triggered"
	EmergencyStatusCalling    = "calling"
	EmergencyStatusAnswered   = "answered"
	EmergencyStatusResolved   = "resolved"
	EmergencyStatusFalseAlarm = "false_alarm"
)

// Severity bounds: 1 mild, 2 moderate, 3 severe, 4 critical.
const (
	SeverityMin = 1
	SeverityMax = 4
)

// EmergencyCall is an incident record for a detected or manually
// triggered emergency event. Dialing itself happens outside this service.
type EmergencyCall struct {
	ID                  int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID              int64      `gorm:"not null;index" json:"userId"`
	HealthDeviceID      *int64     `json:"healthDeviceId"`
	AiDeviceID          string     `gorm:"type:varchar(32)" json:"aiDeviceId"`
	EmergencyType       string     `gorm:"type:varchar(30);not null" json:"emergencyType"`
	TriggerSource       string     `gorm:"type:varchar(20)" json:"triggerSource"`
	Timestamp           time.Time  `gorm:"not null;index" json:"timestamp"`
	LocationGps         string     `gorm:"type:varchar(50)" json:"locationGps"`
	LocationAddress     string     `gorm:"type:varchar(255)" json:"locationAddress"`
	IndoorLocation      string     `gorm:"type:varchar(50)" json:"indoorLocation"`
	EmergencyHealthData string     `gorm:"type:text" json:"emergencyHealthData"`
	SeverityLevel       int        `gorm:"not null;default:1" json:"severityLevel"`
	AutoCallTriggered   int        `gorm:"not null;default:0" json:"autoCallTriggered"`
	CallNumbers         string     `gorm:"type:text" json:"callNumbers"`
	CallResults         string     `gorm:"type:text" json:"callResults"`
	ResponseTime        *time.Time `json:"responseTime"`
	Status              string     `gorm:"type:varchar(20);not null;index" json:"status"`
	HandlerInfo         string     `gorm:"type:text" json:"handlerInfo"`
	ResolutionNotes     string     `gorm:"type:text" json:"resolutionNotes"`
	CreatedAt           time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt           time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (EmergencyCall) TableName() string {
	return "ec_emergency_calls"
}

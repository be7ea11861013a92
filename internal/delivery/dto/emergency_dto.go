package dto

import "time"

type TriggerEmergencyRequest struct {
	UserID              int64  `json:"userId" validate:"required"`
	HealthDeviceID      *int64 `json:"healthDeviceId" validate:"omitempty"`
	AiDeviceID          string `json:"aiDeviceId" validate:"omitempty"`
	EmergencyType       string `json:"emergencyType" validate:"required,oneof=fall_detected heart_rate_abnormal manual_trigger no_response medical_emergency"`
	TriggerSource       string `json:"triggerSource" validate:"required,oneof=wearable_device ai_device manual sensor"`
	Timestamp           string `json:"timestamp" validate:"omitempty"`
	LocationGps         string `json:"locationGps" validate:"omitempty"`
	LocationAddress     string `json:"locationAddress" validate:"omitempty"`
	IndoorLocation      string `json:"indoorLocation" validate:"omitempty"`
	EmergencyHealthData string `json:"emergencyHealthData" validate:"omitempty"`
	SeverityLevel       int    `json:"severityLevel" validate:"omitempty,gte=1,lte=4"`
	CallNumbers         string `json:"callNumbers" validate:"omitempty"`
}

type HandleEmergencyRequest struct {
	HandlerInfo string `json:"handlerInfo" validate:"required"`
	Notes       string `json:"notes" validate:"omitempty"`
}

type FalseAlarmRequest struct {
	Reason string `json:"reason" validate:"required"`
}

type UpdateEmergencyStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=triggered calling answered resolved false_alarm"`
}

type EmergencyCallResponse struct {
	ID                int64      `json:"id"`
	UserID            int64      `json:"userId"`
	HealthDeviceID    *int64     `json:"healthDeviceId"`
	AiDeviceID        string     `json:"aiDeviceId,omitempty"`
	EmergencyType     string     `json:"emergencyType"`
	TriggerSource     string     `json:"triggerSource,omitempty"`
	Timestamp         time.Time  `json:"timestamp"`
	LocationGps       string     `json:"locationGps,omitempty"`
	LocationAddress   string     `json:"locationAddress,omitempty"`
	IndoorLocation    string     `json:"indoorLocation,omitempty"`
	SeverityLevel     int        `json:"severityLevel"`
	AutoCallTriggered int        `json:"autoCallTriggered"`
	CallNumbers       string     `json:"callNumbers,omitempty"`
	CallResults       string     `json:"callResults,omitempty"`
	ResponseTime      *time.Time `json:"responseTime"`
	Status            string     `json:"status"`
	HandlerInfo       string     `json:"handlerInfo,omitempty"`
	ResolutionNotes   string     `json:"resolutionNotes,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
}

// EmergencyStatisticsResponse keys follow the monitor consumers
// (snake_case).
type EmergencyStatisticsResponse struct {
	UserID     int64          `json:"user_id"`
	StartDate  string         `json:"start_date"`
	EndDate    string         `json:"end_date"`
	Total      int            `json:"total"`
	ByStatus   map[string]int `json:"by_status"`
	BySeverity map[string]int `json:"by_severity"`
}

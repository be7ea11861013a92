package dto

// Monitor payloads keep the snake_case keys the dashboard consumes.

type MonitorDataResponse struct {
	Success        bool                    `json:"success"`
	Message        string                  `json:"message,omitempty"`
	HealthData     []HealthDataResponse    `json:"health_data"`
	Reminders      []ReminderResponse      `json:"reminders"`
	EmergencyCalls []EmergencyCallResponse `json:"emergency_calls"`
	DeviceStatus   string                  `json:"device_status"`
	LastActivity   string                  `json:"last_activity"`
}

type DeviceStatusResponse struct {
	DeviceID     string `json:"device_id"`
	Status       string `json:"status"`
	LastActivity string `json:"last_activity"`
}

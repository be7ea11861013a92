package dto

import "time"

// CreateHealthDataRequest requires the owning user and device; samples
// arriving without either cannot be attributed.
type CreateHealthDataRequest struct {
	UserID                 int64    `json:"userId" validate:"required"`
	HealthDeviceID         int64    `json:"healthDeviceId" validate:"required"`
	AiDeviceID             string   `json:"aiDeviceId" validate:"omitempty"`
	Timestamp              string   `json:"timestamp" validate:"omitempty"`
	DataType               string   `json:"dataType" validate:"omitempty"`
	HeartRate              *int     `json:"heartRate" validate:"omitempty"`
	BloodPressureSystolic  *int     `json:"bloodPressureSystolic" validate:"omitempty"`
	BloodPressureDiastolic *int     `json:"bloodPressureDiastolic" validate:"omitempty"`
	BloodGlucose           *float64 `json:"bloodGlucose" validate:"omitempty"`
	BodyTemperature        *float64 `json:"bodyTemperature" validate:"omitempty"`
	BloodOxygen            *int     `json:"bloodOxygen" validate:"omitempty,gte=0,lte=100"`
	StepCount              *int     `json:"stepCount" validate:"omitempty,gte=0"`
	ActivityLevel          string   `json:"activityLevel" validate:"omitempty,oneof=low medium high"`
	SleepDuration          *int     `json:"sleepDuration" validate:"omitempty,gte=0"`
	FallDetected           int      `json:"fallDetected" validate:"omitempty,oneof=0 1"`
	AbnormalHeartRate      int      `json:"abnormalHeartRate" validate:"omitempty,oneof=0 1"`
	DataSource             string   `json:"dataSource" validate:"omitempty"`
	RawData                string   `json:"rawData" validate:"omitempty"`
}

// UpdateHealthDataRequest only requires the row id; ownership fields are
// immutable after creation.
type UpdateHealthDataRequest struct {
	ID                     int64    `json:"id" validate:"required"`
	HeartRate              *int     `json:"heartRate" validate:"omitempty"`
	BloodPressureSystolic  *int     `json:"bloodPressureSystolic" validate:"omitempty"`
	BloodPressureDiastolic *int     `json:"bloodPressureDiastolic" validate:"omitempty"`
	BloodGlucose           *float64 `json:"bloodGlucose" validate:"omitempty"`
	BodyTemperature        *float64 `json:"bodyTemperature" validate:"omitempty"`
	BloodOxygen            *int     `json:"bloodOxygen" validate:"omitempty,gte=0,lte=100"`
	ActivityLevel          string   `json:"activityLevel" validate:"omitempty,oneof=low medium high"`
	FallDetected           *int     `json:"fallDetected" validate:"omitempty,oneof=0 1"`
	DataQuality            string   `json:"dataQuality" validate:"omitempty,oneof=good fair poor"`
}

type HealthDataResponse struct {
	ID                     int64     `json:"id"`
	UserID                 int64     `json:"userId"`
	HealthDeviceID         *int64    `json:"healthDeviceId"`
	AiDeviceID             string    `json:"aiDeviceId,omitempty"`
	Timestamp              time.Time `json:"timestamp"`
	DataType               string    `json:"dataType,omitempty"`
	HeartRate              *int      `json:"heartRate"`
	BloodPressureSystolic  *int      `json:"bloodPressureSystolic"`
	BloodPressureDiastolic *int      `json:"bloodPressureDiastolic"`
	BloodGlucose           *float64  `json:"bloodGlucose"`
	BodyTemperature        *float64  `json:"bodyTemperature"`
	BloodOxygen            *int      `json:"bloodOxygen"`
	StepCount              *int      `json:"stepCount"`
	ActivityLevel          string    `json:"activityLevel,omitempty"`
	SleepDuration          *int      `json:"sleepDuration"`
	FallDetected           int       `json:"fallDetected"`
	AbnormalHeartRate      int       `json:"abnormalHeartRate"`
	DataSource             string    `json:"dataSource,omitempty"`
	CreatedAt              time.Time `json:"createdAt"`
}

type PageResponse struct {
	List  interface{} `json:"list"`
	Total int64       `json:"total"`
	Page  int         `json:"page"`
	Limit int         `json:"limit"`
}

// HealthReportResponse keys follow the report consumers (snake_case).
type HealthReportResponse struct {
	UserID             int64   `json:"user_id"`
	StartDate          string  `json:"start_date"`
	EndDate            string  `json:"end_date"`
	DataCount          int     `json:"data_count"`
	AverageHeartRate   float64 `json:"average_heart_rate"`
	AverageSystolicBP  float64 `json:"average_blood_pressure"`
	AverageTemperature float64 `json:"average_temperature"`
	HealthStatus       string  `json:"health_status"`
}

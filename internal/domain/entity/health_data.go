package entity

import "time"

// HealthData is one vital-sign sample. Rows are append-only: they are
// written once per device reading and never mutated afterwards.
type HealthData struct {
	ID                     int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID                 int64     `gorm:"not null;index" json:"userId"`
	HealthDeviceID         *int64    `gorm:"index" json:"healthDeviceId"`
	AiDeviceID             string    `gorm:"type:varchar(32)" json:"aiDeviceId"`
	Timestamp              time.Time `gorm:"not null;index" json:"timestamp"`
	DataType               string    `gorm:"type:varchar(30)" json:"dataType"`
	HeartRate              *int      `json:"heartRate"`
	BloodPressureSystolic  *int      `json:"bloodPressureSystolic"`
	BloodPressureDiastolic *int      `json:"bloodPressureDiastolic"`
	BloodGlucose           *float64  `gorm:"type:decimal(5,2)" json:"bloodGlucose"`
	BodyTemperature        *float64  `gorm:"type:decimal(4,1)" json:"bodyTemperature"`
	BloodOxygen            *int      `json:"bloodOxygen"`
	StepCount              *int      `json:"stepCount"`
	Distance               *float64  `gorm:"type:decimal(6,2)" json:"distance"`
	CaloriesBurned         *int      `json:"caloriesBurned"`
	ActivityLevel          string    `gorm:"type:varchar(10)" json:"activityLevel"`
	ExerciseDuration       *int      `json:"exerciseDuration"`
	SleepDuration          *int      `json:"sleepDuration"`
	DeepSleepDuration      *int      `json:"deepSleepDuration"`
	LightSleepDuration     *int      `json:"lightSleepDuration"`
	SleepQualityScore      *int      `json:"sleepQualityScore"`
	FallDetected           int       `gorm:"not null;default:0" json:"fallDetected"`
	AbnormalHeartRate      int       `gorm:"not null;default:0" json:"abnormalHeartRate"`
	EmergencyTriggered     int       `gorm:"not null;default:0" json:"emergencyTriggered"`
	DataSource             string    `gorm:"type:varchar(20)" json:"dataSource"`
	RawData                string    `gorm:"type:text" json:"rawData"`
	DataQuality            string    `gorm:"type:varchar(10)" json:"dataQuality"`
	CreatedAt              time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (HealthData) TableName() string {
	return "ec_health_data"
}

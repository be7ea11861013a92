package entity

import "time"

// Device connection states. These are database flags only; no device
// protocol is spoken by this service.
const (
	DeviceStatusConnected    = "connected"
	DeviceStatusDisconnected = "disconnected"
	DeviceStatusPairing      = "pairing"
)

// HealthDevice is a paired wearable/sensor owned by one user.
type HealthDevice struct {
	ID               int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID           int64      `gorm:"not null;index" json:"userId"`
	AiAgentID        string     `gorm:"type:varchar(32)" json:"aiAgentId"`
	PluginID         string     `gorm:"type:varchar(64)" json:"pluginId"`
	DeviceName       string     `gorm:"type:varchar(100)" json:"deviceName"`
	DeviceType       string     `gorm:"type:varchar(50)" json:"deviceType"`
	DeviceBrand      string     `gorm:"type:varchar(50)" json:"deviceBrand"`
	DeviceModel      string     `gorm:"type:varchar(100)" json:"deviceModel"`
	MacAddress       string     `gorm:"type:varchar(50);index" json:"macAddress"`
	HealthFeatures   string     `gorm:"type:text" json:"healthFeatures"`
	SensorConfig     string     `gorm:"type:text" json:"sensorConfig"`
	DataSyncConfig   string     `gorm:"type:text" json:"dataSyncConfig"`
	ConnectionStatus string     `gorm:"type:varchar(20)" json:"connectionStatus"`
	BatteryLevel     *int       `json:"batteryLevel"`
	FirmwareVersion  string     `gorm:"type:varchar(50)" json:"firmwareVersion"`
	LastSyncTime     *time.Time `json:"lastSyncTime"`
	IsActive         int        `gorm:"not null;default:1" json:"isActive"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (HealthDevice) TableName() string {
	return "ec_health_devices"
}

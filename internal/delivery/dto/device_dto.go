package dto

import "time"

type PairDeviceRequest struct {
	UserID         int64  `json:"userId" validate:"required"`
	AiAgentID      string `json:"aiAgentId" validate:"omitempty"`
	PluginID       string `json:"pluginId" validate:"omitempty"`
	DeviceName     string `json:"deviceName" validate:"required"`
	DeviceType     string `json:"deviceType" validate:"required"`
	DeviceBrand    string `json:"deviceBrand" validate:"omitempty"`
	DeviceModel    string `json:"deviceModel" validate:"omitempty"`
	MacAddress     string `json:"macAddress" validate:"omitempty"`
	HealthFeatures string `json:"healthFeatures" validate:"omitempty"`
	SensorConfig   string `json:"sensorConfig" validate:"omitempty"`
	DataSyncConfig string `json:"dataSyncConfig" validate:"omitempty"`
}

type UpdateDeviceStatusRequest struct {
	Status       string `json:"status" validate:"required,oneof=connected disconnected pairing"`
	BatteryLevel *int   `json:"batteryLevel" validate:"omitempty,gte=0,lte=100"`
}

type DeviceResponse struct {
	ID               int64      `json:"id"`
	UserID           int64      `json:"userId"`
	AiAgentID        string     `json:"aiAgentId,omitempty"`
	DeviceName       string     `json:"deviceName"`
	DeviceType       string     `json:"deviceType"`
	DeviceBrand      string     `json:"deviceBrand,omitempty"`
	DeviceModel      string     `json:"deviceModel,omitempty"`
	MacAddress       string     `json:"macAddress,omitempty"`
	ConnectionStatus string     `json:"connectionStatus"`
	BatteryLevel     *int       `json:"batteryLevel"`
	FirmwareVersion  string     `json:"firmwareVersion,omitempty"`
	LastSyncTime     *time.Time `json:"lastSyncTime"`
	IsActive         int        `json:"isActive"`
	CreatedAt        time.Time  `json:"createdAt"`
}

package entity

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Config value types. The stored value is always a string; ConfigType
// governs how readers interpret it.
const (
	ConfigTypeString  = "string"
	ConfigTypeNumber  = "number"
	ConfigTypeBoolean = "boolean"
	ConfigTypeJSON    = "json"
)

// SystemConfig is a process-wide key/value setting. It is the only entity
// not owned by a user.
type SystemConfig struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ConfigKey   string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"configKey"`
	ConfigValue string    `gorm:"type:text" json:"configValue"`
	ConfigType  string    `gorm:"type:varchar(10);not null;default:string" json:"configType"`
	Description string    `gorm:"type:varchar(255)" json:"description"`
	Category    string    `gorm:"type:varchar(30)" json:"category"`
	IsPublic    int       `gorm:"not null;default:0" json:"isPublic"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (SystemConfig) TableName() string {
	return "ec_system_config"
}

// Typed accessors. Parse failures yield nil, never an error: consumers
// rely on falling back to their own defaults.

func (c *SystemConfig) ValueAsString() string {
	return c.ConfigValue
}

func (c *SystemConfig) ValueAsInteger() *int {
	v, err := strconv.Atoi(strings.TrimSpace(c.ConfigValue))
	if err != nil {
		return nil
	}
	return &v
}

func (c *SystemConfig) ValueAsFloat() *float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(c.ConfigValue), 64)
	if err != nil {
		return nil
	}
	return &v
}

// ValueAsBoolean accepts "true", "1" and "yes" case-insensitively.
// Everything else reads as false.
func (c *SystemConfig) ValueAsBoolean() *bool {
	v := false
	switch strings.ToLower(strings.TrimSpace(c.ConfigValue)) {
	case "true", "1", "yes":
		v = true
	}
	return &v
}

// ValueAsJSON unmarshals the raw value into target; nil target errors and
// malformed JSON both report false without surfacing the parse error.
func (c *SystemConfig) ValueAsJSON(target interface{}) bool {
	if target == nil {
		return false
	}
	return json.Unmarshal([]byte(c.ConfigValue), target) == nil
}

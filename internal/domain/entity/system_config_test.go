package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemConfigValueAsInteger(t *testing.T) {
	cfg := &SystemConfig{ConfigValue: " 42 "}
	v := cfg.ValueAsInteger()
	require.NotNil(t, v)
	assert.Equal(t, 42, *v)

	cfg.ConfigValue = "abc"
	assert.Nil(t, cfg.ValueAsInteger())

	cfg.ConfigValue = "3.14"
	assert.Nil(t, cfg.ValueAsInteger())
}

func TestSystemConfigValueAsFloat(t *testing.T) {
	cfg := &SystemConfig{ConfigValue: "3.14"}
	v := cfg.ValueAsFloat()
	require.NotNil(t, v)
	assert.Equal(t, 3.14, *v)

	cfg.ConfigValue = "not a number"
	assert.Nil(t, cfg.ValueAsFloat())
}

func TestSystemConfigValueAsBoolean(t *testing.T) {
	truthy := []string{"true", "TRUE", "1", "yes", " Yes "}
	for _, raw := range truthy {
		cfg := &SystemConfig{ConfigValue: raw}
		v := cfg.ValueAsBoolean()
		require.NotNil(t, v)
		assert.True(t, *v, "value %q", raw)
	}

	falsy := []string{"false", "0", "no", "", "anything else"}
	for _, raw := range falsy {
		cfg := &SystemConfig{ConfigValue: raw}
		v := cfg.ValueAsBoolean()
		require.NotNil(t, v)
		assert.False(t, *v, "value %q", raw)
	}
}

func TestSystemConfigValueAsJSON(t *testing.T) {
	cfg := &SystemConfig{ConfigValue: `{"interval": 30, "enabled": true}`}

	var target struct {
		Interval int  `json:"interval"`
		Enabled  bool `json:"enabled"`
	}
	require.True(t, cfg.ValueAsJSON(&target))
	assert.Equal(t, 30, target.Interval)
	assert.True(t, target.Enabled)

	assert.False(t, cfg.ValueAsJSON(nil))

	cfg.ConfigValue = `{broken`
	assert.False(t, cfg.ValueAsJSON(&target))
}

package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type phoneFixture struct {
	Phone string `validate:"required,cnphone"`
}

type configKeyFixture struct {
	Key string `validate:"required,configkey"`
}

func TestCnPhoneRule(t *testing.T) {
	cv := NewValidator()

	valid := []string{"13812345678", "19900001111", "15012345678"}
	for _, phone := range valid {
		assert.NoError(t, cv.Validate(&phoneFixture{Phone: phone}), "phone %s", phone)
	}

	invalid := []string{
		"12812345678",   // 12x is not a mobile prefix
		"1381234567",    // too short
		"138123456789",  // too long
		"23812345678",   // must start with 1
		"+8613812345678",
		"138-1234-5678",
	}
	for _, phone := range invalid {
		assert.Error(t, cv.Validate(&phoneFixture{Phone: phone}), "phone %s", phone)
	}
}

func TestConfigKeyRule(t *testing.T) {
	cv := NewValidator()

	valid := []string{"health.check_interval", "tts_voice", "Category2.sub"}
	for _, key := range valid {
		assert.NoError(t, cv.Validate(&configKeyFixture{Key: key}), "key %s", key)
	}

	invalid := []string{"health check", "key-name", "key/name", "键"}
	for _, key := range invalid {
		assert.Error(t, cv.Validate(&configKeyFixture{Key: key}), "key %s", key)
	}
}

func TestFormatValidationErrors(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&phoneFixture{Phone: "not-a-phone"})
	require.Error(t, err)

	formatted := cv.FormatValidationErrors(err)
	assert.Equal(t, "Phone must be a valid mobile number", formatted["Phone"])

	err = cv.Validate(&phoneFixture{})
	require.Error(t, err)

	formatted = cv.FormatValidationErrors(err)
	assert.Equal(t, "Phone is required", formatted["Phone"])
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateCronSchedule(t *testing.T) {
	tests := []struct {
		name     string
		schedule string
		ok       bool
	}{
		{"every six hours", "0 */6 * * *", true},
		{"daily", "30 5 * * *", true},
		{"empty", "", false},
		{"garbage", "not a cron", false},
		{"too few fields", "* *", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCronSchedule(tt.schedule)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidateTimezone(t *testing.T) {
	assert.NoError(t, ValidateTimezone("UTC"))
	assert.NoError(t, ValidateTimezone("Africa/Lagos"))
	assert.Error(t, ValidateTimezone(""))
	assert.Error(t, ValidateTimezone("Not/AZone"))
}

func TestValidateIntRange(t *testing.T) {
	assert.NoError(t, ValidateIntRange(4, 1, 32))
	assert.Error(t, ValidateIntRange(0, 1, 32))
	assert.Error(t, ValidateIntRange(33, 1, 32))
	assert.Error(t, ValidateIntRange(1, 10, 5))
}

func TestValidatePositiveDuration(t *testing.T) {
	assert.NoError(t, ValidatePositiveDuration(time.Second))
	assert.Error(t, ValidatePositiveDuration(0))
	assert.Error(t, ValidatePositiveDuration(-time.Second))
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("CP_TEST_STR", "hello")
	t.Setenv("CP_TEST_INT", "42")
	t.Setenv("CP_TEST_BOOL", "true")
	t.Setenv("CP_TEST_DUR", "90s")
	t.Setenv("CP_TEST_BAD_INT", "forty")

	assert.Equal(t, "hello", GetEnvString("CP_TEST_STR", "d"))
	assert.Equal(t, "d", GetEnvString("CP_TEST_MISSING", "d"))
	assert.Equal(t, 42, GetEnvInt("CP_TEST_INT", 7))
	assert.Equal(t, 7, GetEnvInt("CP_TEST_BAD_INT", 7))
	assert.True(t, GetEnvBool("CP_TEST_BOOL", false))
	assert.Equal(t, 90*time.Second, GetEnvDuration("CP_TEST_DUR", time.Second))
	assert.Equal(t, time.Second, GetEnvDuration("CP_TEST_MISSING", time.Second))
}

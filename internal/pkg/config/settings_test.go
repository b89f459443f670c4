//go:build unit
// +build unit

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultRestConfig_IsValid(t *testing.T) {
	cfg := DefaultRestConfig()
	assert.NoError(t, cfg.Validate())
}

func TestDatabaseSettings_Validate(t *testing.T) {
	settings := &DatabaseSettings{Type: SqliteDbType}
	assert.NoError(t, settings.Validate())

	settings = &DatabaseSettings{Type: PostgresDbType}
	assert.Error(t, settings.Validate(), "postgres requires a DSN")

	settings = &DatabaseSettings{Type: PostgresDbType, DSN: "host=localhost user=postgres"}
	assert.NoError(t, settings.Validate())

	settings = &DatabaseSettings{Type: "mysql"}
	assert.Error(t, settings.Validate())
}

func TestRedisSettings_Validate(t *testing.T) {
	settings := &RedisSettings{Enabled: false}
	assert.NoError(t, settings.Validate())

	settings = &RedisSettings{Enabled: true}
	assert.Error(t, settings.Validate(), "enabled redis requires a host")

	settings = &RedisSettings{Enabled: true, Host: "localhost", Port: 6379}
	assert.NoError(t, settings.Validate())
}

func TestCallSettings_Durations(t *testing.T) {
	settings := &CallSettings{
		RingTimeoutSeconds: 45,
		MaxBillableMinutes: 30,
		SweepIntervalSecs:  10,
	}
	assert.NoError(t, settings.Validate())
	assert.Equal(t, 45*time.Second, settings.RingTimeout())
	assert.Equal(t, 10*time.Second, settings.SweepInterval())
}

func TestCallSettings_Validate_OutOfRange(t *testing.T) {
	settings := &CallSettings{
		RingTimeoutSeconds: 1,
		MaxBillableMinutes: 30,
		SweepIntervalSecs:  10,
	}
	assert.Error(t, settings.Validate())
}

func TestSessionSettings_TTL(t *testing.T) {
	settings := &SessionSettings{TTLMinutes: 90}
	assert.NoError(t, settings.Validate())
	assert.Equal(t, 90*time.Minute, settings.TTL())
}

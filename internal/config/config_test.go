package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("API_USERNAME", "garage")
	t.Setenv("API_PASSWORD", "pw")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "file", cfg.StorageBackend)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, "09:00", cfg.ReminderTime)
	assert.Equal(t, "garage/reminders", cfg.MQTTTopic)
}

func TestLoad_RequiresCredentials(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("API_USERNAME", "")
	t.Setenv("API_PASSWORD", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_MongoBackendNeedsURI(t *testing.T) {
	setRequired(t)
	t.Setenv("STORAGE_BACKEND", "mongo")
	t.Setenv("MONGO_URI", "")

	_, err := Load()
	assert.Error(t, err)

	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "mongo", cfg.StorageBackend)
}

func TestLoad_RejectsUnknownBackend(t *testing.T) {
	setRequired(t)
	t.Setenv("STORAGE_BACKEND", "cassandra")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_BadExpiryFallsBack(t *testing.T) {
	setRequired(t)
	t.Setenv("JWT_EXPIRY", "not-a-duration")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiry)
}

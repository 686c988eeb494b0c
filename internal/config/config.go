package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config keeps runtime settings for the server.
type Config struct {
	Port           string
	StorageBackend string // "file", "mongo" or "memory"
	DataDir        string
	MongoURI       string
	MongoDB        string

	JWTSecret   string
	JWTExpiry   time.Duration
	APIUsername string
	APIPassword string

	ReminderTime string // daily scan, HH:MM
	MQTTBroker   string // empty means log-only notices
	MQTTTopic    string
}

// Load reads configuration from environment variables with sane defaults.
func Load() (Config, error) {
	cfg := Config{
		Port:           envOr("PORT", "8080"),
		StorageBackend: strings.ToLower(envOr("STORAGE_BACKEND", "file")),
		DataDir:        envOr("DATA_DIR", "data"),
		MongoURI:       os.Getenv("MONGO_URI"),
		MongoDB:        envOr("MONGO_DB", "garage"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		JWTExpiry:      parseDuration(os.Getenv("JWT_EXPIRY"), 24*time.Hour),
		APIUsername:    os.Getenv("API_USERNAME"),
		APIPassword:    os.Getenv("API_PASSWORD"),
		ReminderTime:   envOr("REMINDER_TIME", "09:00"),
		MQTTBroker:     os.Getenv("MQTT_BROKER"),
		MQTTTopic:      envOr("MQTT_TOPIC", "garage/reminders"),
	}

	switch cfg.StorageBackend {
	case "file", "mongo", "memory":
	default:
		return cfg, fmt.Errorf("unknown STORAGE_BACKEND %q", cfg.StorageBackend)
	}
	if cfg.StorageBackend == "mongo" && cfg.MongoURI == "" {
		return cfg, fmt.Errorf("MONGO_URI is required for the mongo backend")
	}
	if cfg.JWTSecret == "" {
		return cfg, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.APIUsername == "" || cfg.APIPassword == "" {
		return cfg, fmt.Errorf("API_USERNAME and API_PASSWORD are required")
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

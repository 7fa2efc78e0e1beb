// Package config reads process configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config covers process level configuration.
type Config struct {
	HTTPAddr string

	SoundCloudClientID     string
	SoundCloudClientSecret string

	CachePath string

	AnalysisWorkers   int
	AnalysisQueueSize int

	LogLevel string
}

// Load populates a Config from the environment, applying defaults and
// failing fast on missing credentials.
func Load() (*Config, error) {
	cfg := &Config{
		HTTPAddr:               envString("SETFORGE_HTTP_ADDR", ":8080"),
		SoundCloudClientID:     os.Getenv("SOUNDCLOUD_CLIENT_ID"),
		SoundCloudClientSecret: os.Getenv("SOUNDCLOUD_CLIENT_SECRET"),
		CachePath:              envString("SETFORGE_CACHE_PATH", "setforge.db"),
		AnalysisWorkers:        envInt("SETFORGE_ANALYSIS_WORKERS", 2),
		AnalysisQueueSize:      envInt("SETFORGE_ANALYSIS_QUEUE", 100),
		LogLevel:               envString("SETFORGE_LOG_LEVEL", "info"),
	}

	if cfg.SoundCloudClientID == "" || cfg.SoundCloudClientSecret == "" {
		return nil, fmt.Errorf("config: SOUNDCLOUD_CLIENT_ID and SOUNDCLOUD_CLIENT_SECRET are required")
	}

	return cfg, nil
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

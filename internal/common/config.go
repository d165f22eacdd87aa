package common

import (
	"os"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Extractor ExtractorConfig
	History   HistoryConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Addr string
}

// ExtractorConfig holds the remote extraction service configuration.
type ExtractorConfig struct {
	URL     string
	APIKey  string
	Timeout time.Duration
}

// HistoryConfig holds extraction-history persistence configuration.
// An empty path disables history.
type HistoryConfig struct {
	Path string
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr: getEnv("HTTP_ADDR", ":8080"),
		},
		Extractor: ExtractorConfig{
			URL:     getEnv("ANALYZE_URL", ""),
			APIKey:  getEnv("ANALYZE_API_KEY", ""),
			Timeout: getEnvAsDuration("ANALYZE_TIMEOUT", 45*time.Second),
		},
		History: HistoryConfig{
			Path: getEnv("HISTORY_DB_PATH", ""),
		},
	}
}

// Validate validates the loaded configuration.
func (c *Config) Validate() error {
	if c.Extractor.URL == "" {
		return NewAppError("CONFIG_ERROR", "ANALYZE_URL is required", ErrInvalidConfig)
	}
	if c.Server.Addr == "" {
		return NewAppError("CONFIG_ERROR", "HTTP_ADDR is required", ErrInvalidConfig)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

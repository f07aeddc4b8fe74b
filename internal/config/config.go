package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the whole application configuration, populated from
// environment variables once at process start.
type Config struct {
	App   AppConfig
	Mongo MongoConfig
	Log   LogConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Host        string
	Port        string
	Debug       bool
}

type MongoConfig struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
	MaxRetries     int
	RetryDelay     time.Duration
}

type LogConfig struct {
	Level string
}

// Load reads config from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Library Catalog API"),
			Environment: getEnv("APP_ENV", "development"),
			Host:        getEnv("APP_HOST", "0.0.0.0"),
			Port:        getEnv("APP_PORT", "8000"),
			Debug:       getEnvBool("DEBUG", false),
		},
		Mongo: MongoConfig{
			URI:            getEnv("MONGO_URI", "mongodb://localhost:27017"),
			Database:       getEnv("MONGO_DB_NAME", "library_db"),
			ConnectTimeout: time.Duration(getEnvInt("MONGO_CONNECT_TIMEOUT", 10)) * time.Second,
			MaxRetries:     getEnvInt("MONGO_MAX_RETRIES", 3),
			RetryDelay:     time.Duration(getEnvInt("MONGO_RETRY_DELAY", 2)) * time.Second,
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Mongo.URI == "" {
		return fmt.Errorf("MONGO_URI must not be empty")
	}
	if c.Mongo.Database == "" {
		return fmt.Errorf("MONGO_DB_NAME must not be empty")
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

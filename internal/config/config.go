package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	Auth     AuthConfig
	Catalog  CatalogConfig
	Notifier NotifierConfig
	Demo     DemoConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host string
	Port int
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// AuthConfig holds authentication configuration.
type AuthConfig struct {
	APIKey string
}

// CatalogConfig holds menu catalog source configuration. When S3 is enabled
// the catalog object is fetched from the bucket first, falling back to Path,
// falling back to the built-in default menu.
type CatalogConfig struct {
	Path      string // local JSON file; empty means built-in menu only
	S3Enabled bool
	S3Bucket  string
	S3Region  string
	S3Key     string
}

// NotifierConfig holds order notification configuration. All fields are
// optional; with nothing set, notifications are silently skipped.
type NotifierConfig struct {
	WebhookURL     string
	TelegramToken  string
	TelegramChatID int64
	Timeout        time.Duration
}

// DemoConfig holds demo-mode settings. SeedOrders is the number of synthetic
// historical orders each new session starts with so the dashboard has data.
type DemoConfig struct {
	SeedOrders int
}

// Load loads configuration from environment variables. A .env file in the
// working directory is read first if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Auth: AuthConfig{
			APIKey: getEnv("API_KEY", ""),
		},
		Catalog: CatalogConfig{
			Path:      getEnv("CATALOG_PATH", ""),
			S3Enabled: getEnvAsBool("CATALOG_S3_ENABLED", false),
			S3Bucket:  getEnv("CATALOG_S3_BUCKET", ""),
			S3Region:  getEnv("CATALOG_S3_REGION", "us-east-1"),
			S3Key:     getEnv("CATALOG_S3_KEY", "menu.json"),
		},
		Notifier: NotifierConfig{
			WebhookURL:     getEnv("NOTIFIER_WEBHOOK_URL", ""),
			TelegramToken:  getEnv("NOTIFIER_TELEGRAM_TOKEN", ""),
			TelegramChatID: getEnvAsInt64("NOTIFIER_TELEGRAM_CHAT_ID", 0),
			Timeout:        time.Duration(getEnvAsInt("NOTIFIER_TIMEOUT_SECONDS", 5)) * time.Second,
		},
		Demo: DemoConfig{
			SeedOrders: getEnvAsInt("DEMO_SEED_ORDERS", 800),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Auth.APIKey == "" {
		return fmt.Errorf("API key is required")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	if c.Catalog.S3Enabled {
		if c.Catalog.S3Bucket == "" {
			return fmt.Errorf("catalog S3 bucket is required when S3 is enabled")
		}
		if c.Catalog.S3Region == "" {
			return fmt.Errorf("catalog S3 region is required when S3 is enabled")
		}
	}

	if c.Notifier.TelegramToken != "" && c.Notifier.TelegramChatID == 0 {
		return fmt.Errorf("telegram chat ID is required when a telegram token is set")
	}

	if c.Notifier.Timeout <= 0 {
		return fmt.Errorf("notifier timeout must be positive")
	}

	if c.Demo.SeedOrders < 0 {
		return fmt.Errorf("demo seed orders cannot be negative")
	}

	return nil
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsInt64 retrieves an environment variable as an int64 or returns a default value.
func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value.
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

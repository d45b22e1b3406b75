package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	StoreDriver string `validate:"oneof=sqlite postgres"`
	SQLitePath  string
	Database    DatabaseConfig

	TimeBudget   int           `validate:"gt=0"`
	TickInterval time.Duration `validate:"gt=0"`

	LogLevel string `validate:"oneof=debug info warn error"`
	LogFile  string

	BotToken    string
	BotPassword string

	Accessibility AccessibilityConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// AccessibilityConfig holds rendering flags for the presentation layer
type AccessibilityConfig struct {
	DifferentiateWithoutColor bool
	Enabled                   bool
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	timeBudget, err := strconv.Atoi(getEnv("TIME_BUDGET", "100"))
	if err != nil {
		return nil, fmt.Errorf("TIME_BUDGET must be an integer: %w", err)
	}

	tickInterval, err := time.ParseDuration(getEnv("TICK_INTERVAL", "1s"))
	if err != nil {
		return nil, fmt.Errorf("TICK_INTERVAL must be a duration: %w", err)
	}

	cfg := &Config{
		StoreDriver: getEnv("STORE_DRIVER", "sqlite"),
		SQLitePath:  getEnv("SQLITE_PATH", "data/cardstack.db"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "cardstack"),
			User:     getEnv("DB_USER", "cardstack"),
			Password: os.Getenv("DB_PASSWORD"),
		},
		TimeBudget:   timeBudget,
		TickInterval: tickInterval,
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFile:      getEnv("LOG_FILE", "cardstack.log"),
		BotToken:     os.Getenv("BOT_TOKEN"),
		BotPassword:  os.Getenv("BOT_PASSWORD"),
		Accessibility: AccessibilityConfig{
			DifferentiateWithoutColor: getEnvBool("DIFFERENTIATE_WITHOUT_COLOR"),
			Enabled:                   getEnvBool("ACCESSIBILITY_ENABLED"),
		},
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	// Validate conditionally required fields
	if cfg.StoreDriver == "postgres" && cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required for the postgres store")
	}
	if cfg.BotToken != "" && cfg.BotPassword == "" {
		return nil, fmt.Errorf("BOT_PASSWORD is required when BOT_TOKEN is set")
	}

	return cfg, nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

// BotEnabled reports whether the Telegram surface should start
func (c *Config) BotEnabled() bool {
	return c.BotToken != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}

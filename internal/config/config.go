package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the command-line tool
type Config struct {
	Logging  LoggingConfig
	Import   ImportConfig
	Currency CurrencyConfig
}

// LoggingConfig holds logging-specific configuration
type LoggingConfig struct {
	Level string // zerolog level name: trace, debug, info, warn, error
}

// ImportConfig holds import-specific configuration
type ImportConfig struct {
	// DefaultParser, when set, is used for files whose extension matches more
	// than one registered parser.
	DefaultParser string
}

// CurrencyConfig holds the display label for the single base currency.
// All values are assumed to already be expressed in this currency; no
// conversion happens anywhere.
type CurrencyConfig struct {
	Base string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Import: ImportConfig{
			DefaultParser: getEnv("IMPORT_DEFAULT_PARSER", ""),
		},
		Currency: CurrencyConfig{
			Base: getEnv("BASE_CURRENCY", "EUR"),
		},
	}

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

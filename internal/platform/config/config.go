package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// BusinessTimezone is the wall-clock timezone of the purchasing system's
	// spreadsheet exports. Dates in uploads are interpreted here, stored UTC.
	BusinessTimezone string

	// Device registry client settings.
	RegistryBaseURL string
	RegistryTimeout time.Duration

	// RateLimit is the limiter formatted period, e.g. "100-M" for 100/minute.
	RateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("BUSINESS_TIMEZONE", "America/Chicago")
	viper.SetDefault("GUDID_BASE_URL", "https://accessgudid.nlm.nih.gov/api/v3")
	viper.SetDefault("GUDID_TIMEOUT", "10s")
	viper.SetDefault("RATE_LIMIT", "100-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	registryTimeoutStr := viper.GetString("GUDID_TIMEOUT")
	registryTimeout, err := time.ParseDuration(registryTimeoutStr)
	if err != nil {
		registryTimeout = 10 * time.Second
		if registryTimeoutStr != "" {
			log.Printf("Warning: Invalid value for GUDID_TIMEOUT ('%s'). Defaulting to %s.\n", registryTimeoutStr, registryTimeout.String())
		}
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.BusinessTimezone = viper.GetString("BUSINESS_TIMEZONE")
	cfg.RegistryBaseURL = viper.GetString("GUDID_BASE_URL")
	cfg.RegistryTimeout = registryTimeout
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	return cfg, nil
}

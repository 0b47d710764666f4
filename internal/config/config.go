package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"github.com/nandaardian19/studentprofile/internal/pkg/auth"
	"github.com/nandaardian19/studentprofile/internal/pkg/logger"
)

// Config structure represents the application configuration
type Config struct {
	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`

	Profile struct {
		// CurrentYear pins the year used for enrollment arithmetic; 0 means the system clock
		CurrentYear int `yaml:"current_year" env:"PROFILE_CURRENT_YEAR"`
	} `yaml:"profile"`

	Export struct {
		BcryptCost            int  `yaml:"bcrypt_cost" env:"EXPORT_BCRYPT_COST"`
		IncludePasswordDigest bool `yaml:"include_password_digest" env:"EXPORT_INCLUDE_PASSWORD_DIGEST"`
	} `yaml:"export"`
}

// LoadConfig loads configuration from an optional YAML file, an optional dotenv
// file and environment variables, in that order of precedence (lowest first).
func LoadConfig(configPath, envFile string) (*Config, error) {
	// Load default config with sane defaults
	config := &Config{}
	setDefaults(config)

	if configPath != "" {
		if err := loadFromFile(config, configPath); err != nil {
			return nil, err
		}
	}

	if err := loadDotEnv(envFile); err != nil {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	// Override with environment variables
	if err := ParseEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// loadFromFile reads configPath into config; a missing file is not an error
func loadFromFile(config *Config, configPath string) error {
	file, err := os.ReadFile(configPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(file, config); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	return nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"

	// Profile defaults
	config.Profile.CurrentYear = 0

	// Export defaults
	config.Export.BcryptCost = auth.DefaultBcryptCost
	config.Export.IncludePasswordDigest = false
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if _, ok := logger.LookupLevel(config.Logging.Level); !ok {
		return fmt.Errorf("unknown log level %q", config.Logging.Level)
	}

	switch strings.ToLower(config.Logging.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("unknown log format %q", config.Logging.Format)
	}

	if config.Profile.CurrentYear < 0 {
		return fmt.Errorf("profile current year must not be negative, got %d", config.Profile.CurrentYear)
	}

	if c := config.Export.BcryptCost; c < bcrypt.MinCost || c > bcrypt.MaxCost {
		return fmt.Errorf("bcrypt cost must be between %d and %d, got %d", bcrypt.MinCost, bcrypt.MaxCost, c)
	}

	return nil
}

// Package config loads and persists application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Presign PresignConfig `mapstructure:"presign"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// APIConfig holds the content-indexing API configuration
type APIConfig struct {
	GraphQLURL string `mapstructure:"graphql_url"` // Query endpoint
	Key        string `mapstructure:"key"`         // API key for the query endpoint
	BaseURL    string `mapstructure:"base_url"`    // Backend proxy base URL
	Token      string `mapstructure:"token"`       // Bearer token for the backend proxy
	PageSize   int    `mapstructure:"page_size"`   // Picture page size
}

// PresignConfig holds presigned-URL proxy configuration
type PresignConfig struct {
	Bucket string `mapstructure:"bucket"` // Bucket identifier sent to the proxy
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			PageSize: 50,
		},
		Presign: PresignConfig{
			Bucket: "ragstack",
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "medley", "medley.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "medley", "medley.log")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "medley")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "medley")
	}
}

// LoadConfig loads configuration from file and environment
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(defaultConfigPath())
	viper.AddConfigPath(".")

	// Environment variable overrides
	viper.SetEnvPrefix("MEDLEY")
	viper.AutomaticEnv()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the current configuration to file
func SaveConfig(cfg *Config) error {
	configPath := defaultConfigPath()

	if err := os.MkdirAll(configPath, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Set fields individually to ensure correct key names (snake_case)
	viper.Set("api.graphql_url", cfg.API.GraphQLURL)
	viper.Set("api.key", cfg.API.Key)
	viper.Set("api.base_url", cfg.API.BaseURL)
	viper.Set("api.token", cfg.API.Token)
	viper.Set("api.page_size", cfg.API.PageSize)

	viper.Set("presign.bucket", cfg.Presign.Bucket)

	viper.Set("logging.file", cfg.Logging.File)
	viper.Set("logging.level", cfg.Logging.Level)

	configFile := filepath.Join(configPath, "config.yaml")
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// IsConfigured returns true if the query endpoint and key are set
func (c *Config) IsConfigured() bool {
	return c.API.GraphQLURL != "" && c.API.Key != ""
}

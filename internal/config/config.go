package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents application configuration. The work-calendar data
// itself lives in its own JSON document (see internal/store); this covers
// only the application-level knobs around it.
type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	Log     LogConfig     `mapstructure:"log"`
}

// StorageConfig locates the persisted calendar document.
type StorageConfig struct {
	DataFile string `mapstructure:"data_file"`
}

// LogConfig controls logging output.
type LogConfig struct {
	File  string `mapstructure:"file"`  // empty = console
	Level string `mapstructure:"level"` // zap level name, default info
}

// Load loads configuration from file. A missing config file is not an
// error when no explicit path was given: every field has a usable default.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.timeleft")
		v.AddConfigPath("/etc/timeleft")
	}

	v.SetEnvPrefix("TIMELEFT")
	v.AutomaticEnv()

	v.SetDefault("storage.data_file", defaultDataFile())
	v.SetDefault("log.level", "info")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Storage.DataFile == "" {
		return fmt.Errorf("storage.data_file is required")
	}
	return nil
}

func defaultDataFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "calendar.json"
	}
	return filepath.Join(home, ".timeleft", "calendar.json")
}

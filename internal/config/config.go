package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config is the application configuration loaded from YAML.
type Config struct {
	// DBPath is the SQLite database location.
	DBPath string `mapstructure:"db_path"`

	// RefreshIntervalSec is how often (in seconds) the watch dashboard
	// re-evaluates deadlines.
	RefreshIntervalSec int `mapstructure:"refresh_interval_sec"`

	// DefaultView and DefaultSort preset the list command.
	DefaultView string `mapstructure:"default_view"`
	DefaultSort string `mapstructure:"default_sort"`
}

// DefaultConfigPath returns the default path for the configuration file,
// located at ~/.config/dueline/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "dueline", "config.yaml")
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "dueline.db")
	}
	return filepath.Join(home, ".dueline", "dueline.db")
}

// Load reads configuration from the given YAML file path using Viper.
// A missing file yields the defaults; a malformed file is an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("db_path", defaultDBPath())
	v.SetDefault("refresh_interval_sec", 60)
	v.SetDefault("default_view", "all")
	v.SetDefault("default_sort", "deadline")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &cfg, nil
}

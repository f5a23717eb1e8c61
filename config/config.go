package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// LoadConfig builds the configuration from defaults, an optional YAML config
// file, and RELAY_-prefixed environment variables, in increasing precedence.
// An empty configFile means defaults and environment only.
func LoadConfig(configFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("listen_address", "127.0.0.1:3001")
	v.SetDefault("api_root", "https://api.anthropic.com")
	v.SetDefault("backend_timeout", 60)

	v.SetEnvPrefix("RELAY")
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var configuration Config
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validation
	if configuration.APIRoot == "" {
		return nil, errors.New("api_root is required")
	}
	if configuration.ListenAddress == "" {
		return nil, errors.New("listen_address is required")
	}
	if configuration.BackendTimeout <= 0 {
		return nil, errors.New("backend_timeout must be positive")
	}

	return &configuration, nil
}

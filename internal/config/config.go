package config

import (
	"fmt"

	"github.com/spf13/viper"
)

const (
	// DefaultLogLevel is the severity threshold used when none is configured.
	DefaultLogLevel = "info"
	// DefaultLogOutput is the console stream used when none is configured.
	DefaultLogOutput = "stderr"
)

// Config stores configuration values for the application.
// These values can be read from a configuration file or environment variables.
type Config struct {
	// LogLevel is the minimum severity of messages that will be logged.
	// One of "debug", "info", "warn" or "error".
	LogLevel string `mapstructure:"LOG_LEVEL"`
	// LogOutput is the console stream log lines are written to,
	// either "stderr" or "stdout".
	LogOutput string `mapstructure:"LOG_OUTPUT"`
}

// Default returns a Config populated with the default values.
func Default() *Config {
	return &Config{
		LogLevel:  DefaultLogLevel,
		LogOutput: DefaultLogOutput,
	}
}

// Load loads configuration settings from a specified file or environment variables.
// If both a configuration file and environment variables are used, environment variables take precedence.
// Values present in neither fall back to the defaults.
func Load(filePath string) (*Config, error) {
	viper.SetConfigFile(filePath)
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	viper.SetDefault("LOG_LEVEL", DefaultLogLevel)
	viper.SetDefault("LOG_OUTPUT", DefaultLogOutput)

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{}
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return config, nil
}

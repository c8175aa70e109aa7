// Package config handles configuration loading and management
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/ethpandaops/tickres/internal/tick"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds the application configuration
type Config struct {
	LogLevel      logrus.Level
	Source        tick.Source
	MeasureRounds int
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		LogLevel:      logrus.InfoLevel,
		Source:        tick.SourceHost,
		MeasureRounds: tick.DefaultMeasureRounds,
	}
}

// LoadEnvFile loads the given env file into the process environment. A missing
// default file is not an error.
func LoadEnvFile(file string) error {
	if file == "" {
		file = DefaultEnvFile
	}

	if err := godotenv.Load(file); err != nil {
		if file == DefaultEnvFile && os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to load env file '%s': %w", file, err)
	}

	return nil
}

// Load reads configuration from environment variables. Invalid fields keep
// their default and are reported together in the returned error, so the
// returned config is always usable.
func Load() (*Config, error) {
	cfg := Default()

	var errs []error

	level, err := logrus.ParseLevel(getEnv(EnvLogLevel, DefaultLogLevel))
	if err != nil {
		errs = append(errs, fmt.Errorf("invalid %s: %w", EnvLogLevel, err))
	} else {
		cfg.LogLevel = level
	}

	src, err := tick.ParseSource(os.Getenv(EnvSource))
	if err != nil {
		errs = append(errs, fmt.Errorf("invalid %s: %w", EnvSource, err))
	} else {
		cfg.Source = src
	}

	rounds, err := strconv.Atoi(getEnv(EnvMeasureRounds, strconv.Itoa(tick.DefaultMeasureRounds)))
	switch {
	case err != nil:
		errs = append(errs, fmt.Errorf("invalid %s: %w", EnvMeasureRounds, err))
	case rounds <= 0:
		errs = append(errs, fmt.Errorf("invalid %s: must be positive, got %d", EnvMeasureRounds, rounds))
	default:
		cfg.MeasureRounds = rounds
	}

	return cfg, errors.Join(errs...)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func (c *Config) String() string {
	return fmt.Sprintf(`Current Configuration:
======================
Log Level:       %s
Source:          %s
Measure Rounds:  %d`,
		c.LogLevel,
		c.Source,
		c.MeasureRounds,
	)
}

package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/ppgiii/ViZ/internal/infrastructure/iex"
	"github.com/ppgiii/ViZ/pkg/errors"
)

// Config represents the application configuration.
type Config struct {
	App  AppConfig  `envPrefix:"APP_"`
	IEX  iex.Config `envPrefix:"IEX_"`
	Feed FeedConfig `envPrefix:"FEED_"`
}

// AppConfig represents the application configuration.
type AppConfig struct {
	Name        string `env:"NAME" envDefault:"viz"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Port        int    `env:"PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
}

// FeedConfig represents the price feed configuration.
type FeedConfig struct {
	Symbol   string        `env:"SYMBOL" envDefault:""`
	Interval time.Duration `env:"INTERVAL" envDefault:"1s"`
	Rollover int           `env:"ROLLOVER" envDefault:"3600"`
	Timezone string        `env:"TIMEZONE" envDefault:"US/Eastern"`
}

// Location resolves the configured display timezone.
func (f FeedConfig) Location() (*time.Location, error) {
	return time.LoadLocation(f.Timezone)
}

// Load loads the configuration from the environment.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Validate checks the parsed configuration and collects every invalid field.
func (c *Config) Validate() error {
	base := errors.NewBaseError()

	if details := c.App.validate(); details != nil {
		details.PrependFields("app.")
		base.AddErrorDetails(details.GetDetails()...)
	}
	if details := c.Feed.validate(); details != nil {
		details.PrependFields("feed.")
		base.AddErrorDetails(details.GetDetails()...)
	}
	if c.IEX.BaseURL == "" {
		base.AddErrorDetails(errors.NewErrorDetails(
			"base url is required",
			string(errors.ConfigBaseURLError),
			"iex.base_url",
		))
	}

	if len(base.GetDetails()) == 0 {
		return nil
	}

	return base
}

func (a AppConfig) validate() *errors.BaseError {
	base := errors.NewBaseError()

	if a.Port <= 0 || a.Port > 65535 {
		base.AddErrorDetails(errors.NewErrorDetails(
			fmt.Sprintf("invalid listen port %d", a.Port),
			string(errors.ConfigPortError),
			"port",
		))
	}

	if len(base.GetDetails()) == 0 {
		return nil
	}
	return base
}

func (f FeedConfig) validate() *errors.BaseError {
	base := errors.NewBaseError()

	if f.Interval <= 0 {
		base.AddErrorDetails(errors.NewErrorDetails(
			fmt.Sprintf("invalid poll interval %s", f.Interval),
			string(errors.ConfigIntervalError),
			"interval",
		))
	}
	if f.Rollover <= 0 {
		base.AddErrorDetails(errors.NewErrorDetails(
			fmt.Sprintf("invalid rollover %d", f.Rollover),
			string(errors.ConfigRolloverError),
			"rollover",
		))
	}
	if _, err := f.Location(); err != nil {
		base.AddErrorDetails(errors.NewErrorDetails(
			fmt.Sprintf("unknown timezone %q", f.Timezone),
			string(errors.ConfigTimezoneError),
			"timezone",
		))
	}

	if len(base.GetDetails()) == 0 {
		return nil
	}
	return base
}

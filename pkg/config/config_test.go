package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppgiii/ViZ/internal/infrastructure/iex"
	"github.com/ppgiii/ViZ/pkg/errors"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "", cfg.Feed.Symbol)
	assert.Equal(t, time.Second, cfg.Feed.Interval)
	assert.Equal(t, 3600, cfg.Feed.Rollover)
	assert.Equal(t, "US/Eastern", cfg.Feed.Timezone)
	assert.Equal(t, "https://ws-api.iextrading.com/1.0", cfg.IEX.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.IEX.Timeout)

	assert.NoError(t, cfg.Validate())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("APP_PORT", "9000")
	t.Setenv("FEED_SYMBOL", "AAPL")
	t.Setenv("FEED_INTERVAL", "250ms")
	t.Setenv("IEX_BASE_URL", "http://localhost:8998")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.App.Port)
	assert.Equal(t, "AAPL", cfg.Feed.Symbol)
	assert.Equal(t, 250*time.Millisecond, cfg.Feed.Interval)
	assert.Equal(t, "http://localhost:8998", cfg.IEX.BaseURL)
}

func validConfig() *Config {
	return &Config{
		App:  AppConfig{Name: "viz", Port: 8080, LogLevel: "info"},
		IEX:  iex.Config{BaseURL: "http://localhost:8998", Timeout: time.Second},
		Feed: FeedConfig{Interval: time.Second, Rollover: 3600, Timezone: "US/Eastern"},
	}
}

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		name     string
		mutateFn func(cfg *Config)
		assertFn func(t *testing.T, err error)
	}{
		{
			name:     "valid",
			mutateFn: func(cfg *Config) {},
			assertFn: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "invalid port",
			mutateFn: func(cfg *Config) {
				cfg.App.Port = 0
			},
			assertFn: func(t *testing.T, err error) {
				base := requireBaseError(t, err)
				assert.True(t, base.IsAnyCodeEqual(string(errors.ConfigPortError)))
				assert.Equal(t, "app.port", base.GetDetails()[0].Field)
			},
		},
		{
			name: "invalid interval",
			mutateFn: func(cfg *Config) {
				cfg.Feed.Interval = 0
			},
			assertFn: func(t *testing.T, err error) {
				base := requireBaseError(t, err)
				assert.True(t, base.IsAnyCodeEqual(string(errors.ConfigIntervalError)))
				assert.Equal(t, "feed.interval", base.GetDetails()[0].Field)
			},
		},
		{
			name: "invalid rollover",
			mutateFn: func(cfg *Config) {
				cfg.Feed.Rollover = -1
			},
			assertFn: func(t *testing.T, err error) {
				base := requireBaseError(t, err)
				assert.True(t, base.IsAnyCodeEqual(string(errors.ConfigRolloverError)))
			},
		},
		{
			name: "unknown timezone",
			mutateFn: func(cfg *Config) {
				cfg.Feed.Timezone = "Mars/Olympus"
			},
			assertFn: func(t *testing.T, err error) {
				base := requireBaseError(t, err)
				assert.True(t, base.IsAnyCodeEqual(string(errors.ConfigTimezoneError)))
			},
		},
		{
			name: "missing base url",
			mutateFn: func(cfg *Config) {
				cfg.IEX.BaseURL = ""
			},
			assertFn: func(t *testing.T, err error) {
				base := requireBaseError(t, err)
				assert.True(t, base.IsAnyCodeEqual(string(errors.ConfigBaseURLError)))
				assert.Equal(t, "iex.base_url", base.GetDetails()[0].Field)
			},
		},
		{
			name: "collects every invalid field",
			mutateFn: func(cfg *Config) {
				cfg.App.Port = -1
				cfg.Feed.Rollover = 0
				cfg.Feed.Timezone = "nowhere"
			},
			assertFn: func(t *testing.T, err error) {
				base := requireBaseError(t, err)
				assert.Len(t, base.GetDetails(), 3)
				assert.True(t, base.IsAllExpectedCode(
					string(errors.ConfigPortError),
					string(errors.ConfigRolloverError),
					string(errors.ConfigTimezoneError),
				))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutateFn(cfg)
			tc.assertFn(t, cfg.Validate())
		})
	}
}

func requireBaseError(t *testing.T, err error) *errors.BaseError {
	t.Helper()

	require.Error(t, err)
	base, ok := err.(*errors.BaseError)
	require.True(t, ok)
	return base
}

// Package config provides configuration management using Viper.
// It loads configuration from environment variables, .env files, and config files.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultServerPort             = 8080
	defaultServerHost             = "0.0.0.0"
	defaultReadTimeout            = 30 * time.Second
	defaultWriteTimeout           = 30 * time.Second
	defaultDatabasePath           = "./data/rabbitears.db"
	defaultMigrationsPath         = "file://./migrations"
	defaultLogLevel               = "info"
	defaultLogPretty              = false
	defaultBreakTolerance         = 0.25
	defaultPaddingThresholdSec    = 5
	defaultChannelEntryTimeoutSec = 2
	defaultChannelInfoDuration    = 3
	defaultMediaInfoDuration      = 5
	envPrefix                     = "RABBITEARS"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Logging  LoggingConfig
	Playback PlaybackConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port         int
	Host         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	Path           string
	MigrationsPath string
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string
	Pretty bool
}

// PlaybackConfig holds playback engine tuning
type PlaybackConfig struct {
	// BreakTolerance is how many seconds early a break timecode may trigger
	BreakTolerance float64
	// PaddingThresholdSeconds is the minimum remaining block time worth
	// padding with commercials after the main title ends
	PaddingThresholdSeconds int
	// ChannelEntryTimeoutSeconds is the digit-buffer auto-clear timeout
	ChannelEntryTimeoutSeconds int
	// ChannelInfoDurationSeconds is how long the channel banner shows
	ChannelInfoDurationSeconds int
	// MediaInfoDurationSeconds is how long the program banner shows
	MediaInfoDurationSeconds int
}

// PaddingThreshold returns the padding threshold as a duration
func (p PlaybackConfig) PaddingThreshold() time.Duration {
	return time.Duration(p.PaddingThresholdSeconds) * time.Second
}

// ChannelEntryTimeout returns the digit-buffer timeout as a duration
func (p PlaybackConfig) ChannelEntryTimeout() time.Duration {
	return time.Duration(p.ChannelEntryTimeoutSeconds) * time.Second
}

// Load reads configuration from .env file, config files, environment variables, and defaults
func Load() (*Config, error) {
	// .env files are optional in production and CI where env vars are set directly
	_ = godotenv.Load() // nolint:errcheck // .env file is optional

	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/rabbitears")

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults configures default values for all configuration options
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", defaultServerPort)
	v.SetDefault("server.host", defaultServerHost)
	v.SetDefault("server.readtimeout", defaultReadTimeout)
	v.SetDefault("server.writetimeout", defaultWriteTimeout)

	v.SetDefault("database.path", defaultDatabasePath)
	v.SetDefault("database.migrationspath", defaultMigrationsPath)

	v.SetDefault("logging.level", defaultLogLevel)
	v.SetDefault("logging.pretty", defaultLogPretty)

	v.SetDefault("playback.breaktolerance", defaultBreakTolerance)
	v.SetDefault("playback.paddingthresholdseconds", defaultPaddingThresholdSec)
	v.SetDefault("playback.channelentrytimeoutseconds", defaultChannelEntryTimeoutSec)
	v.SetDefault("playback.channelinfodurationseconds", defaultChannelInfoDuration)
	v.SetDefault("playback.mediainfodurationseconds", defaultMediaInfoDuration)
}

// Validate checks that configuration values are valid
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d (must be between 1 and 65535)", c.Server.Port)
	}

	if c.Server.ReadTimeout <= 0 {
		return fmt.Errorf("invalid read timeout: %v (must be > 0)", c.Server.ReadTimeout)
	}
	if c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("invalid write timeout: %v (must be > 0)", c.Server.WriteTimeout)
	}

	validLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLevels, c.Logging.Level) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.Logging.Level, strings.Join(validLevels, ", "))
	}

	if c.Playback.BreakTolerance < 0 {
		return fmt.Errorf("invalid break tolerance: %f (must be >= 0)", c.Playback.BreakTolerance)
	}
	if c.Playback.PaddingThresholdSeconds < 0 {
		return fmt.Errorf("invalid padding threshold: %d (must be >= 0)", c.Playback.PaddingThresholdSeconds)
	}
	if c.Playback.ChannelEntryTimeoutSeconds < 1 {
		return fmt.Errorf("invalid channel entry timeout: %d (must be >= 1)", c.Playback.ChannelEntryTimeoutSeconds)
	}

	return nil
}

// contains checks if a string slice contains a specific value
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

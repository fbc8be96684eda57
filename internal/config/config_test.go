package config

import (
	"os"
	"testing"
	"time"
)

func TestConfigDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Test server defaults
	if cfg.Server.Port != defaultServerPort {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, defaultServerPort)
	}
	if cfg.Server.Host != defaultServerHost {
		t.Errorf("Server.Host = %s, want %s", cfg.Server.Host, defaultServerHost)
	}

	// Test database defaults
	if cfg.Database.Path != defaultDatabasePath {
		t.Errorf("Database.Path = %s, want %s", cfg.Database.Path, defaultDatabasePath)
	}
	if cfg.Database.MigrationsPath != defaultMigrationsPath {
		t.Errorf("Database.MigrationsPath = %s, want %s", cfg.Database.MigrationsPath, defaultMigrationsPath)
	}

	// Test logging defaults
	if cfg.Logging.Level != defaultLogLevel {
		t.Errorf("Logging.Level = %s, want %s", cfg.Logging.Level, defaultLogLevel)
	}
	if cfg.Logging.Pretty != defaultLogPretty {
		t.Errorf("Logging.Pretty = %v, want %v", cfg.Logging.Pretty, defaultLogPretty)
	}

	// Test playback defaults
	if cfg.Playback.BreakTolerance != defaultBreakTolerance {
		t.Errorf("Playback.BreakTolerance = %f, want %f", cfg.Playback.BreakTolerance, defaultBreakTolerance)
	}
	if cfg.Playback.PaddingThresholdSeconds != defaultPaddingThresholdSec {
		t.Errorf("Playback.PaddingThresholdSeconds = %d, want %d", cfg.Playback.PaddingThresholdSeconds, defaultPaddingThresholdSec)
	}
	if cfg.Playback.ChannelEntryTimeoutSeconds != defaultChannelEntryTimeoutSec {
		t.Errorf("Playback.ChannelEntryTimeoutSeconds = %d, want %d", cfg.Playback.ChannelEntryTimeoutSeconds, defaultChannelEntryTimeoutSec)
	}
	if cfg.Playback.ChannelInfoDurationSeconds != defaultChannelInfoDuration {
		t.Errorf("Playback.ChannelInfoDurationSeconds = %d, want %d", cfg.Playback.ChannelInfoDurationSeconds, defaultChannelInfoDuration)
	}
	if cfg.Playback.MediaInfoDurationSeconds != defaultMediaInfoDuration {
		t.Errorf("Playback.MediaInfoDurationSeconds = %d, want %d", cfg.Playback.MediaInfoDurationSeconds, defaultMediaInfoDuration)
	}
}

func TestPlaybackConfigEnvVars(t *testing.T) {
	_ = os.Setenv("RABBITEARS_PLAYBACK_BREAKTOLERANCE", "0.5")
	_ = os.Setenv("RABBITEARS_PLAYBACK_PADDINGTHRESHOLDSECONDS", "10")
	_ = os.Setenv("RABBITEARS_PLAYBACK_CHANNELENTRYTIMEOUTSECONDS", "3")
	defer func() {
		_ = os.Unsetenv("RABBITEARS_PLAYBACK_BREAKTOLERANCE")
		_ = os.Unsetenv("RABBITEARS_PLAYBACK_PADDINGTHRESHOLDSECONDS")
		_ = os.Unsetenv("RABBITEARS_PLAYBACK_CHANNELENTRYTIMEOUTSECONDS")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Playback.BreakTolerance != 0.5 {
		t.Errorf("Playback.BreakTolerance = %f, want 0.5", cfg.Playback.BreakTolerance)
	}
	if cfg.Playback.PaddingThresholdSeconds != 10 {
		t.Errorf("Playback.PaddingThresholdSeconds = %d, want 10", cfg.Playback.PaddingThresholdSeconds)
	}
	if cfg.Playback.ChannelEntryTimeoutSeconds != 3 {
		t.Errorf("Playback.ChannelEntryTimeoutSeconds = %d, want 3", cfg.Playback.ChannelEntryTimeoutSeconds)
	}
}

func TestDurationHelpers(t *testing.T) {
	p := PlaybackConfig{
		PaddingThresholdSeconds:    5,
		ChannelEntryTimeoutSeconds: 2,
	}
	if p.PaddingThreshold() != 5*time.Second {
		t.Errorf("PaddingThreshold() = %v, want 5s", p.PaddingThreshold())
	}
	if p.ChannelEntryTimeout() != 2*time.Second {
		t.Errorf("ChannelEntryTimeout() = %v, want 2s", p.ChannelEntryTimeout())
	}
}

func TestConfigValidation(t *testing.T) {
	base := Config{
		Server: ServerConfig{
			Port:         8080,
			Host:         "0.0.0.0",
			ReadTimeout:  defaultReadTimeout,
			WriteTimeout: defaultWriteTimeout,
		},
		Database: DatabaseConfig{
			Path:           "./data/rabbitears.db",
			MigrationsPath: defaultMigrationsPath,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Playback: PlaybackConfig{
			BreakTolerance:             0.25,
			PaddingThresholdSeconds:    5,
			ChannelEntryTimeoutSeconds: 2,
			ChannelInfoDurationSeconds: 3,
			MediaInfoDurationSeconds:   5,
		},
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{
			name:    "valid config",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "invalid server port (too low)",
			mutate:  func(c *Config) { c.Server.Port = 0 },
			wantErr: true,
		},
		{
			name:    "invalid server port (too high)",
			mutate:  func(c *Config) { c.Server.Port = 70000 },
			wantErr: true,
		},
		{
			name:    "invalid read timeout",
			mutate:  func(c *Config) { c.Server.ReadTimeout = 0 },
			wantErr: true,
		},
		{
			name:    "invalid log level",
			mutate:  func(c *Config) { c.Logging.Level = "invalid" },
			wantErr: true,
		},
		{
			name:    "negative break tolerance",
			mutate:  func(c *Config) { c.Playback.BreakTolerance = -1 },
			wantErr: true,
		},
		{
			name:    "zero break tolerance is allowed",
			mutate:  func(c *Config) { c.Playback.BreakTolerance = 0 },
			wantErr: false,
		},
		{
			name:    "negative padding threshold",
			mutate:  func(c *Config) { c.Playback.PaddingThresholdSeconds = -1 },
			wantErr: true,
		},
		{
			name:    "zero channel entry timeout",
			mutate:  func(c *Config) { c.Playback.ChannelEntryTimeoutSeconds = 0 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestContains(t *testing.T) {
	tests := []struct {
		name  string
		slice []string
		item  string
		want  bool
	}{
		{
			name:  "item exists",
			slice: []string{"one", "two", "three"},
			item:  "two",
			want:  true,
		},
		{
			name:  "item does not exist",
			slice: []string{"one", "two", "three"},
			item:  "four",
			want:  false,
		},
		{
			name:  "empty slice",
			slice: []string{},
			item:  "one",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := contains(tt.slice, tt.item)
			if got != tt.want {
				t.Errorf("contains() = %v, want %v", got, tt.want)
			}
		})
	}
}

package config

import (
	"fmt"
	"time"

	"go.uber.org/zap/zapcore"

	"network-ping/internal/app"
	"network-ping/internal/interpret"
)

// Config holds all configuration for network-ping
type Config struct {
	Variant      string        `mapstructure:"variant"`
	Target       string        `mapstructure:"target"`
	Strategy     string        `mapstructure:"strategy"`
	DiscardStale bool          `mapstructure:"discard_stale"`
	Ping         PingConfig    `mapstructure:"ping"`
	Journal      JournalConfig `mapstructure:"journal"`
	HTTP         HTTPConfig    `mapstructure:"http"`
	Log          LogConfig     `mapstructure:"log"`
}

// PingConfig holds the invocation parameters passed to the ping binary
type PingConfig struct {
	Binary   string        `mapstructure:"binary"`
	Interval time.Duration `mapstructure:"interval"`
	Deadline time.Duration `mapstructure:"deadline"`
	Count    int           `mapstructure:"count"`
}

// JournalConfig enables the optional outcome journal
type JournalConfig struct {
	Path      string        `mapstructure:"path"`
	Retention time.Duration `mapstructure:"retention"`
}

type HTTPConfig struct {
	Addr string `mapstructure:"addr"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	switch app.Variant(c.Variant) {
	case app.VariantInteractive:
	case app.VariantFixed:
		if c.Target == "" {
			return fmt.Errorf("fixed variant requires a target")
		}
	default:
		return fmt.Errorf("unknown variant %q", c.Variant)
	}
	if _, err := interpret.ByName(c.Strategy); err != nil {
		return err
	}
	if c.Ping.Binary == "" {
		return fmt.Errorf("ping binary cannot be empty")
	}
	if c.Ping.Interval < 0 || c.Ping.Deadline < 0 || c.Ping.Count < 0 {
		return fmt.Errorf("ping parameters cannot be negative")
	}
	if c.Ping.Deadline > 0 && c.Ping.Deadline < time.Second {
		return fmt.Errorf("ping deadline must be at least 1s, got %s", c.Ping.Deadline)
	}
	if c.Ping.Deadline == 0 && c.Ping.Count == 0 {
		return fmt.Errorf("either ping deadline or count must be set")
	}
	if c.HTTP.Addr != "" && c.Journal.Path == "" {
		return fmt.Errorf("status API requires a journal path")
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	if c.Journal.Retention < 0 {
		return fmt.Errorf("journal retention cannot be negative")
	}
	return nil
}

// Profile converts the configuration into the state machine profile
func (c *Config) Profile() app.Profile {
	return app.Profile{
		Variant:      app.Variant(c.Variant),
		Target:       c.Target,
		Interval:     c.Ping.Interval,
		Deadline:     c.Ping.Deadline,
		Count:        c.Ping.Count,
		DiscardStale: c.DiscardStale,
	}
}

package fcm

import (
	"errors"

	"github.com/douglasroos/fcm/pkg/config"
)

// Config holds default message options read from the environment.
// Empty strings and nil pointers mean the option is unset.
type Config struct {
	CollapseKey           string `env:"FCM_COLLAPSE_KEY"`
	Priority              string `env:"FCM_PRIORITY"`
	ContentAvailable      *bool  `env:"FCM_CONTENT_AVAILABLE"`
	DelayWhileIdle        *bool  `env:"FCM_DELAY_WHILE_IDLE"`
	TimeToLive            *int   `env:"FCM_TIME_TO_LIVE"` // seconds, 0..2419200
	RestrictedPackageName string `env:"FCM_RESTRICTED_PACKAGE_NAME"`
	DryRun                *bool  `env:"FCM_DRY_RUN"`
}

// LoadConfig reads Config from the environment. The result is cached for the
// lifetime of the process.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, errors.Join(ErrLoadConfig, err)
	}
	return cfg, nil
}

// Apply passes the configured values through the builder setters.
// Unset values leave the builder untouched.
func (c Config) Apply(b *OptionsBuilder) error {
	if c.CollapseKey != "" {
		b.SetCollapseKey(c.CollapseKey)
	}
	if c.Priority != "" {
		if _, err := b.SetPriority(Priority(c.Priority)); err != nil {
			return err
		}
	}
	if c.TimeToLive != nil {
		if _, err := b.SetTimeToLive(*c.TimeToLive); err != nil {
			return err
		}
	}
	if c.RestrictedPackageName != "" {
		b.SetRestrictedPackageName(c.RestrictedPackageName)
	}
	if c.ContentAvailable != nil {
		b.SetContentAvailable(*c.ContentAvailable)
	}
	if c.DelayWhileIdle != nil {
		b.SetDelayWhileIdle(*c.DelayWhileIdle)
	}
	if c.DryRun != nil {
		b.SetDryRun(*c.DryRun)
	}
	return nil
}

// Builder returns a new builder populated from the config.
func (c Config) Builder() (*OptionsBuilder, error) {
	b := NewOptionsBuilder()
	if err := c.Apply(b); err != nil {
		return nil, err
	}
	return b, nil
}

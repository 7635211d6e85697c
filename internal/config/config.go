package config

import (
	"time"

	"github.com/olusolaa/stack-tail/internal/log"
)

const (
	OutputText = "text"
	OutputJSON = "json"
)

type Config struct {
	Settings SettingsConfig `mapstructure:"settings"`
	AWS      AWSConfig      `mapstructure:"aws"`
	Tail     TailConfig     `mapstructure:"tail"`
}

type SettingsConfig struct {
	LogLevel     log.Level     `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	LogFormat    log.Format    `mapstructure:"log_format" validate:"oneof=text json"`
	Output       string        `mapstructure:"output" validate:"oneof=text json"`
	NoColor      bool          `mapstructure:"no_color"`
	NoReason     bool          `mapstructure:"no_reason"`
	Timezone     string        `mapstructure:"timezone" validate:"omitempty,timezone"`
	PollInterval time.Duration `mapstructure:"poll_interval" validate:"gte=100ms,lte=1h"`
}

type AWSConfig struct {
	// Region and Profile override the SDK's default resolution chain when set.
	Region  string `mapstructure:"region"`
	Profile string `mapstructure:"profile"`
	MaxRPS  int    `mapstructure:"max_rps" validate:"gte=0,lte=100"`
}

// TailConfig comes from the command line only.
type TailConfig struct {
	StackName string `mapstructure:"stack_name" validate:"required"`
	Resources bool   `mapstructure:"resources"`
	Follow    bool   `mapstructure:"follow"`
}

func DefaultConfig() *Config {
	return &Config{
		Settings: SettingsConfig{
			LogLevel:     log.LevelWarn,
			LogFormat:    log.FormatText,
			Output:       OutputText,
			PollInterval: time.Second,
		},
		AWS: AWSConfig{
			MaxRPS: 5,
		},
	}
}

// Location resolves the configured timezone; nil means "keep the API offset".
func (c *Config) Location() (*time.Location, error) {
	if c.Settings.Timezone == "" {
		return nil, nil
	}
	return time.LoadLocation(c.Settings.Timezone)
}

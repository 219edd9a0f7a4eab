package config

import (
	"github.com/skylift/resourcekit/internal/core/domain"
	"github.com/skylift/resourcekit/internal/log"
	"github.com/skylift/resourcekit/internal/reporting/text"
)

type Config struct {
	Settings SettingsConfig  `mapstructure:"settings" yaml:"settings"`
	AWS      *AWSConfig      `mapstructure:"aws" yaml:"aws"`
	Variants []VariantConfig `mapstructure:"variants" yaml:"variants" validate:"dive"`
}

type SettingsConfig struct {
	LogLevel     log.Level       `mapstructure:"log_level" yaml:"log_level"`
	LogFormat    log.Format      `mapstructure:"log_format" yaml:"log_format"`
	ReporterType string          `mapstructure:"reporter" yaml:"reporter" validate:"omitempty,oneof=text json"`
	Reporter     ReporterConfigs `mapstructure:"reporter_config" yaml:"reporter_config"`
}

type ReporterConfigs struct {
	Text *text.Config `mapstructure:"text" yaml:"text,omitempty"`
}

type AWSConfig struct {
	Region          string `mapstructure:"region" yaml:"region"`
	Profile         string `mapstructure:"profile" yaml:"profile"`
	APIRateLimitRPS int    `mapstructure:"api_rate_limit_rps" yaml:"api_rate_limit_rps" validate:"omitempty,min=1,max=100"`
}

// VariantConfig lets a config file declare additional resource variants
// beyond the built-in ones.
type VariantConfig struct {
	Name        string   `mapstructure:"name" yaml:"name" validate:"required"`
	Service     string   `mapstructure:"service" yaml:"service" validate:"required"`
	Identifiers []string `mapstructure:"identifiers" yaml:"identifiers" validate:"required,min=1,dive,required"`
}

func (vc VariantConfig) Descriptor() domain.Descriptor {
	return domain.Descriptor{
		Name:        vc.Name,
		ServiceName: vc.Service,
		Identifiers: vc.Identifiers,
	}
}

func DefaultConfig() *Config {
	return &Config{
		Settings: SettingsConfig{
			LogLevel:     log.LevelInfo,
			LogFormat:    log.FormatText,
			ReporterType: text.ReporterTypeText,
			Reporter: ReporterConfigs{
				Text: &text.Config{NoColor: false},
			},
		},
		AWS: &AWSConfig{},
	}
}

package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Config is a typed, validated snapshot of the effective configuration.
type Config struct {
	Server struct {
		Port  int  `mapstructure:"port" validate:"gte=1,lte=65535"`
		Debug bool `mapstructure:"debug"`
	} `mapstructure:"server"`
	Database struct {
		Type string `mapstructure:"type" validate:"oneof=sqlite mysql mariadb"`
		Path string `mapstructure:"path" validate:"required"`
	} `mapstructure:"database"`
	Render struct {
		ModuleTimeout string `mapstructure:"module_timeout"`
		Debug         bool   `mapstructure:"debug"`
	} `mapstructure:"render"`
	Brand struct {
		PrimaryColor    string `mapstructure:"primary_color" validate:"omitempty,hexcolor"`
		SecondaryColor  string `mapstructure:"secondary_color" validate:"omitempty,hexcolor"`
		AccentColor     string `mapstructure:"accent_color" validate:"omitempty,hexcolor"`
		BackgroundColor string `mapstructure:"background_color" validate:"omitempty,hexcolor"`
		ForegroundColor string `mapstructure:"foreground_color" validate:"omitempty,hexcolor"`
	} `mapstructure:"brand"`
}

// Snapshot unmarshals and validates the effective configuration.
func Snapshot() (*Config, error) {
	if v == nil {
		return nil, fmt.Errorf("config not initialized")
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

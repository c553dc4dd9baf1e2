// SPDX-License-Identifier: MIT
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/inkwellhq/inkwell/internal/themes"
)

var v *viper.Viper

// InitConfig initializes the configuration system, creating the config file
// with defaults when it does not exist yet.
func InitConfig(configPath string) error {
	v = viper.New()

	setDefaults()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			if err := v.WriteConfigAs(configPath); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
		} else {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	return nil
}

func setDefaults() {
	// Server defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.debug", false)

	// Database defaults (document store)
	v.SetDefault("database.type", "sqlite")
	v.SetDefault("database.path", "/var/lib/inkwell/inkwell.db")

	// Render defaults
	v.SetDefault("render.module_timeout", "3s")
	v.SetDefault("render.debug", false)

	// Export defaults
	v.SetDefault("export.minify", false)

	// Brand defaults; empty values mean "derive from fixed fallbacks"
	v.SetDefault("brand.primary_color", "")
	v.SetDefault("brand.secondary_color", "")
	v.SetDefault("brand.accent_color", "")
	v.SetDefault("brand.background_color", "")
	v.SetDefault("brand.foreground_color", "")

	// Logging defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.human", true)
}

// GetString returns a config value as string
func GetString(key string) string {
	if v == nil {
		return ""
	}
	return v.GetString(key)
}

// GetInt returns a config value as int
func GetInt(key string) int {
	if v == nil {
		return 0
	}
	return v.GetInt(key)
}

// GetBool returns a config value as bool
func GetBool(key string) bool {
	if v == nil {
		return false
	}
	return v.GetBool(key)
}

// GetDuration returns a config value as duration
func GetDuration(key string) time.Duration {
	if v == nil {
		return 0
	}
	return v.GetDuration(key)
}

// Set sets and persists a configuration value
func Set(key string, value any) error {
	if v == nil {
		return fmt.Errorf("config not initialized")
	}
	v.Set(key, value)
	return v.WriteConfig()
}

// GetAll returns all configuration values
func GetAll() map[string]any {
	if v == nil {
		return map[string]any{}
	}
	return v.AllSettings()
}

// Brand assembles the brand color inputs from site-level configuration.
func Brand() themes.BrandInput {
	if v == nil {
		return themes.BrandInput{}
	}
	overrides := map[string]string{}
	for slot, value := range v.GetStringMapString("brand.overrides") {
		if value != "" {
			overrides[slot] = value
		}
	}
	return themes.BrandInput{
		PrimaryColor:    GetString("brand.primary_color"),
		SecondaryColor:  GetString("brand.secondary_color"),
		AccentColor:     GetString("brand.accent_color"),
		BackgroundColor: GetString("brand.background_color"),
		ForegroundColor: GetString("brand.foreground_color"),
		ThemeOverrides:  overrides,
	}
}

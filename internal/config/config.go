// Package config provides Viper-based configuration loading for
// content tooling and game tuning.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// ContentConfig holds the content directory layout. Each directory
// contains *.yaml definition files for one content kind.
type ContentConfig struct {
	EffectsDir   string `mapstructure:"effects_dir"`
	ItemsDir     string `mapstructure:"items_dir"`
	AbilitiesDir string `mapstructure:"abilities_dir"`
	EnemiesDir   string `mapstructure:"enemies_dir"`
	ShopsDir     string `mapstructure:"shops_dir"`
}

// TuningConfig holds gameplay tuning knobs.
type TuningConfig struct {
	// LowHealthThreshold is the HP ratio below which enemy AI prefers
	// healing. Must be in (0, 1].
	LowHealthThreshold float64 `mapstructure:"low_health_threshold"`
	// BuyMultiplier is the default shop buy price multiplier.
	BuyMultiplier float64 `mapstructure:"buy_multiplier"`
	// SellMultiplier is the default shop sell price multiplier. Must
	// not exceed BuyMultiplier.
	SellMultiplier float64 `mapstructure:"sell_multiplier"`
}

// Config is the top-level configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Content ContentConfig `mapstructure:"content"`
	Tuning  TuningConfig  `mapstructure:"tuning"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if the configuration is valid, or an
// error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateContent(c.Content); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateTuning(c.Tuning); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func validateContent(c ContentConfig) error {
	var errs []string
	dirs := []struct {
		key string
		dir string
	}{
		{"content.effects_dir", c.EffectsDir},
		{"content.items_dir", c.ItemsDir},
		{"content.abilities_dir", c.AbilitiesDir},
		{"content.enemies_dir", c.EnemiesDir},
		{"content.shops_dir", c.ShopsDir},
	}
	for _, d := range dirs {
		if d.dir == "" {
			errs = append(errs, fmt.Sprintf("%s must not be empty", d.key))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateTuning(t TuningConfig) error {
	var errs []string
	if t.LowHealthThreshold <= 0 || t.LowHealthThreshold > 1 {
		errs = append(errs, fmt.Sprintf("tuning.low_health_threshold must be in (0, 1], got %f", t.LowHealthThreshold))
	}
	if t.BuyMultiplier <= 0 {
		errs = append(errs, fmt.Sprintf("tuning.buy_multiplier must be > 0, got %f", t.BuyMultiplier))
	}
	if t.SellMultiplier <= 0 {
		errs = append(errs, fmt.Sprintf("tuning.sell_multiplier must be > 0, got %f", t.SellMultiplier))
	}
	if t.SellMultiplier > 0 && t.BuyMultiplier > 0 && t.SellMultiplier > t.BuyMultiplier {
		errs = append(errs, "tuning.sell_multiplier must not exceed tuning.buy_multiplier")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies
// environment variable overrides, and validates the result.
//
// Precondition: path must be a valid file path to a YAML configuration
// file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	// Environment variable overrides with RPGKIT_ prefix
	v.SetEnvPrefix("RPGKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadFromViper builds a Config from an already-configured Viper
// instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("content.effects_dir", "content/effects")
	v.SetDefault("content.items_dir", "content/items")
	v.SetDefault("content.abilities_dir", "content/abilities")
	v.SetDefault("content.enemies_dir", "content/enemies")
	v.SetDefault("content.shops_dir", "content/shops")

	v.SetDefault("tuning.low_health_threshold", 0.25)
	v.SetDefault("tuning.buy_multiplier", 1.0)
	v.SetDefault("tuning.sell_multiplier", 0.5)
}

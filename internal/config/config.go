// Package config loads application configuration from file and environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI      UIConfig
	Suggest SuggestConfig
	Seed    SeedConfig
	Log     LogConfig
}

// UIConfig holds presentation settings. The currency symbol is threaded
// explicitly into summaries and reports; core packages never read it from
// ambient state.
type UIConfig struct {
	CurrencySymbol string `mapstructure:"currency_symbol"`
	DateFormat     string `mapstructure:"date_format"`
}

// SuggestConfig holds suggestion-engine settings.
type SuggestConfig struct {
	Limit int
}

// SeedConfig holds demo-data settings.
type SeedConfig struct {
	Count int
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string
}

// Load reads configuration from file and env. Env var overrides use prefix
// SPENDWISE_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("ui.currency_symbol", "₹")
	v.SetDefault("ui.date_format", "02 Jan 2006")
	v.SetDefault("suggest.limit", 5)
	v.SetDefault("seed.count", 40)
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("SPENDWISE_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "spendwise"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SPENDWISE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

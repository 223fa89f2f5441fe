// Package config loads and validates service configuration via Viper.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"flixapi/internal/catalog"
)

// Config captures all service configuration knobs loaded via Viper.
type Config struct {
	Server  ServerConfig     `mapstructure:"server"`
	Scrape  ScrapeConfig     `mapstructure:"scrape"`
	Logging LoggingConfig    `mapstructure:"logging"`
	Locales []catalog.Locale `mapstructure:"locales"`
}

// ServerConfig controls HTTP server behavior.
type ServerConfig struct {
	Port            int `mapstructure:"port"`
	CacheMaxAgeSecs int `mapstructure:"cache_max_age_seconds"`
}

// ScrapeConfig governs outbound fetching and the refresh schedule.
type ScrapeConfig struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
	IntervalHours  int `mapstructure:"interval_hours"`
}

// LoggingConfig toggles zap development features and the access log file.
type LoggingConfig struct {
	Development bool   `mapstructure:"development"`
	AccessLog   string `mapstructure:"access_log"`
}

// Load builds a Config from disk/environment.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("FLIXAPI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if len(cfg.Locales) == 0 {
		cfg.Locales = catalog.DefaultLocales()
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cache_max_age_seconds", 86400)
	v.SetDefault("scrape.timeout_seconds", 10)
	v.SetDefault("scrape.interval_hours", 24)
	v.SetDefault("logging.development", true)
	v.SetDefault("logging.access_log", "logs/access.log")
}

// Validate enforces required values and reasonable limits.
func (c Config) Validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("server.port must be > 0")
	}
	if c.Scrape.TimeoutSeconds <= 0 {
		return fmt.Errorf("scrape.timeout_seconds must be > 0")
	}
	if c.Scrape.IntervalHours <= 0 {
		return fmt.Errorf("scrape.interval_hours must be > 0")
	}
	seen := make(map[string]struct{}, len(c.Locales))
	for _, l := range c.Locales {
		if l.Code == "" || l.Host == "" {
			return fmt.Errorf("locale %q must have code and host", l.Name)
		}
		if _, dup := seen[l.Code]; dup {
			return fmt.Errorf("duplicate locale code %q", l.Code)
		}
		seen[l.Code] = struct{}{}
	}
	return nil
}

// FetchTimeout converts the scrape timeout config into a duration.
func (c Config) FetchTimeout() time.Duration {
	return time.Duration(c.Scrape.TimeoutSeconds) * time.Second
}

// RefreshInterval converts the scrape interval config into a duration.
func (c Config) RefreshInterval() time.Duration {
	return time.Duration(c.Scrape.IntervalHours) * time.Hour
}

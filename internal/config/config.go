// Package config loads menuwise settings from the environment, an optional
// .env file and an optional config.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config represents the full application configuration surface.
type Config struct {
	DBPath   string          `mapstructure:"db_path"`
	LogLevel string          `mapstructure:"log_level"`
	Digest   DigestConfig    `mapstructure:"digest"`
	Catalog  []CatalogConfig `mapstructure:"catalog"`
}

// DigestConfig controls the scheduled recommendation digest.
type DigestConfig struct {
	Schedule     string `mapstructure:"schedule"`
	Timezone     string `mapstructure:"timezone"`
	ForecastDays int    `mapstructure:"forecast_days"`
}

// CatalogConfig is a menu item used to seed the catalog.
type CatalogConfig struct {
	Name     string `mapstructure:"name"`
	Category string `mapstructure:"category"`
	Price    string `mapstructure:"price"`
}

// DefaultCatalog is the canteen menu used when no catalog is configured.
func DefaultCatalog() []CatalogConfig {
	return []CatalogConfig{
		{Name: "Chapati & Beans", Category: "lunch", Price: "80"},
		{Name: "Rice & Stew", Category: "lunch", Price: "120"},
		{Name: "Ugali & Sukuma", Category: "lunch", Price: "100"},
		{Name: "Tea & Mandazi", Category: "breakfast", Price: "50"},
		{Name: "Chips & Chicken", Category: "lunch", Price: "150"},
		{Name: "Fruit Salad", Category: "snack", Price: "80"},
		{Name: "Juice", Category: "drinks", Price: "60"},
		{Name: "Samosa", Category: "snack", Price: "40"},
	}
}

// Dir returns the menuwise config directory, respecting XDG_CONFIG_HOME.
// Defaults to ~/.config/menuwise if XDG_CONFIG_HOME is not set.
func Dir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "menuwise"), nil
}

// Load reads .env (if present), MENUWISE_* environment variables and a YAML
// config file. An explicit path must exist; otherwise config.yaml in Dir() is
// optional.
func Load(path string) (*Config, error) {
	// Missing .env files are fine; configuration may come from the environment.
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("MENUWISE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("db_path", "")
	v.SetDefault("log_level", "warn")
	v.SetDefault("digest.schedule", "0 20 * * *")
	v.SetDefault("digest.timezone", "Local")
	v.SetDefault("digest.forecast_days", 7)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		dir, err := Dir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve config dir: %w", err)
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if len(cfg.Catalog) == 0 {
		cfg.Catalog = DefaultCatalog()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate ensures that required configuration fields are usable.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Digest.Schedule == "" {
		return errors.New("digest.schedule must not be empty")
	}
	if _, err := c.Digest.Location(); err != nil {
		return fmt.Errorf("digest.timezone %q: %w", c.Digest.Timezone, err)
	}
	if c.Digest.ForecastDays <= 0 {
		return fmt.Errorf("digest.forecast_days must be positive, got %d", c.Digest.ForecastDays)
	}

	seen := make(map[string]bool, len(c.Catalog))
	for i, item := range c.Catalog {
		name := strings.TrimSpace(item.Name)
		if name == "" {
			return fmt.Errorf("catalog[%d]: name must not be empty", i)
		}
		if seen[name] {
			return fmt.Errorf("catalog[%d]: duplicate item %q", i, name)
		}
		seen[name] = true

		price, err := decimal.NewFromString(strings.TrimSpace(item.Price))
		if err != nil {
			return fmt.Errorf("catalog[%d] %s: invalid price %q: %w", i, name, item.Price, err)
		}
		if price.IsNegative() {
			return fmt.Errorf("catalog[%d] %s: price must not be negative", i, name)
		}
	}

	return nil
}

// Location returns the digest timezone.
func (d DigestConfig) Location() (*time.Location, error) {
	if d.Timezone == "" || strings.EqualFold(d.Timezone, "local") {
		return time.Local, nil
	}
	return time.LoadLocation(d.Timezone)
}

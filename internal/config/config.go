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
	Database DatabaseConfig
	Catalog  CatalogConfig
	UI       UIConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// CatalogConfig points at the service catalog file.
type CatalogConfig struct {
	Path string
}

// UIConfig holds presentation settings. Language and Avatar are persisted
// independently of booking data, matching the separate preference entries
// the app keeps on disk.
type UIConfig struct {
	Language       string // "ar" or "en"
	CurrencySymbol string
	Avatar         string // image path or URL shown on the settings view
}

// Load reads configuration from file and env. Env var overrides use prefix NADHIF_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "nadhif", "bookings.db"))
	v.SetDefault("catalog.path", filepath.Join(os.Getenv("HOME"), ".config", "nadhif", "catalog.toml"))
	v.SetDefault("ui.language", "ar")
	v.SetDefault("ui.currency_symbol", "DA")
	v.SetDefault("ui.avatar", "")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("NADHIF_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "nadhif"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("NADHIF")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.UI.Language = normalizeLanguage(c.UI.Language)
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if
// needed. Used by the settings view to persist language and avatar changes.
func Save(cfg Config) error {
	path := os.Getenv("NADHIF_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "nadhif", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("catalog.path", cfg.Catalog.Path)
	v.Set("ui.language", normalizeLanguage(cfg.UI.Language))
	v.Set("ui.currency_symbol", cfg.UI.CurrencySymbol)
	v.Set("ui.avatar", cfg.UI.Avatar)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func normalizeLanguage(lang string) string {
	switch strings.ToLower(strings.TrimSpace(lang)) {
	case "en":
		return "en"
	default:
		return "ar"
	}
}

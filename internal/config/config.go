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
	Storage StorageConfig
	Palette PaletteConfig
	UI      UIConfig
	Keys    map[string][]string
}

// StorageConfig selects the history backend and the ticket database path.
type StorageConfig struct {
	Backend string // "file" or "sqlite"
	Dir     string // file backend root
	Path    string // sqlite database path
}

// PaletteConfig holds the palette tuning knobs.
type PaletteConfig struct {
	ResultLimit int     `mapstructure:"result_limit"`
	RecentCap   int     `mapstructure:"recent_cap"`
	FavoriteCap int     `mapstructure:"favorite_cap"`
	Threshold   float64 `mapstructure:"threshold"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme    string
	Assignee string
}

// Load reads configuration from file and env. Env var overrides use prefix OPSDECK_.
func Load() (Config, error) {
	v := viper.New()

	dataDir := filepath.Join(os.Getenv("HOME"), ".local", "share", "opsdeck")
	confDir := filepath.Join(os.Getenv("HOME"), ".config", "opsdeck")

	// default values
	v.SetDefault("storage.backend", "file")
	v.SetDefault("storage.dir", confDir)
	v.SetDefault("storage.path", filepath.Join(dataDir, "opsdeck.db"))
	v.SetDefault("palette.result_limit", 12)
	v.SetDefault("palette.recent_cap", 10)
	v.SetDefault("palette.favorite_cap", 10)
	v.SetDefault("palette.threshold", 0.45)
	v.SetDefault("ui.theme", "dark")
	v.SetDefault("ui.assignee", defaultAssignee())
	v.SetDefault("keys", map[string][]string{})

	v.SetConfigType("toml")

	cfgPath := os.Getenv("OPSDECK_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(confDir)
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("OPSDECK")
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

// Save writes the provided config to disk, creating the config directory if
// needed. Used by the settings commands for non-sensitive preferences.
func Save(cfg Config) error {
	path := os.Getenv("OPSDECK_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "opsdeck", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("storage.backend", cfg.Storage.Backend)
	v.Set("storage.dir", cfg.Storage.Dir)
	v.Set("storage.path", cfg.Storage.Path)
	v.Set("palette.result_limit", cfg.Palette.ResultLimit)
	v.Set("palette.recent_cap", cfg.Palette.RecentCap)
	v.Set("palette.favorite_cap", cfg.Palette.FavoriteCap)
	v.Set("palette.threshold", cfg.Palette.Threshold)
	v.Set("ui.theme", cfg.UI.Theme)
	v.Set("ui.assignee", cfg.UI.Assignee)
	v.Set("keys", cfg.Keys)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func defaultAssignee() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "me"
}

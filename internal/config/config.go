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
	UI  UIConfig
	Log LogConfig
}

// UIConfig holds the demo shell defaults. Everything here is editable
// at runtime; the file only seeds the first render pass.
type UIConfig struct {
	Username  string
	MenuTitle string `mapstructure:"menu_title"`
	Sidebar   bool
	ShowTitle bool `mapstructure:"show_title"`
}

// LogConfig holds the debug log settings.
type LogConfig struct {
	Path  string
	Level string
}

// Load reads configuration from file and env. Env var overrides use
// prefix TOCBOARD_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("ui.username", "user")
	v.SetDefault("ui.menu_title", "")
	v.SetDefault("ui.sidebar", true)
	v.SetDefault("ui.show_title", true)
	v.SetDefault("log.path", filepath.Join(os.Getenv("HOME"), ".local", "state", "tocboard", "tocboard.log"))
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("TOCBOARD_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "tocboard"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("TOCBOARD")
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

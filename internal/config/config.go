package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI   UIConfig
	Keys map[string][]string
	Demo DemoConfig
	Log  LogConfig
}

// UIConfig holds engine settings.
type UIConfig struct {
	AutoFocus  bool `mapstructure:"auto_focus"`
	MinPercent int  `mapstructure:"min_percent"`
	MaxPercent int  `mapstructure:"max_percent"`
}

// DemoConfig selects what the demo tabs show.
type DemoConfig struct {
	Markdown string
	Shell    string
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string
}

// DefaultPath returns the config file used when none is given:
// $PANEDECK_CONFIG, else ~/.config/panedeck/config.toml.
func DefaultPath() string {
	if p := os.Getenv("PANEDECK_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.Getenv("HOME")
	}
	return filepath.Join(home, ".config", "panedeck", "config.toml")
}

// Load reads configuration from path (DefaultPath when empty) and the
// environment. Env var overrides use prefix PANEDECK_. A missing file is not
// an error.
func Load(path string) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("ui.auto_focus", false)
	v.SetDefault("ui.min_percent", 10)
	v.SetDefault("ui.max_percent", 90)
	v.SetDefault("demo.markdown", "")
	v.SetDefault("demo.shell", "")
	v.SetDefault("log.level", "")

	if path == "" {
		path = DefaultPath()
	}
	v.SetConfigType("toml")
	v.SetConfigFile(path)

	v.SetEnvPrefix("PANEDECK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.UI.MinPercent > c.UI.MaxPercent {
		return Config{}, fmt.Errorf("ui.min_percent %d is greater than ui.max_percent %d", c.UI.MinPercent, c.UI.MaxPercent)
	}
	return c, nil
}

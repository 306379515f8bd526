package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kastheco/orgtheme/theme"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ThemeConfig is the theme applied to organizations that have not set one.
type ThemeConfig struct {
	Accent string `toml:"accent" yaml:"accent"`
	Mode   string `toml:"mode" yaml:"mode"`
}

// ServerConfig configures `orgtheme serve`.
type ServerConfig struct {
	Bind string `toml:"bind" yaml:"bind"`
	Port int    `toml:"port" yaml:"port"`
	DB   string `toml:"db" yaml:"db"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level       string `toml:"level" yaml:"level"`
	Development bool   `toml:"development" yaml:"development"`
}

// Config is the on-disk configuration, either config.toml or config.yaml.
type Config struct {
	Theme  ThemeConfig  `toml:"theme" yaml:"theme"`
	Server ServerConfig `toml:"server" yaml:"server"`
	Log    LogConfig    `toml:"log" yaml:"log"`
}

// Dir returns the orgtheme config directory ($HOME/.config/orgtheme).
func Dir() string {
	return os.ExpandEnv("$HOME/.config/orgtheme")
}

// DefaultPath is where Load looks when no --config flag is given.
func DefaultPath() string {
	return filepath.Join(Dir(), "config.toml")
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Theme: ThemeConfig{
			Accent: string(theme.DefaultAccent),
			Mode:   string(theme.ModeLight),
		},
		Server: ServerConfig{
			Bind: "0.0.0.0",
			Port: 7433,
			DB:   filepath.Join(Dir(), "themes.db"),
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads the config file at path on top of the defaults. A missing file
// is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return cfg, fmt.Errorf("unsupported config format %q", ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path in the format implied by its extension.
func (c Config) Save(path string) error {
	var (
		data []byte
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		data, err = toml.Marshal(c)
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	default:
		return fmt.Errorf("unsupported config format %q", ext)
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// DefaultTheme returns the configured theme. Call Validate first.
func (c Config) DefaultTheme() theme.Theme {
	return theme.Theme{Accent: theme.Color(c.Theme.Accent), Mode: theme.Mode(c.Theme.Mode)}
}

// Validate rejects malformed colors, unknown modes, bad ports and log levels.
func (c Config) Validate() error {
	if err := c.DefaultTheme().Validate(); err != nil {
		return fmt.Errorf("theme: %w", err)
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server: port %d out of range", c.Server.Port)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log: unknown level %q", c.Log.Level)
	}
	return nil
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mj1618/window-walker/internal/platform"
	"gopkg.in/yaml.v3"
)

const (
	appDir         = "window-walker"
	configFilename = "config.yaml"
)

// Config is the on-disk configuration. Keys missing from the file keep their
// defaults; an explicit zero delay turns that delay off.
type Config struct {
	LogLevel    string `yaml:"log_level"`
	LogFile     string `yaml:"log_file"`
	AccessorDLL string `yaml:"accessor_dll"`
	Walk        Walk   `yaml:"walk"`
	Send        Send   `yaml:"send"`
}

// Walk configures the app switcher.
type Walk struct {
	Interval       time.Duration `yaml:"interval"`
	DryRunInterval time.Duration `yaml:"dry_run_interval"`
}

// Send configures the messaging variant.
type Send struct {
	Title       string        `yaml:"title"`
	Content     string        `yaml:"content"`
	Interval    time.Duration `yaml:"interval"`
	SettleDelay time.Duration `yaml:"settle_delay"`
	KeyDelayMs  int           `yaml:"key_delay_ms"`
	SubmitKey   string        `yaml:"submit_key"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Walk: Walk{
			Interval: 200 * time.Millisecond,
		},
		Send: Send{
			Title:       "微信",
			Content:     "Keyboard simulation. 模拟微信输出。",
			Interval:    100 * time.Millisecond,
			SettleDelay: 200 * time.Millisecond,
			SubmitKey:   platform.KeyEnter,
		},
	}
}

// DefaultPath returns <UserConfigDir>/window-walker/config.yaml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(dir, appDir, configFilename), nil
}

// Load reads the config at path. A missing file yields the defaults; an
// empty path uses DefaultPath.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// yaml.v3 only sets the fields present in the document, so decoding
	// over the defaults keeps them for missing keys.
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	fillEmptyStrings(cfg, Default())
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	cfg.Send.SubmitKey, _ = platform.ParseKey(cfg.Send.SubmitKey)
	return cfg, nil
}

// fillEmptyStrings restores defaults for strings written as empty values,
// e.g. "title:" with nothing after it.
func fillEmptyStrings(cfg, def *Config) {
	if cfg.LogLevel == "" {
		cfg.LogLevel = def.LogLevel
	}
	if cfg.Send.Title == "" {
		cfg.Send.Title = def.Send.Title
	}
	if cfg.Send.Content == "" {
		cfg.Send.Content = def.Send.Content
	}
	if cfg.Send.SubmitKey == "" {
		cfg.Send.SubmitKey = def.Send.SubmitKey
	}
}

// Validate rejects negative delays and unknown log levels.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q (use debug, info, warn, or error)", c.LogLevel)
	}
	for name, d := range map[string]time.Duration{
		"walk.interval":         c.Walk.Interval,
		"walk.dry_run_interval": c.Walk.DryRunInterval,
		"send.interval":         c.Send.Interval,
		"send.settle_delay":     c.Send.SettleDelay,
	} {
		if d < 0 {
			return fmt.Errorf("%s must not be negative", name)
		}
	}
	if c.Send.KeyDelayMs < 0 {
		return fmt.Errorf("send.key_delay_ms must not be negative")
	}
	if _, err := platform.ParseKey(c.Send.SubmitKey); err != nil {
		return fmt.Errorf("send.submit_key: %w", err)
	}
	return nil
}

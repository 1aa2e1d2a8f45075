// Package config handles application configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"github.com/tutu/codeark/locale"
)

const (
	appName        = "codeark"
	configFileName = "config.json"
	historyDirName = "history"
	envPrefix      = "codeark"
)

// DefaultRecentLimit is the number of recent folders kept when unset.
const DefaultRecentLimit = 10

// userConfigDir is replaced in tests.
var userConfigDir = os.UserConfigDir

// Settings are the values stored in the config file.
type Settings struct {
	// Language is "auto", "zh" or "en".
	Language    string `json:"language" envconfig:"LANGUAGE"`
	RecentLimit int    `json:"recent_limit" envconfig:"RECENT_LIMIT"`
}

// Config represents the application configuration. The embedded
// Settings are the effective values, environment overrides included;
// only the file values are ever written back.
type Config struct {
	Settings

	file Settings
}

// Load loads configuration from the config file and applies environment
// overrides (CODEARK_LANGUAGE, CODEARK_RECENT_LIMIT).
// Returns default config if file doesn't exist.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, fmt.Errorf("get config path: %w", err)
	}

	file := defaultSettings()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("unmarshal config: %w", err)
		}
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("read config: %w", err)
	}
	file.normalize()

	cfg := &Config{Settings: file, file: file}
	if err := envconfig.Process(envPrefix, &cfg.Settings); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}
	cfg.Settings.normalize()

	return cfg, nil
}

// Save persists the file values to disk. Environment overrides are not
// written.
func (c *Config) Save() error {
	return save(c.file)
}

// SetLanguage validates and persists the language setting. The in-memory
// setting only changes once the file has been written.
func (c *Config) SetLanguage(lang string) error {
	if !locale.Valid(lang) {
		return fmt.Errorf("unsupported language: %s", lang)
	}

	next := c.file
	next.Language = lang
	if err := save(next); err != nil {
		return err
	}

	c.file = next
	c.Language = lang
	return nil
}

// ResolvedLanguage returns the concrete UI language for the setting.
func (c *Config) ResolvedLanguage() string {
	return locale.Resolve(c.Language, locale.SystemLocales()...)
}

// HistoryDir returns the directory of the recent-folder store.
func HistoryDir() (string, error) {
	dir, err := appDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, historyDirName), nil
}

func save(s Settings) error {
	path, err := configPath()
	if err != nil {
		return fmt.Errorf("get config path: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}

func (s *Settings) normalize() {
	if !locale.Valid(s.Language) {
		s.Language = locale.Auto
	}
	if s.RecentLimit <= 0 {
		s.RecentLimit = DefaultRecentLimit
	}
}

func appDir() (string, error) {
	dir, err := userConfigDir()
	if err != nil {
		return "", fmt.Errorf("get user config dir: %w", err)
	}
	return filepath.Join(dir, appName), nil
}

func configPath() (string, error) {
	dir, err := appDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

func defaultSettings() Settings {
	return Settings{
		Language:    locale.Auto,
		RecentLimit: DefaultRecentLimit,
	}
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	s := defaultSettings()
	return &Config{Settings: s, file: s}
}

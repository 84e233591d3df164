// Package config loads the session configuration: the YAML file under
// ~/.config/peticao plus the environment overlay for secrets. It is
// read once at startup and treated as immutable afterwards.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultModel is used when neither the config file nor GEMINI_MODEL
// names one.
const DefaultModel = "gemini-2.5-flash"

type Config struct {
	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`
	BaseURL  string `yaml:"base_url,omitempty"`

	// Secrets come from the environment only, never from the file.
	APIKey   string `yaml:"-"`
	Password string `yaml:"-"`
}

func DefaultConfig() *Config {
	return &Config{
		Provider: "gemini",
		Model:    DefaultModel,
	}
}

func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "peticao"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the config file, falling back to defaults when it does not
// exist, and applies the environment overlay.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	path, err := ConfigPath()
	if err != nil {
		cfg.applyEnv()
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if cfg.Provider == "" {
		cfg.Provider = "gemini"
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv overlays the environment: API key (two accepted names, like
// the original hosted variant), model override and the optional access
// password.
func (c *Config) applyEnv() {
	if key := firstEnv("GEMINI_API_KEY", "GOOGLE_API_KEY"); key != "" {
		c.APIKey = key
	}
	if model := strings.TrimSpace(os.Getenv("GEMINI_MODEL")); model != "" {
		c.Model = model
	}
	c.Password = os.Getenv("APP_PASSWORD")
}

func firstEnv(names ...string) string {
	for _, name := range names {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			return v
		}
	}
	return ""
}

func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

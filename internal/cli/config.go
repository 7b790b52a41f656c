package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	configFile = "config.yaml"
	tokenFile  = "token"
)

// Config is the persisted CLI configuration.
type Config struct {
	BackendURL string `yaml:"backend_url,omitempty"`
	APIPrefix  string `yaml:"api_prefix,omitempty"`
	RedisAddr  string `yaml:"redis_addr,omitempty"`
}

func defaultDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", ".portfolio")
	}
	return filepath.Join(dir, "portfolio")
}

func LoadConfig(dataDir string) (*Config, error) {
	data, err := os.ReadFile(filepath.Join(dataDir, configFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

func SaveConfig(dataDir string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	return os.WriteFile(filepath.Join(dataDir, configFile), data, 0o600)
}

// ReadToken returns the stored bearer token, or "" when logged out.
func ReadToken(dataDir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dataDir, tokenFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("reading token: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func SaveToken(dataDir, token string) error {
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	return os.WriteFile(filepath.Join(dataDir, tokenFile), []byte(token+"\n"), 0o600)
}

// ClearToken removes the stored token. A missing file is not an error.
func ClearToken(dataDir string) error {
	err := os.Remove(filepath.Join(dataDir, tokenFile))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing token: %w", err)
	}
	return nil
}

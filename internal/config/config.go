// Package config resolves the client configuration once at startup. The
// backend address follows a fixed precedence: command-line flag, environment
// (TRACKCTL_SERVER_URL, optionally loaded from a .env file), config file,
// then the default same-origin address. The resolved value is reused for
// both JSON calls and photo asset links.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"trackctl/internal/constants"
)

const (
	// EnvServerURL overrides the configured backend address.
	EnvServerURL = "TRACKCTL_SERVER_URL"
	// EnvDebug enables debug logging when set to a truthy value.
	EnvDebug = "TRACKCTL_DEBUG"
)

// Config is the persisted client configuration.
type Config struct {
	ServerURL string `toml:"server_url"`
	Debug     bool   `toml:"debug"`
}

// DefaultDir returns the config directory (~/.config/trackctl).
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", constants.AppName)
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return filepath.Join(DefaultDir(), "config.toml")
}

// Read decodes a Config from the provided reader.
func Read(r io.Reader) (*Config, error) {
	var cfg Config
	if _, err := toml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// ReadFromFile reads a Config from the specified file path. A missing file
// is not an error; it yields an empty config.
func ReadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	cfg, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}
	return cfg, nil
}

// WriteToFile writes a Config to the specified file path, creating the
// directory if needed.
func WriteToFile(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// ResolveServerURL applies the address precedence. flagValue is the
// command-line override and wins when non-empty.
func ResolveServerURL(flagValue string, cfg *Config) string {
	if v := strings.TrimSpace(flagValue); v != "" {
		return strings.TrimRight(v, "/")
	}
	if v := strings.TrimSpace(os.Getenv(EnvServerURL)); v != "" {
		return strings.TrimRight(v, "/")
	}
	if cfg != nil && strings.TrimSpace(cfg.ServerURL) != "" {
		return strings.TrimRight(strings.TrimSpace(cfg.ServerURL), "/")
	}
	return constants.DefaultServerURL
}

// DebugEnabled reports whether debug logging is on, from flag, environment,
// or config file.
func DebugEnabled(flagValue bool, cfg *Config) bool {
	if flagValue {
		return true
	}
	switch strings.ToLower(strings.TrimSpace(os.Getenv(EnvDebug))) {
	case "1", "true", "yes":
		return true
	}
	return cfg != nil && cfg.Debug
}

package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the connection and logging settings of the console.
type Config struct {
	APIURL      string
	APIToken    string
	LogPath     string
	PollSeconds int
}

const (
	defaultConfigPath  = "~/.config/talentdesk/config.toml"
	defaultLogPath     = "~/.local/state/talentdesk/talentdesk.log"
	defaultAPIURL      = "127.0.0.1:8080"
	defaultPollSeconds = 5
)

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return defaultConfigPath
}

// Defaults returns the configuration used when no file exists.
func Defaults() Config {
	return Config{
		APIURL:      defaultAPIURL,
		LogPath:     mustExpand(defaultLogPath),
		PollSeconds: defaultPollSeconds,
	}
}

// Load locates and parses the config file, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Defaults()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIURL      string `toml:"api_url"`
		APIToken    string `toml:"api_token"`
		LogPath     string `toml:"log_path"`
		PollSeconds int    `toml:"poll_seconds"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.Merge(Config{
		APIURL:      raw.APIURL,
		APIToken:    raw.APIToken,
		LogPath:     raw.LogPath,
		PollSeconds: raw.PollSeconds,
	})
	return cfg, nil
}

// Merge overlays the non-empty fields of o onto c. Paths are expanded.
func (c *Config) Merge(o Config) {
	if v := strings.TrimSpace(o.APIURL); v != "" {
		c.APIURL = v
	}
	if v := strings.TrimSpace(o.APIToken); v != "" {
		c.APIToken = v
	}
	if v := strings.TrimSpace(o.LogPath); v != "" {
		c.LogPath = mustExpand(v)
	}
	if o.PollSeconds > 0 {
		c.PollSeconds = o.PollSeconds
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}

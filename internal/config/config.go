// Package config loads application configuration. Values come from, in
// order of increasing precedence: built-in defaults, an optional YAML file,
// and LEARNINGHUB_-prefixed environment variables. Command-line flags are
// applied last by the CLI layer.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	// DBPath is the SQLite database location. Empty means the platform
	// default data directory.
	DBPath string `yaml:"dbPath"`

	// ContentDir is the lesson content root.
	ContentDir string `yaml:"contentDir"`

	// ClientID labels this device inside export fingerprints.
	ClientID string `yaml:"clientId"`

	// ReviewerMode disables all sequential lesson locking.
	ReviewerMode bool `yaml:"reviewerMode"`

	Attempts AttemptsConfig `yaml:"attempts"`
}

// AttemptsConfig tunes the quiz attempt gate.
type AttemptsConfig struct {
	// LockThreshold is the wrong-answer count that locks a question.
	LockThreshold int `yaml:"lockThreshold"`

	// MinExplanationChars is the minimum trimmed length of an unlock
	// explanation.
	MinExplanationChars int `yaml:"minExplanationChars"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ContentDir: "./content",
		ClientID:   "learninghub",
		Attempts: AttemptsConfig{
			LockThreshold:       3,
			MinExplanationChars: 20,
		},
	}
}

// DefaultPath returns the standard config file location, honoring
// XDG_CONFIG_HOME.
func DefaultPath() (string, error) {
	if base := os.Getenv("XDG_CONFIG_HOME"); base != "" {
		return filepath.Join(base, "learninghub", "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	return filepath.Join(home, ".config", "learninghub", "config.yaml"), nil
}

// Load reads path (or the default location when path is empty), then applies
// environment overrides. A missing file is not an error; defaults apply.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Config{}, err
		}
		path = p
	}

	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		// No config file is the common case.
	default:
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the loaded values.
func (c Config) Validate() error {
	if c.Attempts.LockThreshold < 1 {
		return fmt.Errorf("attempts.lockThreshold must be at least 1, got %d", c.Attempts.LockThreshold)
	}
	if c.Attempts.MinExplanationChars < 1 {
		return fmt.Errorf("attempts.minExplanationChars must be at least 1, got %d", c.Attempts.MinExplanationChars)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("LEARNINGHUB_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("LEARNINGHUB_CONTENT_DIR"); v != "" {
		cfg.ContentDir = v
	}
	if v := os.Getenv("LEARNINGHUB_CLIENT_ID"); v != "" {
		cfg.ClientID = v
	}
	if v := os.Getenv("LEARNINGHUB_REVIEWER_MODE"); v != "" {
		cfg.ReviewerMode = strings.EqualFold(v, "true") || v == "1"
	}
	if v := os.Getenv("LEARNINGHUB_LOCK_THRESHOLD"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Attempts.LockThreshold = n
		}
	}
	if v := os.Getenv("LEARNINGHUB_MIN_EXPLANATION_CHARS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Attempts.MinExplanationChars = n
		}
	}
}

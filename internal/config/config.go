package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"

	"github.com/julianstephens/score100/internal/constants"
)

// Config is the process configuration read from the environment.
// Command-line flags take precedence and are merged in by main.
type Config struct {
	Store       string `env:"SCORE100_STORE" envDefault:"~/.config/score100/score100.db"`
	DataDir     string `env:"SCORE100_DATA_DIR"`
	Debug       bool   `env:"SCORE100_DEBUG" envDefault:"false"`
	RedisPrefix string `env:"SCORE100_REDIS_PREFIX" envDefault:"score100"`
	NodeID      int64  `env:"SCORE100_NODE_ID" envDefault:"1"`
	PromptsFile string `env:"SCORE100_PROMPTS_FILE"`
}

// Load reads an optional dotenv file and then parses the environment.
// A missing dotenv file is not an error; variables already set in the
// environment win over values from the file.
func Load(dotenvPath string) (Config, error) {
	if dotenvPath != "" {
		if _, err := os.Stat(dotenvPath); err == nil {
			if err := godotenv.Load(dotenvPath); err != nil {
				return Config{}, fmt.Errorf("failed to load %s: %w", dotenvPath, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to stat %s: %w", dotenvPath, err)
		}
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that env tags cannot express.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Store) == "" {
		return errors.New("store target cannot be empty")
	}
	if c.NodeID < 0 || c.NodeID > 1023 {
		return fmt.Errorf("node id must be between 0 and 1023, got %d", c.NodeID)
	}
	return nil
}

// ResolveDataDir returns the directory for logs and backups. It defaults to the
// directory containing a file-backed store, or ~/.config/score100 otherwise.
func (c Config) ResolveDataDir() (string, error) {
	if c.DataDir != "" {
		return ExpandPath(c.DataDir)
	}
	if IsFileTarget(c.Store) {
		p, err := ExpandPath(c.Store)
		if err != nil {
			return "", err
		}
		return filepath.Dir(p), nil
	}
	return ExpandPath(filepath.Dir(constants.DefaultConfigPath))
}

// IsFileTarget reports whether a store target names a local file.
func IsFileTarget(target string) bool {
	switch {
	case strings.HasPrefix(target, "postgres://"),
		strings.HasPrefix(target, "postgresql://"),
		strings.HasPrefix(target, "postgres:keyring"),
		strings.HasPrefix(target, "redis://"),
		strings.HasPrefix(target, "rediss://"),
		strings.HasPrefix(target, "memory:"):
		return false
	}
	return true
}

// ExpandPath replaces a leading "~" with the user's home directory.
func ExpandPath(p string) (string, error) {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~")), nil
}
